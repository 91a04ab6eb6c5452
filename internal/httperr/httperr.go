package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type mapping struct {
	status  int
	message string
}

var businessStatus = map[string]mapping{
	"booking_not_found":     {http.StatusNotFound, "Booking not found."},
	"barber_not_found":      {http.StatusNotFound, "Barber not found."},
	"service_not_found":     {http.StatusBadRequest, "Service not found or inactive."},
	"invalid_state":         {http.StatusConflict, "Booking cannot move to that status."},
	"slot_unavailable":      {http.StatusConflict, "This time slot is not available."},
	"slot_in_past":          {http.StatusConflict, "This time slot has already started."},
	"cancellation_too_late": {http.StatusUnprocessableEntity, "Bookings can only be cancelled with enough notice."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Invalid date or time."},
	"invalid_schedule":      {http.StatusBadRequest, "Invalid working hours."},
	"forbidden":             {http.StatusForbidden, "Not allowed."},
	"slug_already_exists":   {http.StatusConflict, "This barbershop slug is taken."},
	"email_already_exists":  {http.StatusConflict, "This email is already registered."},
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond writes err as a JSON error. Known business codes keep their
// status; anything else is logged and reported as fallbackCode with 500.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if code := CodeOf(err); code != "" {
		if m, ok := businessStatus[code]; ok {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}

	log.Ctx(c.Request.Context()).Error().Err(err).Str("code", fallbackCode).Msg("request failed")
	Internal(c, fallbackCode, "Unexpected error.")
}
