package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *ucBooking.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availability *ucBooking.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
	}
}

type publicBarber struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

// ListServices shows a barbershop's active services and its barbers.
func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var shop models.Barbershop
	if err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
			return
		}
		httperr.Respond(c, err, "failed_to_get_barbershop")
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("barbershop_id = ? AND active = ?", shop.ID, true)

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_services")
		return
	}

	var barbers []publicBarber
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Select("id", "name").
		Where("barbershop_id = ? AND role = ?", shop.ID, models.RoleBarber).
		Order("name ASC").
		Scan(&barbers).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_barbers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"services":   services,
		"barbers":    barbers,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// Availability is public. A signed in customer also sees which slots
// they already requested.
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	date := c.Query("date")
	if !validators.IsISODate(date) {
		httperr.BadRequest(c, "invalid_date_or_time", "Query parameter date must be YYYY-MM-DD.")
		return
	}

	var customerID uint
	if c.GetString(middleware.ContextUserRole) == models.RoleCustomer {
		customerID = middleware.UserID(c)
	}

	out, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		BarberID:   uint(barberID),
		Date:       date,
		CustomerID: customerID,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_availability")
		return
	}

	c.JSON(http.StatusOK, out)
}
