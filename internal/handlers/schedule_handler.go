package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

type ScheduleHandler struct {
	get  *ucSchedule.GetSchedule
	save *ucSchedule.SaveSchedule
}

func NewScheduleHandler(get *ucSchedule.GetSchedule, save *ucSchedule.SaveSchedule) *ScheduleHandler {
	return &ScheduleHandler{get: get, save: save}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	cfg, err := h.get.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_schedule")
		return
	}
	c.JSON(http.StatusOK, dto.ScheduleFromDomain(*cfg))
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.ScheduleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cfg, err := req.ToDomain()
	if err != nil {
		respondSchedule(c, err)
		return
	}

	saved, err := h.save.Execute(c.Request.Context(), ucSchedule.SaveInput{
		BarbershopID: middleware.BarbershopID(c),
		BarberID:     middleware.UserID(c),
		Config:       cfg,
	})
	if err != nil {
		respondSchedule(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ScheduleFromDomain(*saved))
}

func respondSchedule(c *gin.Context, err error) {
	var cfgErr *schedule.ConfigurationError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_schedule",
			"message":    "Invalid working hours.",
			"problems":   cfgErr.Problems,
		})
		return
	}
	httperr.Respond(c, err, "failed_to_save_schedule")
}
