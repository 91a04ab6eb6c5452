package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateMeRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1"`
	Phone           *string `json:"phone"`
	SlotIntervalMin *int    `json:"slot_interval_min" binding:"omitempty,min=5,max=240"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.load(c)
	if !ok {
		return
	}

	body := gin.H{"user": userView(user)}
	if user.Barbershop != nil {
		body["barbershop"] = user.Barbershop
	}
	c.JSON(http.StatusOK, body)
}

// UpdateMe lets a barber change their profile and slot interval.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	user, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		user.Name = *req.Name
		updates["name"] = user.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
		updates["phone"] = user.Phone
	}
	if req.SlotIntervalMin != nil {
		user.SlotIntervalMin = *req.SlotIntervalMin
		updates["slot_interval_min"] = user.SlotIntervalMin
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(c.Request.Context()).Model(user).Updates(updates).Error; err != nil {
			httperr.Respond(c, err, "failed_to_update_user")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}

func (h *MeHandler) load(c *gin.Context) (*models.User, bool) {
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Barbershop").
		First(&user, middleware.UserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return nil, false
		}
		httperr.Respond(c, err, "failed_to_get_user")
		return nil, false
	}
	return &user, true
}
