package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type customerView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bookings int    `json:"bookings"`
}

// List returns the customers who ever requested a booking with the barber.
func (h *CustomerHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Select("users.id, users.name, users.email, users.phone, COUNT(bookings.id) AS bookings").
		Joins("JOIN bookings ON bookings.customer_id = users.id").
		Where("bookings.barber_id = ?", middleware.UserID(c)).
		Group("users.id, users.name, users.email, users.phone")

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(users.name) LIKE ? OR users.phone LIKE ? OR LOWER(users.email) LIKE ?",
			like, like, like,
		)
	}

	customers := []customerView{}
	if err := q.Order("users.name ASC").Scan(&customers).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_customers")
		return
	}

	httpresp.List(c, customers)
}
