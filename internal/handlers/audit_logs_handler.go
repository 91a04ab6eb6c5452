package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List pages through the barbershop's audit trail, newest first.
// Optional filters: action, entity, entity_id, from, to (YYYY-MM-DD).
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("barbershop_id = ?", middleware.BarbershopID(c))

	for param, column := range map[string]string{
		"action":    "action",
		"entity":    "entity",
		"entity_id": "entity_id",
	} {
		if v := c.Query(param); v != "" {
			q = q.Where(column+" = ?", v)
		}
	}

	if from := c.Query("from"); validators.IsISODate(from) {
		t, _ := time.Parse("2006-01-02", from)
		q = q.Where("created_at >= ?", t)
	}
	if to := c.Query("to"); validators.IsISODate(to) {
		t, _ := time.Parse("2006-01-02", to)
		q = q.Where("created_at < ?", t.AddDate(0, 0, 1))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err, "audit_count_failed")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, err, "audit_list_failed")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
