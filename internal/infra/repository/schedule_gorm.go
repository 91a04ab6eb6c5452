package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	barberID uint,
) (*schedule.Config, error) {

	var rows []models.WorkingDay
	if err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	if len(rows) == 0 {
		return nil, schedule.ErrNotFound
	}

	return scheduleToDomain(barberID, rows)
}

// SaveSchedule replaces the whole weekly template in one transaction.
func (r *ScheduleGormRepository) SaveSchedule(
	ctx context.Context,
	barberID uint,
	cfg schedule.Config,
) error {

	rows := scheduleFromDomain(barberID, cfg)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []uint
		if err := tx.Model(&models.WorkingDay{}).
			Where("barber_id = ?", barberID).
			Pluck("id", &existing).Error; err != nil {
			return fmt.Errorf("load working days: %w", err)
		}

		if len(existing) > 0 {
			if err := tx.Where("working_day_id IN ?", existing).
				Delete(&models.WorkingBreak{}).Error; err != nil {
				return fmt.Errorf("clear breaks: %w", err)
			}
			if err := tx.Where("id IN ?", existing).
				Delete(&models.WorkingDay{}).Error; err != nil {
				return fmt.Errorf("clear working days: %w", err)
			}
		}

		if len(rows) == 0 {
			return nil
		}

		// breaks are saved through the has-many association
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("save working days: %w", err)
		}
		return nil
	})
}

var _ schedule.Store = (*ScheduleGormRepository)(nil)
