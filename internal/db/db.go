package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := migrate(db, cfg.DefaultTimezone); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB, defaultTimezone string) error {
	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Service{},
		&models.WorkingDay{},
		&models.WorkingBreak{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// at most one accepted booking per barber slot
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_accepted_slot
		ON bookings (barber_id, date, time)
		WHERE status = 'accepted'
	`).Error; err != nil {
		return fmt.Errorf("create accepted slot index: %w", err)
	}

	if err := db.Exec(`
		UPDATE barbershops
		SET timezone = ?
		WHERE timezone IS NULL OR timezone = ''
	`, defaultTimezone).Error; err != nil {
		return fmt.Errorf("backfill timezones: %w", err)
	}

	return nil
}
