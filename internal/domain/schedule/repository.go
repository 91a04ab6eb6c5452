package schedule

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("schedule: not found")

type Store interface {
	// GetSchedule returns ErrNotFound when the barber never saved one.
	GetSchedule(ctx context.Context, barberID uint) (*Config, error)
	SaveSchedule(ctx context.Context, barberID uint, cfg Config) error
}
