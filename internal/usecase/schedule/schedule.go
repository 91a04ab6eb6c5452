package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type Archiver interface {
	Archive(ctx context.Context, barberID uint, cfg domain.Config, at time.Time) error
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// GET
// ======================================================

type GetSchedule struct {
	store domain.Store
}

func NewGetSchedule(store domain.Store) *GetSchedule {
	return &GetSchedule{store: store}
}

// Execute returns an empty template for barbers that never saved one.
func (uc *GetSchedule) Execute(ctx context.Context, barberID uint) (*domain.Config, error) {
	cfg, err := uc.store.GetSchedule(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Config{BarberID: barberID, Days: []domain.WorkingDay{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ======================================================
// SAVE
// ======================================================

type SaveInput struct {
	BarbershopID uint
	BarberID     uint
	Config       domain.Config
}

type SaveSchedule struct {
	store    domain.Store
	archiver Archiver
	audit    Auditor
	clock    timezone.Clock
	logger   zerolog.Logger
}

// NewSaveSchedule accepts a nil archiver when no bucket is configured.
func NewSaveSchedule(
	store domain.Store,
	archiver Archiver,
	audit Auditor,
	clock timezone.Clock,
	logger zerolog.Logger,
) *SaveSchedule {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	return &SaveSchedule{
		store:    store,
		archiver: archiver,
		audit:    audit,
		clock:    clock,
		logger:   logger,
	}
}

// Execute replaces the barber's weekly template. An invalid template is
// refused with a *ConfigurationError and nothing is written.
func (uc *SaveSchedule) Execute(ctx context.Context, in SaveInput) (*domain.Config, error) {
	cfg := in.Config
	cfg.BarberID = in.BarberID

	// --------------------------------------------------
	// 1. Validate
	// --------------------------------------------------
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Persist
	// --------------------------------------------------
	if err := uc.store.SaveSchedule(ctx, in.BarberID, cfg); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Archive the revision, best effort
	// --------------------------------------------------
	if uc.archiver != nil {
		if err := uc.archiver.Archive(ctx, in.BarberID, cfg, uc.clock.Now()); err != nil {
			uc.logger.Warn().
				Err(err).
				Uint("barber_id", in.BarberID).
				Msg("schedule archive failed")
		}
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	if uc.audit != nil {
		enabled := 0
		for _, d := range cfg.Days {
			if d.Enabled {
				enabled++
			}
		}
		uc.audit.Dispatch(audit.Event{
			BarbershopID: in.BarbershopID,
			ActorID:      &in.BarberID,
			Action:       "schedule_updated",
			Entity:       "schedule",
			Metadata:     map[string]any{"enabled_days": enabled},
		})
	}

	return &cfg, nil
}
