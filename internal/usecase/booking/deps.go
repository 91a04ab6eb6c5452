package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Snapshot is the read side the availability view is served from.
type Snapshot interface {
	domain.Reader
	domain.Refresher
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

// Deps is shared by every booking use case.
type Deps struct {
	Bookings  domain.Store
	Snapshot  Snapshot
	Schedules schedule.Store
	Directory barber.Directory
	Clock     timezone.Clock

	// CancellationNotice defaults to domain.DefaultCancellationNotice.
	CancellationNotice time.Duration
	// DefaultInterval is used for barbers without their own slot interval.
	DefaultInterval int

	Audit   Auditor
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

const defaultInterval = 30

func (d Deps) withDefaults() Deps {
	if d.Snapshot == nil {
		d.Snapshot = passthrough{d.Bookings}
	}
	if d.Clock == nil {
		d.Clock = timezone.SystemClock{}
	}
	if d.DefaultInterval <= 0 {
		d.DefaultInterval = defaultInterval
	}
	return d
}

func (d Deps) dispatch(ev audit.Event) {
	if d.Audit != nil {
		d.Audit.Dispatch(ev)
	}
}

// refresh reloads the snapshot after a write. A failed reload only costs
// freshness, so it is logged and swallowed.
func (d Deps) refresh(ctx context.Context, barberID uint, date string) {
	if err := d.Snapshot.Refresh(ctx, barberID, date); err != nil {
		d.Logger.Warn().
			Err(err).
			Uint("barber_id", barberID).
			Str("date", date).
			Msg("booking snapshot refresh failed")
	}
}

// passthrough serves reads straight from the store.
type passthrough struct {
	domain.Reader
}

func (passthrough) Refresh(context.Context, uint, string) error { return nil }
