package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// ExpireStalePending rejects pending requests whose scheduled instant has
// passed without an answer from the barber. It also picks up requests a
// partially failed accept left behind.
type ExpireStalePending struct {
	deps Deps
}

func NewExpireStalePending(deps Deps) *ExpireStalePending {
	return &ExpireStalePending{deps: deps.withDefaults()}
}

func (uc *ExpireStalePending) Execute(ctx context.Context) (int, error) {
	now := uc.deps.Clock.Now()

	// a day of slack covers every offset from UTC
	until := now.UTC().AddDate(0, 0, 1).Format(domain.DateLayout)

	pending, err := uc.deps.Bookings.ListPendingUntil(ctx, until)
	if err != nil {
		return 0, err
	}

	profiles := map[uint]*barber.Profile{}
	type barberDay struct {
		barberID uint
		date     string
	}
	touched := map[barberDay]struct{}{}
	expired := 0

	for _, b := range pending {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		p, ok := profiles[b.BarberID]
		if !ok {
			p, err = uc.deps.Directory.GetProfile(ctx, b.BarberID)
			if err != nil {
				uc.deps.Logger.Warn().Err(err).Uint("barber_id", b.BarberID).Msg("expire: barber lookup failed")
				p = nil
			}
			profiles[b.BarberID] = p
		}
		if p == nil {
			continue
		}

		at, err := b.ScheduledAt(p.Location)
		if err != nil || !at.Before(now) {
			continue
		}

		if err := uc.deps.Bookings.SetStatus(ctx, b.ID, domain.StatusRejected); err != nil {
			if !errors.Is(err, domain.ErrInvalidState) {
				uc.deps.Logger.Warn().Err(err).Str("booking_id", b.ID).Msg("expire: reject failed")
			}
			continue
		}

		expired++
		touched[barberDay{b.BarberID, b.Date}] = struct{}{}
		uc.deps.Metrics.IncTransition(string(domain.StatusRejected))

		uc.deps.dispatch(audit.Event{
			BarbershopID: p.BarbershopID,
			Action:       "booking_expired",
			Entity:       "booking",
			EntityID:     b.ID,
		})
	}

	for k := range touched {
		uc.deps.refresh(ctx, k.barberID, k.date)
	}

	if expired > 0 {
		uc.deps.Logger.Info().Int("expired", expired).Msg("stale pending bookings rejected")
	}

	return expired, nil
}
