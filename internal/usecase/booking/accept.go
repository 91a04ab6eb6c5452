package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type TransitionInput struct {
	BarberID  uint
	BookingID string
}

type AcceptResult struct {
	Booking *domain.Booking
	// Rejected holds the colliding requests moved to rejected.
	Rejected []string
	// Warning is set when some colliding requests could not be rejected.
	// The accept itself has been persisted.
	Warning *domain.ConflictResolutionPartialFailure
}

type AcceptBooking struct {
	deps Deps
}

func NewAcceptBooking(deps Deps) *AcceptBooking {
	return &AcceptBooking{deps: deps.withDefaults()}
}

func (uc *AcceptBooking) Execute(
	ctx context.Context,
	in TransitionInput,
) (*AcceptResult, error) {

	// --------------------------------------------------
	// 1. Ownership and lifecycle
	// --------------------------------------------------
	b, err := loadForBarber(ctx, uc.deps, in)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.StatusAccepted {
		return &AcceptResult{Booking: b}, nil
	}

	if err := domain.CanTransition(b.Status, domain.StatusAccepted); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Nobody else may hold the slot
	// --------------------------------------------------
	current, err := uc.deps.Bookings.FetchBookings(ctx, b.BarberID, b.Date)
	if err != nil {
		return nil, err
	}

	if _, held := domain.HeldBy(*b, current); held {
		return nil, domain.ErrSlotUnavailable
	}

	if err := uc.deps.Bookings.SetStatus(ctx, b.ID, domain.StatusAccepted); err != nil {
		return nil, err
	}
	b.Status = domain.StatusAccepted
	uc.deps.Metrics.IncTransition(string(domain.StatusAccepted))

	// --------------------------------------------------
	// 3. Reject the colliding requests, best effort
	// --------------------------------------------------
	// Re-read after the write so requests created while the accept was
	// running are rejected too.
	after, err := uc.deps.Bookings.FetchBookings(ctx, b.BarberID, b.Date)
	if err != nil {
		uc.deps.Logger.Warn().
			Err(err).
			Str("booking_id", b.ID).
			Msg("re-read after accept failed, using earlier read")
		after = current
	}

	res := &AcceptResult{Booking: b, Rejected: []string{}}
	failed := map[string]error{}

	for _, other := range domain.OnAccept(*b, after) {
		err := uc.deps.Bookings.SetStatus(ctx, other.ID, domain.StatusRejected)
		switch {
		case err == nil:
			res.Rejected = append(res.Rejected, other.ID)
		case errors.Is(err, domain.ErrInvalidState):
			// withdrawn or closed since the read
		default:
			failed[other.ID] = err
		}
	}

	uc.deps.Metrics.AddAutoRejected(len(res.Rejected))

	if len(failed) > 0 {
		res.Warning = &domain.ConflictResolutionPartialFailure{Failed: failed}
		uc.deps.Metrics.IncPartialFailure()
		uc.deps.Logger.Warn().
			Err(res.Warning).
			Str("booking_id", b.ID).
			Uint("barber_id", b.BarberID).
			Str("date", b.Date).
			Str("time", b.Time).
			Msg("accepted booking left colliding requests pending")
	}

	uc.deps.refresh(ctx, b.BarberID, b.Date)

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	shopID := barbershopOf(ctx, uc.deps, b.BarberID)

	uc.deps.dispatch(audit.Event{
		BarbershopID: shopID,
		ActorID:      &in.BarberID,
		Action:       "booking_accepted",
		Entity:       "booking",
		EntityID:     b.ID,
	})

	for _, id := range res.Rejected {
		uc.deps.dispatch(audit.Event{
			BarbershopID: shopID,
			ActorID:      &in.BarberID,
			Action:       "booking_auto_rejected",
			Entity:       "booking",
			EntityID:     id,
			Metadata:     map[string]any{"accepted_id": b.ID},
		})
	}

	return res, nil
}
