package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorBarber   Actor = "barber"
)

type CancelInput struct {
	ActorID   uint
	Actor     Actor
	BookingID string
}

type CancelBooking struct {
	deps Deps
}

func NewCancelBooking(deps Deps) *CancelBooking {
	return &CancelBooking{deps: deps.withDefaults()}
}

// Execute cancels a booking owned by the actor. Cancelling a booking that
// is already cancelled succeeds without writing.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelInput,
) (*domain.Booking, error) {

	b, err := uc.deps.Bookings.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if !ownedBy(*b, in) {
		return nil, domain.ErrBookingNotFound
	}

	if b.Status == domain.StatusCancelled {
		return b, nil
	}
	if b.Status.IsTerminal() {
		uc.deps.Metrics.IncCancellationDenied("terminal")
		return nil, domain.ErrInvalidState
	}

	profile, err := uc.deps.Directory.GetProfile(ctx, b.BarberID)
	if err != nil {
		return nil, err
	}

	policy := domain.NewCancellationPolicy(uc.deps.CancellationNotice, profile.Location)
	if !policy.CanCancel(*b, uc.deps.Clock.Now()) {
		uc.deps.Metrics.IncCancellationDenied("too_late")
		return nil, domain.ErrCancellationTooLate
	}

	if err := uc.deps.Bookings.SetStatus(ctx, b.ID, domain.StatusCancelled); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			// lost a race; fine if the winner also cancelled
			if cur, gerr := uc.deps.Bookings.GetBooking(ctx, b.ID); gerr == nil && cur.Status == domain.StatusCancelled {
				return cur, nil
			}
		}
		return nil, err
	}
	b.Status = domain.StatusCancelled
	uc.deps.Metrics.IncTransition(string(domain.StatusCancelled))

	uc.deps.refresh(ctx, b.BarberID, b.Date)

	uc.deps.dispatch(audit.Event{
		BarbershopID: profile.BarbershopID,
		ActorID:      &in.ActorID,
		Action:       "booking_cancelled",
		Entity:       "booking",
		EntityID:     b.ID,
		Metadata:     map[string]any{"by": string(in.Actor)},
	})

	return b, nil
}

func ownedBy(b domain.Booking, in CancelInput) bool {
	switch in.Actor {
	case ActorCustomer:
		return b.CustomerID == in.ActorID
	case ActorBarber:
		return b.BarberID == in.ActorID
	}
	return false
}
