package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// Reject, complete and no-show share one shape: a barber moves one of their
// bookings along a lifecycle edge. Repeating the same move is a no-op.

type RejectBooking struct {
	deps Deps
}

func NewRejectBooking(deps Deps) *RejectBooking {
	return &RejectBooking{deps: deps.withDefaults()}
}

func (uc *RejectBooking) Execute(ctx context.Context, in TransitionInput) (*domain.Booking, error) {
	return moveBooking(ctx, uc.deps, in, domain.StatusRejected, "booking_rejected")
}

type CompleteBooking struct {
	deps Deps
}

func NewCompleteBooking(deps Deps) *CompleteBooking {
	return &CompleteBooking{deps: deps.withDefaults()}
}

func (uc *CompleteBooking) Execute(ctx context.Context, in TransitionInput) (*domain.Booking, error) {
	return moveBooking(ctx, uc.deps, in, domain.StatusCompleted, "booking_completed")
}

type MarkNoShow struct {
	deps Deps
}

func NewMarkNoShow(deps Deps) *MarkNoShow {
	return &MarkNoShow{deps: deps.withDefaults()}
}

func (uc *MarkNoShow) Execute(ctx context.Context, in TransitionInput) (*domain.Booking, error) {
	return moveBooking(ctx, uc.deps, in, domain.StatusNoShow, "booking_no_show")
}

func moveBooking(
	ctx context.Context,
	deps Deps,
	in TransitionInput,
	to domain.Status,
	action string,
) (*domain.Booking, error) {

	b, err := loadForBarber(ctx, deps, in)
	if err != nil {
		return nil, err
	}

	if b.Status == to {
		return b, nil
	}

	if err := domain.CanTransition(b.Status, to); err != nil {
		return nil, err
	}

	if err := deps.Bookings.SetStatus(ctx, b.ID, to); err != nil {
		return nil, err
	}
	b.Status = to
	deps.Metrics.IncTransition(string(to))

	deps.refresh(ctx, b.BarberID, b.Date)

	deps.dispatch(audit.Event{
		BarbershopID: barbershopOf(ctx, deps, b.BarberID),
		ActorID:      &in.BarberID,
		Action:       action,
		Entity:       "booking",
		EntityID:     b.ID,
	})

	return b, nil
}

// loadForBarber hides bookings of other barbers behind not found.
func loadForBarber(ctx context.Context, deps Deps, in TransitionInput) (*domain.Booking, error) {
	b, err := deps.Bookings.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if b.BarberID != in.BarberID {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

// barbershopOf is only used to tag audit events.
func barbershopOf(ctx context.Context, deps Deps, barberID uint) uint {
	p, err := deps.Directory.GetProfile(ctx, barberID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			deps.Logger.Warn().Err(err).Uint("barber_id", barberID).Msg("audit: barbershop lookup failed")
		}
		return 0
	}
	return p.BarbershopID
}
