package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type RequestInput struct {
	CustomerID uint
	BarberID   uint
	ServiceID  uint
	Date       string
	Time       string
}

// ======================================================
// USE CASE
// ======================================================

type RequestBooking struct {
	deps Deps
}

func NewRequestBooking(deps Deps) *RequestBooking {
	return &RequestBooking{deps: deps.withDefaults()}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestInput,
) (*domain.Booking, error) {

	b, err := uc.execute(ctx, in)
	if err != nil {
		outcome := httperr.CodeOf(err)
		if outcome == "" {
			outcome = "error"
		}
		uc.deps.Metrics.IncRequest(outcome)
		return nil, err
	}

	uc.deps.Metrics.IncRequest("created")
	return b, nil
}

func (uc *RequestBooking) execute(
	ctx context.Context,
	in RequestInput,
) (*domain.Booking, error) {

	// --------------------------------------------------
	// 1. Barber and location
	// --------------------------------------------------
	profile, err := uc.deps.Directory.GetProfile(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	at, err := domain.ParseDateTime(in.Date, in.Time, profile.Location)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	now := uc.deps.Clock.Now()
	if !at.After(now) {
		return nil, domain.ErrSlotInPast
	}

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	svc, err := uc.deps.Directory.GetService(ctx, profile.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, barber.ErrServiceNotFound
	}

	// --------------------------------------------------
	// 3. The time must be a generated slot
	// --------------------------------------------------
	cfg, err := uc.deps.Schedules.GetSchedule(ctx, in.BarberID)
	if errors.Is(err, schedule.ErrNotFound) {
		return nil, domain.ErrSlotUnavailable
	}
	if err != nil {
		return nil, err
	}

	tod, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	if !schedule.IsSlot(*cfg, at, profile.Interval(uc.deps.DefaultInterval), tod) {
		return nil, domain.ErrSlotUnavailable
	}

	// --------------------------------------------------
	// 4. Fresh classification, not the snapshot
	// --------------------------------------------------
	current, err := uc.deps.Bookings.FetchBookings(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slot, _ := domain.Find(
		domain.Classify([]schedule.TimeOfDay{tod}, current, in.CustomerID),
		in.Time,
	)
	if !slot.Selectable() {
		return nil, domain.ErrSlotUnavailable
	}

	// --------------------------------------------------
	// 5. Create as pending
	// --------------------------------------------------
	b := &domain.Booking{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		BarberID:   in.BarberID,
		ServiceID:  svc.ID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     domain.InitialStatus(),
		Price:      svc.Price,
		CreatedAt:  now.UTC(),
	}

	if err := uc.deps.Bookings.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.deps.refresh(ctx, b.BarberID, b.Date)

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.deps.dispatch(audit.Event{
		BarbershopID: profile.BarbershopID,
		ActorID:      &in.CustomerID,
		Action:       "booking_requested",
		Entity:       "booking",
		EntityID:     b.ID,
		Metadata: map[string]any{
			"date": b.Date,
			"time": b.Time,
		},
	})

	return b, nil
}
