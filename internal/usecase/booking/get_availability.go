package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

type AvailabilityInput struct {
	BarberID uint
	Date     string
	// CustomerID is zero for anonymous viewers.
	CustomerID uint
}

type Availability struct {
	BarberID uint          `json:"barber_id"`
	Date     string        `json:"date"`
	Timezone string        `json:"timezone"`
	Interval int           `json:"interval_min"`
	Slots    []domain.Slot `json:"slots"`
}

type GetAvailability struct {
	deps Deps
}

func NewGetAvailability(deps Deps) *GetAvailability {
	return &GetAvailability{deps: deps.withDefaults()}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	profile, err := uc.deps.Directory.GetProfile(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date, profile.Location)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	interval := profile.Interval(uc.deps.DefaultInterval)
	out := &Availability{
		BarberID: profile.ID,
		Date:     in.Date,
		Timezone: profile.Timezone,
		Interval: interval,
		Slots:    []domain.Slot{},
	}

	cfg, err := uc.deps.Schedules.GetSchedule(ctx, in.BarberID)
	if errors.Is(err, schedule.ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(*cfg, date, interval)
	if len(slots) == 0 {
		uc.deps.Metrics.ObserveSlots(0)
		return out, nil
	}

	bookings, err := uc.deps.Snapshot.FetchBookings(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	out.Slots = domain.Classify(slots, bookings, in.CustomerID)
	uc.deps.Metrics.ObserveSlots(len(out.Slots))

	return out, nil
}
