package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/infra/snapshot"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	barberID   uint = 1
	shopID     uint = 7
	serviceID  uint = 3
	inactiveID uint = 4

	day = "2024-01-10" // Wednesday
)

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixture struct {
	store *memory.BookingStore
	audit *recordingAudit
	deps  Deps
}

// newFixture sets up one barber working Wednesdays 09:00-18:00 with a
// lunch break, 30 minute slots, in UTC.
func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	store := memory.NewBookingStore()
	schedules := memory.NewScheduleStore()
	dir := memory.NewDirectory()
	rec := &recordingAudit{}

	dir.PutProfile(barber.Profile{
		ID: barberID, Name: "Rui", BarbershopID: shopID,
		Timezone: "UTC", Location: time.UTC, SlotInterval: 30,
	})
	dir.PutProfile(barber.Profile{
		ID: 2, Name: "No Schedule", BarbershopID: shopID,
		Timezone: "UTC", Location: time.UTC,
	})
	dir.PutService(barber.Service{ID: serviceID, BarbershopID: shopID, Name: "Cut", DurationMin: 30, Price: 40, Active: true})
	dir.PutService(barber.Service{ID: inactiveID, BarbershopID: shopID, Name: "Old", DurationMin: 30, Price: 10})

	require.NoError(t, schedules.SaveSchedule(context.Background(), barberID, schedule.Config{
		Days: []schedule.WorkingDay{{
			Weekday: time.Wednesday, Enabled: true,
			Start: schedule.MustTimeOfDay("09:00"), End: schedule.MustTimeOfDay("18:00"),
			Breaks: []schedule.Break{{Start: schedule.MustTimeOfDay("12:00"), End: schedule.MustTimeOfDay("13:00")}},
		}},
	}))

	return &fixture{
		store: store,
		audit: rec,
		deps: Deps{
			Bookings:  store,
			Snapshot:  snapshot.NewBookings(store, time.Minute),
			Schedules: schedules,
			Directory: dir,
			Clock:     timezone.FixedClock{At: now},
			Audit:     rec,
			Logger:    zerolog.Nop(),
		},
	}
}

func (f *fixture) seed(t *testing.T, id string, customer uint, hm string, st domain.Status) {
	t.Helper()
	require.NoError(t, f.store.CreateBooking(context.Background(), &domain.Booking{
		ID: id, CustomerID: customer, BarberID: barberID, ServiceID: serviceID,
		Date: day, Time: hm, Status: st,
	}))
}

func (f *fixture) status(t *testing.T, id string) domain.Status {
	t.Helper()
	b, err := f.store.GetBooking(context.Background(), id)
	require.NoError(t, err)
	return b.Status
}

func at(hm string) time.Time {
	t, err := domain.ParseDateTime(day, hm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
