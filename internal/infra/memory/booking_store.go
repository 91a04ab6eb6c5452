package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// BookingStore keeps bookings in process. It honours the same lifecycle
// and single-accept rules as the postgres store.
type BookingStore struct {
	mu   sync.Mutex
	byID map[string]booking.Booking

	// FailSetStatus, when set, is consulted before every status write.
	FailSetStatus func(id string, status booking.Status) error
}

func NewBookingStore() *BookingStore {
	return &BookingStore{byID: make(map[string]booking.Booking)}
}

func (s *BookingStore) FetchBookings(_ context.Context, barberID uint, date string) ([]booking.Booking, error) {
	return s.filter(func(b booking.Booking) bool {
		return b.BarberID == barberID && b.Date == date
	}), nil
}

func (s *BookingStore) GetBooking(_ context.Context, id string) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return &b, nil
}

func (s *BookingStore) ListForCustomer(_ context.Context, customerID uint) ([]booking.Booking, error) {
	out := s.filter(func(b booking.Booking) bool { return b.CustomerID == customerID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date+out[i].Time > out[j].Date+out[j].Time })
	return out, nil
}

func (s *BookingStore) ListPendingUntil(_ context.Context, date string) ([]booking.Booking, error) {
	return s.filter(func(b booking.Booking) bool {
		return b.Status == booking.StatusPending && b.Date <= date
	}), nil
}

func (s *BookingStore) CreateBooking(_ context.Context, b *booking.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[b.ID] = *b
	return nil
}

func (s *BookingStore) SetStatus(_ context.Context, id string, status booking.Status) error {
	if s.FailSetStatus != nil {
		if err := s.FailSetStatus(id, status); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	if err := booking.CanTransition(b.Status, status); err != nil {
		return err
	}

	if status == booking.StatusAccepted {
		for _, other := range s.byID {
			if other.ID != b.ID && other.Status == booking.StatusAccepted && other.SameSlot(b) {
				return booking.ErrSlotUnavailable
			}
		}
	}

	b.Status = status
	s.byID[id] = b
	return nil
}

func (s *BookingStore) filter(keep func(booking.Booking) bool) []booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []booking.Booking{}
	for _, b := range s.byID {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

var _ booking.Store = (*BookingStore)(nil)
