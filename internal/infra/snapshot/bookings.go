package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// Bookings owns a typed in-process snapshot of each barber's day.
// Reads are served from the snapshot until it expires or Refresh is called
// after a write; the source store stays the truth.
type Bookings struct {
	source booking.Reader
	cache  *gocache.Cache

	// gens counts refreshes per key. A load only lands in the cache if no
	// refresh started after it read the source.
	mu   sync.Mutex
	gens map[string]uint64
}

func NewBookings(source booking.Reader, ttl time.Duration) *Bookings {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Bookings{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
		gens:   make(map[string]uint64),
	}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("%d:%s", barberID, date)
}

func (s *Bookings) FetchBookings(ctx context.Context, barberID uint, date string) ([]booking.Booking, error) {
	k := key(barberID, date)
	if v, ok := s.cache.Get(k); ok {
		return clone(v.([]booking.Booking)), nil
	}
	return s.load(ctx, k, s.generation(k), barberID, date)
}

// Refresh reloads the snapshot for one barber and date from the source.
// Loads that started before it are discarded.
func (s *Bookings) Refresh(ctx context.Context, barberID uint, date string) error {
	k := key(barberID, date)
	gen := s.invalidate(k)

	_, err := s.load(ctx, k, gen, barberID, date)
	return err
}

func (s *Bookings) Len() int {
	return s.cache.ItemCount()
}

func (s *Bookings) generation(k string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[k]
}

func (s *Bookings) invalidate(k string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[k]++
	s.cache.Delete(k)
	return s.gens[k]
}

func (s *Bookings) load(ctx context.Context, k string, gen uint64, barberID uint, date string) ([]booking.Booking, error) {
	fresh, err := s.source.FetchBookings(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[k] == gen {
		s.cache.SetDefault(k, clone(fresh))
	}
	return fresh, nil
}

func clone(in []booking.Booking) []booking.Booking {
	return append([]booking.Booking{}, in...)
}

var (
	_ booking.Reader    = (*Bookings)(nil)
	_ booking.Refresher = (*Bookings)(nil)
)
