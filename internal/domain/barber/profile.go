package barber

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	ErrBarberNotFound  = httperr.ErrBusiness("barber_not_found")
	ErrServiceNotFound = httperr.ErrBusiness("service_not_found")
)

// Profile is the typed view of a barber the booking flow depends on.
type Profile struct {
	ID           uint
	Name         string
	BarbershopID uint
	Timezone     string
	Location     *time.Location
	SlotInterval int
}

type Service struct {
	ID           uint
	BarbershopID uint
	Name         string
	DurationMin  int
	Price        float64
	Active       bool
}

type Directory interface {
	GetProfile(ctx context.Context, barberID uint) (*Profile, error)
	GetService(ctx context.Context, barbershopID uint, serviceID uint) (*Service, error)
}

// Interval returns the profile's slot interval, or def when unset.
func (p Profile) Interval(def int) int {
	if p.SlotInterval > 0 {
		return p.SlotInterval
	}
	return def
}
