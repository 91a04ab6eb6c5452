package memory

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
)

type Directory struct {
	mu       sync.RWMutex
	profiles map[uint]barber.Profile
	services map[uint]barber.Service
}

func NewDirectory() *Directory {
	return &Directory{
		profiles: make(map[uint]barber.Profile),
		services: make(map[uint]barber.Service),
	}
}

func (d *Directory) PutProfile(p barber.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles[p.ID] = p
}

func (d *Directory) PutService(s barber.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.services[s.ID] = s
}

func (d *Directory) GetProfile(_ context.Context, barberID uint) (*barber.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.profiles[barberID]
	if !ok {
		return nil, barber.ErrBarberNotFound
	}
	return &p, nil
}

func (d *Directory) GetService(_ context.Context, barbershopID uint, serviceID uint) (*barber.Service, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.services[serviceID]
	if !ok || s.BarbershopID != barbershopID {
		return nil, barber.ErrServiceNotFound
	}
	return &s, nil
}

var _ barber.Directory = (*Directory)(nil)
