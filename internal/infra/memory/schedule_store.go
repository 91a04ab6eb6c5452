package memory

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

type ScheduleStore struct {
	mu      sync.RWMutex
	configs map[uint]schedule.Config
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{configs: make(map[uint]schedule.Config)}
}

func (s *ScheduleStore) GetSchedule(_ context.Context, barberID uint) (*schedule.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[barberID]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return &cfg, nil
}

func (s *ScheduleStore) SaveSchedule(_ context.Context, barberID uint, cfg schedule.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg.BarberID = barberID
	cfg.Days = append([]schedule.WorkingDay(nil), cfg.Days...)
	s.configs[barberID] = cfg
	return nil
}

var _ schedule.Store = (*ScheduleStore)(nil)
