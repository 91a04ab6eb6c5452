package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Archive(ctx context.Context, barberID uint, cfg domain.Config, at time.Time) error {
	args := m.Called(ctx, barberID, cfg, at)
	return args.Error(0)
}

type auditSpy struct {
	events []audit.Event
}

func (a *auditSpy) Dispatch(ev audit.Event) { a.events = append(a.events, ev) }

func weekday() domain.Config {
	return domain.Config{Days: []domain.WorkingDay{{
		Weekday: time.Monday, Enabled: true,
		Start: domain.MustTimeOfDay("09:00"), End: domain.MustTimeOfDay("18:00"),
		Breaks: []domain.Break{{Start: domain.MustTimeOfDay("12:00"), End: domain.MustTimeOfDay("13:00")}},
	}}}
}

func TestGetSchedule_EmptyWhenNeverSaved(t *testing.T) {
	cfg, err := NewGetSchedule(memory.NewScheduleStore()).Execute(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), cfg.BarberID)
	assert.Empty(t, cfg.Days)
}

func TestSaveSchedule(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	store := memory.NewScheduleStore()
	archiver := new(MockArchiver)
	spy := &auditSpy{}

	want := weekday()
	want.BarberID = 5
	archiver.On("Archive", mock.Anything, uint(5), want, now).Return(nil).Once()

	uc := NewSaveSchedule(store, archiver, spy, timezone.FixedClock{At: now}, zerolog.Nop())

	got, err := uc.Execute(ctx, SaveInput{BarbershopID: 7, BarberID: 5, Config: weekday()})
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	stored, err := NewGetSchedule(store).Execute(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, *stored)

	archiver.AssertExpectations(t)
	require.Len(t, spy.events, 1)
	assert.Equal(t, "schedule_updated", spy.events[0].Action)
	assert.Equal(t, uint(7), spy.events[0].BarbershopID)
}

func TestSaveSchedule_InvalidIsNotWritten(t *testing.T) {
	ctx := context.Background()
	store := memory.NewScheduleStore()
	archiver := new(MockArchiver)

	bad := weekday()
	bad.Days[0].Breaks[0].End = domain.MustTimeOfDay("19:00")

	_, err := NewSaveSchedule(store, archiver, nil, nil, zerolog.Nop()).
		Execute(ctx, SaveInput{BarberID: 5, Config: bad})

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Len(t, cfgErr.Problems, 1)

	_, err = store.GetSchedule(ctx, 5)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	archiver.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveSchedule_ArchiveFailureIsNotFatal(t *testing.T) {
	archiver := new(MockArchiver)
	archiver.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket missing"))

	_, err := NewSaveSchedule(memory.NewScheduleStore(), archiver, nil, nil, zerolog.Nop()).
		Execute(context.Background(), SaveInput{BarberID: 5, Config: weekday()})

	assert.NoError(t, err)
	archiver.AssertNumberOfCalls(t, "Archive", 1)
}
