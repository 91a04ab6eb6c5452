package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type readerMock struct {
	mock.Mock
}

func (m *readerMock) FetchBookings(ctx context.Context, barberID uint, date string) ([]booking.Booking, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func TestBookings_ServesFromSnapshotUntilRefresh(t *testing.T) {
	ctx := context.Background()
	src := new(readerMock)

	first := []booking.Booking{{ID: "a", Status: booking.StatusPending}}
	second := []booking.Booking{{ID: "a", Status: booking.StatusAccepted}}

	src.On("FetchBookings", ctx, uint(1), "2024-01-10").Return(first, nil).Once()
	src.On("FetchBookings", ctx, uint(1), "2024-01-10").Return(second, nil).Once()

	s := NewBookings(src, time.Minute)

	got, err := s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, first, got, "second read comes from the snapshot")

	require.NoError(t, s.Refresh(ctx, 1, "2024-01-10"))

	got, err = s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusAccepted, got[0].Status)

	src.AssertExpectations(t)
}

func TestBookings_CallerCannotMutateSnapshot(t *testing.T) {
	ctx := context.Background()
	src := new(readerMock)
	src.On("FetchBookings", ctx, uint(1), "2024-01-10").
		Return([]booking.Booking{{ID: "a", Status: booking.StatusPending}}, nil).Once()

	s := NewBookings(src, time.Minute)

	got, err := s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	got[0].Status = booking.StatusCancelled

	again, err := s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, again[0].Status)
}

func TestBookings_FailedRefreshDropsEntry(t *testing.T) {
	ctx := context.Background()
	src := new(readerMock)
	boom := errors.New("db down")

	src.On("FetchBookings", ctx, uint(1), "2024-01-10").Return([]booking.Booking{}, nil).Once()
	src.On("FetchBookings", ctx, uint(1), "2024-01-10").Return(nil, boom).Once()

	s := NewBookings(src, time.Minute)
	_, err := s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	assert.ErrorIs(t, s.Refresh(ctx, 1, "2024-01-10"), boom)
	assert.Equal(t, 0, s.Len())
}

func TestBookings_LoadOlderThanRefreshIsDiscarded(t *testing.T) {
	ctx := context.Background()
	src := new(readerMock)
	s := NewBookings(src, time.Minute)

	before := []booking.Booking{{ID: "a", Status: booking.StatusPending}}
	after := []booking.Booking{{ID: "a", Status: booking.StatusAccepted}}

	// the miss reads the old state, then a write and its refresh land
	// before the miss stores what it read
	src.On("FetchBookings", ctx, uint(1), "2024-01-10").Return(before, nil).Once().
		Run(func(mock.Arguments) {
			require.NoError(t, s.Refresh(ctx, 1, "2024-01-10"))
		})
	src.On("FetchBookings", ctx, uint(1), "2024-01-10").Return(after, nil).Once()

	got, err := s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, before, got)

	got, err = s.FetchBookings(ctx, 1, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusAccepted, got[0].Status)

	src.AssertExpectations(t)
}
