package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExpirer struct {
	mock.Mock
}

func (m *MockExpirer) Execute(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestScheduler_AddExpirePending(t *testing.T) {
	s := NewScheduler(zerolog.Nop())

	assert.NoError(t, s.AddExpirePending("*/10 * * * *", new(MockExpirer)))
	assert.Len(t, s.cron.Entries(), 1)

	assert.Error(t, s.AddExpirePending("every ten minutes", new(MockExpirer)))
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_RunExpire(t *testing.T) {
	s := NewScheduler(zerolog.Nop())

	job := new(MockExpirer)
	job.On("Execute", mock.Anything).Return(3, nil).Once()
	job.On("Execute", mock.Anything).Return(0, errors.New("db down")).Once()

	s.runExpire(job)
	s.runExpire(job)

	job.AssertNumberOfCalls(t, "Execute", 2)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	s.Start()
	s.Stop(context.Background())
}
