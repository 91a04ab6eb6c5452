package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
	block  chan struct{}
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.fail {
		return errors.New("db down")
	}
	return nil
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{Action: "booking_requested", EntityID: "a"})
	d.Dispatch(Event{Action: "booking_accepted", EntityID: "a"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "booking_requested", sink.events[0].Action)
	assert.Equal(t, "booking_accepted", sink.events[1].Action)
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{fail: true}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{Action: "one"})
	d.Dispatch(Event{Action: "two"})
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := NewDispatcherSize(sink, zerolog.Nop(), 1)

	// the worker holds the first event while the buffer takes the second
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "burst"})
	}
	close(sink.block)
	d.Close()

	assert.Less(t, len(sink.events), 10)
	assert.GreaterOrEqual(t, len(sink.events), 1)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "x"}) })
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{Action: "before"})
	d.Close()

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "after"}) })
	assert.NotPanics(t, d.Close)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "before", sink.events[0].Action)
}
