package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	BarbershopID uint
	ActorID      *uint
	Action       string
	Entity       string
	EntityID     string
	Metadata     any
}

// Sink persists one audit event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink   Sink
	queue  chan Event
	logger zerolog.Logger

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, logger zerolog.Logger) *Dispatcher {
	return NewDispatcherSize(sink, logger, 100)
}

func NewDispatcherSize(sink Sink, logger zerolog.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		queue:  make(chan Event, size),
		logger: logger.With().Str("component", "audit").Logger(),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.logger.Error().
				Err(err).
				Str("action", ev.Action).
				Str("entity_id", ev.EntityID).
				Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the request path: a full queue drops the event.
// Events sent after Close are dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn().
			Str("action", ev.Action).
			Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().
			Str("action", ev.Action).
			Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
