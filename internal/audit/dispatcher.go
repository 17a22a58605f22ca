package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	TenantID uint
	StaffID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists one event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes audit events off the request path. A full queue drops
// the event: auditing never fails a request. A nil *Dispatcher is a no-op.
type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event
	done  chan struct{}

	// mu guards closed and the send on queue.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log.With().Str("component", "audit").Logger(),
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn().Str("action", ev.Action).Uint("tenant_id", ev.TenantID).Msg("audit dispatcher closed, dropping event")
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Uint("tenant_id", ev.TenantID).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written or
// ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
