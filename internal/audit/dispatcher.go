package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	ActionBookingCreated  = "booking_created"
	ActionBookingConflict = "booking_conflict"
	ActionBookingRejected = "booking_rejected"
	ActionUserRegistered  = "user_registered"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes events in the background so that auditing never blocks
// or fails a request.
type Dispatcher struct {
	store Store
	log   *zap.Logger
	queue chan Event
	wg    sync.WaitGroup
}

func NewDispatcher(store Store, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.store.Log(context.Background(), ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains the queue. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
