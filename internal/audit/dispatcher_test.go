package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memoryStore struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memoryStore) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_WritesAllEventsBeforeClose(t *testing.T) {
	store := &memoryStore{}
	d := NewDispatcher(store, zap.NewNop())

	d.Dispatch(Event{Action: ActionBookingCreated, Entity: "booking", EntityID: "42"})
	d.Dispatch(Event{Action: ActionBookingConflict, Entity: "booking"})
	d.Close()

	assert.Len(t, store.events, 2)
	assert.Equal(t, "42", store.events[0].EntityID)
}

func TestDispatcher_StoreErrorsAreSwallowed(t *testing.T) {
	store := &memoryStore{err: errors.New("db down")}
	d := NewDispatcher(store, zap.NewNop())

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionUserRegistered})
		d.Close()
	})
	assert.Empty(t, store.events)
}
