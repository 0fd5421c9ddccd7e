package memory

import (
	"context"
	"sync"

	"github.com/coolstat/coolstat/internal/domain/event"
)

// EventRepository keeps match events in process memory, grouped by
// match in the order they were loaded.
type EventRepository struct {
	mu    sync.RWMutex
	items map[int64][]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	items := make(map[int64][]event.Event)
	for _, e := range events {
		items[e.MatchID] = append(items[e.MatchID], e)
	}
	return &EventRepository{items: items}
}

// ListByMatch returns the match's events in load order. Events are
// immutable once stored, so only the slice itself is copied.
func (r *EventRepository) ListByMatch(_ context.Context, matchID int64) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]event.Event(nil), r.items[matchID]...), nil
}
