package memory

import (
	"context"
	"sync"

	"github.com/coolstat/coolstat/internal/domain/lineup"
)

// LineupRepository keeps team sheets in process memory, grouped by
// match in the order they were loaded.
type LineupRepository struct {
	mu    sync.RWMutex
	items map[int64][]lineup.Entry
}

func NewLineupRepository(entries []lineup.Entry) *LineupRepository {
	items := make(map[int64][]lineup.Entry)
	for _, e := range entries {
		items[e.MatchID] = append(items[e.MatchID], e)
	}
	return &LineupRepository{items: items}
}

func (r *LineupRepository) ListByMatch(_ context.Context, matchID int64) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneEntries(r.items[matchID]), nil
}

func (r *LineupRepository) ListByMatchTeam(_ context.Context, matchID int64, team string) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Entry, 0, len(r.items[matchID]))
	for _, e := range r.items[matchID] {
		if e.Team == team {
			out = append(out, cloneEntry(e))
		}
	}

	return out, nil
}

func cloneEntries(entries []lineup.Entry) []lineup.Entry {
	out := make([]lineup.Entry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e lineup.Entry) lineup.Entry {
	copied := e
	copied.Positions = append([]lineup.PositionSpan(nil), e.Positions...)
	return copied
}
