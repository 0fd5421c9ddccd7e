package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/coolstat/coolstat/internal/domain/match"
)

// MatchRepository keeps the match reference table in process memory.
// It backs demo mode and tests.
type MatchRepository struct {
	mu    sync.RWMutex
	items map[int64]match.Match
	order []int64
}

// NewMatchRepository indexes the given matches by ID and orders them by
// match date ascending, ID as tie-breaker.
func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[int64]match.Match, len(matches))
	order := make([]int64, 0, len(matches))

	for _, m := range matches {
		if _, dup := items[m.ID]; !dup {
			order = append(order, m.ID)
		}
		items[m.ID] = m
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := items[order[i]], items[order[j]]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	return &MatchRepository{items: items, order: order}
}

func (r *MatchRepository) ListCompetitions(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.order))
	out := make([]string, 0, len(r.order))
	for _, id := range r.order {
		competition := r.items[id].Competition
		if _, ok := seen[competition]; ok {
			continue
		}
		seen[competition] = struct{}{}
		out = append(out, competition)
	}
	sort.Strings(out)

	return out, nil
}

func (r *MatchRepository) ListByCompetition(_ context.Context, competition string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		if m := r.items[id]; m.Competition == competition {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, competition, team string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		m := r.items[id]
		if m.Competition == competition && m.HasTeam(team) {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}
