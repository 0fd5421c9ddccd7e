// Package cache decorates the repositories with a read-through cache.
// Extract tables only change on ingest, so entries live until
// Invalidate drops them.
package cache

import (
	"context"
	"strconv"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	basecache "github.com/coolstat/coolstat/internal/platform/cache"
)

// Invalidate drops every cached read so the next call sees the rows a
// fresh ingest just wrote.
func Invalidate(ctx context.Context, store *basecache.Store) {
	store.DeletePrefix(ctx, "match:")
	store.DeletePrefix(ctx, "event:")
	store.DeletePrefix(ctx, "lineup:")
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListCompetitions(ctx context.Context) ([]string, error) {
	v, err := r.cache.GetOrLoad(ctx, "match:competitions", func(ctx context.Context) (any, error) {
		items, err := r.next.ListCompetitions(ctx)
		if err != nil {
			return nil, err
		}
		return append([]string(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]string)
	return append([]string(nil), items...), nil
}

func (r *MatchRepository) ListByCompetition(ctx context.Context, competition string) ([]match.Match, error) {
	key := "match:list:" + competition
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCompetition(ctx, competition)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, competition, team string) ([]match.Match, error) {
	key := "match:list:" + competition + ":team:" + team
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, competition, team)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	key := "match:id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

type EventRepository struct {
	next  event.Repository
	cache *basecache.Store
}

func NewEventRepository(next event.Repository, cache *basecache.Store) *EventRepository {
	return &EventRepository{next: next, cache: cache}
}

// ListByMatch caches the full event list per match. Events are treated
// as immutable, so only the slice is copied on the way out.
func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	key := "event:match:" + strconv.FormatInt(matchID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return append([]event.Event(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]event.Event)
	return append([]event.Event(nil), items...), nil
}

type LineupRepository struct {
	next  lineup.Repository
	cache *basecache.Store
}

func NewLineupRepository(next lineup.Repository, cache *basecache.Store) *LineupRepository {
	return &LineupRepository{next: next, cache: cache}
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Entry, error) {
	key := "lineup:match:" + strconv.FormatInt(matchID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cloneEntries(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lineup.Entry)
	return cloneEntries(items), nil
}

func (r *LineupRepository) ListByMatchTeam(ctx context.Context, matchID int64, team string) ([]lineup.Entry, error) {
	key := "lineup:match:" + strconv.FormatInt(matchID, 10) + ":team:" + team
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMatchTeam(ctx, matchID, team)
		if err != nil {
			return nil, err
		}
		return cloneEntries(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lineup.Entry)
	return cloneEntries(items), nil
}

func cloneEntries(entries []lineup.Entry) []lineup.Entry {
	out := make([]lineup.Entry, len(entries))
	for i, e := range entries {
		out[i] = e
		out[i].Positions = append([]lineup.PositionSpan(nil), e.Positions...)
	}
	return out
}
