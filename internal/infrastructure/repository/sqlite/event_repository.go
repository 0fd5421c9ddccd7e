package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coolstat/coolstat/internal/domain/event"
	qb "github.com/coolstat/coolstat/internal/platform/querybuilder"
)

var eventColumns = []string{
	"match_id", "id", "seq", "kind", "team", "player",
	"minute", "second", "period",
	"location_x", "location_y",
	"pass_end_x", "pass_end_y", "pass_outcome", "pass_type", "pass_recipient",
	"shot_xg", "shot_outcome", "shot_type",
}

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListByMatch returns the match's events in source order.
func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	query, args, err := qb.Select(eventColumns...).
		From("events").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}

	return out, nil
}
