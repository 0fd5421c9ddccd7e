package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coolstat/coolstat/internal/domain/lineup"
	qb "github.com/coolstat/coolstat/internal/platform/querybuilder"
)

var lineupColumns = []string{
	"match_id", "team", "player_id", "player_name", "jersey_number", "positions",
}

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Entry, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup query: %w", err)
	}

	return r.selectEntries(ctx, query, args, "list lineup")
}

func (r *LineupRepository) ListByMatchTeam(ctx context.Context, matchID int64, team string) ([]lineup.Entry, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("team", team),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup by team query: %w", err)
	}

	return r.selectEntries(ctx, query, args, "list lineup by team")
}

func (r *LineupRepository) selectEntries(ctx context.Context, query string, args []any, op string) ([]lineup.Entry, error) {
	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := lineupEntryFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}

	return out, nil
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(lineupColumns...).
		From("lineups").
		OrderBy("team", "jersey_number")
}
