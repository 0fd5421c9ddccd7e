package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coolstat/coolstat/internal/domain/match"
	qb "github.com/coolstat/coolstat/internal/platform/querybuilder"
)

var matchColumns = []string{
	"id", "competition", "season", "stage", "match_date",
	"home_team", "away_team", "home_score", "away_score",
	"home_managers", "away_managers", "referee", "stadium",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListCompetitions(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("competition").
		From("matches").
		GroupBy("competition").
		OrderBy("competition").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitions query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	return out, nil
}

func (r *MatchRepository) ListByCompetition(ctx context.Context, competition string) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("competition", competition)).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list matches")
}

func (r *MatchRepository) ListByTeam(ctx context.Context, competition, team string) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("competition", competition),
			qb.Expr("(home_team = ? OR away_team = ?)", team, team),
		).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by team query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "list matches by team")
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	m, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}

	return m, true, nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any, op string) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(matchColumns...).From("matches")
}
