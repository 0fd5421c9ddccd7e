package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	qb "github.com/coolstat/coolstat/internal/platform/querybuilder"
)

// ReplaceExtract writes one ingested extract in a single transaction.
// Matches are upserted; events and lineups for those matches are
// dropped and rewritten, so a re-ingest never leaves stale rows behind.
func (s *Store) ReplaceExtract(ctx context.Context, matches []match.Match, events []event.Event, entries []lineup.Entry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	matchIDs := make([]any, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
	}

	for _, table := range []string{"lineups", "events"} {
		if err := deleteByMatch(ctx, tx, table, matchIDs); err != nil {
			return err
		}
	}

	for _, m := range matches {
		query, args, err := qb.ReplaceModel("matches", matchRowFromDomain(m))
		if err != nil {
			return fmt.Errorf("build match insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match %d: %w", m.ID, err)
		}
	}

	seqByMatch := make(map[int64]int)
	for _, e := range events {
		seq := seqByMatch[e.MatchID]
		seqByMatch[e.MatchID] = seq + 1

		query, args, err := qb.ReplaceModel("events", eventRowFromDomain(e, seq))
		if err != nil {
			return fmt.Errorf("build event insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	for _, entry := range entries {
		row, err := lineupRowFromDomain(entry)
		if err != nil {
			return err
		}
		query, args, err := qb.ReplaceModel("lineups", row)
		if err != nil {
			return fmt.Errorf("build lineup insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert lineup entry %s: %w", entry.PlayerName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest transaction: %w", err)
	}

	return nil
}

func deleteByMatch(ctx context.Context, tx *sqlx.Tx, table string, matchIDs []any) error {
	if len(matchIDs) == 0 {
		return nil
	}

	query, args, err := qb.DeleteFrom(table).
		Where(qb.In("match_id", matchIDs)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	return nil
}
