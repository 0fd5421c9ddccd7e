// Package statsbomb loads the flattened per-competition CSV extracts
// of the StatsBomb open data: one file of match rows, one of event
// rows, one of team-sheet rows. Nested fields (coordinates, position
// intervals) arrive as serialized literals and are decoded through
// platform/literal, never evaluated.
package statsbomb

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

// CompetitionFiles names the CSV triple one competition ships as.
type CompetitionFiles struct {
	MatchesPath string
	EventsPath  string
	LineupsPath string
}

// Extract is one competition's decoded data, ready for ingest.
type Extract struct {
	Matches []match.Match
	Events  []event.Event
	Lineups []lineup.Entry
}

// Loader reads competition extracts from disk.
type Loader struct {
	logger *logging.Logger
}

// NewLoader constructs a Loader. A nil logger falls back to the
// process default.
func NewLoader(logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{logger: logger}
}

// LoadExtract decodes the three files of one competition, one goroutine
// per file. Any malformed row aborts the whole load; a partial extract
// is never returned.
func (l *Loader) LoadExtract(ctx context.Context, files CompetitionFiles) (Extract, error) {
	var extract Extract

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		matches, err := readMatches(ctx, files.MatchesPath)
		if err != nil {
			return fmt.Errorf("load matches: %w", err)
		}
		extract.Matches = matches
		return nil
	})
	p.Go(func(ctx context.Context) error {
		events, err := readEvents(ctx, files.EventsPath)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		extract.Events = events
		return nil
	})
	p.Go(func(ctx context.Context) error {
		lineups, err := readLineups(ctx, files.LineupsPath)
		if err != nil {
			return fmt.Errorf("load lineups: %w", err)
		}
		extract.Lineups = lineups
		return nil
	})
	if err := p.Wait(); err != nil {
		return Extract{}, err
	}

	l.logger.InfoContext(ctx, "extract loaded",
		"matches", len(extract.Matches),
		"events", len(extract.Events),
		"lineups", len(extract.Lineups),
	)
	return extract, nil
}

func readMatches(ctx context.Context, path string) ([]match.Match, error) {
	t, err := readTable(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := t.require("match_id", "competition", "match_date", "home_team", "away_team", "home_score", "away_score"); err != nil {
		return nil, err
	}

	matches := make([]match.Match, 0, len(t.rows))
	for n, row := range t.rows {
		m, err := matchFromRow(t, row)
		if err != nil {
			return nil, t.rowErr(n, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func readEvents(ctx context.Context, path string) ([]event.Event, error) {
	t, err := readTable(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := t.require("match_id", "type"); err != nil {
		return nil, err
	}

	events := make([]event.Event, 0, len(t.rows))
	for n, row := range t.rows {
		e, err := eventFromRow(t, row, n)
		if err != nil {
			return nil, t.rowErr(n, err)
		}
		events = append(events, e)
	}
	return events, nil
}

func readLineups(ctx context.Context, path string) ([]lineup.Entry, error) {
	t, err := readTable(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := t.require("match_id", "country", "player_id", "player_name"); err != nil {
		return nil, err
	}

	entries := make([]lineup.Entry, 0, len(t.rows))
	for n, row := range t.rows {
		entry, err := lineupFromRow(t, row)
		if err != nil {
			return nil, t.rowErr(n, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// table is one parsed CSV file: a column index and the data rows.
type table struct {
	path   string
	header map[string]int
	rows   [][]string
}

func readTable(ctx context.Context, path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &table{path: path, header: make(map[string]int, len(header))}
	for i, name := range header {
		t.header[strings.TrimSpace(name)] = i
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: read row: %w", path, err)
		}
		t.rows = append(t.rows, row)
	}
}

func (t *table) require(columns ...string) error {
	for _, column := range columns {
		if _, ok := t.header[column]; !ok {
			return fmt.Errorf("%s: missing column %q", t.path, column)
		}
	}
	return nil
}

// field returns a trimmed cell value, or "" when the column is absent.
// Optional columns (season, away_managers) read as empty this way.
func (t *table) field(row []string, column string) string {
	i, ok := t.header[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// rowErr prefixes a decode failure with the file and its 1-based line
// number. The header occupies line 1.
func (t *table) rowErr(rowIndex int, err error) error {
	return fmt.Errorf("%s line %d: %w", t.path, rowIndex+2, err)
}
