package sqlite

import (
	"context"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/infrastructure/repository/memory"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "coolstat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	seedMatches := memory.SeedMatches()
	seedEvents := memory.SeedEvents()
	seedLineups := memory.SeedLineups()

	if err := store.ReplaceExtract(ctx, seedMatches, seedEvents, seedLineups); err != nil {
		t.Fatalf("replace extract: %v", err)
	}

	matches := NewMatchRepository(store.DB())

	competitions, err := matches.ListCompetitions(ctx)
	if err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	if len(competitions) != 1 || competitions[0] != "UEFA Euro" {
		t.Fatalf("unexpected competitions: %v", competitions)
	}

	final, ok, err := matches.GetByID(ctx, memory.SeedMatchFinal)
	if err != nil || !ok {
		t.Fatalf("get final: ok=%t err=%v", ok, err)
	}
	if got := final.Label(); got != "(Final) Spain 2 - 1 England" {
		t.Fatalf("unexpected label: %s", got)
	}
	if !final.Date.Equal(seedMatches[2].Date) {
		t.Fatalf("date did not round-trip: %v != %v", final.Date, seedMatches[2].Date)
	}

	england, err := matches.ListByTeam(ctx, "UEFA Euro", "England")
	if err != nil {
		t.Fatalf("list by team: %v", err)
	}
	if len(england) != 2 {
		t.Fatalf("expected England in 2 matches, got %d", len(england))
	}
	if england[0].Date.After(england[1].Date) {
		t.Fatal("matches out of date order")
	}

	events := NewEventRepository(store.DB())
	gotEvents, err := events.ListByMatch(ctx, memory.SeedMatchFinal)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(gotEvents) != len(seedEvents) {
		t.Fatalf("expected %d events, got %d", len(seedEvents), len(gotEvents))
	}
	for i := range seedEvents {
		if !reflect.DeepEqual(gotEvents[i], seedEvents[i]) {
			t.Fatalf("event %d did not round-trip:\nwant: %+v\ngot:  %+v", i, seedEvents[i], gotEvents[i])
		}
	}

	lineups := NewLineupRepository(store.DB())
	spain, err := lineups.ListByMatchTeam(ctx, memory.SeedMatchFinal, "Spain")
	if err != nil {
		t.Fatalf("list lineup: %v", err)
	}
	if len(spain) != 15 {
		t.Fatalf("expected 15 Spain entries, got %d", len(spain))
	}
	for i := 1; i < len(spain); i++ {
		if spain[i].JerseyNumber < spain[i-1].JerseyNumber {
			t.Fatal("lineup entries out of jersey order")
		}
	}

	var rodriSeen bool
	for _, entry := range spain {
		if entry.PlayerName != "Rodri" {
			continue
		}
		rodriSeen = true
		if len(entry.Positions) != 1 || entry.Positions[0].To != "45:00" {
			t.Fatalf("Rodri positions did not round-trip: %+v", entry.Positions)
		}
		if !entry.Starting() {
			t.Fatal("Rodri should be a starter")
		}
	}
	if !rodriSeen {
		t.Fatal("Rodri missing from the sheet")
	}
}

func TestStoreReingestReplacesRows(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	seedMatches := memory.SeedMatches()
	seedEvents := memory.SeedEvents()
	seedLineups := memory.SeedLineups()

	if err := store.ReplaceExtract(ctx, seedMatches, seedEvents, seedLineups); err != nil {
		t.Fatalf("first ingest: %v", err)
	}

	// Second ingest carries a shorter event set for the same matches;
	// the surplus rows from the first run must disappear.
	if err := store.ReplaceExtract(ctx, seedMatches, seedEvents[:10], seedLineups); err != nil {
		t.Fatalf("second ingest: %v", err)
	}

	var eventCount int
	if err := store.DB().GetContext(ctx, &eventCount, "SELECT COUNT(*) FROM events WHERE match_id = ?", memory.SeedMatchFinal); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if eventCount != 10 {
		t.Fatalf("expected 10 events after re-ingest, got %d", eventCount)
	}

	var matchCount int
	if err := store.DB().GetContext(ctx, &matchCount, "SELECT COUNT(*) FROM matches"); err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if matchCount != len(seedMatches) {
		t.Fatalf("expected %d matches after re-ingest, got %d", len(seedMatches), matchCount)
	}
}

func TestStoreRestoresSuspectXG(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	m := match.Match{
		ID:          7,
		Competition: "UEFA Euro",
		Season:      "2024",
		Stage:       "Group A",
		HomeTeam:    "Germany",
		AwayTeam:    "Scotland",
	}
	shot := event.Event{
		ID:       "g-0001",
		MatchID:  7,
		Kind:     event.KindShot,
		Team:     "Germany",
		Player:   "Florian Wirtz",
		Minute:   10,
		Location: &pitch.Point{X: 105, Y: 37},
		Shot:     &event.ShotDetail{XG: math.NaN(), Outcome: "Goal"},
	}

	if err := store.ReplaceExtract(ctx, []match.Match{m}, []event.Event{shot}, nil); err != nil {
		t.Fatalf("replace extract: %v", err)
	}

	got, err := NewEventRepository(store.DB()).ListByMatch(ctx, 7)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 1 || got[0].Shot == nil {
		t.Fatalf("unexpected events: %+v", got)
	}
	if !math.IsNaN(got[0].Shot.XG) {
		t.Fatalf("expected NaN xG after round-trip, got %f", got[0].Shot.XG)
	}
}
