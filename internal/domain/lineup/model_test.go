package lineup

import (
	"testing"

	"github.com/coolstat/coolstat/internal/domain/quality"
)

func TestEntryStarting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		positions []PositionSpan
		starting  bool
		played    bool
	}{
		{
			name:      "kickoff interval is starting",
			positions: []PositionSpan{{Position: "Goalkeeper", From: "00:00", To: "90:00"}},
			starting:  true,
			played:    true,
		},
		{
			name:      "late interval is substitute",
			positions: []PositionSpan{{Position: "Forward", From: "65:23", To: "90:00"}},
			starting:  false,
			played:    true,
		},
		{
			name:      "position switch keeps starter status",
			positions: []PositionSpan{{Position: "Right Wing", From: "00:00", To: "46:00"}, {Position: "Striker", From: "46:00", To: "90:00"}},
			starting:  true,
			played:    true,
		},
		{
			name:      "empty positions never played",
			positions: nil,
			starting:  false,
			played:    false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entry := Entry{PlayerName: "p", Positions: tc.positions}
			if got := entry.Starting(); got != tc.starting {
				t.Fatalf("Starting() = %t, want %t", got, tc.starting)
			}
			if got := entry.Played(); got != tc.played {
				t.Fatalf("Played() = %t, want %t", got, tc.played)
			}
		})
	}
}

func TestBuildSheetSplitsAndSorts(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{PlayerName: "sub late", JerseyNumber: 20, Positions: []PositionSpan{{Position: "Forward", From: "70:00", To: "90:00"}}},
		{PlayerName: "keeper", JerseyNumber: 1, Positions: []PositionSpan{{Position: "Goalkeeper", From: "00:00", To: "90:00"}}},
		{PlayerName: "bench", JerseyNumber: 13},
		{PlayerName: "captain", JerseyNumber: 10, Positions: []PositionSpan{{Position: "Striker", From: "00:00", To: "90:00"}}},
		{PlayerName: "sub early", JerseyNumber: 7, Positions: []PositionSpan{{Position: "Left Wing", From: "46:00", To: "90:00"}}},
	}

	sheet := BuildSheet(42, "Spain", entries)

	wantStarting := []int{1, 10}
	if len(sheet.Starting) != len(wantStarting) {
		t.Fatalf("starting count = %d, want %d", len(sheet.Starting), len(wantStarting))
	}
	for i, jersey := range wantStarting {
		if sheet.Starting[i].JerseyNumber != jersey {
			t.Fatalf("starting[%d] jersey = %d, want %d", i, sheet.Starting[i].JerseyNumber, jersey)
		}
	}

	wantSubs := []int{7, 20}
	for i, jersey := range wantSubs {
		if sheet.Substitutes[i].JerseyNumber != jersey {
			t.Fatalf("substitutes[%d] jersey = %d, want %d", i, sheet.Substitutes[i].JerseyNumber, jersey)
		}
	}

	if len(sheet.Unused) != 1 || sheet.Unused[0].JerseyNumber != 13 {
		t.Fatalf("unused = %+v, want single jersey 13", sheet.Unused)
	}
	if got := len(sheet.Played()); got != 4 {
		t.Fatalf("Played() count = %d, want 4", got)
	}
}

func TestBuildSheetWarnsOnMissingIntervalBounds(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{PlayerName: "ghost", JerseyNumber: 4, Positions: []PositionSpan{{Position: "Center Back"}}},
	}

	sheet := BuildSheet(42, "Spain", entries)

	if len(sheet.Warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(sheet.Warnings))
	}
	if sheet.Warnings[0].Code != quality.CodeMissingIntervalEnds {
		t.Fatalf("warning code = %s, want %s", sheet.Warnings[0].Code, quality.CodeMissingIntervalEnds)
	}
	// The entry still counts as having played; it is not dropped.
	if len(sheet.Substitutes) != 1 {
		t.Fatalf("entry with faulty interval was dropped: %+v", sheet)
	}
}

func TestRosterResolve(t *testing.T) {
	t.Parallel()

	roster := NewRoster([]Entry{
		{PlayerName: "Jordi Alba Ramos", JerseyNumber: 18},
		{PlayerName: "Mikel Oyarzabal Ugarte", JerseyNumber: 21},
	})

	jersey, ok := roster.Resolve("Jordi Alba Ramos")
	if !ok || jersey != 18 {
		t.Fatalf("Resolve = (%d, %t), want (18, true)", jersey, ok)
	}
	if _, ok := roster.Resolve("not on the sheet"); ok {
		t.Fatal("Resolve found a player not on the sheet")
	}
}
