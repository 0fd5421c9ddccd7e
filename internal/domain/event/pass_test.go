package event

import (
	"testing"

	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/domain/quality"
)

func passEvent(id string, mutate func(*Event)) Event {
	e := Event{
		ID:       id,
		MatchID:  1,
		Kind:     KindPass,
		Team:     "Spain",
		Player:   "midfielder",
		Minute:   12,
		Location: &pitch.Point{X: 40, Y: 30},
		Pass: &PassDetail{
			EndLocation: &pitch.Point{X: 55, Y: 35},
			Recipient:   "winger",
		},
	}
	if mutate != nil {
		mutate(&e)
	}
	return e
}

func TestCollectPassesFilters(t *testing.T) {
	t.Parallel()

	events := []Event{
		passEvent("keep", nil),
		passEvent("other-match", func(e *Event) { e.MatchID = 2 }),
		passEvent("other-team", func(e *Event) { e.Team = "Italy" }),
		passEvent("other-player", func(e *Event) { e.Player = "keeper" }),
		passEvent("throw-in", func(e *Event) { e.Pass.Type = PassTypeThrowIn }),
		passEvent("no-origin", func(e *Event) { e.Location = nil }),
		passEvent("no-target", func(e *Event) { e.Pass.EndLocation = nil }),
		{ID: "shot", MatchID: 1, Kind: KindShot, Team: "Spain", Player: "midfielder"},
	}

	passes, warnings := CollectPasses(events, PassCriteria{
		MatchID:         1,
		Team:            "Spain",
		Player:          "midfielder",
		ExcludeThrowIns: true,
	})

	if len(passes) != 1 || passes[0].EventID != "keep" {
		t.Fatalf("passes = %+v, want only %q", passes, "keep")
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %+v, want none", warnings)
	}
}

func TestCollectPassesKeepsThrowInsWhenAllowed(t *testing.T) {
	t.Parallel()

	events := []Event{passEvent("throw-in", func(e *Event) { e.Pass.Type = PassTypeThrowIn })}

	passes, _ := CollectPasses(events, PassCriteria{MatchID: 1})
	if len(passes) != 1 {
		t.Fatalf("passes = %+v, want the throw-in kept", passes)
	}
}

func TestCollectPassesWarnsOnOutOfRangeCoordinates(t *testing.T) {
	t.Parallel()

	events := []Event{
		passEvent("oob", func(e *Event) { e.Location = &pitch.Point{X: 150, Y: 30} }),
		passEvent("ok", nil),
	}

	passes, warnings := CollectPasses(events, PassCriteria{MatchID: 1})

	if len(passes) != 1 || passes[0].EventID != "ok" {
		t.Fatalf("passes = %+v, want the out-of-range record excluded", passes)
	}
	if len(warnings) != 1 || warnings[0].Code != quality.CodeOutOfRangeLocation {
		t.Fatalf("warnings = %+v, want one out-of-range warning", warnings)
	}
	if warnings[0].EventID != "oob" {
		t.Fatalf("warning event = %q, want %q", warnings[0].EventID, "oob")
	}
}

func TestSplitPassesPartition(t *testing.T) {
	t.Parallel()

	events := []Event{
		passEvent("c1", nil),
		passEvent("f1", func(e *Event) { e.Pass.Outcome = "Incomplete" }),
		passEvent("c2", nil),
		passEvent("f2", func(e *Event) { e.Pass.Outcome = "Out" }),
		passEvent("f3", func(e *Event) { e.Pass.Outcome = "Pass Offside" }),
	}

	passes, _ := CollectPasses(events, PassCriteria{MatchID: 1})
	completed, failed := SplitPasses(passes)

	if len(completed)+len(failed) != len(passes) {
		t.Fatalf("partition lost records: %d + %d != %d", len(completed), len(failed), len(passes))
	}
	seen := make(map[string]int)
	for _, p := range completed {
		if !p.Completed() {
			t.Fatalf("failed pass %q classified completed", p.EventID)
		}
		seen[p.EventID]++
	}
	for _, p := range failed {
		if p.Completed() {
			t.Fatalf("completed pass %q classified failed", p.EventID)
		}
		seen[p.EventID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("pass %q classified %d times", id, count)
		}
	}
	if len(completed) != 2 || len(failed) != 3 {
		t.Fatalf("split = %d completed, %d failed; want 2 and 3", len(completed), len(failed))
	}
}
