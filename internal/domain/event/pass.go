package event

import (
	"fmt"

	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/domain/quality"
)

// Pass is the location-complete projection of a pass event. Records
// without both origin and target coordinates never become a Pass.
type Pass struct {
	EventID   string
	MatchID   int64
	Team      string
	Player    string
	Recipient string
	Minute    int
	Origin    pitch.Point
	Target    pitch.Point
	Outcome   string
	Type      string
}

// Completed reports whether the pass reached a teammate. The source
// records an outcome reason only when it did not.
func (p Pass) Completed() bool {
	return p.Outcome == ""
}

// CollectPasses projects the qualifying pass events of one match into
// Pass values. Events without coordinates are skipped, out-of-range
// coordinates raise a warning and exclude the record, and throw-ins are
// dropped when the criteria say so.
func CollectPasses(events []Event, c PassCriteria) ([]Pass, []quality.Warning) {
	var passes []Pass
	var warnings []quality.Warning

	for _, e := range events {
		if e.Kind != KindPass || e.Pass == nil || e.MatchID != c.MatchID {
			continue
		}
		if c.Team != "" && e.Team != c.Team {
			continue
		}
		if c.Player != "" && e.Player != c.Player {
			continue
		}
		if c.ExcludeThrowIns && e.Pass.Type == PassTypeThrowIn {
			continue
		}
		if e.Location == nil || e.Pass.EndLocation == nil {
			continue
		}
		if !e.Location.Inside() || !e.Pass.EndLocation.Inside() {
			warnings = append(warnings, quality.Warning{
				Code:    quality.CodeOutOfRangeLocation,
				MatchID: e.MatchID,
				EventID: e.ID,
				Player:  e.Player,
				Detail: fmt.Sprintf("pass coordinates outside %gx%g pitch: origin=%v target=%v",
					pitch.Length, pitch.Width, *e.Location, *e.Pass.EndLocation),
			})
			continue
		}

		passes = append(passes, Pass{
			EventID:   e.ID,
			MatchID:   e.MatchID,
			Team:      e.Team,
			Player:    e.Player,
			Recipient: e.Pass.Recipient,
			Minute:    e.Minute,
			Origin:    *e.Location,
			Target:    *e.Pass.EndLocation,
			Outcome:   e.Pass.Outcome,
			Type:      e.Pass.Type,
		})
	}

	return passes, warnings
}

// SplitPasses partitions passes into completed and failed. Every pass
// lands in exactly one side: no outcome reason means completed,
// anything else means failed.
func SplitPasses(passes []Pass) (completed, failed []Pass) {
	for _, p := range passes {
		if p.Completed() {
			completed = append(completed, p)
		} else {
			failed = append(failed, p)
		}
	}
	return completed, failed
}
