package event

import (
	"fmt"
	"math"

	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/domain/quality"
)

// Shot is the location-complete projection of a shot event.
type Shot struct {
	EventID string
	MatchID int64
	Team    string
	Player  string
	Minute  int
	Origin  pitch.Point
	XG      float64
	Outcome string
	Type    string
}

// Goal reports whether the shot scored.
func (s Shot) Goal() bool {
	return s.Outcome == ShotOutcomeGoal
}

// CollectShots projects the qualifying shot events of one match into
// Shot values. An xG outside [0,1] (or non-finite) is an upstream data
// error: the record is flagged and excluded, never clamped.
func CollectShots(events []Event, c ShotCriteria) ([]Shot, []quality.Warning) {
	var shots []Shot
	var warnings []quality.Warning

	for _, e := range events {
		if e.Kind != KindShot || e.Shot == nil || e.MatchID != c.MatchID {
			continue
		}
		if c.Team != "" && e.Team != c.Team {
			continue
		}
		if c.Player != "" && e.Player != c.Player {
			continue
		}
		if c.ExcludePenalties && e.Shot.Type == ShotTypePenalty {
			continue
		}
		if e.Location == nil {
			continue
		}
		if !e.Location.Inside() {
			warnings = append(warnings, quality.Warning{
				Code:    quality.CodeOutOfRangeLocation,
				MatchID: e.MatchID,
				EventID: e.ID,
				Player:  e.Player,
				Detail:  fmt.Sprintf("shot location outside %gx%g pitch: %v", pitch.Length, pitch.Width, *e.Location),
			})
			continue
		}
		if xg := e.Shot.XG; math.IsNaN(xg) || math.IsInf(xg, 0) || xg < 0 || xg > 1 {
			warnings = append(warnings, quality.Warning{
				Code:    quality.CodeSuspectXG,
				MatchID: e.MatchID,
				EventID: e.ID,
				Player:  e.Player,
				Detail:  fmt.Sprintf("xg %v outside [0,1]", e.Shot.XG),
			})
			continue
		}

		shots = append(shots, Shot{
			EventID: e.ID,
			MatchID: e.MatchID,
			Team:    e.Team,
			Player:  e.Player,
			Minute:  e.Minute,
			Origin:  *e.Location,
			XG:      e.Shot.XG,
			Outcome: e.Shot.Outcome,
			Type:    e.Shot.Type,
		})
	}

	return shots, warnings
}
