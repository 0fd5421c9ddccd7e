package event

import "github.com/coolstat/coolstat/internal/domain/pitch"

// Event kinds the pipeline inspects. The extracts carry more kinds
// (duels, carries, pressure, ...); those pass through untyped.
const (
	KindPass           = "Pass"
	KindShot           = "Shot"
	KindSubstitution   = "Substitution"
	KindOwnGoalAgainst = "Own Goal Against"
)

const (
	PassTypeThrowIn = "Throw-in"
	ShotTypePenalty = "Penalty"
	ShotOutcomeGoal = "Goal"
)

// Event is one on-pitch action, immutable once loaded. Location is nil
// when the source row carries no coordinates; it is never zeroed.
type Event struct {
	ID       string
	MatchID  int64
	Kind     string
	Team     string
	Player   string
	Minute   int
	Second   int
	Period   int
	Location *pitch.Point
	Pass     *PassDetail
	Shot     *ShotDetail
}

// PassDetail holds the pass-specific payload. An empty Outcome means
// the pass was successful: the source records a reason only on failure.
type PassDetail struct {
	EndLocation *pitch.Point
	Outcome     string
	Type        string
	Recipient   string
}

// ShotDetail holds the shot-specific payload.
type ShotDetail struct {
	XG      float64
	Outcome string
	Type    string
}
