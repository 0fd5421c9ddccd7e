package match

import (
	"fmt"
	"time"
)

// Match is one fixture's reference row: identity, result, and the
// report metadata shown on match headers.
type Match struct {
	ID           int64
	Competition  string
	Season       string
	Stage        string
	Date         time.Time
	HomeTeam     string
	AwayTeam     string
	HomeScore    int
	AwayScore    int
	HomeManagers string
	AwayManagers string
	Referee      string
	Stadium      string
}

// Label renders the human identifier used to pick a match:
// "(Stage) Home h - a Away".
func (m Match) Label() string {
	return fmt.Sprintf("(%s) %s %d - %d %s", m.Stage, m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam)
}

// HasTeam reports whether the team played in this match, home or away.
func (m Match) HasTeam(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// Opponent returns the other side, or "" when the team did not play.
func (m Match) Opponent(team string) string {
	switch team {
	case m.HomeTeam:
		return m.AwayTeam
	case m.AwayTeam:
		return m.HomeTeam
	default:
		return ""
	}
}
