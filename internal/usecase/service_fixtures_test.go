package usecase

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/pitch"
)

// One fully worked final used across the service tests. Spain completes
// four open-play passes (plus a throw-in and a failed attempt); the
// first substitution of the match is at minute 46, so the pass network
// window keeps only the two Rodri -> Yamal passes and Yamal's return.
const finalMatchID int64 = 901

func finalMatch() match.Match {
	return match.Match{
		ID:          finalMatchID,
		Competition: "UEFA Euro",
		Season:      "2024",
		Stage:       "Final",
		Date:        time.Date(2024, 7, 14, 21, 0, 0, 0, time.UTC),
		HomeTeam:    "Spain",
		AwayTeam:    "England",
		HomeScore:   2,
		AwayScore:   1,
		Referee:     "François Letexier",
		Stadium:     "Olympiastadion Berlin",
	}
}

func pt(x, y float64) *pitch.Point {
	return &pitch.Point{X: x, Y: y}
}

func finalEvents() []event.Event {
	return []event.Event{
		// Two completed Rodri -> Yamal passes inside the network window.
		{ID: "e1", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Rodri", Minute: 10, Location: pt(40, 30),
			Pass: &event.PassDetail{EndLocation: pt(60, 20), Recipient: "Lamine Yamal"}},
		{ID: "e2", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Rodri", Minute: 20, Location: pt(44, 34),
			Pass: &event.PassDetail{EndLocation: pt(62, 22), Recipient: "Lamine Yamal"}},
		// Return ball, single occurrence: its edge gets pruned.
		{ID: "e3", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Lamine Yamal", Minute: 5, Location: pt(70, 20),
			Pass: &event.PassDetail{EndLocation: pt(45, 28), Recipient: "Rodri"}},
		// Completed after the first substitution: counts for the
		// breakdown, not for the network.
		{ID: "e4", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Nico Williams", Minute: 50, Location: pt(55, 40),
			Pass: &event.PassDetail{EndLocation: pt(80, 44), Recipient: "Álvaro Morata"}},
		// Throw-in, excluded under the default policy.
		{ID: "e5", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Dani Carvajal", Minute: 8, Location: pt(50, 0.5),
			Pass: &event.PassDetail{EndLocation: pt(58, 12), Recipient: "Rodri", Type: event.PassTypeThrowIn}},
		// Failed pass.
		{ID: "e6", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Álvaro Morata", Minute: 15, Location: pt(90, 40),
			Pass: &event.PassDetail{EndLocation: pt(100, 50), Outcome: "Incomplete", Recipient: "Nico Williams"}},
		// No coordinates: silently skipped.
		{ID: "e7", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Rodri", Minute: 33,
			Pass: &event.PassDetail{Recipient: "Dani Carvajal"}},
		// Out-of-range origin: warned and excluded.
		{ID: "e8", MatchID: finalMatchID, Kind: event.KindPass, Team: "Spain", Player: "Dani Carvajal", Minute: 41, Location: pt(130, 30),
			Pass: &event.PassDetail{EndLocation: pt(70, 30), Recipient: "Rodri"}},
		// England's only completed pass before the window closes.
		{ID: "e9", MatchID: finalMatchID, Kind: event.KindPass, Team: "England", Player: "Harry Kane", Minute: 30, Location: pt(60, 40),
			Pass: &event.PassDetail{EndLocation: pt(40, 36), Recipient: "Declan Rice"}},

		// Substitutions on both sides; the earliest bounds the window.
		{ID: "e10", MatchID: finalMatchID, Kind: event.KindSubstitution, Team: "Spain", Player: "Rodri", Minute: 46},
		{ID: "e11", MatchID: finalMatchID, Kind: event.KindSubstitution, Team: "England", Player: "Harry Kane", Minute: 61},

		// Shots.
		{ID: "s1", MatchID: finalMatchID, Kind: event.KindShot, Team: "Spain", Player: "Nico Williams", Minute: 47, Location: pt(105, 35),
			Shot: &event.ShotDetail{XG: 0.28, Outcome: event.ShotOutcomeGoal, Type: "Open Play"}},
		{ID: "s2", MatchID: finalMatchID, Kind: event.KindShot, Team: "Spain", Player: "Mikel Oyarzabal", Minute: 86, Location: pt(108, 38),
			Shot: &event.ShotDetail{XG: 0.45, Outcome: event.ShotOutcomeGoal, Type: "Open Play"}},
		{ID: "s3", MatchID: finalMatchID, Kind: event.KindShot, Team: "Spain", Player: "Lamine Yamal", Minute: 63, Location: pt(95, 30),
			Shot: &event.ShotDetail{XG: 0.07, Outcome: "Saved", Type: "Open Play"}},
		{ID: "s4", MatchID: finalMatchID, Kind: event.KindShot, Team: "England", Player: "Cole Palmer", Minute: 73, Location: pt(100, 45),
			Shot: &event.ShotDetail{XG: 0.11, Outcome: event.ShotOutcomeGoal, Type: "Open Play"}},
		{ID: "s5", MatchID: finalMatchID, Kind: event.KindShot, Team: "England", Player: "Harry Kane", Minute: 18, Location: pt(108, 40),
			Shot: &event.ShotDetail{XG: 0.76, Outcome: "Saved", Type: event.ShotTypePenalty}},
		// Broken upstream xG: warned and excluded.
		{ID: "s6", MatchID: finalMatchID, Kind: event.KindShot, Team: "England", Player: "Ollie Watkins", Minute: 80, Location: pt(102, 36),
			Shot: &event.ShotDetail{XG: 1.4, Outcome: "Off T", Type: "Open Play"}},
	}
}

func finalLineups() []lineup.Entry {
	span := func(position, from, to string) []lineup.PositionSpan {
		return []lineup.PositionSpan{{Position: position, From: from, To: to}}
	}

	return []lineup.Entry{
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3100, PlayerName: "Unai Simón", JerseyNumber: 23, Positions: span("Goalkeeper", "00:00", "")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3101, PlayerName: "Dani Carvajal", JerseyNumber: 2, Positions: span("Right Back", "00:00", "")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3102, PlayerName: "Rodri", JerseyNumber: 16, Positions: span("Defensive Midfield", "00:00", "45:00")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3103, PlayerName: "Lamine Yamal", JerseyNumber: 19, Positions: span("Right Wing", "00:00", "")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3104, PlayerName: "Nico Williams", JerseyNumber: 17, Positions: span("Left Wing", "00:00", "")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3105, PlayerName: "Álvaro Morata", JerseyNumber: 7, Positions: span("Striker", "00:00", "67:12")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3106, PlayerName: "Martín Zubimendi", JerseyNumber: 6, Positions: span("Defensive Midfield", "46:00", "")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3107, PlayerName: "Mikel Oyarzabal", JerseyNumber: 21, Positions: span("Striker", "67:12", "")},
		{MatchID: finalMatchID, Team: "Spain", PlayerID: 3108, PlayerName: "Mikel Merino", JerseyNumber: 8},

		{MatchID: finalMatchID, Team: "England", PlayerID: 3200, PlayerName: "Jordan Pickford", JerseyNumber: 1, Positions: span("Goalkeeper", "00:00", "")},
		{MatchID: finalMatchID, Team: "England", PlayerID: 3201, PlayerName: "Declan Rice", JerseyNumber: 4, Positions: span("Defensive Midfield", "00:00", "")},
		{MatchID: finalMatchID, Team: "England", PlayerID: 3202, PlayerName: "Harry Kane", JerseyNumber: 9, Positions: span("Striker", "00:00", "60:00")},
		{MatchID: finalMatchID, Team: "England", PlayerID: 3203, PlayerName: "Ollie Watkins", JerseyNumber: 19, Positions: span("Striker", "61:00", "")},
		{MatchID: finalMatchID, Team: "England", PlayerID: 3204, PlayerName: "Cole Palmer", JerseyNumber: 10, Positions: span("Attacking Midfield", "70:00", "")},
		{MatchID: finalMatchID, Team: "England", PlayerID: 3205, PlayerName: "Ivan Toney", JerseyNumber: 17},
	}
}

type stubMatchRepository struct {
	matches map[int64]match.Match
}

func (s *stubMatchRepository) ListCompetitions(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{}, len(s.matches))
	out := make([]string, 0, len(s.matches))
	for _, m := range s.matches {
		if _, ok := seen[m.Competition]; ok {
			continue
		}
		seen[m.Competition] = struct{}{}
		out = append(out, m.Competition)
	}
	sort.Strings(out)
	return out, nil
}

func (s *stubMatchRepository) ListByCompetition(_ context.Context, competition string) ([]match.Match, error) {
	var out []match.Match
	for _, m := range s.matches {
		if m.Competition == competition {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *stubMatchRepository) ListByTeam(_ context.Context, competition, team string) ([]match.Match, error) {
	var out []match.Match
	for _, m := range s.matches {
		if m.Competition == competition && m.HasTeam(team) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *stubMatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	m, ok := s.matches[id]
	return m, ok, nil
}

type stubEventRepository struct {
	events map[int64][]event.Event
	calls  atomic.Int32
	err    error
}

func (s *stubEventRepository) ListByMatch(_ context.Context, matchID int64) ([]event.Event, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	items := s.events[matchID]
	out := make([]event.Event, len(items))
	copy(out, items)
	return out, nil
}

type stubLineupRepository struct {
	entries map[int64][]lineup.Entry
	err     error
}

func (s *stubLineupRepository) ListByMatch(_ context.Context, matchID int64) ([]lineup.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	items := s.entries[matchID]
	out := make([]lineup.Entry, len(items))
	copy(out, items)
	return out, nil
}

func (s *stubLineupRepository) ListByMatchTeam(_ context.Context, matchID int64, team string) ([]lineup.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []lineup.Entry
	for _, e := range s.entries[matchID] {
		if e.Team == team {
			out = append(out, e)
		}
	}
	return out, nil
}

func newFinalRepos() (*stubMatchRepository, *stubEventRepository, *stubLineupRepository) {
	m := finalMatch()
	return &stubMatchRepository{matches: map[int64]match.Match{m.ID: m}},
		&stubEventRepository{events: map[int64][]event.Event{m.ID: finalEvents()}},
		&stubLineupRepository{entries: map[int64][]lineup.Entry{m.ID: finalLineups()}}
}
