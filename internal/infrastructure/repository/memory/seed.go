package memory

import (
	"fmt"
	"time"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/pitch"
)

// Demo match IDs. The final carries a full event set and both team
// sheets; the semi-finals are reference rows so competition and team
// listings have more than one entry.
const (
	SeedMatchSemiSpain   int64 = 3942226
	SeedMatchSemiEngland int64 = 3942227
	SeedMatchFinal       int64 = 3943043
)

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:           SeedMatchSemiSpain,
			Competition:  "UEFA Euro",
			Season:       "2024",
			Stage:        "Semi-finals",
			Date:         time.Date(2024, 7, 9, 21, 0, 0, 0, time.UTC),
			HomeTeam:     "Spain",
			AwayTeam:     "France",
			HomeScore:    2,
			AwayScore:    1,
			HomeManagers: "Luis de la Fuente",
			AwayManagers: "Didier Deschamps",
			Referee:      "Slavko Vincic",
			Stadium:      "Allianz Arena",
		},
		{
			ID:           SeedMatchSemiEngland,
			Competition:  "UEFA Euro",
			Season:       "2024",
			Stage:        "Semi-finals",
			Date:         time.Date(2024, 7, 10, 21, 0, 0, 0, time.UTC),
			HomeTeam:     "Netherlands",
			AwayTeam:     "England",
			HomeScore:    1,
			AwayScore:    2,
			HomeManagers: "Ronald Koeman",
			AwayManagers: "Gareth Southgate",
			Referee:      "Felix Zwayer",
			Stadium:      "BVB Stadion Dortmund",
		},
		{
			ID:           SeedMatchFinal,
			Competition:  "UEFA Euro",
			Season:       "2024",
			Stage:        "Final",
			Date:         time.Date(2024, 7, 14, 21, 0, 0, 0, time.UTC),
			HomeTeam:     "Spain",
			AwayTeam:     "England",
			HomeScore:    2,
			AwayScore:    1,
			HomeManagers: "Luis de la Fuente",
			AwayManagers: "Gareth Southgate",
			Referee:      "Francois Letexier",
			Stadium:      "Olympiastadion Berlin",
		},
	}
}

// SeedEvents returns the final's event set: enough first-half passing
// to draw both networks, the real goals, and the substitutions that
// bound the stable-lineup window.
func SeedEvents() []event.Event {
	spain := "Spain"
	england := "England"

	events := []event.Event{
		// Spain build-up, first half. Repeated pairs survive edge pruning.
		seedPass(2, 14, spain, "Daniel Carvajal", 78, 74, "Lamine Yamal", 96, 70, ""),
		seedPass(4, 31, spain, "Daniel Carvajal", 82, 76, "Lamine Yamal", 100, 68, ""),
		seedPass(6, 2, spain, "Lamine Yamal", 98, 72, "Daniel Carvajal", 84, 76, ""),
		seedPass(19, 45, spain, "Lamine Yamal", 102, 66, "Daniel Carvajal", 86, 74, ""),
		seedPass(8, 50, spain, "Rodri", 58, 40, "Fabian Ruiz", 70, 34, ""),
		seedPass(22, 12, spain, "Rodri", 62, 44, "Fabian Ruiz", 74, 30, ""),
		seedPass(27, 38, spain, "Rodri", 55, 38, "Daniel Carvajal", 70, 72, ""),
		seedPass(11, 20, spain, "Fabian Ruiz", 72, 32, "Rodri", 60, 42, ""),
		seedPass(35, 5, spain, "Fabian Ruiz", 68, 28, "Rodri", 57, 41, ""),
		seedPass(13, 55, spain, "Robin Le Normand", 38, 56, "Rodri", 54, 42, ""),
		seedPass(29, 10, spain, "Robin Le Normand", 42, 58, "Rodri", 58, 44, ""),
		seedPass(16, 42, spain, "Aymeric Laporte", 36, 26, "Marc Cucurella", 52, 8, ""),
		seedPass(33, 30, spain, "Aymeric Laporte", 40, 24, "Marc Cucurella", 58, 6, ""),
		seedPass(21, 8, spain, "Marc Cucurella", 60, 6, "Nico Williams", 82, 10, ""),
		seedPass(38, 18, spain, "Marc Cucurella", 64, 8, "Nico Williams", 86, 12, ""),
		seedPass(9, 34, spain, "Unai Simon", 10, 40, "Aymeric Laporte", 30, 26, ""),
		seedPass(25, 48, spain, "Unai Simon", 12, 38, "Aymeric Laporte", 32, 28, ""),
		// Single connections: kept as touches, pruned from the graph.
		seedPass(41, 15, spain, "Dani Olmo", 88, 44, "Alvaro Morata", 104, 40, ""),
		seedPass(43, 25, spain, "Nico Williams", 90, 14, "Dani Olmo", 86, 40, ""),
		// Failed and restart passes.
		seedFailedPass(31, 40, spain, "Alvaro Morata", 100, 38, 112, 44, "Incomplete"),
		seedThrowIn(36, 22, spain, "Daniel Carvajal", 80, 79, "Lamine Yamal", 92, 70),

		// England first half.
		seedPass(5, 28, england, "John Stones", 34, 40, "Declan Rice", 50, 36, ""),
		seedPass(23, 52, england, "John Stones", 38, 42, "Declan Rice", 54, 38, ""),
		seedPass(12, 16, england, "Declan Rice", 56, 34, "Kobbie Mainoo", 62, 46, ""),
		seedPass(30, 44, england, "Declan Rice", 52, 36, "Kobbie Mainoo", 60, 48, ""),
		seedPass(17, 26, england, "Kyle Walker", 30, 68, "John Stones", 32, 44, ""),
		seedPass(34, 58, england, "Kyle Walker", 28, 70, "John Stones", 30, 46, ""),
		seedPass(40, 36, england, "Kobbie Mainoo", 64, 44, "Jude Bellingham", 76, 50, ""),
		seedFailedPass(26, 20, england, "Harry Kane", 70, 40, 90, 36, "Out"),
		seedFailedPass(44, 50, england, "Jude Bellingham", 78, 52, 98, 56, "Incomplete"),
		seedThrowIn(37, 12, england, "Kyle Walker", 26, 79, "Bukayo Saka", 40, 72),

		// Second-half passing lands outside the network window but still
		// counts for the pass breakdown and the heatmap.
		seedPass(48, 52, spain, "Martin Zubimendi", 58, 42, "Lamine Yamal", 92, 68, ""),
		seedPass(52, 74, spain, "Lamine Yamal", 100, 70, "Mikel Oyarzabal", 108, 52, ""),
		seedPass(55, 78, england, "Cole Palmer", 84, 50, "Bukayo Saka", 94, 66, ""),

		// Shots. XG figures follow the broadcast post-match sheet.
		seedShot(46, 47, 17, spain, "Nico Williams", 104, 30, 0.28, "Goal", "Open Play"),
		seedShot(58, 85, 40, spain, "Mikel Oyarzabal", 112, 42, 0.16, "Goal", "Open Play"),
		seedShot(45, 45, 55, spain, "Lamine Yamal", 96, 50, 0.06, "Saved", "Open Play"),
		seedShot(56, 72, 50, england, "Cole Palmer", 95, 47, 0.09, "Goal", "Open Play"),
		seedShot(50, 18, 24, england, "Harry Kane", 106, 38, 0.04, "Blocked", "Open Play"),
		seedShot(59, 90, 12, england, "Marc Guehi", 117, 41, 0.31, "Saved", "Open Play"),

		// Substitutions. Zubimendi's entry at half time closes the
		// network window for both teams.
		seedSubstitution(47, 46, spain, "Rodri"),
		seedSubstitution(53, 61, england, "Harry Kane"),
		seedSubstitution(54, 68, spain, "Alvaro Morata"),
		seedSubstitution(57, 70, england, "Kobbie Mainoo"),

		// Untyped kinds pass through the store unchanged.
		seedTouch(3, 14, "Carry", spain, "Lamine Yamal", 96, 70),
		seedTouch(14, 55, "Pressure", england, "Declan Rice", 55, 40),
	}

	return events
}

func SeedLineups() []lineup.Entry {
	start := func(position string) []lineup.PositionSpan {
		return []lineup.PositionSpan{{Position: position, From: lineup.KickoffClock}}
	}
	startUntil := func(position, until string) []lineup.PositionSpan {
		return []lineup.PositionSpan{{Position: position, From: lineup.KickoffClock, To: until}}
	}
	sub := func(position, from string) []lineup.PositionSpan {
		return []lineup.PositionSpan{{Position: position, From: from}}
	}

	return []lineup.Entry{
		// Spain.
		seedEntry("Spain", 3468, "Unai Simon", 23, start("Goalkeeper")),
		seedEntry("Spain", 2243, "Daniel Carvajal", 2, start("Right Back")),
		seedEntry("Spain", 6748, "Robin Le Normand", 3, start("Right Center Back")),
		seedEntry("Spain", 3308, "Aymeric Laporte", 14, start("Left Center Back")),
		seedEntry("Spain", 26563, "Marc Cucurella", 24, start("Left Back")),
		seedEntry("Spain", 5199, "Rodri", 16, startUntil("Defensive Midfield", "45:00")),
		seedEntry("Spain", 7097, "Fabian Ruiz", 8, start("Left Center Midfield")),
		seedEntry("Spain", 40724, "Lamine Yamal", 19, start("Right Wing")),
		seedEntry("Spain", 7498, "Dani Olmo", 10, start("Attacking Midfield")),
		seedEntry("Spain", 21509, "Nico Williams", 17, start("Left Wing")),
		seedEntry("Spain", 5487, "Alvaro Morata", 7, startUntil("Center Forward", "67:12")),
		seedEntry("Spain", 25208, "Martin Zubimendi", 6, sub("Defensive Midfield", "45:00")),
		seedEntry("Spain", 6765, "Mikel Oyarzabal", 21, sub("Center Forward", "67:12")),
		seedEntry("Spain", 6717, "Mikel Merino", 20, nil),
		seedEntry("Spain", 6696, "Alejandro Grimaldo", 12, nil),

		// England.
		seedEntry("England", 3630, "Jordan Pickford", 1, start("Goalkeeper")),
		seedEntry("England", 3205, "Kyle Walker", 2, start("Right Center Back")),
		seedEntry("England", 3244, "John Stones", 5, start("Center Back")),
		seedEntry("England", 30714, "Marc Guehi", 6, start("Left Center Back")),
		seedEntry("England", 3093, "Bukayo Saka", 7, start("Right Wing Back")),
		seedEntry("England", 3943, "Declan Rice", 4, start("Defensive Midfield")),
		seedEntry("England", 44761, "Kobbie Mainoo", 26, startUntil("Center Midfield", "69:30")),
		seedEntry("England", 3101, "Luke Shaw", 3, start("Left Wing Back")),
		seedEntry("England", 30652, "Jude Bellingham", 10, start("Left Attacking Midfield")),
		seedEntry("England", 10955, "Phil Foden", 11, start("Right Attacking Midfield")),
		seedEntry("England", 10956, "Harry Kane", 9, startUntil("Center Forward", "60:15")),
		seedEntry("England", 22084, "Ollie Watkins", 19, sub("Center Forward", "60:15")),
		seedEntry("England", 31452, "Cole Palmer", 24, sub("Center Midfield", "69:30")),
		seedEntry("England", 7797, "Ivan Toney", 17, nil),
		seedEntry("England", 3254, "Trent Alexander-Arnold", 8, nil),
	}
}

func seedPass(seq, minute int, team, passer string, x, y float64, recipient string, endX, endY float64, outcome string) event.Event {
	return event.Event{
		ID:       seedEventID(seq),
		MatchID:  SeedMatchFinal,
		Kind:     event.KindPass,
		Team:     team,
		Player:   passer,
		Minute:   minute,
		Period:   seedPeriod(minute),
		Location: &pitch.Point{X: x, Y: y},
		Pass: &event.PassDetail{
			EndLocation: &pitch.Point{X: endX, Y: endY},
			Outcome:     outcome,
			Recipient:   recipient,
		},
	}
}

func seedFailedPass(seq, minute int, team, passer string, x, y, endX, endY float64, outcome string) event.Event {
	return seedPass(seq, minute, team, passer, x, y, "", endX, endY, outcome)
}

func seedThrowIn(seq, minute int, team, passer string, x, y float64, recipient string, endX, endY float64) event.Event {
	e := seedPass(seq, minute, team, passer, x, y, recipient, endX, endY, "")
	e.Pass.Type = event.PassTypeThrowIn
	return e
}

func seedShot(seq, minute, second int, team, player string, x, y, xg float64, outcome, shotType string) event.Event {
	return event.Event{
		ID:       seedEventID(seq),
		MatchID:  SeedMatchFinal,
		Kind:     event.KindShot,
		Team:     team,
		Player:   player,
		Minute:   minute,
		Second:   second,
		Period:   seedPeriod(minute),
		Location: &pitch.Point{X: x, Y: y},
		Shot:     &event.ShotDetail{XG: xg, Outcome: outcome, Type: shotType},
	}
}

func seedSubstitution(seq, minute int, team, playerOff string) event.Event {
	return event.Event{
		ID:      seedEventID(seq),
		MatchID: SeedMatchFinal,
		Kind:    event.KindSubstitution,
		Team:    team,
		Player:  playerOff,
		Minute:  minute,
		Period:  seedPeriod(minute),
	}
}

func seedTouch(seq, minute int, kind, team, player string, x, y float64) event.Event {
	return event.Event{
		ID:       seedEventID(seq),
		MatchID:  SeedMatchFinal,
		Kind:     kind,
		Team:     team,
		Player:   player,
		Minute:   minute,
		Period:   seedPeriod(minute),
		Location: &pitch.Point{X: x, Y: y},
	}
}

func seedEntry(team string, playerID int64, name string, jersey int, positions []lineup.PositionSpan) lineup.Entry {
	return lineup.Entry{
		MatchID:      SeedMatchFinal,
		Team:         team,
		PlayerID:     playerID,
		PlayerName:   name,
		JerseyNumber: jersey,
		Positions:    positions,
	}
}

func seedEventID(seq int) string {
	return fmt.Sprintf("final-%04d", seq)
}

func seedPeriod(minute int) int {
	if minute < 46 {
		return 1
	}
	return 2
}
