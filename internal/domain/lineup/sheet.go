package lineup

import (
	"fmt"
	"sort"

	"github.com/coolstat/coolstat/internal/domain/quality"
)

// Sheet is a team's lineup split the way match reports present it:
// starting XI, substitutes who came on, and the unused bench.
type Sheet struct {
	MatchID     int64
	Team        string
	Starting    []Entry
	Substitutes []Entry
	Unused      []Entry
	Warnings    []quality.Warning
}

// BuildSheet classifies team-sheet entries. A position interval with
// neither bound set is a data-integrity fault: the entry is kept and a
// warning raised, because dropping it would silently shrink the squad.
func BuildSheet(matchID int64, team string, entries []Entry) Sheet {
	sheet := Sheet{MatchID: matchID, Team: team}

	for _, e := range entries {
		for _, span := range e.Positions {
			if span.Position != "" && span.From == "" && span.To == "" {
				sheet.Warnings = append(sheet.Warnings, quality.Warning{
					Code:    quality.CodeMissingIntervalEnds,
					MatchID: matchID,
					Player:  e.PlayerName,
					Detail:  fmt.Sprintf("position %q has no interval bounds", span.Position),
				})
			}
		}

		switch {
		case e.Starting():
			sheet.Starting = append(sheet.Starting, e)
		case e.Played():
			sheet.Substitutes = append(sheet.Substitutes, e)
		default:
			sheet.Unused = append(sheet.Unused, e)
		}
	}

	sortByJersey(sheet.Starting)
	sortByJersey(sheet.Substitutes)
	sortByJersey(sheet.Unused)

	return sheet
}

// Played returns everyone who saw the pitch, starters first.
func (s Sheet) Played() []Entry {
	played := make([]Entry, 0, len(s.Starting)+len(s.Substitutes))
	played = append(played, s.Starting...)
	played = append(played, s.Substitutes...)
	return played
}

func sortByJersey(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].JerseyNumber < entries[j].JerseyNumber
	})
}
