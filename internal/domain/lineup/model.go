package lineup

// KickoffClock is the match-clock value that marks a starting position
// interval.
const KickoffClock = "00:00"

// PositionSpan is one interval a player spent in a position, bounds on
// the match clock as "MM:SS". An empty To means the player stayed on
// until the end.
type PositionSpan struct {
	Position string
	From     string
	To       string
}

// StartsAtKickoff reports whether the interval begins at 00:00.
func (s PositionSpan) StartsAtKickoff() bool {
	return s.From == KickoffClock
}

// Entry is one player's row on a match team sheet.
type Entry struct {
	MatchID      int64
	Team         string
	PlayerID     int64
	PlayerName   string
	JerseyNumber int
	Positions    []PositionSpan
}

// Starting reports whether the player was in the starting XI: some
// position interval begins at kickoff.
func (e Entry) Starting() bool {
	for _, span := range e.Positions {
		if span.StartsAtKickoff() {
			return true
		}
	}
	return false
}

// Played reports whether the player saw the pitch at all.
func (e Entry) Played() bool {
	return len(e.Positions) > 0
}

// Roster resolves player names to jersey numbers for one match side.
type Roster map[string]int

// NewRoster builds a Roster from team-sheet entries.
func NewRoster(entries []Entry) Roster {
	roster := make(Roster, len(entries))
	for _, e := range entries {
		roster[e.PlayerName] = e.JerseyNumber
	}
	return roster
}

// Resolve looks a player name up, reporting whether it is on the sheet.
func (r Roster) Resolve(playerName string) (int, bool) {
	jersey, ok := r[playerName]
	return jersey, ok
}
