package quality

import "fmt"

// Warning codes for non-fatal data anomalies. A flagged record is never
// patched: event aggregates exclude it, team sheets keep it visible.
const (
	CodeOutOfRangeLocation  = "OUT_OF_RANGE_LOCATION"
	CodeUnresolvedRecipient = "UNRESOLVED_RECIPIENT"
	CodeMissingIntervalEnds = "MISSING_INTERVAL_BOUNDS"
	CodeSuspectXG           = "SUSPECT_XG"
)

// Warning records a single data-integrity anomaly found while building
// an analytical structure.
type Warning struct {
	Code    string
	MatchID int64
	EventID string
	Player  string
	Detail  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s match=%d event=%s player=%q: %s", w.Code, w.MatchID, w.EventID, w.Player, w.Detail)
}
