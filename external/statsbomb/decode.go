package statsbomb

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/platform/id"
	"github.com/coolstat/coolstat/internal/platform/literal"
)

func matchFromRow(t *table, row []string) (match.Match, error) {
	matchID, err := parseInt64(t.field(row, "match_id"))
	if err != nil {
		return match.Match{}, fmt.Errorf("parse match_id: %w", err)
	}
	date, err := parseMatchDate(t.field(row, "match_date"))
	if err != nil {
		return match.Match{}, fmt.Errorf("match %d: %w", matchID, err)
	}
	homeScore, err := parseOptionalInt(t.field(row, "home_score"))
	if err != nil {
		return match.Match{}, fmt.Errorf("match %d: parse home_score: %w", matchID, err)
	}
	awayScore, err := parseOptionalInt(t.field(row, "away_score"))
	if err != nil {
		return match.Match{}, fmt.Errorf("match %d: parse away_score: %w", matchID, err)
	}

	return match.Match{
		ID:           matchID,
		Competition:  t.field(row, "competition"),
		Season:       t.field(row, "season"),
		Stage:        t.field(row, "competition_stage"),
		Date:         date,
		HomeTeam:     t.field(row, "home_team"),
		AwayTeam:     t.field(row, "away_team"),
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		HomeManagers: t.field(row, "home_managers"),
		AwayManagers: t.field(row, "away_managers"),
		Referee:      t.field(row, "referee"),
		Stadium:      t.field(row, "stadium"),
	}, nil
}

// eventFromRow decodes one event row. Rows without an id column get a
// synthetic one derived from the match and row position, so the same
// extract always yields the same identifiers.
func eventFromRow(t *table, row []string, rowIndex int) (event.Event, error) {
	matchID, err := parseInt64(t.field(row, "match_id"))
	if err != nil {
		return event.Event{}, fmt.Errorf("parse match_id: %w", err)
	}

	eventID := t.field(row, "id")
	if eventID == "" {
		eventID = id.ForEventRow(matchID, rowIndex)
	}

	e := event.Event{
		ID:      eventID,
		MatchID: matchID,
		Kind:    t.field(row, "type"),
		Team:    t.field(row, "team"),
		Player:  t.field(row, "player"),
	}
	if e.Minute, err = parseOptionalInt(t.field(row, "minute")); err != nil {
		return event.Event{}, event.MalformedField(eventID, "minute", err)
	}
	if e.Second, err = parseOptionalInt(t.field(row, "second")); err != nil {
		return event.Event{}, event.MalformedField(eventID, "second", err)
	}
	if e.Period, err = parseOptionalInt(t.field(row, "period")); err != nil {
		return event.Event{}, event.MalformedField(eventID, "period", err)
	}
	if e.Location, err = decodeLocation(t.field(row, "location")); err != nil {
		return event.Event{}, event.MalformedField(eventID, "location", err)
	}

	switch e.Kind {
	case event.KindPass:
		pass := &event.PassDetail{
			Outcome:   t.field(row, "pass_outcome"),
			Type:      t.field(row, "pass_type"),
			Recipient: t.field(row, "pass_recipient"),
		}
		if pass.EndLocation, err = decodeLocation(t.field(row, "pass_end_location")); err != nil {
			return event.Event{}, event.MalformedField(eventID, "pass_end_location", err)
		}
		e.Pass = pass
	case event.KindShot:
		shot := &event.ShotDetail{
			Outcome: t.field(row, "shot_outcome"),
			Type:    t.field(row, "shot_type"),
		}
		if shot.XG, err = parseXG(t.field(row, "shot_statsbomb_xg")); err != nil {
			return event.Event{}, event.MalformedField(eventID, "shot_statsbomb_xg", err)
		}
		e.Shot = shot
	}
	return e, nil
}

func lineupFromRow(t *table, row []string) (lineup.Entry, error) {
	matchID, err := parseInt64(t.field(row, "match_id"))
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("parse match_id: %w", err)
	}
	playerID, err := parseInt64(t.field(row, "player_id"))
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("parse player_id: %w", err)
	}
	name := t.field(row, "player_name")
	jersey, err := parseOptionalInt(t.field(row, "jersey_number"))
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("player %s: parse jersey_number: %w", name, err)
	}
	positions, err := decodePositions(t.field(row, "positions"))
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("player %s: decode positions: %w", name, err)
	}

	return lineup.Entry{
		MatchID:      matchID,
		Team:         t.field(row, "country"),
		PlayerID:     playerID,
		PlayerName:   name,
		JerseyNumber: jersey,
		Positions:    positions,
	}, nil
}

// decodeLocation turns a coordinate field into a pitch point. The field
// arrives as serialized text ("[34.5, 12.1]", possibly Python-styled)
// or, from callers that kept structure, as a native list. Empty and
// None mean the event carries no coordinates. Shot locations may carry
// a third element; everything past the pair is ignored.
func decodeLocation(value any) (*pitch.Point, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		parsed, err := literal.Parse(v)
		if err != nil {
			return nil, err
		}
		if parsed == nil {
			return nil, nil
		}
		if nested, ok := parsed.(string); ok {
			return nil, fmt.Errorf("location %q is not a coordinate pair", nested)
		}
		return decodeLocation(parsed)
	case []any:
		if len(v) < 2 {
			return nil, fmt.Errorf("coordinate pair has %d element(s)", len(v))
		}
		x, okX := toFloat(v[0])
		y, okY := toFloat(v[1])
		if !okX || !okY {
			return nil, fmt.Errorf("coordinate pair holds non-numeric elements")
		}
		return &pitch.Point{X: x, Y: y}, nil
	default:
		return nil, fmt.Errorf("location of type %T is not a coordinate pair", value)
	}
}

// decodePositions turns a team-sheet positions field into position
// intervals. An unused substitute carries an empty list.
func decodePositions(value any) ([]lineup.PositionSpan, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		parsed, err := literal.Parse(v)
		if err != nil {
			return nil, err
		}
		if parsed == nil {
			return nil, nil
		}
		return decodePositions(parsed)
	case []any:
		spans := make([]lineup.PositionSpan, 0, len(v))
		for i, item := range v {
			interval, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("position %d of type %T is not an interval", i, item)
			}
			spans = append(spans, lineup.PositionSpan{
				Position: stringKey(interval, "position"),
				From:     stringKey(interval, "from"),
				To:       stringKey(interval, "to"),
			})
		}
		return spans, nil
	default:
		return nil, fmt.Errorf("positions of type %T are not a list", value)
	}
}

func stringKey(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// parseInt64 reads an integer cell, tolerating the float rendering
// ("123.0") the extract writer uses for nullable numeric columns.
func parseInt64(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty integer")
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return int64(f), nil
}

func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := parseInt64(raw)
	return int(n), err
}

// parseXG reads the shot_statsbomb_xg cell. A missing value decodes as
// NaN so the analysis layer flags the shot instead of scoring it as a
// zero-probability chance.
func parseXG(raw string) (float64, error) {
	if raw == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseMatchDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized match_date %q", raw)
}
