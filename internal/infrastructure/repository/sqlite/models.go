package sqlite

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/bytedance/sonic"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/pitch"
)

type matchTableModel struct {
	ID           int64  `db:"id"`
	Competition  string `db:"competition"`
	Season       string `db:"season"`
	Stage        string `db:"stage"`
	Date         string `db:"match_date"`
	HomeTeam     string `db:"home_team"`
	AwayTeam     string `db:"away_team"`
	HomeScore    int    `db:"home_score"`
	AwayScore    int    `db:"away_score"`
	HomeManagers string `db:"home_managers"`
	AwayManagers string `db:"away_managers"`
	Referee      string `db:"referee"`
	Stadium      string `db:"stadium"`
}

func matchRowFromDomain(m match.Match) matchTableModel {
	return matchTableModel{
		ID:           m.ID,
		Competition:  m.Competition,
		Season:       m.Season,
		Stage:        m.Stage,
		Date:         m.Date.UTC().Format(time.RFC3339),
		HomeTeam:     m.HomeTeam,
		AwayTeam:     m.AwayTeam,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		HomeManagers: m.HomeManagers,
		AwayManagers: m.AwayManagers,
		Referee:      m.Referee,
		Stadium:      m.Stadium,
	}
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	date, err := time.Parse(time.RFC3339, row.Date)
	if err != nil {
		return match.Match{}, fmt.Errorf("parse match %d date: %w", row.ID, err)
	}

	return match.Match{
		ID:           row.ID,
		Competition:  row.Competition,
		Season:       row.Season,
		Stage:        row.Stage,
		Date:         date,
		HomeTeam:     row.HomeTeam,
		AwayTeam:     row.AwayTeam,
		HomeScore:    row.HomeScore,
		AwayScore:    row.AwayScore,
		HomeManagers: row.HomeManagers,
		AwayManagers: row.AwayManagers,
		Referee:      row.Referee,
		Stadium:      row.Stadium,
	}, nil
}

type eventTableModel struct {
	MatchID       int64           `db:"match_id"`
	ID            string          `db:"id"`
	Seq           int             `db:"seq"`
	Kind          string          `db:"kind"`
	Team          string          `db:"team"`
	Player        string          `db:"player"`
	Minute        int             `db:"minute"`
	Second        int             `db:"second"`
	Period        int             `db:"period"`
	LocationX     sql.NullFloat64 `db:"location_x"`
	LocationY     sql.NullFloat64 `db:"location_y"`
	PassEndX      sql.NullFloat64 `db:"pass_end_x"`
	PassEndY      sql.NullFloat64 `db:"pass_end_y"`
	PassOutcome   sql.NullString  `db:"pass_outcome"`
	PassType      sql.NullString  `db:"pass_type"`
	PassRecipient sql.NullString  `db:"pass_recipient"`
	ShotXG        sql.NullFloat64 `db:"shot_xg"`
	ShotOutcome   sql.NullString  `db:"shot_outcome"`
	ShotType      sql.NullString  `db:"shot_type"`
}

// eventRowFromDomain flattens the event payloads into nullable columns.
// seq preserves the source order the repository reads back in.
func eventRowFromDomain(e event.Event, seq int) eventTableModel {
	row := eventTableModel{
		MatchID: e.MatchID,
		ID:      e.ID,
		Seq:     seq,
		Kind:    e.Kind,
		Team:    e.Team,
		Player:  e.Player,
		Minute:  e.Minute,
		Second:  e.Second,
		Period:  e.Period,
	}

	if e.Location != nil {
		row.LocationX = sql.NullFloat64{Float64: e.Location.X, Valid: true}
		row.LocationY = sql.NullFloat64{Float64: e.Location.Y, Valid: true}
	}
	if e.Pass != nil {
		if e.Pass.EndLocation != nil {
			row.PassEndX = sql.NullFloat64{Float64: e.Pass.EndLocation.X, Valid: true}
			row.PassEndY = sql.NullFloat64{Float64: e.Pass.EndLocation.Y, Valid: true}
		}
		row.PassOutcome = sql.NullString{String: e.Pass.Outcome, Valid: true}
		row.PassType = sql.NullString{String: e.Pass.Type, Valid: true}
		row.PassRecipient = sql.NullString{String: e.Pass.Recipient, Valid: true}
	}
	if e.Shot != nil {
		// SQLite has no representation for NaN, so a suspect xG is
		// stored as NULL and restored as NaN on the way out.
		if !math.IsNaN(e.Shot.XG) && !math.IsInf(e.Shot.XG, 0) {
			row.ShotXG = sql.NullFloat64{Float64: e.Shot.XG, Valid: true}
		}
		row.ShotOutcome = sql.NullString{String: e.Shot.Outcome, Valid: true}
		row.ShotType = sql.NullString{String: e.Shot.Type, Valid: true}
	}

	return row
}

func eventFromRow(row eventTableModel) event.Event {
	e := event.Event{
		ID:      row.ID,
		MatchID: row.MatchID,
		Kind:    row.Kind,
		Team:    row.Team,
		Player:  row.Player,
		Minute:  row.Minute,
		Second:  row.Second,
		Period:  row.Period,
	}

	if row.LocationX.Valid && row.LocationY.Valid {
		e.Location = &pitch.Point{X: row.LocationX.Float64, Y: row.LocationY.Float64}
	}

	switch row.Kind {
	case event.KindPass:
		detail := &event.PassDetail{
			Outcome:   row.PassOutcome.String,
			Type:      row.PassType.String,
			Recipient: row.PassRecipient.String,
		}
		if row.PassEndX.Valid && row.PassEndY.Valid {
			detail.EndLocation = &pitch.Point{X: row.PassEndX.Float64, Y: row.PassEndY.Float64}
		}
		e.Pass = detail
	case event.KindShot:
		xg := math.NaN()
		if row.ShotXG.Valid {
			xg = row.ShotXG.Float64
		}
		e.Shot = &event.ShotDetail{
			XG:      xg,
			Outcome: row.ShotOutcome.String,
			Type:    row.ShotType.String,
		}
	}

	return e
}

type lineupTableModel struct {
	MatchID      int64  `db:"match_id"`
	Team         string `db:"team"`
	PlayerID     int64  `db:"player_id"`
	PlayerName   string `db:"player_name"`
	JerseyNumber int    `db:"jersey_number"`
	Positions    string `db:"positions"`
}

type positionSpanModel struct {
	Position string `json:"position"`
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
}

func lineupRowFromDomain(e lineup.Entry) (lineupTableModel, error) {
	spans := make([]positionSpanModel, 0, len(e.Positions))
	for _, span := range e.Positions {
		spans = append(spans, positionSpanModel{Position: span.Position, From: span.From, To: span.To})
	}

	encoded, err := sonic.MarshalString(spans)
	if err != nil {
		return lineupTableModel{}, fmt.Errorf("encode positions for %s: %w", e.PlayerName, err)
	}

	return lineupTableModel{
		MatchID:      e.MatchID,
		Team:         e.Team,
		PlayerID:     e.PlayerID,
		PlayerName:   e.PlayerName,
		JerseyNumber: e.JerseyNumber,
		Positions:    encoded,
	}, nil
}

func lineupEntryFromRow(row lineupTableModel) (lineup.Entry, error) {
	var spans []positionSpanModel
	if err := sonic.UnmarshalString(row.Positions, &spans); err != nil {
		return lineup.Entry{}, fmt.Errorf("decode positions for %s: %w", row.PlayerName, err)
	}

	positions := make([]lineup.PositionSpan, 0, len(spans))
	for _, span := range spans {
		positions = append(positions, lineup.PositionSpan{Position: span.Position, From: span.From, To: span.To})
	}

	return lineup.Entry{
		MatchID:      row.MatchID,
		Team:         row.Team,
		PlayerID:     row.PlayerID,
		PlayerName:   row.PlayerName,
		JerseyNumber: row.JerseyNumber,
		Positions:    positions,
	}, nil
}
