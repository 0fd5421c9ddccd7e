package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/coolstat/coolstat/internal/domain/density"
	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/match"
	"github.com/coolstat/coolstat/internal/domain/passnet"
	"github.com/coolstat/coolstat/internal/domain/quality"
	"github.com/coolstat/coolstat/internal/usecase"
)

// The view types are the machine-readable output contract of --json.
// Coordinates render as [x, y] pairs, the shape the extracts use.

type pointView [2]float64

type matchView struct {
	ID           int64  `json:"id"`
	Competition  string `json:"competition"`
	Season       string `json:"season,omitempty"`
	Stage        string `json:"stage"`
	Date         string `json:"date"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	HomeScore    int    `json:"home_score"`
	AwayScore    int    `json:"away_score"`
	HomeManagers string `json:"home_managers,omitempty"`
	AwayManagers string `json:"away_managers,omitempty"`
	Referee      string `json:"referee,omitempty"`
	Stadium      string `json:"stadium,omitempty"`
	Label        string `json:"label"`
}

type positionView struct {
	Position string `json:"position"`
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
}

type entryView struct {
	PlayerID  int64          `json:"player_id"`
	Player    string         `json:"player"`
	Jersey    int            `json:"jersey"`
	Positions []positionView `json:"positions,omitempty"`
}

type sheetView struct {
	MatchID     int64       `json:"match_id"`
	Team        string      `json:"team"`
	Starting    []entryView `json:"starting"`
	Substitutes []entryView `json:"substitutes"`
	Unused      []entryView `json:"unused"`
	Warnings    []string    `json:"warnings,omitempty"`
}

type passView struct {
	EventID   string    `json:"event_id"`
	Team      string    `json:"team"`
	Player    string    `json:"player"`
	Recipient string    `json:"recipient,omitempty"`
	Minute    int       `json:"minute"`
	Origin    pointView `json:"origin"`
	Target    pointView `json:"target"`
	Outcome   string    `json:"outcome,omitempty"`
	Type      string    `json:"type,omitempty"`
}

type passBreakdownView struct {
	MatchID        int64      `json:"match_id"`
	Team           string     `json:"team,omitempty"`
	Player         string     `json:"player,omitempty"`
	Completed      []passView `json:"completed"`
	Failed         []passView `json:"failed"`
	CompletionRate float64    `json:"completion_rate"`
	Warnings       []string   `json:"warnings,omitempty"`
}

type shotView struct {
	EventID string    `json:"event_id"`
	Team    string    `json:"team"`
	Player  string    `json:"player"`
	Minute  int       `json:"minute"`
	Origin  pointView `json:"origin"`
	XG      float64   `json:"xg"`
	Outcome string    `json:"outcome,omitempty"`
	Type    string    `json:"type,omitempty"`
}

type shotSetView struct {
	MatchID  int64      `json:"match_id"`
	Team     string     `json:"team,omitempty"`
	Player   string     `json:"player,omitempty"`
	Shots    []shotView `json:"shots"`
	Goals    int        `json:"goals"`
	TotalXG  float64    `json:"total_xg"`
	Warnings []string   `json:"warnings,omitempty"`
}

type nodeView struct {
	Jersey   int       `json:"jersey"`
	Passes   int       `json:"passes"`
	Position pointView `json:"position"`
}

type edgeView struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Passes int `json:"passes"`
}

type networkView struct {
	MatchID           int64      `json:"match_id"`
	Team              string     `json:"team"`
	FirstSubstitution *int       `json:"first_substitution,omitempty"`
	Nodes             []nodeView `json:"nodes"`
	Edges             []edgeView `json:"edges"`
	Warnings          []string   `json:"warnings,omitempty"`
}

type surfaceView struct {
	Rule   string      `json:"rule"`
	Factor float64     `json:"factor"`
	Points int         `json:"points"`
	Xs     []float64   `json:"xs"`
	Ys     []float64   `json:"ys"`
	Values [][]float64 `json:"values"`
}

type teamReportView struct {
	Team        string            `json:"team"`
	Sheet       sheetView         `json:"sheet"`
	Passes      passBreakdownView `json:"passes"`
	Shots       shotSetView       `json:"shots"`
	Network     networkView       `json:"network"`
	Heatmap     *surfaceView      `json:"heatmap,omitempty"`
	HeatmapNote string            `json:"heatmap_note,omitempty"`
}

type reportView struct {
	Match matchView      `json:"match"`
	Home  teamReportView `json:"home"`
	Away  teamReportView `json:"away"`
}

func newMatchView(m match.Match) matchView {
	return matchView{
		ID:           m.ID,
		Competition:  m.Competition,
		Season:       m.Season,
		Stage:        m.Stage,
		Date:         m.Date.Format("2006-01-02"),
		HomeTeam:     m.HomeTeam,
		AwayTeam:     m.AwayTeam,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		HomeManagers: m.HomeManagers,
		AwayManagers: m.AwayManagers,
		Referee:      m.Referee,
		Stadium:      m.Stadium,
		Label:        m.Label(),
	}
}

func newEntryViews(entries []lineup.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		view := entryView{PlayerID: e.PlayerID, Player: e.PlayerName, Jersey: e.JerseyNumber}
		for _, span := range e.Positions {
			view.Positions = append(view.Positions, positionView(span))
		}
		views = append(views, view)
	}
	return views
}

func newSheetView(s lineup.Sheet) sheetView {
	return sheetView{
		MatchID:     s.MatchID,
		Team:        s.Team,
		Starting:    newEntryViews(s.Starting),
		Substitutes: newEntryViews(s.Substitutes),
		Unused:      newEntryViews(s.Unused),
		Warnings:    warningStrings(s.Warnings),
	}
}

func newPassViews(passes []event.Pass) []passView {
	views := make([]passView, 0, len(passes))
	for _, p := range passes {
		views = append(views, passView{
			EventID:   p.EventID,
			Team:      p.Team,
			Player:    p.Player,
			Recipient: p.Recipient,
			Minute:    p.Minute,
			Origin:    pointView{p.Origin.X, p.Origin.Y},
			Target:    pointView{p.Target.X, p.Target.Y},
			Outcome:   p.Outcome,
			Type:      p.Type,
		})
	}
	return views
}

func newPassBreakdownView(b usecase.PassBreakdown) passBreakdownView {
	return passBreakdownView{
		MatchID:        b.MatchID,
		Team:           b.Team,
		Player:         b.Player,
		Completed:      newPassViews(b.Completed),
		Failed:         newPassViews(b.Failed),
		CompletionRate: b.CompletionRate(),
		Warnings:       warningStrings(b.Warnings),
	}
}

func newShotSetView(s usecase.ShotSet) shotSetView {
	views := make([]shotView, 0, len(s.Shots))
	for _, shot := range s.Shots {
		views = append(views, shotView{
			EventID: shot.EventID,
			Team:    shot.Team,
			Player:  shot.Player,
			Minute:  shot.Minute,
			Origin:  pointView{shot.Origin.X, shot.Origin.Y},
			XG:      shot.XG,
			Outcome: shot.Outcome,
			Type:    shot.Type,
		})
	}
	return shotSetView{
		MatchID:  s.MatchID,
		Team:     s.Team,
		Player:   s.Player,
		Shots:    views,
		Goals:    s.Goals,
		TotalXG:  s.TotalXG,
		Warnings: warningStrings(s.Warnings),
	}
}

func newNetworkView(n passnet.Network) networkView {
	view := networkView{
		MatchID:           n.MatchID,
		Team:              n.Team,
		FirstSubstitution: n.FirstSubstitution,
		Nodes:             make([]nodeView, 0, len(n.Nodes)),
		Edges:             make([]edgeView, 0, len(n.Edges)),
		Warnings:          warningStrings(n.Warnings),
	}
	for _, node := range n.Nodes {
		view.Nodes = append(view.Nodes, nodeView{
			Jersey:   node.Jersey,
			Passes:   node.Passes,
			Position: pointView{node.Position.X, node.Position.Y},
		})
	}
	for _, edge := range n.Edges {
		view.Edges = append(view.Edges, edgeView{From: edge.FromJersey, To: edge.ToJersey, Passes: edge.Passes})
	}
	return view
}

func newSurfaceView(s *density.Surface) *surfaceView {
	if s == nil {
		return nil
	}
	return &surfaceView{
		Rule:   s.Rule,
		Factor: s.Factor,
		Points: s.Points,
		Xs:     s.Xs,
		Ys:     s.Ys,
		Values: s.Values,
	}
}

func newTeamReportView(r usecase.TeamReport) teamReportView {
	return teamReportView{
		Team:        r.Team,
		Sheet:       newSheetView(r.Sheet),
		Passes:      newPassBreakdownView(r.Passes),
		Shots:       newShotSetView(r.Shots),
		Network:     newNetworkView(r.Network),
		Heatmap:     newSurfaceView(r.Heatmap),
		HeatmapNote: r.HeatmapNote,
	}
}

func newReportView(r usecase.MatchReport) reportView {
	return reportView{
		Match: newMatchView(r.Match),
		Home:  newTeamReportView(r.Home),
		Away:  newTeamReportView(r.Away),
	}
}

func warningStrings(warnings []quality.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.String())
	}
	return out
}

func printJSON(v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func newRenderTable(headers ...any) *tablewriter.Table {
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header(headers...)
	return table
}

func renderSheetTables(sheet lineup.Sheet) {
	sections := []struct {
		title   string
		entries []lineup.Entry
	}{
		{"Starting XI", sheet.Starting},
		{"Substitutes", sheet.Substitutes},
		{"Unused", sheet.Unused},
	}
	for _, section := range sections {
		if len(section.entries) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", section.title)
		table := newRenderTable("JERSEY", "PLAYER", "POSITIONS")
		for _, e := range section.entries {
			table.Append(strconv.Itoa(e.JerseyNumber), e.PlayerName, formatPositions(e.Positions))
		}
		table.Render()
	}
}

func formatPositions(spans []lineup.PositionSpan) string {
	if len(spans) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		to := s.To
		if to == "" {
			to = "end"
		}
		parts = append(parts, fmt.Sprintf("%s %s to %s", s.Position, s.From, to))
	}
	return strings.Join(parts, "; ")
}

func renderBreakdownTable(b usecase.PassBreakdown) {
	fmt.Fprintf(os.Stdout, "\nPasses: %d total, %d completed, %d failed (%.0f%% completion)\n\n",
		b.Total(), len(b.Completed), len(b.Failed), b.CompletionRate()*100)
	if b.Total() == 0 {
		return
	}

	table := newRenderTable("MIN", "PLAYER", "RECIPIENT", "FROM", "TO", "RESULT")
	appendPassRows(table, b.Completed, "completed")
	appendPassRows(table, b.Failed, "")
	table.Render()
}

func appendPassRows(table *tablewriter.Table, passes []event.Pass, fallbackResult string) {
	for _, p := range passes {
		result := p.Outcome
		if result == "" {
			result = fallbackResult
		}
		recipient := p.Recipient
		if recipient == "" {
			recipient = "-"
		}
		table.Append(
			strconv.Itoa(p.Minute),
			p.Player,
			recipient,
			formatPoint(p.Origin.X, p.Origin.Y),
			formatPoint(p.Target.X, p.Target.Y),
			result,
		)
	}
}

func renderShotTable(s usecase.ShotSet) {
	fmt.Fprintf(os.Stdout, "\nShots: %d, goals %d, total xG %.2f\n\n", len(s.Shots), s.Goals, s.TotalXG)
	if len(s.Shots) == 0 {
		return
	}

	table := newRenderTable("MIN", "TEAM", "PLAYER", "FROM", "XG", "OUTCOME", "TYPE")
	for _, shot := range s.Shots {
		shotType := shot.Type
		if shotType == "" {
			shotType = "-"
		}
		table.Append(
			strconv.Itoa(shot.Minute),
			shot.Team,
			shot.Player,
			formatPoint(shot.Origin.X, shot.Origin.Y),
			fmt.Sprintf("%.2f", shot.XG),
			shot.Outcome,
			shotType,
		)
	}
	table.Render()
}

func renderNetworkTables(n passnet.Network) {
	if n.FirstSubstitution != nil {
		fmt.Fprintf(os.Stdout, "\nNetwork window: kickoff until the first substitution (minute %d)\n", *n.FirstSubstitution)
	} else {
		fmt.Fprintln(os.Stdout, "\nNetwork window: whole match (no substitutions)")
	}

	if len(n.Nodes) == 0 {
		fmt.Fprintln(os.Stdout, "No qualifying passes inside the window.")
		return
	}

	fmt.Fprintln(os.Stdout)
	nodes := newRenderTable("JERSEY", "PASSES", "MEAN X", "MEAN Y")
	for _, node := range n.Nodes {
		nodes.Append(
			strconv.Itoa(node.Jersey),
			strconv.Itoa(node.Passes),
			fmt.Sprintf("%.1f", node.Position.X),
			fmt.Sprintf("%.1f", node.Position.Y),
		)
	}
	nodes.Render()

	if len(n.Edges) == 0 {
		fmt.Fprintln(os.Stdout, "No pair connected more than once.")
		return
	}

	fmt.Fprintln(os.Stdout)
	edges := newRenderTable("FROM", "TO", "PASSES")
	for _, edge := range n.Edges {
		edges.Append(strconv.Itoa(edge.FromJersey), strconv.Itoa(edge.ToJersey), strconv.Itoa(edge.Passes))
	}
	edges.Render()
}

// shadeRamp orders shade characters by density, lightest first.
const shadeRamp = " .:-=+*#%@"

// renderSurfaceGrid sketches the density surface as a character grid,
// downsampled to keep the sketch terminal-sized. Pitch y grows
// downward in the sketch, matching the usual top-down pitch plots.
func renderSurfaceGrid(s *density.Surface) {
	peak, peakValue := s.Peak()
	fmt.Fprintf(os.Stdout, "\nDensity of %d pass origins, %s rule (factor %.3f), peak %.2g at %s\n\n",
		s.Points, s.Rule, s.Factor, peakValue, formatPoint(peak.X, peak.Y))

	const maxCols, maxRows = 60, 24
	stepX := (len(s.Xs) + maxCols - 1) / maxCols
	stepY := (len(s.Ys) + maxRows - 1) / maxRows
	if stepX < 1 {
		stepX = 1
	}
	if stepY < 1 {
		stepY = 1
	}

	ramp := []rune(shadeRamp)
	var sketch strings.Builder
	for yi := 0; yi < len(s.Ys); yi += stepY {
		for xi := 0; xi < len(s.Xs); xi += stepX {
			level := 0
			if peakValue > 0 {
				level = int(s.Values[yi][xi] / peakValue * float64(len(ramp)-1))
			}
			sketch.WriteRune(ramp[level])
		}
		sketch.WriteByte('\n')
	}
	fmt.Fprint(os.Stdout, sketch.String())
}

func formatPoint(x, y float64) string {
	return fmt.Sprintf("(%.1f, %.1f)", x, y)
}

func parseMatchID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid match id %q", raw)
	}
	return id, nil
}
