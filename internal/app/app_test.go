package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolstat/coolstat/external/statsbomb"
	"github.com/coolstat/coolstat/internal/config"
	"github.com/coolstat/coolstat/internal/infrastructure/repository/memory"
	"github.com/coolstat/coolstat/internal/platform/logging"
	"github.com/coolstat/coolstat/internal/usecase"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		AppEnv:              config.EnvDev,
		ServiceName:         "coolstat",
		ServiceVersion:      "test",
		DBPath:              filepath.Join(t.TempDir(), "coolstat.db"),
		CacheEnabled:        true,
		PassExcludeThrowIns: true,
		HeatmapGridWidth:    40,
		HeatmapGridHeight:   30,
		HeatmapBandwidth:    config.BandwidthScott,
		ReportWorkers:       2,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestNewDemoServesSeedData(t *testing.T) {
	a, err := New(testConfig(t), logging.NewNop(), Options{Demo: true})
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()

	competitions, err := a.MatchSvc.Competitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"UEFA Euro"}, competitions)

	report, err := a.ReportSvc.Build(ctx, usecase.ReportInput{MatchID: memory.SeedMatchFinal})
	require.NoError(t, err)
	assert.Equal(t, "Spain", report.Home.Team)
	assert.Equal(t, "England", report.Away.Team)
	assert.NotEmpty(t, report.Home.Network.Nodes)
	assert.NotEmpty(t, report.Away.Shots.Shots)
	assert.NotEmpty(t, report.Home.Sheet.Starting)
}

func TestIngestRequiresDatabase(t *testing.T) {
	a, err := New(testConfig(t), logging.NewNop(), Options{Demo: true})
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Ingest(context.Background(), statsbomb.CompetitionFiles{})
	require.Error(t, err)
}

func TestIngestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	files := statsbomb.CompetitionFiles{
		MatchesPath: filepath.Join(dir, "euro_datos.csv"),
		EventsPath:  filepath.Join(dir, "euro_all_events.csv"),
		LineupsPath: filepath.Join(dir, "euro_lineups.csv"),
	}
	matchesCSV := "match_id,competition,competition_stage,match_date,home_team,away_team,home_score,away_score\n" +
		"77,Test Cup,Final,2024-06-01,Alpha,Beta,1,0\n"
	eventsCSV := "id,match_id,type,team,player,minute,second,period,location,pass_end_location,pass_outcome,pass_type,pass_recipient,shot_statsbomb_xg,shot_outcome,shot_type\n" +
		"e1,77,Pass,Alpha,Ann,1,0,1,\"[30.0, 40.0]\",\"[45.0, 41.0]\",,,Bea,,,\n" +
		"e2,77,Shot,Alpha,Bea,9,30,1,\"[110.0, 38.0]\",,,,,0.42,Goal,\n"
	lineupsCSV := "match_id,country,player_id,player_name,jersey_number,positions\n" +
		"77,Alpha,1,Ann,8,\"[{'position': 'Left Midfield', 'from': '00:00', 'to': None}]\"\n" +
		"77,Alpha,2,Bea,9,\"[{'position': 'Striker', 'from': '00:00', 'to': None}]\"\n"
	require.NoError(t, os.WriteFile(files.MatchesPath, []byte(matchesCSV), 0o644))
	require.NoError(t, os.WriteFile(files.EventsPath, []byte(eventsCSV), 0o644))
	require.NoError(t, os.WriteFile(files.LineupsPath, []byte(lineupsCSV), 0o644))

	a, err := New(testConfig(t), logging.NewNop(), Options{})
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	stats, err := a.Ingest(ctx, files)
	require.NoError(t, err)
	assert.Equal(t, IngestStats{Matches: 1, Events: 2, Lineups: 2}, stats)

	competitions, err := a.MatchSvc.Competitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Test Cup"}, competitions)

	shots, err := a.ShotSvc.List(ctx, usecase.ListShotsInput{MatchID: 77, Team: "Alpha"})
	require.NoError(t, err)
	require.Len(t, shots.Shots, 1)
	assert.Equal(t, 1, shots.Goals)

	// A second ingest of the same extract replaces rows, not appends.
	stats, err = a.Ingest(ctx, files)
	require.NoError(t, err)
	assert.Equal(t, IngestStats{Matches: 1, Events: 2, Lineups: 2}, stats)

	matches, err := a.MatchSvc.ListByCompetition(ctx, "Test Cup")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "(Final) Alpha 1 - 0 Beta", matches[0].Label())
}
