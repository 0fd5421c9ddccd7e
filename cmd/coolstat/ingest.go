package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/external/statsbomb"
)

var (
	flagMatchesPath string
	flagEventsPath  string
	flagLineupsPath string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load a CSV extract into the database",
	Long: `Ingest reads a competition extract (matches, events and lineups CSV
files) and replaces the stored copy of it. Re-running with the same
files is safe: rows are replaced, never appended.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&flagMatchesPath, "matches", "", "path to the matches CSV (required)")
	ingestCmd.Flags().StringVar(&flagEventsPath, "events", "", "path to the events CSV (required)")
	ingestCmd.Flags().StringVar(&flagLineupsPath, "lineups", "", "path to the lineups CSV (required)")
	_ = ingestCmd.MarkFlagRequired("matches")
	_ = ingestCmd.MarkFlagRequired("events")
	_ = ingestCmd.MarkFlagRequired("lineups")
}

func runIngest(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.Ingest(cmd.Context(), statsbomb.CompetitionFiles{
		MatchesPath: flagMatchesPath,
		EventsPath:  flagEventsPath,
		LineupsPath: flagLineupsPath,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(stats)
	}
	fmt.Fprintf(os.Stdout, "Ingested %d matches, %d events and %d lineup entries.\n",
		stats.Matches, stats.Events, stats.Lineups)
	return nil
}
