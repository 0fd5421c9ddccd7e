package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/usecase"
)

var flagReportWorkers int

var reportCmd = &cobra.Command{
	Use:   "report <match-id>",
	Short: "Build the full analytics report for one match",
	Long: `Report assembles every analytic for both sides of one match: team
sheets, pass classification, shot lists, passing networks and
pass-origin density surfaces.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&flagReportWorkers, "workers", 0, "computation workers (default from config)")
	reportCmd.Flags().Bool("exclude-throw-ins", true, "leave throw-ins out of pass analytics")
	reportCmd.Flags().Bool("exclude-penalties", false, "leave penalty kicks out of shot analytics")
}

func runReport(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.ReportSvc.Build(cmd.Context(), usecase.ReportInput{
		MatchID:          matchID,
		MaxWorkers:       flagReportWorkers,
		ExcludeThrowIns:  boolOverride(cmd, "exclude-throw-ins"),
		ExcludePenalties: boolOverride(cmd, "exclude-penalties"),
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newReportView(report))
	}
	renderReport(report)
	return nil
}

func renderReport(report usecase.MatchReport) {
	fmt.Fprintf(os.Stdout, "%s, %s\n", report.Match.Label(), report.Match.Date.Format("2006-01-02"))
	if report.Match.Stadium != "" {
		fmt.Fprintf(os.Stdout, "%s, referee %s\n", report.Match.Stadium, report.Match.Referee)
	}

	for _, side := range []usecase.TeamReport{report.Home, report.Away} {
		fmt.Fprintf(os.Stdout, "\n=== %s ===\n", side.Team)
		renderSheetTables(side.Sheet)
		renderBreakdownTable(side.Passes)
		renderShotTable(side.Shots)
		renderNetworkTables(side.Network)
		if side.Heatmap != nil {
			renderSurfaceGrid(side.Heatmap)
		} else if side.HeatmapNote != "" {
			fmt.Fprintf(os.Stdout, "\nHeatmap: %s\n", side.HeatmapNote)
		}
	}
}
