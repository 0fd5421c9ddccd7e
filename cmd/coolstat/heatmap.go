package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/domain/density"
	"github.com/coolstat/coolstat/internal/usecase"
)

var (
	flagHeatmapPlayer string
	flagGridWidth     int
	flagGridHeight    int
	flagRule          string
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap <match-id> <team>",
	Short: "Estimate a pass-origin density surface",
	Long: `Heatmap runs a kernel density estimate over the origins of a team's
passes and sketches the surface on the pitch grid. --player narrows
the estimate to one player's passes.`,
	Args: cobra.ExactArgs(2),
	RunE: runHeatmap,
}

func init() {
	heatmapCmd.Flags().StringVar(&flagHeatmapPlayer, "player", "", "only passes by this player")
	heatmapCmd.Flags().IntVar(&flagGridWidth, "grid-width", 0, "grid columns (default from config)")
	heatmapCmd.Flags().IntVar(&flagGridHeight, "grid-height", 0, "grid rows (default from config)")
	heatmapCmd.Flags().StringVar(&flagRule, "rule", "", "bandwidth rule, scott or silverman (default from config)")
	heatmapCmd.Flags().Bool("exclude-throw-ins", true, "leave throw-ins out of the estimate")
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	surface, err := a.HeatmapSvc.Surface(cmd.Context(), usecase.HeatmapInput{
		MatchID:         matchID,
		Team:            args[1],
		Player:          flagHeatmapPlayer,
		GridWidth:       flagGridWidth,
		GridHeight:      flagGridHeight,
		Rule:            flagRule,
		ExcludeThrowIns: boolOverride(cmd, "exclude-throw-ins"),
	})
	if errors.Is(err, density.ErrInsufficientData) && !flagJSON {
		fmt.Fprintln(os.Stdout, "Not enough passes to estimate a density surface.")
		return nil
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newSurfaceView(surface))
	}
	renderSurfaceGrid(surface)
	return nil
}
