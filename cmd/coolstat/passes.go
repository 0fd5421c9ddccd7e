package main

import (
	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/usecase"
)

var (
	flagPassesTeam   string
	flagPassesPlayer string
)

var passesCmd = &cobra.Command{
	Use:   "passes <match-id>",
	Short: "Split a match's passes into completed and failed",
	Long: `Passes classifies the passes of one match. A pass with no recorded
outcome counts as completed; any recorded outcome marks it failed.
--team and --player narrow the selection.`,
	Args: cobra.ExactArgs(1),
	RunE: runPasses,
}

func init() {
	passesCmd.Flags().StringVar(&flagPassesTeam, "team", "", "only passes by this team")
	passesCmd.Flags().StringVar(&flagPassesPlayer, "player", "", "only passes by this player")
	passesCmd.Flags().Bool("exclude-throw-ins", true, "leave throw-ins out of the classification")
}

func runPasses(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	breakdown, err := a.PassSvc.Classify(cmd.Context(), usecase.ClassifyPassesInput{
		MatchID:         matchID,
		Team:            flagPassesTeam,
		Player:          flagPassesPlayer,
		ExcludeThrowIns: boolOverride(cmd, "exclude-throw-ins"),
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newPassBreakdownView(breakdown))
	}
	renderBreakdownTable(breakdown)
	return nil
}
