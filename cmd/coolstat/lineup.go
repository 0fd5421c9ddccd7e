package main

import (
	"github.com/spf13/cobra"
)

var lineupCmd = &cobra.Command{
	Use:   "lineup <match-id> <team>",
	Short: "Show a team sheet for one match",
	Long: `Lineup splits a team's players for one match into the starting
eleven, the used substitutes and the unused squad, with the position
spans each player covered.`,
	Args: cobra.ExactArgs(2),
	RunE: runLineup,
}

func runLineup(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sheet, err := a.LineupSvc.Sheet(cmd.Context(), matchID, args[1])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newSheetView(sheet))
	}
	renderSheetTables(sheet)
	return nil
}
