package main

import (
	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/usecase"
)

var (
	flagShotsTeam   string
	flagShotsPlayer string
)

var shotsCmd = &cobra.Command{
	Use:   "shots <match-id>",
	Short: "List a match's shots with their xG",
	Long: `Shots lists the shots of one match in match order with goal count
and total expected goals. --team and --player narrow the selection;
--exclude-penalties leaves penalty kicks out.`,
	Args: cobra.ExactArgs(1),
	RunE: runShots,
}

func init() {
	shotsCmd.Flags().StringVar(&flagShotsTeam, "team", "", "only shots by this team")
	shotsCmd.Flags().StringVar(&flagShotsPlayer, "player", "", "only shots by this player")
	shotsCmd.Flags().Bool("exclude-penalties", false, "leave penalty kicks out")
}

func runShots(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	set, err := a.ShotSvc.List(cmd.Context(), usecase.ListShotsInput{
		MatchID:          matchID,
		Team:             flagShotsTeam,
		Player:           flagShotsPlayer,
		ExcludePenalties: boolOverride(cmd, "exclude-penalties"),
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newShotSetView(set))
	}
	renderShotTable(set)
	return nil
}
