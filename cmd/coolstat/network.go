package main

import (
	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/usecase"
)

var networkCmd = &cobra.Command{
	Use:   "network <match-id> <team>",
	Short: "Build a team's passing network",
	Long: `Network aggregates a team's completed passes between kickoff and its
first substitution into jersey-numbered nodes (average position, pass
volume) and repeated-pair edges.`,
	Args: cobra.ExactArgs(2),
	RunE: runNetwork,
}

func init() {
	networkCmd.Flags().Bool("exclude-throw-ins", true, "leave throw-ins out of the network")
}

func runNetwork(cmd *cobra.Command, args []string) error {
	matchID, err := parseMatchID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	network, err := a.NetworkSvc.Build(cmd.Context(), usecase.BuildNetworkInput{
		MatchID:         matchID,
		Team:            args[1],
		ExcludeThrowIns: boolOverride(cmd, "exclude-throw-ins"),
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(newNetworkView(network))
	}
	renderNetworkTables(network)
	return nil
}
