package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var competitionsCmd = &cobra.Command{
	Use:   "competitions",
	Short: "List the competitions in the database",
	Args:  cobra.NoArgs,
	RunE:  runCompetitions,
}

func runCompetitions(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	competitions, err := a.MatchSvc.Competitions(cmd.Context())
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(competitions)
	}
	if len(competitions) == 0 {
		fmt.Fprintln(os.Stdout, "No competitions stored yet. Run 'coolstat ingest' to load an extract.")
		return nil
	}

	table := newRenderTable("COMPETITION")
	for _, c := range competitions {
		table.Append(c)
	}
	table.Render()
	return nil
}
