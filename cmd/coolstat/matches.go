package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolstat/coolstat/internal/domain/match"
)

var flagMatchesTeam string

var matchesCmd = &cobra.Command{
	Use:   "matches <competition>",
	Short: "List the matches of a competition",
	Long: `Matches lists every stored match of a competition in chronological
order. With --team the list narrows to matches that team played in,
shown from that team's perspective.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&flagMatchesTeam, "team", "", "only matches this team played in")
}

func runMatches(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	competition := args[0]
	team := strings.TrimSpace(flagMatchesTeam)
	var matches []match.Match
	if team != "" {
		matches, err = a.MatchSvc.ListByTeam(cmd.Context(), competition, team)
	} else {
		matches, err = a.MatchSvc.ListByCompetition(cmd.Context(), competition)
	}
	if err != nil {
		return err
	}

	if flagJSON {
		views := make([]matchView, 0, len(matches))
		for _, m := range matches {
			views = append(views, newMatchView(m))
		}
		return printJSON(views)
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stdout, "No matches found for %q. Run 'coolstat competitions' to see what is stored.\n", competition)
		return nil
	}

	if team != "" {
		renderTeamMatchesTable(matches, team)
		return nil
	}

	table := newRenderTable("ID", "DATE", "STAGE", "HOME", "SCORE", "AWAY")
	for _, m := range matches {
		table.Append(
			strconv.FormatInt(m.ID, 10),
			m.Date.Format("2006-01-02"),
			m.Stage,
			m.HomeTeam,
			fmt.Sprintf("%d - %d", m.HomeScore, m.AwayScore),
			m.AwayTeam,
		)
	}
	table.Render()
	return nil
}

// renderTeamMatchesTable lists matches from the chosen team's
// perspective: opponent named, score team-first.
func renderTeamMatchesTable(matches []match.Match, team string) {
	table := newRenderTable("ID", "DATE", "STAGE", "OPPONENT", "SCORE")
	for _, m := range matches {
		teamScore, oppScore := m.HomeScore, m.AwayScore
		if m.AwayTeam == team {
			teamScore, oppScore = oppScore, teamScore
		}
		table.Append(
			strconv.FormatInt(m.ID, 10),
			m.Date.Format("2006-01-02"),
			m.Stage,
			m.Opponent(team),
			fmt.Sprintf("%d - %d", teamScore, oppScore),
		)
	}
	table.Render()
}
