package passnet

import (
	"fmt"
	"sort"

	"github.com/coolstat/coolstat/internal/domain/event"
	"github.com/coolstat/coolstat/internal/domain/lineup"
	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/domain/quality"
)

// Options tunes network construction.
type Options struct {
	ExcludeThrowIns bool
}

type edgeKey struct {
	from int
	to   int
}

type nodeAgg struct {
	sumX   float64
	sumY   float64
	passes int
}

// Build aggregates a team's completed passes before the first
// substitution of the match into a jersey-keyed graph. A team that
// never completed a qualifying pass yields an empty network, not an
// error. Passes whose passer or recipient is not on the team sheet are
// dropped with a warning.
func Build(matchID int64, team string, events []event.Event, roster lineup.Roster, opts Options) Network {
	network := Network{
		MatchID:           matchID,
		Team:              team,
		FirstSubstitution: firstSubstitutionMinute(events, matchID),
	}

	passes, warnings := event.CollectPasses(events, event.PassCriteria{
		MatchID:         matchID,
		Team:            team,
		ExcludeThrowIns: opts.ExcludeThrowIns,
	})
	network.Warnings = warnings

	nodes := make(map[int]*nodeAgg)
	edges := make(map[edgeKey]int)

	for _, p := range passes {
		if !p.Completed() {
			continue
		}
		if network.FirstSubstitution != nil && p.Minute >= *network.FirstSubstitution {
			continue
		}

		from, ok := roster.Resolve(p.Player)
		if !ok {
			network.Warnings = append(network.Warnings, unresolvedWarning(p, p.Player))
			continue
		}
		to, ok := roster.Resolve(p.Recipient)
		if !ok {
			network.Warnings = append(network.Warnings, unresolvedWarning(p, p.Recipient))
			continue
		}

		agg, exists := nodes[from]
		if !exists {
			agg = &nodeAgg{}
			nodes[from] = agg
		}
		agg.sumX += p.Origin.X
		agg.sumY += p.Origin.Y
		agg.passes++

		edges[edgeKey{from: from, to: to}]++
	}

	for jersey, agg := range nodes {
		network.Nodes = append(network.Nodes, Node{
			Jersey: jersey,
			Passes: agg.passes,
			Position: pitch.Point{
				X: agg.sumX / float64(agg.passes),
				Y: agg.sumY / float64(agg.passes),
			},
		})
	}
	sort.Slice(network.Nodes, func(i, j int) bool {
		return network.Nodes[i].Jersey < network.Nodes[j].Jersey
	})

	for key, count := range edges {
		if count <= 1 {
			continue
		}
		network.Edges = append(network.Edges, Edge{FromJersey: key.from, ToJersey: key.to, Passes: count})
	}
	sort.Slice(network.Edges, func(i, j int) bool {
		if network.Edges[i].FromJersey != network.Edges[j].FromJersey {
			return network.Edges[i].FromJersey < network.Edges[j].FromJersey
		}
		return network.Edges[i].ToJersey < network.Edges[j].ToJersey
	})

	return network
}

// firstSubstitutionMinute finds the earliest substitution of the match,
// either side: personnel changes on one team reshape the opposition's
// structure too.
func firstSubstitutionMinute(events []event.Event, matchID int64) *int {
	var first *int
	for _, e := range events {
		if e.MatchID != matchID || e.Kind != event.KindSubstitution {
			continue
		}
		if first == nil || e.Minute < *first {
			minute := e.Minute
			first = &minute
		}
	}
	return first
}

func unresolvedWarning(p event.Pass, name string) quality.Warning {
	return quality.Warning{
		Code:    quality.CodeUnresolvedRecipient,
		MatchID: p.MatchID,
		EventID: p.EventID,
		Player:  name,
		Detail:  fmt.Sprintf("player %q is not on the %s team sheet", name, p.Team),
	}
}
