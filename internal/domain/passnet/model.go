package passnet

import (
	"github.com/coolstat/coolstat/internal/domain/pitch"
	"github.com/coolstat/coolstat/internal/domain/quality"
)

// Node is one player in the pass network: mean origin of the passes
// they made inside the stable-lineup window, and how many.
type Node struct {
	Jersey   int
	Passes   int
	Position pitch.Point
}

// Edge is an ordered passer->recipient pair. Edges are only retained
// with more than one pass: single connections add noise, not structure.
type Edge struct {
	FromJersey int
	ToJersey   int
	Passes     int
}

// Network is the team's completed-pass graph before the first
// substitution changed personnel. FirstSubstitution is nil when the
// match had none, in which case the window spans the whole match.
type Network struct {
	MatchID           int64
	Team              string
	FirstSubstitution *int
	Nodes             []Node
	Edges             []Edge
	Warnings          []quality.Warning
}

// Node returns the node for a jersey, reporting whether it exists.
func (n Network) Node(jersey int) (Node, bool) {
	for _, node := range n.Nodes {
		if node.Jersey == jersey {
			return node, true
		}
	}
	return Node{}, false
}

// Edge returns the edge for an ordered jersey pair, reporting whether
// it survived pruning.
func (n Network) Edge(from, to int) (Edge, bool) {
	for _, edge := range n.Edges {
		if edge.FromJersey == from && edge.ToJersey == to {
			return edge, true
		}
	}
	return Edge{}, false
}
