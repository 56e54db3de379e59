// Package tour orders a set of convex subregions into a single visiting
// sequence and chooses, for each, which corner of its sweep list to enter
// from so that consecutive sweep chains link by the shortest jump.
package tour

import (
	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/hlin91/cppauvsi-searchpath/internal/fault"
)

// State identifies which of a subregion's four sweep-terminal corners is
// used as its entry point; the exit corner follows from the parity of the
// sweep list.
type State int

const (
	// StartV1 reads the sweep list front-to-back, v1 -> v2 per segment.
	// The exit point is the back segment's v2.
	StartV1 State = iota
	// StartV2 reads the sweep list front-to-back, v2 -> v1 per segment.
	// The exit point is the back segment's v1.
	StartV2
	// EndV1 reads the sweep list back-to-front, v1 -> v2 per segment. The
	// exit point is the front segment's v2.
	EndV1
	// EndV2 reads the sweep list back-to-front, v2 -> v1 per segment. The
	// exit point is the front segment's v1.
	EndV2
)

func (s State) String() string {
	switch s {
	case StartV1:
		return "START_V1"
	case StartV2:
		return "START_V2"
	case EndV1:
		return "END_V1"
	case EndV2:
		return "END_V2"
	default:
		return "UNKNOWN"
	}
}

// Node is a subregion together with its already-computed sweep list and
// its chosen start state. Plan fills in StartState; callers provide
// Region and Path.
type Node struct {
	Region     geo.Polygon
	Path       []geo.Edge
	StartState State
}

// entry returns the waypoint a vehicle would enter this node's path at,
// given its start state.
func (n Node) entry() geo.Point {
	if len(n.Path) == 0 {
		return n.Region.Center()
	}
	switch n.StartState {
	case StartV1:
		return n.Path[0].A
	case StartV2:
		return n.Path[0].B
	case EndV1:
		return n.Path[len(n.Path)-1].A
	case EndV2:
		return n.Path[len(n.Path)-1].B
	default:
		fault.Fail(fault.UnknownStartState, "node has unrecognized start state %d", n.StartState)
		panic("unreachable")
	}
}

// exit returns the waypoint a vehicle would leave this node's path from,
// given its start state.
func (n Node) exit() geo.Point {
	if len(n.Path) == 0 {
		return n.Region.Center()
	}
	switch n.StartState {
	case StartV1:
		return n.Path[len(n.Path)-1].B
	case StartV2:
		return n.Path[len(n.Path)-1].A
	case EndV1:
		return n.Path[0].B
	case EndV2:
		return n.Path[0].A
	default:
		fault.Fail(fault.UnknownStartState, "node has unrecognized start state %d", n.StartState)
		panic("unreachable")
	}
}

// Flatten expands n's path into a flat waypoint sequence, reading it per
// its start state as described in spec.md §4.F.
func (n Node) Flatten() []geo.Point {
	points := make([]geo.Point, 0, 2*len(n.Path))
	switch n.StartState {
	case StartV1:
		for _, e := range n.Path {
			points = append(points, e.A, e.B)
		}
	case StartV2:
		for _, e := range n.Path {
			points = append(points, e.B, e.A)
		}
	case EndV1:
		for i := len(n.Path) - 1; i >= 0; i-- {
			points = append(points, n.Path[i].A, n.Path[i].B)
		}
	case EndV2:
		for i := len(n.Path) - 1; i >= 0; i-- {
			points = append(points, n.Path[i].B, n.Path[i].A)
		}
	default:
		fault.Fail(fault.UnknownStartState, "node has unrecognized start state %d", n.StartState)
	}
	return points
}

// inf is the same large-constant penalty the original graph construction
// adds to the weight of every non-adjacent pair, so a visiting order only
// prefers a non-adjacent jump when no adjacent alternative exists.
const inf = 1e6

// Graph is an undirected weighted graph over a fixed set of nodes, edges
// connecting subregions that share a boundary edge, weighted by the
// distance between their bounding-box centers.
type Graph struct {
	Nodes    []Node
	adjacent [][]bool
	weight   [][]float64
}

// NewGraph builds the adjacency and weight matrices for nodes: two nodes
// are adjacent iff their regions share an edge, and every pair's weight is
// the distance between region centers, penalized by inf when the pair is
// not adjacent.
func NewGraph(nodes []Node) *Graph {
	n := len(nodes)
	g := &Graph{
		Nodes:    nodes,
		adjacent: make([][]bool, n),
		weight:   make([][]float64, n),
	}
	for i := range g.adjacent {
		g.adjacent[i] = make([]bool, n)
		g.weight[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := geo.Distance(nodes[i].Region.Center(), nodes[j].Region.Center())
			if _, _, ok := nodes[i].Region.Adjacent(nodes[j].Region); ok {
				g.adjacent[i][j] = true
				g.weight[i][j] = d
			} else {
				g.weight[i][j] = inf + d
			}
		}
	}
	return g
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int {
	return len(g.Nodes)
}

// length sums the weight of each consecutive hop in order.
func (g *Graph) length(order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += g.weight[order[i]][order[i+1]]
	}
	return total
}
