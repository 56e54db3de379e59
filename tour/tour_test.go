package tour

import (
	"testing"

	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/hlin91/cppauvsi-searchpath/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) geo.Polygon {
	return geo.NewPolygon(
		geo.Point{X: x0, Y: y0}, geo.Point{X: x1, Y: y0},
		geo.Point{X: x1, Y: y1}, geo.Point{X: x0, Y: y1},
	)
}

func TestPlanOrdersTwoAdjacentRegionsAndLinksExitToEntry(t *testing.T) {
	left := rect(0, 0, 50, 100)
	right := rect(50, 0, 100, 100)
	nodes := []Node{
		{Region: left, Path: []geo.Edge{geo.NewEdge(geo.Point{X: 10, Y: 10}, geo.Point{X: 10, Y: 90})}},
		{Region: right, Path: []geo.Edge{geo.NewEdge(geo.Point{X: 90, Y: 10}, geo.Point{X: 90, Y: 90})}},
	}
	g, order := Plan(nodes)
	require.Len(t, order, 2)

	first := g.Nodes[order[0]]
	second := g.Nodes[order[1]]
	jump := geo.Distance(first.exit(), second.entry())

	// No other combination of (first start state, second start state)
	// should produce a shorter jump between the two regions' single sweep
	// segments.
	states := []State{StartV1, StartV2, EndV1, EndV2}
	for _, s1 := range states {
		for _, s2 := range states {
			a := first
			b := second
			a.StartState = s1
			b.StartState = s2
			assert.True(t, geo.Distance(a.exit(), b.entry()) >= jump-1e-9)
		}
	}
}

func TestPlanSingleNodeGetsStartV1(t *testing.T) {
	g, order := Plan([]Node{{Region: rect(0, 0, 10, 10)}})
	require.Len(t, order, 1)
	assert.Equal(t, StartV1, g.Nodes[order[0]].StartState)
}

func TestNodeFlattenMatchesStartState(t *testing.T) {
	path := []geo.Edge{
		geo.NewEdge(geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0}),
		geo.NewEdge(geo.Point{X: 20, Y: 10}, geo.Point{X: 10, Y: 10}),
	}
	n := Node{Path: path, StartState: StartV1}
	assert.Equal(t, []geo.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10},
	}, n.Flatten())

	n.StartState = EndV2
	assert.Equal(t, []geo.Point{
		{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0},
	}, n.Flatten())
}

func TestNodeFlattenRejectsUnknownStartState(t *testing.T) {
	path := []geo.Edge{geo.NewEdge(geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0})}
	n := Node{Path: path, StartState: State(99)}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err := fault.Recover(r)
		require.Error(t, err)
		assert.Equal(t, fault.UnknownStartState, err.(*fault.Error).Kind)
	}()
	n.Flatten()
}

func TestNodeEntryAndExitRejectUnknownStartState(t *testing.T) {
	path := []geo.Edge{geo.NewEdge(geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0})}

	assertFails := func(f func()) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err := fault.Recover(r)
			require.Error(t, err)
			assert.Equal(t, fault.UnknownStartState, err.(*fault.Error).Kind)
		}()
		f()
	}

	n := Node{Path: path, StartState: State(99)}
	assertFails(func() { n.entry() })
	assertFails(func() { n.exit() })
}

func TestGreedyOrderUsedAboveBruteForceLimit(t *testing.T) {
	nodes := make([]Node, bruteForceLimit+1)
	for i := range nodes {
		nodes[i] = Node{Region: rect(float64(i)*10, 0, float64(i)*10+10, 10)}
	}
	_, order := Plan(nodes)
	require.Len(t, order, len(nodes))
	seen := make(map[int]bool)
	for _, idx := range order {
		assert.False(t, seen[idx])
		seen[idx] = true
	}
}
