package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() Polygon {
	return NewPolygon(
		Point{0, 0}, Point{100, 0}, Point{100, 100}, Point{0, 100},
	)
}

func lShape() Polygon {
	// From spec.md scenario 2.
	return NewPolygon(
		Point{0, 0}, Point{60, 0}, Point{60, 30}, Point{30, 30}, Point{30, 60}, Point{0, 60},
	)
}

func triangle() Polygon {
	return NewPolygon(
		Point{0, 0}, Point{10, 0}, Point{5, 8.66},
	)
}

func TestCanonicalizeReversesClockwise(t *testing.T) {
	ccw := square()
	require.False(t, ccw.Clockwise())

	reversed := make([]Point, len(ccw.Points))
	for i, v := range ccw.Points {
		reversed[len(ccw.Points)-1-i] = v
	}
	cw := Polygon{Points: reversed}
	require.True(t, cw.Clockwise())

	canon := cw.Canonicalize()
	assert.False(t, canon.Clockwise())
	assert.Equal(t, ccw.Points, canon.Points)
}

func TestIsConcaveAtSquareIsAllConvex(t *testing.T) {
	sq := square()
	for i := 0; i < sq.Size(); i++ {
		assert.False(t, sq.IsConcaveAt(i), "vertex %d", i)
	}
	assert.Empty(t, sq.ConcaveVertices())
}

func TestIsConcaveAtLShapeHasOneConcaveVertex(t *testing.T) {
	l := lShape()
	concave := l.ConcaveVertices()
	require.Len(t, concave, 1)
	assert.Equal(t, Point{30, 30}, l.Vertex(concave[0]))
}

func TestWidthOfSquareIsSideLength(t *testing.T) {
	w := square().Width()
	assert.InDelta(t, 100.0, w.Length(), 1e-6)
}

func TestWidthOfTriangleIsShortestAltitude(t *testing.T) {
	w := triangle().Width()
	// The shortest altitude of this near-equilateral triangle drops from the
	// apex to the base (length 10): altitude = 2*Area/base.
	area := 0.5 * 10 * 8.66
	expected := 2 * area / 10
	assert.InDelta(t, expected, w.Length(), 1e-3)
}

func TestWidthSanity(t *testing.T) {
	// For any convex polygon, width must equal the minimum over edges of the
	// max perpendicular distance of any non-incident vertex to that edge's line.
	p := square()
	w := p.Width()
	var minOverEdges float64 = -1
	for i := 0; i < p.Size(); i++ {
		e := p.Edge(i)
		maxDist := -1.0
		for j := 2; j < p.Size(); j++ {
			d := DistanceToLine(p.Vertex(i+j), e)
			if d > maxDist {
				maxDist = d
			}
		}
		if minOverEdges < 0 || maxDist < minOverEdges {
			minOverEdges = maxDist
		}
	}
	assert.InDelta(t, minOverEdges, w.Length(), 1e-9)
}

func TestCenterIsBoundingBoxMidpoint(t *testing.T) {
	c := square().Center()
	assert.Equal(t, Point{50, 50}, c)
}

func TestAdjacentSharedEdge(t *testing.T) {
	a := NewPolygon(Point{0, 0}, Point{60, 0}, Point{60, 30}, Point{30, 30})
	b := NewPolygon(Point{30, 30}, Point{0, 30}, Point{0, 0})
	// b contains a's edge (30,30)->(0,0) in the opposite direction, and edge
	// equality is undirected.
	_, _, ok := a.Adjacent(b)
	assert.True(t, ok)

	c := NewPolygon(Point{0, 0}, Point{30, 30}, Point{0, 30})
	iSelf, iOther, ok := a.Adjacent(c)
	require.True(t, ok)
	assert.True(t, a.Edge(iSelf).Equal(c.Edge(iOther)))
}
