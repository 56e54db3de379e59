package decompose

import (
	"testing"

	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() geo.Polygon {
	return geo.NewPolygon(
		geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 100, Y: 100}, geo.Point{X: 0, Y: 100},
	)
}

func lShape() geo.Polygon {
	return geo.NewPolygon(
		geo.Point{X: 0, Y: 0}, geo.Point{X: 60, Y: 0}, geo.Point{X: 60, Y: 30},
		geo.Point{X: 30, Y: 30}, geo.Point{X: 30, Y: 60}, geo.Point{X: 0, Y: 60},
	)
}

func TestDecomposeConvexPolygonReturnsItself(t *testing.T) {
	sq := square()
	result := Decompose(sq)
	require.Len(t, result, 1)
	assert.Equal(t, sq.Points, result[0].Points)
}

func TestDecomposeLShapeYieldsTwoConvexRegions(t *testing.T) {
	result := Decompose(lShape())
	require.Len(t, result, 2)
	for _, region := range result {
		assert.Empty(t, region.ConcaveVertices())
	}
}

func TestDecompositionUnionAndDisjointness(t *testing.T) {
	// As a proxy for union and disjointness (full polygon clipping is out of
	// scope for a unit test), assert that the subregions' areas sum to the
	// original polygon's area.
	original := lShape()
	regions := Decompose(original)
	sum := 0.0
	for _, r := range regions {
		sum += polygonArea(r)
	}
	assert.InDelta(t, polygonArea(original), sum, 1e-6)
}

func polygonArea(p geo.Polygon) float64 {
	area := 0.0
	for i := 0; i < p.Size(); i++ {
		a, b := p.Vertex(i), p.Vertex(i+1)
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		area = -area
	}
	return area / 2
}

func TestAllSubregionsAreConvexAndCCW(t *testing.T) {
	for _, p := range Decompose(lShape()) {
		assert.Empty(t, p.ConcaveVertices())
		assert.False(t, p.Clockwise())
	}
}
