// Package decompose implements convex decomposition of a simple polygon by
// a greedy minimum-width-sum split rule, and a subsequent merge pass that
// opportunistically recombines adjacent subregions whose union is still
// convex.
package decompose

import (
	"math"

	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/hlin91/cppauvsi-searchpath/internal/fault"
)

// Split divides p into two polygons along the chord between vertex indices
// v1 and v2. With the indices ordered so that v1 < v2, p1 runs from v1 to v2
// inclusive, p2 runs from v2 back around to v1 inclusive. Both halves share the chord (v1, v2) as an edge. Panics
// with a GeometryError if v1 and v2 are the same vertex or adjacent (no
// valid chord between them).
func Split(p geo.Polygon, v1, v2 int) (p1, p2 geo.Polygon) {
	n := p.Size()
	v1 = geo.CircularIndex(v1, n)
	v2 = geo.CircularIndex(v2, n)
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	if v2-v1 < 2 || v2-v1 > n-2 {
		fault.Fail(fault.GeometryError, "invalid split chord between adjacent or identical vertices %d, %d", v1, v2)
	}

	var firstHalf, secondHalf []geo.Point
	for i := v1; i <= v2; i++ {
		firstHalf = append(firstHalf, p.Vertex(i))
	}
	for i := v2; geo.CircularIndex(i, n) != v1+1; i++ {
		secondHalf = append(secondHalf, p.Vertex(i))
	}
	return geo.NewPolygon(firstHalf...), geo.NewPolygon(secondHalf...)
}

// chordValid implements the interior-angle membership test from spec.md
// §4.D: a chord from concave vertex c to vertex j lies inside p iff its
// direction falls in the interior angular sector between the reversed
// inbound edge at c and the outbound edge at c.
func chordValid(p geo.Polygon, c, j int) bool {
	theta1 := p.Edge(c).Theta()
	theta2 := p.Edge(c-1).Theta() + math.Pi
	if theta2 > math.Pi {
		theta2 -= 2 * math.Pi
	}
	thetaS := geo.NewEdge(p.Vertex(c), p.Vertex(j)).Theta()
	if theta1 > theta2 {
		return !(thetaS > theta2 && thetaS < theta1)
	}
	return thetaS >= theta1 && thetaS <= theta2
}

func adjacentIndex(n, c, j int) bool {
	return geo.CircularIndex(c+1, n) == j || geo.CircularIndex(c-1, n) == j
}

// Decompose recursively splits a concave polygon at the concave-vertex
// chord that minimizes the sum of the two resulting children's widths,
// preferring concave-to-concave chords and falling back to concave-to-any
// chords when no concave-to-concave split validates (including whenever
// there is only one concave vertex, since no second concave vertex can
// exist to pair it with). Panics with a GeometryError if no valid split
// exists even with that relaxation; for a valid simple polygon this should
// never happen.
func Decompose(p geo.Polygon) []geo.Polygon {
	concave := p.ConcaveVertices()
	if len(concave) == 0 {
		return []geo.Polygon{p}
	}

	acceptConvex := len(concave) == 1
	var bestV1, bestV2 int
	bestWidthSum := -1.0
	n := p.Size()

	for {
		for _, c := range concave {
			for j := 0; j < n; j++ {
				if c == j || adjacentIndex(n, c, j) {
					continue
				}
				if !p.IsConcaveAt(j) && !acceptConvex {
					continue
				}
				if !chordValid(p, c, j) {
					continue
				}
				p1, p2 := Split(p, c, j)
				widthSum := p1.Width().Length() + p2.Width().Length()
				if bestWidthSum < 0 || widthSum < bestWidthSum {
					bestWidthSum = widthSum
					bestV1, bestV2 = c, j
				}
			}
		}
		if bestWidthSum >= 0 {
			break
		}
		if acceptConvex {
			fault.Fail(fault.GeometryError, "decomposition found no valid split for polygon with %d vertices", n)
		}
		acceptConvex = true
	}

	p1, p2 := Split(p, bestV1, bestV2)
	return append(Decompose(p1), Decompose(p2)...)
}
