// Package router produces boundary-safe detours: given two interior points
// and a flight-boundary polygon, it inserts intermediate waypoints so the
// resulting polyline never crosses the boundary.
package router

import (
	"math"
	"sort"

	"github.com/hlin91/cppauvsi-searchpath/geo"
)

// crossing is a boundary intersection tagged with the index of the
// boundary edge it lies on, needed to compute that edge's inward normal.
type crossing struct {
	edgeIndex int
	point     geo.Point
}

// RouteAround returns the intermediate waypoints needed to get from p1 to
// p2 without the polyline p1 -> ... -> p2 crossing any edge of boundary.
// boundary must be wound counter-clockwise (see geo.Polygon.Canonicalize)
// for the inward-offset direction to actually point inward.
func RouteAround(p1, p2 geo.Point, boundary geo.Polygon, radius float64) []geo.Point {
	path := []geo.Point{p1, p2}
	path = unfold(path, boundary, radius)
	return path[1 : len(path)-1]
}

// unfold repeatedly walks every adjacent pair in path, inserting offset
// crossing points wherever a pair's segment crosses boundary, until a full
// pass inserts nothing. Mirrors pathToHelp's recursion over every pair of
// the expanded list after each insertion, as a loop rather than recursion
// on list iterators. The inserted points are offset inward along their
// crossing edge's normal but are not checked for containment in boundary,
// so the loop ends only once those offsets leave no crossing behind.
func unfold(path []geo.Point, boundary geo.Polygon, radius float64) []geo.Point {
	for {
		grew := false
		for i := 0; i+1 < len(path); i++ {
			expanded, ok := insertCrossings(path, i, boundary, radius)
			if ok {
				path = expanded
				grew = true
				break
			}
		}
		if !grew {
			return path
		}
	}
}

// insertCrossings finds every crossing of segment (path[i], path[i+1])
// with boundary, sorted by distance from path[i], offsets each inward by
// radius, and splices them into path between i and i+1. ok is false if
// the segment has no crossings.
func insertCrossings(path []geo.Point, i int, boundary geo.Polygon, radius float64) ([]geo.Point, bool) {
	line := geo.NewEdge(path[i], path[i+1])
	var crossings []crossing
	for e := 0; e < boundary.Size(); e++ {
		if pt, ok := geo.Intersect(line, boundary.Edge(e)); ok {
			crossings = append(crossings, crossing{edgeIndex: e, point: pt})
		}
	}
	if len(crossings) == 0 {
		return path, false
	}

	sort.Slice(crossings, func(a, b int) bool {
		return geo.Distance(path[i], crossings[a].point) < geo.Distance(path[i], crossings[b].point)
	})

	inserted := make([]geo.Point, len(crossings))
	for k, c := range crossings {
		theta := boundary.Edge(c.edgeIndex).Theta() + math.Pi/2
		inserted[k] = c.point.Add(geo.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)})
	}

	rest := append([]geo.Point(nil), path[i+1:]...)
	out := append(append([]geo.Point(nil), path[:i+1]...), inserted...)
	out = append(out, rest...)
	return out, true
}
