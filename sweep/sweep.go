// Package sweep generates the parallel-line coverage pattern for a single
// convex subregion, either along the subregion's own width direction or
// along a fixed east-west axis.
package sweep

import (
	"math"

	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/hlin91/cppauvsi-searchpath/internal/fault"
)

// Config bundles the scalar parameters a sweep needs. It is always passed
// explicitly rather than read from a package global.
type Config struct {
	// Offset is the perpendicular spacing between consecutive sweep lines.
	Offset float64
	// Correction is the inward shrink applied to each sweep endpoint to
	// compensate for the vehicle's turn radius.
	Correction float64
	// Radius is the turn radius used by the final-sweep clearance check.
	Radius float64
	// Inf is a finite constant large enough to exceed any polygon's
	// diameter, used to build effectively-infinite sweep lines.
	Inf float64
}

// extend stretches e into a segment roughly 2*cfg.Inf long, centered on and
// collinear with e, preserving its direction.
func extend(e geo.Edge, inf float64) geo.Edge {
	if e.IsVertical() {
		a, b := e.A, e.B
		if a.Y < b.Y {
			a.Y, b.Y = -inf, inf
		} else {
			a.Y, b.Y = inf, -inf
		}
		return geo.NewEdge(a, b)
	}
	m := e.Slope()
	a, b := e.A, e.B
	if a.X < b.X {
		a.X -= inf
		a.Y -= inf * m
		b.X += inf
		b.Y += inf * m
	} else {
		b.X -= inf
		b.Y -= inf * m
		a.X += inf
		a.Y += inf * m
	}
	return geo.NewEdge(a, b)
}

// firstTwoIntersections scans the polygon's edges in index order and
// returns the first two distinct intersections found with line, if any.
func firstTwoIntersections(line geo.Edge, p geo.Polygon) (inter1, inter2 geo.Point, found1, found2 bool) {
	n := p.Size()
	i := 0
	for ; i < n && !found1; i++ {
		inter1, found1 = geo.Intersect(line, p.Edge(i))
	}
	for ; i < n && !found2; i++ {
		if pt, ok := geo.Intersect(line, p.Edge(i)); ok && !pt.Equal(inter1) {
			inter2, found2 = pt, true
		}
	}
	return
}

// correct shrinks the segment (inter1, inter2) inward by cfg.Correction
// independently on each axis, weighted by the orientation of the sweep
// line itself (lineTheta) rather than the direction the sweep is
// advancing in, since the endpoints being shrunk lie on that line. It
// reports whether the shrunk segment is still valid (its endpoints did
// not cross over each other), checking the x ordering for a horizontal
// before-segment (theta 0 or pi) and the sign of theta otherwise.
func correct(inter1, inter2 geo.Point, lineTheta, correction float64) (geo.Point, geo.Point, bool) {
	before := geo.NewEdge(inter1, inter2)
	inter1, inter2 = shrink(inter1, inter2, lineTheta, correction)
	after := geo.NewEdge(inter1, inter2)

	valid := true
	if theta := math.Abs(before.Theta()); theta < geo.Tolerance || math.Pi-theta < geo.Tolerance {
		if crossedOnX(before, after) {
			valid = false
		}
	} else if (before.Theta() > 0 && after.Theta() < 0) || (before.Theta() < 0 && after.Theta() > 0) {
		valid = false
	}
	return inter1, inter2, valid
}

// correctHorizontal is the naive-traversal counterpart of correct: the
// sweep line is always horizontal by construction, so it shrinks only the
// x-coordinate and checks only x ordering, never branching on theta.
func correctHorizontal(inter1, inter2 geo.Point, correction float64) (geo.Point, geo.Point, bool) {
	before := geo.NewEdge(inter1, inter2)
	if inter2.X > inter1.X {
		inter2.X -= correction
		inter1.X += correction
	} else {
		inter2.X += correction
		inter1.X -= correction
	}
	after := geo.NewEdge(inter1, inter2)
	return inter1, inter2, !crossedOnX(before, after)
}

// shrink moves inter1, inter2 toward each other by correction, weighted by
// cos/sin of lineTheta on the x and y axes respectively.
func shrink(inter1, inter2 geo.Point, lineTheta, correction float64) (geo.Point, geo.Point) {
	dx := math.Abs(correction * math.Cos(lineTheta))
	dy := math.Abs(correction * math.Sin(lineTheta))
	if inter2.X > inter1.X {
		inter2.X -= dx
		inter1.X += dx
	} else {
		inter2.X += dx
		inter1.X -= dx
	}
	if inter2.Y > inter1.Y {
		inter2.Y -= dy
		inter1.Y += dy
	} else {
		inter2.Y += dy
		inter1.Y -= dy
	}
	return inter1, inter2
}

// crossedOnX reports whether correction flipped the relative x ordering of
// before's endpoints.
func crossedOnX(before, after geo.Edge) bool {
	return (before.A.X > before.B.X && after.A.X < after.B.X) || (before.A.X < before.B.X && after.A.X > after.B.X)
}

// trimForClearance drops the last sweep in waypoints if either of its
// endpoints does not have cfg.Radius worth of clearance beyond the polygon
// along theta, matching spec.md's final-sweep clearance trim.
func trimForClearance(waypoints []geo.Edge, p geo.Polygon, theta, radius float64) []geo.Edge {
	if len(waypoints) == 0 {
		return waypoints
	}
	last := waypoints[len(waypoints)-1]
	d := geo.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	for _, v := range []geo.Point{last.A, last.B} {
		test := geo.NewEdge(v, v.Add(d))
		for i := 0; i < p.Size(); i++ {
			if _, ok := geo.Intersect(test, p.Edge(i)); ok {
				return waypoints[:len(waypoints)-1]
			}
		}
	}
	return waypoints
}

// correctFunc shrinks a pair of raw intersections and reports validity.
type correctFunc func(inter1, inter2 geo.Point) (geo.Point, geo.Point, bool)

// run performs the shared sweep-loop logic for both Traverse and
// NaiveTraverse: translate sweepLine by d (along moveTheta) repeatedly,
// correcting and zig-zag-ordering each pair of intersections found, until
// fewer than two intersections remain. The caller is responsible for any
// final-sweep clearance trim.
func run(p geo.Polygon, sweepLine geo.Edge, moveTheta float64, cfg Config, corrFn correctFunc) []geo.Edge {
	d := geo.Point{X: cfg.Offset * math.Cos(moveTheta), Y: cfg.Offset * math.Sin(moveTheta)}
	sweepLine = geo.NewEdge(sweepLine.A.Add(d), sweepLine.B.Add(d))

	var waypoints []geo.Edge
	j := 0
	for {
		inter1, inter2, found1, found2 := firstTwoIntersections(sweepLine, p)
		if found1 && found2 {
			c1, c2, valid := corrFn(inter1, inter2)
			if valid {
				if j%2 == 0 {
					waypoints = append(waypoints, geo.NewEdge(c1, c2))
				} else {
					waypoints = append(waypoints, geo.NewEdge(c2, c1))
				}
			}
		}
		sweepLine = geo.NewEdge(sweepLine.A.Add(d), sweepLine.B.Add(d))
		j++
		if !found2 {
			break
		}
	}
	return waypoints
}

// Traverse generates the sweep list for a convex subregion along its own
// width direction: the sweep lines run parallel to the minimum-width span's
// edge, advancing perpendicular to it. The final sweep is dropped if either
// of its endpoints lacks a turn radius of clearance beyond the polygon.
func Traverse(p geo.Polygon, cfg Config) []geo.Edge {
	if p.Size() < 3 {
		fault.Fail(fault.GeometryError, "cannot sweep a polygon with fewer than 3 vertices (got %d)", p.Size())
	}
	width := p.Width()
	lineTheta := width.E.Theta()
	sweepLine := extend(width.E, cfg.Inf)
	corrFn := func(i1, i2 geo.Point) (geo.Point, geo.Point, bool) {
		return correct(i1, i2, lineTheta, cfg.Correction)
	}
	waypoints := run(p, sweepLine, width.Theta(), cfg, corrFn)
	return trimForClearance(waypoints, p, width.Theta(), cfg.Radius)
}

// NaiveTraverse generates the sweep list along a fixed east-west axis,
// starting from the subregion's lowest vertex, regardless of the
// subregion's own width direction. Used by the CLI's "naive" mode. Unlike
// Traverse, it applies no final-sweep clearance trim.
func NaiveTraverse(p geo.Polygon, cfg Config) []geo.Edge {
	if p.Size() < 3 {
		fault.Fail(fault.GeometryError, "cannot sweep a polygon with fewer than 3 vertices (got %d)", p.Size())
	}
	minY := p.Vertex(0).Y
	for i := 1; i < p.Size(); i++ {
		if v := p.Vertex(i).Y; v < minY {
			minY = v
		}
	}
	sweepLine := geo.NewEdge(geo.Point{X: -cfg.Inf, Y: minY}, geo.Point{X: cfg.Inf, Y: minY})
	corrFn := func(i1, i2 geo.Point) (geo.Point, geo.Point, bool) {
		return correctHorizontal(i1, i2, cfg.Correction)
	}
	return run(p, sweepLine, math.Pi/2, cfg, corrFn)
}
