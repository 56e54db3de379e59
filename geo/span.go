package geo

import "math"

// Span is a vertex-edge pair. Its length is the perpendicular distance from
// V to the infinite line through E; the width of a convex polygon is the
// minimum such span over all of its edges.
type Span struct {
	V Point
	E Edge
}

// Length returns the perpendicular distance from the span's vertex to its
// edge's line.
func (s Span) Length() float64 {
	return DistanceToLine(s.V, s.E)
}

// Theta returns the direction the sweep advances along this span: the
// direction perpendicular to E, rotated into the polygon.
func (s Span) Theta() float64 {
	return s.E.Theta() + math.Pi/2
}
