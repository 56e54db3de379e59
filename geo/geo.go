// Package geo implements the planar geometric primitives the rest of the
// planner is built on: points, edges, polygons, and spans. All coordinates
// are metric and live in a local tangent-plane frame (see package tangent);
// nothing here knows about GPS.
package geo

import "math"

// Tolerance is the numerical epsilon used for predicate comparisons
// throughout the planner: the collinearity/parallel check in Intersect and
// the horizontal-path check in package sweep. It is machine epsilon for
// float64, matching the original planner's EPSILON (DBL_EPSILON) at the
// same call sites.
const Tolerance = 2.220446049250313e-16

// Point is a 2D coordinate, also used as a positional vector from the
// origin when convenient.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar) of p and q treated as
// vectors: p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector from the origin to p.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Equal reports whether p and q are equal exactly. Points parsed from the
// same source data compare equal this way; synthesized points should use
// Distance and Tolerance instead.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// CircularIndex gives the modular index into a slice of length n, unlike
// the raw modulo operator it is always in [0, n) even for negative i.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
