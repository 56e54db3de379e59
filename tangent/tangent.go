// Package tangent implements the local tangent-plane coordinate model: a
// bijection between GPS longitude/latitude (in radians) and a metric 2D
// frame anchored at a chosen reference point, so that the rest of the
// planner can reason about the search area purely in planar terms.
//
// A Frame is scoped configuration, never process-wide mutable state: it is
// constructed once per planning invocation from the reference point and
// passed explicitly to every conversion, matching the original planner's
// computeBasis() without its global variables.
package tangent

import "math"

// EarthRadius is the spherical Earth approximation used throughout, in
// meters.
const EarthRadius = 6378137.0

// Frame is an orthonormal basis (eX, eY, eZ) anchored at a reference GPS
// point's ECEF position, plus that reference position itself.
type Frame struct {
	ref        [3]float64 // ECEF position of the reference point
	ex, ey, ez [3]float64 // orthonormal basis vectors
}

// Point is a 2D coordinate in a Frame's local tangent plane, in meters.
type Point struct {
	X, Y float64
}

func ecef(longitude, latitude float64) [3]float64 {
	return [3]float64{
		EarthRadius * math.Cos(latitude) * math.Cos(longitude),
		EarthRadius * math.Cos(latitude) * math.Sin(longitude),
		EarthRadius * math.Sin(latitude),
	}
}

func vecLength(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func normalize(v [3]float64) [3]float64 {
	l := vecLength(v)
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}

func cross(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// NewFrame builds a tangent-plane frame anchored at the given reference
// longitude/latitude, both in radians.
//
// The Z basis vector points up (away from Earth's center, i.e. the
// reference's own ECEF direction). The X basis vector is constructed to lie
// in the tangent plane and be parallel to east-west: starting from the
// reference point, the plane equation ez . (p - ref) = 0 is solved for the
// point with X held at 0, giving a second point on the plane; the vector
// from ref to that point is normalized into eX. eY = eZ x eX completes a
// right-handed basis consistent with a CCW-wound local frame.
func NewFrame(longitude, latitude float64) Frame {
	ref := ecef(longitude, latitude)
	ez := normalize(ref)

	// Solve the tangent-plane equation for a second point with X = 0,
	// keeping Z fixed at the reference's Z, then point eX from ref toward
	// it. ez . ((x,y,z) - ref) = 0, with x = 0, z = ref[2]:
	// ez[0]*(0-ref[0]) + ez[1]*(y-ref[1]) + ez[2]*(ref[2]-ref[2]) = 0
	// => y = ref[1] + ez[0]*ref[0]/ez[1]
	planeX := [3]float64{0, ref[1] + ez[0]*ref[0]/ez[1], ref[2]}
	exRaw := [3]float64{planeX[0] - ref[0], planeX[1] - ref[1], planeX[2] - ref[2]}
	ex := normalize(exRaw)
	ey := normalize(cross(ez, ex))

	return Frame{ref: ref, ex: ex, ey: ey, ez: ez}
}

// ToLocal projects a GPS point (radians) into this frame's tangent plane.
// The reference point itself maps to (0, 0).
func (f Frame) ToLocal(longitude, latitude float64) Point {
	p := ecef(longitude, latitude)
	shifted := [3]float64{p[0] - f.ref[0], p[1] - f.ref[1], p[2] - f.ref[2]}
	// Project onto the basis vectors; the resulting Z component is ~0 for
	// points near the reference and is discarded.
	x := shifted[0]*f.ex[0] + shifted[1]*f.ex[1] + shifted[2]*f.ex[2]
	y := shifted[0]*f.ey[0] + shifted[1]*f.ey[1] + shifted[2]*f.ey[2]
	return Point{X: x, Y: y}
}

// ToGPS inverts ToLocal, returning longitude and latitude in radians.
func (f Frame) ToGPS(p Point) (longitude, latitude float64) {
	standard := [3]float64{
		p.X*f.ex[0] + p.Y*f.ey[0] + f.ref[0],
		p.X*f.ex[1] + p.Y*f.ey[1] + f.ref[1],
		p.X*f.ex[2] + p.Y*f.ey[2] + f.ref[2],
	}
	longitude = math.Atan2(standard[1], standard[0])
	latitude = math.Asin(standard[2] / vecLength(standard))
	return
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// ToMeters converts feet to meters.
func ToMeters(feet float64) float64 {
	return feet * 0.3048
}

// ToFeet converts meters to feet.
func ToFeet(meters float64) float64 {
	return meters / 0.3048
}
