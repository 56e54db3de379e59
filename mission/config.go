package mission

import "github.com/hlin91/cppauvsi-searchpath/geo"

// Config bundles every tunable constant the planner needs, mirroring
// Config.h. Always passed explicitly rather than read from a package
// global.
type Config struct {
	// Radius is the vehicle's turn radius in meters.
	Radius float64
	// Offset is the perpendicular spacing between sweep lines in meters.
	// Must be at least Radius.
	Offset float64
	// Correction is the inward shrink applied to sweep endpoints.
	Correction float64
	// AltitudeFeet is the operating altitude tagged onto every generated
	// (non-mission) output waypoint.
	AltitudeFeet float64
	// Inf is a finite stand-in for infinity, large enough to exceed any
	// polygon's diameter.
	Inf float64
	// Epsilon is the numerical tolerance constant named in spec.md §6: true
	// machine epsilon, the same value package geo uses for its own
	// predicates (geo.Tolerance). Carried on Config so callers building a
	// pipeline can see the value spec.md names without reaching into geo
	// directly.
	Epsilon float64
}

// DefaultConfig returns the original planner's defaults: turn radius of a
// small fixed-wing UAV, sweep spacing and inset correction both tied to
// that same radius, and a 150 ft operating altitude.
func DefaultConfig() Config {
	const radius = 36.6
	return Config{
		Radius:       radius,
		Offset:       radius,
		Correction:   radius,
		AltitudeFeet: 150,
		Inf:          1e6,
		Epsilon:      geo.Tolerance,
	}
}
