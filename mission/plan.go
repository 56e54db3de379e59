package mission

import (
	"fmt"
	"io"

	"github.com/hlin91/cppauvsi-searchpath/decompose"
	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/hlin91/cppauvsi-searchpath/internal/fault"
	"github.com/hlin91/cppauvsi-searchpath/router"
	"github.com/hlin91/cppauvsi-searchpath/sweep"
	"github.com/hlin91/cppauvsi-searchpath/tangent"
	"github.com/hlin91/cppauvsi-searchpath/tour"
)

// Mode selects the traversal strategy Plan uses to cover the search area.
type Mode int

const (
	// Decomp decomposes the search area into convex subregions and sweeps
	// each one along its own width direction, touring the subregions in
	// the order that minimizes total inter-region travel.
	Decomp Mode = iota
	// Naive sweeps the whole search area along a fixed east-west axis,
	// skipping decomposition entirely.
	Naive
)

// ParseMode maps a CLI argument to a Mode, per spec.md §6: "" or "decomp"
// selects Decomp, "naive" selects Naive, anything else is an error.
func ParseMode(arg string) (Mode, error) {
	switch arg {
	case "", "decomp":
		return Decomp, nil
	case "naive":
		return Naive, nil
	default:
		return Decomp, fmt.Errorf("invalid argument %q: available options are naive, decomp", arg)
	}
}

// toLocal projects a GPS record (degrees) into frame's tangent plane.
func toLocal(frame tangent.Frame, latDeg, lonDeg float64) geo.Point {
	p := frame.ToLocal(tangent.ToRadians(lonDeg), tangent.ToRadians(latDeg))
	return geo.Point{X: p.X, Y: p.Y}
}

// toGPS inverts toLocal, returning degrees.
func toGPS(frame tangent.Frame, p geo.Point) (latDeg, lonDeg float64) {
	lon, lat := frame.ToGPS(tangent.Point{X: p.X, Y: p.Y})
	return tangent.ToDegrees(lat), tangent.ToDegrees(lon)
}

func toPolygon(frame tangent.Frame, records []Record) geo.Polygon {
	points := make([]geo.Point, len(records))
	for i, r := range records {
		points[i] = toLocal(frame, r.Latitude, r.Longitude)
	}
	return geo.NewPolygon(points...)
}

// flattenEdges expands a sweep list into the flat waypoint sequence the
// original's searchPath/naivePath loops build by pushing both endpoints of
// every edge in order.
func flattenEdges(edges []geo.Edge) []geo.Point {
	points := make([]geo.Point, 0, 2*len(edges))
	for _, e := range edges {
		points = append(points, e.A, e.B)
	}
	return points
}

// coverSearchArea generates the full coverage path for search in local
// coordinates, mirroring searchPath/naivePath: naive mode always sweeps the
// whole area directly; decomp mode traverses directly when the area is
// already convex, otherwise decomposes, merges, and tours the resulting
// subregions.
func coverSearchArea(search geo.Polygon, mode Mode, cfg Config) []geo.Point {
	sweepCfg := sweep.Config{Offset: cfg.Offset, Correction: cfg.Correction, Radius: cfg.Radius, Inf: cfg.Inf}

	if mode == Naive {
		return flattenEdges(sweep.NaiveTraverse(search, sweepCfg))
	}
	if len(search.ConcaveVertices()) == 0 {
		return flattenEdges(sweep.Traverse(search, sweepCfg))
	}

	subregions := decompose.MergeSubregions(decompose.Decompose(search))
	nodes := make([]tour.Node, len(subregions))
	for i, r := range subregions {
		nodes[i] = tour.Node{Region: r, Path: sweep.Traverse(r, sweepCfg)}
	}
	g, order := tour.Plan(nodes)

	var points []geo.Point
	for _, idx := range order {
		points = append(points, g.Nodes[idx].Flatten()...)
	}
	return points
}

// Plan reads the mission, search-grid, and boundary streams, generates a
// boundary-safe coverage path over the search area, and writes the full
// output stream (mission points verbatim, then router detour, then
// coverage sweeps) to out. It recovers any fault raised by the geometric
// pipeline and returns it as a plain error.
func Plan(missionIn, searchIn, boundsIn io.Reader, out io.Writer, mode Mode, cfg Config) (err error) {
	defer func() { err = fault.Recover(recover()) }()

	searchRecords := ReadRecords(searchIn)
	if len(searchRecords) < 3 {
		fault.Fail(fault.MalformedInput, "search grid needs at least 3 points, got %d", len(searchRecords))
	}
	boundsRecords := ReadRecords(boundsIn)
	if len(boundsRecords) < 3 {
		fault.Fail(fault.MalformedInput, "boundary needs at least 3 points, got %d", len(boundsRecords))
	}
	missionRecords := ReadRecords(missionIn)
	if len(missionRecords) == 0 {
		fault.Fail(fault.MalformedInput, "mission file has no points")
	}

	// The first search-grid point anchors the tangent plane, per spec.md
	// §6; it necessarily maps to local (0, 0).
	frame := tangent.NewFrame(
		tangent.ToRadians(searchRecords[0].Longitude),
		tangent.ToRadians(searchRecords[0].Latitude),
	)

	search := toPolygon(frame, searchRecords).Canonicalize()
	boundary := toPolygon(frame, boundsRecords).Canonicalize()

	last := missionRecords[len(missionRecords)-1]
	lastPoint := toLocal(frame, last.Latitude, last.Longitude)

	coverage := coverSearchArea(search, mode, cfg)
	if len(coverage) == 0 {
		fault.Fail(fault.GeometryError, "coverage path is empty")
	}

	detour := router.RouteAround(lastPoint, coverage[0], boundary, cfg.Radius)

	output := make([]Record, 0, len(missionRecords)+len(detour)+len(coverage))
	for _, m := range missionRecords {
		output = append(output, Record{
			Ordinal:      len(output) + 1,
			Latitude:     m.Latitude,
			Longitude:    m.Longitude,
			AltitudeFeet: m.AltitudeFeet,
		})
	}

	generated := append(append([]geo.Point{}, detour...), coverage...)
	for _, p := range generated {
		lat, lon := toGPS(frame, p)
		output = append(output, Record{
			Ordinal:      len(output) + 1,
			Latitude:     lat,
			Longitude:    lon,
			AltitudeFeet: cfg.AltitudeFeet,
		})
	}

	return WriteOutput(out, output)
}
