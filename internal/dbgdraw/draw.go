package dbgdraw

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/hlin91/cppauvsi-searchpath/geo"
)

// padding around the shape to make the boundary and sweep lines easy to
// see against the canvas edge.
const padding = 40

// Scene is one planning pass worth of geometry to visualize: the flight
// boundary, the subregions the search area was decomposed into (or just
// the search area itself, for the convex/naive shortcuts), each
// subregion's sweep list, and the router's boundary-safe detour.
type Scene struct {
	Boundary   geo.Polygon
	Subregions []geo.Polygon
	Sweeps     [][]geo.Edge // Sweeps[i] is Subregions[i]'s sweep list
	Route      []geo.Point
}

func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(p geo.Point) {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	for i := 0; i < s.Boundary.Size(); i++ {
		grow(s.Boundary.Vertex(i))
	}
	for _, r := range s.Subregions {
		for i := 0; i < r.Size(); i++ {
			grow(r.Vertex(i))
		}
	}
	for _, p := range s.Route {
		grow(p)
	}
	return
}

// Draw rasterizes the scene at the given pixels-per-meter scale, writes it
// to path, and, when inline is true, prints it straight into the
// terminal via imgcat (iTerm only). It also prints a colored text summary
// of what was drawn: cyan for the boundary, one color per subregion
// keyed by whether it still has a concave vertex (a caller passing an
// already-merged decomposition should never see red here).
func (s Scene) Draw(scale float64, path string, inline bool) error {
	minX, minY, maxX, maxY := s.bounds()
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is bottom-left, like the rest of this codebase's
	// coordinate convention, then pad/scale/shift into view.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	c.SetLineWidth(2 / scale)

	s.drawBoundary(c)
	for i := range s.Subregions {
		var sweeps []geo.Edge
		if i < len(s.Sweeps) {
			sweeps = s.Sweeps[i]
		}
		drawSubregion(c, &s.Subregions[i], sweeps)
	}
	drawRoute(c, s.Route)

	if err := c.SavePNG(path); err != nil {
		return err
	}
	s.printSummary()
	if inline {
		return imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

func (s Scene) drawBoundary(c *gg.Context) {
	if s.Boundary.Size() == 0 {
		return
	}
	c.MoveTo(s.Boundary.Vertex(0).X, s.Boundary.Vertex(0).Y)
	for i := 1; i < s.Boundary.Size(); i++ {
		v := s.Boundary.Vertex(i)
		c.LineTo(v.X, v.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 1, 1)
	c.Stroke()
}

func drawSubregion(c *gg.Context, r *geo.Polygon, sweeps []geo.Edge) {
	if r.Size() == 0 {
		return
	}
	c.MoveTo(r.Vertex(0).X, r.Vertex(0).Y)
	for i := 1; i < r.Size(); i++ {
		v := r.Vertex(i)
		c.LineTo(v.X, v.Y)
	}
	c.ClosePath()
	c.SetRGBA(0.3, 0.2, 1, 0.3)
	c.FillPreserve()
	c.SetRGB(0, 0.5, 0)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, e := range sweeps {
		c.DrawLine(e.A.X, e.A.Y, e.B.X, e.B.Y)
		c.Stroke()
	}

	center := r.Center()
	// DrawStringAnchored doesn't respect the context's scale (it would
	// draw at 1:1 glyph size either way), so project the label position
	// into device space and reset to identity before drawing it.
	deviceX, deviceY := c.TransformPoint(center.X, center.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(Name(r), deviceX, deviceY, 0.5, 0.5)
	c.Pop()
}

func drawRoute(c *gg.Context, route []geo.Point) {
	if len(route) == 0 {
		return
	}
	c.SetRGB(1, 0, 1)
	for i := 0; i+1 < len(route); i++ {
		c.DrawLine(route[i].X, route[i].Y, route[i+1].X, route[i+1].Y)
		c.Stroke()
	}
	for _, p := range route {
		c.DrawCircle(p.X, p.Y, 3)
		c.Fill()
	}
}

func (s Scene) printSummary() {
	fmt.Println(aurora.Cyan("boundary").String(), s.Boundary.Size(), "vertices")
	for i := range s.Subregions {
		r := &s.Subregions[i]
		label := aurora.Green(Name(r)).String()
		if len(r.ConcaveVertices()) > 0 {
			label = aurora.Red(Name(r)).String()
		}
		sweepCount := 0
		if i < len(s.Sweeps) {
			sweepCount = len(s.Sweeps[i])
		}
		fmt.Printf("  subregion %s: %d sweeps\n", label, sweepCount)
	}
	if len(s.Route) > 0 {
		fmt.Println(aurora.Yellow(fmt.Sprintf("router inserted %d waypoints", len(s.Route))).String())
	}
}
