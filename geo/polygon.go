package geo

import "math"

// Polygon is an ordered sequence of >= 3 points representing a simple
// polygon, conventionally in counter-clockwise order with respect to a
// y-up frame. Vertex i's predecessor is i-1 mod n and successor i+1 mod n;
// edge i runs from vertex i to vertex i+1 mod n.
type Polygon struct {
	Points []Point
}

// NewPolygon builds a Polygon from the given vertices, in whatever order
// they're given; it does not canonicalize. Use Canonicalize explicitly once
// the winding of the input is known to matter.
func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: points}
}

// Size returns the number of vertices.
func (p Polygon) Size() int {
	return len(p.Points)
}

// Vertex returns vertex i, wrapping modularly.
func (p Polygon) Vertex(i int) Point {
	return p.Points[CircularIndex(i, len(p.Points))]
}

// Edge constructs edge i: the edge from vertex i to vertex i+1.
func (p Polygon) Edge(i int) Edge {
	return NewEdge(p.Vertex(i), p.Vertex(i+1))
}

// signedAreaSum returns sum((x_{i+1}-x_i)*(y_{i+1}+y_i)) over all edges.
// Its sign is positive for clockwise polygons in a y-up frame.
func (p Polygon) signedAreaSum() float64 {
	sum := 0.0
	for i := 0; i < p.Size(); i++ {
		a, b := p.Vertex(i), p.Vertex(i+1)
		sum += (b.X - a.X) * (b.Y + a.Y)
	}
	return sum
}

// Clockwise reports whether the polygon's vertices are wound clockwise in a
// y-up frame.
func (p Polygon) Clockwise() bool {
	return p.signedAreaSum() > 0
}

// Canonicalize returns p, reversed if necessary, so that it winds
// counter-clockwise.
func (p Polygon) Canonicalize() Polygon {
	if !p.Clockwise() {
		return p
	}
	reversed := make([]Point, p.Size())
	for i, v := range p.Points {
		reversed[len(p.Points)-1-i] = v
	}
	return Polygon{Points: reversed}
}

// IsConcaveAt reports whether vertex i is concave, under the convention
// that for a CCW polygon in a y-up frame, vertex B (= vertex i) with
// neighbors A (predecessor) and C (successor) is concave iff
// cross(B->A, B->C) > 0. The opposite sign convention silently breaks
// decomposition, so this is the one place that sign is allowed to appear.
func (p Polygon) IsConcaveAt(i int) bool {
	b := p.Vertex(i)
	a := p.Vertex(i - 1)
	c := p.Vertex(i + 1)
	ba := a.Sub(b)
	bc := c.Sub(b)
	return ba.Cross(bc) > 0
}

// ConcaveVertices returns the indices of every concave vertex, in order.
func (p Polygon) ConcaveVertices() []int {
	var out []int
	for i := 0; i < p.Size(); i++ {
		if p.IsConcaveAt(i) {
			out = append(out, i)
		}
	}
	return out
}

// Width returns the minimum-length span of the polygon, using the simple
// O(n^2) algorithm: for each edge, the antipodal vertex is whichever
// non-incident vertex is farthest from that edge's line; the width is the
// minimum such span length over all edges. Ties break toward the
// lowest-indexed edge. A rotating-calipers O(n) implementation may be
// substituted as long as it returns an identical minimum up to ties.
func (p Polygon) Width() Span {
	n := p.Size()
	best := Span{}
	bestLength := -1.0
	for i := 0; i < n; i++ {
		e := p.Edge(i)
		maxDist := -1.0
		var maxVert Point
		for j := 2; j < n; j++ {
			v := p.Vertex(i + j)
			if d := DistanceToLine(v, e); d > maxDist {
				maxDist = d
				maxVert = v
			}
		}
		span := Span{V: maxVert, E: e}
		if l := span.Length(); bestLength < 0 || l < bestLength {
			bestLength = l
			best = span
		}
	}
	return best
}

// Center returns the midpoint of the polygon's axis-aligned bounding box.
// This is a deliberately crude approximation of "center" (the original
// planner uses it as a cheap heuristic for inter-subregion distance, not
// as a true centroid or incenter).
func (p Polygon) Center() Point {
	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, v := range p.Points[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}

// Adjacent reports whether p and other share an edge, and if so returns the
// index of that edge within p and within other.
func (p Polygon) Adjacent(other Polygon) (iSelf, iOther int, ok bool) {
	for i := 0; i < p.Size(); i++ {
		e1 := p.Edge(i)
		for j := 0; j < other.Size(); j++ {
			if e1.Equal(other.Edge(j)) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
