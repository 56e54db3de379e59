package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtureLShape(t *testing.T) {
	p := LoadFixture("l_shape")
	require.Equal(t, 6, p.Size())
	assert.False(t, p.Clockwise())
	assert.Len(t, p.ConcaveVertices(), 1)
}

func TestLoadFixtureStapleBoundary(t *testing.T) {
	p := LoadFixture("c_boundary")
	require.Equal(t, 8, p.Size())
	assert.False(t, p.Clockwise())

	// A horizontal segment strung between the two legs of the staple must
	// leave the polygon and re-enter it, crossing exactly two of its edges.
	seg := NewEdge(Point{X: 5, Y: 50}, Point{X: 85, Y: 50})
	hits := 0
	for i := 0; i < p.Size(); i++ {
		if _, ok := Intersect(seg, p.Edge(i)); ok {
			hits++
		}
	}
	assert.Equal(t, 2, hits)
}
