package dbgdraw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlin91/cppauvsi-searchpath/geo"
)

func TestSceneDrawWritesPNG(t *testing.T) {
	scene := Scene{
		Boundary: geo.NewPolygon(
			geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0},
			geo.Point{X: 100, Y: 100}, geo.Point{X: 0, Y: 100},
		),
		Subregions: []geo.Polygon{
			geo.NewPolygon(
				geo.Point{X: 10, Y: 10}, geo.Point{X: 50, Y: 10},
				geo.Point{X: 50, Y: 90}, geo.Point{X: 10, Y: 90},
			),
		},
		Sweeps: [][]geo.Edge{
			{geo.NewEdge(geo.Point{X: 20, Y: 20}, geo.Point{X: 40, Y: 20})},
		},
		Route: []geo.Point{{X: 5, Y: 5}, {X: 15, Y: 15}},
	}

	out := filepath.Join(t.TempDir(), "scene.png")
	err := scene.Draw(2, out, false)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
