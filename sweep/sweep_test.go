package sweep

import (
	"math"
	"testing"

	"github.com/hlin91/cppauvsi-searchpath/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() geo.Polygon {
	return geo.NewPolygon(
		geo.Point{X: 0, Y: 0}, geo.Point{X: 100, Y: 0}, geo.Point{X: 100, Y: 100}, geo.Point{X: 0, Y: 100},
	)
}

func standardConfig() Config {
	return Config{Offset: 10, Correction: 10, Radius: 10, Inf: 1e6}
}

func TestTraverseSquareProducesNineInteriorSweeps(t *testing.T) {
	sweeps := Traverse(square(), standardConfig())
	require.Len(t, sweeps, 9)
}

func TestTraverseSquareSweepSpacingIsOffset(t *testing.T) {
	sweeps := Traverse(square(), standardConfig())
	require.True(t, len(sweeps) >= 2)
	for i := 1; i < len(sweeps); i++ {
		d := geo.DistanceToLine(sweeps[i].A, sweeps[i-1])
		assert.InDelta(t, 10.0, d, 1e-6)
	}
}

func TestTraverseZigZagAlternatesEndpointSide(t *testing.T) {
	sweeps := Traverse(square(), standardConfig())
	require.True(t, len(sweeps) >= 2)
	for i := 0; i+1 < len(sweeps); i++ {
		// v2 of sweep i and v1 of sweep i+1 must be on the same side (both
		// near the same x extreme) so the implicit turn between them is short.
		sameSide := math.Abs(sweeps[i].B.X-sweeps[i+1].A.X) < math.Abs(sweeps[i].B.X-sweeps[i+1].B.X)
		assert.True(t, sameSide)
	}
}

func TestTraverseTriangleAppliesApexClearanceTrim(t *testing.T) {
	triangle := geo.NewPolygon(
		geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 0}, geo.Point{X: 5, Y: 8.66},
	)
	cfg := standardConfig()
	sweeps := Traverse(triangle, cfg)
	for _, s := range sweeps {
		assert.True(t, s.A.Y < 8.66-cfg.Radius+1e-6)
		assert.True(t, s.B.Y < 8.66-cfg.Radius+1e-6)
	}
}

func TestNaiveTraverseSweepsAreHorizontal(t *testing.T) {
	sweeps := NaiveTraverse(square(), standardConfig())
	require.NotEmpty(t, sweeps)
	for _, s := range sweeps {
		assert.InDelta(t, s.A.Y, s.B.Y, 1e-9)
	}
}

func TestTraverseRejectsDegeneratePolygon(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
	}()
	Traverse(geo.NewPolygon(geo.Point{X: 0, Y: 0}, geo.Point{X: 1, Y: 1}), standardConfig())
}
