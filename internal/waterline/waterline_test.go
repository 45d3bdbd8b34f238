package waterline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/geo"
	"github.com/dropcutter/camkernel/internal/weave"
)

// pyramid returns a simple four-sided pyramid surface so waterline slices
// at different z produce differently-sized square-ish loops.
func pyramid(t *testing.T) geo.Surface {
	t.Helper()
	apex := geo.Point{X: 0, Y: 0, Z: 20}
	base := []geo.Point{{X: -20, Y: -20, Z: 0}, {X: 20, Y: -20, Z: 0}, {X: 20, Y: 20, Z: 0}, {X: -20, Y: 20, Z: 0}}
	var tris []geo.Triangle
	for i := 0; i < 4; i++ {
		tri, err := geo.NewTriangle(base[i], base[(i+1)%4], apex)
		require.NoError(t, err)
		tris = append(tris, tri)
	}
	return geo.NewSurface(tris)
}

func TestWaterlineRejectsEmptySurface(t *testing.T) {
	c, err := cutter.NewCylindrical(2, 10)
	require.NoError(t, err)
	_, err = New(c, geo.Surface{}, 1.0, config.DefaultOperationConfig())
	require.ErrorIs(t, err, config.StatusEmptySurface)
}

func TestWaterlineRejectsBadSampleStep(t *testing.T) {
	c, err := cutter.NewCylindrical(2, 10)
	require.NoError(t, err)
	_, err = New(c, pyramid(t), 0, config.DefaultOperationConfig())
	require.ErrorIs(t, err, config.StatusInvalidInput)
}

func TestWaterlinePreservesZOrder(t *testing.T) {
	c, err := cutter.NewCylindrical(1, 10)
	require.NoError(t, err)
	wl, err := New(c, pyramid(t), 2.0, config.DefaultOperationConfig())
	require.NoError(t, err)

	zs := []float64{15, 5, 10}
	results, err := wl.Run(zs)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, zs[i], r.Z)
	}
}

func TestWaterlineLowerSliceIsLarger(t *testing.T) {
	c, err := cutter.NewCylindrical(0.5, 10)
	require.NoError(t, err)
	wl, err := New(c, pyramid(t), 1.0, config.DefaultOperationConfig())
	require.NoError(t, err)

	results, err := wl.Run([]float64{2, 18})
	require.NoError(t, err)
	lowArea := totalSpan(results[0].Loops)
	highArea := totalSpan(results[1].Loops)
	if lowArea > 0 && highArea > 0 {
		assert.Greater(t, lowArea, highArea)
	}
}

func totalSpan(loops []weave.Loop) float64 {
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, l := range loops {
		for _, p := range l.Points {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
	}
	if math.IsInf(minX, 1) {
		return 0
	}
	return maxX - minX
}
