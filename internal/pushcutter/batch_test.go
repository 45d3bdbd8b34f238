package pushcutter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/cutter"
	"github.com/dropcutter/camkernel/internal/geo"
)

func TestBatchPushCutterRejectsEmptySurface(t *testing.T) {
	c, err := cutter.NewCylindrical(2, 10)
	require.NoError(t, err)
	_, err = New(c, geo.Surface{}, config.DefaultOperationConfig())
	require.ErrorIs(t, err, config.StatusEmptySurface)
}

func TestBatchPushCutterFindsFacetContact(t *testing.T) {
	tri, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	surf := geo.NewSurface([]geo.Triangle{tri})
	c, err := cutter.NewCylindrical(3, 20)
	require.NoError(t, err)
	b, err := New(c, surf, config.DefaultOperationConfig())
	require.NoError(t, err)

	fibers := []geo.Fiber{
		geo.NewFiber(geo.Point{X: -20, Y: -10, Z: -1}, geo.Point{X: 20, Y: -10, Z: -1}),
		geo.NewFiber(geo.Point{X: -20, Y: -10, Z: 1}, geo.Point{X: 20, Y: -10, Z: 1}),
	}
	results, err := b.Run(fibers)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Intervals, "fiber below the facet should overlap it")
	assert.Empty(t, results[1].Intervals, "fiber above the facet should not overlap it")
	assert.Greater(t, b.Counter.Load(), int64(0))
	assert.GreaterOrEqual(t, b.AnomalyCount(), int64(0))
}

func TestBatchPushCutterEmptyInput(t *testing.T) {
	tri, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	surf := geo.NewSurface([]geo.Triangle{tri})
	c, err := cutter.NewCylindrical(2, 10)
	require.NoError(t, err)
	b, err := New(c, surf, config.DefaultOperationConfig())
	require.NoError(t, err)
	out, err := b.Run(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
