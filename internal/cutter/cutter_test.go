package cutter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropcutter/camkernel/internal/geo"
)

func TestNewRejectsDegenerate(t *testing.T) {
	_, err := NewCylindrical(0, 10)
	require.ErrorIs(t, err, ErrDegenerateCutter)

	_, err = NewBull(5, 5, 10) // r2 must be < r
	require.ErrorIs(t, err, ErrDegenerateCutter)

	_, err = NewBull(5, 0, 10) // r2 must be > 0
	require.ErrorIs(t, err, ErrDegenerateCutter)

	_, err = NewCone(5, math.Pi/2, 10) // theta must be < pi/2
	require.ErrorIs(t, err, ErrDegenerateCutter)

	_, err = NewCylindrical(5, 4) // L must be >= R
	require.ErrorIs(t, err, ErrDegenerateCutter)
}

func TestNewAccepts(t *testing.T) {
	_, err := NewCylindrical(3, 10)
	require.NoError(t, err)
	_, err = NewBall(3, 10)
	require.NoError(t, err)
	_, err = NewBull(5, 1, 10)
	require.NoError(t, err)
	_, err = NewCone(5, math.Pi/4, 10)
	require.NoError(t, err)
}

func flatTriangle(t *testing.T) geo.Triangle {
	t.Helper()
	tri, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	return tri
}

func TestDropCutterCylindricalOnFlatFacet(t *testing.T) {
	tri := flatTriangle(t)
	c, err := NewCylindrical(3, 20)
	require.NoError(t, err)
	cl := geo.NewCLPoint(0, 0)
	raised := c.DropCutter(&cl, tri)
	require.True(t, raised)
	assert.InDelta(t, 0.0, cl.Z, 1e-9)
	assert.Equal(t, geo.CCTypeFacetCyl, cl.CC.Type)
}

func TestDropCutterBallOnVertex(t *testing.T) {
	tri, err := geo.NewTriangle(geo.Point{X: 0, Y: 0, Z: 5}, geo.Point{X: 10, Y: 0, Z: 5}, geo.Point{X: 0, Y: 10, Z: 5})
	require.NoError(t, err)
	c, err := NewBall(2, 20)
	require.NoError(t, err)
	cl := geo.NewCLPoint(0, 0)
	raised := c.DropCutter(&cl, tri)
	require.True(t, raised)
	// directly over the vertex: contact height is vertex.z + h(0) = 5 + 0 = 5
	assert.InDelta(t, 5.0, cl.Z, 1e-6)
}

func TestDropCutterNeverDecreasesAcrossMultipleTriangles(t *testing.T) {
	low, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	high, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 8}, geo.Point{X: 50, Y: -50, Z: 8}, geo.Point{X: 0, Y: 50, Z: 8})
	require.NoError(t, err)
	c, err := NewCylindrical(3, 20)
	require.NoError(t, err)

	cl := geo.NewCLPoint(0, 0)
	c.DropCutter(&cl, high)
	c.DropCutter(&cl, low)
	assert.InDelta(t, 8.0, cl.Z, 1e-9)
}

func TestDropCutterFacetIndependentOfWinding(t *testing.T) {
	ccw, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	cw, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0})
	require.NoError(t, err)
	require.Greater(t, ccw.Normal.Z, 0.0)
	require.Less(t, cw.Normal.Z, 0.0)

	c, err := NewBall(3, 20)
	require.NoError(t, err)

	clCCW := geo.NewCLPoint(5, 5)
	require.True(t, c.DropCutter(&clCCW, ccw))
	clCW := geo.NewCLPoint(5, 5)
	require.True(t, c.DropCutter(&clCW, cw))
	assert.InDelta(t, clCCW.Z, clCW.Z, 1e-9)
	assert.Equal(t, clCCW.CC.Type, clCW.CC.Type)
}

func TestPushCutterFacetIndependentOfWinding(t *testing.T) {
	ccw, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	cw, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0})
	require.NoError(t, err)

	c, err := NewCylindrical(3, 20)
	require.NoError(t, err)
	fiber := geo.NewFiber(geo.Point{X: -20, Y: 0, Z: 0}, geo.Point{X: 20, Y: 0, Z: 0})

	ivCCW, okCCW := c.pushFacet(fiber, ccw, fiber.Z())
	ivCW, okCW := c.pushFacet(fiber, cw, fiber.Z())
	require.True(t, okCCW)
	require.True(t, okCW)
	assert.InDelta(t, ivCCW.Lower, ivCW.Lower, 1e-9)
	assert.InDelta(t, ivCCW.Upper, ivCW.Upper, 1e-9)
}

func TestPushCutterReturnsIntervalOnFlatFacet(t *testing.T) {
	tri := flatTriangle(t)
	c, err := NewCylindrical(3, 20)
	require.NoError(t, err)
	fiber := geo.NewFiber(geo.Point{X: -20, Y: 0, Z: 0}, geo.Point{X: 20, Y: 0, Z: 0})
	ivs := c.PushCutter(fiber, tri)
	require.NotEmpty(t, ivs)
}

func TestPushCutterSymmetricAroundVertex(t *testing.T) {
	tri, err := geo.NewTriangle(geo.Point{X: -50, Y: -50, Z: 0}, geo.Point{X: 50, Y: -50, Z: 0}, geo.Point{X: 0, Y: 50, Z: 0})
	require.NoError(t, err)
	c, err := NewBall(3, 20)
	require.NoError(t, err)
	fiber := geo.NewFiber(geo.Point{X: -10, Y: 50, Z: -1}, geo.Point{X: 10, Y: 50, Z: -1})
	ivs := c.pushVertices(fiber, tri, fiber.Z())
	require.NotEmpty(t, ivs)
	iv := ivs[0]
	mid := (iv.Lower + iv.Upper) / 2
	assert.InDelta(t, 0.5, mid, 1e-6)
}

func TestEdgeRootWindowAnomalyFlagsWideWindow(t *testing.T) {
	tri := flatTriangle(t)
	c, err := NewCylindrical(1, 20) // small radius: 48 samples across a wide window is coarse
	require.NoError(t, err)
	fiber := geo.NewFiber(geo.Point{X: -1000, Y: -50, Z: 0}, geo.Point{X: 1000, Y: -50, Z: 0})
	assert.True(t, c.EdgeRootWindowAnomaly(fiber, tri))
}

func TestEdgeRootWindowAnomalyClearOnNarrowWindow(t *testing.T) {
	tri := flatTriangle(t)
	c, err := NewCylindrical(3, 20)
	require.NoError(t, err)
	fiber := geo.NewFiber(geo.Point{X: -1, Y: -50, Z: 0}, geo.Point{X: 1, Y: -50, Z: 0})
	assert.False(t, c.EdgeRootWindowAnomaly(fiber, tri))
}

func TestHeightAtMonotonic(t *testing.T) {
	for _, kind := range []Kind{Cylindrical, Ball, Bull, Cone} {
		var c Cutter
		var err error
		switch kind {
		case Cylindrical:
			c, err = NewCylindrical(5, 20)
		case Ball:
			c, err = NewBall(5, 20)
		case Bull:
			c, err = NewBull(5, 1, 20)
		case Cone:
			c, err = NewCone(5, math.Pi/4, 20)
		}
		require.NoError(t, err)
		prev := -1.0
		for d := 0.0; d <= c.R; d += c.R / 20 {
			h, ok := c.heightAt(d)
			require.True(t, ok)
			assert.GreaterOrEqual(t, h, prev)
			prev = h
		}
	}
}

func TestInvHeightRoundTrips(t *testing.T) {
	for _, kind := range []Kind{Cylindrical, Ball, Bull, Cone} {
		var c Cutter
		var err error
		switch kind {
		case Cylindrical:
			c, err = NewCylindrical(4, 20)
		case Ball:
			c, err = NewBall(4, 20)
		case Bull:
			c, err = NewBull(4, 1, 20)
		case Cone:
			c, err = NewCone(4, math.Pi/4, 20)
		}
		require.NoError(t, err)
		for d := 0.0; d <= c.R; d += c.R / 10 {
			h, ok := c.heightAt(d)
			require.True(t, ok)
			d2, ok := c.invHeight(h)
			require.True(t, ok)
			if kind == Bull && d <= c.R-c.R2 {
				// the bull's flat bottom has h=0 throughout, so the inverse is
				// the outer edge of the flat region
				assert.InDelta(t, c.R-c.R2, d2, 1e-6)
			} else if kind != Cylindrical { // cylindrical has no unique inverse (h is constant 0)
				assert.InDelta(t, d, d2, 1e-6)
			}
		}
	}
}
