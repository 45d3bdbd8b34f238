package cutter

import (
	"math"

	"github.com/dropcutter/camkernel/internal/geo"
)

// PushCutter sweeps the cutter along fiber at the fiber's fixed z and
// returns every sub-interval of fiber's parameter range where the cutter
// overlaps tri, one per contacted feature (spec.md §4.4). Each returned
// interval is already canonical (Lower<=Upper, both in [0,1]); the caller
// folds them into the fiber via Fiber.AddInterval.
func (c Cutter) PushCutter(fiber geo.Fiber, tri geo.Triangle) []geo.Interval {
	var out []geo.Interval
	zf := fiber.Z()
	out = append(out, c.pushVertices(fiber, tri, zf)...)
	out = append(out, c.pushEdges(fiber, tri, zf)...)
	if iv, ok := c.pushFacet(fiber, tri, zf); ok {
		out = append(out, iv)
	}
	return out
}

// pushVertices handles the vertex feature exactly: the height budget
// delta=v.Z-zf (how far the vertex sits above the cutter tip) is constant
// along the fiber, so inverting the cutter's height function gives a fixed
// reach dmax, and the overlap condition reduces to the quadratic
// distance-to-point inequality d(t)^2<=dmax^2. A vertex below the tip
// (delta<0) is never overlapped
// (spec.md §4.1: "reduces to intersecting the 1-D projection of the
// cutter profile with the fiber axis").
func (c Cutter) pushVertices(fiber geo.Fiber, tri geo.Triangle, zf float64) []geo.Interval {
	var out []geo.Interval
	dx, dy := fiber.P2.X-fiber.P1.X, fiber.P2.Y-fiber.P1.Y
	for i := 0; i < 3; i++ {
		v := tri.Vertex(i)
		delta := v.Z - zf
		dmax, ok := c.invHeight(delta)
		if !ok {
			continue
		}
		ux, uy := fiber.P1.X-v.X, fiber.P1.Y-v.Y
		A := dx*dx + dy*dy
		B := 2 * (ux*dx + uy*dy)
		C := ux*ux + uy*uy - dmax*dmax
		for _, rng := range quadraticRegionLE(A, B, C, 0, 1) {
			cc := geo.CCPoint{Point: v, Type: c.vertexType(), Normal: tri.Normal}
			out = append(out, geo.Interval{Lower: rng[0], Upper: rng[1], LowerCC: cc, UpperCC: cc})
		}
	}
	return out
}

func (c Cutter) pushEdges(fiber geo.Fiber, tri geo.Triangle, zf float64) []geo.Interval {
	var out []geo.Interval
	for i := 0; i < 3; i++ {
		a, b := tri.Vertex(i), tri.Vertex((i+1)%3)
		out = append(out, c.pushEdge(fiber, a, b, tri.Normal, zf)...)
	}
	return out
}

// pushEdge locates the sub-intervals of fiber's [0,1] range where the
// cutter, swept at height zf, overlaps the single edge a-b.
//
// The candidate window is first bounded analytically to where the edge's
// foot parameter lies on the segment (not its infinite extension). Within
// that window the required contact height is a smooth, single-humped
// function of the fiber parameter; its crossings against zf are located by
// sampling plus bisection refinement rather than a closed-form quartic
// solve (toroidal cutters genuinely need one; see DESIGN.md for why this
// numeric approach was chosen instead).
func (c Cutter) pushEdge(fiber geo.Fiber, a, b geo.Point, normal geo.Vector3, zf float64) []geo.Interval {
	ex, ey := b.X-a.X, b.Y-a.Y
	lenSq := ex*ex + ey*ey
	if lenSq < geo.Epsilon*geo.Epsilon {
		return nil
	}
	dx, dy := fiber.P2.X-fiber.P1.X, fiber.P2.Y-fiber.P1.Y
	s0 := ((fiber.P1.X-a.X)*ex + (fiber.P1.Y-a.Y)*ey) / lenSq
	s1 := (dx*ex + dy*ey) / lenSq

	lo, hi, ok := intersectAffineRange01(s0, s1, 0, 1)
	if !ok {
		return nil
	}

	height := func(t float64) (float64, bool) {
		s := s0 + s1*t
		foot := geo.Point{X: a.X + s*ex, Y: a.Y + s*ey, Z: a.Z + s*(b.Z-a.Z)}
		p := fiber.PointAt(t)
		d := p.XYDistance(foot)
		h, ok := c.heightAt(d)
		if !ok {
			return 0, false
		}
		return foot.Z + h, true
	}

	f := func(t float64) float64 {
		z, ok := height(t)
		if !ok {
			return math.Inf(-1)
		}
		return z - zf
	}

	horizontal := math.Abs(b.Z-a.Z) < geo.Epsilon
	ranges := rootBracketIntervals(f, lo, hi, 48)
	var out []geo.Interval
	for _, rng := range ranges {
		sLow := s0 + s1*rng[0]
		footLow := geo.Point{X: a.X + sLow*ex, Y: a.Y + sLow*ey, Z: a.Z + sLow*(b.Z-a.Z)}
		sHigh := s0 + s1*rng[1]
		footHigh := geo.Point{X: a.X + sHigh*ex, Y: a.Y + sHigh*ey, Z: a.Z + sHigh*(b.Z-a.Z)}
		lowerCC := geo.CCPoint{Point: footLow, Type: c.edgeType(horizontal), Normal: normal}
		upperCC := geo.CCPoint{Point: footHigh, Type: c.edgeType(horizontal), Normal: normal}
		out = append(out, geo.Interval{Lower: rng[0], Upper: rng[1], LowerCC: lowerCC, UpperCC: upperCC})
	}
	return out
}

// pushFacet handles the facet feature: on a planar facet the required
// contact height is an affine function of the fiber parameter, so the
// overlap region is a half-line clipped against the triangle's footprint
// along the fiber (spec.md §4.1: "reduces to a line-triangle clip in the
// tilted plane").
func (c Cutter) pushFacet(fiber geo.Fiber, tri geo.Triangle, zf float64) (geo.Interval, bool) {
	nz := tri.Normal.Z
	if math.Abs(nz) <= geo.Epsilon {
		return geo.Interval{}, false
	}
	offset := c.facetOffset(nz)

	p0 := fiber.PointAt(0)
	p1 := fiber.PointAt(1)
	z0 := tri.PlaneZAt(p0.X, p0.Y) + offset
	z1 := tri.PlaneZAt(p1.X, p1.Y) + offset

	lo, hi, ok := footprintRange(fiber, tri)
	if !ok {
		return geo.Interval{}, false
	}

	// z(t) = z0 + t*(z1-z0); overlap where z(t) >= zf.
	var rlo, rhi float64
	slope := z1 - z0
	switch {
	case math.Abs(slope) < geo.Epsilon:
		if z0 < zf-geo.Epsilon {
			return geo.Interval{}, false
		}
		rlo, rhi = 0, 1
	case slope > 0:
		root := (zf - z0) / slope
		rlo, rhi = root, 1
	default:
		root := (zf - z0) / slope
		rlo, rhi = 0, root
	}
	rlo = math.Max(rlo, lo)
	rhi = math.Min(rhi, hi)
	if rhi-rlo < geo.Epsilon {
		return geo.Interval{}, false
	}
	lowP := fiber.PointAt(rlo)
	highP := fiber.PointAt(rhi)
	lowerCC := geo.CCPoint{Point: geo.Point{X: lowP.X, Y: lowP.Y, Z: tri.PlaneZAt(lowP.X, lowP.Y)}, Type: c.facetType(), Normal: tri.Normal}
	upperCC := geo.CCPoint{Point: geo.Point{X: highP.X, Y: highP.Y, Z: tri.PlaneZAt(highP.X, highP.Y)}, Type: c.facetType(), Normal: tri.Normal}
	return geo.Interval{Lower: rlo, Upper: rhi, LowerCC: lowerCC, UpperCC: upperCC}, true
}

// footprintRange clips the fiber's [0,1] range to where it lies within
// tri's horizontal projection, via successive half-plane intersection
// against the triangle's three edges (the 2D Sutherland-Hodgman clip
// specialised to a single line segment). (-ey,ex) is the inward normal of
// edge a->b only for a CCW-wound triangle in XY; a CW-wound one (tri.Normal.Z
// < 0) needs the opposite sign, so contact stays winding-independent.
func footprintRange(fiber geo.Fiber, tri geo.Triangle) (float64, float64, bool) {
	winding := 1.0
	if tri.Normal.Z < 0 {
		winding = -1.0
	}
	lo, hi := 0.0, 1.0
	dx, dy := fiber.P2.X-fiber.P1.X, fiber.P2.Y-fiber.P1.Y
	for i := 0; i < 3; i++ {
		a, b := tri.Vertex(i), tri.Vertex((i+1)%3)
		ex, ey := b.X-a.X, b.Y-a.Y
		nx, ny := -ey*winding, ex*winding
		// f(t) = n . (point(t)-a); inside when f(t) >= 0.
		f0 := nx*(fiber.P1.X-a.X) + ny*(fiber.P1.Y-a.Y)
		fSlope := nx*dx + ny*dy
		var ok bool
		lo, hi, ok = intersectAffineRange01GE(f0, fSlope, lo, hi)
		if !ok {
			return 0, 0, false
		}
	}
	return lo, hi, true
}
