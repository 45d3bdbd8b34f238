package cutter

import "github.com/dropcutter/camkernel/internal/geo"

// pushEdgeSamples mirrors the fixed sample count pushEdge passes to
// rootBracketIntervals; kept as a named constant so EdgeRootWindowAnomaly
// can reason about the same resolution pushEdge actually used.
const pushEdgeSamples = 48

// EdgeRootWindowAnomaly reports whether tri's edge feature, pushed along
// fiber, was resolved through a numeric root window wide enough that the
// bounded sampling-plus-bisection search in pushEdge (see DESIGN.md) could
// plausibly miss a contact narrower than one sample step. It does not
// indicate that a root actually was missed, only that the window-to-cutter
// ratio crossed the safety margin; callers use it as a diagnostic anomaly
// count (spec.md §4.12), never to alter PushCutter's returned intervals.
func (c Cutter) EdgeRootWindowAnomaly(fiber geo.Fiber, tri geo.Triangle) bool {
	for i := 0; i < 3; i++ {
		a, b := tri.Vertex(i), tri.Vertex((i+1)%3)
		ex, ey := b.X-a.X, b.Y-a.Y
		lenSq := ex*ex + ey*ey
		if lenSq < geo.Epsilon*geo.Epsilon {
			continue
		}
		dx, dy := fiber.P2.X-fiber.P1.X, fiber.P2.Y-fiber.P1.Y
		s0 := ((fiber.P1.X-a.X)*ex + (fiber.P1.Y-a.Y)*ey) / lenSq
		s1 := (dx*ex + dy*ey) / lenSq

		lo, hi, ok := intersectAffineRange01(s0, s1, 0, 1)
		if !ok {
			continue
		}
		windowLen := (hi - lo) * fiber.Length()
		stepLen := windowLen / float64(pushEdgeSamples)
		if stepLen > c.R/2 {
			return true
		}
	}
	return false
}
