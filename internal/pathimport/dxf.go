// Package pathimport loads guide paths for the path-drop-cutter operation
// from DXF drawings, adapted from the teacher's internal/importer DXF
// reader. Unlike the teacher's importer, which flattens every entity into a
// closed polygon outline for panel layout, this package keeps LINE and ARC
// entities as geo.Span values so a path-drop-cutter sample can follow true
// arcs instead of a chord-flattened approximation (spec.md §4.11).
package pathimport

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/dropcutter/camkernel/internal/config"
	"github.com/dropcutter/camkernel/internal/geo"
)

// Result is the outcome of importing a DXF drawing: zero or more guide
// paths, plus warnings about entities that were skipped.
type Result struct {
	Paths    []geo.Path
	Warnings []string
}

// ImportDXF reads the DXF file at path and chains its LINE, ARC and
// LWPOLYLINE entities into guide paths. CIRCLE entities each become their
// own closed single-span path.
func ImportDXF(path string) (Result, error) {
	var result Result

	drawing, err := dxf.Open(path)
	if err != nil {
		return result, config.NewOpError(config.StatusImportFailed, "cannot open DXF file: %v", err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return result, config.NewOpError(config.StatusImportFailed, "DXF file contains no entities")
	}

	var loose []geo.Span
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			spans := lwPolylineSpans(e)
			if len(spans) == 0 {
				result.Warnings = append(result.Warnings, "skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			p, err := geo.NewPath(spans)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("skipped LWPOLYLINE: %v", err))
				continue
			}
			result.Paths = append(result.Paths, p)

		case *entity.Circle:
			result.Paths = append(result.Paths, geo.Path{Spans: []geo.Span{circleArc(e)}})

		case *entity.Arc:
			loose = append(loose, arcSpan(e))

		case *entity.Line:
			loose = append(loose, geo.Line{
				P1: geo.Point{X: e.Start[0], Y: e.Start[1]},
				P2: geo.Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped, matching the
			// teacher importer's behaviour.
		}
	}

	for _, chain := range chainSpans(loose, 0.01) {
		p, err := geo.NewPath(chain)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("discontinuous chain dropped: %v", err))
			continue
		}
		result.Paths = append(result.Paths, p)
	}

	if len(result.Paths) == 0 {
		return result, config.NewOpError(config.StatusImportFailed, "no usable guide paths found in DXF file")
	}

	sort.Slice(result.Paths, func(i, j int) bool {
		return result.Paths[i].Length() > result.Paths[j].Length()
	})
	return result, nil
}

// lwPolylineSpans converts an LWPOLYLINE's vertices into an ordered run of
// Line and Arc spans, following each vertex's bulge factor the way the
// teacher's lwPolylineToOutline does, but emitting spans instead of
// flattened points.
func lwPolylineSpans(lw *entity.LwPolyline) []geo.Span {
	n := len(lw.Vertices)
	if n < 2 {
		return nil
	}

	spans := make([]geo.Span, 0, n)
	for i := 0; i < n; i++ {
		v := lw.Vertices[i]
		next := lw.Vertices[(i+1)%n]
		cur := geo.Point{X: v[0], Y: v[1]}
		nxt := geo.Point{X: next[0], Y: next[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) > 1e-9 {
			spans = append(spans, bulgeSpan(cur, nxt, bulge))
		} else {
			spans = append(spans, geo.Line{P1: cur, P2: nxt})
		}
	}
	return spans
}

// bulgeSpan builds the span connecting p1 to p2 implied by a DXF bulge
// factor (the tangent of 1/4 the arc's included angle), per the teacher's
// bulgeArcPoints derivation. A near-zero chord collapses to a Line, matching
// the teacher's degenerate-chord fallback.
func bulgeSpan(p1, p2 geo.Point, bulge float64) geo.Span {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return geo.Line{P1: p1, P2: p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	return geo.Arc{
		Center:     geo.Point{X: cx, Y: cy},
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Normal:     geo.Vector3{Z: 1},
		StartZ:     p1.Z,
		EndZ:       p2.Z,
	}
}

// arcSpan converts a DXF ARC entity directly to a geo.Arc span.
func arcSpan(a *entity.Arc) geo.Arc {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}
	return geo.Arc{
		Center:     geo.Point{X: cx, Y: cy},
		Radius:     a.Circle.Radius,
		StartAngle: startRad,
		EndAngle:   endRad,
		Normal:     geo.Vector3{Z: 1},
	}
}

// circleArc converts a DXF CIRCLE entity to a single full-sweep Arc span.
func circleArc(c *entity.Circle) geo.Arc {
	return geo.Arc{
		Center:     geo.Point{X: c.Center[0], Y: c.Center[1]},
		Radius:     c.Radius,
		StartAngle: 0,
		EndAngle:   2 * math.Pi,
		Normal:     geo.Vector3{Z: 1},
	}
}

// chainSpans links loose LINE/ARC spans into maximal runs by matching
// endpoints within tolerance, the span-based analogue of the teacher's
// chainSegments. Unlike the teacher, a chain need not close: open guide
// paths are common (a single pass along an edge), so a chain is emitted
// whenever extension stalls, whether or not it returned to its start.
func chainSpans(spans []geo.Span, tolerance float64) [][]geo.Span {
	if len(spans) == 0 {
		return nil
	}
	used := make([]bool, len(spans))
	var chains [][]geo.Span

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []geo.Span{spans[startIdx]}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1].EndPoint()
			for i, s := range spans {
				if used[i] {
					continue
				}
				if pointsClose(tail, s.StartPoint(), tolerance) {
					chain = append(chain, s)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, s.EndPoint(), tolerance) {
					chain = append(chain, reverseSpan(s))
					used[i] = true
					changed = true
					break
				}
			}
		}

		chains = append(chains, chain)
	}

	sort.Slice(chains, func(i, j int) bool {
		return chainLength(chains[i]) > chainLength(chains[j])
	})
	return chains
}

func chainLength(spans []geo.Span) float64 {
	var total float64
	for _, s := range spans {
		total += s.Length()
	}
	return total
}

// reverseSpan returns a span covering the same geometry traversed in the
// opposite direction, so a chain can extend through an entity encountered
// "backwards".
func reverseSpan(s geo.Span) geo.Span {
	switch v := s.(type) {
	case geo.Line:
		return geo.Line{P1: v.P2, P2: v.P1}
	case geo.Arc:
		return geo.Arc{
			Center:     v.Center,
			Radius:     v.Radius,
			StartAngle: v.EndAngle,
			EndAngle:   v.StartAngle,
			Normal:     v.Normal,
			StartZ:     v.EndZ,
			EndZ:       v.StartZ,
		}
	default:
		return s
	}
}

func pointsClose(a, b geo.Point, tolerance float64) bool {
	return a.XYDistance(b) <= tolerance
}
