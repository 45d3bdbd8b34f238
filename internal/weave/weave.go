// Package weave builds the planar subdivision of a constant-z slice from
// two orthogonal grids of push-cutter fibers and extracts its boundary as
// closed loops (spec.md §4.8). Vertex recording and crossing enumeration
// come from the fibers' own interval endpoints; loop extraction walks the
// grid cell-by-cell with a marching-squares case table, and closed loops
// are built by linking the resulting boundary segments at shared
// endpoints (spec.md §9: "a single implementation is acceptable").
package weave

import (
	"math"
	"sort"

	"github.com/dropcutter/camkernel/internal/geo"
)

// Weave is the planar subdivision of a single z-height slice, sampled on
// the grid formed by a set of x-direction fibers (one per row, at
// increasing y) and y-direction fibers (one per column, at increasing x).
// Corner coverage is cross-checked against both the row that sweeps through
// it and the column that sweeps through it, and boundary crossings are
// placed at the fiber's own recorded interval boundary rather than a cell
// midpoint, so the loops it extracts carry the push-cutter's real
// precision instead of grid resolution alone.
type Weave struct {
	Xs     []float64   // sorted column x-coordinates
	Ys     []float64   // sorted row y-coordinates
	inside [][]bool    // inside[i][j] <=> (Xs[j], Ys[i]) is covered material
	rows   []geo.Fiber // x-direction fiber at each Ys[i], sorted to match Ys
	cols   []geo.Fiber // y-direction fiber at each Xs[j], sorted to match Xs
	Z      float64
}

// Build assembles a Weave from the two fiber grids. Fibers with no
// intervals still contribute their grid line (an all-outside row/column). A
// grid vertex counts as covered material if either the row fiber sweeping
// through it in x, or the column fiber sweeping through it in y, records
// contact there: the two sweeps probe the same surface along different
// axes, so either one observing coverage is enough.
func Build(xFibers, yFibers []geo.Fiber) Weave {
	rows := append([]geo.Fiber(nil), xFibers...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].FixedCoord() < rows[j].FixedCoord() })
	cols := append([]geo.Fiber(nil), yFibers...)
	sort.Slice(cols, func(i, j int) bool { return cols[i].FixedCoord() < cols[j].FixedCoord() })

	w := Weave{
		Xs:   make([]float64, len(cols)),
		Ys:   make([]float64, len(rows)),
		rows: rows,
		cols: cols,
	}
	for j, c := range cols {
		w.Xs[j] = c.FixedCoord()
	}
	for i, r := range rows {
		w.Ys[i] = r.FixedCoord()
	}
	if len(rows) > 0 {
		w.Z = rows[0].Z()
	} else if len(cols) > 0 {
		w.Z = cols[0].Z()
	}

	w.inside = make([][]bool, len(rows))
	for i, r := range rows {
		w.inside[i] = make([]bool, len(cols))
		for j, c := range cols {
			w.inside[i][j] = fiberCovers(r, w.Xs[j]) || fiberCovers(c, w.Ys[i])
		}
	}
	return w
}

// fiberCovers reports whether fiber f's intervals cover the point at world
// x-or-y coordinate coord along its sweep axis.
func fiberCovers(f geo.Fiber, coord float64) bool {
	t, ok := fiberParamAt(f, coord)
	if !ok {
		return false
	}
	for _, iv := range f.Intervals {
		if t >= iv.Lower-geo.Epsilon && t <= iv.Upper+geo.Epsilon {
			return true
		}
	}
	return false
}

// fiberParamAt inverts Fiber.PointAt along f's sweep axis, returning the
// parameter t at which f reaches world coordinate coord.
func fiberParamAt(f geo.Fiber, coord float64) (float64, bool) {
	length := f.Length()
	if length < geo.Epsilon {
		return 0, false
	}
	if f.Direction == geo.FiberX {
		return (coord - f.P1.X) / (f.P2.X - f.P1.X), true
	}
	return (coord - f.P1.Y) / (f.P2.Y - f.P1.Y), true
}

// segment is one boundary edge produced by a single grid cell.
type segment struct {
	a, b geo.Point
}

// Loop is a closed sequence of points bounding one connected region of the
// weave's covered material at height Z (spec.md §4.8 correctness
// invariant: loops are closed, non-self-intersecting within tolerance).
type Loop struct {
	Points []geo.Point
}

// ExtractLoops walks every grid cell, emits its boundary segment(s) via a
// standard marching-squares case table (ambiguous saddle cells are
// resolved using the average of the four corner values, a documented
// simplification relative to a full crossing-aware traversal; see
// DESIGN.md), and links the resulting segments at shared endpoints
// (snapped to tolerance) into closed loops.
func (w Weave) ExtractLoops(tolerance float64) []Loop {
	var segs []segment
	for i := 0; i+1 < len(w.Ys); i++ {
		for j := 0; j+1 < len(w.Xs); j++ {
			segs = append(segs, w.cellSegments(i, j)...)
		}
	}
	return linkSegments(segs, tolerance)
}

// cellSegments returns the boundary segment(s) for the cell with corners
// (Xs[j],Ys[i]) .. (Xs[j+1],Ys[i+1]). Each edge's crossing is placed at the
// interval boundary the owning fiber (the row for the bottom/top edges, the
// column for the left/right edges) actually recorded; if no interval
// boundary falls in range the edge's midpoint is used as a fallback.
func (w Weave) cellSegments(i, j int) []segment {
	x0, x1 := w.Xs[j], w.Xs[j+1]
	y0, y1 := w.Ys[i], w.Ys[i+1]
	bl, br := w.inside[i][j], w.inside[i][j+1]
	tl, tr := w.inside[i+1][j], w.inside[i+1][j+1]

	idx := 0
	if bl {
		idx |= 1
	}
	if br {
		idx |= 2
	}
	if tr {
		idx |= 4
	}
	if tl {
		idx |= 8
	}
	if idx == 0 || idx == 15 {
		return nil
	}

	mz := w.Z
	bottom := geo.Point{X: w.rowCrossing(i, x0, x1, bl, br), Y: y0, Z: mz}
	top := geo.Point{X: w.rowCrossing(i+1, x0, x1, tl, tr), Y: y1, Z: mz}
	left := geo.Point{X: x0, Y: w.colCrossing(j, y0, y1, bl, tl), Z: mz}
	right := geo.Point{X: x1, Y: w.colCrossing(j+1, y0, y1, br, tr), Z: mz}

	switch idx {
	case 1, 14:
		return []segment{{left, bottom}}
	case 2, 13:
		return []segment{{bottom, right}}
	case 3, 12:
		return []segment{{left, right}}
	case 4, 11:
		return []segment{{right, top}}
	case 6, 9:
		return []segment{{bottom, top}}
	case 7, 8:
		return []segment{{left, top}}
	case 5: // saddle: bl+tr inside, br+tl outside
		if saddleCenterInside(bl, br, tr, tl) {
			return []segment{{left, top}, {bottom, right}}
		}
		return []segment{{left, bottom}, {right, top}}
	case 10: // saddle: br+tl inside, bl+tr outside
		if saddleCenterInside(bl, br, tr, tl) {
			return []segment{{left, bottom}, {right, top}}
		}
		return []segment{{left, top}, {bottom, right}}
	default:
		return nil
	}
}

// rowCrossing locates the x where row w.rows[rowIdx]'s coverage changes
// between x0 and x1, falling back to the midpoint when the two corner
// states agree (no crossing to find) or no recorded interval boundary lies
// in range.
func (w Weave) rowCrossing(rowIdx int, x0, x1 float64, loIn, hiIn bool) float64 {
	mid := (x0 + x1) / 2
	if loIn == hiIn {
		return mid
	}
	if x, ok := edgeCrossing(w.rows[rowIdx], x0, x1, true); ok {
		return x
	}
	return mid
}

// colCrossing is rowCrossing's analogue along a column's y-axis.
func (w Weave) colCrossing(colIdx int, y0, y1 float64, loIn, hiIn bool) float64 {
	mid := (y0 + y1) / 2
	if loIn == hiIn {
		return mid
	}
	if y, ok := edgeCrossing(w.cols[colIdx], y0, y1, false); ok {
		return y
	}
	return mid
}

// edgeCrossing scans f's intervals for a Lower or Upper boundary whose
// world coordinate (x if byX, else y) falls within [lo,hi], returning the
// first one found clamped to range.
func edgeCrossing(f geo.Fiber, lo, hi float64, byX bool) (float64, bool) {
	if lo > hi {
		lo, hi = hi, lo
	}
	coordOf := func(t float64) float64 {
		p := f.PointAt(t)
		if byX {
			return p.X
		}
		return p.Y
	}
	for _, iv := range f.Intervals {
		for _, t := range [2]float64{iv.Lower, iv.Upper} {
			c := coordOf(t)
			if c >= lo-geo.Epsilon && c <= hi+geo.Epsilon {
				return clampf(c, lo, hi), true
			}
		}
	}
	return 0, false
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// saddleCenterInside resolves a marching-squares saddle ambiguity using the
// average of the four corner values (the common "asymptotic decider").
func saddleCenterInside(bl, br, tr, tl bool) bool {
	n := 0
	for _, v := range []bool{bl, br, tr, tl} {
		if v {
			n++
		}
	}
	return n >= 2
}

// linkSegments joins segments sharing an endpoint (within tolerance) into
// closed polylines.
func linkSegments(segs []segment, tolerance float64) []Loop {
	used := make([]bool, len(segs))
	var loops []Loop

	key := func(p geo.Point) [2]int64 {
		scale := 1.0 / tolerance
		return [2]int64{int64(math.Round(p.X * scale)), int64(math.Round(p.Y * scale))}
	}
	index := map[[2]int64][]int{}
	for i, s := range segs {
		index[key(s.a)] = append(index[key(s.a)], i)
		index[key(s.b)] = append(index[key(s.b)], i)
	}

	// findNext locates an unused segment touching cur and returns its far
	// endpoint (the point to continue the walk toward).
	findNext := func(cur geo.Point) (int, geo.Point, bool) {
		for _, si := range index[key(cur)] {
			if used[si] {
				continue
			}
			if samePoint(segs[si].a, cur, tolerance) {
				return si, segs[si].b, true
			}
			if samePoint(segs[si].b, cur, tolerance) {
				return si, segs[si].a, true
			}
		}
		return -1, geo.Point{}, false
	}

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		points := []geo.Point{segs[start].a, segs[start].b}
		cur := segs[start].b
		for {
			next, far, ok := findNext(cur)
			if !ok {
				break
			}
			used[next] = true
			points = append(points, far)
			cur = far
			if samePoint(cur, points[0], tolerance) {
				break
			}
		}
		loops = append(loops, Loop{Points: points})
	}
	return loops
}

func samePoint(a, b geo.Point, tolerance float64) bool {
	return a.XYDistance(b) <= tolerance
}
