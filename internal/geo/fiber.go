package geo

import "sort"

// FiberDirection is the axis a fiber runs along.
type FiberDirection int

const (
	FiberX FiberDirection = iota
	FiberY
)

// Interval is a closed sub-range [Lower,Upper] of a fiber's parameter,
// annotated with the contact descriptor at each endpoint (spec.md §3, §4.4).
type Interval struct {
	Lower, Upper float64
	LowerCC      CCPoint
	UpperCC      CCPoint
}

// Empty reports whether the interval has collapsed to (less than) a point;
// Fiber.AddInterval drops such intervals, so they never reach a weave
// (spec.md §4.8).
func (iv Interval) Empty() bool { return iv.Upper-iv.Lower < Epsilon }

// Fiber is a segment between two points differing in exactly one of x or y
// at a fixed z, parameterised t in [0,1], carrying a sorted non-overlapping
// list of intervals (spec.md §3).
type Fiber struct {
	P1, P2    Point
	Direction FiberDirection
	Intervals []Interval
}

// NewFiber builds a fiber between p1 and p2, inferring the direction from
// which coordinate differs.
func NewFiber(p1, p2 Point) Fiber {
	dir := FiberX
	if absDiff(p1.X, p2.X) < absDiff(p1.Y, p2.Y) {
		dir = FiberY
	}
	return Fiber{P1: p1, P2: p2, Direction: dir}
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// PointAt returns point(t) = p1 + t*(p2-p1).
func (f Fiber) PointAt(t float64) Point {
	return f.P1.Lerp(f.P2, t)
}

// FixedCoord returns the fiber's fixed coordinate: the X of an X-direction fiber
// is NOT fixed (it sweeps); the fixed one is Y for FiberX, X for FiberY.
func (f Fiber) FixedCoord() float64 {
	if f.Direction == FiberX {
		return f.P1.Y
	}
	return f.P1.X
}

// Z returns the fiber's constant z-height.
func (f Fiber) Z() float64 { return f.P1.Z }

// Length returns the fiber's world-space length (used to convert a
// parameter range back into absolute coordinates).
func (f Fiber) Length() float64 {
	return f.P1.Sub(f.P2).Norm()
}

// AddInterval merges iv into the fiber's interval list by union,
// canonicalising the result: sorted, non-overlapping, each endpoint
// annotation taken from the interval whose endpoint survives the fusion,
// with ties broken by FACET > EDGE > VERTEX priority (spec.md §4.4).
func (f *Fiber) AddInterval(iv Interval) {
	if iv.Empty() {
		return
	}
	merged := make([]Interval, 0, len(f.Intervals)+1)
	inserted := false
	cur := iv
	for _, existing := range f.Intervals {
		if existing.Upper < cur.Lower-Epsilon {
			merged = append(merged, existing)
			continue
		}
		if existing.Lower > cur.Upper+Epsilon {
			if !inserted {
				merged = append(merged, cur)
				inserted = true
			}
			merged = append(merged, existing)
			continue
		}
		// Overlapping (or touching): fuse existing into cur.
		cur = fuseIntervals(cur, existing)
	}
	if !inserted {
		merged = append(merged, cur)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Lower < merged[j].Lower })
	f.Intervals = merged
}

// fuseIntervals unions a and b, picking the endpoint annotation of whichever
// interval contributes the surviving (min lower / max upper) bound, with
// FACET>EDGE>VERTEX priority breaking ties at equal bounds.
func fuseIntervals(a, b Interval) Interval {
	out := Interval{}
	switch {
	case a.Lower < b.Lower-Epsilon:
		out.Lower, out.LowerCC = a.Lower, a.LowerCC
	case b.Lower < a.Lower-Epsilon:
		out.Lower, out.LowerCC = b.Lower, b.LowerCC
	default:
		out.Lower = a.Lower
		out.LowerCC = higherPriority(a.LowerCC, b.LowerCC)
	}
	switch {
	case a.Upper > b.Upper+Epsilon:
		out.Upper, out.UpperCC = a.Upper, a.UpperCC
	case b.Upper > a.Upper+Epsilon:
		out.Upper, out.UpperCC = b.Upper, b.UpperCC
	default:
		out.Upper = a.Upper
		out.UpperCC = higherPriority(a.UpperCC, b.UpperCC)
	}
	return out
}

func higherPriority(a, b CCPoint) CCPoint {
	if b.Type.priority() > a.Type.priority() {
		return b
	}
	return a
}
