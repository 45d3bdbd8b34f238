package geo

import (
	"errors"
	"math"
)

// ErrSpanDiscontinuity is returned when a span's start point does not meet
// the previous span's end point within 1e-6 (spec.md §6: guide path
// spans require C0 continuity).
var ErrSpanDiscontinuity = errors.New("geo: guide path spans are not C0-continuous")

// Span is either a Line or an Arc segment of a guide path.
type Span interface {
	StartPoint() Point
	EndPoint() Point
	Length() float64
	// PointAt returns the point a fraction u in [0,1] of the way along the
	// span, measured by arc length.
	PointAt(u float64) Point
}

// Line is a straight guide-path span between two points.
type Line struct {
	P1, P2 Point
}

func (l Line) StartPoint() Point  { return l.P1 }
func (l Line) EndPoint() Point    { return l.P2 }
func (l Line) Length() float64    { return l.P1.Sub(l.P2).Norm() }
func (l Line) PointAt(u float64) Point {
	return l.P1.Lerp(l.P2, u)
}

// Arc is a circular guide-path span in a horizontal (XY) plane, swept from
// StartAngle to EndAngle (radians, measured counterclockwise from +X) around
// Center at radius Radius, z varying linearly between StartZ and EndZ if
// they differ (a helical arc), matching
// original_source/refactor/src/geo/arc.hpp. Normal is carried but not used
// by PointAt, StartPoint or EndPoint: arcs in tilted planes are not
// supported, and Center.Z is ignored.
type Arc struct {
	Center             Point
	Radius             float64
	StartAngle, EndAngle float64
	Normal             Vector3
	StartZ, EndZ       float64
}

func (a Arc) sweep() float64 { return a.EndAngle - a.StartAngle }

func (a Arc) StartPoint() Point { return a.PointAt(0) }
func (a Arc) EndPoint() Point   { return a.PointAt(1) }

func (a Arc) Length() float64 {
	return math.Abs(a.sweep()) * a.Radius
}

func (a Arc) PointAt(u float64) Point {
	angle := a.StartAngle + u*a.sweep()
	x := a.Center.X + a.Radius*math.Cos(angle)
	y := a.Center.Y + a.Radius*math.Sin(angle)
	z := a.StartZ + u*(a.EndZ-a.StartZ)
	return Point{x, y, z}
}

// Path is an ordered sequence of spans sampled by arc length to produce
// CL-points (spec.md §3, §4.9).
type Path struct {
	Spans []Span
}

// NewPath validates C0 continuity between consecutive spans and returns the
// assembled Path.
func NewPath(spans []Span) (Path, error) {
	for i := 1; i < len(spans); i++ {
		prevEnd := spans[i-1].EndPoint()
		curStart := spans[i].StartPoint()
		if prevEnd.Sub(curStart).Norm() > 1e-6 {
			return Path{}, ErrSpanDiscontinuity
		}
	}
	return Path{Spans: spans}, nil
}

// Length returns the sum of span lengths.
func (p Path) Length() float64 {
	var total float64
	for _, s := range p.Spans {
		total += s.Length()
	}
	return total
}

// Empty reports whether the path has no spans.
func (p Path) Empty() bool { return len(p.Spans) == 0 }

// PointAtArcLength returns the point at the given distance along the path,
// clamped to [0, Length()].
func (p Path) PointAtArcLength(s float64) Point {
	if len(p.Spans) == 0 {
		return Point{}
	}
	if s <= 0 {
		return p.Spans[0].StartPoint()
	}
	remaining := s
	for _, span := range p.Spans {
		l := span.Length()
		if remaining <= l || l < Epsilon {
			u := 0.0
			if l >= Epsilon {
				u = remaining / l
			}
			if u > 1 {
				u = 1
			}
			return span.PointAt(u)
		}
		remaining -= l
	}
	return p.Spans[len(p.Spans)-1].EndPoint()
}

// SampleArcLength returns the arc-length positions 0, s, 2s, ... plus the
// path's total length as the final sample, per spec.md §4.9.
func (p Path) SampleArcLength(s float64) []float64 {
	total := p.Length()
	if s <= 0 || total <= 0 {
		return []float64{0}
	}
	var out []float64
	for d := 0.0; d < total; d += s {
		out = append(out, d)
	}
	out = append(out, total)
	return out
}
