package geo

import (
	"errors"
	"math"
)

// ErrDegenerateTriangle is returned by NewTriangle when the three vertices
// are collinear (zero area); spec.md §3 requires such triangles to be
// rejected at construction.
var ErrDegenerateTriangle = errors.New("geo: degenerate (zero-area) triangle")

// Triangle is an ordered triple of vertices with a precomputed outward
// normal and bounding box (spec.md §3).
type Triangle struct {
	V0, V1, V2 Point
	Normal     Vector3
	BBox       BBox
}

// NewTriangle builds a Triangle, computing its normal as the unit vector of
// (v1-v0)x(v2-v0). Triangles with (near) zero area are rejected.
func NewTriangle(v0, v1, v2 Point) (Triangle, error) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	cross := e1.Cross(e2)
	area := 0.5 * cross.Norm()
	if area < Epsilon {
		return Triangle{}, ErrDegenerateTriangle
	}
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		Normal: cross.Normalized(),
		BBox:   BBoxFromPoints(v0, v1, v2),
	}, nil
}

// Edge returns the i-th edge (0: v0->v1, 1: v1->v2, 2: v2->v0).
func (t Triangle) Edge(i int) (Point, Point) {
	switch i {
	case 0:
		return t.V0, t.V1
	case 1:
		return t.V1, t.V2
	default:
		return t.V2, t.V0
	}
}

// Vertex returns the i-th vertex.
func (t Triangle) Vertex(i int) Point {
	switch i {
	case 0:
		return t.V0
	case 1:
		return t.V1
	default:
		return t.V2
	}
}

// ContainsXY reports whether the vertical projection of p lies within the
// triangle's horizontal footprint, using barycentric coordinates computed
// from the XY components only. Used by facet-contact checks, which project
// the cutter axis onto the triangle's plane first.
func (t Triangle) ContainsXY(p Point) bool {
	v0v1x, v0v1y := t.V1.X-t.V0.X, t.V1.Y-t.V0.Y
	v0v2x, v0v2y := t.V2.X-t.V0.X, t.V2.Y-t.V0.Y
	v0px, v0py := p.X-t.V0.X, p.Y-t.V0.Y

	d00 := v0v1x*v0v1x + v0v1y*v0v1y
	d01 := v0v1x*v0v2x + v0v1y*v0v2y
	d11 := v0v2x*v0v2x + v0v2y*v0v2y
	d20 := v0px*v0v1x + v0py*v0v1y
	d21 := v0px*v0v2x + v0py*v0v2y

	denom := d00*d11 - d01*d01
	if math.Abs(denom) < Epsilon {
		return false
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1.0 - v - w
	return u >= -Epsilon && v >= -Epsilon && w >= -Epsilon
}

// PlaneZAt returns the z coordinate of the triangle's supporting plane
// above (x,y). Only valid when Normal.Z is not (close to) zero.
func (t Triangle) PlaneZAt(x, y float64) float64 {
	n := t.Normal
	d := n.Dot(t.V0.Sub(Point{}))
	return (d - n.X*x - n.Y*y) / n.Z
}
