package geo

import "math"

// Axis selects which plane a bounding-box overlap query is evaluated in.
// The axis is a property of the query, not of the box (spec.md §3).
type Axis int

const (
	AxisXY Axis = iota
	AxisYZ
	AxisXZ
	AxisXYZ
)

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// EmptyBBox returns a box whose Union with anything yields that thing.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
}

// BBoxFromPoints builds the smallest box containing every point given.
func BBoxFromPoints(pts ...Point) BBox {
	b := EmptyBBox()
	for _, p := range pts {
		b = b.ExtendPoint(p)
	}
	return b
}

func (b BBox) ExtendPoint(p Point) BBox {
	return BBox{
		MinX: math.Min(b.MinX, p.X), MaxX: math.Max(b.MaxX, p.X),
		MinY: math.Min(b.MinY, p.Y), MaxY: math.Max(b.MaxY, p.Y),
		MinZ: math.Min(b.MinZ, p.Z), MaxZ: math.Max(b.MaxZ, p.Z),
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX), MaxX: math.Max(b.MaxX, o.MaxX),
		MinY: math.Min(b.MinY, o.MinY), MaxY: math.Max(b.MaxY, o.MaxY),
		MinZ: math.Min(b.MinZ, o.MinZ), MaxZ: math.Max(b.MaxZ, o.MaxZ),
	}
}

// Inflate grows the box by d on every side (used to build the cutter
// footprint envelope around the surface's XY extent).
func (b BBox) Inflate(d float64) BBox {
	return BBox{
		MinX: b.MinX - d, MaxX: b.MaxX + d,
		MinY: b.MinY - d, MaxY: b.MaxY + d,
		MinZ: b.MinZ - d, MaxZ: b.MaxZ + d,
	}
}

// Contains reports whether p lies within b (inclusive).
func (b BBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY &&
		p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Overlaps tests overlap between b and o projected on the given axis.
func (b BBox) Overlaps(o BBox, axis Axis) bool {
	switch axis {
	case AxisXY:
		return overlap1D(b.MinX, b.MaxX, o.MinX, o.MaxX) &&
			overlap1D(b.MinY, b.MaxY, o.MinY, o.MaxY)
	case AxisYZ:
		return overlap1D(b.MinY, b.MaxY, o.MinY, o.MaxY) &&
			overlap1D(b.MinZ, b.MaxZ, o.MinZ, o.MaxZ)
	case AxisXZ:
		return overlap1D(b.MinX, b.MaxX, o.MinX, o.MaxX) &&
			overlap1D(b.MinZ, b.MaxZ, o.MinZ, o.MaxZ)
	default:
		return overlap1D(b.MinX, b.MaxX, o.MinX, o.MaxX) &&
			overlap1D(b.MinY, b.MaxY, o.MinY, o.MaxY) &&
			overlap1D(b.MinZ, b.MaxZ, o.MinZ, o.MaxZ)
	}
}

func overlap1D(amin, amax, bmin, bmax float64) bool {
	return amin <= bmax && bmin <= amax
}

// MidX, MidY and MidZ return the box's midpoint along one coordinate (a
// projection axis alone does not name a single coordinate, so callers pick
// the one they need). Used for spatial-index median splits.
func (b BBox) MidX() float64 { return 0.5 * (b.MinX + b.MaxX) }
func (b BBox) MidY() float64 { return 0.5 * (b.MinY + b.MaxY) }
func (b BBox) MidZ() float64 { return 0.5 * (b.MinZ + b.MaxZ) }
