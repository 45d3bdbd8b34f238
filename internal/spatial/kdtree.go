package spatial

import (
	"sort"

	"github.com/dropcutter/camkernel/internal/geo"
)

// KDTree is a static, median-split binary tree over triangle bounding
// boxes, keyed on the projection chosen at Build time (spec.md §4.2). It
// stores triangle indices rather than triangles themselves, so it can be
// queried without holding a reference into the owning geo.Surface beyond
// the triangle slice passed to NewKDTree.
type KDTree struct {
	tris       []geo.Triangle
	axis       geo.Axis
	bucketSize int
	root       *kdNode
}

type kdNode struct {
	bbox     geo.BBox
	indices  []int // leaf only
	left     *kdNode
	right    *kdNode
}

func (n *kdNode) isLeaf() bool { return n.left == nil && n.right == nil }

// NewKDTree builds the tree in O(n log n). bucketSize (>=1) is the maximum
// number of triangles stored in a leaf.
func NewKDTree(tris []geo.Triangle, axis geo.Axis, bucketSize int) *KDTree {
	if bucketSize < 1 {
		bucketSize = 1
	}
	t := &KDTree{tris: tris, axis: axis, bucketSize: bucketSize}
	indices := make([]int, len(tris))
	for i := range tris {
		indices[i] = i
	}
	t.root = t.build(indices)
	return t
}

func (t *KDTree) build(indices []int) *kdNode {
	bbox := geo.EmptyBBox()
	for _, i := range indices {
		bbox = bbox.Union(t.tris[i].BBox)
	}
	if len(indices) <= t.bucketSize {
		return &kdNode{bbox: bbox, indices: indices}
	}

	// Pick the dominant axis within the node's own extent, restricted to
	// the two coordinates the configured projection cares about.
	var useX bool
	switch t.axis {
	case geo.AxisYZ:
		useX = (bbox.MaxY - bbox.MinY) >= (bbox.MaxZ - bbox.MinZ)
	case geo.AxisXZ:
		useX = (bbox.MaxX - bbox.MinX) >= (bbox.MaxZ - bbox.MinZ)
	default: // AxisXY, AxisXYZ
		useX = (bbox.MaxX - bbox.MinX) >= (bbox.MaxY - bbox.MinY)
	}

	sort.Slice(indices, func(i, j int) bool {
		mi := midpoint(t.tris[indices[i]].BBox, useX, t.axis)
		mj := midpoint(t.tris[indices[j]].BBox, useX, t.axis)
		return mi < mj
	})

	mid := len(indices) / 2
	left := t.build(append([]int(nil), indices[:mid]...))
	right := t.build(append([]int(nil), indices[mid:]...))
	return &kdNode{bbox: bbox, left: left, right: right}
}

func midpoint(b geo.BBox, useX bool, axis geo.Axis) float64 {
	switch axis {
	case geo.AxisYZ:
		if useX {
			return b.MidY()
		}
		return b.MidZ()
	default:
		if useX {
			return b.MidX()
		}
		if axis == geo.AxisXZ {
			return b.MidZ()
		}
		return b.MidY()
	}
}

// Query returns every triangle index whose bounding box overlaps box in
// the tree's configured projection. Safe for concurrent use by any number
// of readers once Build has returned.
func (t *KDTree) Query(box geo.BBox) []int {
	var out []int
	t.query(t.root, box, &out)
	return out
}

func (t *KDTree) query(n *kdNode, box geo.BBox, out *[]int) {
	if n == nil || !n.bbox.Overlaps(box, t.axis) {
		return
	}
	if n.isLeaf() {
		for _, i := range n.indices {
			if t.tris[i].BBox.Overlaps(box, t.axis) {
				*out = append(*out, i)
			}
		}
		return
	}
	t.query(n.left, box, out)
	t.query(n.right, box, out)
}
