// Package spatial provides a static spatial index over a triangle list,
// supporting cutter-overlap queries for the drop-cutter and push-cutter
// batch operations (spec.md §4.2).
package spatial

import "github.com/dropcutter/camkernel/internal/geo"

// Index is the narrow trait every concrete spatial index satisfies: build
// once from a triangle list, then answer overlap queries concurrently
// (spec.md §9 Design Notes: "the core depends on a narrow trait
// {build(tris), query_xy(bbox)->iter<triangle_id>}").
//
// Triangle storage is index-based (Surface.Triangles), not borrowed
// references, so the tree never outlives the surface it was built from is
// the caller's responsibility, not the tree's.
type Index interface {
	// Query returns the indices (into the triangle slice the index was
	// built from) of every triangle whose bounding box overlaps box in the
	// configured projection. The query is conservative: it may return
	// extra triangles but never omits one that truly overlaps.
	Query(box geo.BBox) []int
}

// Build constructs the default index variant (a median-split KD-tree) for
// the given triangle list, axis and leaf bucket size. bucketSize must be
// >= 1 (spec.md §6).
func Build(tris []geo.Triangle, axis geo.Axis, bucketSize int) *KDTree {
	return NewKDTree(tris, axis, bucketSize)
}
