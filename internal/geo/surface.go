package geo

// Surface is an immutable set of triangles plus their aggregated bounding
// box (spec.md §3). The Surface owns its triangles; a spatial index built
// over it borrows the slice and must not outlive it.
type Surface struct {
	Triangles []Triangle
	BBox      BBox
}

// NewSurface builds a Surface from a ready triangle list. Degenerate
// triangles are expected to already have been filtered by the caller via
// NewTriangle; NewSurface itself performs no further validation beyond
// aggregating the bounding box (spec.md §7: degenerate geometry is filtered
// at construction, not at surface assembly).
func NewSurface(tris []Triangle) Surface {
	bb := EmptyBBox()
	for _, t := range tris {
		bb = bb.Union(t.BBox)
	}
	return Surface{Triangles: tris, BBox: bb}
}

// Empty reports whether the surface has no triangles.
func (s Surface) Empty() bool { return len(s.Triangles) == 0 }
