package cutter

import (
	"math"

	"github.com/dropcutter/camkernel/internal/geo"
)

// DropCutter lowers cl (already initialised at its final x,y by the caller)
// against tri and raises cl.Z if tri constrains it higher than its current
// value (spec.md §4.3). It returns true if cl was raised.
func (c Cutter) DropCutter(cl *geo.CLPoint, tri geo.Triangle) bool {
	raised := false
	if c.dropVertex(cl, tri) {
		raised = true
	}
	if c.dropEdges(cl, tri) {
		raised = true
	}
	if c.dropFacet(cl, tri) {
		raised = true
	}
	return raised
}

func (c Cutter) vertexType() geo.ContactType {
	if c.Kind == Cylindrical {
		return geo.CCTypeVertexCyl
	}
	return geo.CCTypeVertex
}

func (c Cutter) edgeType(horizontal bool) geo.ContactType {
	switch c.Kind {
	case Cylindrical:
		if horizontal {
			return geo.CCTypeEdgeHorizCyl
		}
		return geo.CCTypeEdgeCyl
	case Ball:
		return geo.CCTypeEdgeBall
	case Bull:
		if horizontal {
			return geo.CCTypeEdgeHorizTor
		}
		return geo.CCTypeEdge
	case Cone:
		return geo.CCTypeEdgeCone
	default:
		return geo.CCTypeEdge
	}
}

func (c Cutter) facetType() geo.ContactType {
	if c.Kind == Cylindrical {
		return geo.CCTypeFacetCyl
	}
	return geo.CCTypeFacet
}

func (c Cutter) dropVertex(cl *geo.CLPoint, tri geo.Triangle) bool {
	raised := false
	axis := cl.Point()
	for i := 0; i < 3; i++ {
		v := tri.Vertex(i)
		d := axis.XYDistance(v)
		h, ok := c.heightAt(d)
		if !ok {
			continue
		}
		z := v.Z + h
		cc := geo.CCPoint{Point: v, Type: c.vertexType(), Normal: tri.Normal}
		if cl.Raise(z, cc) {
			raised = true
		}
	}
	return raised
}

func (c Cutter) dropEdges(cl *geo.CLPoint, tri geo.Triangle) bool {
	raised := false
	for i := 0; i < 3; i++ {
		a, b := tri.Vertex(i), tri.Vertex((i+1)%3)
		if c.dropEdge(cl, a, b, tri.Normal) {
			raised = true
		}
	}
	return raised
}

// dropEdge handles the contact of the cutter against the single edge a-b,
// via the perpendicular foot of the cutter axis onto the edge's XY
// projection (spec.md §4.1 edge contact row).
func (c Cutter) dropEdge(cl *geo.CLPoint, a, b geo.Point, normal geo.Vector3) bool {
	axis := cl.Point()
	ex, ey := b.X-a.X, b.Y-a.Y
	lenSq := ex*ex + ey*ey
	if lenSq < geo.Epsilon*geo.Epsilon {
		return false // degenerate projected edge; vertex checks cover it
	}
	s := ((axis.X-a.X)*ex + (axis.Y-a.Y)*ey) / lenSq
	if s <= geo.Epsilon || s >= 1-geo.Epsilon {
		return false // foot falls at/beyond an endpoint; vertex check owns it
	}
	foot := geo.Point{X: a.X + s*ex, Y: a.Y + s*ey, Z: a.Z + s*(b.Z-a.Z)}
	d := axis.XYDistance(foot)
	h, ok := c.heightAt(d)
	if !ok {
		return false
	}
	horizontal := math.Abs(b.Z-a.Z) < geo.Epsilon
	z := foot.Z + h
	cc := geo.CCPoint{Point: foot, Type: c.edgeType(horizontal), Normal: normal}
	return cl.Raise(z, cc)
}

func (c Cutter) dropFacet(cl *geo.CLPoint, tri geo.Triangle) bool {
	nz := tri.Normal.Z
	if math.Abs(nz) <= geo.Epsilon {
		return false // vertical facet cannot support the cutter, regardless of winding
	}
	axis := cl.Point()
	planeZ := tri.PlaneZAt(axis.X, axis.Y)
	proj := geo.Point{X: axis.X, Y: axis.Y, Z: planeZ}
	if !tri.ContainsXY(proj) {
		return false
	}
	z := planeZ + c.facetOffset(nz)
	cc := geo.CCPoint{Point: proj, Type: c.facetType(), Normal: tri.Normal}
	return cl.Raise(z, cc)
}
