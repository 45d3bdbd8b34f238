package geo

// ContactType tags which feature of a triangle a cutter touches, and with
// which part of the cutter. The full tag set from spec.md §4.1 must be
// representable; CCTypeError is reserved for algorithmic assertions and
// must never escape to successful output (spec.md §4.1, §7).
type ContactType int

const (
	CCTypeNone ContactType = iota
	CCTypeVertex
	CCTypeVertexCyl
	CCTypeEdge
	CCTypeEdgeHoriz
	CCTypeEdgeShaft
	CCTypeEdgeHorizCyl
	CCTypeEdgeHorizTor
	CCTypeEdgeBall
	CCTypeEdgePos
	CCTypeEdgeNeg
	CCTypeEdgeCyl
	CCTypeEdgeCone
	CCTypeEdgeConeBase
	CCTypeFacet
	CCTypeFacetTip
	CCTypeFacetCyl
	CCTypeError
)

func (c ContactType) String() string {
	switch c {
	case CCTypeNone:
		return "NONE"
	case CCTypeVertex:
		return "VERTEX"
	case CCTypeVertexCyl:
		return "VERTEX_CYL"
	case CCTypeEdge:
		return "EDGE"
	case CCTypeEdgeHoriz:
		return "EDGE_HORIZ"
	case CCTypeEdgeShaft:
		return "EDGE_SHAFT"
	case CCTypeEdgeHorizCyl:
		return "EDGE_HORIZ_CYL"
	case CCTypeEdgeHorizTor:
		return "EDGE_HORIZ_TOR"
	case CCTypeEdgeBall:
		return "EDGE_BALL"
	case CCTypeEdgePos:
		return "EDGE_POS"
	case CCTypeEdgeNeg:
		return "EDGE_NEG"
	case CCTypeEdgeCyl:
		return "EDGE_CYL"
	case CCTypeEdgeCone:
		return "EDGE_CONE"
	case CCTypeEdgeConeBase:
		return "EDGE_CONE_BASE"
	case CCTypeFacet:
		return "FACET"
	case CCTypeFacetTip:
		return "FACET_TIP"
	case CCTypeFacetCyl:
		return "FACET_CYL"
	default:
		return "CCTYPE_ERROR"
	}
}

// priority ranks a contact type for endpoint-tagging ties during interval
// merge: FACET > EDGE > VERTEX (spec.md §4.4).
func (c ContactType) priority() int {
	switch c {
	case CCTypeFacet, CCTypeFacetTip, CCTypeFacetCyl:
		return 3
	case CCTypeNone:
		return 0
	case CCTypeVertex, CCTypeVertexCyl:
		return 1
	default:
		return 2 // every remaining tag is some edge variant
	}
}

// CCPoint is the cutter-contact point: the feature on the workpiece the
// cutter touches, paired with its type and the surface normal there
// (geo/cutter_point.hpp in the original implementation carries the normal
// alongside the CC point; spec.md's CL-point descriptor is extended with it
// here, see SPEC_FULL.md §3).
type CCPoint struct {
	Point  Point
	Type   ContactType
	Normal Vector3
}
