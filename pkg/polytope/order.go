package polytope

import "github.com/chazu/adsoda/pkg/geom"

// Order classifies the pairwise depth relationship between two solids
// along the xₙ view axis (spec.md §4.4.4).
type Order int

const (
	// Neither means no silhouette overlap was detected from either side;
	// the hidden-solid pass leaves both solids visible.
	Neither Order = iota
	// Behind means s1 is behind s2 (s2 occludes s1 along +xₙ).
	Behind
	// InFront means s1 is in front of s2.
	InFront
)

func (o Order) String() string {
	switch o {
	case Behind:
		return "behind"
	case InFront:
		return "in-front"
	default:
		return "neither"
	}
}

func mirror(o Order) Order {
	switch o {
	case Behind:
		return InFront
	case InFront:
		return Behind
	default:
		return Neither
	}
}

// OrderAgainst implements spec.md §4.4.4: ensures adjacencies and
// silhouettes for both solids, then tests each solid's corners against the
// other's silhouette to resolve BEHIND/IN_FRONT/NEITHER. Cyclic or
// non-overlapping configurations return Neither and are left unresolved by
// the hidden-solid pass, as the spec accepts (spec.md §9).
func (s1 *Solid) OrderAgainst(s2 *Solid) Order {
	s1.EnsureAdjacencies()
	s2.EnsureAdjacencies()
	sil2 := s2.Silhouette()
	sil1 := s1.Silhouette()

	if o, ok := testAgainst(s1.corners, sil2, s2); ok {
		return o
	}
	if o, ok := testAgainst(s2.corners, sil1, s1); ok {
		return mirror(o)
	}
	return Neither
}

// testAgainst implements step 2 (and, mirrored, step 3) of spec.md
// §4.4.4: for every corner c in corners strictly inside otherSil, scan
// other's faces; a failing backface means BEHIND, a failing front-face
// means IN_FRONT. The first corner that yields a verdict decides it.
func testAgainst(corners []*geom.Vector, otherSil *Solid, other *Solid) (Order, bool) {
	n := other.dim
	for _, c := range corners {
		v := *c
		if ok, _ := v.InsideAll(otherSil.Halfspaces()); !ok {
			continue
		}
		for _, f := range other.faces {
			isBack := f.Normal()[n-1] <= 0
			inside := v.InsideHalfspace(f.Halfspace)
			if isBack && !inside {
				return Behind, true
			}
			if !isBack && !inside {
				return InFront, true
			}
		}
	}
	return Neither, false
}
