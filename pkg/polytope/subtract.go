package polytope

import "github.com/samber/lo"

// Subtract implements CSG subtraction of t from s (spec.md §4.4.5):
// s is sliced by each of t's halfspaces in turn, the "outside" half of
// each slice is kept as a surviving fragment, and the "inside" half is
// carried forward to be sliced by the next halfspace. What remains of the
// inside half after all of t's faces have been applied is the portion of
// s truly contained in t, and is discarded. The returned fragments
// together cover s minus t; empty fragments are not pre-filtered here,
// see EliminateEmptySolids.
func (s *Solid) Subtract(t *Solid) []*Solid {
	remaining := s
	var pieces []*Solid
	for _, f := range t.Faces() {
		inside, outside := remaining.Slice(f.Halfspace)
		pieces = append(pieces, outside)
		remaining = inside
	}
	return pieces
}

// EliminateEmptySolids recomputes adjacencies for each candidate and
// returns only those with more corners than their dimension (spec.md §7):
// a solid collapsed to fewer than dim+1 vertices by a slicing or
// subtraction pass carries no volume and is dropped.
func EliminateEmptySolids(candidates []*Solid) []*Solid {
	for _, c := range candidates {
		c.EnsureAdjacencies()
	}
	return lo.Filter(candidates, func(c *Solid, _ int) bool {
		return len(c.corners) > c.dim
	})
}
