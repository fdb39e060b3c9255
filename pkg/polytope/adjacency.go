package polytope

import (
	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/linsolve"
)

// canonTolerance is the distance under which two solved intersection
// points are treated as the same geometric vertex (spec.md §9's open
// question: corners are appended without dedup by the letter of the spec,
// but pointer identity is the documented "same vertex" test downstream, so
// this engine canonicalizes within tolerance rather than merely tolerating
// duplicates). It is one order of magnitude looser than geom.Tolerance,
// matching the gap between "on a face" and "the same point" used
// elsewhere in this engine.
const canonTolerance = geom.Tolerance * 10

// EnsureAdjacencies recomputes the vertex list and face adjacency/touching
// caches if they are stale, per spec.md §4.4.1. It is a no-op when
// AdjacenciesValid() is already true.
//
// Vertex enumeration considers every n-combination of the face list (n =
// s.dim), solving the n×n system formed by the selected faces' equations.
// The spec describes this as decreasing-index tuples visited in
// lexicographic order; any enumeration order that visits each combination
// exactly once satisfies the contract, so this implementation uses a plain
// increasing-index recursive combinations walk.
func (s *Solid) EnsureAdjacencies() {
	if s.adjacenciesValid {
		return
	}
	for _, f := range s.faces {
		f.resetCaches()
	}
	s.corners = nil

	n := s.dim
	allFaces := s.Halfspaces()

	if n <= len(s.faces) {
		forEachCombination(len(s.faces), n, func(combo []int) {
			rows := make([]geom.Vector, n)
			for i, idx := range combo {
				rows[i] = s.faces[idx].Coeffs()
			}
			res, err := linsolve.Solve(rows)
			if err != nil || res.Status != linsolve.Unique {
				return // SingularSystem: skip this tuple, recovered locally
			}
			p := res.X
			if ok, _ := p.InsideOrOnAll(allFaces); !ok {
				return // not a true vertex
			}
			ptr := s.canonicalCorner(p)
			for _, idx := range combo {
				face := s.faces[idx]
				face.addTouchingCorner(ptr)
				for _, other := range combo {
					if other != idx {
						face.addAdjacent(s.faces[other])
					}
				}
			}
		})
	}

	s.removeRedundantFaces()
	s.adjacenciesValid = true
}

// canonicalCorner returns a pointer to an existing corner within
// canonTolerance of p, or appends p as a new owned corner and returns a
// pointer to it.
func (s *Solid) canonicalCorner(p geom.Vector) *geom.Vector {
	for _, existing := range s.corners {
		if withinTolerance(*existing, p) {
			return existing
		}
	}
	owned := p.Clone()
	s.corners = append(s.corners, &owned)
	return &owned
}

func withinTolerance(a, b geom.Vector) bool {
	sumSq := 0.0
	for i := range a {
		d := a[i] - b[i]
		sumSq += d * d
	}
	return sumSq <= canonTolerance*canonTolerance
}

// removeRedundantFaces drops faces with fewer than dim touching corners —
// their inequality is implied by the others (spec.md §4.4.1) — and scrubs
// dangling references to them from the surviving faces' adjacency caches
// so invariant 4 (adjacency symmetry) holds among the faces that remain.
func (s *Solid) removeRedundantFaces() {
	kept := s.faces[:0]
	var removed []*Face
	for _, f := range s.faces {
		if len(f.touchingCorners) >= s.dim {
			kept = append(kept, f)
		} else {
			removed = append(removed, f)
		}
	}
	s.faces = kept
	if len(removed) == 0 {
		return
	}
	for _, f := range s.faces {
		for _, r := range removed {
			f.dropAdjacent(r)
		}
	}
}

// forEachCombination calls fn once for every k-combination of indices
// drawn from [0, total), each visited exactly once.
func forEachCombination(total, k int, fn func(combo []int)) {
	if k == 0 {
		fn(nil)
		return
	}
	combo := make([]int, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, combo)
			fn(cp)
			return
		}
		for i := start; i <= total-(k-depth); i++ {
			combo[depth] = i
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
