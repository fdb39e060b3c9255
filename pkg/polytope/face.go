// Package polytope implements the H-polytope engine: Face, Solid, and the
// algorithms from spec.md §4.4 — adjacency recovery, axis-aligned
// projection, silhouette extrusion, CSG subtraction, depth ordering, and
// dimension-dispatched rendering. This is the ~45% component of the
// system (spec.md §2 item 6) plus the Face component (item 3).
package polytope

import "github.com/chazu/adsoda/pkg/geom"

// Face is a Halfspace decorated with two back-reference caches filled
// exclusively by the owning Solid's adjacency pass (spec.md §4.3). A Face
// is owned by exactly one Solid; its caches must not be read while that
// Solid's adjacencies are invalid.
type Face struct {
	geom.Halfspace
	touchingCorners []*geom.Vector
	adjacentFaces   []*Face
}

// TouchingCorners returns the vertices of the owning Solid known to lie on
// this face, in the order they were discovered during adjacency recovery.
func (f *Face) TouchingCorners() []*geom.Vector {
	return f.touchingCorners
}

// AdjacentFaces returns the other faces of the owning Solid that share at
// least one vertex with this face.
func (f *Face) AdjacentFaces() []*Face {
	return f.adjacentFaces
}

func (f *Face) addTouchingCorner(c *geom.Vector) {
	for _, existing := range f.touchingCorners {
		if existing == c {
			return
		}
	}
	f.touchingCorners = append(f.touchingCorners, c)
}

func (f *Face) addAdjacent(o *Face) {
	if o == f {
		return
	}
	for _, existing := range f.adjacentFaces {
		if existing == o {
			return
		}
	}
	f.adjacentFaces = append(f.adjacentFaces, o)
}

func (f *Face) resetCaches() {
	f.touchingCorners = nil
	f.adjacentFaces = nil
}

func (f *Face) dropAdjacent(o *Face) {
	out := f.adjacentFaces[:0]
	for _, existing := range f.adjacentFaces {
		if existing != o {
			out = append(out, existing)
		}
	}
	f.adjacentFaces = out
}
