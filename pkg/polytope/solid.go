package polytope

import (
	"fmt"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/google/uuid"
)

// coordScale is the cosmetic 1/100 coordinate convention applied at emit
// time (spec.md §4.4.6), inherited from the original scene units.
const coordScale = 0.01

// ErrEmptySolid marks a solid whose corner count does not exceed its
// dimension after adjacency recovery (spec.md §7). It is recovered locally
// by EliminateEmptySolids, never surfaced as a hard failure on its own.
var ErrEmptySolid = fmt.Errorf("polytope: empty solid")

// Solid is the central polytope: a list of owned faces plus a derived list
// of vertices, an adjacencies-valid flag, a cached silhouette, and a color
// (spec.md §3).
type Solid struct {
	id               uuid.UUID
	dim              int
	faces            []*Face
	corners          []*geom.Vector
	color            geom.RGB
	adjacenciesValid bool
	silhouette       *Solid
}

// New constructs an empty Solid of the given dimension and color. Faces are
// added afterward with AddFace. Each solid gets a fresh identity, exposed
// through ID; clones and slices get identities of their own.
func New(dim int, color geom.RGB) *Solid {
	if dim < 1 {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("polytope: invalid dimension %d", dim)})
	}
	return &Solid{id: uuid.New(), dim: dim, color: color}
}

// ID identifies this solid for diagnostics. It is not part of the
// geometry and plays no role in any invariant or equality test.
func (s *Solid) ID() uuid.UUID { return s.id }

// Dim returns the solid's dimension.
func (s *Solid) Dim() int { return s.dim }

// Color returns the solid's color.
func (s *Solid) Color() geom.RGB { return s.color }

// SetColor replaces the solid's color without touching its geometry.
func (s *Solid) SetColor(c geom.RGB) { s.color = c }

// Faces returns the solid's owned faces in insertion order.
func (s *Solid) Faces() []*Face { return s.faces }

// Corners returns the solid's derived vertex list. Valid only when
// AdjacenciesValid() is true.
func (s *Solid) Corners() []*geom.Vector { return s.corners }

// AdjacenciesValid reports whether the vertex/adjacency caches are current.
func (s *Solid) AdjacenciesValid() bool { return s.adjacenciesValid }

// AddFace appends a new owned face built from h and invalidates
// adjacencies and the cached silhouette.
func (s *Solid) AddFace(h geom.Halfspace) *Face {
	if h.Dim() != s.dim {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("polytope: face dim %d does not match solid dim %d", h.Dim(), s.dim)})
	}
	f := &Face{Halfspace: h}
	s.faces = append(s.faces, f)
	s.invalidate()
	return f
}

// Halfspaces returns the coefficient equations of every owned face, for
// bulk inside-tests against this solid.
func (s *Solid) Halfspaces() []geom.Halfspace {
	out := make([]geom.Halfspace, len(s.faces))
	for i, f := range s.faces {
		out[i] = f.Halfspace
	}
	return out
}

// invalidate clears every derived cache. Called by any mutating operation:
// AddFace, Translate, Transform.
func (s *Solid) invalidate() {
	s.adjacenciesValid = false
	s.silhouette = nil
	s.corners = nil
	for _, f := range s.faces {
		f.resetCaches()
	}
}

// Clone returns a deep, independent copy: fresh faces built from the same
// halfspace equations, with adjacencies left invalid (the caller recomputes
// them on demand, exactly as a freshly sliced solid would).
func (s *Solid) Clone() *Solid {
	out := New(s.dim, s.color)
	for _, f := range s.faces {
		out.AddFace(f.Halfspace)
	}
	return out
}

// Translate shifts every face's boundary by offset (spec.md §4.2) and
// invalidates derived state.
func (s *Solid) Translate(offset geom.Vector) {
	for _, f := range s.faces {
		f.Halfspace = f.Halfspace.Translate(offset)
	}
	s.invalidate()
}

// Transform applies a linear map to every face (spec.md §4.2). M is
// assumed invertible; if any face's Halfspace.Transform reports
// ErrDegenerateHalfspace, that is an InvariantViolation (spec.md §7).
func (s *Solid) Transform(m geom.LinearMap) {
	for _, f := range s.faces {
		nh, err := f.Halfspace.Transform(m)
		if err != nil {
			panic(geom.InvariantViolation{Message: "polytope: Transform: " + err.Error()})
		}
		f.Halfspace = nh
	}
	s.invalidate()
}

// Slice implements Halfspace.slice_solid from spec.md §4.2, hosted on Solid
// rather than on geom.Halfspace to avoid a geom→polytope→geom import
// cycle: both results are copies of s, with h (resp. its negation)
// appended as a new face. Callers collapse empties with
// EliminateEmptySolids.
func (s *Solid) Slice(h geom.Halfspace) (inside, outside *Solid) {
	inside = s.Clone()
	inside.AddFace(h)
	outside = s.Clone()
	outside.AddFace(h.Negate())
	return inside, outside
}
