// Package space implements Space, the per-dimension container of solids
// and lights that the render pipeline operates on frame by frame
// (spec.md §4.5).
package space

import (
	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/polytope"
	"github.com/dhconnelly/rtreego"
)

// Space owns a set of solids and the lighting environment they are lit
// against.
type Space struct {
	dim     int
	ambient geom.RGB
	lights  []geom.Light
	solids  []*polytope.Solid
}

// New constructs an empty Space of the given dimension.
func New(dim int, ambient geom.RGB) *Space {
	return &Space{dim: dim, ambient: ambient}
}

func (s *Space) Dim() int               { return s.dim }
func (s *Space) Ambient() geom.RGB      { return s.ambient }
func (s *Space) SetAmbient(c geom.RGB)  { s.ambient = c }
func (s *Space) Lights() []geom.Light   { return s.lights }
func (s *Space) Solids() []*polytope.Solid { return s.solids }

// AddSolid appends S by ownership transfer (spec.md §4.5).
func (s *Space) AddSolid(solid *polytope.Solid) {
	s.solids = append(s.solids, solid)
}

// AddLight normalizes L's direction in place then appends it by value.
func (s *Space) AddLight(l geom.Light) {
	l.Direction = l.Direction.Normalized()
	s.lights = append(s.lights, l)
}

// Clear detaches solids from the space without mutating them.
func (s *Space) Clear() {
	s.solids = nil
}

// ClearAndDelete destroys every owned solid reference. Go's GC reclaims
// them once unreferenced; this exists to mirror the explicit
// clear-vs-destroy distinction the spec draws for ownership transfer
// semantics.
func (s *Space) ClearAndDelete() {
	s.solids = nil
}

// Subtract implements spec.md §4.5's subtract: every owned solid is
// replaced by the concatenation of S-T for each owned S.
func (s *Space) Subtract(t *polytope.Solid) {
	var next []*polytope.Solid
	for _, solid := range s.solids {
		next = append(next, solid.Subtract(t)...)
	}
	s.solids = next
}

// ProjectTo implements spec.md §4.5's project_to: empties target, then
// projects every owned solid's face-solids into it using this space's
// lights and ambient.
func (s *Space) ProjectTo(target *Space) {
	target.Clear()
	for _, solid := range s.solids {
		target.solids = append(target.solids, solid.Project(s.lights, s.ambient)...)
	}
}

// EnsureAdjacencies freezes derived state for every owned solid. The
// external render loop must call this before rendering any Space's solids
// (spec.md §5).
func (s *Space) EnsureAdjacencies() {
	for _, solid := range s.solids {
		solid.EnsureAdjacencies()
	}
}

// EliminateEmptySolids drops solids whose corner count does not exceed
// the space's dimension (spec.md §4.4.5).
func (s *Space) EliminateEmptySolids() {
	s.solids = polytope.EliminateEmptySolids(s.solids)
}

// solidBox adapts a solid's corner-derived AABB, projected onto the axes
// perpendicular to the view axis, to rtreego.Spatial for the broad-phase
// prefilter in RemoveHiddenSolids. The view axis (xₙ, the last coordinate)
// is deliberately excluded: a silhouette is unbounded along it (spec.md
// §4.4.3), so two solids at very different depths along xₙ can still
// occlude one another, and including xₙ in the box would make their AABBs
// disjoint and hide them from SearchIntersect entirely.
type solidBox struct {
	index int
	rect  *rtreego.Rect
}

func (b solidBox) Bounds() *rtreego.Rect { return b.rect }

func boundingRect(s *polytope.Solid, index int) (solidBox, bool) {
	corners := s.Corners()
	if len(corners) == 0 {
		return solidBox{}, false
	}
	perp := s.Dim() - 1 // axes other than the view axis xₙ
	if perp < 1 {
		return solidBox{}, false
	}
	min := make([]float64, perp)
	max := make([]float64, perp)
	copy(min, (*corners[0])[:perp])
	copy(max, (*corners[0])[:perp])
	for _, c := range corners[1:] {
		for i := 0; i < perp; i++ {
			v := (*c)[i]
			if v < min[i] {
				min[i] = v
			}
			if v > max[i] {
				max[i] = v
			}
		}
	}
	const pad = 1e-3
	widths := make([]float64, perp)
	point := make(rtreego.Point, perp)
	for i := 0; i < perp; i++ {
		point[i] = min[i] - pad
		widths[i] = (max[i] - min[i]) + 2*pad
	}
	rect, err := rtreego.NewRect(point, widths)
	if err != nil {
		return solidBox{}, false
	}
	return solidBox{index: index, rect: rect}, true
}

// RemoveHiddenSolids implements spec.md §4.5's remove_hidden_solids: for
// every solid Si, clip it by the silhouette of every other solid Sj that
// it is BEHIND. An R-tree AABB prefilter over the axes perpendicular to
// the view axis narrows the pairs that pay the full OrderAgainst/Subtract
// cost; it is a conservative approximation (it can admit pairs that turn
// out not to overlap, never the reverse), not an exact occlusion test —
// OrderAgainst still decides the real answer for every candidate it
// returns. This does not resolve cyclic occlusion, per the spec.
func (s *Space) RemoveHiddenSolids() {
	source := s.solids
	if len(source) == 0 {
		return
	}

	perpDim := s.dim - 1
	usePrefilter := perpDim >= 1

	for _, solid := range source {
		solid.EnsureAdjacencies()
	}

	var tree *rtreego.Rtree
	boxes := make([]solidBox, len(source))
	haveBox := make([]bool, len(source))
	if usePrefilter {
		tree = rtreego.NewTree(perpDim, 2, 8)
		for i, solid := range source {
			box, ok := boundingRect(solid, i)
			if ok {
				boxes[i] = box
				haveBox[i] = true
				tree.Insert(box)
			}
		}
	}

	var out []*polytope.Solid
	for i, si := range source {
		acc := []*polytope.Solid{si.Clone()}
		var candidates []rtreego.Spatial
		if usePrefilter && haveBox[i] {
			candidates = tree.SearchIntersect(boxes[i].rect)
		} else {
			for j := range source {
				if j != i {
					candidates = append(candidates, solidBox{index: j})
				}
			}
		}
		for _, c := range candidates {
			j := c.(solidBox).index
			if j == i {
				continue
			}
			sj := source[j]
			if si.OrderAgainst(sj) != polytope.Behind {
				continue
			}
			sil := sj.Silhouette()
			var next []*polytope.Solid
			for _, piece := range acc {
				next = append(next, piece.Subtract(sil)...)
			}
			acc = polytope.EliminateEmptySolids(next)
			if len(acc) == 0 {
				break
			}
		}
		out = append(out, acc...)
	}
	s.solids = out
}
