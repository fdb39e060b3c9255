package polytope

import (
	"math"
	"sort"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/sink"
)

// coordScale is applied to every emitted coordinate (spec.md §4.4.6), a
// cosmetic convention inherited from the original scene units.
func emit(out sink.Sink, v geom.Vector) {
	x, y, z := 0.0, 0.0, 0.0
	if len(v) > 0 {
		x = v[0] * coordScale
	}
	if len(v) > 1 {
		y = v[1] * coordScale
	}
	if len(v) > 2 {
		z = v[2] * coordScale
	}
	out.Vertex(x, y, z)
}

// Render1D emits a line segment between a 1D solid's two endpoints, per
// spec.md §4.4.6. Each 1D face is already a single point, so the two
// endpoints are read directly from the faces' intercepts rather than from
// the corner list.
func (s *Solid) Render1D(out sink.Sink) {
	if s.dim != 1 {
		panic(geom.InvariantViolation{Message: "polytope: Render1D requires dim == 1"})
	}
	if len(s.faces) != 2 {
		panic(geom.InvariantViolation{Message: "polytope: Render1D requires exactly two faces"})
	}
	c := s.color
	out.SetColor(c.R, c.G, c.B)
	out.BeginLineLoop()
	for _, f := range s.faces {
		p := endpoint1D(f.Halfspace)
		emit(out, p)
	}
	out.EndLineLoop()
}

// endpoint1D recovers the single point satisfied by a 1D halfspace's
// boundary equation a*x + k = 0.
func endpoint1D(h geom.Halfspace) geom.Vector {
	a := h.Normal()[0]
	k := h.K()
	if a == 0 {
		panic(geom.InvariantViolation{Message: "polytope: degenerate 1D halfspace"})
	}
	return geom.Vector{-k / a}
}

// Render2D emits the closed polygon boundary of a 2D solid, per spec.md
// §4.4.6: corners sorted by descending y, split into left/right chains
// around the top/bottom extremes by a left-of-ray test, then emitted
// top -> left chain -> bottom -> reverse(right chain).
func (s *Solid) Render2D(out sink.Sink) {
	if !s.adjacenciesValid {
		panic(geom.InvariantViolation{Message: "polytope: Render2D requires adjacencies_valid"})
	}
	if s.dim != 2 {
		panic(geom.InvariantViolation{Message: "polytope: Render2D requires dim == 2"})
	}
	if len(s.corners) == 0 {
		return
	}

	ordered := orderedPolygon2D(s.corners)

	c := s.color
	out.SetColor(c.R, c.G, c.B)
	out.BeginPolygon()
	for _, p := range ordered {
		emit(out, *p)
	}
	out.EndPolygon()

	out.SetColor(c.R, c.G, c.B)
	out.BeginLineLoop()
	for _, p := range ordered {
		emit(out, *p)
	}
	out.EndLineLoop()
}

func orderedPolygon2D(corners []*geom.Vector) []*geom.Vector {
	sorted := make([]*geom.Vector, len(corners))
	copy(sorted, corners)
	sort.SliceStable(sorted, func(i, j int) bool {
		return (*sorted[i])[1] > (*sorted[j])[1]
	})
	top := sorted[0]
	bottom := sorted[len(sorted)-1]

	bottomToTop := (*top).Sub(*bottom)
	var left, right []*geom.Vector
	for _, p := range sorted[1 : len(sorted)-1] {
		bottomToP := (*p).Sub(*bottom)
		cross := bottomToTop[0]*bottomToP[1] - bottomToTop[1]*bottomToP[0]
		if cross > 0 {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	out := make([]*geom.Vector, 0, len(sorted))
	out = append(out, top)
	out = append(out, left...)
	out = append(out, bottom)
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return out
}

// Render3D emits each face of a 3D solid as a polygon and line loop, per
// spec.md §4.4.6: vertices within a face are ordered by signed angle from
// a reference edge p1->p2 (the face's first two touching corners), sorted
// descending by that angle, and lit exactly as in projection.
func (s *Solid) Render3D(lights []geom.Light, ambient geom.RGB, out sink.Sink) {
	if !s.adjacenciesValid {
		panic(geom.InvariantViolation{Message: "polytope: Render3D requires adjacencies_valid"})
	}
	if s.dim != 3 {
		panic(geom.InvariantViolation{Message: "polytope: Render3D requires dim == 3"})
	}
	for _, f := range s.faces {
		ordered := orderedFaceVertices3D(f)
		if len(ordered) == 0 {
			continue
		}
		c := s.color.Mul(litColor(f.Normal().Normalized(), lights, ambient))
		out.SetColor(c.R, c.G, c.B)
		out.BeginPolygon()
		for _, p := range ordered {
			emit(out, *p)
		}
		out.EndPolygon()

		out.SetColor(c.R, c.G, c.B)
		out.BeginLineLoop()
		for _, p := range ordered {
			emit(out, *p)
		}
		out.EndLineLoop()
	}
}

func orderedFaceVertices3D(f *Face) []*geom.Vector {
	pts := f.touchingCorners
	if len(pts) < 3 {
		return pts
	}
	p1, p2 := *pts[0], *pts[1]
	edge := p2.Sub(p1)
	normal := f.Normal().Normalized()

	type angled struct {
		p     *geom.Vector
		theta float64
	}
	rest := make([]angled, 0, len(pts)-2)
	for _, p := range pts[2:] {
		v := (*p).Sub(p1)
		cross := edge.Cross3D(v)
		mag := cross.Magnitude()
		dot := edge.Dot(v)
		theta := math.Atan2(mag, dot)
		if cross.Dot(normal) < 0 {
			theta = -theta
		}
		rest = append(rest, angled{p: p, theta: theta})
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].theta > rest[j].theta })

	out := make([]*geom.Vector, 0, len(pts))
	out = append(out, pts[0], pts[1])
	for _, a := range rest {
		out = append(out, a.p)
	}
	return out
}
