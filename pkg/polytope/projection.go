package polytope

import "github.com/chazu/adsoda/pkg/geom"

// Project implements axis-aligned projection of s along its last axis
// (xₙ) down to dimension n-1, per spec.md §4.4.2. Every front-facing face
// (outward normal's last component > 0) contributes one (n-1)-dimensional
// solid; backfaces (last component <= 0) are culled entirely. lights and
// ambient are the owning Space's lighting environment, used to pre-light
// each projected solid's color (subsequent lower-dimensional renders reuse
// that color verbatim, per spec.md §4.4.6).
func (s *Solid) Project(lights []geom.Light, ambient geom.RGB) []*Solid {
	s.EnsureAdjacencies()
	n := s.dim
	if n < 2 {
		panic(geom.InvariantViolation{Message: "polytope: Project requires dim >= 2"})
	}

	var out []*Solid
	for _, f := range s.faces {
		a := f.Normal()
		k := f.K()
		if a[n-1] <= 0 {
			continue // backface, culled
		}

		proj := New(n-1, geom.RGB{})
		for _, g := range f.adjacentFaces {
			h := projectedBoundary(a, k, g.Normal(), g.K(), n)
			c := vertexOnNotOn(f, g)
			cProj := c[:n-1]
			if !cProj.InsideHalfspace(h) {
				h = h.Negate()
			}
			proj.AddFace(h)
		}
		proj.EnsureAdjacencies()
		proj.SetColor(s.color.Mul(litColor(a.Normalized(), lights, ambient)))
		out = append(out, proj)
	}
	return out
}

// projectedBoundary computes the (n-1)-dimensional boundary equation for
// an adjacent face pair (a,k)=F, (b,j)=G, per spec.md §4.4.2:
//
//	(b_n*a_i - a_n*b_i) x_i + (b_n*k - a_n*j) >= 0,  i = 1..n-1
func projectedBoundary(a geom.Vector, k float64, b geom.Vector, j float64, n int) geom.Halfspace {
	coeffs := make(geom.Vector, n)
	for i := 0; i < n-1; i++ {
		coeffs[i] = b[n-1]*a[i] - a[n-1]*b[i]
	}
	coeffs[n-1] = b[n-1]*k - a[n-1]*j
	return geom.FromCoeffs(coeffs)
}

// vertexOnNotOn returns a vertex of the owning solid that lies on f but
// not on g, by pointer identity (set difference). Exactly one must exist
// for any genuinely adjacent pair in a valid polytope.
func vertexOnNotOn(f, g *Face) geom.Vector {
	onG := make(map[*geom.Vector]bool, len(g.touchingCorners))
	for _, c := range g.touchingCorners {
		onG[c] = true
	}
	for _, c := range f.touchingCorners {
		if !onG[c] {
			return *c
		}
	}
	panic(geom.InvariantViolation{Message: "polytope: no vertex on F but not on adjacent G"})
}

// litColor computes ambient + sum of per-light diffuse contributions for a
// unit-normalized face normal, clipped to [0,1] per channel (spec.md
// §4.4.2).
func litColor(faceNormal geom.Vector, lights []geom.Light, ambient geom.RGB) geom.RGB {
	rgb := ambient
	for _, l := range lights {
		rgb = rgb.Add(l.Diffuse(faceNormal))
	}
	return rgb.Clip()
}
