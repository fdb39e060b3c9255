package polytope

import "github.com/chazu/adsoda/pkg/geom"

// Silhouette returns the cached silhouette of s under xₙ-axis projection,
// computing it on first use (spec.md §4.4.3). The silhouette is an
// n-dimensional prism extruded along xₙ: for every adjacent pair (F,G)
// where F is a backface and G is a front-face, the usual projected
// boundary equation is formed but kept n-dimensional by zeroing the xₙ
// coefficient, making it extrusion-invariant.
func (s *Solid) Silhouette() *Solid {
	s.EnsureAdjacencies()
	if s.silhouette != nil {
		return s.silhouette
	}

	n := s.dim
	sil := New(n, s.color)
	for _, f := range s.faces {
		a := f.Normal()
		k := f.K()
		if a[n-1] > 0 {
			continue // F must be a backface
		}
		for _, g := range f.adjacentFaces {
			b := g.Normal()
			if b[n-1] <= 0 {
				continue // G must be a front-face
			}
			j := g.K()

			coeffs := make(geom.Vector, n+1)
			for i := 0; i < n-1; i++ {
				coeffs[i] = b[n-1]*a[i] - a[n-1]*b[i]
			}
			coeffs[n-1] = 0
			coeffs[n] = b[n-1]*k - a[n-1]*j
			h := geom.FromCoeffs(coeffs)

			c := vertexOnNotOn(f, g)
			if !c.InsideOrOnHalfspace(h) {
				h = h.Negate()
			}
			sil.AddFace(h)
		}
	}
	// The prism is unbounded along xₙ and so has no corners; its adjacencies
	// are left uncomputed, since the redundant-face pass would drop every face.
	s.silhouette = sil
	return sil
}
