package geom

import "errors"

// ErrDegenerateHalfspace is returned by Transform when every coefficient of
// the normal, or of the transformed normal, is zero (spec.md §7).
var ErrDegenerateHalfspace = errors.New("geom: degenerate halfspace")

// Halfspace is an (n+1)-coefficient equation a·x + k >= 0. The first n
// coefficients double as the outward normal; the last is the constant k.
// A Hyperplane is the same representation read as a boundary rather than a
// constraint — there is no separate type, only a different reading.
type Halfspace struct {
	coeffs Vector // len == n+1: [a1..an, k]
}

// NewHalfspace builds a Halfspace from n normal coefficients and a constant.
func NewHalfspace(normal Vector, k float64) Halfspace {
	c := make(Vector, len(normal)+1)
	copy(c, normal)
	c[len(normal)] = k
	return Halfspace{coeffs: c}
}

// FromCoeffs wraps a raw (n+1)-length coefficient vector directly.
func FromCoeffs(c Vector) Halfspace {
	return Halfspace{coeffs: c.Clone()}
}

// Dim returns n, the dimension of the space this halfspace bounds.
func (h Halfspace) Dim() int {
	return len(h.coeffs) - 1
}

// Normal returns the first n coefficients (read-only view).
func (h Halfspace) Normal() Vector {
	return h.coeffs[:h.Dim()]
}

// K returns the constant term.
func (h Halfspace) K() float64 {
	return h.coeffs[h.Dim()]
}

// Coeffs returns the full (n+1)-length coefficient vector, normal then k.
func (h Halfspace) Coeffs() Vector {
	return h.coeffs
}

// Evaluate computes a·x + k for a point x of dimension n.
func (h Halfspace) Evaluate(x Vector) float64 {
	sum := h.K()
	normal := h.Normal()
	for i, a := range normal {
		sum += a * x[i]
	}
	return sum
}

// Negate returns a new halfspace with all n+1 coefficients flipped. The
// boundary hyperplane is preserved; inside and outside swap.
func (h Halfspace) Negate() Halfspace {
	return Halfspace{coeffs: h.coeffs.Neg()}
}

// Translate returns a new halfspace whose boundary is parallel-transported
// by offset: the normal is unchanged, the constant becomes k - a·offset.
func (h Halfspace) Translate(offset Vector) Halfspace {
	newK := h.K() - h.Normal().Dot(offset)
	return NewHalfspace(h.Normal(), newK)
}

// LinearMap is the minimal interface Transform needs from a transform
// matrix: apply it to a vector and read back individual entries.
// pkg/xform.Matrix satisfies this.
type LinearMap interface {
	MulVec(v Vector) Vector
	At(row, col int) float64
}

// Transform applies a linear map M (assumed invertible) to the halfspace,
// per spec.md §4.2:
//  1. find an axis i with a_i != 0 and compute its intercept point p
//     (p_i = -k/a_i, other coordinates 0);
//  2. compute the transformed normal n' = M·a;
//  3. compute the transformed point p' = M·p (exploiting sparsity);
//  4. the new constant is k' = -n'·p'.
//
// Axes with a_i == 0 are skipped when choosing the intercept point.
// ErrDegenerateHalfspace is returned when every a_i is zero, or when the
// transformed normal M·a is the zero vector.
func (h Halfspace) Transform(m LinearMap) (Halfspace, error) {
	n := h.Dim()
	normal := h.Normal()
	k := h.K()

	newNormal := m.MulVec(append(Vector{}, normal...))
	allZero := true
	for _, c := range newNormal {
		if c != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return Halfspace{}, ErrDegenerateHalfspace
	}

	for i := 0; i < n; i++ {
		if normal[i] == 0 {
			continue
		}
		pi := -k / normal[i]
		// p' = M * p, exploiting that p has a single nonzero coordinate:
		// p'_j = M[j][i] * p_i.
		pPrime := make(Vector, n)
		for j := 0; j < n; j++ {
			pPrime[j] = m.At(j, i) * pi
		}
		newK := -newNormal.Dot(pPrime)
		return NewHalfspace(newNormal, newK), nil
	}
	return Halfspace{}, ErrDegenerateHalfspace
}

// RGB is a color with channels nominally in [0, 1]; Clip enforces that.
type RGB struct {
	R, G, B float64
}

// Add returns the componentwise sum.
func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale returns c with each channel multiplied by s.
func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Mul returns the componentwise (Hadamard) product.
func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Clip clamps each channel to [0, 1].
func (c RGB) Clip() RGB {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return RGB{clamp(c.R), clamp(c.G), clamp(c.B)}
}

// Light is a direction treated as a point at infinity, plus an RGB
// intensity. Space.AddLight normalizes Direction before storing it.
type Light struct {
	Direction Vector
	Intensity RGB
}

// Diffuse computes this light's contribution to an outward face normal n̂
// (already normalized): max(0, -d·n̂) * intensity, per spec.md §4.4.2.
func (l Light) Diffuse(faceNormal Vector) RGB {
	s := -l.Direction.Dot(faceNormal)
	if s < 0 {
		s = 0
	}
	return l.Intensity.Scale(s)
}
