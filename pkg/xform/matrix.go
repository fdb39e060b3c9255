// Package xform provides the dense square transform matrix that
// pkg/geom.Halfspace.Transform and the rotation animation flags in
// cmd/adsoda consume. Storage and elementwise arithmetic are delegated to
// github.com/katalvlaran/lvlath/matrix, which already solves "dense R×C of
// reals with bounds-checked At/Set and a Clone" — the one piece of linear
// algebra the teacher repo (github.com/chazu/lignin) never needed, since
// its own transforms stay inside the SDF library's fixed 3D representation.
package xform

import (
	"fmt"
	"math"

	lvmat "github.com/katalvlaran/lvlath/matrix"

	"github.com/chazu/adsoda/pkg/geom"
)

// Matrix is a dense n×n transform over ℝⁿ.
type Matrix struct {
	dense *lvmat.Dense
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	d, err := lvmat.NewIdentity(n)
	if err != nil {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("xform: identity(%d): %v", n, err)})
	}
	return Matrix{dense: d}
}

// Zero returns the n×n zero matrix.
func Zero(n int) Matrix {
	d, err := lvmat.NewZeros(n, n)
	if err != nil {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("xform: zero(%d): %v", n, err)})
	}
	return Matrix{dense: d}
}

// Scale returns an n×n diagonal scaling matrix with the given diagonal
// entries.
func Scale(diag []float64) Matrix {
	m := Zero(len(diag))
	for i, d := range diag {
		_ = m.dense.Set(i, i, d)
	}
	return m
}

// RotationPlane returns the n×n rotation of theta radians in the (i, j)
// axis-pair plane, generalizing the classic 3-axis Euler rotation to
// arbitrary dimension (needed for -rotate4D, which has no 3-axis
// equivalent): identity everywhere except the 2×2 block
//
//	[ cosθ  -sinθ ]
//	[ sinθ   cosθ ]
//
// at rows/cols (i, j).
func RotationPlane(n, i, j int, theta float64) Matrix {
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("xform: bad rotation plane (%d,%d) for dim %d", i, j, n)})
	}
	m := Identity(n)
	c, s := math.Cos(theta), math.Sin(theta)
	_ = m.dense.Set(i, i, c)
	_ = m.dense.Set(j, j, c)
	_ = m.dense.Set(i, j, -s)
	_ = m.dense.Set(j, i, s)
	return m
}

// Dim returns n for this n×n matrix.
func (m Matrix) Dim() int {
	return m.dense.Rows()
}

// At returns the element at (row, col).
func (m Matrix) At(row, col int) float64 {
	v, err := m.dense.At(row, col)
	if err != nil {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("xform: At(%d,%d): %v", row, col, err)})
	}
	return v
}

// Mul returns m × other.
func (m Matrix) Mul(other Matrix) Matrix {
	res, err := lvmat.Mul(m.dense, other.dense)
	if err != nil {
		panic(geom.InvariantViolation{Message: "xform: Mul: " + err.Error()})
	}
	d, ok := res.(*lvmat.Dense)
	if !ok {
		d = toDense(res)
	}
	return Matrix{dense: d}
}

// Negate returns the unary negation of m.
func (m Matrix) Negate() Matrix {
	res, err := lvmat.Scale(m.dense, -1)
	if err != nil {
		panic(geom.InvariantViolation{Message: "xform: Negate: " + err.Error()})
	}
	d, ok := res.(*lvmat.Dense)
	if !ok {
		d = toDense(res)
	}
	return Matrix{dense: d}
}

// MulVec applies the matrix to a vector: result_i = sum_j m[i][j] * v[j].
func (m Matrix) MulVec(v geom.Vector) geom.Vector {
	n := m.Dim()
	if len(v) != n {
		panic(geom.InvariantViolation{Message: fmt.Sprintf("xform: MulVec dimension mismatch: matrix is %d, vector is %d", n, len(v))})
	}
	out := make(geom.Vector, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}

// toDense copies an arbitrary Matrix implementation into a *Dense. Package
// lvmat's own constructors always return *Dense, so this path is only
// exercised defensively.
func toDense(src lvmat.Matrix) *lvmat.Dense {
	d, err := lvmat.NewDense(src.Rows(), src.Cols())
	if err != nil {
		panic(geom.InvariantViolation{Message: "xform: toDense: " + err.Error()})
	}
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			v, _ := src.At(i, j)
			_ = d.Set(i, j, v)
		}
	}
	return d
}
