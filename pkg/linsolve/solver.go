// Package linsolve implements the equation solver described in spec.md
// §4.1 and §4.4.1: Gaussian elimination with partial pivoting over an
// n×(n+1) augmented system, classified as Unique, None, or Many solutions.
// It is the core's own component (system overview item 5), not an external
// collaborator — vertex enumeration in pkg/polytope calls it directly.
//
// Row storage is the lvlath Dense matrix that pkg/xform also wraps, so the
// augmented system and the transform matrices in pkg/xform share one
// numeric representation; the elimination loop itself follows the
// stepwise-pivot style of katalvlaran-lvlath/matrix/ops/lu.go, adapted from
// plain LU decomposition to an augmented solve with degeneracy
// classification, which that package does not provide.
package linsolve

import (
	"errors"
	"fmt"

	lvmat "github.com/katalvlaran/lvlath/matrix"

	"github.com/chazu/adsoda/pkg/geom"
)

// ErrSingularSystem names the "none or many solutions" outcome. Solve does
// not return it: it reports a singular system through Result.Status (None
// or Many) with a nil error, and returns a non-nil error only for
// malformed input.
var ErrSingularSystem = errors.New("linsolve: singular system (none or many solutions)")

// Tolerance is the pivot-singularity and back-substitution slack, shared
// with geom.Tolerance (spec.md §6).
const Tolerance = geom.Tolerance

// Status classifies the outcome of solving an n×(n+1) augmented system.
type Status int

const (
	// Unique means exactly one solution was found; Result.X holds it.
	Unique Status = iota
	// None means the system is inconsistent (no solution).
	None
	// Many means the system is under-determined (infinitely many solutions).
	Many
)

func (s Status) String() string {
	switch s {
	case Unique:
		return "unique"
	case None:
		return "none"
	case Many:
		return "many"
	default:
		return "unknown"
	}
}

// Result is the outcome of Solve.
type Result struct {
	Status Status
	X      geom.Vector // valid only when Status == Unique
}

// Solve runs Gaussian elimination with partial pivoting on the n×(n+1)
// augmented matrix formed by n rows of (a1..an, k) — the coefficients of n
// halfspace equations — against the right-hand side folded into the last
// column as -k (since each row represents a_i·x + k_i = 0, i.e.
// a_i·x = -k_i).
func Solve(rows []geom.Vector) (Result, error) {
	n := len(rows)
	for _, r := range rows {
		if len(r) != n+1 {
			return Result{}, fmt.Errorf("linsolve: row has %d coefficients, want %d for a %d-equation system", len(r), n+1, n)
		}
	}
	if n == 0 {
		return Result{Status: Unique, X: geom.Vector{}}, nil
	}

	aug, err := lvmat.NewDense(n, n+1)
	if err != nil {
		return Result{}, fmt.Errorf("linsolve: %w", err)
	}
	for i, r := range rows {
		for j := 0; j < n; j++ {
			_ = aug.Set(i, j, r[j])
		}
		_ = aug.Set(i, n, -r[n])
	}

	rank := 0
	for col := 0; col < n && rank < n; col++ {
		pivotRow := -1
		best := Tolerance
		for r := rank; r < n; r++ {
			v, _ := aug.At(r, col)
			if abs(v) > best {
				best = abs(v)
				pivotRow = r
			}
		}
		if pivotRow < 0 {
			continue // this column has no usable pivot; it is a free variable
		}
		if pivotRow != rank {
			swapRows(aug, pivotRow, rank)
		}
		pivot, _ := aug.At(rank, col)
		for r := 0; r < n; r++ {
			if r == rank {
				continue
			}
			factor, _ := aug.At(r, col)
			if factor == 0 {
				continue
			}
			factor /= pivot
			for c := col; c <= n; c++ {
				rv, _ := aug.At(r, c)
				pv, _ := aug.At(rank, c)
				_ = aug.Set(r, c, rv-factor*pv)
			}
		}
		rank++
	}

	if rank < n {
		// Every all-zero row beyond rank must also have a zero RHS, or the
		// system is inconsistent rather than under-determined.
		for r := rank; r < n; r++ {
			rhs, _ := aug.At(r, n)
			if abs(rhs) > Tolerance {
				return Result{Status: None}, nil
			}
		}
		return Result{Status: Many}, nil
	}

	x := make(geom.Vector, n)
	for i := 0; i < n; i++ {
		pivot, _ := aug.At(i, i)
		rhs, _ := aug.At(i, n)
		if abs(pivot) <= Tolerance {
			return Result{Status: None}, nil
		}
		x[i] = rhs / pivot
	}
	return Result{Status: Unique, X: x}, nil
}

func swapRows(m *lvmat.Dense, a, b int) {
	cols := m.Cols()
	for c := 0; c < cols; c++ {
		va, _ := m.At(a, c)
		vb, _ := m.At(b, c)
		_ = m.Set(a, c, vb)
		_ = m.Set(b, c, va)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
