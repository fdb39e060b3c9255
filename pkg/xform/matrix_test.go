// Package xform_test exercises Matrix's rotation/identity construction and
// the LinearMap surface pkg/geom.Halfspace.Transform depends on.
package xform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/xform"
)

func TestIdentityPreservesVector(t *testing.T) {
	m := xform.Identity(3)
	v := geom.Vector{1, 2, 3}
	got := m.MulVec(v)
	for i := range v {
		require.InDelta(t, v[i], got[i], geom.Tolerance)
	}
}

func TestRotationPlaneQuarterTurn(t *testing.T) {
	m := xform.RotationPlane(2, 0, 1, math.Pi/2)
	got := m.MulVec(geom.Vector{1, 0})
	require.InDelta(t, 0.0, got[0], 1e-9)
	require.InDelta(t, 1.0, got[1], 1e-9)
}

func TestRotationPlaneInvalidAxesPanics(t *testing.T) {
	require.Panics(t, func() {
		xform.RotationPlane(3, 1, 1, 0.5)
	})
}

func TestMulComposesRotations(t *testing.T) {
	half := xform.RotationPlane(2, 0, 1, math.Pi/4)
	composed := half.Mul(half)
	full := xform.RotationPlane(2, 0, 1, math.Pi/2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, full.At(i, j), composed.At(i, j), 1e-9)
		}
	}
}

func TestNegate(t *testing.T) {
	m := xform.Identity(2)
	n := m.Negate()
	require.Equal(t, -1.0, n.At(0, 0))
	require.Equal(t, -1.0, n.At(1, 1))
}
