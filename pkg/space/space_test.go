package space_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/polytope"
	"github.com/chazu/adsoda/pkg/space"
)

func buildCube(dim int, center geom.Vector, hw float64, color geom.RGB) *polytope.Solid {
	s := polytope.New(dim, color)
	for axis := 0; axis < dim; axis++ {
		pos := make(geom.Vector, dim)
		pos[axis] = -1
		s.AddFace(geom.NewHalfspace(pos, center[axis]+hw))

		neg := make(geom.Vector, dim)
		neg[axis] = 1
		s.AddFace(geom.NewHalfspace(neg, hw-center[axis]))
	}
	return s
}

func zeros(n int) geom.Vector { return make(geom.Vector, n) }

func TestAddLightNormalizesDirection(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	sp.AddLight(geom.Light{Direction: geom.Vector{0, 0, 5}, Intensity: geom.RGB{R: 1, G: 1, B: 1}})
	require.Len(t, sp.Lights(), 1)
	require.InDelta(t, 1.0, sp.Lights()[0].Direction.Magnitude(), geom.Tolerance)
}

func TestAddSolidAndClear(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	sp.AddSolid(buildCube(3, zeros(3), 1, geom.RGB{}))
	require.Len(t, sp.Solids(), 1)

	sp.Clear()
	require.Empty(t, sp.Solids())
}

func TestClearAndDelete(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	sp.AddSolid(buildCube(3, zeros(3), 1, geom.RGB{}))
	sp.ClearAndDelete()
	require.Empty(t, sp.Solids())
}

func TestSubtractAppliesToEveryOwnedSolid(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	sp.AddSolid(buildCube(3, zeros(3), 2, geom.RGB{R: 1}))
	sp.Subtract(buildCube(3, zeros(3), 1, geom.RGB{}))
	sp.EliminateEmptySolids()

	require.NotEmpty(t, sp.Solids(), "subtracting an inner cube should leave a shell of fragments")
}

func TestProjectToEmptiesAndFillsTarget(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	sp.AddLight(geom.Light{Direction: geom.Vector{0, 0, -1}, Intensity: geom.RGB{R: 1, G: 1, B: 1}})
	sp.AddSolid(buildCube(3, zeros(3), 1, geom.RGB{R: 1}))
	sp.EnsureAdjacencies()

	target := space.New(2, geom.RGB{})
	target.AddSolid(buildCube(2, zeros(2), 9, geom.RGB{})) // stale content must be cleared

	sp.ProjectTo(target)

	require.NotEmpty(t, target.Solids())
	require.Len(t, target.Solids(), 1, "one front face projects to one solid; the stale solid must be gone")
	for _, s := range target.Solids() {
		require.Equal(t, 2, s.Dim())
	}
}

func TestRemoveHiddenSolidsClipsOccludedSolid(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	occluder := buildCube(3, zeros(3), 3, geom.RGB{R: 1})
	// larger z is farther from the viewer, so this cube sits behind the occluder
	behind := buildCube(3, geom.Vector{0, 0, 8}, 1, geom.RGB{G: 1})
	sp.AddSolid(occluder)
	sp.AddSolid(behind)
	sp.EnsureAdjacencies()

	baseline := 0
	for _, s := range sp.Solids() {
		baseline += len(s.Corners())
	}
	require.Equal(t, 16, baseline, "two unclipped cubes should contribute 8 corners each")

	sp.RemoveHiddenSolids()

	totalCorners := 0
	for _, s := range sp.Solids() {
		totalCorners += len(s.Corners())
	}
	require.Less(t, totalCorners, baseline, "an occluded solid at a different depth along the view axis should still get clipped")
}

func TestRemoveHiddenSolidsLeavesDisjointPairIntact(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	a := buildCube(3, geom.Vector{-10, 0, 0}, 1, geom.RGB{})
	b := buildCube(3, geom.Vector{10, 0, 0}, 1, geom.RGB{})
	sp.AddSolid(a)
	sp.AddSolid(b)
	sp.EnsureAdjacencies()

	sp.RemoveHiddenSolids()

	require.Len(t, sp.Solids(), 2, "disjoint solids should not clip one another")
}
