package scenedsl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/scenedsl"
	"github.com/chazu/adsoda/pkg/space"
)

func TestEvalSceneCube3D(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	errs, err := scenedsl.Eval(scenedsl.SceneCube3D, sp)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, sp.Solids(), 1)
	require.Equal(t, 3, sp.Solids()[0].Dim())
}

func TestEvalSceneTwoCubes3D(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	errs, err := scenedsl.Eval(scenedsl.SceneTwoCubes3D, sp)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, sp.Solids(), 2)
}

func TestEvalSceneTesseract4D(t *testing.T) {
	sp := space.New(4, geom.RGB{})
	errs, err := scenedsl.Eval(scenedsl.SceneTesseract4D, sp)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, sp.Solids(), 1)
	require.Equal(t, 4, sp.Solids()[0].Dim())

	sp.Solids()[0].EnsureAdjacencies()
	require.Len(t, sp.Solids()[0].Corners(), 16)
}

func TestEvalEmptySourceIsANoOp(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	errs, err := scenedsl.Eval("", sp)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Empty(t, sp.Solids())
}

func TestEvalMalformedSourceReportsErrsNotErr(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	errs, err := scenedsl.Eval(`(cube "center" (0 0 0`, sp) // unbalanced parens
	require.NoError(t, err)
	require.NotEmpty(t, errs)
}

func TestEvalTranslateAndColorMutateInPlace(t *testing.T) {
	sp := space.New(3, geom.RGB{})
	src := `
(color (translate (cube "center" (0 0 0) "halfwidth" 1 "color" (0 0 0)) 5 0 0) 1 0 0)
`
	errs, err := scenedsl.Eval(src, sp)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, sp.Solids(), 1)

	s := sp.Solids()[0]
	require.Equal(t, geom.RGB{R: 1}, s.Color())
	s.EnsureAdjacencies()
	for _, c := range s.Corners() {
		require.InDelta(t, 5.0, (*c)[0], 1+geom.Tolerance)
	}
}
