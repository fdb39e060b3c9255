package scenedsl

import (
	"fmt"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/polytope"
	"github.com/chazu/adsoda/pkg/space"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpSolidRef wraps a *polytope.Solid so it can be passed around and
// returned from zygomys builtins as an opaque value.
type sexpSolidRef struct {
	solid *polytope.Solid
}

func (r *sexpSolidRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("#<solid dim=%d>", r.solid.Dim())
}
func (r *sexpSolidRef) Type() *zygo.RegisteredType { return nil }

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return float64(v.Val), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", s)
	}
}

func toFloatList(s zygo.Sexp) ([]float64, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, it := range items {
		f, err := toFloat64(it)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	default:
		return nil, fmt.Errorf("expected a list, got %T", s)
	}
}

func toSolidRef(s zygo.Sexp) (*polytope.Solid, error) {
	ref, ok := s.(*sexpSolidRef)
	if !ok {
		return nil, fmt.Errorf("expected a solid, got %T", s)
	}
	return ref.solid, nil
}

// kwArgs separates keyword-tagged arguments (as preprocessed by the
// engine this DSL is descended from: ":foo" becomes a leading string
// argument followed by its value) from positional ones.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		if str, ok := args[i].(*zygo.SexpStr); ok && i+1 < len(args) {
			result.kw[str.S] = args[i+1]
			i += 2
			continue
		}
		result.positional = append(result.positional, args[i])
		i++
	}
	return result
}

// registerBuiltins installs the scene-construction vocabulary into env,
// closing over target so every builtin mutates the same space.
func registerBuiltins(env *zygo.Zlisp, target *space.Space) {
	dim := target.Dim()

	// (cube "center" (0 0 0) "halfwidth" 1 "color" (1 0 0)) builds an
	// axis-aligned box of the space's dimension, centered at "center"
	// (default origin) with half-extent "halfwidth" (default 1) in every
	// axis, appends it to the target space, and returns a reference to it.
	makeBox := func(name string, env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		center := make([]float64, dim)
		if v, ok := pa.kw["center"]; ok {
			c, err := toFloatList(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: center: %w", name, err)
			}
			if len(c) != dim {
				return zygo.SexpNull, fmt.Errorf("%s: center has %d components, space is %d-dimensional", name, len(c), dim)
			}
			center = c
		}

		halfwidth := 1.0
		if v, ok := pa.kw["halfwidth"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: halfwidth: %w", name, err)
			}
			halfwidth = f
		}

		col := geom.RGB{R: 1, G: 1, B: 1}
		if v, ok := pa.kw["color"]; ok {
			c, err := toFloatList(v)
			if err != nil || len(c) != 3 {
				return zygo.SexpNull, fmt.Errorf("%s: color must be a list of 3 numbers", name)
			}
			col = geom.RGB{R: c[0], G: c[1], B: c[2]}
		}

		solid := polytope.New(dim, col)
		for axis := 0; axis < dim; axis++ {
			posNormal := make(geom.Vector, dim)
			posNormal[axis] = -1
			solid.AddFace(geom.NewHalfspace(posNormal, center[axis]+halfwidth))

			negNormal := make(geom.Vector, dim)
			negNormal[axis] = 1
			solid.AddFace(geom.NewHalfspace(negNormal, halfwidth-center[axis]))
		}

		target.AddSolid(solid)
		return &sexpSolidRef{solid: solid}, nil
	}

	env.AddFunction("cube", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return makeBox(name, env, name, args)
	})

	// (tesseract ...) is a cube builtin that additionally requires the
	// target space to be 4-dimensional, matching how the original DSL this
	// engine is descended from named shapes by their conventional
	// dimension rather than a generic primitive.
	env.AddFunction("tesseract", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if dim != 4 {
			return zygo.SexpNull, fmt.Errorf("tesseract: requires a 4-dimensional space, got dim=%d", dim)
		}
		return makeBox(name, env, name, args)
	})

	// (translate solid dx dy ...) shifts solid's boundary by the given
	// per-axis offsets and returns the same reference.
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("translate: requires a solid argument")
		}
		solid, err := toSolidRef(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		offset := make(geom.Vector, dim)
		for i, a := range args[1:] {
			if i >= dim {
				break
			}
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("translate: offset %d: %w", i, err)
			}
			offset[i] = f
		}
		solid.Translate(offset)
		return args[0], nil
	})

	// (color solid r g b) replaces solid's color.
	env.AddFunction("color", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("color: requires a solid and 3 components")
		}
		solid, err := toSolidRef(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("color: %w", err)
		}
		r, err1 := toFloat64(args[1])
		g, err2 := toFloat64(args[2])
		b, err3 := toFloat64(args[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return zygo.SexpNull, fmt.Errorf("color: components must be numbers")
		}
		solid.SetColor(geom.RGB{R: r, G: g, B: b})
		return args[0], nil
	})
}
