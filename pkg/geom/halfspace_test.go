package geom

import (
	"math"
	"testing"
)

type identityMap struct{ n int }

func (m identityMap) MulVec(v Vector) Vector { return v.Clone() }
func (m identityMap) At(row, col int) float64 {
	if row == col {
		return 1
	}
	return 0
}

type zeroMap struct{ n int }

func (m zeroMap) MulVec(v Vector) Vector { return make(Vector, len(v)) }
func (m zeroMap) At(row, col int) float64 { return 0 }

func TestHalfspaceEvaluate(t *testing.T) {
	h := NewHalfspace(Vector{1, 1}, -2) // x + y - 2 >= 0
	if got := h.Evaluate(Vector{1, 1}); math.Abs(got) > Tolerance {
		t.Errorf("Evaluate(1,1) = %v, want 0", got)
	}
	if got := h.Evaluate(Vector{3, 3}); got <= 0 {
		t.Errorf("Evaluate(3,3) = %v, want > 0", got)
	}
}

func TestHalfspaceNegate(t *testing.T) {
	h := NewHalfspace(Vector{1, 0}, -1)
	n := h.Negate()
	if n.Normal()[0] != -1 || n.K() != 1 {
		t.Errorf("Negate() = %+v, want normal -1, k 1", n)
	}
}

func TestHalfspaceTranslate(t *testing.T) {
	h := NewHalfspace(Vector{1, 0}, 0) // x >= 0
	shifted := h.Translate(Vector{5, 0})
	// boundary moves to x = 5, so x - 5 >= 0
	if math.Abs(shifted.K()+5) > Tolerance {
		t.Errorf("Translate() K = %v, want -5", shifted.K())
	}
}

func TestHalfspaceTransformIdentity(t *testing.T) {
	h := NewHalfspace(Vector{1, 0}, -3)
	out, err := h.Transform(identityMap{n: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out.Evaluate(Vector{3, 0})) > Tolerance {
		t.Errorf("identity transform should preserve boundary, got %v", out.Evaluate(Vector{3, 0}))
	}
}

func TestHalfspaceTransformDegenerate(t *testing.T) {
	h := NewHalfspace(Vector{1, 0}, -3)
	_, err := h.Transform(zeroMap{n: 2})
	if err != ErrDegenerateHalfspace {
		t.Fatalf("expected ErrDegenerateHalfspace, got %v", err)
	}
}

func TestRGBClip(t *testing.T) {
	c := RGB{R: -0.5, G: 0.5, B: 1.5}.Clip()
	if c.R != 0 || c.G != 0.5 || c.B != 1 {
		t.Errorf("Clip() = %+v, want {0, 0.5, 1}", c)
	}
}

func TestLightDiffuse(t *testing.T) {
	l := Light{Direction: Vector{0, 0, -1}, Intensity: RGB{R: 1, G: 1, B: 1}}
	lit := l.Diffuse(Vector{0, 0, 1})
	if math.Abs(lit.R-1) > Tolerance {
		t.Errorf("Diffuse() facing light = %v, want 1", lit.R)
	}
	dark := l.Diffuse(Vector{0, 0, -1})
	if dark.R != 0 {
		t.Errorf("Diffuse() facing away = %v, want 0", dark.R)
	}
}
