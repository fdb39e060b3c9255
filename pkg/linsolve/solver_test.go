package linsolve

import (
	"math"
	"testing"

	"github.com/chazu/adsoda/pkg/geom"
)

func TestSolveUnique(t *testing.T) {
	// x + y + k = 0, with k = -2 (x+y=2); x - y + k = 0, with k = 0 (x=y)
	rows := []geom.Vector{
		{1, 1, -2},
		{1, -1, 0},
	}
	res, err := Solve(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != Unique {
		t.Fatalf("Status = %v, want Unique", res.Status)
	}
	want := geom.Vector{1, 1}
	for i := range want {
		if math.Abs(res.X[i]-want[i]) > Tolerance {
			t.Errorf("X[%d] = %v, want %v", i, res.X[i], want[i])
		}
	}
}

func TestSolveNone(t *testing.T) {
	rows := []geom.Vector{
		{1, 0, -1}, // x = 1
		{1, 0, -2}, // x = 2, contradictory
	}
	res, err := Solve(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != None {
		t.Fatalf("Status = %v, want None", res.Status)
	}
}

func TestSolveMany(t *testing.T) {
	rows := []geom.Vector{
		{1, 1, -2},
		{2, 2, -4}, // same equation scaled
	}
	res, err := Solve(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != Many {
		t.Fatalf("Status = %v, want Many", res.Status)
	}
}

func TestSolveRowWidthMismatch(t *testing.T) {
	rows := []geom.Vector{
		{1, 1, -2},
		{1, -1}, // wrong width for a 2-equation system
	}
	if _, err := Solve(rows); err == nil {
		t.Fatal("expected error for malformed row widths")
	}
}

func TestSolveEmptySystem(t *testing.T) {
	res, err := Solve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != Unique || len(res.X) != 0 {
		t.Fatalf("Solve(nil) = %+v, want Unique with empty X", res)
	}
}
