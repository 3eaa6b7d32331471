package experiment

import (
	"testing"
)

func TestSweepSeries(t *testing.T) {
	r := NewRegistry()
	shape, err := r.Get("chain-orthogonal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points, err := Sweep(shape, Params{A: 0.5}, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 8 {
		t.Fatalf("expected 8 points, got %d", len(points))
	}
	for i, p := range points {
		if p.N != i+1 {
			t.Errorf("point %d: truncation %d, want %d", i, p.N, i+1)
		}
	}
	if points[0].DeltaOmega != 0 || points[0].DeltaGamma != 0 {
		t.Errorf("first point should have zero deltas, got %+v", points[0])
	}
	if points[1].DeltaOmega == 0 && points[1].DeltaGamma == 0 {
		t.Error("second point should record a change")
	}
}

func TestSweepRejectsFiniteShape(t *testing.T) {
	r := NewRegistry()
	shape, err := r.Get("cube")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Sweep(shape, Params{A: 0.5}, 5); err == nil {
		t.Error("expected error for finite shape")
	}
}

func TestSweepRejectsBadRange(t *testing.T) {
	r := NewRegistry()
	shape, err := r.Get("chain-orthogonal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Sweep(shape, Params{A: 0.5}, 0); err == nil {
		t.Error("expected error for empty sweep range")
	}
}

func TestConverged(t *testing.T) {
	points := []SweepPoint{
		{N: 1, Omega: 1, Gamma: 1},
		{N: 2, Omega: 1.05, Gamma: 1.01, DeltaOmega: 0.05, DeltaGamma: 0.01},
	}

	if Converged(points, 0.02) {
		t.Error("should not be converged at tol 0.02")
	}
	if !Converged(points, 0.1) {
		t.Error("should be converged at tol 0.1")
	}
	if Converged(points[:1], 1) {
		t.Error("single point can never be converged")
	}
}
