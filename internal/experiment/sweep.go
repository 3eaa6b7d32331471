package experiment

import (
	"fmt"
	"math"
)

// SweepPoint is one truncation step of a convergence sweep.
type SweepPoint struct {
	N          int
	Omega      float64
	Gamma      float64
	DeltaOmega float64 // absolute change from the previous truncation
	DeltaGamma float64
}

// Sweep evaluates an infinite-lattice shape for every truncation window from
// 1 to maxN and records how the collective parameters converge. Finite
// shapes are rejected since their result does not depend on a truncation.
func Sweep(shape Shape, p Params, maxN int) ([]SweepPoint, error) {
	if !shape.Infinite {
		return nil, fmt.Errorf("shape %s is finite and has no truncation to sweep", shape.Name)
	}
	if maxN < 1 {
		return nil, fmt.Errorf("sweep needs at least one truncation step, got %d", maxN)
	}

	points := make([]SweepPoint, 0, maxN)
	for n := 1; n <= maxN; n++ {
		p.N = n
		omega, gamma, err := shape.Compute(p)
		if err != nil {
			return nil, fmt.Errorf("truncation %d: %w", n, err)
		}

		point := SweepPoint{N: n, Omega: omega, Gamma: gamma}
		if len(points) > 0 {
			prev := points[len(points)-1]
			point.DeltaOmega = math.Abs(omega - prev.Omega)
			point.DeltaGamma = math.Abs(gamma - prev.Gamma)
		}
		points = append(points, point)
	}
	return points, nil
}

// Converged reports whether the final sweep step changed both parameters by
// less than tol.
func Converged(points []SweepPoint, tol float64) bool {
	if len(points) < 2 {
		return false
	}
	last := points[len(points)-1]
	return last.DeltaOmega < tol && last.DeltaGamma < tol
}
