package quantum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Spin is a point-like two-level emitter at a fixed position with a frequency
// detuning relative to the common transition frequency.
type Spin struct {
	Position r3.Vec
	Delta    float64
}

// NewSpin returns a spin at pos with detuning delta.
func NewSpin(pos r3.Vec, delta float64) Spin {
	return Spin{Position: pos, Delta: delta}
}

// SpinCollection is an ordered set of spins sharing one polarization axis and
// one single-spin decay rate. The slice order only matters for reproducible
// summation, not for the physics.
type SpinCollection struct {
	Spins        []Spin
	Polarization r3.Vec
	Gamma        float64
}

// NewSpinCollection builds a collection from explicit spins. The polarization
// vector is normalized to unit length; a zero vector or a non-positive gamma
// is rejected. The spins slice is copied, so the collection owns its spins.
func NewSpinCollection(spins []Spin, polarization r3.Vec, gamma float64) (SpinCollection, error) {
	norm := r3.Norm(polarization)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return SpinCollection{}, ErrZeroPolarization
	}
	if gamma <= 0 {
		return SpinCollection{}, fmt.Errorf("%w: got %v", ErrNonpositiveGamma, gamma)
	}

	owned := make([]Spin, len(spins))
	copy(owned, spins)

	return SpinCollection{
		Spins:        owned,
		Polarization: r3.Scale(1/norm, polarization),
		Gamma:        gamma,
	}, nil
}

// NewSpinCollectionFromPositions builds a collection from raw positions,
// giving every spin the same detuning delta.
func NewSpinCollectionFromPositions(positions []r3.Vec, polarization r3.Vec, delta, gamma float64) (SpinCollection, error) {
	spins := make([]Spin, len(positions))
	for i, p := range positions {
		spins[i] = NewSpin(p, delta)
	}
	return NewSpinCollection(spins, polarization, gamma)
}
