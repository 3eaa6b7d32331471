package quantum

import "fmt"

// CavityMode is a bosonic cavity mode truncated at a maximum Fock-state
// index. The cutoff only matters for downstream Hilbert-space construction;
// the effective-interaction computation never reads it.
type CavityMode struct {
	Cutoff int
	Delta  float64
	Eta    float64
	Kappa  float64
}

// NewCavityMode returns a cavity mode with the given Fock cutoff, detuning
// delta, pump strength eta and decay rate kappa. The cutoff must be at
// least 1.
func NewCavityMode(cutoff int, delta, eta, kappa float64) (CavityMode, error) {
	if cutoff < 1 {
		return CavityMode{}, fmt.Errorf("%w: got %d", ErrInvalidCutoff, cutoff)
	}
	return CavityMode{Cutoff: cutoff, Delta: delta, Eta: eta, Kappa: kappa}, nil
}

// CavitySpinCollection couples a cavity mode to a spin collection with one
// coupling strength per spin.
type CavitySpinCollection struct {
	Cavity CavityMode
	Spins  SpinCollection
	G      []float64
}

// NewCavitySpinCollection builds the coupled system. The number of coupling
// strengths must equal the number of spins; the g slice is copied.
func NewCavitySpinCollection(cavity CavityMode, spins SpinCollection, g []float64) (CavitySpinCollection, error) {
	if len(g) != len(spins.Spins) {
		return CavitySpinCollection{}, fmt.Errorf("%w: %d couplings for %d spins",
			ErrDimensionMismatch, len(g), len(spins.Spins))
	}

	owned := make([]float64, len(g))
	copy(owned, g)

	return CavitySpinCollection{Cavity: cavity, Spins: spins, G: owned}, nil
}

// NewCavitySpinCollectionUniform broadcasts a single coupling strength to
// every spin in the collection.
func NewCavitySpinCollectionUniform(cavity CavityMode, spins SpinCollection, g float64) (CavitySpinCollection, error) {
	gs := make([]float64, len(spins.Spins))
	for i := range gs {
		gs[i] = g
	}
	return NewCavitySpinCollection(cavity, spins, gs)
}
