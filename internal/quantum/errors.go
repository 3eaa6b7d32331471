package quantum

import "errors"

// Validation errors returned by the constructors in this package.
var (
	// ErrZeroPolarization indicates a polarization vector that cannot be normalized.
	ErrZeroPolarization = errors.New("quantum: polarization vector has zero norm")

	// ErrNonpositiveGamma indicates a decay rate outside (0, inf).
	ErrNonpositiveGamma = errors.New("quantum: decay rate must be positive")

	// ErrInvalidCutoff indicates a Fock-space cutoff below one.
	ErrInvalidCutoff = errors.New("quantum: cavity cutoff must be at least 1")

	// ErrDimensionMismatch indicates coupling strengths that do not match the spin count.
	ErrDimensionMismatch = errors.New("quantum: coupling strengths do not match number of spins")
)
