// Package quantum defines the data model for spin ensembles coupled to an
// optical cavity mode.
//
// The package provides four immutable value types:
//
//   - [Spin]: point-like two-level emitter with a position and detuning
//   - [SpinCollection]: ordered spins sharing one polarization axis and decay rate
//   - [CavityMode]: truncated bosonic mode with detuning, pump and decay
//   - [CavitySpinCollection]: cavity mode coupled to a spin collection
//
// All invariants are enforced at construction: polarization axes are
// normalized to unit length, decay rates must be positive, and coupling
// strengths must match the number of spins. Constructors return an error
// instead of ever producing an invalid value, and constructed values are
// never mutated afterwards.
package quantum
