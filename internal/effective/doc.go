// Package effective computes collective frequency shifts and decay rates of
// symmetric emitter arrangements.
//
// The collective parameters of an arrangement are obtained by summing the
// pairwise dipole-dipole kernel between a reference emitter at the origin
// and every emitter of a [quantum.SpinCollection]:
//
//	c, _ := quantum.NewSpinCollectionFromPositions(positions, ez, 0, 1)
//	omega, gamma := effective.Interactions(c)
//
// The shape functions build standard arrangements (polygons, cuboids,
// chains, lattice windows) from package geometry and evaluate them in one
// call. None of the arrangements contain the origin, which always stands for
// the implicit reference emitter.
package effective
