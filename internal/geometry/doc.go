// Package geometry enumerates emitter positions for symmetric spatial
// arrangements.
//
// Every generator places an implicit reference emitter at the coordinate
// origin and returns the positions of all remaining emitters; the origin
// itself is never part of a returned list. Finite shapes enumerate their
// vertices relative to one vertex at the origin, lattice windows enumerate
// symmetric index ranges -n..n per axis and skip the all-zero index tuple.
//
// All lengths are in units of the transition wavelength, matching the
// convention of the dipole kernel.
package geometry
