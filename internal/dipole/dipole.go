// Package dipole implements the pairwise dipole-dipole interaction kernel
// between two-level emitters.
//
// All lengths are measured in units of the transition wavelength, so the
// wavenumber is fixed at K0 = 2*pi, and all rates are measured in units of
// the reference single-emitter decay rate gamma. The kernel combines the
// near-field (1/r^3, 1/r^2) and far-field (1/r) parts of the radiated field
// of an oscillating dipole.
package dipole

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// K0 is the transition wavenumber in wavelength units.
const K0 = 2 * math.Pi

// F is the angular envelope of the collective decay kernel, evaluated at
// dimensionless separation xi = K0*a and direction cosine cosTheta between
// the separation vector and the polarization axis.
func F(xi, cosTheta float64) float64 {
	c2 := cosTheta * cosTheta
	return (1-c2)*math.Sin(xi)/xi +
		(1-3*c2)*(math.Cos(xi)/(xi*xi)-math.Sin(xi)/(xi*xi*xi))
}

// G is the angular envelope of the coherent frequency-shift kernel.
func G(xi, cosTheta float64) float64 {
	c2 := cosTheta * cosTheta
	return -(1-c2)*math.Cos(xi)/xi +
		(1-3*c2)*(math.Sin(xi)/(xi*xi)+math.Cos(xi)/(xi*xi*xi))
}

// Omega returns the coherent frequency shift between two emitters a apart,
// with cosTheta the direction cosine against the shared polarization axis.
func Omega(a, cosTheta, gamma float64) float64 {
	return 0.75 * gamma * G(K0*a, cosTheta)
}

// Gamma returns the collective decay rate between two emitters a apart.
func Gamma(a, cosTheta, gamma float64) float64 {
	return 1.5 * gamma * F(K0*a, cosTheta)
}

// OmegaBetween evaluates Omega for two positions and a unit polarization
// axis. The result is symmetric in x1 and x2 and diverges for coincident
// positions.
func OmegaBetween(x1, x2, polarization r3.Vec, gamma float64) float64 {
	a, cosTheta := separation(x1, x2, polarization)
	return Omega(a, cosTheta, gamma)
}

// GammaBetween evaluates Gamma for two positions and a unit polarization
// axis. Like OmegaBetween it is symmetric and singular at zero separation.
func GammaBetween(x1, x2, polarization r3.Vec, gamma float64) float64 {
	a, cosTheta := separation(x1, x2, polarization)
	return Gamma(a, cosTheta, gamma)
}

func separation(x1, x2, polarization r3.Vec) (a, cosTheta float64) {
	d := r3.Sub(x2, x1)
	a = r3.Norm(d)
	cosTheta = r3.Dot(d, polarization) / a
	return a, cosTheta
}
