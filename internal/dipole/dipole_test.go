package dipole

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestKernelSymmetry(t *testing.T) {
	x1 := r3.Vec{X: 0.3, Y: -0.2, Z: 0.7}
	x2 := r3.Vec{X: -0.1, Y: 0.5, Z: 0.2}
	e := r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})

	if o12, o21 := OmegaBetween(x1, x2, e, 1), OmegaBetween(x2, x1, e, 1); o12 != o21 {
		t.Errorf("Omega not reciprocal: %v vs %v", o12, o21)
	}
	if g12, g21 := GammaBetween(x1, x2, e, 1), GammaBetween(x2, x1, e, 1); g12 != g21 {
		t.Errorf("Gamma not reciprocal: %v vs %v", g12, g21)
	}
}

// At half a wavelength perpendicular to the polarization axis the kernels
// have closed forms: Gamma = -3/(2*pi^2), Omega = 3/4*(1/pi - 1/pi^3).
func TestKernelHalfWavelength(t *testing.T) {
	x2 := r3.Vec{X: 0.5}
	ez := r3.Vec{Z: 1}

	gamma := GammaBetween(r3.Vec{}, x2, ez, 1)
	wantGamma := -1.5 / (math.Pi * math.Pi)
	if math.Abs(gamma-wantGamma) > 1e-14 {
		t.Errorf("Gamma = %v, want %v", gamma, wantGamma)
	}

	omega := OmegaBetween(r3.Vec{}, x2, ez, 1)
	wantOmega := 0.75 * (1/math.Pi - 1/(math.Pi*math.Pi*math.Pi))
	if math.Abs(omega-wantOmega) > 1e-14 {
		t.Errorf("Omega = %v, want %v", omega, wantOmega)
	}
}

// The collective decay of two coincident emitters equals the single-emitter
// rate; approach it from small separations for any direction cosine.
func TestGammaShortDistanceLimit(t *testing.T) {
	for _, cosTheta := range []float64{0, 0.5, 1} {
		got := Gamma(1e-5, cosTheta, 1)
		if math.Abs(got-1) > 1e-4 {
			t.Errorf("cosTheta=%v: Gamma(a->0) = %v, want 1", cosTheta, got)
		}
	}
}

func TestKernelScalesWithGamma(t *testing.T) {
	const a, cosTheta = 0.37, 0.4
	if got, want := Omega(a, cosTheta, 2), 2*Omega(a, cosTheta, 1); math.Abs(got-want) > 1e-15 {
		t.Errorf("Omega not linear in gamma: %v vs %v", got, want)
	}
	if got, want := Gamma(a, cosTheta, 2), 2*Gamma(a, cosTheta, 1); math.Abs(got-want) > 1e-15 {
		t.Errorf("Gamma not linear in gamma: %v vs %v", got, want)
	}
}

func TestKernelSingularAtCoincidence(t *testing.T) {
	x := r3.Vec{X: 1, Y: 2, Z: 3}
	ez := r3.Vec{Z: 1}

	if g := GammaBetween(x, x, ez, 1); !math.IsNaN(g) && !math.IsInf(g, 0) {
		t.Errorf("expected singular Gamma at coincidence, got %v", g)
	}
	if o := OmegaBetween(x, x, ez, 1); !math.IsNaN(o) && !math.IsInf(o, 0) {
		t.Errorf("expected singular Omega at coincidence, got %v", o)
	}
}
