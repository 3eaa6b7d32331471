package effective

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/spinrad/internal/dipole"
	"github.com/san-kum/spinrad/internal/geometry"
	"github.com/san-kum/spinrad/internal/quantum"
)

func TestInteractionsEmpty(t *testing.T) {
	c, err := quantum.NewSpinCollection(nil, r3.Vec{Z: 1}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	omega, gamma := Interactions(c)
	if omega != 0 || gamma != 0 {
		t.Errorf("empty collection: got (%v, %v), want (0, 0)", omega, gamma)
	}
}

// The engine is by definition the in-order sum of the kernel from the origin
// to every spin; check this against a manual two-term sum.
func TestInteractionsMatchesManualSum(t *testing.T) {
	const a = 0.27
	ez := r3.Vec{Z: 1}
	positions := geometry.Triangle(a)

	var wantOmega, wantGamma float64
	for _, p := range positions {
		wantOmega += dipole.OmegaBetween(r3.Vec{}, p, ez, 1)
		wantGamma += dipole.GammaBetween(r3.Vec{}, p, ez, 1)
	}

	omega, gamma := TriangleOrthogonal(a)
	if omega != wantOmega || gamma != wantGamma {
		t.Errorf("got (%v, %v), want (%v, %v)", omega, gamma, wantOmega, wantGamma)
	}
}

// The kernel is always evaluated at the reference rate 1; the collection's
// own decay rate must not leak into the result.
func TestInteractionsIgnoreCollectionGamma(t *testing.T) {
	positions := geometry.Square(0.4)

	c1, err := quantum.NewSpinCollectionFromPositions(positions, r3.Vec{Z: 1}, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c5, err := quantum.NewSpinCollectionFromPositions(positions, r3.Vec{Z: 1}, 0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o1, g1 := Interactions(c1)
	o5, g5 := Interactions(c5)
	if o1 != o5 || g1 != g5 {
		t.Errorf("collection gamma leaked into result: (%v, %v) vs (%v, %v)", o1, g1, o5, g5)
	}
}

func TestInteractionsDeterministic(t *testing.T) {
	omega1, gamma1 := HexagonalLatticeOrthogonal(0.35, 4)
	omega2, gamma2 := HexagonalLatticeOrthogonal(0.35, 4)

	if omega1 != omega2 || gamma1 != gamma2 {
		t.Errorf("repeated calls differ: (%v, %v) vs (%v, %v)", omega1, gamma1, omega2, gamma2)
	}
}
