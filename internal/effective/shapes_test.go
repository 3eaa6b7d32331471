package effective

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/spinrad/internal/geometry"
)

func TestPolygonOrthogonalDegenerate(t *testing.T) {
	if _, _, err := PolygonOrthogonal(2, 1); !errors.Is(err, geometry.ErrDegenerateShape) {
		t.Errorf("expected ErrDegenerateShape, got %v", err)
	}
}

func TestPolygonOrthogonalFinite(t *testing.T) {
	omega, gamma, err := PolygonOrthogonal(3, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		t.Errorf("omega not finite: %v", omega)
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		t.Errorf("gamma not finite: %v", gamma)
	}
}

func TestNamedPolygonsMatchGeneric(t *testing.T) {
	const a = 0.45
	tests := []struct {
		n     int
		shape func(float64) (float64, float64)
	}{
		{5, PentagonOrthogonal},
		{6, HexagonOrthogonal},
		{7, HeptagonOrthogonal},
		{8, OctagonOrthogonal},
	}

	for _, tt := range tests {
		wantOmega, wantGamma, err := PolygonOrthogonal(tt.n, a)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", tt.n, err)
		}
		omega, gamma := tt.shape(a)
		if omega != wantOmega || gamma != wantGamma {
			t.Errorf("n=%d: got (%v, %v), want (%v, %v)", tt.n, omega, gamma, wantOmega, wantGamma)
		}
	}
}

// Finite shapes are exact sums and must never be singular for positive side
// lengths.
func TestFiniteShapesWellDefined(t *testing.T) {
	const a, b, c = 0.3, 0.5, 0.7

	results := map[string][2]float64{}
	add := func(name string, omega, gamma float64) {
		results[name] = [2]float64{omega, gamma}
	}

	omega, gamma := TriangleOrthogonal(a)
	add("triangle", omega, gamma)
	omega, gamma = SquareOrthogonal(a)
	add("square", omega, gamma)
	omega, gamma = RectangleOrthogonal(a, b)
	add("rectangle", omega, gamma)
	omega, gamma = CubeOrthogonal(a)
	add("cube", omega, gamma)
	omega, gamma = BoxOrthogonal(a, b, c)
	add("box", omega, gamma)
	omega, gamma = Chain(a, math.Pi/3, 4)
	add("chain", omega, gamma)
	omega, gamma = ChainOrthogonal(a, 4)
	add("chain orthogonal", omega, gamma)

	for name, r := range results {
		for _, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s: result not finite: %v", name, r)
			}
		}
	}
}

// A square and an a-by-a rectangle are the same arrangement.
func TestSquareIsRectangle(t *testing.T) {
	const a = 0.62
	so, sg := SquareOrthogonal(a)
	ro, rg := RectangleOrthogonal(a, a)
	if so != ro || sg != rg {
		t.Errorf("square (%v, %v) != rectangle (%v, %v)", so, sg, ro, rg)
	}
}

// Chain with theta = 0 polarization is the orthogonal chain.
func TestChainThetaZero(t *testing.T) {
	const a = 0.4
	co, cg := Chain(a, 0, 5)
	oo, og := ChainOrthogonal(a, 5)
	if co != oo || cg != og {
		t.Errorf("chain theta=0 (%v, %v) != chain orthogonal (%v, %v)", co, cg, oo, og)
	}
}

// Growing the truncation window must change the result less and less: the
// kernel decays with distance, so the terms added by a larger window shrink.
func TestChainConvergence(t *testing.T) {
	const a = 0.5

	diff := func(n int) (float64, float64) {
		o1, g1 := ChainOrthogonal(a, n)
		o2, g2 := ChainOrthogonal(a, n+1)
		return math.Abs(o2 - o1), math.Abs(g2 - g1)
	}

	dOmegaSmall, dGammaSmall := diff(2)
	dOmegaLarge, dGammaLarge := diff(60)

	if dOmegaLarge >= dOmegaSmall {
		t.Errorf("omega increments do not shrink: %v at n=2, %v at n=60", dOmegaSmall, dOmegaLarge)
	}
	if dGammaLarge >= dGammaSmall {
		t.Errorf("gamma increments do not shrink: %v at n=2, %v at n=60", dGammaSmall, dGammaLarge)
	}
}
