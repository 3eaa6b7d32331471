package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// HexagonalLattice returns a window of a triangular (hexagonal) lattice in
// the xy-plane with nearest-neighbour spacing a, excluding the origin.
//
// Sites are enumerated per column. The x = 0 column holds sites at integer
// multiples of a with the origin removed; the swept columns at x = +-i *
// sqrt(3)/2 * a hold 2n+1 sites each, shifted by a/2 for odd i. The window
// contains (2n+1)^2 - 1 sites in total.
func HexagonalLattice(a float64, n int) []r3.Vec {
	positions := make([]r3.Vec, 0, (2*n+1)*(2*n+1)-1)

	// Near-origin column.
	for j := -n; j <= n; j++ {
		if j == 0 {
			continue
		}
		positions = append(positions, r3.Vec{Y: float64(j) * a})
	}

	// Swept column pairs.
	dx := math.Sqrt(3) / 2 * a
	for i := 1; i <= n; i++ {
		offset := 0.0
		if i%2 == 1 {
			offset = 0.5
		}
		for j := -n; j <= n; j++ {
			y := (float64(j) + offset) * a
			positions = append(positions,
				r3.Vec{X: float64(i) * dx, Y: y},
				r3.Vec{X: -float64(i) * dx, Y: y},
			)
		}
	}
	return positions
}

// HexagonalLattice3D stacks 2n+1 hexagonal-lattice layers along z with layer
// spacing b. Only the central layer omits its in-plane origin site, which is
// the global origin.
func HexagonalLattice3D(a, b float64, n int) []r3.Vec {
	layer := HexagonalLattice(a, n)
	positions := make([]r3.Vec, 0, (2*n+1)*(len(layer)+1)-1)

	for k := -n; k <= n; k++ {
		z := float64(k) * b
		if k != 0 {
			positions = append(positions, r3.Vec{Z: z})
		}
		for _, p := range layer {
			positions = append(positions, r3.Vec{X: p.X, Y: p.Y, Z: z})
		}
	}
	return positions
}
