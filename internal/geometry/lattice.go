package geometry

import "gonum.org/v1/gonum/spatial/r3"

// SquareLattice returns the (2n+1)^2 - 1 sites of a square window of a 2D
// square lattice with spacing a, excluding the origin.
func SquareLattice(a float64, n int) []r3.Vec {
	positions := make([]r3.Vec, 0, (2*n+1)*(2*n+1)-1)
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			if i == 0 && j == 0 {
				continue
			}
			positions = append(positions, r3.Vec{X: float64(i) * a, Y: float64(j) * a})
		}
	}
	return positions
}

// CubicLattice returns the (2n+1)^3 - 1 sites of a cubic window of a 3D
// cubic lattice with spacing a, excluding the origin.
func CubicLattice(a float64, n int) []r3.Vec {
	return TetragonalLattice(a, a, n)
}

// TetragonalLattice returns a cubic window of a tetragonal lattice with
// in-plane spacing a and out-of-plane spacing b, excluding the origin.
func TetragonalLattice(a, b float64, n int) []r3.Vec {
	positions := make([]r3.Vec, 0, (2*n+1)*(2*n+1)*(2*n+1)-1)
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			for k := -n; k <= n; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				positions = append(positions, r3.Vec{
					X: float64(i) * a,
					Y: float64(j) * a,
					Z: float64(k) * b,
				})
			}
		}
	}
	return positions
}
