package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Chain returns the 2n sites of a linear chain along the x-axis with
// spacing a, covering indices -n..n with the origin site removed.
func Chain(a float64, n int) []r3.Vec {
	positions := make([]r3.Vec, 0, 2*n)
	for i := -n; i <= n; i++ {
		if i == 0 {
			continue
		}
		positions = append(positions, r3.Vec{X: float64(i) * a})
	}
	return positions
}
