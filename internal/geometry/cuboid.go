package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Cube returns the seven free corners of a cube with edge a and one corner
// at the origin.
func Cube(a float64) []r3.Vec {
	return Box(a, a, a)
}

// Box returns the seven free corners of a rectangular box with edge lengths
// a, b and c along x, y and z.
func Box(a, b, c float64) []r3.Vec {
	positions := make([]r3.Vec, 0, 7)
	for i := 0; i <= 1; i++ {
		for j := 0; j <= 1; j++ {
			for k := 0; k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				positions = append(positions, r3.Vec{
					X: float64(i) * a,
					Y: float64(j) * b,
					Z: float64(k) * c,
				})
			}
		}
	}
	return positions
}
