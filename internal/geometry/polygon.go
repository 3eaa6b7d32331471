package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle returns the two free vertices of an equilateral triangle with
// side a in the xy-plane, the third vertex being the origin.
func Triangle(a float64) []r3.Vec {
	return []r3.Vec{
		{X: a},
		{X: a / 2, Y: a * math.Sqrt(3) / 2},
	}
}

// Square returns the three free corners of a square with side a.
func Square(a float64) []r3.Vec {
	return Rectangle(a, a)
}

// Rectangle returns the three free corners of an a-by-b rectangle.
func Rectangle(a, b float64) []r3.Vec {
	return []r3.Vec{
		{X: a},
		{Y: b},
		{X: a, Y: b},
	}
}

// Polygon returns the n-1 free vertices of a regular n-gon with side length
// a and one vertex at the origin. It fails for n below 3.
func Polygon(n int, a float64) ([]r3.Vec, error) {
	if n <= 2 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrDegenerateShape, n)
	}

	// Circumradius such that neighbouring vertices are a apart.
	r := a / (2 * math.Sin(math.Pi/float64(n)))

	positions := make([]r3.Vec, 0, n-1)
	for k := 1; k < n; k++ {
		phi := 2 * math.Pi * float64(k) / float64(n)
		positions = append(positions, r3.Vec{
			X: r * (1 - math.Cos(phi)),
			Y: r * math.Sin(phi),
		})
	}
	return positions, nil
}
