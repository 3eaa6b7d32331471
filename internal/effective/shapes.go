package effective

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/spinrad/internal/geometry"
	"github.com/san-kum/spinrad/internal/quantum"
)

// orthogonal evaluates an arrangement with the polarization axis
// perpendicular to the plane of planar shapes.
func orthogonal(positions []r3.Vec) (omega, gamma float64) {
	return withPolarization(positions, r3.Vec{Z: 1})
}

func withPolarization(positions []r3.Vec, polarization r3.Vec) (omega, gamma float64) {
	c, err := quantum.NewSpinCollectionFromPositions(positions, polarization, 0, 1)
	if err != nil {
		// The axes used by the shape functions are unit vectors and the
		// decay rate is the fixed literal 1, so construction cannot fail.
		panic(err)
	}
	return Interactions(c)
}

// TriangleOrthogonal returns the collective parameters of an equilateral
// triangle with side a.
func TriangleOrthogonal(a float64) (omega, gamma float64) {
	return orthogonal(geometry.Triangle(a))
}

// SquareOrthogonal returns the collective parameters of a square with side a.
func SquareOrthogonal(a float64) (omega, gamma float64) {
	return orthogonal(geometry.Square(a))
}

// RectangleOrthogonal returns the collective parameters of an a-by-b
// rectangle.
func RectangleOrthogonal(a, b float64) (omega, gamma float64) {
	return orthogonal(geometry.Rectangle(a, b))
}

// PolygonOrthogonal returns the collective parameters of a regular n-gon
// with side a. It fails for n below 3.
func PolygonOrthogonal(n int, a float64) (omega, gamma float64, err error) {
	positions, err := geometry.Polygon(n, a)
	if err != nil {
		return 0, 0, err
	}
	omega, gamma = orthogonal(positions)
	return omega, gamma, nil
}

// PentagonOrthogonal returns the collective parameters of a regular pentagon
// with side a.
func PentagonOrthogonal(a float64) (omega, gamma float64) { return polygon(5, a) }

// HexagonOrthogonal returns the collective parameters of a regular hexagon
// with side a.
func HexagonOrthogonal(a float64) (omega, gamma float64) { return polygon(6, a) }

// HeptagonOrthogonal returns the collective parameters of a regular heptagon
// with side a.
func HeptagonOrthogonal(a float64) (omega, gamma float64) { return polygon(7, a) }

// OctagonOrthogonal returns the collective parameters of a regular octagon
// with side a.
func OctagonOrthogonal(a float64) (omega, gamma float64) { return polygon(8, a) }

func polygon(n int, a float64) (omega, gamma float64) {
	omega, gamma, err := PolygonOrthogonal(n, a)
	if err != nil {
		panic(err) // fixed vertex counts above 2
	}
	return omega, gamma
}

// CubeOrthogonal returns the collective parameters of a cube with edge a.
func CubeOrthogonal(a float64) (omega, gamma float64) {
	return orthogonal(geometry.Cube(a))
}

// BoxOrthogonal returns the collective parameters of an a-by-b-by-c box.
func BoxOrthogonal(a, b, c float64) (omega, gamma float64) {
	return orthogonal(geometry.Box(a, b, c))
}

// Chain returns the collective parameters of a 2n-site chain with spacing a
// and the polarization axis tilted by theta from the z-axis towards the
// chain direction.
func Chain(a, theta float64, n int) (omega, gamma float64) {
	e := r3.Vec{X: math.Sin(theta), Z: math.Cos(theta)}
	return withPolarization(geometry.Chain(a, n), e)
}

// ChainOrthogonal returns the collective parameters of a 2n-site chain with
// spacing a and out-of-plane polarization.
func ChainOrthogonal(a float64, n int) (omega, gamma float64) {
	return orthogonal(geometry.Chain(a, n))
}

// SquareLatticeOrthogonal returns the collective parameters of a square
// lattice window of truncation n with spacing a.
func SquareLatticeOrthogonal(a float64, n int) (omega, gamma float64) {
	return orthogonal(geometry.SquareLattice(a, n))
}

// HexagonalLatticeOrthogonal returns the collective parameters of a
// triangular lattice window of truncation n with nearest-neighbour spacing a.
func HexagonalLatticeOrthogonal(a float64, n int) (omega, gamma float64) {
	return orthogonal(geometry.HexagonalLattice(a, n))
}

// CubicLatticeOrthogonal returns the collective parameters of a cubic
// lattice window of truncation n with spacing a.
func CubicLatticeOrthogonal(a float64, n int) (omega, gamma float64) {
	return orthogonal(geometry.CubicLattice(a, n))
}

// TetragonalLatticeOrthogonal returns the collective parameters of a
// tetragonal lattice window with in-plane spacing a and out-of-plane
// spacing b.
func TetragonalLatticeOrthogonal(a, b float64, n int) (omega, gamma float64) {
	return orthogonal(geometry.TetragonalLattice(a, b, n))
}

// HexagonalLattice3DOrthogonal returns the collective parameters of stacked
// hexagonal lattice layers with in-plane spacing a and layer spacing b.
func HexagonalLattice3DOrthogonal(a, b float64, n int) (omega, gamma float64) {
	return orthogonal(geometry.HexagonalLattice3D(a, b, n))
}
