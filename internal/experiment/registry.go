// Package experiment wires named shapes to the effective-interaction engine
// and runs truncation sweeps over the infinite-lattice approximations.
package experiment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/spinrad/internal/effective"
)

// Params carries the geometric parameters a shape function may consume.
// Shapes read only the fields they need.
type Params struct {
	A        float64 // primary side length or lattice spacing
	B        float64 // secondary length (rectangle, box, tetragonal, 3D hex)
	C        float64 // tertiary length (box)
	Theta    float64 // polarization tilt from the z-axis (generic chain)
	Vertices int     // vertex count (generic polygon)
	N        int     // truncation window of lattice shapes
}

// Shape couples a shape name to its effective-interaction computation.
type Shape struct {
	Name     string
	Infinite bool // parameterized by a truncation window N
	Compute  func(Params) (omega, gamma float64, err error)
}

// Registry maps shape names to their computations.
type Registry struct {
	shapes map[string]Shape
}

// NewRegistry returns a registry holding every supported arrangement.
func NewRegistry() *Registry {
	r := &Registry{shapes: make(map[string]Shape)}

	finite := func(name string, f func(Params) (float64, float64)) {
		r.shapes[name] = Shape{Name: name, Compute: func(p Params) (float64, float64, error) {
			omega, gamma := f(p)
			return omega, gamma, nil
		}}
	}
	infinite := func(name string, f func(Params) (float64, float64)) {
		r.shapes[name] = Shape{Name: name, Infinite: true, Compute: func(p Params) (float64, float64, error) {
			omega, gamma := f(p)
			return omega, gamma, nil
		}}
	}

	finite("triangle", func(p Params) (float64, float64) { return effective.TriangleOrthogonal(p.A) })
	finite("square", func(p Params) (float64, float64) { return effective.SquareOrthogonal(p.A) })
	finite("rectangle", func(p Params) (float64, float64) { return effective.RectangleOrthogonal(p.A, p.B) })
	finite("pentagon", func(p Params) (float64, float64) { return effective.PentagonOrthogonal(p.A) })
	finite("hexagon", func(p Params) (float64, float64) { return effective.HexagonOrthogonal(p.A) })
	finite("heptagon", func(p Params) (float64, float64) { return effective.HeptagonOrthogonal(p.A) })
	finite("octagon", func(p Params) (float64, float64) { return effective.OctagonOrthogonal(p.A) })
	finite("cube", func(p Params) (float64, float64) { return effective.CubeOrthogonal(p.A) })
	finite("box", func(p Params) (float64, float64) { return effective.BoxOrthogonal(p.A, p.B, p.C) })

	r.shapes["polygon"] = Shape{Name: "polygon", Compute: func(p Params) (float64, float64, error) {
		return effective.PolygonOrthogonal(p.Vertices, p.A)
	}}

	infinite("chain", func(p Params) (float64, float64) { return effective.Chain(p.A, p.Theta, p.N) })
	infinite("chain-orthogonal", func(p Params) (float64, float64) { return effective.ChainOrthogonal(p.A, p.N) })
	infinite("square-lattice", func(p Params) (float64, float64) { return effective.SquareLatticeOrthogonal(p.A, p.N) })
	infinite("hexagonal-lattice", func(p Params) (float64, float64) { return effective.HexagonalLatticeOrthogonal(p.A, p.N) })
	infinite("cubic-lattice", func(p Params) (float64, float64) { return effective.CubicLatticeOrthogonal(p.A, p.N) })
	infinite("tetragonal-lattice", func(p Params) (float64, float64) { return effective.TetragonalLatticeOrthogonal(p.A, p.B, p.N) })
	infinite("hexagonal-lattice-3d", func(p Params) (float64, float64) { return effective.HexagonalLattice3DOrthogonal(p.A, p.B, p.N) })

	return r
}

// Get returns the shape registered under name.
func (r *Registry) Get(name string) (Shape, error) {
	s, ok := r.shapes[name]
	if !ok {
		return Shape{}, fmt.Errorf("unknown shape: %s (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

// Names returns all registered shape names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
