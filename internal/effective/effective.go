package effective

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/spinrad/internal/dipole"
	"github.com/san-kum/spinrad/internal/quantum"
)

// Interactions sums the dipole-dipole kernel between the coordinate origin
// and every spin of c, returning the collective frequency shift and decay
// rate of the arrangement.
//
// The kernel is evaluated with a reference decay rate of 1, so results are
// in units of the single-spin linewidth; the collection's own Gamma field is
// not consulted. Summation follows slice order, which keeps results
// bit-for-bit reproducible for a fixed input ordering. An empty collection
// yields (0, 0). A spin sitting exactly at the origin makes the kernel
// singular and propagates NaN or Inf into the result.
func Interactions(c quantum.SpinCollection) (omega, gamma float64) {
	origin := r3.Vec{}
	for _, s := range c.Spins {
		omega += dipole.OmegaBetween(origin, s.Position, c.Polarization, 1)
		gamma += dipole.GammaBetween(origin, s.Position, c.Polarization, 1)
	}
	return omega, gamma
}
