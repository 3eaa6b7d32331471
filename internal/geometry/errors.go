package geometry

import "errors"

// ErrDegenerateShape indicates shape parameters that cannot produce a valid
// arrangement, like a polygon with fewer than three vertices.
var ErrDegenerateShape = errors.New("geometry: degenerate shape parameters")
