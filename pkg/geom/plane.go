package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidPlane is returned when plane axes are equal or out of range.
var ErrInvalidPlane = errors.New("geom: invalid rotation plane")

// Plane is an unordered pair of distinct axis indices. Low is always the
// smaller index.
type Plane struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// NewPlane validates the axes a and b against dims and returns the plane
// they span. The order of a and b does not matter.
func NewPlane(a, b, dims int) (Plane, error) {
	if a == b {
		return Plane{}, fmt.Errorf("%w: axes must differ, got %d and %d", ErrInvalidPlane, a, b)
	}
	if a < 0 || b < 0 || a >= dims || b >= dims {
		return Plane{}, fmt.Errorf("%w: axes %d,%d outside [0,%d)", ErrInvalidPlane, a, b, dims)
	}
	if a > b {
		a, b = b, a
	}
	return Plane{Low: a, High: b}, nil
}

// DefaultPlane returns the plane selected after a dimensionality change:
// {0,1} in two dimensions and {0,2} otherwise.
func DefaultPlane(dims int) Plane {
	if dims == 2 {
		return Plane{Low: 0, High: 1}
	}
	return Plane{Low: 0, High: 2}
}

// Valid reports whether the plane is usable with dims dimensions.
func (p Plane) Valid(dims int) bool {
	return p.Low >= 0 && p.Low < p.High && p.High < dims
}

// Cycle shifts both axes by one, up or down, wrapping around dims.
func (p Plane) Cycle(up bool, dims int) Plane {
	step := dims - 1
	if up {
		step = 1
	}
	a := (p.Low + step) % dims
	b := (p.High + step) % dims
	if a > b {
		a, b = b, a
	}
	return Plane{Low: a, High: b}
}

func (p Plane) String() string {
	return fmt.Sprintf("(%d,%d)", p.Low, p.High)
}
