package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the component-wise tolerance used when comparing coordinates.
const Tolerance = 1e-6

// Point is an ordered sequence of coordinates, one per dimension.
type Point []float64

// Dims returns the number of coordinates in the point.
func (p Point) Dims() int {
	return len(p)
}

// Clone returns a copy of the point that shares no storage with p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q have the same length and every pair of
// coordinates differs by at most tol.
func (p Point) Equal(q Point, tol float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if math.Abs(p[i]-q[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the point as space separated coordinates.
func (p Point) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// Filled returns a point of the given dimensionality with every coordinate set to v.
func Filled(dims int, v float64) Point {
	p := make(Point, dims)
	for i := range p {
		p[i] = v
	}
	return p
}

// Line is an unordered pair of points. A and B are kept in insertion order
// for display and file output, but identity ignores the order.
type Line struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// NewLine returns a line between a and b.
func NewLine(a, b Point) Line {
	return Line{A: a, B: b}
}

// Clone returns a deep copy of the line.
func (l Line) Clone() Line {
	return Line{A: l.A.Clone(), B: l.B.Clone()}
}

// Equal reports whether l and m connect the same two points within tol,
// regardless of endpoint order.
func (l Line) Equal(m Line, tol float64) bool {
	if l.A.Equal(m.A, tol) && l.B.Equal(m.B, tol) {
		return true
	}
	return l.A.Equal(m.B, tol) && l.B.Equal(m.A, tol)
}

// Dims returns the dimensionality of the line's first endpoint.
func (l Line) Dims() int {
	return len(l.A)
}

func (l Line) String() string {
	return fmt.Sprintf("(%s) - (%s)", l.A, l.B)
}

// Center is the rotation center, expressed in the two axes of the rotation plane.
type Center struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c Center) String() string {
	return fmt.Sprintf("(%s,%s)",
		strconv.FormatFloat(c.X, 'g', -1, 64),
		strconv.FormatFloat(c.Y, 'g', -1, 64))
}
