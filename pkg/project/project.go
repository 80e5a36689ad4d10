// Package project collapses N-dimensional points onto a flat drawing surface.
//
// Each reduction round treats the last remaining coordinate as depth and
// perspective-divides every other remaining coordinate by a bound derived
// from it, then drops the depth coordinate. Rounds repeat until two
// coordinates remain (or the count Reduce asks for). A perspective depth of
// zero bypasses the reduction and keeps the leading coordinates
// (orthogonal view).
package project

import (
	"math"

	"github.com/chazu/ndwire/pkg/geom"
)

// MinBound is the smallest bound magnitude accepted as a divisor.
const MinBound = 0.1

// Params is the per-call view configuration. It is copied into a Projector
// and never shared, so projection is a pure function of a line and Params.
type Params struct {
	Dimensions      int     // current dimensionality D
	Perspective     float64 // P, in [0,5]; 0 is orthogonal
	Side            float64 // S, half-extent of generated presets
	Half            float64 // H, half the drawing surface side
	ScaleCorrection bool
}

// Orthogonal reports whether projection is bypassed.
func (p Params) Orthogonal() bool {
	return p.Perspective == 0
}

// Flat is a projected point before scale correction and surface translation.
type Flat struct {
	X, Y float64
}

// Projector reduces points using two scratch buffers sized to the
// dimensionality, reused across calls and across both line endpoints.
// A Projector is not safe for concurrent use.
type Projector struct {
	params Params
	bufA   []float64
	bufB   []float64
}

// New returns a Projector for the given parameters.
func New(p Params) *Projector {
	n := p.Dimensions
	if n < 2 {
		n = 2
	}
	return &Projector{
		params: p,
		bufA:   make([]float64, n),
		bufB:   make([]float64, n),
	}
}

// Params returns the parameters the projector was built with.
func (pr *Projector) Params() Params {
	return pr.params
}

// Bound returns the perspective divisor for a depth value. It reports false
// when the depth lies at or beyond the far limit S + H/P, or when the bound
// is too close to zero to divide by.
func (pr *Projector) Bound(depth float64) (float64, bool) {
	p := pr.params
	if depth >= p.Side+p.Half/p.Perspective {
		return 0, false
	}
	b := -p.Perspective*(depth-p.Side) + p.Half
	if math.Abs(b) < MinBound {
		return 0, false
	}
	return b, true
}

// Step projects a single coordinate v against a depth value.
func (pr *Projector) Step(v, depth float64) (float64, bool) {
	b, ok := pr.Bound(depth)
	if !ok {
		return 0, false
	}
	return pr.params.Half * v / b, true
}

// Point collapses pt to two coordinates. It reports false when the point is
// not visible. In orthogonal mode the first two coordinates are returned.
func (pr *Projector) Point(pt geom.Point) (Flat, bool) {
	return pr.collapse(pt, &pr.bufA)
}

// Line projects both endpoints of l. The line is visible only when both
// endpoints survive every reduction round.
func (pr *Projector) Line(l geom.Line) (Flat, Flat, bool) {
	a, ok := pr.collapse(l.A, &pr.bufA)
	if !ok {
		return Flat{}, Flat{}, false
	}
	b, ok := pr.collapse(l.B, &pr.bufB)
	if !ok {
		return Flat{}, Flat{}, false
	}
	return a, b, true
}

func (pr *Projector) collapse(pt geom.Point, buf *[]float64) (Flat, bool) {
	if len(pt) < 2 {
		return Flat{}, false
	}
	if pr.params.Orthogonal() {
		return Flat{X: pt[0], Y: pt[1]}, true
	}
	if cap(*buf) < len(pt) {
		*buf = make([]float64, len(pt))
	}
	v := (*buf)[:len(pt)]
	copy(v, pt)

	if !pr.rounds(v, 2) {
		return Flat{}, false
	}
	return Flat{X: v[0], Y: v[1]}, true
}

// Reduce collapses pt to its first dims coordinates and returns them as a
// new point. Only the coordinates beyond dims are consumed as depth, so
// Reduce(pt, 2) agrees with Point. In orthogonal mode the leading
// coordinates are returned unchanged.
func (pr *Projector) Reduce(pt geom.Point, dims int) (geom.Point, bool) {
	if dims < 1 || len(pt) < dims {
		return nil, false
	}
	v := pt.Clone()
	if !pr.params.Orthogonal() && !pr.rounds(v, dims) {
		return nil, false
	}
	return v[:dims:dims], true
}

// rounds runs reduction rounds on v in place until target coordinates
// remain.
func (pr *Projector) rounds(v []float64, target int) bool {
	for n := len(v); n > target; n-- {
		b, ok := pr.Bound(v[n-1])
		if !ok {
			return false
		}
		for i := 0; i < n-1; i++ {
			v[i] = pr.params.Half * v[i] / b
		}
	}
	return true
}
