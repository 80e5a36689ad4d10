// Package rotate turns wireframe coordinates within a single plane.
//
// Angles are measured from the plane's high axis toward its low axis:
// for a point (x, y) in the plane, relative to the center, the angle is
// atan2(x, y) and the rotated point is (r sin(phi+theta), r cos(phi+theta)).
package rotate

import (
	"math"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/samber/lo"
)

// DefaultTheta is the per-step rotation angle in radians (2.5 degrees).
const DefaultTheta = math.Pi / 72

// Direction selects the sense of rotation.
type Direction int

const (
	Forward  Direction = iota // adds theta
	Backward                  // subtracts theta
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// sign returns +1 for Forward and -1 otherwise.
func (d Direction) sign() float64 {
	if d == Forward {
		return 1
	}
	return -1
}

// Rotator rotates coordinates by a fixed step angle.
type Rotator struct {
	Theta float64
}

// New returns a Rotator with the given step angle in radians.
func New(theta float64) Rotator {
	return Rotator{Theta: theta}
}

// Point returns a copy of p rotated one step within plane about c.
// Coordinates outside the plane are copied unchanged.
func (r Rotator) Point(p geom.Point, plane geom.Plane, c geom.Center, dir Direction) geom.Point {
	out := p.Clone()
	x := p[plane.Low] - c.X
	y := p[plane.High] - c.Y
	radius := math.Hypot(x, y)
	phi := math.Atan2(x, y) + dir.sign()*r.Theta
	out[plane.Low] = c.X + radius*math.Sin(phi)
	out[plane.High] = c.Y + radius*math.Cos(phi)
	return out
}

// Lines returns a new slice holding every line rotated one step. The input
// is not modified.
func (r Rotator) Lines(lines []geom.Line, plane geom.Plane, c geom.Center, dir Direction) []geom.Line {
	return lo.Map(lines, func(l geom.Line, _ int) geom.Line {
		return geom.Line{
			A: r.Point(l.A, plane, c, dir),
			B: r.Point(l.B, plane, c, dir),
		}
	})
}

// Degrees returns the step angle in degrees.
func (r Rotator) Degrees() float64 {
	return r.Theta * 180 / math.Pi
}
