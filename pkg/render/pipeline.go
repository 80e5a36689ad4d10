package render

import (
	"github.com/chazu/ndwire/pkg/geom"
	"github.com/chazu/ndwire/pkg/project"
	"github.com/samber/lo"
)

// Segment is a line in surface coordinates: origin top-left, Y down.
type Segment struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Frame is the result of one render pass.
type Frame struct {
	Side     float64   // surface side length
	Segments []Segment // visible lines in store order
	Hidden   int       // lines suppressed because an endpoint was not visible
}

// Pipeline projects lines, applies scale correction and translates them into
// surface space. A Pipeline reuses its projector buffers and is not safe for
// concurrent use.
type Pipeline struct {
	params    project.Params
	projector *project.Projector
	scale     float64
}

// NewPipeline returns a pipeline for the given projection parameters.
func NewPipeline(p project.Params) *Pipeline {
	return &Pipeline{
		params:    p,
		projector: project.New(p),
		scale:     project.ScaleFactor(p),
	}
}

// Scale returns the scale-correction multiplier in effect.
func (pl *Pipeline) Scale() float64 {
	return pl.scale
}

// Segment projects a single line. It reports false when the line is not drawn.
func (pl *Pipeline) Segment(l geom.Line) (Segment, bool) {
	a, b, ok := pl.projector.Line(l)
	if !ok {
		return Segment{}, false
	}
	x0, y0 := pl.toSurface(a)
	x1, y1 := pl.toSurface(b)
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}, true
}

// toSurface scales a flat point and moves it into surface space, flipping Y.
func (pl *Pipeline) toSurface(f project.Flat) (float64, float64) {
	h := pl.params.Half
	return h + f.X*pl.scale, h - f.Y*pl.scale
}

// Render projects every line in order.
func (pl *Pipeline) Render(lines []geom.Line) Frame {
	segs := lo.FilterMap(lines, func(l geom.Line, _ int) (Segment, bool) {
		return pl.Segment(l)
	})
	return Frame{
		Side:     2 * pl.params.Half,
		Segments: segs,
		Hidden:   len(lines) - len(segs),
	}
}
