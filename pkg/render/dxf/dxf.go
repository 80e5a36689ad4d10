// Package dxf implements render.Surface by writing DXF drawings through the
// sdfx render package.
package dxf

import (
	"github.com/chazu/ndwire/pkg/render"
	sdfxrender "github.com/deadsy/sdfx/render"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Compile-time interface check.
var _ render.Surface = (*Surface)(nil)

// Surface writes a DXF file. DXF has Y pointing up, so surface coordinates
// are flipped back on output.
type Surface struct {
	path    string
	side    float64
	drawing *sdfxrender.DXF
	count   int
}

// New returns a Surface that saves to path on End.
func New(path string) *Surface {
	return &Surface{path: path}
}

// Begin starts a new drawing. Palettes do not apply to DXF output.
func (s *Surface) Begin(side float64, _ render.Palette) error {
	s.side = side
	s.count = 0
	s.drawing = sdfxrender.NewDXF(s.path)
	return nil
}

// Line adds a segment to the drawing.
func (s *Surface) Line(seg render.Segment) {
	s.drawing.Line(
		v2.Vec{X: seg.X0, Y: s.side - seg.Y0},
		v2.Vec{X: seg.X1, Y: s.side - seg.Y1},
	)
	s.count++
}

// Text is not supported by DXF output.
func (s *Surface) Text(int, string) {}

// Count returns the number of segments written since Begin.
func (s *Surface) Count() int {
	return s.count
}

// End saves the drawing.
func (s *Surface) End() error {
	return s.drawing.Save()
}
