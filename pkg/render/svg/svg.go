// Package svg implements render.Surface by writing SVG documents with
// github.com/ajstarks/svgo.
package svg

import (
	"fmt"
	"io"
	"math"
	"os"

	svgo "github.com/ajstarks/svgo"
	"github.com/chazu/ndwire/pkg/render"
)

// Compile-time interface check.
var _ render.Surface = (*Surface)(nil)

// textRowHeight is the vertical spacing of overlay text rows in pixels.
const textRowHeight = 20

// Surface writes one SVG document per Begin/End pair.
type Surface struct {
	w         io.Writer
	closer    io.Closer
	canvas    *svgo.SVG
	lineStyle string
	textStyle string
}

// New returns a Surface writing to w.
func New(w io.Writer) *Surface {
	return &Surface{w: w}
}

// Create returns a Surface writing to a new file at path. The file is
// closed by End.
func Create(path string) (*Surface, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}
	return &Surface{w: f, closer: f}, nil
}

// Begin starts the document and paints the background.
func (s *Surface) Begin(side float64, p render.Palette) error {
	n := int(math.Round(side))
	s.canvas = svgo.New(s.w)
	s.canvas.Start(n, n)
	s.canvas.Rect(0, 0, n, n, "fill:"+render.Hex(p.Background))
	s.lineStyle = fmt.Sprintf("stroke:%s;stroke-width:1", render.Hex(p.Line))
	s.textStyle = fmt.Sprintf("fill:%s;font-family:monospace;font-size:14px", render.Hex(p.Text))
	return nil
}

// Line draws a segment, rounded to whole pixels.
func (s *Surface) Line(seg render.Segment) {
	s.canvas.Line(
		int(math.Round(seg.X0)), int(math.Round(seg.Y0)),
		int(math.Round(seg.X1)), int(math.Round(seg.Y1)),
		s.lineStyle)
}

// Text writes an overlay row in the top-left corner.
func (s *Surface) Text(row int, str string) {
	s.canvas.Text(textRowHeight, textRowHeight*(row+1), str, s.textStyle)
}

// End closes the document and, for file surfaces, the file.
func (s *Surface) End() error {
	s.canvas.End()
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
