// Package raster implements render.Surface on an in-memory RGBA image using
// draw2d, and saves screenshots as PNG.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/chazu/ndwire/pkg/render"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Compile-time interface check.
var _ render.Surface = (*Surface)(nil)

const (
	textMargin    = 20
	textRowHeight = 20
)

// Surface rasterizes a frame. When a path is set, End writes the image to
// that path as PNG.
type Surface struct {
	path      string
	lineWidth float64
	img       *image.RGBA
	gc        *draw2dimg.GraphicContext
	textColor color.RGBA
}

// New returns an in-memory surface. Use Image after End to read the result.
func New() *Surface {
	return &Surface{lineWidth: 1}
}

// NewFile returns a surface that saves a PNG to path on End.
func NewFile(path string) *Surface {
	return &Surface{path: path, lineWidth: 1}
}

// SetLineWidth sets the stroke width used for segments.
func (s *Surface) SetLineWidth(w float64) {
	s.lineWidth = w
}

// Begin allocates the image and fills the background.
func (s *Surface) Begin(side float64, p render.Palette) error {
	n := int(math.Round(side))
	s.img = image.NewRGBA(image.Rect(0, 0, n, n))
	s.gc = draw2dimg.NewGraphicContext(s.img)

	s.gc.SetFillColor(p.Background)
	draw2dkit.Rectangle(s.gc, 0, 0, float64(n), float64(n))
	s.gc.Fill()

	s.gc.SetStrokeColor(p.Line)
	s.gc.SetLineWidth(s.lineWidth)
	s.textColor = p.Text
	return nil
}

// Line strokes one segment.
func (s *Surface) Line(seg render.Segment) {
	s.gc.BeginPath()
	s.gc.MoveTo(seg.X0, seg.Y0)
	s.gc.LineTo(seg.X1, seg.Y1)
	s.gc.Stroke()
}

// Text draws an overlay row with the built-in bitmap face.
func (s *Surface) Text(row int, str string) {
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(textMargin, textMargin+textRowHeight*row),
	}
	d.DrawString(str)
}

// End saves the image when the surface has a path.
func (s *Surface) End() error {
	if s.path == "" {
		return nil
	}
	return draw2dimg.SaveToPngFile(s.path, s.img)
}

// Image returns the rasterized frame, or nil before Begin.
func (s *Surface) Image() *image.RGBA {
	return s.img
}
