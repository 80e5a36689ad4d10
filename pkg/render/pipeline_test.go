package render

import (
	"testing"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/chazu/ndwire/pkg/preset"
	"github.com/chazu/ndwire/pkg/project"
)

func params(dims int, perspective float64, scale bool) project.Params {
	return project.Params{
		Dimensions:      dims,
		Perspective:     perspective,
		Side:            100,
		Half:            400,
		ScaleCorrection: scale,
	}
}

func TestSegmentWorkedExample(t *testing.T) {
	pl := NewPipeline(params(3, 1, false))
	seg, ok := pl.Segment(geom.NewLine(geom.Point{100, 100, 100}, geom.Point{-100, -100, 100}))
	if !ok {
		t.Fatal("expected a visible segment")
	}
	if seg.X0 != 500 || seg.Y0 != 300 {
		t.Errorf("first endpoint = (%v,%v), want (500,300)", seg.X0, seg.Y0)
	}
	if seg.X1 != 300 || seg.Y1 != 500 {
		t.Errorf("second endpoint = (%v,%v), want (300,500)", seg.X1, seg.Y1)
	}
}

func TestScaleCorrectionApplied(t *testing.T) {
	pl := NewPipeline(params(3, 1, true))
	if pl.Scale() != 2.25 {
		t.Fatalf("Scale() = %v, want 2.25", pl.Scale())
	}
	seg, ok := pl.Segment(geom.NewLine(geom.Point{100, 100, 100}, geom.Point{0, 0, 100}))
	if !ok {
		t.Fatal("expected a visible segment")
	}
	if seg.X0 != 400+225 || seg.Y0 != 400-225 {
		t.Errorf("scaled endpoint = (%v,%v), want (625,175)", seg.X0, seg.Y0)
	}
	if seg.X1 != 400 || seg.Y1 != 400 {
		t.Errorf("origin maps to (%v,%v), want the surface center", seg.X1, seg.Y1)
	}
}

func TestOrthogonalIgnoresScaleCorrection(t *testing.T) {
	pl := NewPipeline(params(4, 0, true))
	seg, ok := pl.Segment(geom.NewLine(geom.Point{10, 20, 999, 999}, geom.Point{-30, 40, 5, 5}))
	if !ok {
		t.Fatal("orthogonal segments are always visible")
	}
	want := Segment{X0: 410, Y0: 380, X1: 370, Y1: 360}
	if seg != want {
		t.Errorf("Segment = %+v, want %+v", seg, want)
	}
}

func TestRenderCountsHidden(t *testing.T) {
	pl := NewPipeline(params(3, 1, false))
	lines := []geom.Line{
		geom.NewLine(geom.Point{0, 0, 0}, geom.Point{10, 0, 0}),
		geom.NewLine(geom.Point{0, 0, 0}, geom.Point{10, 0, 600}),
		geom.NewLine(geom.Point{0, 0, 0}, geom.Point{0, 10, 0}),
	}
	f := pl.Render(lines)
	if len(f.Segments) != 2 || f.Hidden != 1 {
		t.Fatalf("Render: %d segments, %d hidden; want 2 and 1", len(f.Segments), f.Hidden)
	}
	if f.Side != 800 {
		t.Errorf("Side = %v, want 800", f.Side)
	}
}

func TestRenderTesseractFitsSurface(t *testing.T) {
	lines, err := preset.Hypercube(4, 100)
	if err != nil {
		t.Fatal(err)
	}
	f := NewPipeline(params(4, 1, false)).Render(lines)
	if len(f.Segments) != 32 {
		t.Fatalf("expected all 32 tesseract edges visible, got %d", len(f.Segments))
	}
	for _, s := range f.Segments {
		for _, v := range []float64{s.X0, s.Y0, s.X1, s.Y1} {
			if v < 0 || v > 800 {
				t.Fatalf("segment %+v leaves the surface", s)
			}
		}
	}
}

func TestPalettes(t *testing.T) {
	if PaletteAt(0).Name != PaletteAt(len(Palettes)).Name {
		t.Error("PaletteAt should wrap forward")
	}
	if PaletteAt(-1).Name != Palettes[len(Palettes)-1].Name {
		t.Error("PaletteAt should wrap backward")
	}
	if NextPalette(len(Palettes)-1) != 0 {
		t.Error("NextPalette should wrap to 0")
	}
	if got := Hex(Palettes[0].Line); got != "#00ff80" {
		t.Errorf("Hex = %q, want #00ff80", got)
	}
}

// recordingSurface captures draw calls.
type recordingSurface struct {
	began   bool
	lines   []Segment
	text    []string
	ended   bool
	palette Palette
}

var _ Surface = (*recordingSurface)(nil)

func (r *recordingSurface) Begin(side float64, p Palette) error {
	r.began = true
	r.palette = p
	return nil
}
func (r *recordingSurface) Line(s Segment)         { r.lines = append(r.lines, s) }
func (r *recordingSurface) Text(row int, s string) { r.text = append(r.text, s) }
func (r *recordingSurface) End() error {
	r.ended = true
	return nil
}

func TestDraw(t *testing.T) {
	rec := &recordingSurface{}
	f := Frame{Side: 800, Segments: []Segment{{0, 0, 1, 1}, {2, 2, 3, 3}}}
	if err := Draw(rec, f, Palettes[1], []string{"Dimensions: 3"}); err != nil {
		t.Fatal(err)
	}
	if !rec.began || !rec.ended {
		t.Error("Draw must call Begin and End")
	}
	if len(rec.lines) != 2 || len(rec.text) != 1 {
		t.Errorf("got %d lines and %d text rows", len(rec.lines), len(rec.text))
	}
	if rec.palette.Name != "neon" {
		t.Errorf("palette = %q", rec.palette.Name)
	}
}
