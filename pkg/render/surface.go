package render

// Surface is a 2-D drawing target. Backends (SVG, DXF, raster) implement it
// so the pipeline output can be written without knowing the format.
type Surface interface {
	// Begin starts a drawing of side x side units in the given palette.
	Begin(side float64, p Palette) error
	// Line draws one segment in surface coordinates.
	Line(s Segment)
	// Text writes a line of overlay text at row (0-based). Backends without
	// text support ignore it.
	Text(row int, s string)
	// End finishes the drawing and flushes it to its destination.
	End() error
}

// Draw writes a frame to a surface, followed by optional overlay text.
func Draw(s Surface, f Frame, p Palette, overlay []string) error {
	if err := s.Begin(f.Side, p); err != nil {
		return err
	}
	for _, seg := range f.Segments {
		s.Line(seg)
	}
	for i, line := range overlay {
		s.Text(i, line)
	}
	return s.End()
}
