package session

import (
	"github.com/chazu/ndwire/pkg/kernel/sdfx"
	"github.com/chazu/ndwire/pkg/render"
	"github.com/chazu/ndwire/pkg/render/raster"
	"github.com/chazu/ndwire/pkg/shapefile"
	"github.com/chazu/ndwire/pkg/tessellate"
)

// SolidCells is the marching cubes resolution used by ExportSolid.
const SolidCells = 120

// ShapeExists reports whether a saved shape with this name exists, so front
// ends can ask before overwriting.
func (s *Session) ShapeExists(name string) bool {
	return s.lib.Exists(name)
}

// ShapeNames lists the saved shapes.
func (s *Session) ShapeNames() ([]string, error) {
	return s.lib.Names()
}

// SaveShape writes the current lines to the shape library. An existing shape
// is replaced only when overwrite is set.
func (s *Session) SaveShape(name string, overwrite bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !shapefile.ValidName(name) {
		s.noticef("[ERROR] Invalid file name %q.", name)
		return "", shapefile.ErrInvalidName
	}
	s.ensureShapeDir()
	if !overwrite && s.lib.Exists(name) {
		s.noticef("[NOTICE] '%s.txt' already exists in folder '%s'.", name, s.lib.Dir)
	}
	path, err := s.lib.Save(name, s.sc.Dimensions(), s.sc.Lines(), overwrite)
	if err != nil {
		return "", err
	}
	s.noticef("[SUCCESS] %d lines saved to file {%s}.", s.sc.Len(), path)
	return path, nil
}

// LoadShape appends a saved shape to the scene. The file must match the
// current dimensionality; a bad file adds nothing.
func (s *Session) LoadShape(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureShapeDir()
	lines, err := s.lib.Load(name, s.sc.Dimensions())
	if err != nil {
		s.noticef("[ERROR] %v", err)
		return 0, err
	}
	next := s.sc.Clone()
	if err := next.AddLines(lines); err != nil {
		s.noticef("[ERROR] %v", err)
		return 0, err
	}
	s.sc = next
	s.noticef("[SUCCESS] %d lines loaded from file {%s}.", len(lines), s.lib.Path(name))
	return len(lines), nil
}

func (s *Session) ensureShapeDir() {
	created, err := s.lib.EnsureDir()
	if err != nil {
		s.noticef("[ERROR] %v", err)
		return
	}
	if created {
		s.noticef("[INFO] Created missing folder: '%s'.", s.lib.Dir)
	}
}

// Screenshot renders the current view, overlay included, to the next free
// PNG in the screenshot directory.
func (s *Session) Screenshot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, created, err := raster.NextScreenshotPath(s.shotDir)
	if err != nil {
		s.noticef("[ERROR] %v", err)
		return "", err
	}
	if created {
		s.noticef("[INFO] Created missing folder: '%s'.", s.shotDir)
	}
	surf := raster.NewFile(path)
	if err := render.Draw(surf, s.frame(), render.PaletteAt(s.palette), s.overlay()); err != nil {
		s.noticef("[ERROR] %v", err)
		return "", err
	}
	s.noticef("[SUCCESS] Saved screenshot as {%s}.", path)
	return path, nil
}

// ExportSolid writes the current view, reduced to three dimensions, as a
// binary STL strut model. Meshing runs outside the session lock.
func (s *Session) ExportSolid(path string, radius float64, cells int) (tessellate.Stats, error) {
	s.mu.Lock()
	sc := s.sc
	s.mu.Unlock()

	st, err := tessellate.Export(sc.Lines(), sc.Params(), sdfx.NewWithCells(cells), radius, path)
	if err != nil {
		s.noticef("[ERROR] %v", err)
		return st, err
	}
	if st.Hidden > 0 {
		s.noticef("[NOTICE] %d lines not visible at this perspective.", st.Hidden)
	}
	s.noticef("[SUCCESS] %d struts (%d triangles) saved to file {%s}.", st.Struts, st.Triangles, path)
	return st, nil
}
