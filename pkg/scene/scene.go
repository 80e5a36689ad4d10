// Package scene owns the state of the wireframe engine: dimensionality,
// rotation plane and center, perspective, scale correction and the line
// store. Every operation validates its input before mutating anything, so a
// failed call leaves the scene exactly as it was.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/chazu/ndwire/pkg/preset"
	"github.com/chazu/ndwire/pkg/project"
	"github.com/chazu/ndwire/pkg/rotate"
	"github.com/samber/lo"
)

var (
	// ErrValidation is returned for malformed caller input.
	ErrValidation = errors.New("scene: invalid input")
	// ErrDimensions is returned when a dimensionality below 2 is requested.
	ErrDimensions = errors.New("scene: dimensions must be at least 2")
)

// Scene is the authoritative engine state. It is not safe for concurrent
// use; callers drive it from a single goroutine.
type Scene struct {
	cfg             Config
	dims            int
	plane           geom.Plane
	center          geom.Center
	perspective     float64
	scaleCorrection bool
	store           *geom.Store
	rotator         rotate.Rotator
	tracker         rotate.Tracker
}

// New returns an empty scene configured by cfg. Invalid dimensionality
// falls back to the default.
func New(cfg Config) *Scene {
	if cfg.Dimensions < 2 {
		cfg.Dimensions = DefaultConfig().Dimensions
	}
	return &Scene{
		cfg:             cfg,
		dims:            cfg.Dimensions,
		plane:           geom.DefaultPlane(cfg.Dimensions),
		perspective:     clampPerspective(cfg.Perspective),
		scaleCorrection: cfg.ScaleCorrection,
		store:           geom.NewStore(),
		rotator:         rotate.New(cfg.Theta),
	}
}

// Clone returns an independent deep copy of the scene.
func (s *Scene) Clone() *Scene {
	c := *s
	c.store = s.store.Clone()
	return &c
}

// Config returns the configuration the scene was created with.
func (s *Scene) Config() Config {
	return s.cfg
}

// Dimensions returns the current dimensionality.
func (s *Scene) Dimensions() int {
	return s.dims
}

// Plane returns the current rotation plane.
func (s *Scene) Plane() geom.Plane {
	return s.plane
}

// Center returns the current rotation center.
func (s *Scene) Center() geom.Center {
	return s.center
}

// Perspective returns the current perspective depth.
func (s *Scene) Perspective() float64 {
	return s.perspective
}

// ScaleCorrection reports whether scale correction is enabled.
func (s *Scene) ScaleCorrection() bool {
	return s.scaleCorrection
}

// Len returns the number of stored lines.
func (s *Scene) Len() int {
	return s.store.Len()
}

// Lines returns a deep copy of the stored lines in insertion order.
func (s *Scene) Lines() []geom.Line {
	return s.store.Snapshot()
}

// Params returns the projection parameters for the current state.
func (s *Scene) Params() project.Params {
	return project.Params{
		Dimensions:      s.dims,
		Perspective:     s.perspective,
		Side:            s.cfg.Side,
		Half:            s.cfg.Half(),
		ScaleCorrection: s.scaleCorrection,
	}
}

// checkPoint validates the length of a single point.
func (s *Scene) checkPoint(p geom.Point) error {
	if len(p) != s.dims {
		return fmt.Errorf("%w: point has %d coordinates, want %d", ErrValidation, len(p), s.dims)
	}
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: coordinate %d is not finite", ErrValidation, i)
		}
	}
	return nil
}

// checkEndpoints validates both points of a line.
func (s *Scene) checkEndpoints(a, b geom.Point) error {
	if err := s.checkPoint(a); err != nil {
		return err
	}
	return s.checkPoint(b)
}

func (s *Scene) checkLine(a, b geom.Point) error {
	if err := s.checkEndpoints(a, b); err != nil {
		return err
	}
	if a.Equal(b, 0) {
		return fmt.Errorf("%w: endpoints are identical", ErrValidation)
	}
	return nil
}

// AddLine appends the line a-b. Both points must have exactly Dimensions
// coordinates and differ from each other.
func (s *Scene) AddLine(a, b geom.Point) error {
	if err := s.checkLine(a, b); err != nil {
		return err
	}
	s.store.Add(geom.NewLine(a.Clone(), b.Clone()))
	return nil
}

// AddLines appends every line, or none if any line is invalid. It is the
// bulk path for saved files, so only coordinate counts and finiteness are
// checked; a line whose endpoints coincide is kept as stored.
func (s *Scene) AddLines(lines []geom.Line) error {
	for i, l := range lines {
		if err := s.checkEndpoints(l.A, l.B); err != nil {
			return fmt.Errorf("edge %d: %w", i+1, err)
		}
	}
	s.store.AddAll(lo.Map(lines, func(l geom.Line, _ int) geom.Line {
		return l.Clone()
	}))
	return nil
}

// RemoveLine deletes the first stored line matching a-b in either order and
// reports whether one was found.
func (s *Scene) RemoveLine(a, b geom.Point) (bool, error) {
	if err := s.checkEndpoints(a, b); err != nil {
		return false, err
	}
	return s.store.Remove(geom.NewLine(a, b)), nil
}

// Clear removes every line.
func (s *Scene) Clear() {
	s.store.Clear()
}

// SetDimensions changes the dimensionality. Every stored line is discarded,
// the center resets to (0,0) and the plane to its default.
func (s *Scene) SetDimensions(d int) error {
	if d < 2 {
		return fmt.Errorf("%w: got %d", ErrDimensions, d)
	}
	s.dims = d
	s.store.Clear()
	s.center = geom.Center{}
	s.plane = geom.DefaultPlane(d)
	s.tracker.Release()
	return nil
}

// SetPlane selects the rotation plane spanned by axes a and b and resets
// the center.
func (s *Scene) SetPlane(a, b int) error {
	p, err := geom.NewPlane(a, b, s.dims)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	s.plane = p
	s.center = geom.Center{}
	s.tracker.Release()
	return nil
}

// CyclePlane shifts both plane axes up or down by one and resets the center.
func (s *Scene) CyclePlane(up bool) geom.Plane {
	s.plane = s.plane.Cycle(up, s.dims)
	s.center = geom.Center{}
	s.tracker.Release()
	return s.plane
}

// SetCenter sets the rotation center within the current plane.
func (s *Scene) SetCenter(x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: center must be finite", ErrValidation)
	}
	s.center = geom.Center{X: x, Y: y}
	return nil
}

// Rotate turns every line one step in dir and returns the degrees rotated
// so far in that direction.
func (s *Scene) Rotate(dir rotate.Direction) float64 {
	rotated := s.rotator.Lines(s.store.Lines(), s.plane, s.center, dir)
	s.store.Replace(rotated)
	s.tracker.Add(dir, s.rotator.Degrees())
	return s.tracker.Degrees()
}

// RotatedDegrees returns the degrees rotated since the last release.
func (s *Scene) RotatedDegrees() float64 {
	return s.tracker.Degrees()
}

// ReleaseRotation returns the degrees rotated since the last release and
// resets the total.
func (s *Scene) ReleaseRotation() float64 {
	return s.tracker.Release()
}

// ToggleScaleCorrection flips the scale correction flag and returns it.
func (s *Scene) ToggleScaleCorrection() bool {
	s.scaleCorrection = !s.scaleCorrection
	return s.scaleCorrection
}

// SetScaleCorrection sets the scale correction flag.
func (s *Scene) SetScaleCorrection(on bool) {
	s.scaleCorrection = on
}

// SetPerspective sets the perspective depth, clamped to [0,5], and returns
// the stored value.
func (s *Scene) SetPerspective(v float64) float64 {
	s.perspective = clampPerspective(v)
	return s.perspective
}

// StepPerspective moves the perspective depth by delta steps of 0.2. It
// reports false, leaving the value unchanged, when already at the limit in
// that direction.
func (s *Scene) StepPerspective(delta int) bool {
	if delta == 0 {
		return false
	}
	if delta > 0 && s.perspective >= PerspectiveMax {
		return false
	}
	if delta < 0 && s.perspective <= PerspectiveMin {
		return false
	}
	s.perspective = stepPerspective(s.perspective + float64(delta)*PerspectiveStep)
	return true
}

// Preset appends the named preset generated for the current dimensionality.
// Existing lines are kept. On error nothing is added.
func (s *Scene) Preset(name string) (int, error) {
	gen, err := preset.Lookup(name)
	if err != nil {
		return 0, err
	}
	lines, err := gen(s.dims, s.cfg.Side)
	if err != nil {
		return 0, err
	}
	s.store.AddAll(lines)
	return len(lines), nil
}

// clampPerspective clamps v to the allowed range.
func clampPerspective(v float64) float64 {
	if math.IsNaN(v) {
		return PerspectiveMin
	}
	return lo.Clamp(v, PerspectiveMin, PerspectiveMax)
}

// stepPerspective clamps a stepped value and rounds it to one decimal so
// repeated steps do not drift.
func stepPerspective(v float64) float64 {
	return math.Round(clampPerspective(v)*10) / 10
}
