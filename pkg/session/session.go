// Package session drives an interactive wireframe scene for a front end:
// it owns the scene, the command engine, the shape library and the display
// toggles, and reports every state change with the tagged console messages
// the viewers print.
package session

import (
	"log"
	"math"
	"strings"
	"sync"

	"github.com/chazu/ndwire/pkg/engine"
	"github.com/chazu/ndwire/pkg/geom"
	"github.com/chazu/ndwire/pkg/render"
	"github.com/chazu/ndwire/pkg/rotate"
	"github.com/chazu/ndwire/pkg/scene"
	"github.com/chazu/ndwire/pkg/shapefile"
	"github.com/samber/lo"
)

// Rotation speed limits, as multipliers of BaseTPS.
const (
	SpeedMin  = 0.6
	SpeedMax  = 5.0
	SpeedStep = 0.2
	// BaseTPS is the rotation step rate at a speed multiplier of 1.
	BaseTPS = 30
	// LargeListWarning is the line count at which listing lines warrants a
	// confirmation in interactive front ends.
	LargeListWarning = 50
)

// DefaultScreenshotDir is where screenshots are saved unless configured.
const DefaultScreenshotDir = "screenshots"

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Config        scene.Config
	ShapeDir      string
	ScreenshotDir string
	Logger        *log.Logger
	Logging       bool
}

// Session is safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	sc         *scene.Scene
	eng        *engine.Engine
	lib        *shapefile.Library
	shotDir    string
	logger     *log.Logger
	logging    bool
	info       bool
	autoRotate bool
	palette    int
	speed      float64
}

// New returns a session over an empty scene.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg == (scene.Config{}) {
		cfg = scene.DefaultConfig()
	}
	shapeDir := lo.Ternary(opts.ShapeDir == "", shapefile.DefaultDir, opts.ShapeDir)
	shotDir := lo.Ternary(opts.ScreenshotDir == "", DefaultScreenshotDir, opts.ScreenshotDir)
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		sc:      scene.New(cfg),
		eng:     engine.NewEngine(),
		lib:     shapefile.NewLibrary(shapeDir),
		shotDir: shotDir,
		logger:  logger,
		logging: opts.Logging,
		speed:   1,
	}
}

// logf prints a state-change message when logging is on.
func (s *Session) logf(format string, args ...any) {
	if s.logging {
		s.logger.Printf(format, args...)
	}
}

// noticef always prints.
func (s *Session) noticef(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// Snapshot returns the current scene state.
func (s *Session) Snapshot() scene.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sc.Snapshot()
}

// Scene returns a copy of the current scene.
func (s *Session) Scene() *scene.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sc.Clone()
}

// Frame renders the current scene.
func (s *Session) Frame() render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame()
}

func (s *Session) frame() render.Frame {
	return render.NewPipeline(s.sc.Params()).Render(s.sc.Lines())
}

// Overlay returns the info text lines, or nil when the overlay is hidden.
func (s *Session) Overlay() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay()
}

func (s *Session) overlay() []string {
	if !s.info {
		return nil
	}
	return s.sc.Snapshot().Info()
}

// Palette returns the active color palette.
func (s *Session) Palette() render.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.PaletteAt(s.palette)
}

// Evaluate runs a command script. The scene is replaced only when the
// script succeeds.
func (s *Session) Evaluate(source string) (*engine.EvalResult, error) {
	s.mu.Lock()
	base := s.sc
	s.mu.Unlock()

	res, err := s.eng.Evaluate(source, base)
	if err != nil {
		s.noticef("[ERROR] %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range res.Errors {
		s.noticef("[ERROR] %s", e.Error())
	}
	if res.Scene == nil {
		return res, nil
	}
	if s.sc != base {
		s.noticef("[NOTICE] Scene changed while the script ran; script result discarded.")
		res.Scene = nil
		return res, nil
	}
	for _, line := range res.Log {
		s.logf("%s", line)
	}
	s.sc = res.Scene
	return res, nil
}

// Preset appends a named preset shape to the scene.
func (s *Session) Preset(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.sc.Clone()
	n, err := next.Preset(name)
	if err != nil {
		s.noticef("[ERROR] %v", err)
		return 0, err
	}
	s.sc = next
	s.logf("[LOG:LOAD] Object %s loaded in %d dimensions.", strings.ToLower(name), next.Dimensions())
	return n, nil
}

// Rotate turns the scene one step in dir.
func (s *Session) Rotate(dir rotate.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sc.Len() == 0 {
		return
	}
	s.mutate()
	s.sc.Rotate(dir)
}

// ReleaseRotation ends a held rotation, logging the degrees turned, and
// returns them.
func (s *Session) ReleaseRotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sc.RotatedDegrees() == 0 {
		return 0
	}
	s.mutate()
	return s.releaseRotation()
}

func (s *Session) releaseRotation() float64 {
	deg := s.sc.ReleaseRotation()
	if deg != 0 && s.sc.Len() != 0 {
		s.logf("[LOG:ROTATE] Rotated %.1f degrees in the %s plane.", deg, s.sc.Plane())
	}
	return deg
}

// CyclePlane moves to the next (up) or previous rotation plane.
func (s *Session) CyclePlane(up bool) geom.Plane {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutate()
	s.releaseRotation()
	p := s.sc.CyclePlane(up)
	s.logf("[LOG:STATE] Rotation plane set to %s.", p)
	return p
}

// ToggleScaleCorrection flips scale correction.
func (s *Session) ToggleScaleCorrection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutate()
	on := s.sc.ToggleScaleCorrection()
	s.logf("[LOG:VIEW] Scale correction toggle set to %t.", on)
	return on
}

// StepPerspective raises or lowers the perspective depth by one step.
func (s *Session) StepPerspective(up bool) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutate()
	if !s.sc.StepPerspective(lo.Ternary(up, 1, -1)) {
		if up {
			s.noticef("[NOTICE] Perspective depth max limit at %g.", scene.PerspectiveMax)
		} else {
			s.noticef("[NOTICE] Perspective depth min limit at %g.", scene.PerspectiveMin)
		}
		return s.sc.Perspective()
	}
	s.logf("[LOG:VIEW] Perspective depth set to %g.", s.sc.Perspective())
	return s.sc.Perspective()
}

// ToggleAutoRotate switches continuous forward rotation on or off.
func (s *Session) ToggleAutoRotate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoRotate = !s.autoRotate
	s.logf("[LOG:ROTATE] Auto rotate toggle set to %t.", s.autoRotate)
	return s.autoRotate
}

// AutoRotate reports whether auto rotation is on.
func (s *Session) AutoRotate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoRotate
}

// Tick advances auto rotation by one step when it is on.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.autoRotate && s.sc.Len() != 0 {
		s.mutate()
		s.sc.Rotate(rotate.Forward)
	}
}

// StepSpeed raises or lowers the rotation speed multiplier by 0.2 within
// [0.6, 5].
func (s *Session) StepSpeed(up bool) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if up && s.speed >= SpeedMax {
		s.noticef("[NOTICE] Rotation speed max limit at %gx.", SpeedMax)
		return s.speed
	}
	if !up && s.speed <= SpeedMin {
		s.noticef("[NOTICE] Rotation speed min limit at %gx.", SpeedMin)
		return s.speed
	}
	s.speed += lo.Ternary(up, SpeedStep, -SpeedStep)
	s.speed = math.Round(s.speed*10) / 10
	s.logf("[LOG:VIEW] Rotation speed set to %gx.", s.speed)
	return s.speed
}

// Speed returns the rotation speed multiplier.
func (s *Session) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// TPS returns the rotation step rate for the current speed.
func (s *Session) TPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(math.Round(BaseTPS * s.speed))
}

// CyclePalette selects the next palette and returns its index.
func (s *Session) CyclePalette() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palette = render.NextPalette(s.palette)
	s.logf("[LOG:VIEW] Color palette swapped to index %d.", s.palette)
	return s.palette
}

// ToggleInfo shows or hides the info overlay.
func (s *Session) ToggleInfo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = !s.info
	return s.info
}

// ToggleLog switches console logging of state changes.
func (s *Session) ToggleLog() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logging = !s.logging
	s.noticef("[LOG:STATE] Console logging set to %t.", s.logging)
	return s.logging
}

// Logging reports whether state changes are logged.
func (s *Session) Logging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logging
}

// ViewLines lists every stored line. Listings of LargeListWarning lines or
// more print a notice so front ends can ask before showing them.
func (s *Session) ViewLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.sc.Len()
	switch {
	case n == 0:
		s.noticef("[INFO] No lines currently present on the screen.")
	case n >= LargeListWarning:
		s.noticef("[NOTICE] Large number of lines present (%d).", n)
	}
	return s.sc.ViewLines()
}

// mutate gives the session a private scene before an in-place change, so a
// script running against the previous scene value never sees the change.
func (s *Session) mutate() {
	s.sc = s.sc.Clone()
}
