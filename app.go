package main

import (
	"context"
	"log"

	"github.com/chazu/ndwire/pkg/render"
	"github.com/chazu/ndwire/pkg/rotate"
	"github.com/chazu/ndwire/pkg/session"
	"github.com/chazu/ndwire/pkg/tessellate"
	"github.com/samber/lo"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx     context.Context
	session *session.Session
}

// SegmentData is one projected line in surface pixels.
type SegmentData struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// PaletteData carries the active colors as #rrggbb strings.
type PaletteData struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Line       string `json:"line"`
	Text       string `json:"text"`
}

// FrameData is everything the frontend needs to paint one frame.
type FrameData struct {
	Side     float64       `json:"side"`
	Segments []SegmentData `json:"segments"`
	Hidden   int           `json:"hidden"`
	Info     []string      `json:"info"`
	Palette  PaletteData   `json:"palette"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Frame  FrameData       `json:"frame"`
	Errors []EvalErrorData `json:"errors"`
	Log    []string        `json:"log"`
}

// NewApp creates a new App over a fresh session.
func NewApp() *App {
	return newApp(session.Options{Logging: true})
}

func newApp(opts session.Options) *App {
	return &App{session: session.New(opts)}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	log.Printf("[LOG:STATE] Session started with %d dimensions.", a.session.Snapshot().Dimensions)
}

// Evaluate runs a command script and returns the resulting frame + errors.
// This is the primary binding called by the frontend command panel.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Errors: []EvalErrorData{},
		Log:    []string{},
	}

	res, err := a.session.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		result.Frame = a.Frame()
		return result
	}

	for _, e := range res.Errors {
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    e.Line,
			Col:     e.Col,
			Message: e.Message,
		})
	}
	if len(res.Errors) == 0 {
		result.Log = append(result.Log, res.Log...)
	}
	result.Frame = a.Frame()
	return result
}

// Frame renders the current scene.
func (a *App) Frame() FrameData {
	f := a.session.Frame()
	p := a.session.Palette()
	info := a.session.Overlay()
	if info == nil {
		info = []string{}
	}
	return FrameData{
		Side: f.Side,
		Segments: lo.Map(f.Segments, func(s render.Segment, _ int) SegmentData {
			return SegmentData{X0: s.X0, Y0: s.Y0, X1: s.X1, Y1: s.Y1}
		}),
		Hidden: f.Hidden,
		Info:   info,
		Palette: PaletteData{
			Name:       p.Name,
			Background: render.Hex(p.Background),
			Line:       render.Hex(p.Line),
			Text:       render.Hex(p.Text),
		},
	}
}

// Rotate turns the scene one step; forward is clockwise on screen.
func (a *App) Rotate(forward bool) FrameData {
	a.session.Rotate(lo.Ternary(forward, rotate.Forward, rotate.Backward))
	return a.Frame()
}

// ReleaseRotation is called when the rotate key is released.
func (a *App) ReleaseRotation() float64 {
	return a.session.ReleaseRotation()
}

// Tick advances auto rotation.
func (a *App) Tick() FrameData {
	a.session.Tick()
	return a.Frame()
}

// CyclePlane selects the next or previous rotation plane.
func (a *App) CyclePlane(up bool) FrameData {
	a.session.CyclePlane(up)
	return a.Frame()
}

// StepPerspective raises or lowers the perspective depth.
func (a *App) StepPerspective(up bool) FrameData {
	a.session.StepPerspective(up)
	return a.Frame()
}

// StepSpeed raises or lowers the rotation speed and returns the step rate
// the frontend should tick at.
func (a *App) StepSpeed(up bool) int {
	a.session.StepSpeed(up)
	return a.session.TPS()
}

// ToggleScaleCorrection flips scale correction.
func (a *App) ToggleScaleCorrection() FrameData {
	a.session.ToggleScaleCorrection()
	return a.Frame()
}

// ToggleAutoRotate flips auto rotation.
func (a *App) ToggleAutoRotate() bool {
	return a.session.ToggleAutoRotate()
}

// CyclePalette selects the next color palette.
func (a *App) CyclePalette() FrameData {
	a.session.CyclePalette()
	return a.Frame()
}

// ToggleInfo shows or hides the info overlay.
func (a *App) ToggleInfo() FrameData {
	a.session.ToggleInfo()
	return a.Frame()
}

// ToggleLog switches console logging.
func (a *App) ToggleLog() bool {
	return a.session.ToggleLog()
}

// ViewLines lists every stored line.
func (a *App) ViewLines() []string {
	return a.session.ViewLines()
}

// LargeListWarning is the line count at which the frontend asks before
// listing lines.
func (a *App) LargeListWarning() int {
	return session.LargeListWarning
}

// ShapeExists reports whether a saved shape already uses name.
func (a *App) ShapeExists(name string) bool {
	return a.session.ShapeExists(name)
}

// ShapeNames lists the saved shapes.
func (a *App) ShapeNames() ([]string, error) {
	return a.session.ShapeNames()
}

// SaveShape writes the scene to the shape library.
func (a *App) SaveShape(name string, overwrite bool) (string, error) {
	return a.session.SaveShape(name, overwrite)
}

// LoadShape appends a saved shape to the scene.
func (a *App) LoadShape(name string) (FrameData, error) {
	if _, err := a.session.LoadShape(name); err != nil {
		return FrameData{}, err
	}
	return a.Frame(), nil
}

// Screenshot saves the current view as a PNG and returns its path.
func (a *App) Screenshot() (string, error) {
	return a.session.Screenshot()
}

// ExportSolid saves the current view as an STL strut model and returns the
// number of struts written.
func (a *App) ExportSolid(path string) (int, error) {
	st, err := a.session.ExportSolid(path, tessellate.DefaultRadius, session.SolidCells)
	return st.Struts, err
}
