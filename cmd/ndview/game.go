package main

import (
	"image/color"

	"github.com/chazu/ndwire/pkg/rotate"
	"github.com/chazu/ndwire/pkg/session"
	"github.com/chazu/ndwire/pkg/tessellate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	textMargin    = 20
	textRowHeight = 20
	hintText      = "Press Tab for info, Esc to quit"
	solidFile     = "wireframe.stl"
)

// binding maps a key press to a session action.
type binding struct {
	key    ebiten.Key
	action func(s *session.Session)
}

// keyBindings are fired once per key press.
var keyBindings = []binding{
	{ebiten.KeyArrowUp, func(s *session.Session) { s.CyclePlane(true) }},
	{ebiten.KeyArrowDown, func(s *session.Session) { s.CyclePlane(false) }},
	{ebiten.KeyQ, func(s *session.Session) { s.ToggleScaleCorrection() }},
	{ebiten.KeyR, func(s *session.Session) { s.ToggleAutoRotate() }},
	{ebiten.KeyEqual, func(s *session.Session) { s.StepPerspective(true) }},
	{ebiten.KeyNumpadAdd, func(s *session.Session) { s.StepPerspective(true) }},
	{ebiten.KeyMinus, func(s *session.Session) { s.StepPerspective(false) }},
	{ebiten.KeyNumpadSubtract, func(s *session.Session) { s.StepPerspective(false) }},
	{ebiten.KeyBracketLeft, func(s *session.Session) { s.StepSpeed(false) }},
	{ebiten.KeyBracketRight, func(s *session.Session) { s.StepSpeed(true) }},
	{ebiten.KeyP, func(s *session.Session) { s.CyclePalette() }},
	{ebiten.KeyTab, func(s *session.Session) { s.ToggleInfo() }},
}

// game implements ebiten.Game over a session.
type game struct {
	s    *session.Session
	side float64
	face text.Face
}

func newGame(s *session.Session, side float64) *game {
	return &game{
		s:    s,
		side: side,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.s.Screenshot()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyE) {
		// Meshing takes seconds; the session reports the outcome in its log.
		go g.s.ExportSolid(solidFile, tessellate.DefaultRadius, session.SolidCells)
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			b.action(g.s)
		}
	}

	g.step(ebiten.IsKeyPressed(ebiten.KeyArrowRight), ebiten.IsKeyPressed(ebiten.KeyArrowLeft))

	if tps := g.s.TPS(); tps != ebiten.TPS() {
		ebiten.SetTPS(tps)
	}
	return nil
}

// step rotates for held arrow keys, or by auto rotation when it is on.
func (g *game) step(right, left bool) {
	if g.s.AutoRotate() {
		g.s.Tick()
		return
	}
	switch {
	case right:
		g.s.Rotate(rotate.Forward)
	case left:
		g.s.Rotate(rotate.Backward)
	default:
		g.s.ReleaseRotation()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	p := g.s.Palette()
	screen.Fill(p.Background)

	for _, seg := range g.s.Frame().Segments {
		vector.StrokeLine(screen,
			float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1),
			1, p.Line, true)
	}

	overlay := g.s.Overlay()
	for i, line := range overlay {
		g.drawText(screen, line, textMargin, float64(textMargin+textRowHeight*i), p.Text)
	}
	if overlay == nil {
		g.drawText(screen, hintText, textMargin, g.side-2*textMargin, p.Text)
	}
}

func (g *game) drawText(screen *ebiten.Image, s string, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.side), int(g.side)
}
