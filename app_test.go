package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/ndwire/pkg/session"
)

// newTestApp returns an App whose shape library and screenshots live in a
// temporary directory.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	return newApp(session.Options{
		ShapeDir:      filepath.Join(dir, "file_shapes"),
		ScreenshotDir: filepath.Join(dir, "screenshots"),
	})
}

// TestE2ETesseractExample exercises the full pipeline: script → engine →
// scene → projection → frame. This is the same path that the Wails Evaluate
// binding takes, but without the Wails runtime.
func TestE2ETesseractExample(t *testing.T) {
	app := newTestApp(t)

	source, err := os.ReadFile("examples/tesseract.lisp")
	if err != nil {
		t.Fatalf("failed to read tesseract.lisp: %v", err)
	}

	result := app.Evaluate(string(source))

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	if got := len(result.Frame.Segments) + result.Frame.Hidden; got != 32 {
		t.Fatalf("expected 32 edges, got %d", got)
	}
	if result.Frame.Side != 800 {
		t.Errorf("expected side 800, got %v", result.Frame.Side)
	}
	if result.Frame.Palette.Background == "" {
		t.Error("no palette colors in frame")
	}
	if len(result.Log) == 0 {
		t.Error("expected log lines from the script")
	}
}

func TestE2EPyramidExample(t *testing.T) {
	app := newTestApp(t)

	source, err := os.ReadFile("examples/pyramid_and_axes.lisp")
	if err != nil {
		t.Fatalf("failed to read pyramid_and_axes.lisp: %v", err)
	}

	result := app.Evaluate(string(source))
	if len(result.Errors) > 0 {
		t.Fatalf("eval errors: %v", result.Errors)
	}

	// 4-cube base (32 edges) + 16 apex edges + 3 axes.
	if got := len(result.Frame.Segments) + result.Frame.Hidden; got != 51 {
		t.Errorf("expected 51 edges, got %d", got)
	}
}

// TestE2EEmptySource ensures the pipeline handles empty input gracefully.
func TestE2EEmptySource(t *testing.T) {
	app := newTestApp(t)
	result := app.Evaluate("")

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors for empty source: %v", result.Errors)
	}
	if len(result.Frame.Segments) != 0 {
		t.Errorf("expected 0 segments for empty source, got %d", len(result.Frame.Segments))
	}
}

// TestE2ESyntaxError ensures eval errors are reported, not fatal errors.
func TestE2ESyntaxError(t *testing.T) {
	app := newTestApp(t)
	result := app.Evaluate("(preset :hypercube")

	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if len(result.Frame.Segments) != 0 {
		t.Errorf("expected 0 segments on error, got %d", len(result.Frame.Segments))
	}
}

// TestE2EWorkedExample checks the corner (100,100,100) of a cube lands on
// (500,300) with scale correction off.
func TestE2EWorkedExample(t *testing.T) {
	app := newTestApp(t)
	result := app.Evaluate(`(scale-correction false) (line (point 100 100 100) (point -100 100 100))`)
	if len(result.Errors) > 0 {
		t.Fatalf("eval errors: %v", result.Errors)
	}
	if len(result.Frame.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result.Frame.Segments))
	}
	s := result.Frame.Segments[0]
	if s.X0 != 500 || s.Y0 != 300 {
		t.Errorf("first endpoint = (%v,%v), want (500,300)", s.X0, s.Y0)
	}
	if s.X1 != 300 || s.Y1 != 300 {
		t.Errorf("second endpoint = (%v,%v), want (300,300)", s.X1, s.Y1)
	}
}

// TestE2ELoadExampleShape loads a shape file through the library.
func TestE2ELoadExampleShape(t *testing.T) {
	dir := t.TempDir()
	app := newApp(session.Options{ShapeDir: dir})

	data, err := os.ReadFile("examples/triangle.txt")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "triangle.txt"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	frame, err := app.LoadShape("triangle")
	if err != nil {
		t.Fatalf("LoadShape: %v", err)
	}
	if len(frame.Segments) != 3 {
		t.Errorf("expected 3 segments, got %d", len(frame.Segments))
	}
}
