package engine

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chazu/ndwire/pkg/scene"
)

func newScene() *scene.Scene {
	return scene.New(scene.DefaultConfig())
}

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()
	base := newScene()

	res, err := eng.Evaluate("", base)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if res.Scene == nil {
		t.Fatal("expected non-nil scene")
	}
	if res.Scene == base {
		t.Error("expected a copy of the scene, got the original")
	}
	if res.Scene.Len() != 0 {
		t.Errorf("expected empty scene, got %d lines", res.Scene.Len())
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	res, err := eng.Evaluate("   \n\t  \n  ", newScene())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if res.Scene == nil {
		t.Fatal("expected non-nil scene")
	}
}

func TestEvaluateValidExpression(t *testing.T) {
	eng := NewEngine()

	// (+ 1 2) is valid Lisp that touches no scene state.
	res, err := eng.Evaluate("(+ 1 2)", newScene())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if res.Scene.Len() != 0 {
		t.Errorf("expected no lines, got %d", res.Scene.Len())
	}
}

func TestEvaluateMultipleExpressions(t *testing.T) {
	eng := NewEngine()

	source := `
(def x 10)
(def y 20)
(+ x y)
`
	res, err := eng.Evaluate(source, newScene())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if res.Scene == nil {
		t.Fatal("expected non-nil scene")
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine()

	// Unmatched paren is a parse error.
	res, err := eng.Evaluate("(+ 1 2", newScene())
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res.Scene != nil {
		t.Fatal("expected nil scene on syntax error")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected at least one eval error for syntax error")
	}
	if res.Errors[0].Message == "" {
		t.Error("eval error message should not be empty")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	eng := NewEngine()

	res, err := eng.Evaluate("(+ 1 undefined-symbol)", newScene())
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res.Scene != nil {
		t.Fatal("expected nil scene on eval error")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvaluateSyntaxErrorHasLineInfo(t *testing.T) {
	eng := NewEngine()

	source := "(+ 1 2)\n(+ 3"
	res, err := eng.Evaluate(source, newScene())
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected at least one eval error")
	}

	// Line info depends on the zygomys error format; only the message is
	// guaranteed.
	e := res.Errors[0]
	if e.Message == "" {
		t.Error("eval error message should not be empty")
	}
	if e.Line > 0 {
		t.Logf("extracted line info: line=%d, message=%q", e.Line, e.Message)
	} else {
		t.Logf("no line info extracted (line=0), message=%q", e.Message)
	}
}

func TestEvalErrorImplementsError(t *testing.T) {
	e := EvalError{Line: 5, Col: 0, Message: "something went wrong"}
	s := e.Error()
	if !strings.Contains(s, "line 5") {
		t.Errorf("Error() should contain line info, got: %s", s)
	}
	if !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() should contain message, got: %s", s)
	}

	e2 := EvalError{Line: 0, Col: 0, Message: "no location"}
	if strings.Contains(e2.Error(), "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", e2.Error())
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := NewEngine()
	base := newScene()

	for i := 0; i < 5; i++ {
		res, err := eng.Evaluate("(preset :hypercube)", base)
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if len(res.Errors) > 0 {
			t.Fatalf("iteration %d: unexpected eval errors: %v", i, res.Errors)
		}
		if res.Scene.Len() != 12 {
			t.Errorf("iteration %d: expected 12 lines, got %d", i, res.Scene.Len())
		}
	}
	if base.Len() != 0 {
		t.Errorf("base scene was modified: %d lines", base.Len())
	}
}

func TestEvaluateTimeout(t *testing.T) {
	// Drive waitWithTimeout directly with a channel that never sends, rather
	// than relying on a zygomys program that loops forever.
	var mu sync.Mutex
	var gen uint64 = 1
	ch := make(chan evalResult)

	done := make(chan struct{})
	var resultErr error

	go func() {
		defer close(done)
		_, resultErr = waitWithTimeout(ch, 1, &mu, &gen)
	}()

	select {
	case <-done:
		if resultErr == nil {
			t.Fatal("expected timeout error, got nil")
		}
		if !strings.Contains(resultErr.Error(), "timed out") {
			t.Errorf("expected timeout error message, got: %v", resultErr)
		}
	case <-time.After(EvalTimeout + 2*time.Second):
		t.Fatal("test itself timed out waiting for evaluation timeout")
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(2)

	ch := make(chan evalResult, 1)
	ch <- evalResult{result: &EvalResult{}}

	_, err := waitWithTimeout(ch, 1, &mu, &gen)
	if err == nil {
		t.Fatal("expected error for stale generation")
	}
	if !strings.Contains(err.Error(), "superseded") {
		t.Errorf("expected superseded error, got: %v", err)
	}
}

func TestWaitPassesFatalError(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(1)

	ch := make(chan evalResult, 1)
	ch <- evalResult{err: errString("panic during evaluation: boom")}

	res, err := waitWithTimeout(ch, 1, &mu, &gen)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if res != nil {
		t.Error("expected nil result with fatal error")
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "error on line format",
			msg:      "Error on line 5: unexpected token\n",
			wantLine: 5,
			wantMsg:  "unexpected token",
		},
		{
			name:     "no line info",
			msg:      "some generic error",
			wantLine: 0,
			wantMsg:  "some generic error",
		},
		{
			name:     "line format lowercase",
			msg:      "error on line 12: missing paren",
			wantLine: 12,
			wantMsg:  "missing paren",
		},
		{
			name:     "short line format",
			msg:      "line 3: point: got 2 coordinates, want 3",
			wantLine: 3,
			wantMsg:  "want 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseZygomysError(errString(tt.msg))
			if len(errs) == 0 {
				t.Fatal("expected at least one error")
			}
			e := errs[0]
			if e.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", e.Line, tt.wantLine)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", e.Message, tt.wantMsg)
			}
		})
	}
}

// errString is a simple error type for testing.
type errString string

func (e errString) Error() string { return string(e) }
