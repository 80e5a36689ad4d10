// Package engine provides the command language for ndwire. It wraps
// zygomys in a sandboxed environment and runs scripts against a copy of a
// scene, so a script that fails part way leaves the caller's scene intact.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/ndwire/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalResult bundles the full output of an evaluation for use by UI bindings.
type EvalResult struct {
	// Scene is the updated scene, or nil when Errors is non-empty.
	Scene *scene.Scene
	// Errors holds parse and runtime errors from user code.
	Errors []EvalError
	// Log holds the tagged state-change messages produced by builtins, in
	// execution order.
	Log []string
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use; each
// call to Evaluate creates a fresh sandboxed environment.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs source against a clone of base.
//
// Return semantics:
//   - On success: returns a result holding the new scene and nil error
//   - On parse/eval failure: returns a result holding Errors and no scene
//   - On fatal failure (timeout, panic): returns nil + error
func (e *Engine) Evaluate(source string, base *scene.Scene) (*EvalResult, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	work := base.Clone()
	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res := e.evaluate(source, work)
		ch <- evalResult{result: res}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string, sc *scene.Scene) *EvalResult {
	res := &EvalResult{}

	// Empty source is a valid program that changes nothing.
	if strings.TrimSpace(source) == "" {
		res.Scene = sc
		return res
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, sc, &res.Log)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		res.Errors = parseZygomysError(err)
		return res
	}

	if _, err := env.Run(); err != nil {
		res.Errors = parseZygomysError(err)
		return res
	}

	res.Scene = sc
	return res
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
