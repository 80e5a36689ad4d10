package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/chazu/ndwire/pkg/rotate"
	"github.com/chazu/ndwire/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPoint wraps a geom.Point so it can be returned from `point` and
// consumed by `line` and `remove-line`.
type sexpPoint struct {
	pt geom.Point
}

func (p *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return "(point " + p.pt.String() + ")"
}
func (p *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpLine wraps a geom.Line returned from `line`.
type sexpLine struct {
	line geom.Line
}

func (l *sexpLine) SexpString(ps *zygo.PrintState) string {
	return "(line " + l.line.String() + ")"
}
func (l *sexpLine) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword handling
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts a whole number from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	f, err := toFloat64(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got %s", s.SexpString(nil))
	}
	return int(f), nil
}

// toBool extracts a boolean from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_forward) and plain strings ("forward").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toDirection converts :forward or :backward to a rotate.Direction.
func toDirection(s zygo.Sexp) (rotate.Direction, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected direction keyword (:forward, :backward): %w", err)
	}
	switch strings.ToLower(name) {
	case "forward":
		return rotate.Forward, nil
	case "backward":
		return rotate.Backward, nil
	}
	return 0, fmt.Errorf("invalid direction %q, expected forward or backward", name)
}

// toPoint extracts a point from a sexpPoint or a list/array of numbers.
func toPoint(s zygo.Sexp) (geom.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.pt, nil
	}
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
	}
	return numbers(items)
}

// numbers converts every item to a float64 coordinate.
func numbers(items []zygo.Sexp) (geom.Point, error) {
	pt := make(geom.Point, len(items))
	for i, item := range items {
		f, err := toFloat64(item)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		pt[i] = f
	}
	return pt, nil
}

// toEndpoints extracts a line's endpoints from either a single sexpLine or
// two point arguments.
func toEndpoints(fn string, args []zygo.Sexp) (geom.Point, geom.Point, error) {
	if len(args) == 1 {
		if l, ok := args[0].(*sexpLine); ok {
			return l.line.A, l.line.B, nil
		}
	}
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s requires two points, got %d arguments", fn, len(args))
	}
	a, err := toPoint(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: first point: %w", fn, err)
	}
	b, err := toPoint(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: second point: %w", fn, err)
	}
	return a, b, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

func sexpInt(n int) zygo.Sexp {
	return &zygo.SexpInt{Val: int64(n)}
}

func sexpBool(b bool) zygo.Sexp {
	return &zygo.SexpBool{Val: b}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the wireframe commands into a zygomys
// environment. The builtins mutate sc and append tagged messages to logs.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens and kebab-case names are recognized.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene, logs *[]string) {
	logf := func(format string, args ...any) {
		*logs = append(*logs, fmt.Sprintf(format, args...))
	}

	// (dimensions) or (dimensions n)
	env.AddFunction("dimensions", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			return sexpInt(sc.Dimensions()), nil
		}
		d, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dimensions: %w", err)
		}
		if err := sc.SetDimensions(d); err != nil {
			return zygo.SexpNull, err
		}
		if d >= scene.HighDimensionNotice {
			logf("[NOTICE] High dimension count (%d). Rendering may be slow.", d)
		}
		logf("[LOG:STATE] Dimensions set to %d.", d)
		return sexpInt(d), nil
	})

	// (point x y ...) with exactly one coordinate per dimension.
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != sc.Dimensions() {
			return zygo.SexpNull, fmt.Errorf("point: got %d coordinates, want %d", len(args), sc.Dimensions())
		}
		pt, err := numbers(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: %w", err)
		}
		return &sexpPoint{pt: pt}, nil
	})

	// (line p1 p2)
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := toEndpoints("line", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := sc.AddLine(a, b); err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		l := geom.NewLine(a.Clone(), b.Clone())
		logf("[LOG:VIEW] Line added: %s", l)
		return &sexpLine{line: l}, nil
	})

	// (remove-line p1 p2) or (remove-line l) returns whether a line was removed.
	env.AddFunction("remove_line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := toEndpoints("remove-line", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		removed, err := sc.RemoveLine(a, b)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("remove-line: %w", err)
		}
		if removed {
			logf("[LOG:VIEW] Line removed: %s", geom.NewLine(a, b))
		} else {
			logf("[NOTICE] Line not found.")
		}
		return sexpBool(removed), nil
	})

	// (clear)
	env.AddFunction("clear", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		sc.Clear()
		logf("[LOG:VIEW] Screen cleared.")
		return zygo.SexpNull, nil
	})

	// (plane) or (plane a b)
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			p := sc.Plane()
			return &zygo.SexpArray{Val: []zygo.Sexp{sexpInt(p.Low), sexpInt(p.High)}}, nil
		}
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("plane requires two axes, got %d arguments", len(args))
		}
		a, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: first axis: %w", err)
		}
		b, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: second axis: %w", err)
		}
		if err := sc.SetPlane(a, b); err != nil {
			return zygo.SexpNull, err
		}
		logf("[LOG:STATE] Rotation plane set to %s.", sc.Plane())
		return zygo.SexpNull, nil
	})

	// (center x y)
	env.AddFunction("center", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("center requires two coordinates, got %d arguments", len(args))
		}
		c, err := numbers(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("center: %w", err)
		}
		if err := sc.SetCenter(c[0], c[1]); err != nil {
			return zygo.SexpNull, err
		}
		logf("[LOG:STATE] Rotation center set to %s.", sc.Center())
		return zygo.SexpNull, nil
	})

	// (rotate :forward) or (rotate :backward 18) returns the degrees rotated
	// so far in that direction.
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 || len(args) > 2 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a direction and optional step count")
		}
		dir, err := toDirection(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		steps := 1
		if len(args) == 2 {
			if steps, err = toInt(args[1]); err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: steps: %w", err)
			}
			if steps < 0 {
				return zygo.SexpNull, fmt.Errorf("rotate: steps must not be negative, got %d", steps)
			}
		}
		deg := sc.RotatedDegrees()
		for i := 0; i < steps; i++ {
			deg = sc.Rotate(dir)
		}
		logf("[LOG:ROTATE] Rotated %.1f degrees in the %s plane.", deg, sc.Plane())
		return &zygo.SexpFloat{Val: deg}, nil
	})

	// (perspective) or (perspective v) returns the stored, clamped value.
	env.AddFunction("perspective", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			return &zygo.SexpFloat{Val: sc.Perspective()}, nil
		}
		v, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("perspective: %w", err)
		}
		got := sc.SetPerspective(v)
		logf("[LOG:STATE] Perspective depth set to %g.", got)
		return &zygo.SexpFloat{Val: got}, nil
	})

	// (scale-correction) toggles; (scale-correction bool) sets.
	env.AddFunction("scale_correction", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		var on bool
		if len(args) == 0 {
			on = sc.ToggleScaleCorrection()
		} else {
			v, err := toBool(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scale-correction: %w", err)
			}
			sc.SetScaleCorrection(v)
			on = v
		}
		logf("[LOG:STATE] Scale correction set to %t.", on)
		return sexpBool(on), nil
	})

	// (preset :hypercube) returns the number of lines added.
	env.AddFunction("preset", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("preset requires a shape name")
		}
		shape, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("preset: %w", err)
		}
		n, err := sc.Preset(shape)
		if err != nil {
			return zygo.SexpNull, err
		}
		logf("[LOG:LOAD] Object %s loaded in %d dimensions.", strings.ToLower(shape), sc.Dimensions())
		return sexpInt(n), nil
	})

	// (line-count)
	env.AddFunction("line_count", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return sexpInt(sc.Len()), nil
	})
}
