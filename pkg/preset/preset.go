// Package preset generates the vertex and edge sets of standard
// N-dimensional solids as wireframe lines.
//
// Generators are pure: they return new lines and never touch a store.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/chazu/ndwire/pkg/geom"
)

var (
	// ErrUnsupportedShape is returned when a shape cannot exist in the
	// requested dimensionality.
	ErrUnsupportedShape = errors.New("preset: shape not supported in this dimension")
	// ErrUnknownPreset is returned by Lookup for an unregistered name.
	ErrUnknownPreset = errors.New("preset: unknown preset")
)

// Generator builds the lines of a shape in dims dimensions with half-extent side.
type Generator func(dims int, side float64) ([]geom.Line, error)

// Preset names.
const (
	NameHypercube    = "hypercube"
	NameHyperpyramid = "hyperpyramid"
)

var registry = map[string]Generator{
	NameHypercube:    Hypercube,
	NameHyperpyramid: Hyperpyramid,
}

// Lookup returns the generator registered under name (case-insensitive).
func Lookup(name string) (Generator, error) {
	g, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	return g, nil
}

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
