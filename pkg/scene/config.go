package scene

import "github.com/chazu/ndwire/pkg/rotate"

// Perspective limits and step.
const (
	PerspectiveMin  = 0.0
	PerspectiveMax  = 5.0
	PerspectiveStep = 0.2
)

// HighDimensionNotice is the dimensionality from which callers should warn
// that rendering may be slow.
const HighDimensionNotice = 10

// Config holds the starting values of a scene.
type Config struct {
	Dimensions      int     // starting dimensionality, >= 2
	Side            float64 // half-extent of generated presets
	SurfaceSide     float64 // side length of the square drawing surface
	Theta           float64 // rotation step in radians
	Perspective     float64 // starting perspective depth
	ScaleCorrection bool
}

// DefaultConfig returns the standard starting configuration.
func DefaultConfig() Config {
	return Config{
		Dimensions:      3,
		Side:            100,
		SurfaceSide:     800,
		Theta:           rotate.DefaultTheta,
		Perspective:     1,
		ScaleCorrection: true,
	}
}

// Half returns half the drawing surface side.
func (c Config) Half() float64 {
	return c.SurfaceSide / 2
}
