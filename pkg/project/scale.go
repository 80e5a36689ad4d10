package project

import "math"

// ScaleFactor returns the multiplier applied to projected coordinates.
// With correction enabled and a non-zero perspective it is
// (2 + 0.25P)^(D-2), an empirical factor that offsets the shrinkage of
// D-2 successive perspective divisions. Otherwise it is 1.
func ScaleFactor(p Params) float64 {
	if !p.ScaleCorrection || p.Orthogonal() {
		return 1
	}
	return math.Pow(2+0.25*p.Perspective, float64(p.Dimensions-2))
}
