package preset

import (
	"fmt"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/samber/lo"
)

// baseAxis is the axis held at -side by the hyperpyramid base.
const baseAxis = 1

// HyperpyramidBase returns the base vertices: the hypercube of dims-1
// dimensions with a constant -side inserted at axis 1.
func HyperpyramidBase(dims int, side float64) []geom.Point {
	return lo.Map(HypercubeVertices(dims-1, side), func(v geom.Point, _ int) geom.Point {
		p := make(geom.Point, 0, dims)
		p = append(p, v[:baseAxis]...)
		p = append(p, -side)
		return append(p, v[baseAxis:]...)
	})
}

// HyperpyramidApex returns the apex vertex: +side on axis 1, 0 elsewhere.
func HyperpyramidApex(dims int, side float64) geom.Point {
	p := make(geom.Point, dims)
	p[baseAxis] = side
	return p
}

// Hyperpyramid returns the edges of a pyramid over a (dims-1)-cube base:
// the base cube's edges followed by one edge from every base vertex to the
// apex. It requires dims >= 3.
func Hyperpyramid(dims int, side float64) ([]geom.Line, error) {
	if dims < 3 {
		return nil, fmt.Errorf("%w: hyperpyramid requires dimensions >= 3, got %d", ErrUnsupportedShape, dims)
	}
	base := HyperpyramidBase(dims, side)
	apex := HyperpyramidApex(dims, side)

	lines := hammingEdges(base)
	for _, v := range base {
		lines = append(lines, geom.NewLine(v.Clone(), apex.Clone()))
	}
	return lines, nil
}
