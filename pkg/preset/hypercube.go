package preset

import (
	"fmt"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/samber/lo"
)

// HypercubeVertices returns the 2^dims vertices of {-side,+side}^dims.
// Vertex i (1 <= i < 2^dims) is decoded from the high axis down: axis j is
// +side when the remainder of i is at least 2^j, which is then subtracted.
// The all-minus vertex comes last.
func HypercubeVertices(dims int, side float64) []geom.Point {
	n := 1 << dims
	pts := lo.Times(n-1, func(k int) geom.Point {
		i := k + 1
		p := make(geom.Point, dims)
		for j := dims - 1; j >= 0; j-- {
			if i >= 1<<j {
				p[dims-1-j] = side
				i -= 1 << j
			} else {
				p[dims-1-j] = -side
			}
		}
		return p
	})
	return append(pts, geom.Filled(dims, -side))
}

// Hypercube returns the edges of the hypercube of the given dimensionality:
// every pair of vertices that differ in exactly one coordinate.
func Hypercube(dims int, side float64) ([]geom.Line, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%w: hypercube needs at least 1 dimension, got %d", ErrUnsupportedShape, dims)
	}
	return hammingEdges(HypercubeVertices(dims, side)), nil
}

// hammingEdges connects every vertex pair at Hamming distance one. It is an
// all-pairs comparison, O(V^2 * D).
func hammingEdges(pts []geom.Point) []geom.Line {
	var lines []geom.Line
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if differing(pts[i], pts[j]) == 1 {
				lines = append(lines, geom.NewLine(pts[i].Clone(), pts[j].Clone()))
			}
		}
	}
	return lines
}

func differing(a, b geom.Point) int {
	n := 0
	for k := range a {
		if a[k] != b[k] {
			n++
		}
	}
	return n
}
