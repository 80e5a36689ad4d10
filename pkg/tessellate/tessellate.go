// Package tessellate thickens a projected wireframe into a solid using a
// geometry kernel. Every visible edge becomes a cylindrical strut and every
// distinct endpoint a spherical joint, so the union prints as one piece.
package tessellate

import (
	"fmt"
	"math"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/chazu/ndwire/pkg/kernel"
	"github.com/chazu/ndwire/pkg/project"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultRadius is the strut radius in model units.
const DefaultRadius = 4.0

// minStrut is the shortest edge that still gets a strut.
const minStrut = 1e-6

// ErrEmpty is returned when no edge of the wireframe survives projection.
var ErrEmpty = errors.New("tessellate: no visible edges")

// Stats summarizes a tessellation.
type Stats struct {
	Struts    int // edges turned into cylinders
	Joints    int // distinct endpoints turned into spheres
	Hidden    int // edges dropped because an endpoint was not visible
	Triangles int // triangles in the mesh, once meshed
}

// Solid projects every line to three coordinates and unions struts of the
// given radius along the visible ones. The lines are not modified.
func Solid(lines []geom.Line, p project.Params, k kernel.Kernel, radius float64) (kernel.Solid, Stats, error) {
	var st Stats
	if radius <= 0 {
		return nil, st, errors.Wrapf(kernel.ErrDegenerate, "tessellate: radius %g", radius)
	}

	pr := project.New(p)
	var parts []kernel.Solid
	joints := map[kernel.Vec3]bool{}

	for i, l := range lines {
		a, okA := lift(pr, l.A)
		b, okB := lift(pr, l.B)
		if !okA || !okB {
			st.Hidden++
			continue
		}

		for _, v := range []kernel.Vec3{a, b} {
			if joints[v] {
				continue
			}
			joints[v] = true
			ball, err := k.Sphere(radius)
			if err != nil {
				return nil, st, errors.Wrapf(err, "tessellate: joint of line %d", i)
			}
			parts = append(parts, k.Translate(ball, v))
			st.Joints++
		}

		if b.Sub(a).Len() < minStrut {
			continue
		}
		s, err := strut(k, a, b, radius)
		if err != nil {
			return nil, st, errors.Wrapf(err, "tessellate: strut of line %d", i)
		}
		parts = append(parts, s)
		st.Struts++
	}

	if len(parts) == 0 {
		return nil, st, ErrEmpty
	}
	return k.Union(parts...), st, nil
}

// Tessellate builds the solid for lines and meshes it.
func Tessellate(lines []geom.Line, p project.Params, k kernel.Kernel, radius float64) (*kernel.Mesh, Stats, error) {
	s, st, err := Solid(lines, p, k, radius)
	if err != nil {
		return nil, st, err
	}
	m, err := k.ToMesh(s)
	if err != nil {
		return nil, st, fmt.Errorf("tessellate: ToMesh failed: %w", err)
	}
	st.Triangles = m.TriangleCount()
	return m, st, nil
}

// Export meshes lines and writes the mesh to path as STL.
func Export(lines []geom.Line, p project.Params, k kernel.Kernel, radius float64, path string) (Stats, error) {
	m, st, err := Tessellate(lines, p, k, radius)
	if err != nil {
		return st, err
	}
	if err := k.SaveSTL(m, path); err != nil {
		return st, fmt.Errorf("tessellate: %w", err)
	}
	return st, nil
}

// lift reduces pt to model space. Two-dimensional points sit at z=0.
func lift(pr *project.Projector, pt geom.Point) (kernel.Vec3, bool) {
	if len(pt) == 2 {
		return kernel.Vec3{X: pt[0], Y: pt[1]}, true
	}
	v, ok := pr.Reduce(pt, 3)
	if !ok {
		return kernel.Vec3{}, false
	}
	return kernel.Vec3{X: v[0], Y: v[1], Z: v[2]}, true
}

// strut returns a cylinder of the given radius running from a to b.
// The kernel cylinder runs along Z, so it is tilted by the polar angle
// about Y, turned by the azimuth about Z, then moved to the midpoint.
func strut(k kernel.Kernel, a, b kernel.Vec3, radius float64) (kernel.Solid, error) {
	d := b.Sub(a)
	length := d.Len()
	cyl, err := k.Cylinder(length, radius)
	if err != nil {
		return nil, err
	}
	polar := math.Acos(lo.Clamp(d.Z/length, -1, 1)) * 180 / math.Pi
	azimuth := math.Atan2(d.Y, d.X) * 180 / math.Pi
	s := k.Rotate(cyl, kernel.Vec3{Y: polar, Z: azimuth})
	return k.Translate(s, a.Add(d.Scale(0.5))), nil
}
