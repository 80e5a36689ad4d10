// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"math"

	"github.com/chazu/ndwire/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution along
// the longest side of the bounding box.
const defaultMeshCells = 120

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max kernel.Vec3) {
	bb := s.s.BoundingBox()
	return fromVec(bb.Min), fromVec(bb.Max)
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel with the default mesh resolution.
func New() *SdfxKernel {
	return &SdfxKernel{cells: defaultMeshCells}
}

// NewWithCells returns a kernel that meshes with the given number of
// marching cubes cells. Values below 8 are raised to 8.
func NewWithCells(cells int) *SdfxKernel {
	return &SdfxKernel{cells: max(cells, 8)}
}

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int {
	return k.cells
}

func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func toVec(v kernel.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVec(v v3.Vec) kernel.Vec3 {
	return kernel.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Sphere creates a sphere centered at the origin.
func (k *SdfxKernel) Sphere(radius float64) (kernel.Solid, error) {
	if radius <= 0 {
		return nil, errors.Wrapf(kernel.ErrDegenerate, "sphere radius %g", radius)
	}
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, errors.Wrap(err, "sdfx.Sphere3D")
	}
	return wrap(s), nil
}

// Cylinder creates a cylinder along Z, centered at the origin.
func (k *SdfxKernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	if height <= 0 || radius <= 0 {
		return nil, errors.Wrapf(kernel.ErrDegenerate, "cylinder %gx%g", height, radius)
	}
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, errors.Wrap(err, "sdfx.Cylinder3D")
	}
	return wrap(s), nil
}

// Union returns the union of the given solids.
func (k *SdfxKernel) Union(solids ...kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(lo.Map(solids, func(s kernel.Solid, _ int) sdf.SDF3 {
		return unwrap(s)
	})...))
}

// Translate moves a solid by v.
func (k *SdfxKernel) Translate(s kernel.Solid, v kernel.Vec3) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.Translate3d(toVec(v))))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *SdfxKernel) Rotate(s kernel.Solid, v kernel.Vec3) kernel.Solid {
	xRad := v.X * math.Pi / 180.0
	yRad := v.Y * math.Pi / 180.0
	zRad := v.Z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(unwrap(s), renderer)
	if len(triangles) == 0 {
		return nil, errors.New("sdfx: marching cubes produced no triangles")
	}

	m := &kernel.Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for _, tri := range triangles {
		m.AddTriangle(fromVec(tri[0]), fromVec(tri[1]), fromVec(tri[2]), fromVec(tri.Normal()))
	}
	return m, nil
}

// SaveSTL writes a mesh to path as binary STL.
func (k *SdfxKernel) SaveSTL(m *kernel.Mesh, path string) error {
	if m.IsEmpty() {
		return errors.Wrapf(kernel.ErrDegenerate, "sdfx: empty mesh for %s", path)
	}
	tris := make([]*sdf.Triangle3, m.TriangleCount())
	for i := range tris {
		a, b, c := m.Triangle(i)
		tris[i] = &sdf.Triangle3{toVec(a), toVec(b), toVec(c)}
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return errors.Wrapf(err, "sdfx: save %s", path)
	}
	return nil
}
