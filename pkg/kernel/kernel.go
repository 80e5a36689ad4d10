// Package kernel defines the geometry kernel used to thicken a wireframe
// into a printable solid. Implementations (sdfx) sit behind the Kernel
// interface so the tessellator never touches a backend directly.
package kernel

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDegenerate is returned for primitives with a non-positive size.
var ErrDegenerate = errors.New("degenerate primitive")

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v*k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max Vec3)
}

// Kernel builds and meshes solids. Primitives are centered at the origin;
// cylinders run along Z.
type Kernel interface {
	// Primitives
	Sphere(radius float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)

	// Boolean operations
	Union(solids ...Solid) Solid

	// Transforms
	Translate(s Solid, v Vec3) Solid
	Rotate(s Solid, v Vec3) Solid // Euler angles in degrees, applied X then Y then Z

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
	SaveSTL(m *Mesh, path string) error
}
