package kernel

import "testing"

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestMeshVertexAndNormal(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 2, 3},
		Normals:  []float32{0, 0, 1, 0, 1, 0},
	}
	if got := m.Vertex(1); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vertex(1) = %v, want {1 2 3}", got)
	}
	if got := m.Normal(1); got != (Vec3{0, 1, 0}) {
		t.Errorf("Normal(1) = %v, want {0 1 0}", got)
	}
}

func TestMeshAddTriangle(t *testing.T) {
	m := &Mesh{}
	up := Vec3{0, 0, 1}
	m.AddTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, up)
	m.AddTriangle(Vec3{1, 0, 0}, Vec3{1, 1, 0}, Vec3{0, 1, 0}, up)

	if m.TriangleCount() != 2 || m.VertexCount() != 6 {
		t.Fatalf("counts = %d triangles, %d vertices; want 2, 6", m.TriangleCount(), m.VertexCount())
	}
	a, b, c := m.Triangle(1)
	if a != (Vec3{1, 0, 0}) || b != (Vec3{1, 1, 0}) || c != (Vec3{0, 1, 0}) {
		t.Errorf("Triangle(1) = %v %v %v", a, b, c)
	}
	if m.Normal(5) != up {
		t.Errorf("Normal(5) = %v, want %v", m.Normal(5), up)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 2}
	b := Vec3{1, 0, 0}
	if got := a.Add(b); got != (Vec3{2, 2, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{0, 2, 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != (Vec3{0.5, 1, 1}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Len(); got != 3 {
		t.Errorf("Len = %v, want 3", got)
	}
}

// --- Compile-time interface check with a stub kernel ---

// stubSolid is a minimal Solid implementation for testing.
type stubSolid struct {
	minBB, maxBB Vec3
}

func (s *stubSolid) BoundingBox() (min, max Vec3) {
	return s.minBB, s.maxBB
}

// stubKernel is a minimal Kernel implementation that proves the interface
// is satisfiable. Only translation moves the bounding box.
type stubKernel struct{}

func (k *stubKernel) Sphere(radius float64) (Solid, error) {
	if radius <= 0 {
		return nil, ErrDegenerate
	}
	r := Vec3{radius, radius, radius}
	return &stubSolid{minBB: r.Scale(-1), maxBB: r}, nil
}

func (k *stubKernel) Cylinder(height, radius float64) (Solid, error) {
	if height <= 0 || radius <= 0 {
		return nil, ErrDegenerate
	}
	return &stubSolid{
		minBB: Vec3{-radius, -radius, -height / 2},
		maxBB: Vec3{radius, radius, height / 2},
	}, nil
}

func (k *stubKernel) Union(solids ...Solid) Solid { return solids[0] }

func (k *stubKernel) Translate(s Solid, v Vec3) Solid {
	min, max := s.BoundingBox()
	return &stubSolid{minBB: min.Add(v), maxBB: max.Add(v)}
}

func (k *stubKernel) Rotate(s Solid, _ Vec3) Solid { return s }

func (k *stubKernel) ToMesh(_ Solid) (*Mesh, error) {
	return &Mesh{}, nil
}

func (k *stubKernel) SaveSTL(_ *Mesh, _ string) error { return nil }

// Compile-time checks that the stubs implement the interfaces.
var _ Solid = (*stubSolid)(nil)
var _ Kernel = (*stubKernel)(nil)

func TestStubKernelTranslateBoundingBox(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Sphere(5)
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	min, max := k.Translate(s, Vec3{10, 20, 30}).BoundingBox()
	if min != (Vec3{5, 15, 25}) {
		t.Errorf("min = %v, want {5 15 25}", min)
	}
	if max != (Vec3{15, 25, 35}) {
		t.Errorf("max = %v, want {15 25 35}", max)
	}
}

func TestStubKernelDegenerate(t *testing.T) {
	var k Kernel = &stubKernel{}
	if _, err := k.Cylinder(0, 1); err != ErrDegenerate {
		t.Errorf("Cylinder(0, 1) error = %v, want ErrDegenerate", err)
	}
}

func TestStubKernelToMesh(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, _ := k.Sphere(1)
	m, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if m == nil {
		t.Fatal("ToMesh() returned nil mesh")
	}
	if !m.IsEmpty() {
		t.Error("stub ToMesh() should return empty mesh")
	}
}
