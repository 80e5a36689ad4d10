package kernel

// Mesh is a triangle mesh.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AddTriangle appends one flat-shaded triangle with face normal n.
func (m *Mesh) AddTriangle(a, b, c, n Vec3) {
	base := uint32(m.VertexCount())
	for i, v := range []Vec3{a, b, c} {
		m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
		m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
		m.Indices = append(m.Indices, base+uint32(i))
	}
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c Vec3) {
	return m.Vertex(int(m.Indices[i*3])), m.Vertex(int(m.Indices[i*3+1])), m.Vertex(int(m.Indices[i*3+2]))
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) Vec3 {
	return Vec3{
		X: float64(m.Vertices[i*3]),
		Y: float64(m.Vertices[i*3+1]),
		Z: float64(m.Vertices[i*3+2]),
	}
}

// Normal returns the normal stored for vertex i.
func (m *Mesh) Normal(i int) Vec3 {
	return Vec3{
		X: float64(m.Normals[i*3]),
		Y: float64(m.Normals[i*3+1]),
		Z: float64(m.Normals[i*3+2]),
	}
}
