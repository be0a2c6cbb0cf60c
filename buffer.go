package shapes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// coordsPerVertex is the position width of every built-in mesh.
const coordsPerVertex = 3

// Mesh is a static position-only shape and where it sits relative to the
// shape drawn before it.
type Mesh struct {
	Name                string
	Vertices            []float32
	ComponentsPerVertex int
	Primitive           Primitive

	// Offset is applied to the running model-view matrix before drawing,
	// so it is relative to the previous mesh, not to the origin.
	Offset mgl32.Vec3
}

// VertexCount returns the number of whole vertices in m.
func (m Mesh) VertexCount() int {
	if m.ComponentsPerVertex <= 0 {
		return 0
	}
	return len(m.Vertices) / m.ComponentsPerVertex
}

// Validate reports whether the vertex data divides evenly into vertices.
func (m Mesh) Validate() error {
	if m.ComponentsPerVertex < 1 || m.ComponentsPerVertex > 4 {
		return fmt.Errorf("mesh %q: %w: %d components per vertex", m.Name, ErrVertexLayout, m.ComponentsPerVertex)
	}
	if len(m.Vertices) == 0 || len(m.Vertices)%m.ComponentsPerVertex != 0 {
		return fmt.Errorf("mesh %q: %w: %d floats for %d components per vertex",
			m.Name, ErrVertexLayout, len(m.Vertices), m.ComponentsPerVertex)
	}
	return nil
}

// VertexBuffer is an uploaded vertex list and its layout.
type VertexBuffer struct {
	Handle              Buffer
	ComponentsPerVertex int
	VertexCount         int
}

// DefaultMeshes returns the triangle, the square and the custom shape in
// draw order.
func DefaultMeshes() []Mesh {
	return []Mesh{
		{
			Name: "triangle",
			Vertices: []float32{
				0.0, 1.0, 0.0,
				-1.0, -1.0, 0.0,
				1.0, -1.0, 0.0,
			},
			ComponentsPerVertex: coordsPerVertex,
			Primitive:           Triangles,
			Offset:              mgl32.Vec3{-1.5, 1.0, -7.0},
		},
		{
			Name: "square",
			Vertices: []float32{
				1.0, 1.0, 0.0,
				-1.0, 1.0, 0.0,
				1.0, -1.0, 0.0,
				-1.0, -1.0, 0.0,
			},
			ComponentsPerVertex: coordsPerVertex,
			Primitive:           TriangleStrip,
			Offset:              mgl32.Vec3{3.0, 0.0, 0.0},
		},
		{
			Name: "custom shape",
			Vertices: []float32{
				0.0, 1.0, 0.0,
				-1.0, -1.0, 0.0,
				1.0, 1.0, 1.0,
				0.0, 1.0, 0.0,
			},
			ComponentsPerVertex: coordsPerVertex,
			Primitive:           TriangleStrip,
			Offset:              mgl32.Vec3{-1.5, -2.5, 0.0},
		},
	}
}

// UploadMesh copies the mesh positions into a new static array buffer.
func UploadMesh(gl GL, m Mesh) (VertexBuffer, error) {
	if err := m.Validate(); err != nil {
		return VertexBuffer{}, err
	}

	buf := gl.CreateBuffer()
	gl.BindBuffer(buf)
	gl.BufferData(m.Vertices)

	return VertexBuffer{
		Handle:              buf,
		ComponentsPerVertex: m.ComponentsPerVertex,
		VertexCount:         m.VertexCount(),
	}, nil
}
