// Package mesh builds the vertex, normal and index arrays for the primitive shapes in the scene.
package mesh

import (
	"fmt"

	"github.com/hans8638/opengl-samples/pkg/math"
)

// Mesh holds indexed triangle geometry ready for GPU upload.
// Vertices and Normals are parallel arrays; every three Indices form one triangle.
type Mesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	Indices  []uint16
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Validate checks the structural invariants of the mesh.
func (m *Mesh) Validate() error {
	if len(m.Vertices) != len(m.Normals) {
		return fmt.Errorf("vertex/normal count mismatch: %d vertices, %d normals", len(m.Vertices), len(m.Normals))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Positions flattens the vertex positions as x, y, z triples.
func (m *Mesh) Positions() []float32 {
	return flatten(m.Vertices)
}

// NormalData flattens the normals as x, y, z triples.
func (m *Mesh) NormalData() []float32 {
	return flatten(m.Normals)
}

// Bounds returns the bounding box of the vertex positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = math.Vec3{X: min(b.Min.X, v.X), Y: min(b.Min.Y, v.Y), Z: min(b.Min.Z, v.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, v.X), Y: max(b.Max.Y, v.Y), Z: max(b.Max.Z, v.Z)}
	}
	return b
}

func flatten(vs []math.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}
