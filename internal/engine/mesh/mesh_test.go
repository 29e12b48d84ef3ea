package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hans8638/opengl-samples/pkg/math"
)

func TestCube(t *testing.T) {
	for _, width := range []float32{0.5, 1, 3} {
		m := Cube(width)
		require.NoError(t, m.Validate())

		assert.Len(t, m.Vertices, 24)
		assert.Len(t, m.Normals, 24)
		assert.Len(t, m.Indices, 36)

		half := width / 2
		for i, v := range m.Vertices {
			for _, c := range []float32{v.X, v.Y, v.Z} {
				assert.InDelta(t, half, abs(c), 1e-6, "vertex %d component", i)
			}
		}
		for _, idx := range m.Indices {
			assert.Less(t, int(idx), 24)
		}

		b := m.Bounds()
		assert.Equal(t, math.Vec3{X: -half, Y: -half, Z: -half}, b.Min)
		assert.Equal(t, math.Vec3{X: half, Y: half, Z: half}, b.Max)
	}
}

func TestCubeFaceNormals(t *testing.T) {
	m := Cube(1)
	seen := make(map[math.Vec3]bool)

	for face := 0; face < 6; face++ {
		n := m.Normals[face*4]
		assert.InDelta(t, 1, n.Length(), 1e-6)
		assert.Equal(t, float32(1), abs(n.X)+abs(n.Y)+abs(n.Z), "normal %v is not an axis vector", n)
		for k := 1; k < 4; k++ {
			assert.Equal(t, n, m.Normals[face*4+k], "face %d normal %d", face, k)
		}

		// Every corner of the face lies on the side the normal points to.
		for k := 0; k < 4; k++ {
			assert.InDelta(t, 0.5, m.Vertices[face*4+k].Dot(n), 1e-6)
		}
		seen[n] = true
	}
	assert.Len(t, seen, 6, "each face needs its own axis")
}

func TestCubeWindingFacesOutward(t *testing.T) {
	m := Cube(2)
	for tri := 0; tri < len(m.Indices); tri += 3 {
		a := m.Vertices[m.Indices[tri]]
		b := m.Vertices[m.Indices[tri+1]]
		c := m.Vertices[m.Indices[tri+2]]
		geometric := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, geometric.Dot(m.Normals[m.Indices[tri]]), float32(0), "triangle %d winds inward", tri/3)
	}
}

func TestPlane(t *testing.T) {
	tests := []struct {
		name         string
		xdivs, zdivs int
	}{
		{"default", 10, 10},
		{"single cell", 1, 1},
		{"rectangular", 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Plane(4, 2, tt.xdivs, tt.zdivs)
			require.NoError(t, m.Validate())

			assert.Equal(t, (tt.xdivs+1)*(tt.zdivs+1), m.VertexCount())
			assert.Len(t, m.Indices, 6*tt.xdivs*tt.zdivs)
			for _, n := range m.Normals {
				assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, n)
			}
			for _, v := range m.Vertices {
				assert.Zero(t, v.Y)
			}

			b := m.Bounds()
			assert.InDelta(t, -2, b.Min.X, 1e-6)
			assert.InDelta(t, 2, b.Max.X, 1e-6)
			assert.InDelta(t, -1, b.Min.Z, 1e-6)
			assert.InDelta(t, 1, b.Max.Z, 1e-6)
		})
	}
}

func TestPlaneWindingFacesUp(t *testing.T) {
	m := GroundPlane()
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	for tri := 0; tri < len(m.Indices); tri += 3 {
		a := m.Vertices[m.Indices[tri]]
		b := m.Vertices[m.Indices[tri+1]]
		c := m.Vertices[m.Indices[tri+2]]
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a)).Dot(up), float32(0), "triangle %d", tri/3)
	}
}

func TestPlaneRowLayout(t *testing.T) {
	m := Plane(2, 2, 2, 2)
	// z is the outer loop, x the inner one.
	assert.Equal(t, math.Vec3{X: -1, Y: 0, Z: -1}, m.Vertices[0])
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: -1}, m.Vertices[1])
	assert.Equal(t, math.Vec3{X: -1, Y: 0, Z: 0}, m.Vertices[3])
	assert.Equal(t, []uint16{0, 3, 4, 0, 4, 1}, m.Indices[:6])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
	}{
		{"normal count", Mesh{Vertices: make([]math.Vec3, 3), Normals: make([]math.Vec3, 2), Indices: []uint16{0, 1, 2}}},
		{"partial triangle", Mesh{Vertices: make([]math.Vec3, 3), Normals: make([]math.Vec3, 3), Indices: []uint16{0, 1}}},
		{"index out of range", Mesh{Vertices: make([]math.Vec3, 3), Normals: make([]math.Vec3, 3), Indices: []uint16{0, 1, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.mesh.Validate())
		})
	}
}

func TestFlatten(t *testing.T) {
	m := Cube(1)
	pos := m.Positions()
	nrm := m.NormalData()
	require.Len(t, pos, 72)
	require.Len(t, nrm, 72)
	assert.Equal(t, []float32{-0.5, -0.5, 0.5}, pos[:3])
	assert.Equal(t, []float32{0, 0, 1}, nrm[:3])
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
