package mesh

import "github.com/hans8638/opengl-samples/pkg/math"

// SceneCubeWidth is the edge length of the cubes placed on the ground plane.
const SceneCubeWidth = 0.5

// cubeFace describes one face of the cube: its outward normal and its four
// corners in counter-clockwise order seen from outside, in units of half the width.
type cubeFace struct {
	normal  math.Vec3
	corners [4]math.Vec3
}

var cubeFaces = [6]cubeFace{
	// front
	{math.Vec3{X: 0, Y: 0, Z: 1}, [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	// right
	{math.Vec3{X: 1, Y: 0, Z: 0}, [4]math.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
	// back
	{math.Vec3{X: 0, Y: 0, Z: -1}, [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}}},
	// left
	{math.Vec3{X: -1, Y: 0, Z: 0}, [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}}},
	// bottom
	{math.Vec3{X: 0, Y: -1, Z: 0}, [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}}},
	// top
	{math.Vec3{X: 0, Y: 1, Z: 0}, [4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
}

// Cube builds an axis-aligned cube of the given edge length centred on the origin.
// Faces do not share vertices, so each face is flat shaded.
func Cube(width float32) *Mesh {
	half := width / 2

	m := &Mesh{
		Vertices: make([]math.Vec3, 0, 24),
		Normals:  make([]math.Vec3, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}

	for _, face := range cubeFaces {
		base := uint16(len(m.Vertices))
		for _, c := range face.corners {
			m.Vertices = append(m.Vertices, c.Scale(half))
			m.Normals = append(m.Normals, face.normal)
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return m
}
