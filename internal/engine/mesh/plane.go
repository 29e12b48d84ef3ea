package mesh

import "github.com/hans8638/opengl-samples/pkg/math"

// Default ground plane dimensions.
const (
	DefaultPlaneSize = 4
	DefaultPlaneDivs = 10
)

// Plane builds a grid of xdivs*zdivs cells in the XZ plane at y=0, centred on the origin.
// Vertices are shared between neighbouring cells and every normal points up.
// Divisions must be positive; they are not validated.
func Plane(xsize, zsize float32, xdivs, zdivs int) *Mesh {
	m := &Mesh{
		Vertices: make([]math.Vec3, 0, (xdivs+1)*(zdivs+1)),
		Normals:  make([]math.Vec3, 0, (xdivs+1)*(zdivs+1)),
		Indices:  make([]uint16, 0, 6*xdivs*zdivs),
	}

	xs2 := xsize / 2
	zs2 := zsize / 2
	zstep := zsize / float32(zdivs)
	xstep := xsize / float32(xdivs)
	up := math.Vec3{X: 0, Y: 1, Z: 0}

	for i := range zdivs + 1 {
		z := zstep*float32(i) - zs2
		for j := range xdivs + 1 {
			x := xstep*float32(j) - xs2
			m.Vertices = append(m.Vertices, math.Vec3{X: x, Y: 0, Z: z})
			m.Normals = append(m.Normals, up)
		}
	}

	for i := range zdivs {
		row := uint16(i * (xdivs + 1))
		next := uint16((i + 1) * (xdivs + 1))
		for j := range xdivs {
			c := uint16(j)
			m.Indices = append(m.Indices,
				row+c, next+c, next+c+1,
				row+c, next+c+1, row+c+1,
			)
		}
	}

	return m
}

// GroundPlane builds the default 4x4 plane with 10x10 divisions.
func GroundPlane() *Mesh {
	return Plane(DefaultPlaneSize, DefaultPlaneSize, DefaultPlaneDivs, DefaultPlaneDivs)
}
