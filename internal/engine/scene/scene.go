// Package scene draws the ground plane and the three cubes under the point light.
package scene

import (
	"github.com/hans8638/opengl-samples/internal/engine/lighting"
	"github.com/hans8638/opengl-samples/pkg/math"
)

// Program is the shader program a frame is drawn with.
type Program interface {
	Use()
	Unuse()
	SetMVP(m math.Mat4)
	SetMV(m math.Mat4)
	SetNormalMatrix(m math.Mat3)
	SetLight(l lighting.Light)
}

// Drawer draws one uploaded mesh.
type Drawer interface {
	Render()
}

// Surface is the render target. Begin clears it.
type Surface interface {
	Begin()
	End()
}

// Viewer supplies the view and projection transforms.
type Viewer interface {
	ViewMatrix() math.Mat4
	Projection() math.Mat4
}

// Shape selects which mesh an Object uses.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeCube
)

// Object is one placed mesh.
type Object struct {
	Name  string
	Shape Shape
	Model math.Mat4
}

var yAxis = math.Vec3{X: 0, Y: 1, Z: 0}

// Objects returns the fixed placement of the scene contents, in draw order.
func Objects() []Object {
	return []Object{
		{Name: "plane", Shape: ShapePlane, Model: math.Identity()},
		{Name: "cube A", Shape: ShapeCube, Model: math.Identity().Translated(0, 0.25, 0)},
		{Name: "cube B", Shape: ShapeCube, Model: math.Identity().Rotated(45, yAxis).Translated(-1, 0.25, -1)},
		{Name: "cube C", Shape: ShapeCube, Model: math.Identity().Rotated(-30, yAxis).Translated(1, 0.25, -1)},
	}
}

// Frame is every matrix uploaded for one frame.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Normal     math.Mat3
	// MVP holds one matrix per object, in object order.
	MVP []math.Mat4
}

// ComputeFrame builds the matrices for drawing objects from v.
// The model-view matrix is the view matrix for every object, and the normal
// matrix is its upper-left 3x3.
func ComputeFrame(v Viewer, objects []Object) Frame {
	view := v.ViewMatrix()
	proj := v.Projection()
	pv := proj.Mul(view)

	f := Frame{
		View:       view,
		Projection: proj,
		Normal:     view.Mat3(),
		MVP:        make([]math.Mat4, len(objects)),
	}
	for i, o := range objects {
		f.MVP[i] = pv.Mul(o.Model)
	}
	return f
}

// Scene ties the program, meshes, camera and light together.
type Scene struct {
	program Program
	target  Surface
	viewer  Viewer
	light   *lighting.Light
	drawers map[Shape]Drawer
	objects []Object
}

// New creates a scene. light is shared with the control panel and read each frame.
func New(program Program, target Surface, viewer Viewer, light *lighting.Light, plane, cube Drawer) *Scene {
	return &Scene{
		program: program,
		target:  target,
		viewer:  viewer,
		light:   light,
		drawers: map[Shape]Drawer{ShapePlane: plane, ShapeCube: cube},
		objects: Objects(),
	}
}

// Render draws one frame into the target.
func (s *Scene) Render() Frame {
	s.target.Begin()
	defer s.target.End()

	f := ComputeFrame(s.viewer, s.objects)

	s.program.Use()
	s.program.SetLight(*s.light)
	s.program.SetMV(f.View)
	s.program.SetNormalMatrix(f.Normal)

	for i, o := range s.objects {
		s.program.SetMVP(f.MVP[i])
		s.drawers[o.Shape].Render()
	}

	s.program.Unuse()
	return f
}
