// Package camera provides the free-flying camera used to inspect the scene.
package camera

import (
	"github.com/hans8638/opengl-samples/pkg/math"
)

// Default projection and look settings.
const (
	DefaultFOV         = 45.0 // degrees
	DefaultNear        = 0.1
	DefaultFar         = 1000.0
	DefaultRotateSpeed = 0.1 // degrees per pixel
)

// FreeCamera is a fly-through camera. Holding the look button rotates the view
// direction with the mouse; the movement keys step along the view direction,
// the right axis and the up axis.
//
// The view direction is never renormalized, so a movement step has the length
// of whatever the view direction currently is.
type FreeCamera struct {
	// Position in world space.
	Position math.Vec3
	// Rotation in degrees about X, Y and Z applied after the look-at transform.
	Rotation math.Vec3
	// RotateSpeed converts mouse pixels into degrees.
	RotateSpeed float32

	up            math.Vec3
	viewDirection math.Vec3
	rightAxis     math.Vec3

	looking   bool
	lastMouse [2]float32

	fov, aspect, near, far float32
	projection             math.Mat4
}

// NewFreeCamera creates a camera at the origin looking down -Z.
func NewFreeCamera() *FreeCamera {
	c := &FreeCamera{
		RotateSpeed:   DefaultRotateSpeed,
		up:            math.Vec3{X: 0, Y: 1, Z: 0},
		viewDirection: math.Vec3{X: 0, Y: 0, Z: -1},
	}
	c.Perspective(DefaultFOV, 1, DefaultNear, DefaultFar)
	return c
}

// Perspective sets the projection. fov is the vertical field of view in degrees.
func (c *FreeCamera) Perspective(fov, aspect, near, far float32) {
	c.fov, c.aspect, c.near, c.far = fov, aspect, near, far
	c.projection = math.Perspective(math.Radians(fov), aspect, near, far)
}

// Resize updates the aspect ratio for a viewport of the given size.
func (c *FreeCamera) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	c.Perspective(c.fov, float32(width)/float32(height), c.near, c.far)
}

// Projection returns the current projection matrix.
func (c *FreeCamera) Projection() math.Mat4 {
	return c.projection
}

// Aspect returns the projection aspect ratio.
func (c *FreeCamera) Aspect() float32 {
	return c.aspect
}

// FOV returns the vertical field of view in degrees.
func (c *FreeCamera) FOV() float32 {
	return c.fov
}

// ViewMatrix returns the world-to-view transform.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.viewDirection), c.up).
		Rotated(c.Rotation.X, math.Vec3{X: 1}).
		Rotated(c.Rotation.Y, math.Vec3{Y: 1}).
		Rotated(c.Rotation.Z, math.Vec3{Z: 1})
}

// Press enters look mode.
func (c *FreeCamera) Press() {
	c.looking = true
}

// Release leaves look mode.
func (c *FreeCamera) Release() {
	c.looking = false
}

// Looking reports whether the look button is held.
func (c *FreeCamera) Looking() bool {
	return c.looking
}

// UpdateMouse records the cursor position and, in look mode, turns the view
// direction by the movement since the previous call: first around the up axis
// for horizontal movement, then around the new right axis for vertical movement.
// The direction is multiplied as a row vector, so a rotation of -a turns it by +a.
// When the view direction is parallel to up the right axis is zero, and
// math.RotateAxis leaves the direction unchanged instead of scaling it by cos(a).
func (c *FreeCamera) UpdateMouse(x, y float32) {
	if c.looking {
		dx := x - c.lastMouse[0]
		dy := y - c.lastMouse[1]

		c.viewDirection = c.viewDirection.MulMat4(math.Rotate(-dx*c.RotateSpeed, c.up))
		c.rightAxis = c.viewDirection.Cross(c.up)
		c.viewDirection = c.viewDirection.MulMat4(math.Rotate(-dy*c.RotateSpeed, c.rightAxis))
	}

	c.lastMouse = [2]float32{x, y}
}

// Forward moves along the view direction.
func (c *FreeCamera) Forward() {
	c.Position = c.Position.Add(c.viewDirection)
}

// Backward moves against the view direction.
func (c *FreeCamera) Backward() {
	c.Position = c.Position.Sub(c.viewDirection)
}

// LiftUp moves along the up axis.
func (c *FreeCamera) LiftUp() {
	c.Position = c.Position.Add(c.up)
}

// LiftDown moves against the up axis.
func (c *FreeCamera) LiftDown() {
	c.Position = c.Position.Sub(c.up)
}

// StrafeLeft moves against the right axis.
// The right axis stays zero until the first look update.
func (c *FreeCamera) StrafeLeft() {
	c.Position = c.Position.Sub(c.rightAxis)
}

// StrafeRight moves along the right axis.
func (c *FreeCamera) StrafeRight() {
	c.Position = c.Position.Add(c.rightAxis)
}

// ViewDirection returns the current (unnormalized) view direction.
func (c *FreeCamera) ViewDirection() math.Vec3 {
	return c.viewDirection
}

// Up returns the up axis.
func (c *FreeCamera) Up() math.Vec3 {
	return c.up
}

// RightAxis returns the right axis from the last look update.
func (c *FreeCamera) RightAxis() math.Vec3 {
	return c.rightAxis
}
