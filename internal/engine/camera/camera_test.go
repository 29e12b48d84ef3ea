package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/hans8638/opengl-samples/pkg/math"
)

const eps = 1e-5

func near(t *testing.T, want, got math.Vec3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msg)
	assert.InDelta(t, want.Y, got.Y, eps, msg)
	assert.InDelta(t, want.Z, got.Z, eps, msg)
}

func matNear(t *testing.T, want mgl32.Mat4, got math.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d of %v", i, got)
	}
}

func TestNewFreeCamera(t *testing.T) {
	c := NewFreeCamera()

	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: -1}, c.ViewDirection())
	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, c.Up())
	assert.Equal(t, math.Vec3{}, c.RightAxis())
	assert.False(t, c.Looking())
	assert.Equal(t, float32(DefaultFOV), c.FOV())
}

func TestForwardBackwardInverse(t *testing.T) {
	c := NewFreeCamera()
	c.Position = math.Vec3{X: 0, Y: 0, Z: 5}

	c.Forward()
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 4}, c.Position)

	c.Backward()
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 5}, c.Position)
}

func TestLift(t *testing.T) {
	c := NewFreeCamera()
	c.LiftUp()
	c.LiftUp()
	c.LiftDown()
	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, c.Position)
}

func TestStrafeBeforeLookIsNoop(t *testing.T) {
	c := NewFreeCamera()
	c.Position = math.Vec3{X: 1, Y: 2, Z: 3}

	c.StrafeLeft()
	c.StrafeRight()
	c.StrafeRight()
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, c.Position)
}

func TestMouseLookHorizontal(t *testing.T) {
	c := NewFreeCamera()

	c.UpdateMouse(100, 100)
	c.Press()
	c.UpdateMouse(110, 100)

	// 10 px at 0.1 deg/px is 1 degree, turning toward -X.
	s, co := math32.Sincos(math.Radians(1))
	near(t, math.Vec3{X: -s, Y: 0, Z: -co}, c.ViewDirection(), "view direction")
	near(t, c.ViewDirection().Cross(c.Up()), c.RightAxis(), "right axis")
	assert.InDelta(t, 1, c.ViewDirection().Length(), eps)
}

func TestMouseLookVertical(t *testing.T) {
	c := NewFreeCamera()

	c.Press()
	c.UpdateMouse(0, 100)

	// Right axis of (0,0,-1) x (0,1,0) is (1,0,0); 10 degrees about it tips the view upward
	// in the row-vector convention.
	want := mgl32.HomogRotate3D(mgl32.DegToRad(10), mgl32.Vec3{1, 0, 0}).Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	near(t, math.Vec3{X: want[0], Y: want[1], Z: want[2]}, c.ViewDirection(), "view direction")
	near(t, math.Vec3{X: 1, Y: 0, Z: 0}, c.RightAxis(), "right axis")
}

func TestMouseMoveWithoutPress(t *testing.T) {
	c := NewFreeCamera()

	c.UpdateMouse(250, 40)
	c.UpdateMouse(10, 300)

	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: -1}, c.ViewDirection())
	assert.Equal(t, math.Vec3{}, c.RightAxis())
}

func TestPressReleaseKeepsLastPosition(t *testing.T) {
	c := NewFreeCamera()

	c.UpdateMouse(50, 50)
	c.Press()
	c.Release()
	c.Press()
	c.UpdateMouse(50, 50)

	near(t, math.Vec3{X: 0, Y: 0, Z: -1}, c.ViewDirection(), "zero delta")

	c.Release()
	assert.False(t, c.Looking())
}

func TestStrafeAfterLook(t *testing.T) {
	c := NewFreeCamera()
	c.Press()
	c.UpdateMouse(0, 0)

	c.StrafeRight()
	near(t, math.Vec3{X: 1, Y: 0, Z: 0}, c.Position, "strafe right")

	c.StrafeLeft()
	c.StrafeLeft()
	near(t, math.Vec3{X: -1, Y: 0, Z: 0}, c.Position, "strafe left")
}

func TestResize(t *testing.T) {
	c := NewFreeCamera()
	c.Position = math.Vec3{X: 0, Y: 0, Z: 5}

	c.Resize(1280, 720)

	assert.InDelta(t, 1280.0/720.0, c.Aspect(), eps)
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 5}, c.Position)

	want := mgl32.Perspective(mgl32.DegToRad(45), 1280.0/720.0, 0.1, 1000)
	matNear(t, want, c.Projection())

	c.Resize(640, 0)
	assert.InDelta(t, 640, c.Aspect(), eps)
}

func TestViewMatrix(t *testing.T) {
	c := NewFreeCamera()
	c.Position = math.Vec3{X: 0, Y: 0, Z: 5}
	c.Rotation = math.Vec3{X: 30, Y: 35, Z: 0}

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(35)))

	got := c.ViewMatrix()
	matNear(t, want, got)
}

func TestLookStraightUpKeepsDirection(t *testing.T) {
	c := NewFreeCamera()
	c.viewDirection = c.Up()

	c.Press()
	c.UpdateMouse(0, 0)
	c.UpdateMouse(0, 40)

	assert.Equal(t, math.Vec3{}, c.RightAxis())
	near(t, c.Up(), c.ViewDirection(), "vertical look around a zero right axis")
}
