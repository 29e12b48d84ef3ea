// Package app wires the window, scene, camera, light and panel together.
package app

import (
	"go.uber.org/zap"

	"github.com/hans8638/opengl-samples/internal/engine/camera"
	"github.com/hans8638/opengl-samples/internal/engine/input"
	"github.com/hans8638/opengl-samples/internal/engine/lighting"
	"github.com/hans8638/opengl-samples/internal/logger"
)

// Hooks are the side effects the controller requests from the application.
// Nil hooks are skipped.
type Hooks struct {
	Redraw     func()
	Resize     func(width, height int)
	Screenshot func()
	Quit       func()
}

// Controller applies input events to the camera and the shared light.
type Controller struct {
	camera *camera.FreeCamera
	light  *lighting.Light
	hooks  Hooks
	log    *zap.Logger
}

// NewController creates a controller for cam and light.
func NewController(cam *camera.FreeCamera, light *lighting.Light, hooks Hooks) *Controller {
	return &Controller{
		camera: cam,
		light:  light,
		hooks:  hooks,
		log:    logger.Named("controller"),
	}
}

// Dispatch handles one event synchronously. Every state change is followed by
// exactly one redraw request.
func (c *Controller) Dispatch(e input.Event) {
	switch e.Type {
	case input.EventMouseDown:
		c.camera.Press()
	case input.EventMouseUp:
		c.camera.Release()
	case input.EventMouseMove:
		c.camera.UpdateMouse(e.MouseX, e.MouseY)
		c.redraw()
	case input.EventKeyPress:
		c.key(e.Key)
	case input.EventPanelChange:
		if err := c.light.Set(e.Field, e.Value); err != nil {
			c.log.Warn("ignoring panel change", zap.Error(err))
			return
		}
		c.log.Debug("light changed", zap.Stringer("field", e.Field), zap.Float32("value", e.Value))
		c.redraw()
	case input.EventResize:
		c.camera.Resize(e.Width, e.Height)
		if c.hooks.Resize != nil {
			c.hooks.Resize(e.Width, e.Height)
		}
		c.redraw()
	}
}

func (c *Controller) key(k input.Key) {
	switch k {
	case input.KeyW:
		c.camera.Forward()
	case input.KeyS:
		c.camera.Backward()
	case input.KeyA:
		c.camera.StrafeLeft()
	case input.KeyD:
		c.camera.StrafeRight()
	case input.KeyQ:
		c.camera.LiftUp()
	case input.KeyZ:
		c.camera.LiftDown()
	case input.KeyF12:
		if c.hooks.Screenshot != nil {
			c.hooks.Screenshot()
		}
		return
	case input.KeyEscape:
		if c.hooks.Quit != nil {
			c.hooks.Quit()
		}
		return
	default:
		return
	}
	c.redraw()
}

func (c *Controller) redraw() {
	if c.hooks.Redraw != nil {
		c.hooks.Redraw()
	}
}
