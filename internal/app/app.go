package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hans8638/opengl-samples/internal/config"
	"github.com/hans8638/opengl-samples/internal/engine/camera"
	"github.com/hans8638/opengl-samples/internal/engine/debug"
	"github.com/hans8638/opengl-samples/internal/engine/framebuffer"
	"github.com/hans8638/opengl-samples/internal/engine/gpu"
	"github.com/hans8638/opengl-samples/internal/engine/input"
	"github.com/hans8638/opengl-samples/internal/engine/lighting"
	"github.com/hans8638/opengl-samples/internal/engine/mesh"
	"github.com/hans8638/opengl-samples/internal/engine/renderer"
	"github.com/hans8638/opengl-samples/internal/engine/scene"
	"github.com/hans8638/opengl-samples/internal/engine/shader"
	"github.com/hans8638/opengl-samples/internal/engine/ui"
	"github.com/hans8638/opengl-samples/internal/logger"
	"github.com/hans8638/opengl-samples/pkg/math"
	"github.com/hans8638/opengl-samples/shaders"
)

// App is the running demo.
type App struct {
	cfg *config.Config
	log *zap.Logger

	backend *ui.Backend
	target  *framebuffer.Framebuffer
	program *shader.LightingProgram
	sources fs.FS
	plane   *gpu.Drawable
	cube    *gpu.Drawable

	camera *camera.FreeCamera
	light  *lighting.Light
	scene  *scene.Scene

	panel      *ui.Panel
	tracker    *input.Tracker
	controller *Controller
	watcher    *shader.Watcher
	shots      *debug.ScreenshotCapture

	dirty      bool
	shotQueued bool
}

// New opens the window and creates every GPU resource. Any failure is fatal.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		log:     logger.Named("app"),
		camera:  newCamera(cfg.Camera),
		light:   newLight(cfg.Light),
		tracker: input.NewTracker(),
		dirty:   true,
	}

	var err error
	a.backend, err = ui.NewBackend(cfg.Graphics.Title, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	info := renderer.QueryInfo()
	if err := collectDiagnostics(info).Write(os.Stdout); err != nil {
		return nil, fmt.Errorf("printing diagnostics: %w", err)
	}
	if _, err := info.CheckMinimum(cfg.Graphics.MinGLVersion); err != nil {
		a.log.Warn("cannot check GL version", zap.Error(err))
	}

	if err := a.initGraphics(); err != nil {
		a.Close()
		return nil, err
	}

	format, err := debug.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.shots = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "diffuse", format)

	a.scene = scene.New(a.program, a.target, a.camera, a.light, a.plane, a.cube)
	a.panel = ui.NewPanel(a.light)
	a.controller = NewController(a.camera, a.light, Hooks{
		Redraw:     a.requestRedraw,
		Resize:     a.resizeTarget,
		Screenshot: func() { a.shotQueued = true },
		Quit:       a.backend.Close,
	})

	if cfg.Shaders.Watch {
		a.startWatcher()
	}

	a.log.Info("initialization successful")
	return a, nil
}

func newCamera(cfg config.CameraConfig) *camera.FreeCamera {
	c := camera.NewFreeCamera()
	c.Position = math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}
	c.Rotation = math.Vec3{X: cfg.Rotation[0], Y: cfg.Rotation[1], Z: cfg.Rotation[2]}
	c.RotateSpeed = cfg.RotateSpeed
	c.Perspective(cfg.FOV, 1, cfg.Near, cfg.Far)
	return c
}

func newLight(cfg config.LightConfig) *lighting.Light {
	return &lighting.Light{
		Position:     math.Vec4{cfg.Position[0], cfg.Position[1], cfg.Position[2], 1},
		Reflectivity: math.Vec3{X: cfg.Reflectivity[0], Y: cfg.Reflectivity[1], Z: cfg.Reflectivity[2]},
		Intensity:    math.Vec3{X: cfg.Intensity[0], Y: cfg.Intensity[1], Z: cfg.Intensity[2]},
	}
}

// shaderFS returns the directory shaders are read from.
func shaderFS(cfg config.ShadersConfig) fs.FS {
	if cfg.Dir == "" {
		return shaders.FS
	}
	return os.DirFS(cfg.Dir)
}

func (a *App) initGraphics() error {
	a.sources = shaderFS(a.cfg.Shaders)
	src, err := shader.LoadSources(a.sources, a.cfg.Shaders.Vertex, a.cfg.Shaders.Fragment)
	if err != nil {
		return err
	}
	if a.program, err = shader.NewLightingProgram(src); err != nil {
		return err
	}

	plane, cube := mesh.GroundPlane(), mesh.Cube(mesh.SceneCubeWidth)
	if a.plane, err = gpu.Upload(plane); err != nil {
		return fmt.Errorf("ground plane: %w", err)
	}
	if a.cube, err = gpu.Upload(cube); err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	for name, m := range map[string]*mesh.Mesh{"plane": plane, "cube": cube} {
		b := m.Bounds()
		a.log.Debug("mesh uploaded",
			zap.String("mesh", name),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("indices", len(m.Indices)),
			zap.Any("min", b.Min),
			zap.Any("max", b.Max))
	}

	g := a.cfg.Graphics
	if a.target, err = framebuffer.New(int32(g.Width), int32(g.Height)); err != nil {
		return err
	}
	a.target.ClearColor = g.ClearColor
	return nil
}

func (a *App) startWatcher() {
	if a.cfg.Shaders.Dir == "" {
		a.log.Warn("shader watching needs shaders.dir; built-in shaders cannot change")
		return
	}
	w, err := shader.NewWatcher(a.cfg.Shaders.Dir, a.cfg.Shaders.Vertex, a.cfg.Shaders.Fragment)
	if err != nil {
		a.log.Error("shader watcher disabled", zap.Error(err))
		return
	}
	a.watcher = w
	a.log.Info("watching shaders", zap.String("dir", a.cfg.Shaders.Dir))
}

// Run blocks until the window is closed.
func (a *App) Run() {
	a.backend.Run(a.frame)
}

func (a *App) requestRedraw() {
	a.dirty = true
}

func (a *App) resizeTarget(width, height int) {
	if a.target.Resize(int32(width), int32(height)) {
		a.log.Debug("scene resized", zap.Int("width", width), zap.Int("height", height))
	}
}

// frame runs once per GUI frame: panel, input, shader reload, scene, compositing.
func (a *App) frame() {
	x, y, w, h := a.backend.Viewport()

	panelEvents := a.panel.Draw(x, y, w)
	top := y + a.panel.Height()
	sceneH := max(h-a.panel.Height(), 1)

	for _, e := range a.tracker.Update(input.Poll(x, top, int(w), int(sceneH))) {
		a.controller.Dispatch(e)
	}
	for _, e := range panelEvents {
		a.controller.Dispatch(e)
	}

	if a.watcher != nil && a.watcher.Poll() {
		a.reloadShaders()
	}

	if a.dirty {
		a.scene.Render()
		a.dirty = false
	}
	if a.shotQueued {
		a.shotQueued = false
		a.screenshot()
	}

	a.backend.DrawSceneTexture(x, top, w, sceneH, a.target.ColorTexture())
}

func (a *App) reloadShaders() {
	src, err := shader.LoadSources(a.sources, a.cfg.Shaders.Vertex, a.cfg.Shaders.Fragment)
	if err == nil {
		err = a.program.Reload(src)
	}
	a.backend.SetWindowTitle(windowTitle(a.cfg.Graphics.Title, err))
	if err != nil {
		a.log.Error("shader reload failed, keeping previous program", zap.Error(err))
		return
	}
	a.log.Info("shaders reloaded")
	a.requestRedraw()
}

// windowTitle marks the title while the shaders on disk fail to build.
func windowTitle(base string, reloadErr error) string {
	if reloadErr != nil {
		return base + " [shader error]"
	}
	return base
}

func (a *App) screenshot() {
	w, h := a.target.Size()
	path, err := a.shots.CaptureFromPixels(a.target.ReadPixels(), int(w), int(h))
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	abs, _ := filepath.Abs(path)
	a.log.Info("screenshot saved", zap.String("path", abs))
}

// Close releases GPU resources. It is safe on a partially built App.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing shader watcher", zap.Error(err))
		}
		a.watcher = nil
	}
	if a.plane != nil {
		a.plane.Destroy()
	}
	if a.cube != nil {
		a.cube.Destroy()
	}
	if a.program != nil {
		a.program.Delete()
	}
	if a.target != nil {
		a.target.Destroy()
	}
}
