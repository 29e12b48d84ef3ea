// Package config handles loading and saving the demo's settings.
package config

import (
	"fmt"
	"strings"
)

// Config holds all settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Light      LightConfig      `yaml:"light"`
	Shaders    ShadersConfig    `yaml:"shaders"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds window and context settings.
type GraphicsConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// MinGLVersion is the context version below which a warning is logged, e.g. "4.3".
	MinGLVersion string     `yaml:"min_gl_version"`
	ClearColor   [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the startup camera pose and projection.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Rotation    [3]float32 `yaml:"rotation"` // degrees about X, Y, Z
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	RotateSpeed float32    `yaml:"rotate_speed"` // degrees per pixel
}

// LightConfig holds the startup light and material values.
type LightConfig struct {
	Position     [3]float32 `yaml:"position"`
	Reflectivity [3]float32 `yaml:"reflectivity"`
	Intensity    [3]float32 `yaml:"intensity"`
}

// ShadersConfig selects the shader sources.
// An empty Dir uses the sources built into the binary.
type ShadersConfig struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Watch    bool   `yaml:"watch"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:        "diffuse lighting",
			Width:        1280,
			Height:       720,
			MinGLVersion: "4.3",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 5},
			Rotation:    [3]float32{30, 35, 0},
			FOV:         45,
			Near:        0.1,
			Far:         1000,
			RotateSpeed: 0.1,
		},
		Light: LightConfig{
			Position:     [3]float32{5, 5, 5},
			Reflectivity: [3]float32{1, 1, 1},
			Intensity:    [3]float32{1, 1, 1},
		},
		Shaders: ShadersConfig{
			Vertex:   "diffuse.vert",
			Fragment: "diffuse.frag",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: invalid clip range %g..%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera: fov %g out of range", c.Camera.FOV)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("shaders: vertex and fragment names are required")
	}
	switch strings.ToLower(c.Screenshot.Format) {
	case "png", "bmp":
	default:
		return fmt.Errorf("screenshot: unsupported format %q", c.Screenshot.Format)
	}
	return nil
}
