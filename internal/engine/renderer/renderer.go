// Package renderer reports the OpenGL context the program runs on.
package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/hans8638/opengl-samples/internal/logger"
)

// Info holds the driver strings of the current context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// QueryInfo reads the driver strings. The context must be current and gl.Init done.
func QueryInfo() Info {
	info := Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	logger.Info("OpenGL context",
		zap.String("vendor", info.Vendor),
		zap.String("renderer", info.Renderer),
		zap.String("version", info.Version),
		zap.String("glsl", info.GLSL),
	)
	return info
}

// Version is a major.minor OpenGL version.
type Version struct {
	Major, Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less reports whether v is older than o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// ParseVersion reads the leading "major.minor" of a GL version string such as
// "4.6.0 NVIDIA 535.54" or "4.1 Metal - 88".
func ParseVersion(s string) (Version, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Version{}, fmt.Errorf("empty version string")
	}
	parts := strings.SplitN(fields[0], ".", 3)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("version %q: want major.minor", s)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("version %q: major: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("version %q: minor: %w", s, err)
	}
	return Version{Major: major, Minor: minor}, nil
}

// CheckMinimum logs a warning when the context is older than minimum.
// It returns false in that case, and an error if either string is unparsable.
func (info Info) CheckMinimum(minimum string) (bool, error) {
	want, err := ParseVersion(minimum)
	if err != nil {
		return false, fmt.Errorf("minimum GL version: %w", err)
	}
	have, err := ParseVersion(info.Version)
	if err != nil {
		return false, fmt.Errorf("context GL version: %w", err)
	}
	if have.Less(want) {
		logger.Warn("OpenGL context older than requested",
			zap.Stringer("have", have),
			zap.Stringer("want", want),
		)
		return false, nil
	}
	return true, nil
}
