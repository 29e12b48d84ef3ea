package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hans8638/opengl-samples/internal/engine/renderer"
)

func TestDiagnosticsWrite(t *testing.T) {
	d := Diagnostics{
		SDL:   "2.30.1",
		ImGui: "1.91.0",
		GL: renderer.Info{
			Vendor:   "Mesa",
			Renderer: "llvmpipe",
			Version:  "4.5 (Core Profile) Mesa 24.0.5",
			GLSL:     "4.50",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))

	assert.Equal(t, ""+
		"SDL version: 2.30.1\n"+
		"Dear ImGui version: 1.91.0\n"+
		"OpenGL vendor: Mesa\n"+
		"OpenGL renderer: llvmpipe\n"+
		"OpenGL version: 4.5 (Core Profile) Mesa 24.0.5\n"+
		"GLSL version: 4.50\n", buf.String())
}
