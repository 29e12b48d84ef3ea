package app

import (
	"fmt"
	"io"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hans8638/opengl-samples/internal/engine/renderer"
)

// Diagnostics is the toolkit and driver information printed at startup.
type Diagnostics struct {
	SDL   string
	ImGui string
	GL    renderer.Info
}

func collectDiagnostics(info renderer.Info) Diagnostics {
	var v sdl.Version
	sdl.GetVersion(&v)

	return Diagnostics{
		SDL:   fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch),
		ImGui: imgui.Version(),
		GL:    info,
	}
}

// Write prints one "name: value" line per item.
func (d Diagnostics) Write(w io.Writer) error {
	lines := [][2]string{
		{"SDL version", d.SDL},
		{"Dear ImGui version", d.ImGui},
		{"OpenGL vendor", d.GL.Vendor},
		{"OpenGL renderer", d.GL.Renderer},
		{"OpenGL version", d.GL.Version},
		{"GLSL version", d.GL.GLSL},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}
