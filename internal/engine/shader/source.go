package shader

import (
	"fmt"
	"io/fs"
)

// Sources holds the GLSL text for both stages of a program.
type Sources struct {
	Vertex   string
	Fragment string
}

// LoadSources reads both stage files from fsys.
func LoadSources(fsys fs.FS, vertexPath, fragmentPath string) (Sources, error) {
	vert, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("reading vertex shader %s: %w", vertexPath, err)
	}

	frag, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("reading fragment shader %s: %w", fragmentPath, err)
	}

	return Sources{Vertex: string(vert), Fragment: string(frag)}, nil
}
