// Package shaders provides the GLSL sources built into the binary.
package shaders

import "embed"

// Default file names inside FS.
const (
	DiffuseVertex   = "diffuse.vert"
	DiffuseFragment = "diffuse.frag"
)

// FS holds the built-in shader sources.
//
//go:embed *.vert *.frag
var FS embed.FS
