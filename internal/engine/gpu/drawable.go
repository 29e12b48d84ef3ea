// Package gpu uploads meshes to OpenGL buffers and draws them.
package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/hans8638/opengl-samples/internal/engine/mesh"
	"github.com/hans8638/opengl-samples/internal/engine/shader"
	"github.com/hans8638/opengl-samples/internal/logger"
)

// Drawable is a mesh resident on the GPU: a vertex array with position,
// normal and index buffers.
type Drawable struct {
	vao        uint32
	positions  uint32
	normals    uint32
	indices    uint32
	indexCount int32
}

// Upload validates m and copies it into new GPU buffers.
// GL errors are not checked.
func Upload(m *mesh.Mesh) (*Drawable, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}

	d := &Drawable{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	d.positions = arrayBuffer(m.Positions(), shader.AttribPosition)
	d.normals = arrayBuffer(m.NormalData(), shader.AttribNormal)

	gl.GenBuffers(1, &d.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.indices)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", d.vao),
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", d.indexCount),
	)
	return d, nil
}

// arrayBuffer uploads xyz triples and binds them to attribute loc of the current VAO.
func arrayBuffer(data []float32, loc uint32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
	return buf
}

// Render draws the mesh with the currently bound program.
func (d *Drawable) Render() {
	gl.BindVertexArray(d.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, d.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices drawn per Render.
func (d *Drawable) IndexCount() int {
	return int(d.indexCount)
}

// Destroy releases the buffers and vertex array. Calling it again is a no-op.
func (d *Drawable) Destroy() {
	for _, buf := range []*uint32{&d.positions, &d.normals, &d.indices} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}
