package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/hans8638/opengl-samples/internal/engine/lighting"
	"github.com/hans8638/opengl-samples/pkg/math"
)

// Uniform names expected in the lighting program.
const (
	UniformMVP          = "MVP"
	UniformMV           = "MV"
	UniformNormalMatrix = "NormalMatrix"
	UniformLightPos     = "lightPos"
	UniformKd           = "Kd"
	UniformLd           = "Ld"
)

// Vertex attribute locations.
const (
	AttribPosition = 0
	AttribNormal   = 1
)

// LightingProgram is the linked diffuse lighting program and its uniform slots.
type LightingProgram struct {
	id uint32

	locMVP          int32
	locMV           int32
	locNormalMatrix int32
	locLightPos     int32
	locKd           int32
	locLd           int32
}

// NewLightingProgram compiles src and resolves the uniform slots.
func NewLightingProgram(src Sources) (*LightingProgram, error) {
	p := &LightingProgram{}
	if err := p.load(src); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *LightingProgram) load(src Sources) error {
	id, err := CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return fmt.Errorf("lighting program: %w", err)
	}

	p.id = id
	p.locMVP = GetUniform(id, UniformMVP)
	p.locMV = GetUniform(id, UniformMV)
	p.locNormalMatrix = GetUniform(id, UniformNormalMatrix)
	p.locLightPos = GetUniform(id, UniformLightPos)
	p.locKd = GetUniform(id, UniformKd)
	p.locLd = GetUniform(id, UniformLd)
	return nil
}

// Reload replaces the program with one built from src.
// On failure the current program stays in use.
func (p *LightingProgram) Reload(src Sources) error {
	old := *p
	if err := p.load(src); err != nil {
		*p = old
		return err
	}
	if old.id != 0 {
		gl.DeleteProgram(old.id)
	}
	return nil
}

// Use binds the program.
func (p *LightingProgram) Use() {
	gl.UseProgram(p.id)
}

// Unuse unbinds any program.
func (p *LightingProgram) Unuse() {
	gl.UseProgram(0)
}

// SetMVP uploads the model-view-projection matrix.
func (p *LightingProgram) SetMVP(m math.Mat4) {
	gl.UniformMatrix4fv(p.locMVP, 1, false, m.Ptr())
}

// SetMV uploads the model-view matrix.
func (p *LightingProgram) SetMV(m math.Mat4) {
	gl.UniformMatrix4fv(p.locMV, 1, false, m.Ptr())
}

// SetNormalMatrix uploads the normal matrix.
func (p *LightingProgram) SetNormalMatrix(m math.Mat3) {
	gl.UniformMatrix3fv(p.locNormalMatrix, 1, false, m.Ptr())
}

// SetLight uploads light position, reflectivity and intensity.
func (p *LightingProgram) SetLight(l lighting.Light) {
	pos := l.Position
	gl.Uniform4f(p.locLightPos, pos[0], pos[1], pos[2], pos[3])
	gl.Uniform3f(p.locKd, l.Reflectivity.X, l.Reflectivity.Y, l.Reflectivity.Z)
	gl.Uniform3f(p.locLd, l.Intensity.X, l.Intensity.Y, l.Intensity.Z)
}

// Delete releases the GL program.
func (p *LightingProgram) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
