// Package lighting holds the point light and material state shared by the control panel and the renderer.
package lighting

import (
	"fmt"

	"github.com/hans8638/opengl-samples/pkg/math"
)

// Light is the single point light plus the diffuse material of every surface.
// The panel writes it; the render loop reads it every frame.
type Light struct {
	Position     math.Vec4 // Light position, w is always 1
	Reflectivity math.Vec3 // Diffuse reflectivity (Kd)
	Intensity    math.Vec3 // Light intensity (Ld)
}

// Default returns the light used at startup.
func Default() Light {
	return Light{
		Position:     math.Vec4{5, 5, 5, 1},
		Reflectivity: math.Vec3{X: 1, Y: 1, Z: 1},
		Intensity:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Field names one of the nine scalar inputs of the control panel.
type Field int

const (
	PositionX Field = iota
	PositionY
	PositionZ
	ReflectivityR
	ReflectivityG
	ReflectivityB
	IntensityR
	IntensityG
	IntensityB

	fieldCount
)

// Fields lists every panel field in display order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := PositionX; f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

var fieldNames = [fieldCount]string{
	"position.x", "position.y", "position.z",
	"reflectivity.r", "reflectivity.g", "reflectivity.b",
	"intensity.r", "intensity.g", "intensity.b",
}

// String returns a stable name for logs.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Valid reports whether f names a real field.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// Set writes value into the component named by f and leaves everything else untouched.
func (l *Light) Set(f Field, value float32) error {
	if !f.Valid() {
		return fmt.Errorf("unknown light field %d", int(f))
	}
	*l.component(f) = value
	return nil
}

// Get returns the component named by f.
func (l *Light) Get(f Field) float32 {
	if p := l.component(f); p != nil {
		return *p
	}
	return 0
}

func (l *Light) component(f Field) *float32 {
	switch f {
	case PositionX:
		return &l.Position[0]
	case PositionY:
		return &l.Position[1]
	case PositionZ:
		return &l.Position[2]
	case ReflectivityR:
		return &l.Reflectivity.X
	case ReflectivityG:
		return &l.Reflectivity.Y
	case ReflectivityB:
		return &l.Reflectivity.Z
	case IntensityR:
		return &l.Intensity.X
	case IntensityG:
		return &l.Intensity.Y
	case IntensityB:
		return &l.Intensity.Z
	}
	return nil
}

// Range is the inclusive bounds and step of a panel spin input.
type Range struct {
	Min, Max, Step float32
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	return min(max(v, r.Min), r.Max)
}

// FieldRange returns the input range for f. Position spans ±100; the colour
// fields keep the 0..99.99 default of a spin box, reflectivity stepping by 0.01.
func FieldRange(f Field) Range {
	switch {
	case f >= PositionX && f <= PositionZ:
		return Range{Min: -100, Max: 100, Step: 1}
	case f >= ReflectivityR && f <= ReflectivityB:
		return Range{Min: 0, Max: 99.99, Step: 0.01}
	default:
		return Range{Min: 0, Max: 99.99, Step: 1}
	}
}
