package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/hans8638/opengl-samples/internal/engine/input"
	"github.com/hans8638/opengl-samples/internal/engine/lighting"
)

// PanelRow is one labelled row of three spin inputs.
type PanelRow struct {
	Label  string
	Fields [3]lighting.Field
}

// PanelRows returns the panel layout, top to bottom.
func PanelRows() []PanelRow {
	return []PanelRow{
		{"Light Position", [3]lighting.Field{lighting.PositionX, lighting.PositionY, lighting.PositionZ}},
		{"Reflectivity", [3]lighting.Field{lighting.ReflectivityR, lighting.ReflectivityG, lighting.ReflectivityB}},
		{"Intensity", [3]lighting.Field{lighting.IntensityR, lighting.IntensityG, lighting.IntensityB}},
	}
}

const (
	labelWidth = 120
	inputWidth = 130
)

// Panel is the light control panel docked at the top of the window.
// It reads the shared light every frame and reports edits as events;
// it never writes the light itself.
type Panel struct {
	light  *lighting.Light
	rows   []PanelRow
	height float32
	events []input.Event
}

// NewPanel creates a panel mirroring light.
func NewPanel(light *lighting.Light) *Panel {
	return &Panel{light: light, rows: PanelRows()}
}

// Height returns the height the panel occupied in the last Draw.
func (p *Panel) Height() float32 {
	return p.height
}

// Draw lays out the panel across the top of the given area and returns one
// PanelChange event per edited input.
func (p *Panel) Draw(x, y, width float32) []input.Event {
	p.events = p.events[:0]

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSizeConstraints(imgui.NewVec2(width, 0), imgui.NewVec2(width, 1e6))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings

	if imgui.BeginV("##light", nil, flags) {
		for _, row := range p.rows {
			imgui.AlignTextToFramePadding()
			imgui.Text(row.Label)
			for i, f := range row.Fields {
				if i == 0 {
					imgui.SameLineV(labelWidth, -1)
				} else {
					imgui.SameLine()
				}
				p.drawField(f)
			}
		}
		p.height = imgui.WindowSize().Y
	}
	imgui.End()

	return p.events
}

func (p *Panel) drawField(f lighting.Field) {
	r := lighting.FieldRange(f)
	v := p.light.Get(f)

	imgui.SetNextItemWidth(inputWidth)
	if imgui.InputFloatV("##"+f.String(), &v, r.Step, r.Step*10, "%.2f", imgui.InputTextFlagsNone) {
		p.events = append(p.events, input.PanelChange(f, r.Clamp(v)))
	}
}
