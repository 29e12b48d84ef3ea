package input

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

var imguiKeys = map[Key]imgui.Key{
	KeyW:      imgui.KeyW,
	KeyS:      imgui.KeyS,
	KeyA:      imgui.KeyA,
	KeyD:      imgui.KeyD,
	KeyQ:      imgui.KeyQ,
	KeyZ:      imgui.KeyZ,
	KeyF12:    imgui.KeyF12,
	KeyEscape: imgui.KeyEscape,
}

// invalidMouse is below any real cursor coordinate; ImGui reports -FLT_MAX
// when the cursor is not over the window.
const invalidMouse = -1e30

// Poll reads the current ImGui IO state for a scene area of width x height
// whose top-left corner is at (originX, originY). Mouse coordinates are
// relative to that corner. Call it between NewFrame and Render.
func Poll(originX, originY float32, width, height int) Snapshot {
	io := imgui.CurrentIO()
	pos := imgui.MousePos()

	s := Snapshot{
		MouseX:           pos.X - originX,
		MouseY:           pos.Y - originY,
		MouseValid:       pos.X > invalidMouse && pos.Y > invalidMouse,
		LeftDown:         imgui.IsMouseDown(imgui.MouseButtonLeft),
		MouseCaptured:    io.WantCaptureMouse(),
		KeyboardCaptured: io.WantCaptureKeyboard(),
		Width:            width,
		Height:           height,
	}

	for _, k := range Keys {
		if imgui.IsKeyPressedBoolV(imguiKeys[k], k.Repeats()) {
			s.Pressed = append(s.Pressed, k)
		}
	}
	return s
}
