// Package input turns per-frame GUI input state into the events the
// controller dispatches.
package input

import (
	"github.com/hans8638/opengl-samples/internal/engine/lighting"
)

// EventType identifies an Event variant.
type EventType int

const (
	EventNone EventType = iota
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventKeyPress
	EventPanelChange
	EventResize
)

var eventTypeNames = [...]string{"none", "mouse_down", "mouse_up", "mouse_move", "key_press", "panel_change", "resize"}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return "unknown"
	}
	return eventTypeNames[t]
}

// Key is one of the keys the application reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
	KeyQ
	KeyZ
	KeyF12
	KeyEscape
)

// Keys lists every tracked key.
var Keys = []Key{KeyW, KeyS, KeyA, KeyD, KeyQ, KeyZ, KeyF12, KeyEscape}

var keyNames = [...]string{"none", "W", "S", "A", "D", "Q", "Z", "F12", "Escape"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Repeats reports whether holding k down keeps producing presses.
// Movement keys auto-repeat; F12 and Escape fire once per press.
func (k Key) Repeats() bool {
	switch k {
	case KeyW, KeyS, KeyA, KeyD, KeyQ, KeyZ:
		return true
	}
	return false
}

// Event is a processed input event. Which fields are set depends on Type.
type Event struct {
	Type EventType

	MouseX float32
	MouseY float32

	Key Key

	Field lighting.Field
	Value float32

	Width  int
	Height int
}

// MouseDown returns a left-button press event.
func MouseDown(x, y float32) Event {
	return Event{Type: EventMouseDown, MouseX: x, MouseY: y}
}

// MouseUp returns a left-button release event.
func MouseUp(x, y float32) Event {
	return Event{Type: EventMouseUp, MouseX: x, MouseY: y}
}

// MouseMove returns a cursor motion event.
func MouseMove(x, y float32) Event {
	return Event{Type: EventMouseMove, MouseX: x, MouseY: y}
}

// KeyPress returns a key press event.
func KeyPress(k Key) Event {
	return Event{Type: EventKeyPress, Key: k}
}

// PanelChange returns a light panel value change event.
func PanelChange(f lighting.Field, v float32) Event {
	return Event{Type: EventPanelChange, Field: f, Value: v}
}

// Resize returns a viewport resize event.
func Resize(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
