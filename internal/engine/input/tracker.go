package input

// Snapshot is the raw input state for one frame.
type Snapshot struct {
	MouseX, MouseY float32
	MouseValid     bool // false while the cursor is outside the window
	LeftDown       bool

	// Set when the GUI is using the mouse or keyboard itself.
	MouseCaptured    bool
	KeyboardCaptured bool

	// Keys pressed this frame. Held repeating keys reappear at the repeat rate.
	Pressed []Key

	Width, Height int
}

// Tracker compares consecutive snapshots and emits events for the changes.
type Tracker struct {
	events []Event

	started       bool
	dragging      bool
	prevX, prevY  float32
	width, height int
}

// NewTracker creates a tracker with no previous state.
func NewTracker() *Tracker {
	return &Tracker{events: make([]Event, 0, 16)}
}

// Update consumes s and returns the events for this frame. The returned
// slice is reused by the next call.
//
// A drag that starts in the scene keeps receiving motion and the release even
// when the cursor passes over a GUI window. Presses on GUI windows are ignored.
func (t *Tracker) Update(s Snapshot) []Event {
	t.events = t.events[:0]

	if s.Width != t.width || s.Height != t.height {
		t.width, t.height = s.Width, s.Height
		t.events = append(t.events, Resize(s.Width, s.Height))
	}

	if s.MouseValid {
		moved := !t.started || s.MouseX != t.prevX || s.MouseY != t.prevY
		if moved && (t.dragging || !s.MouseCaptured) {
			t.events = append(t.events, MouseMove(s.MouseX, s.MouseY))
		}
		t.prevX, t.prevY = s.MouseX, s.MouseY
		t.started = true
	}

	switch {
	case s.LeftDown && !t.dragging && !s.MouseCaptured && s.MouseValid:
		t.dragging = true
		t.events = append(t.events, MouseDown(t.prevX, t.prevY))
	case !s.LeftDown && t.dragging:
		t.dragging = false
		t.events = append(t.events, MouseUp(t.prevX, t.prevY))
	}

	if !s.KeyboardCaptured {
		for _, k := range s.Pressed {
			t.events = append(t.events, KeyPress(k))
		}
	}

	return t.events
}

// Dragging reports whether a scene drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}
