package graphview

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Gesture thresholds.
const (
	// DoubleClickTime is the longest pause between two clicks that still
	// counts as a double-click (seconds).
	DoubleClickTime float32 = 0.3

	// DoubleClickDist is how far apart two clicks may land and still
	// count as a double-click (pixels).
	DoubleClickDist float32 = 6

	// DragThreshold is how far the pointer must travel with the button
	// held before the press becomes a drag instead of a click (pixels).
	DragThreshold float32 = 6
)

// InputState holds pointer state for the current frame plus the small
// cross-frame memory needed to tell clicks, double-clicks and drags
// apart. It is typically populated by the application from GLFW or
// similar.
//
// Frame protocol: call Reset at the start of each frame, Tick with the
// frame's delta time, then feed events via SetMousePos, SetMouseButton
// and SetMouseWheel before the widget reads the state.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel, accumulated over the frame
	MouseWheelX float32
	MouseWheelY float32

	// Modifiers, for host-side behaviors
	ModCtrl  bool
	ModShift bool

	// Frame clock advanced by Tick; drives the double-click window.
	now float32

	// Previous frame's pointer position, for per-frame drag deltas.
	prevX, prevY float32

	// Gesture tracking
	pressX, pressY float32 // where the left button went down
	pressing       bool    // left button held since last press
	dragging       bool    // press travelled past DragThreshold

	clicked       bool // left button released without dragging this frame
	doubleClicked bool // second quick click released this frame
	dragStarted   bool // drag crossed the threshold this frame
	dragReleased  bool // drag ended this frame

	lastClickTime float32
	lastClickX    float32
	lastClickY    float32
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{lastClickTime: -1}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0

	s.clicked = false
	s.doubleClicked = false
	s.dragStarted = false
	s.dragReleased = false

	s.prevX = s.MouseX
	s.prevY = s.MouseY
}

// Tick advances the input clock by the frame's delta time.
func (s *InputState) Tick(dt float32) {
	s.now += dt
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y

	if s.pressing && !s.dragging {
		travel := Vec2{X: x - s.pressX, Y: y - s.pressY}
		if travel.Length() > DragThreshold {
			s.dragging = true
			s.dragStarted = true
		}
	}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}

	if button != MouseButtonLeft {
		return
	}

	switch {
	case down && !wasDown:
		s.pressing = true
		s.pressX = s.MouseX
		s.pressY = s.MouseY
	case !down && wasDown:
		if s.dragging {
			s.dragReleased = true
			s.dragging = false
		} else if s.pressing {
			s.registerClick()
		}
		s.pressing = false
	}
}

// registerClick marks a click and promotes it to a double-click when it
// lands close enough, soon enough, after the previous one. A completed
// double-click consumes the click memory so a triple click does not
// count as two doubles.
func (s *InputState) registerClick() {
	s.clicked = true

	near := Vec2{X: s.MouseX - s.lastClickX, Y: s.MouseY - s.lastClickY}
	if s.lastClickTime >= 0 &&
		s.now-s.lastClickTime <= DoubleClickTime &&
		near.Length() <= DoubleClickDist {
		s.doubleClicked = true
		s.lastClickTime = -1
		return
	}
	s.lastClickTime = s.now
	s.lastClickX = s.MouseX
	s.lastClickY = s.MouseY
}

// SetMouseWheel accumulates mouse wheel movement for the frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// HoverPos returns the current pointer position in screen coordinates.
func (s *InputState) HoverPos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// Clicked returns true if the left button was released this frame
// without the press having turned into a drag.
func (s *InputState) Clicked() bool {
	return s.clicked
}

// DoubleClicked returns true if a second quick click completed this
// frame. The first click of the pair still reports Clicked on its own
// frame, so a double-click is observed as a click followed by a
// double-click.
func (s *InputState) DoubleClicked() bool {
	return s.doubleClicked
}

// DragStarted returns true on the frame a press travelled past
// DragThreshold and became a drag.
func (s *InputState) DragStarted() bool {
	return s.dragStarted
}

// Dragging returns true while a drag is in progress.
func (s *InputState) Dragging() bool {
	return s.dragging
}

// DragReleased returns true on the frame a drag ended.
func (s *InputState) DragReleased() bool {
	return s.dragReleased
}

// DragDelta returns the pointer movement since the previous frame.
// Only meaningful while Dragging reports true.
func (s *InputState) DragDelta() Vec2 {
	return Vec2{X: s.MouseX - s.prevX, Y: s.MouseY - s.prevY}
}

// DragOrigin returns where the left button went down for the current
// press or drag. The origin, not the promoted position, decides what a
// drag grabs.
func (s *InputState) DragOrigin() Vec2 {
	return Vec2{X: s.pressX, Y: s.pressY}
}

// ZoomDelta returns the frame's accumulated wheel movement. Positive
// values zoom in.
func (s *InputState) ZoomDelta() float32 {
	return s.MouseWheelY
}
