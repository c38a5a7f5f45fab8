package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/blitzar-tech/graphview"
)

// GLFWInputAdapter adapts GLFW mouse input to graphview.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *graphview.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  graphview.NewInputState(),
	}

	// Setup callbacks
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update resets the input state for a new frame and polls the cursor.
// Call this at the start of each frame, before glfw.PollEvents, so the
// frame's events land after the reset.
func (a *GLFWInputAdapter) Update(dt float32) *graphview.InputState {
	a.input.Reset()
	a.input.Tick(dt)

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *graphview.InputState {
	return a.input
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	viewButton := glfwMouseButtonToView(button)
	if viewButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(viewButton, true)
	case glfw.Release:
		a.input.SetMouseButton(viewButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwMouseButtonToView maps GLFW mouse buttons to widget mouse buttons.
func glfwMouseButtonToView(button glfw.MouseButton) graphview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return graphview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return graphview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return graphview.MouseButtonMiddle
	default:
		return -1
	}
}
