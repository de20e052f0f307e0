package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/blockviz"
)

// GLFWInputAdapter adapts GLFW key events to blockviz.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *blockviz.InputState
	resize func(width, height int)
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
// onResize, if non-nil, is called with the new framebuffer size.
func NewGLFWInputAdapter(window *glfw.Window, onResize func(width, height int)) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  blockviz.NewInputState(),
		resize: onResize,
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

// Update starts a new input frame and polls GLFW events into it.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *blockviz.InputState {
	a.input.Reset()
	glfw.PollEvents()
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == blockviz.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if a.resize != nil {
		a.resize(width, height)
	}
}

// glfwKeyToKey maps GLFW keys to blockviz keys.
func glfwKeyToKey(key glfw.Key) blockviz.Key {
	switch key {
	case glfw.KeyLeft:
		return blockviz.KeyLeft
	case glfw.KeyRight:
		return blockviz.KeyRight
	case glfw.KeyUp:
		return blockviz.KeyUp
	case glfw.KeyDown:
		return blockviz.KeyDown
	case glfw.KeyA:
		return blockviz.KeyA
	case glfw.KeyD:
		return blockviz.KeyD
	case glfw.KeyI:
		return blockviz.KeyI
	case glfw.KeyJ:
		return blockviz.KeyJ
	case glfw.KeyK:
		return blockviz.KeyK
	case glfw.KeyL:
		return blockviz.KeyL
	case glfw.KeyEscape:
		return blockviz.KeyEscape
	default:
		return blockviz.KeyNone
	}
}
