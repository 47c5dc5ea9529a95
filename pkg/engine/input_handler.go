package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gldemos/pkg/input"
)

var keyMap = map[glfw.Key]input.Key{
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyQ:      input.KeyQ,
	glfw.KeyE:      input.KeyE,
	glfw.KeySpace:  input.KeySpace,
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyTab:    input.KeyTab,
}

// translateKey maps a GLFW key to the demo key set
func translateKey(k glfw.Key) input.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return input.KeyUnknown
}

// translateKeyEvent turns a GLFW key callback into an event. Repeats and
// keys outside the demo key set are dropped.
func translateKeyEvent(k glfw.Key, action glfw.Action) (input.Event, bool) {
	key := translateKey(k)
	if key == input.KeyUnknown {
		return input.Event{}, false
	}
	switch action {
	case glfw.Press:
		return input.Press(key), true
	case glfw.Release:
		return input.Release(key), true
	}
	return input.Event{}, false
}

// InputHandler forwards GLFW window callbacks into an input.Queue
type InputHandler struct {
	window   *glfw.Window
	queue    *input.Queue
	captured bool
}

// NewInputHandler installs key, cursor and scroll callbacks on window
func NewInputHandler(window *glfw.Window) *InputHandler {
	handler := &InputHandler{
		window: window,
		queue:  &input.Queue{},
	}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := translateKeyEvent(key, action); ok {
			handler.queue.Push(e)
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		handler.queue.Push(input.Pointer(x, y))
	})
	window.SetScrollCallback(func(_ *glfw.Window, xoffset, yoffset float64) {
		handler.queue.Push(input.Scroll(xoffset, yoffset))
	})

	return handler
}

// Drain returns the events received since the previous call
func (ih *InputHandler) Drain() []input.Event {
	return ih.queue.Drain()
}

// CaptureCursor hides and locks the pointer for free-look, or releases it
func (ih *InputHandler) CaptureCursor(capture bool) {
	if capture == ih.captured {
		return
	}
	ih.captured = capture

	if capture {
		ih.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			ih.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
		return
	}
	ih.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// quitRequested reports whether events contain an Escape press
func quitRequested(events []input.Event) bool {
	for _, e := range events {
		if e.Kind == input.KeyPressed && e.Key == input.KeyEscape {
			return true
		}
	}
	return false
}
