package input

import "gldemos/pkg/camera"

var movementKeys = []struct {
	key Key
	dir camera.Direction
}{
	{KeyW, camera.Forward},
	{KeyS, camera.Backward},
	{KeyA, camera.Left},
	{KeyD, camera.Right},
}

// FreeLook drives a camera from input events: pointer motion looks around,
// the wheel zooms and WASD moves.
type FreeLook struct {
	Camera *camera.Camera
	State  *State
}

// NewFreeLook binds a controller to cam
func NewFreeLook(cam *camera.Camera) *FreeLook {
	return &FreeLook{Camera: cam, State: NewState()}
}

// Handle applies one frame of events. dt is the frame time in seconds and
// scales keyboard movement.
func (f *FreeLook) Handle(events []Event, dt float32) {
	f.State.Apply(events)

	for _, e := range events {
		switch e.Kind {
		case PointerMoved:
			f.Camera.ProcessPointer(e.X, e.Y)
		case Scrolled:
			f.Camera.ProcessScroll(float32(e.Y))
		}
	}

	if dt <= 0 {
		return
	}
	for _, m := range movementKeys {
		if f.State.Down(m.key) {
			f.Camera.ProcessKeyboard(m.dir, dt)
		}
	}
}
