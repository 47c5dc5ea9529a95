package input

// State tracks which keys are held. It is owned by the render loop.
type State struct {
	down    map[Key]bool
	pressed map[Key]bool
}

// NewState creates an empty key state
func NewState() *State {
	return &State{
		down:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// Apply folds a frame's events into the held-key set. Presses from the
// previous Apply are forgotten.
func (s *State) Apply(events []Event) {
	for k := range s.pressed {
		delete(s.pressed, k)
	}

	for _, e := range events {
		switch e.Kind {
		case KeyPressed:
			if !s.down[e.Key] {
				s.pressed[e.Key] = true
			}
			s.down[e.Key] = true
		case KeyReleased:
			delete(s.down, e.Key)
		}
	}
}

// Down reports whether k is held
func (s *State) Down(k Key) bool {
	return s.down[k]
}

// Pressed reports whether k went down during the last Apply
func (s *State) Pressed(k Key) bool {
	return s.pressed[k]
}
