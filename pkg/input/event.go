// Package input decouples window callbacks from the render loop. Callbacks
// push decoded events into a Queue and the loop drains it once per frame.
package input

import (
	"fmt"
	"sync"
)

// Key is a device-neutral key code
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeySpace
	KeyEscape
	KeyTab
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyQ:       "Q",
	KeyE:       "E",
	KeySpace:   "Space",
	KeyEscape:  "Escape",
	KeyTab:     "Tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// EventKind tells which fields of an Event are meaningful
type EventKind int

const (
	// PointerMoved carries the absolute pointer position in X, Y
	PointerMoved EventKind = iota
	// Scrolled carries the wheel offsets in X, Y
	Scrolled
	KeyPressed
	KeyReleased
)

func (k EventKind) String() string {
	switch k {
	case PointerMoved:
		return "pointer"
	case Scrolled:
		return "scroll"
	case KeyPressed:
		return "press"
	case KeyReleased:
		return "release"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one decoded input sample
type Event struct {
	Kind EventKind
	X, Y float64
	Key  Key
}

// Pointer builds a PointerMoved event
func Pointer(x, y float64) Event {
	return Event{Kind: PointerMoved, X: x, Y: y}
}

// Scroll builds a Scrolled event
func Scroll(dx, dy float64) Event {
	return Event{Kind: Scrolled, X: dx, Y: dy}
}

// Press builds a KeyPressed event
func Press(k Key) Event {
	return Event{Kind: KeyPressed, Key: k}
}

// Release builds a KeyReleased event
func Release(k Key) Event {
	return Event{Kind: KeyReleased, Key: k}
}

// Queue collects events from callbacks. It is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns all pending events in arrival order and empties the queue
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
