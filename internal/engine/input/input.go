// Package input holds per-frame input state. The platform layer translates
// its native events into Events and applies them to a State it owns; the
// State is then passed explicitly into the frame update.
package input

import (
	"fmt"
	"strings"
)

// Key identifies a key the camera controls react to.
type Key uint8

// Keys.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyShift
	KeyEscape
	KeyV
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "unknown",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeySpace:   "space",
	KeyShift:   "shift",
	KeyEscape:  "escape",
	KeyV:       "v",
}

// String returns the lower-case key name.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// KeyFromName parses a key name case-insensitively.
// Returns KeyUnknown for names it does not know.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k)
		}
	}
	return KeyUnknown
}

// EventType is the kind of an input event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventToggleViewMode
	EventBlur
)

// Event is a platform-independent input event.
type Event struct {
	Type EventType
	Key  Key
	// Relative mouse movement for EventMouseMove.
	DX, DY float32
}

// State is the input state for one frame.
type State struct {
	// ViewMode enables mouse look; toggled by a pointer-capturing click.
	ViewMode bool

	MouseDX, MouseDY float32

	held [keyCount]bool
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{}
}

// Apply folds a single event into the state.
func (s *State) Apply(e Event) {
	switch e.Type {
	case EventKeyDown:
		if e.Key < keyCount {
			s.held[e.Key] = true
		}
		if e.Key == KeyEscape {
			s.ViewMode = false
		}
	case EventKeyUp:
		if e.Key < keyCount {
			s.held[e.Key] = false
		}
	case EventMouseMove:
		s.MouseDX += e.DX
		s.MouseDY += e.DY
	case EventToggleViewMode:
		s.ViewMode = !s.ViewMode
	case EventBlur:
		// Key-up events are lost while the window is unfocused
		s.held = [keyCount]bool{}
	}
}

// ApplyAll folds events in order.
func (s *State) ApplyAll(events []Event) {
	for _, e := range events {
		s.Apply(e)
	}
}

// IsHeld reports whether k is currently down.
func (s *State) IsHeld(k Key) bool {
	return k < keyCount && s.held[k]
}

// HeldKeys returns the held keys in Key order.
func (s *State) HeldKeys() []Key {
	var keys []Key
	for k := KeyW; k < keyCount; k++ {
		if s.held[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// ConsumeMouse returns the accumulated mouse delta and clears it.
func (s *State) ConsumeMouse() (dx, dy float32) {
	dx, dy = s.MouseDX, s.MouseDY
	s.MouseDX, s.MouseDY = 0, 0
	return dx, dy
}

// Reset clears held keys, mouse deltas and view mode.
func (s *State) Reset() {
	*s = State{}
}
