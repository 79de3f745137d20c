package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Action is a logical control, independent of the device that produced it.
type Action int

const (
	Forward Action = iota
	Backward
	TurnLeft
	TurnRight
	Interact
	Cancel

	actionCount
)

var actionNames = [actionCount]string{
	Forward:   "forward",
	Backward:  "backward",
	TurnLeft:  "turnLeft",
	TurnRight: "turnRight",
	Interact:  "interact",
	Cancel:    "cancel",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Snapshot is an immutable copy of the input state taken once per tick.
// It is a value type, so later device events cannot change it.
type Snapshot struct {
	pressed [actionCount]bool
	pointer mgl32.Vec2
}

// NewSnapshot builds a snapshot from a set of held actions. Mostly useful in tests.
func NewSnapshot(held ...Action) Snapshot {
	var s Snapshot
	for _, a := range held {
		if a >= 0 && a < actionCount {
			s.pressed[a] = true
		}
	}
	return s
}

// WithPointer returns a copy of the snapshot carrying the given pointer offset.
func (s Snapshot) WithPointer(p mgl32.Vec2) Snapshot {
	s.pointer = p
	return s
}

// Pressed reports whether the action was held when the snapshot was taken.
func (s Snapshot) Pressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.pressed[a]
}

// Pointer returns the normalized pointer offset, each axis in [-1, 1].
func (s Snapshot) Pointer() mgl32.Vec2 {
	return s.pointer
}

// Any reports whether at least one action was held.
func (s Snapshot) Any() bool {
	for _, p := range s.pressed {
		if p {
			return true
		}
	}
	return false
}

// State is the live input state. Device callbacks write to it at any time;
// the simulation reads it through Snapshot once per tick.
type State struct {
	mu      sync.RWMutex
	pressed [actionCount]bool
	pointer mgl32.Vec2
}

func NewState() *State {
	return &State{}
}

// Set records a press or release of an action.
func (s *State) Set(a Action, down bool) {
	if a < 0 || a >= actionCount {
		return
	}
	s.mu.Lock()
	s.pressed[a] = down
	s.mu.Unlock()
}

// SetPointer records the pointer offset, clamping each axis to [-1, 1].
func (s *State) SetPointer(x, y float32) {
	s.mu.Lock()
	s.pointer = mgl32.Vec2{mgl32.Clamp(x, -1, 1), mgl32.Clamp(y, -1, 1)}
	s.mu.Unlock()
}

// Reset releases every action. Used when the window loses focus.
func (s *State) Reset() {
	s.mu.Lock()
	s.pressed = [actionCount]bool{}
	s.mu.Unlock()
}

// Snapshot copies the current state under the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{pressed: s.pressed, pointer: s.pointer}
}

// NormalizePointer maps a screen position to [-1, 1] on both axes with +Y up,
// the same mapping the pointer-look uses.
func NormalizePointer(x, y, width, height float32) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return (x/width)*2 - 1, -(y/height)*2 + 1
}
