package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/input"
)

// Bindings maps each action to the keys that hold it.
type Bindings map[input.Action][]int32

func DefaultBindings() Bindings {
	return Bindings{
		input.Forward:   {rl.KeyW, rl.KeyUp},
		input.Backward:  {rl.KeyS, rl.KeyDown},
		input.TurnLeft:  {rl.KeyA, rl.KeyLeft},
		input.TurnRight: {rl.KeyD, rl.KeyRight},
		input.Interact:  {rl.KeyE},
		input.Cancel:    {rl.KeyEscape},
	}
}

// Apply writes every action to state using isDown to query keys.
func (b Bindings) Apply(state *input.State, isDown func(key int32) bool) {
	for _, a := range input.Actions() {
		down := false
		for _, key := range b[a] {
			if isDown(key) {
				down = true
				break
			}
		}
		state.Set(a, down)
	}
}

// pollDevices copies the keyboard and mouse into state.
func pollDevices(state *input.State, b Bindings) {
	if !rl.IsWindowFocused() {
		state.Reset()
		return
	}
	b.Apply(state, rl.IsKeyDown)

	mouse := rl.GetMousePosition()
	x, y := input.NormalizePointer(mouse.X, mouse.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	state.SetPointer(x, y)
}
