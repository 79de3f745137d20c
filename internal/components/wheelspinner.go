package components

import (
	"github.com/chewxy/math32"

	"stationdrive/internal/engine"
)

// WheelSpinner rolls a wheel about its local X axis in step with the vehicle.
type WheelSpinner struct {
	engine.BaseComponent
	// Velocity reports the vehicle's signed speed in world units per tick.
	Velocity func() float32
	Radius   float32
	// TicksPerSecond converts per-tick speed to the frame's delta time.
	TicksPerSecond float32
}

func NewWheelSpinner(radius float32, velocity func() float32) *WheelSpinner {
	return &WheelSpinner{Velocity: velocity, Radius: radius, TicksPerSecond: 60}
}

func (w *WheelSpinner) Update(deltaTime float32) {
	g := w.GetGameObject()
	if g == nil || w.Velocity == nil || w.Radius <= 0 {
		return
	}

	distance := w.Velocity() * w.TicksPerSecond * deltaTime
	// Forward is -Z, so a forward roll turns the wheel negatively about X.
	deg := -distance / w.Radius * 180 / math32.Pi
	g.Transform.Rotation[0] = math32.Mod(g.Transform.Rotation.X()+deg, 360)
}
