// Package vehicle implements the drivable vehicle's motion model.
//
// The model runs at a fixed tick rate: every smoothing factor is a per-tick
// constant, so velocities are in world units per tick and turn rates in
// radians per tick.
package vehicle

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/input"
)

// State is the authoritative vehicle pose and motion.
type State struct {
	Position       mgl32.Vec3
	Yaw            float32 // radians about +Y
	LinearVelocity float32 // along the vehicle's own forward axis
	TurnVelocity   float32 // radians per tick
}

// New returns a vehicle at rest.
func New(pos mgl32.Vec3, yaw float32) State {
	return State{Position: pos, Yaw: yaw}
}

// Forward returns the unit vector the nose points along. Yaw 0 faces -Z.
func (s State) Forward() mgl32.Vec3 {
	return Forward(s.Yaw)
}

// Right returns the unit vector to the vehicle's right.
func (s State) Right() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(s.Yaw), 0, -math32.Sin(s.Yaw)}
}

// Forward returns the forward axis for a yaw angle.
func Forward(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(yaw), 0, -math32.Cos(yaw)}
}

// Tuning holds the motion model constants.
type Tuning struct {
	MaxSpeed          float32
	ReverseFactor     float32
	AccelerationRate  float32
	DecelerationRate  float32
	MinSteerSpeed     float32
	BaseRotationSpeed float32
	MaxTurnSpeed      float32
	TurnSmoothing     float32
	TurnDamping       float32
	MoveEpsilon       float32
}

// DefaultTuning returns the stock handling.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:          0.8,
		ReverseFactor:     0.7,
		AccelerationRate:  0.05,
		DecelerationRate:  0.08,
		MinSteerSpeed:     0.02,
		BaseRotationSpeed: 0.035,
		MaxTurnSpeed:      0.05,
		TurnSmoothing:     0.2,
		TurnDamping:       0.85,
		MoveEpsilon:       0.001,
	}
}

// SpeedFraction returns |v| / MaxSpeed in [0, 1].
func (t Tuning) SpeedFraction(v float32) float32 {
	if t.MaxSpeed <= 0 {
		return 0
	}
	return mgl32.Clamp(math32.Abs(v)/t.MaxSpeed, 0, 1)
}

// Advance integrates one tick of input and returns the candidate state.
// The candidate has not been checked against obstacles.
func Advance(in input.Snapshot, s State, t Tuning) State {
	next := s

	// Forward wins when both are held.
	var target float32
	switch {
	case in.Pressed(input.Forward):
		target = t.MaxSpeed
	case in.Pressed(input.Backward):
		target = -t.MaxSpeed * t.ReverseFactor
	}

	rate := t.DecelerationRate
	if target != 0 {
		rate = t.AccelerationRate
	}
	next.LinearVelocity = approach(s.LinearVelocity, target, rate)
	next.LinearVelocity = mgl32.Clamp(next.LinearVelocity, -t.MaxSpeed, t.MaxSpeed)

	next.TurnVelocity = steer(in, s.LinearVelocity, next.LinearVelocity, s.TurnVelocity, t)

	if math32.Abs(next.LinearVelocity) >= t.MoveEpsilon {
		next.Position = s.Position.Add(Forward(s.Yaw).Mul(next.LinearVelocity))
	}
	next.Yaw = s.Yaw + next.TurnVelocity

	return next
}

// steer gates on the speed the tick started with and scales by the new speed.
func steer(in input.Snapshot, start, v, turn float32, t Tuning) float32 {
	var dir float32
	if in.Pressed(input.TurnLeft) {
		dir++
	}
	if in.Pressed(input.TurnRight) {
		dir--
	}

	// No rotation on the spot.
	if math32.Abs(start) < t.MinSteerSpeed {
		dir = 0
	}

	if dir == 0 {
		return mgl32.Clamp(turn*t.TurnDamping, -t.MaxTurnSpeed, t.MaxTurnSpeed)
	}

	// Reversing mirrors the yaw direction so the nose still swings toward the input.
	if v < 0 {
		dir = -dir
	}
	target := t.BaseRotationSpeed * t.SpeedFraction(v) * dir
	return mgl32.Clamp(approach(turn, target, t.TurnSmoothing), -t.MaxTurnSpeed, t.MaxTurnSpeed)
}

func approach(current, target, rate float32) float32 {
	rate = mgl32.Clamp(rate, 0, 1)
	return current + (target-current)*rate
}
