package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"stationdrive/internal/input"
	"stationdrive/internal/vehicle"
)

// State is the camera pose written every tick and read by the renderer.
type State struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Jitter supplies random values in [0, 1). *rand.Rand satisfies it.
type Jitter interface {
	Float32() float32
}

// Tuning holds the chase camera constants.
type Tuning struct {
	BaseDistance  float32
	DistanceGain  float32
	BaseHeight    float32
	HeightGain    float32
	BaseSmoothing float32
	TurnLag       float32 // how much a full-rate turn reduces smoothing
	LookAhead     float32
	LookHeight    float32

	PointerYawScale   float32
	PointerPitchScale float32
	PointerPitchMin   float32
	PointerPitchMax   float32

	ShakeSpeed     float32 // minimum speed for braking shake
	ShakeAmplitude float32
}

func DefaultTuning() Tuning {
	return Tuning{
		BaseDistance:      20,
		DistanceGain:      8,
		BaseHeight:        12,
		HeightGain:        3,
		BaseSmoothing:     0.08,
		TurnLag:           0.6,
		LookAhead:         10,
		LookHeight:        2,
		PointerYawScale:   8,
		PointerPitchScale: 5,
		PointerPitchMin:   -2,
		PointerPitchMax:   4,
		ShakeSpeed:        0.5,
		ShakeAmplitude:    0.15,
	}
}

// Follow is a smoothed chase camera. It owns the camera State.
type Follow struct {
	State   State
	Tuning  Tuning
	Vehicle vehicle.Tuning

	// Jitter drives the braking shake. Nil disables it.
	Jitter Jitter
}

// NewFollow places the camera at its ideal pose behind v.
func NewFollow(v vehicle.State, t Tuning, vt vehicle.Tuning) *Follow {
	f := &Follow{Tuning: t, Vehicle: vt}
	f.State.Position = f.IdealPosition(v)
	f.State.Target = f.LookTarget(v, mgl32.Vec2{})
	return f
}

// IdealPosition is where the camera wants to be: behind and above the
// vehicle, pulling back and up as speed rises.
func (f *Follow) IdealPosition(v vehicle.State) mgl32.Vec3 {
	frac := f.Vehicle.SpeedFraction(v.LinearVelocity)
	dist := f.Tuning.BaseDistance + frac*f.Tuning.DistanceGain
	height := f.Tuning.BaseHeight + frac*f.Tuning.HeightGain

	back := v.Forward().Mul(-dist)
	return v.Position.Add(back).Add(mgl32.Vec3{0, height, 0})
}

// Smoothing returns the interpolation factor for this tick. Sharp turns
// lower it so the camera swings wide.
func (f *Follow) Smoothing(v vehicle.State) float32 {
	influence := float32(0)
	if f.Vehicle.MaxTurnSpeed > 0 {
		influence = mgl32.Clamp(math32.Abs(v.TurnVelocity)/f.Vehicle.MaxTurnSpeed, 0, 1)
	}
	s := f.Tuning.BaseSmoothing * (1 - influence*f.Tuning.TurnLag)
	return mgl32.Clamp(s, 0, 1)
}

// LookTarget returns the point the camera looks at, nudged by the pointer.
func (f *Follow) LookTarget(v vehicle.State, pointer mgl32.Vec2) mgl32.Vec3 {
	frac := f.Vehicle.SpeedFraction(v.LinearVelocity)
	target := v.Position.
		Add(v.Forward().Mul(f.Tuning.LookAhead * frac)).
		Add(mgl32.Vec3{0, f.Tuning.LookHeight, 0})

	target = target.Add(v.Right().Mul(pointer.X() * f.Tuning.PointerYawScale))
	pitch := mgl32.Clamp(pointer.Y()*f.Tuning.PointerPitchScale, f.Tuning.PointerPitchMin, f.Tuning.PointerPitchMax)
	return target.Add(mgl32.Vec3{0, pitch, 0})
}

// Update moves the camera one tick toward its ideal pose.
func (f *Follow) Update(v vehicle.State, in input.Snapshot) {
	ideal := f.IdealPosition(v)
	s := f.Smoothing(v)
	f.State.Position = f.State.Position.Add(ideal.Sub(f.State.Position).Mul(s))
	f.State.Target = f.LookTarget(v, in.Pointer())

	if f.braking(v, in) {
		f.State.Position = f.State.Position.Add(f.shake())
	}
}

func (f *Follow) braking(v vehicle.State, in input.Snapshot) bool {
	if f.Jitter == nil {
		return false
	}
	return v.LinearVelocity > f.Tuning.ShakeSpeed && in.Pressed(input.Backward)
}

func (f *Follow) shake() mgl32.Vec3 {
	a := f.Tuning.ShakeAmplitude
	return mgl32.Vec3{
		(f.Jitter.Float32() - 0.5) * a,
		(f.Jitter.Float32() - 0.5) * a,
		(f.Jitter.Float32() - 0.5) * a,
	}
}
