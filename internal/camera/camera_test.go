package camera

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationdrive/internal/input"
	"stationdrive/internal/vehicle"
)

func newFollow() *Follow {
	return &Follow{Tuning: DefaultTuning(), Vehicle: vehicle.DefaultTuning()}
}

func TestConvergesWithoutOvershoot(t *testing.T) {
	f := newFollow()
	f.State.Position = mgl32.Vec3{100, 50, -80}
	v := vehicle.State{Position: mgl32.Vec3{5, 0, 5}, Yaw: 0.7}
	ideal := f.IdealPosition(v)

	prev := f.State.Position.Sub(ideal).Len()
	for i := 0; i < 300; i++ {
		f.Update(v, input.Snapshot{})
		residual := f.State.Position.Sub(ideal).Len()
		require.LessOrEqual(t, residual, prev, "tick %d", i)
		prev = residual
	}
	assert.Less(t, prev, float32(0.01))
}

func TestCameraNeverSnaps(t *testing.T) {
	f := newFollow()
	start := mgl32.Vec3{0, 100, 0}
	f.State.Position = start
	f.Update(vehicle.State{}, input.Snapshot{})
	assert.NotEqual(t, start, f.State.Position)
	assert.NotEqual(t, f.IdealPosition(vehicle.State{}), f.State.Position)
}

func TestIdealPositionPullsBackWithSpeed(t *testing.T) {
	f := newFollow()
	rest := vehicle.State{}
	fast := vehicle.State{LinearVelocity: f.Vehicle.MaxSpeed}

	restIdeal := f.IdealPosition(rest)
	fastIdeal := f.IdealPosition(fast)

	// Yaw 0 faces -Z, so behind is +Z.
	assert.InDelta(t, 20, restIdeal.Z(), 1e-4)
	assert.InDelta(t, 12, restIdeal.Y(), 1e-4)
	assert.InDelta(t, 28, fastIdeal.Z(), 1e-4)
	assert.InDelta(t, 15, fastIdeal.Y(), 1e-4)
}

func TestSmoothingDropsWhileTurning(t *testing.T) {
	f := newFollow()
	straight := f.Smoothing(vehicle.State{})
	turning := f.Smoothing(vehicle.State{TurnVelocity: f.Vehicle.MaxTurnSpeed})

	assert.InDelta(t, 0.08, straight, 1e-6)
	assert.InDelta(t, 0.08*(1-0.6), turning, 1e-6)

	f.Tuning.TurnLag = 5
	assert.Zero(t, f.Smoothing(vehicle.State{TurnVelocity: -f.Vehicle.MaxTurnSpeed}))
}

func TestLookTargetPointerOffsets(t *testing.T) {
	f := newFollow()
	v := vehicle.State{}

	center := f.LookTarget(v, mgl32.Vec2{})
	assert.InDelta(t, 2, center.Y(), 1e-5)

	right := f.LookTarget(v, mgl32.Vec2{1, 0})
	assert.InDelta(t, 8, right.X()-center.X(), 1e-5)

	up := f.LookTarget(v, mgl32.Vec2{0, 1})
	assert.InDelta(t, 4, up.Y()-center.Y(), 1e-5)

	down := f.LookTarget(v, mgl32.Vec2{0, -1})
	assert.InDelta(t, -2, down.Y()-center.Y(), 1e-5)
}

func TestLookTargetLeadsWithSpeed(t *testing.T) {
	f := newFollow()
	v := vehicle.State{LinearVelocity: f.Vehicle.MaxSpeed}
	target := f.LookTarget(v, mgl32.Vec2{})
	assert.InDelta(t, -10, target.Z(), 1e-4)
}

func TestShakeOnlyWhenBrakingHard(t *testing.T) {
	v := vehicle.State{LinearVelocity: 0.7}
	braking := input.NewSnapshot(input.Backward)

	calm := newFollow()
	calm.Update(v, braking)

	shaken := newFollow()
	shaken.Jitter = rand.New(rand.NewPCG(1, 2))
	shaken.Update(v, braking)
	assert.NotEqual(t, calm.State.Position, shaken.State.Position)

	cruising := newFollow()
	cruising.Jitter = rand.New(rand.NewPCG(1, 2))
	cruising.Update(v, input.NewSnapshot(input.Forward))
	assert.Equal(t, calm.State.Position, cruising.State.Position)
}

func TestShakeIsDeterministicWithSeed(t *testing.T) {
	v := vehicle.State{LinearVelocity: 0.7}
	braking := input.NewSnapshot(input.Backward)

	a := newFollow()
	a.Jitter = rand.New(rand.NewPCG(7, 7))
	b := newFollow()
	b.Jitter = rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 10; i++ {
		a.Update(v, braking)
		b.Update(v, braking)
	}
	assert.Equal(t, a.State, b.State)
}

func TestShakeDoesNotTouchVehicle(t *testing.T) {
	f := newFollow()
	f.Jitter = rand.New(rand.NewPCG(3, 4))
	v := vehicle.State{Position: mgl32.Vec3{1, 2, 3}, LinearVelocity: 0.7}
	before := v
	f.Update(v, input.NewSnapshot(input.Backward))
	assert.Equal(t, before, v)
}

func TestNewFollowStartsAtIdeal(t *testing.T) {
	v := vehicle.State{Position: mgl32.Vec3{4, 0, 4}}
	f := NewFollow(v, DefaultTuning(), vehicle.DefaultTuning())
	assert.Equal(t, f.IdealPosition(v), f.State.Position)
}
