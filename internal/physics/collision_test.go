package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationdrive/internal/input"
	"stationdrive/internal/vehicle"
)

func TestRadiusTable(t *testing.T) {
	r := DefaultRadii()
	assert.Equal(t, float32(12), r.For(KindStation, false))
	assert.Equal(t, float32(25), r.For(KindStation, true))
	assert.Equal(t, float32(35), r.For(KindMountain, false))
	assert.Equal(t, float32(3), r.For(KindTree, false))
	assert.Equal(t, float32(1), r.For(KindRock, true))
	assert.Equal(t, float32(3), r.For(KindUnknown, false))
}

func TestNewObstacleOverride(t *testing.T) {
	o := NewObstacle("rock", mgl32.Vec3{}, KindRock, false, 4.5, DefaultRadii())
	assert.Equal(t, float32(4.5), o.Radius)

	o = NewObstacle("rock", mgl32.Vec3{}, KindRock, false, 0, DefaultRadii())
	assert.Equal(t, float32(1), o.Radius)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("mountain")
	require.True(t, ok)
	assert.Equal(t, KindMountain, k)

	_, ok = ParseKind("unknown")
	assert.False(t, ok)
	_, ok = ParseKind("lake")
	assert.False(t, ok)
}

func TestIsColliding(t *testing.T) {
	obstacles := []Obstacle{
		{Position: mgl32.Vec3{10, 0, 0}, Kind: KindTree, Radius: 3},
		{Position: mgl32.Vec3{-50, 0, 0}, Kind: KindMountain, Radius: 35},
	}

	assert.True(t, IsColliding(mgl32.Vec3{8, 0, 0}, obstacles))
	assert.True(t, IsColliding(mgl32.Vec3{-20, 0, 0}, obstacles))
	assert.False(t, IsColliding(mgl32.Vec3{0, 0, 0}, obstacles))
	// Boundary is not a hit.
	assert.False(t, IsColliding(mgl32.Vec3{13, 0, 0}, obstacles))
	assert.False(t, IsColliding(mgl32.Vec3{}, nil))
}

func TestFirstHitReturnsListOrder(t *testing.T) {
	obstacles := []Obstacle{
		{Name: "a", Position: mgl32.Vec3{1, 0, 0}, Radius: 5},
		{Name: "b", Position: mgl32.Vec3{0, 0, 0}, Radius: 5},
	}
	hit, ok := FirstHit(mgl32.Vec3{}, obstacles)
	require.True(t, ok)
	assert.Equal(t, "a", hit.Name)
}

func TestStepRollsBackNewCollision(t *testing.T) {
	obstacles := []Obstacle{{Position: mgl32.Vec3{0, 0, -12.5}, Kind: KindStation, Radius: 12}}
	tun := vehicle.DefaultTuning()

	prev := vehicle.State{LinearVelocity: 0.8}
	require.False(t, IsColliding(prev.Position, obstacles))

	candidate := vehicle.Advance(input.NewSnapshot(input.Forward), prev, tun)
	require.True(t, IsColliding(candidate.Position, obstacles))

	got, outcome := Step(prev, candidate, obstacles, DefaultResponse())
	assert.Equal(t, Bounced, outcome)
	assert.Equal(t, prev.Position, got.Position)
	assert.Less(t, got.LinearVelocity, float32(0))
	assert.Less(t, -got.LinearVelocity, candidate.LinearVelocity)
	assert.InDelta(t, candidate.LinearVelocity*-0.3, got.LinearVelocity, 1e-6)
}

func TestStepHalvesTurnOnBounce(t *testing.T) {
	prev := vehicle.State{}
	candidate := vehicle.State{Position: mgl32.Vec3{0, 0, -1}, LinearVelocity: 0.5, TurnVelocity: 0.04}

	got, outcome := Respond(prev, candidate, false, true, DefaultResponse())
	assert.Equal(t, Bounced, outcome)
	assert.InDelta(t, 0.02, got.TurnVelocity, 1e-6)
	// Yaw is not rolled back.
	assert.Equal(t, candidate.Yaw, got.Yaw)
}

func TestStepAllowsEscapeWhenAlreadyInside(t *testing.T) {
	obstacles := []Obstacle{{Position: mgl32.Vec3{}, Kind: KindRock, Radius: 5}}
	tun := vehicle.DefaultTuning()

	prev := vehicle.State{Position: mgl32.Vec3{0, 0, 1}, LinearVelocity: 0.5}
	candidate := vehicle.Advance(input.NewSnapshot(input.Forward), prev, tun)
	require.True(t, IsColliding(candidate.Position, obstacles))

	got, outcome := Step(prev, candidate, obstacles, DefaultResponse())
	assert.Equal(t, Embedded, outcome)
	assert.Equal(t, candidate, got)
}

func TestStepAcceptsClearMove(t *testing.T) {
	candidate := vehicle.State{Position: mgl32.Vec3{0, 0, -1}, LinearVelocity: 0.2}
	got, outcome := Step(vehicle.State{}, candidate, nil, DefaultResponse())
	assert.Equal(t, Clear, outcome)
	assert.Equal(t, candidate, got)
	assert.Equal(t, "clear", outcome.String())
}
