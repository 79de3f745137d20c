package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/components"
	"stationdrive/internal/content"
	"stationdrive/internal/engine"
	"stationdrive/internal/input"
	"stationdrive/internal/physics"
	"stationdrive/internal/proximity"
	"stationdrive/internal/sim"
	"stationdrive/internal/vehicle"
	"stationdrive/internal/world"
)

func TestPromptText(t *testing.T) {
	assert.Equal(t, "", PromptText(nil))
	assert.Equal(t, "Press E to open Skills", PromptText(&proximity.Station{ID: "skills", Title: "Skills"}))
}

func TestModalOpenAndClose(t *testing.T) {
	m := Modal{Catalogue: content.Default()}
	assert.False(t, m.IsOpen())

	m.Open(sim.ContentRequest{StationID: "skills", Modal: "skills-modal", Title: "Skills"})
	assert.True(t, m.IsOpen())
	assert.Equal(t, "skills-modal", m.ID())
	assert.NotEmpty(t, m.Entry().Sections)

	m.Open(sim.ContentRequest{StationID: "garage", Modal: "garage-modal", Title: "Garage"})
	assert.Equal(t, "Garage", m.Entry().Title)
	assert.Empty(t, m.Entry().Sections)

	m.Close()
	assert.False(t, m.IsOpen())
	assert.Equal(t, "", m.ID())
}

func TestInstructionsTimeout(t *testing.T) {
	i := Instructions{Timeout: 6}
	assert.True(t, i.Visible())
	assert.Equal(t, float32(1), i.Alpha())

	i.Update(5.5)
	assert.True(t, i.Visible())
	assert.InDelta(t, 0.5, i.Alpha(), 1e-6)

	i.Update(1)
	assert.False(t, i.Visible())
	assert.Zero(t, i.Alpha())
}

func TestBindingsApply(t *testing.T) {
	state := input.NewState()
	held := map[int32]bool{rl.KeyUp: true, rl.KeyA: true}
	DefaultBindings().Apply(state, func(key int32) bool { return held[key] })

	snap := state.Snapshot()
	assert.True(t, snap.Pressed(input.Forward))
	assert.True(t, snap.Pressed(input.TurnLeft))
	assert.False(t, snap.Pressed(input.Backward))
	assert.False(t, snap.Pressed(input.Interact))

	held = map[int32]bool{}
	DefaultBindings().Apply(state, func(key int32) bool { return held[key] })
	assert.False(t, state.Snapshot().Any())
}

func TestBuildScene(t *testing.T) {
	l := world.Generate("scene", world.DefaultGenOptions())
	monitor := proximity.NewMonitor(l.ProximityStations(), proximity.DefaultTuning())
	v := vehicle.New(mgl32.Vec3{1, 0, 2}, 0.5)

	scene, car := buildScene(l, monitor, &v)

	assert.Len(t, scene.FindByTag("station"), 4)
	assert.Len(t, scene.FindByTag("beacon"), 4)
	assert.Len(t, scene.FindByTag("tree"), l.CountKind(physics.KindTree))
	assert.Len(t, car.Children, 4)
	assert.Equal(t, v.Position, car.Transform.Position)
	assert.NotNil(t, engine.GetComponent[*components.ShapeRenderer](car))
}
