package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/engine"
)

func TestStationBeaconBobsAndTints(t *testing.T) {
	level := float32(0.3)
	g := engine.NewGameObject("beacon")
	renderer := NewShapeRenderer(ShapeCone, mgl32.Vec3{1, 2, 1}, rl.Red)
	beacon := NewStationBeacon(rl.Red, 10, func() float32 { return level })
	g.AddComponent(renderer)
	g.AddComponent(beacon)
	g.Start()

	g.Update(0.25)

	if y := g.Transform.Position.Y(); y < 9.5 || y > 10.5 {
		t.Errorf("Expected beacon within bob range of 10, got %f", y)
	}
	if r := g.Transform.Rotation.Y(); r <= 0 {
		t.Errorf("Expected beacon to spin, got rotation %f", r)
	}
	dim := renderer.Color

	level = 0.8
	g.Update(0.25)
	bright := renderer.Color
	if bright.G <= dim.G {
		t.Errorf("Expected higher intensity to brighten, got %v then %v", dim, bright)
	}
}

func TestStationBeaconWithoutIntensity(t *testing.T) {
	b := NewStationBeacon(rl.Blue, 5, nil)
	if b.Tint() != rl.Blue {
		t.Errorf("Expected base color without intensity source, got %v", b.Tint())
	}
}

func TestWheelSpinnerFollowsVelocity(t *testing.T) {
	v := float32(0.5)
	g := engine.NewGameObject("wheel")
	g.AddComponent(NewWheelSpinner(1, func() float32 { return v }))

	g.Update(1.0 / 60)
	forward := g.Transform.Rotation.X()
	if forward >= 0 {
		t.Errorf("Expected forward roll to be negative about X, got %f", forward)
	}

	v = -0.5
	g.Update(1.0 / 60)
	if r := g.Transform.Rotation.X(); r < -1e-4 || r > 1e-4 {
		t.Errorf("Expected reverse roll to undo forward roll, got %f", r)
	}
}
