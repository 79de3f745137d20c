package components

import (
	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/engine"
)

// StationBeacon bobs and spins a marker above a station and tints it by the
// station's highlight intensity.
type StationBeacon struct {
	engine.BaseComponent
	// Intensity reports the current highlight level, usually Monitor.IntensityOf.
	Intensity func() float32

	BaseColor     rl.Color
	BaseHeight    float32
	BobHeight     float32
	BobSpeed      float32
	RotationSpeed float32 // degrees per second

	time     float32
	renderer *ShapeRenderer
}

func NewStationBeacon(color rl.Color, height float32, intensity func() float32) *StationBeacon {
	return &StationBeacon{
		Intensity:     intensity,
		BaseColor:     color,
		BaseHeight:    height,
		BobHeight:     0.5,
		BobSpeed:      2,
		RotationSpeed: 45,
	}
}

func (b *StationBeacon) Start() {
	if g := b.GetGameObject(); g != nil {
		b.renderer = engine.GetComponent[*ShapeRenderer](g)
	}
}

func (b *StationBeacon) Update(deltaTime float32) {
	g := b.GetGameObject()
	if g == nil {
		return
	}

	b.time += deltaTime
	g.Transform.Position[1] = b.BaseHeight + math32.Sin(b.time*b.BobSpeed)*b.BobHeight

	rot := g.Transform.Rotation.Y() + b.RotationSpeed*deltaTime
	if rot > 360 {
		rot -= 360
	}
	g.Transform.Rotation[1] = rot

	if b.renderer != nil {
		b.renderer.Color = b.Tint()
	}
}

// Tint brightens the base color with intensity. Full intensity is near white.
func (b *StationBeacon) Tint() rl.Color {
	level := float32(0)
	if b.Intensity != nil {
		level = b.Intensity()
	}
	return rl.ColorBrightness(b.BaseColor, level)
}
