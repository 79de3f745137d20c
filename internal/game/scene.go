package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/components"
	"stationdrive/internal/engine"
	"stationdrive/internal/physics"
	"stationdrive/internal/proximity"
	"stationdrive/internal/vehicle"
	"stationdrive/internal/world"
)

var (
	colorGround   = rl.NewColor(124, 179, 66, 255)
	colorRoad     = rl.NewColor(70, 70, 78, 255)
	colorTrunk    = rl.NewColor(110, 76, 50, 255)
	colorCanopy   = rl.NewColor(46, 125, 50, 255)
	colorRock     = rl.NewColor(120, 120, 128, 255)
	colorMountain = rl.NewColor(105, 112, 125, 255)
	colorBody     = rl.NewColor(220, 40, 40, 255)
	colorCabin    = rl.NewColor(40, 40, 48, 255)
	colorWheel    = rl.NewColor(25, 25, 25, 255)
)

func toColor(c world.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

// buildScene turns the layout into render objects. The vehicle object is
// returned separately so the host can copy the simulated pose onto it.
func buildScene(l *world.Layout, monitor *proximity.Monitor, v *vehicle.State) (*engine.Scene, *engine.GameObject) {
	scene := engine.NewScene("Main")

	ground := engine.NewGameObject("ground")
	ground.Transform.Position = mgl32.Vec3{0, -0.05, 0}
	ground.AddComponent(components.NewShapeRenderer(components.ShapeBox, mgl32.Vec3{l.Size, 0.1, l.Size}, colorGround))
	scene.AddGameObject(ground)

	road := engine.NewGameObject("road")
	road.AddComponent(components.NewShapeRenderer(components.ShapeBox, mgl32.Vec3{6, 0.02, l.Size * 1.2}, colorRoad))
	scene.AddGameObject(road)

	for _, s := range l.StationList() {
		addStation(scene, s, monitor)
	}
	for _, p := range l.Props {
		addProp(scene, p)
	}

	car := addVehicle(scene, v)
	return scene, car
}

func addStation(scene *engine.Scene, s world.Station, monitor *proximity.Monitor) {
	color := toColor(s.Color)
	size := float32(10)
	if s.Large {
		size = 24
	}

	building := engine.NewGameObject(s.ID)
	building.Tags = []string{"station"}
	building.Transform.Position = s.Position
	body := components.NewShapeRenderer(components.ShapeBox, mgl32.Vec3{size, size * 0.6, size}, color)
	body.Offset = mgl32.Vec3{0, size * 0.3, 0}
	body.Wires = true
	building.AddComponent(body)
	building.Bounds = size
	scene.AddGameObject(building)

	id := s.ID
	beacon := engine.NewGameObject(s.ID + "-beacon")
	beacon.Tags = []string{"beacon"}
	beacon.Transform.Position = s.Position
	beacon.AddComponent(components.NewShapeRenderer(components.ShapeCone, mgl32.Vec3{1.5, 3, 1.5}, color))
	beacon.AddComponent(components.NewStationBeacon(color, size*0.6+4, func() float32 {
		return monitor.IntensityOf(id)
	}))
	scene.AddGameObject(beacon)
}

func addProp(scene *engine.Scene, p world.Prop) {
	g := engine.NewGameObject(p.Name)
	g.Tags = []string{p.Kind.String()}
	g.Transform.Position = p.Position
	g.Transform.Rotation = mgl32.Vec3{0, mgl32.RadToDeg(p.Yaw), 0}

	switch p.Kind {
	case physics.KindTree:
		g.Transform.Scale = mgl32.Vec3{p.Scale, p.Scale, p.Scale}
		trunk := components.NewShapeRenderer(components.ShapeCylinder, mgl32.Vec3{0.5, 4, 0}, colorTrunk)
		canopy := components.NewShapeRenderer(components.ShapeCone, mgl32.Vec3{3, 6, 0}, colorCanopy)
		canopy.Offset = mgl32.Vec3{0, 3, 0}
		g.AddComponent(trunk)
		g.AddComponent(canopy)
		g.Bounds = 9 * p.Scale
	case physics.KindRock:
		g.Transform.Position[1] = 1
		g.AddComponent(components.NewShapeRenderer(components.ShapeSphere, mgl32.Vec3{p.Scale, 0, 0}, colorRock))
		g.Bounds = p.Scale
	case physics.KindMountain:
		height := p.Scale * 2.5
		g.AddComponent(components.NewShapeRenderer(components.ShapeCone, mgl32.Vec3{p.Scale, height, 0}, colorMountain))
		g.Bounds = height
	default:
		g.AddComponent(components.NewShapeRenderer(components.ShapeBox, mgl32.Vec3{2, 2, 2}, rl.Magenta))
	}
	scene.AddGameObject(g)
}

func addVehicle(scene *engine.Scene, v *vehicle.State) *engine.GameObject {
	car := engine.NewGameObject("vehicle")
	car.Tags = []string{"vehicle"}
	body := components.NewShapeRenderer(components.ShapeBox, mgl32.Vec3{2, 1, 4}, colorBody)
	body.Offset = mgl32.Vec3{0, 0.9, 0}
	cabin := components.NewShapeRenderer(components.ShapeBox, mgl32.Vec3{1.6, 0.8, 2}, colorCabin)
	cabin.Offset = mgl32.Vec3{0, 1.8, 0.3}
	car.AddComponent(body)
	car.AddComponent(cabin)
	scene.AddGameObject(car)

	const wheelRadius = 0.45
	speed := func() float32 { return v.LinearVelocity }
	for i, at := range []mgl32.Vec3{{-1.1, wheelRadius, -1.3}, {1.1, wheelRadius, -1.3}, {-1.1, wheelRadius, 1.3}, {1.1, wheelRadius, 1.3}} {
		wheel := engine.NewGameObject(wheelName(i))
		wheel.Tags = []string{"wheel"}
		wheel.Transform.Position = at
		wheel.Transform.Rotation = mgl32.Vec3{0, 0, 90}
		wheelShape := components.NewShapeRenderer(components.ShapeCylinder, mgl32.Vec3{wheelRadius, 0.3, 0}, colorWheel)
		wheelShape.Offset = mgl32.Vec3{0, -0.15, 0}
		wheel.AddComponent(wheelShape)
		wheel.AddComponent(components.NewWheelSpinner(wheelRadius, speed))
		car.AddChild(wheel)
		scene.AddGameObject(wheel)
	}

	syncVehicle(car, *v)
	return car
}

func wheelName(i int) string {
	return [...]string{"wheel-fl", "wheel-fr", "wheel-rl", "wheel-rr"}[i]
}

// syncVehicle copies the simulated pose onto the render object.
// Yaw 0 faces -Z; the body's long axis is Z, so no offset is needed.
func syncVehicle(car *engine.GameObject, v vehicle.State) {
	car.Transform.Position = v.Position
	car.Transform.Rotation = mgl32.Vec3{0, mgl32.RadToDeg(math32.Mod(v.Yaw, 2*math32.Pi)), 0}
}
