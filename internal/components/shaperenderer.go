package components

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/engine"
)

// Shape is a raylib primitive.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeCone
	ShapeSphere
)

// ShapeRenderer draws one primitive at a local offset from its object's transform.
type ShapeRenderer struct {
	engine.BaseComponent
	Shape  Shape
	Size   mgl32.Vec3 // box extents; X is radius and Y height for round shapes
	Offset mgl32.Vec3
	Color  rl.Color
	Wires  bool
}

func NewShapeRenderer(shape Shape, size mgl32.Vec3, color rl.Color) *ShapeRenderer {
	return &ShapeRenderer{Shape: shape, Size: size, Color: color}
}

func (s *ShapeRenderer) Draw() {
	g := s.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m := g.WorldMatrix()
	rl.PushMatrix()
	rl.MultMatrixf(m[:])
	s.drawPrimitive()
	rl.PopMatrix()
}

func (s *ShapeRenderer) drawPrimitive() {
	at := rl.NewVector3(s.Offset.X(), s.Offset.Y(), s.Offset.Z())
	switch s.Shape {
	case ShapeCylinder:
		rl.DrawCylinder(at, s.Size.X(), s.Size.X(), s.Size.Y(), 16, s.Color)
	case ShapeCone:
		rl.DrawCylinder(at, 0, s.Size.X(), s.Size.Y(), 16, s.Color)
	case ShapeSphere:
		rl.DrawSphere(at, s.Size.X(), s.Color)
	default:
		rl.DrawCube(at, s.Size.X(), s.Size.Y(), s.Size.Z(), s.Color)
		if s.Wires {
			rl.DrawCubeWires(at, s.Size.X(), s.Size.Y(), s.Size.Z(), rl.DarkGray)
		}
	}
}
