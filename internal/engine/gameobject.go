package engine

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in degrees
	Scale    mgl32.Vec3
}

// Matrix returns the local transform as scale, then rotation X, Y, Z, then translation.
func (t Transform) Matrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z())))
	return mgl32.Translate3D(t.Position.Elem()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.Scale.Elem()))
}

type GameObject struct {
	UID        uuid.UUID
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Bounds     float32 // bounding sphere radius for culling, zero draws always
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    uuid.New(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: mgl32.Vec3{1, 1, 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// Draw renders every Drawable component of an active object.
func (g *GameObject) Draw() {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if d, ok := c.(Drawable); ok {
			d.Draw()
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix composes the transforms from the root down to g.
func (g *GameObject) WorldMatrix() mgl32.Mat4 {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return g.Parent.WorldMatrix().Mul4(local)
}

func (g *GameObject) WorldPosition() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return g.Parent.WorldMatrix().Mul4x1(g.Transform.Position.Vec4(1)).Vec3()
}

func (g *GameObject) WorldRotation() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation().Add(g.Transform.Rotation)
}

func (g *GameObject) WorldScale() mgl32.Vec3 {
	s := g.Transform.Scale
	if g.Parent == nil {
		return s
	}
	ps := g.Parent.WorldScale()
	return mgl32.Vec3{ps.X() * s.X(), ps.Y() * s.Y(), ps.Z() * s.Z()}
}
