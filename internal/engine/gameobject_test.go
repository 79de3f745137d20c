package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
	draws   int
}

func (c *countingComponent) Start()            { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }
func (c *countingComponent) Draw()             { c.draws++ }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}
	if obj.UID == uuid.Nil {
		t.Error("UID should not be nil")
	}
	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
	if !obj.Active {
		t.Error("New objects should be active")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"station", "large"}

	if !obj.HasTag("station") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("tree") {
		t.Error("HasTag should return false for non-existent tag")
	}
	if NewGameObject("Test2").HasTag("anything") {
		t.Error("HasTag should return false when Tags is empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	other := NewGameObject("Other")
	other.AddChild(child)
	if len(parent.Children) != 0 {
		t.Errorf("Reparenting should detach from old parent, got %d children", len(parent.Children))
	}
	if child.Parent != other {
		t.Error("Child.Parent should follow reparent")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}
	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}
	if found := GetComponent[*countingComponent](obj); found != comp {
		t.Error("GetComponent failed to find component")
	}
	if found := GetComponent[*BaseComponent](obj); found != nil {
		t.Error("GetComponent should return nil for missing type")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start once, got %d", comp.starts)
	}

	late := &countingComponent{}
	obj.AddComponent(late)
	if late.starts != 1 {
		t.Errorf("Component added after Start should be started, got %d", late.starts)
	}
}

func TestInactiveObjectSkipsUpdateAndDraw(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Update(0.016)
	obj.Draw()
	obj.Active = false
	obj.Update(0.016)
	obj.Draw()

	if comp.updates != 1 || comp.draws != 1 {
		t.Errorf("Expected 1 update and 1 draw, got %d and %d", comp.updates, comp.draws)
	}
}

func TestWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Vehicle")
	parent.Transform.Position = mgl32.Vec3{10, 0, 0}
	parent.Transform.Rotation = mgl32.Vec3{0, 90, 0}

	wheel := NewGameObject("Wheel")
	wheel.Transform.Position = mgl32.Vec3{1, 0, 0}
	parent.AddChild(wheel)

	got := wheel.WorldPosition()
	want := mgl32.Vec3{10, 0, -1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	parent.Transform.Scale = mgl32.Vec3{2, 2, 2}
	got = wheel.WorldPosition()
	want = mgl32.Vec3{10, 0, -2}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected %v with scale, got %v", want, got)
	}
	if s := wheel.WorldScale(); s != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("Expected inherited scale, got %v", s)
	}
}
