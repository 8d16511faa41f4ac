package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func rlVec(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("Laptop")

	if obj.Name != "Laptop" {
		t.Errorf("Expected name 'Laptop', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale.X != 1 || obj.Transform.Scale.Y != 1 || obj.Transform.Scale.Z != 1 {
		t.Error("new GameObject should start at unit scale")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"interactive", "desk"}

	if !obj.HasTag("interactive") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("floor") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("LaptopBase")
	child := NewGameObject("LaptopScreen")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("Child.Parent should be cleared after removal")
	}

	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}
}

func TestWorldPositionComposesParentScale(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position.X = 1
	parent.Transform.Scale.X = 2

	child := NewGameObject("Child")
	child.Transform.Position.X = 3
	parent.AddChild(child)

	pos := child.WorldPosition()
	if pos.X != 7 {
		t.Errorf("Expected world X 7 (1 + 3*2), got %f", pos.X)
	}
}

func TestWorldScaleComposes(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Scale = rlVec(2, 2, 2)

	child := NewGameObject("Child")
	child.Transform.Scale = rlVec(0.5, 1, 3)
	parent.AddChild(child)

	scale := child.WorldScale()
	if scale.X != 1 || scale.Y != 2 || scale.Z != 6 {
		t.Errorf("Unexpected world scale: %+v", scale)
	}
}

func TestWalkVisitsAllDescendants(t *testing.T) {
	root := NewGameObject("Root")
	a := NewGameObject("A")
	b := NewGameObject("B")
	root.AddChild(a)
	a.AddChild(b)

	var visited []string
	root.Walk(func(g *GameObject) {
		visited = append(visited, g.Name)
	})

	if len(visited) != 3 {
		t.Fatalf("Expected 3 visits, got %d", len(visited))
	}
	if visited[0] != "Root" || visited[1] != "A" || visited[2] != "B" {
		t.Errorf("Unexpected visit order: %v", visited)
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()                 { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	if got := GetComponent[*countingComponent](obj); got != comp {
		t.Error("GetComponent should find the added component")
	}

	if comp.GetGameObject() != obj {
		t.Error("AddComponent should back-reference the GameObject")
	}

	empty := NewGameObject("Empty")
	if got := GetComponent[*countingComponent](empty); got != nil {
		t.Error("GetComponent should return zero value when absent")
	}
}

func TestStartRunsOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Start should run once, ran %d times", comp.starts)
	}
}

func TestUpdateSkipsInactive(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 0 {
		t.Error("Update should not run on inactive objects")
	}
}
