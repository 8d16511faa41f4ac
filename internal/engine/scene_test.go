package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Desk")
	obj := NewGameObject("Phone")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Desk")
	obj := NewGameObject("Phone")

	scene.AddGameObject(obj)

	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Desk")
	obj1 := NewGameObject("Phone")
	obj2 := NewGameObject("Tablet")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Desk")
	obj := NewGameObject("Resume")

	scene.AddGameObject(obj)

	if scene.FindByName("Resume") != obj {
		t.Error("FindByName failed")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Desk")
	obj1 := NewGameObject("Phone")
	obj2 := NewGameObject("Tablet")
	obj3 := NewGameObject("Floor")

	obj1.Tags = []string{"interactive"}
	obj2.Tags = []string{"interactive"}
	obj3.Tags = []string{"static"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	interactive := scene.FindByTag("interactive")
	if len(interactive) != 2 {
		t.Errorf("Expected 2 interactive objects, got %d", len(interactive))
	}

	if len(scene.FindByTag("missing")) != 0 {
		t.Error("FindByTag should return empty slice for unknown tag")
	}
}

func TestSceneStartAndUpdate(t *testing.T) {
	scene := NewScene("Desk")
	obj := NewGameObject("Phone")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	scene.Start()
	scene.Update(0.016)
	scene.Update(0.016)

	if comp.starts != 1 {
		t.Errorf("Expected 1 start, got %d", comp.starts)
	}
	if comp.updates != 2 {
		t.Errorf("Expected 2 updates, got %d", comp.updates)
	}
}
