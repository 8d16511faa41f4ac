package scene

import (
	"deskfolio/internal/components"
	"deskfolio/internal/content"
	"deskfolio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// WorldItem pairs a registered top-level handle with its logical kind.
type WorldItem struct {
	Object *engine.GameObject
	Kind   content.Kind
}

// World is the built desk scene: static geometry plus the interactive
// item handles ready for registration.
type World struct {
	Scene *engine.Scene
	Items []WorldItem
}

// Build assembles the scene from a layout. Items whose model loaded get
// a ModelRenderer; the rest get placeholder geometry for that slot only.
// Items that can be built neither way leave their desk slot empty.
func Build(layout *Layout, models map[content.Kind]rl.Model, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{Scene: engine.NewScene("Desk")}

	floor := engine.NewGameObject("Floor")
	floor.Tags = []string{"static"}
	floor.AddComponent(components.NewMeshRenderer(components.MeshPlane, LookupColor(layout.Floor.Color),
		rl.Vector3{X: layout.Floor.Size, Z: layout.Floor.Size}))
	w.Scene.AddGameObject(floor)

	desk := engine.NewGameObject("Desk")
	desk.Tags = []string{"static"}
	desk.Transform.Position = vec3(layout.Desk.Position)
	desk.AddComponent(components.NewMeshRenderer(components.MeshCube, LookupColor(layout.Desk.Color), vec3(layout.Desk.Size)))
	w.Scene.AddGameObject(desk)

	for _, def := range layout.Items {
		kind, ok := content.ParseKind(def.Kind)
		if !ok {
			log.Warn("unknown item kind in layout, slot stays empty", zap.String("kind", def.Kind))
			continue
		}

		obj := buildItem(kind, LookupColor(def.Color), models)
		if obj == nil {
			log.Warn("no geometry for item, slot stays empty", zap.String("kind", def.Kind))
			continue
		}

		obj.Transform.Position = vec3(def.Position)
		w.Scene.AddGameObject(obj)
		w.Items = append(w.Items, WorldItem{Object: obj, Kind: kind})
	}

	w.Scene.Start()
	return w
}

func buildItem(kind content.Kind, color rl.Color, models map[content.Kind]rl.Model) *engine.GameObject {
	model, ok := models[kind]
	if !ok {
		return BuildPlaceholder(kind, color)
	}

	size, ok := placeholderSizes[kind]
	if !ok {
		return nil
	}
	obj := engine.NewGameObject(kind.String())
	obj.Tags = []string{"interactive"}
	obj.AddComponent(components.NewModelRenderer(model, color))
	obj.AddComponent(components.NewBoxCollider(size))
	return obj
}

// Draw renders every drawable component in the scene. The caller is
// inside BeginMode3D.
func (w *World) Draw() {
	for _, obj := range w.Scene.GameObjects {
		obj.Walk(func(part *engine.GameObject) {
			for _, c := range part.Components() {
				if d, ok := c.(engine.Drawable); ok {
					d.Draw()
				}
			}
		})
	}
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
