package scene

import (
	"deskfolio/internal/components"
	"deskfolio/internal/content"
	"deskfolio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Placeholder geometry per item kind, used for any slot whose model did
// not load in time. Sizes are in desk units.
var placeholderSizes = map[content.Kind]rl.Vector3{
	content.KindLaptop:       {X: 1.2, Y: 0.08, Z: 0.9},
	content.KindPhone:        {X: 0.35, Y: 0.05, Z: 0.7},
	content.KindNotebook:     {X: 0.8, Y: 0.12, Z: 1.0},
	content.KindBusinessCard: {X: 0.5, Y: 0.02, Z: 0.3},
	content.KindFolder:       {X: 0.9, Y: 0.06, Z: 1.2},
	content.KindResume:       {X: 0.75, Y: 0.02, Z: 1.0},
	content.KindTablet:       {X: 0.6, Y: 0.04, Z: 0.9},
}

// BuildPlaceholder makes a procedural stand-in for a desk item. The
// laptop is a two-part composite (base plus raised screen); everything
// else is a single slab. Returns nil for kinds without a recipe.
func BuildPlaceholder(kind content.Kind, color rl.Color) *engine.GameObject {
	size, ok := placeholderSizes[kind]
	if !ok {
		return nil
	}

	obj := engine.NewGameObject(kind.String())
	obj.Tags = []string{"interactive"}
	obj.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
	obj.AddComponent(components.NewBoxCollider(size))

	if kind == content.KindLaptop {
		screen := engine.NewGameObject("screen")
		screenSize := rl.Vector3{X: size.X, Y: 0.8, Z: 0.06}
		screen.Transform.Position = rl.Vector3{Y: 0.44, Z: -size.Z / 2}
		screen.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.DarkBlue, screenSize))
		screen.AddComponent(components.NewBoxCollider(screenSize))
		obj.AddChild(screen)
	}

	return obj
}
