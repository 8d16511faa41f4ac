package interact

import (
	"deskfolio/internal/content"
	"deskfolio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Item is one registered clickable desk object: the top-level scene
// handle plus the state hover feedback works against. BasePosition and
// BaseScale are captured once at registration and never change; hover
// effects are deltas on top of them.
type Item struct {
	Object       *engine.GameObject
	Kind         content.Kind
	BasePosition rl.Vector3
	BaseScale    rl.Vector3
	Hovered      bool
}

// applyHover dims every renderable part, scales the item up slightly and
// lifts it off its base position.
func (it *Item) applyHover() {
	it.Hovered = true
	it.setOpacity(HoverOpacity)
	it.Object.Transform.Scale = rl.Vector3{
		X: it.BaseScale.X * HoverScale,
		Y: it.BaseScale.Y * HoverScale,
		Z: it.BaseScale.Z * HoverScale,
	}
	it.Object.Transform.Position = rl.Vector3{
		X: it.BasePosition.X,
		Y: it.BasePosition.Y + HoverLift,
		Z: it.BasePosition.Z,
	}
}

// revert restores the exact registration-time baseline.
func (it *Item) revert() {
	it.Hovered = false
	it.setOpacity(1)
	it.Object.Transform.Scale = it.BaseScale
	it.Object.Transform.Position = it.BasePosition
}

// setOpacity fades the whole composite. Parts without a fadeable
// renderer are tolerated and skipped.
func (it *Item) setOpacity(a float32) {
	it.Object.Walk(func(part *engine.GameObject) {
		for _, c := range part.Components() {
			if f, ok := c.(engine.Fadeable); ok {
				f.SetOpacity(a)
			}
		}
	})
}
