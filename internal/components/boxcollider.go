package components

import (
	"deskfolio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// WorldAABB returns the collider box in world space. World scale is
// folded into the extent so hover scaling grows the pick target too.
func (b *BoxCollider) WorldAABB() AABB {
	g := b.GetGameObject()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	scale := g.WorldScale()
	half := rl.Vector3{
		X: abs(b.Size.X*scale.X) / 2,
		Y: abs(b.Size.Y*scale.Y) / 2,
		Z: abs(b.Size.Z*scale.Z) / 2,
	}
	return AABB{
		Min: rl.Vector3{X: center.X - half.X, Y: center.Y - half.Y, Z: center.Z - half.Z},
		Max: rl.Vector3{X: center.X + half.X, Y: center.Y + half.Y, Z: center.Z + half.Z},
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
