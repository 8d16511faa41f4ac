package components

import (
	"deskfolio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshPlane
)

// MeshRenderer draws a primitive shape at the owning object's world
// transform. Opacity is the hover feedback channel.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Opacity  float32
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
		Opacity:  1,
	}
}

func (m *MeshRenderer) SetOpacity(a float32) { m.Opacity = a }
func (m *MeshRenderer) GetOpacity() float32  { return m.Opacity }

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}
	tint := rl.Fade(m.Color, m.Opacity)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, tint)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, tint)
	}
}
