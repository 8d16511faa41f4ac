package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is the full camera state: where it stands, what it looks at.
// The flight controller mutates it; rendering and picking read it.
type Pose struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
	FovY     float32
}

// DefaultPose frames the whole desk from a raised diagonal.
func DefaultPose() Pose {
	return Pose{
		Position: rl.Vector3{X: 6, Y: 5, Z: 6},
		Target:   rl.Vector3{Y: 0.5},
		Up:       rl.Vector3{Y: 1},
		FovY:     45,
	}
}

func (p Pose) ToRaylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   p.Position,
		Target:     p.Target,
		Up:         p.Up,
		Fovy:       p.FovY,
		Projection: rl.CameraPerspective,
	}
}
