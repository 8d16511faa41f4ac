package picking

import (
	"deskfolio/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// Viewport holds the current drawable size in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

// Clip planes match raylib's render frustum (RL_CULL_DISTANCE_NEAR and
// RL_CULL_DISTANCE_FAR), so hit distances are measured from the same
// origin the rendered view uses.
const (
	nearPlane float32 = 0.01
	farPlane  float32 = 1000
)

// ScreenRay unprojects a screen-space point through the camera into a
// world-space ray. Screen coordinates are normalized to [-1, 1] device
// coordinates against the viewport before unprojection.
func ScreenRay(x, y float32, vp Viewport, pose camera.Pose) Ray {
	ndcX := 2*x/vp.Width - 1
	ndcY := 1 - 2*y/vp.Height // screen Y grows downward

	view := mgl32.LookAtV(toMgl(pose.Position), toMgl(pose.Target), toMgl(pose.Up))
	proj := mgl32.Perspective(mgl32.DegToRad(pose.FovY), vp.Width/vp.Height, nearPlane, farPlane)
	inv := proj.Mul4(view).Inv()

	nearPt := unproject(inv, mgl32.Vec4{ndcX, ndcY, -1, 1})
	farPt := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := farPt.Sub(nearPt)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}

	return Ray{
		Origin:    fromMgl(nearPt),
		Direction: fromMgl(dir),
	}
}

func unproject(inv mgl32.Mat4, p mgl32.Vec4) mgl32.Vec3 {
	world := inv.Mul4x1(p)
	if world.W() != 0 {
		return mgl32.Vec3{world.X() / world.W(), world.Y() / world.W(), world.Z() / world.W()}
	}
	return mgl32.Vec3{world.X(), world.Y(), world.Z()}
}

func toMgl(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
