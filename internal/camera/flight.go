package camera

import (
	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// FlightDuration is how long one fly-to takes, in seconds.
	FlightDuration = 1.5

	// Approach offsets: the camera always closes in from the same
	// raised diagonal, regardless of which way the item faces.
	ApproachDistance float32 = 3
	ApproachHeight   float32 = 2

	// LookHeight lifts the look-at point so items are framed rather
	// than viewed edge-on.
	LookHeight float32 = 0.5
)

type flight struct {
	startPos    rl.Vector3
	startTarget rl.Vector3
	endPos      rl.Vector3
	endTarget   rl.Vector3
	startTime   float64
}

// Controller animates a Pose toward a target over a fixed duration.
// At most one flight is active; a new FlyTo replaces the current one,
// restarting from the live pose rather than the old flight's origin.
type Controller struct {
	pose     *Pose
	active   *flight
	duration float64
}

func NewController(pose *Pose) *Controller {
	return &Controller{
		pose:     pose,
		duration: FlightDuration,
	}
}

// FlyTo starts a flight toward the item base position. now is the
// current clock in seconds.
func (c *Controller) FlyTo(base rl.Vector3, now float64) {
	c.active = &flight{
		startPos:    c.pose.Position,
		startTarget: c.pose.Target,
		endPos: rl.Vector3{
			X: base.X + ApproachDistance,
			Y: base.Y + ApproachHeight,
			Z: base.Z + ApproachDistance,
		},
		endTarget: rl.Vector3{X: base.X, Y: base.Y + LookHeight, Z: base.Z},
		startTime: now,
	}
}

// InFlight reports whether an animation is still running.
func (c *Controller) InFlight() bool {
	return c.active != nil
}

// Update advances the active flight one tick. Without one it does
// nothing, so calling every frame is free.
func (c *Controller) Update(now float64) {
	f := c.active
	if f == nil {
		return
	}

	progress := (now - f.startTime) / c.duration
	if progress >= 1 {
		// Land exactly on the end pose, no float drift.
		c.pose.Position = f.endPos
		c.pose.Target = f.endTarget
		c.active = nil
		return
	}
	if progress < 0 {
		progress = 0
	}

	eased := easings.QuadInOut(float32(progress), 0, 1, 1)
	c.pose.Position = rl.Vector3Lerp(f.startPos, f.endPos, eased)
	c.pose.Target = rl.Vector3Lerp(f.startTarget, f.endTarget, eased)
}
