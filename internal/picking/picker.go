package picking

import (
	"deskfolio/internal/camera"
	"deskfolio/internal/components"
	"deskfolio/internal/engine"
)

// Result is the nearest intersection of one pick query. Object is always
// a registered top-level handle: a hit on a sub-part resolves up to the
// object it was registered under.
type Result struct {
	Object   *engine.GameObject
	Distance float32
	Hit      bool
}

const maxPickDistance float32 = 1000

// Picker runs nearest-hit ray queries against a set of interactive
// objects. It holds no state between queries and allocates nothing per
// call, so it is safe to run on every pointer move.
type Picker struct{}

func NewPicker() *Picker {
	return &Picker{}
}

// Pick casts a ray through the screen point and returns the closest
// object whose collider (or any descendant's collider) it strikes.
// An empty or nil object set simply yields no hit.
func (p *Picker) Pick(x, y float32, vp Viewport, pose camera.Pose, objects []*engine.GameObject) Result {
	ray := ScreenRay(x, y, vp, pose)
	return p.PickRay(ray, objects)
}

// PickRay is Pick with a pre-built ray, used by tests and debug tooling.
func (p *Picker) PickRay(ray Ray, objects []*engine.GameObject) Result {
	best := Result{Distance: maxPickDistance}
	for _, obj := range objects {
		if obj == nil || !obj.Active {
			continue
		}
		if dist, ok := nearestPart(ray, obj); ok && dist < best.Distance {
			best.Object = obj
			best.Distance = dist
			best.Hit = true
		}
	}
	if !best.Hit {
		return Result{}
	}
	return best
}

// nearestPart tests the object's collider and every descendant's,
// returning the closest strike. Parts without colliders are skipped.
func nearestPart(ray Ray, obj *engine.GameObject) (float32, bool) {
	dist := maxPickDistance
	hit := false
	obj.Walk(func(part *engine.GameObject) {
		box := engine.GetComponent[*components.BoxCollider](part)
		if box == nil {
			return
		}
		if t, ok := rayAABB(ray, box.WorldAABB()); ok && t < dist {
			dist = t
			hit = true
		}
	})
	return dist, hit
}

// rayAABB is the slab-method ray/box intersection. Returns the entry
// distance, or the exit distance when the ray starts inside the box.
func rayAABB(r Ray, box components.AABB) (float32, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	// X slab
	if r.Direction.X != 0 {
		t1 := (box.Min.X - r.Origin.X) / r.Direction.X
		t2 := (box.Max.X - r.Origin.X) / r.Direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin, tmax = t1, t2
	} else if r.Origin.X < box.Min.X || r.Origin.X > box.Max.X {
		return 0, false
	}

	// Y slab
	if r.Direction.Y != 0 {
		t1 := (box.Min.Y - r.Origin.Y) / r.Direction.Y
		t2 := (box.Max.Y - r.Origin.Y) / r.Direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if r.Origin.Y < box.Min.Y || r.Origin.Y > box.Max.Y {
		return 0, false
	}

	// Z slab
	if r.Direction.Z != 0 {
		t1 := (box.Min.Z - r.Origin.Z) / r.Direction.Z
		t2 := (box.Max.Z - r.Origin.Z) / r.Direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if r.Origin.Z < box.Min.Z || r.Origin.Z > box.Max.Z {
		return 0, false
	}

	if tmin > tmax || tmax < 0 {
		return 0, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxPickDistance {
		return 0, false
	}
	return t, true
}
