package interact

import (
	"deskfolio/internal/camera"
	"deskfolio/internal/content"
	"deskfolio/internal/engine"
	"deskfolio/internal/picking"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HoverOpacity float32 = 0.8
	HoverScale   float32 = 1.05
	HoverLift    float32 = 0.05

	// DispatchDelay is the pause between a click and the content panel
	// opening, in seconds, so the camera is already moving when the
	// overlay appears.
	DispatchDelay = 0.5
)

// FlightStarter starts a camera flight toward an item base position.
// Satisfied by camera.Controller.
type FlightStarter interface {
	FlyTo(base rl.Vector3, now float64)
}

type pendingDispatch struct {
	kind content.Kind
	due  float64
}

// Tracker owns the interactive object registry and turns raw pointer
// events into hover feedback, camera flights and content dispatches.
// All state is touched from the frame loop only.
type Tracker struct {
	// HoverChanged fires with the newly hovered item, or nil when the
	// pointer leaves all items.
	HoverChanged engine.EventWithArg[*Item]
	// CursorChanged fires on pointer-affordance transitions; the host
	// applies the actual cursor style.
	CursorChanged engine.EventWithArg[bool]
	// Selected fires once a click's dispatch delay has elapsed.
	Selected engine.EventWithArg[content.Kind]

	picker   *picking.Picker
	flight   FlightStarter
	items    []*Item
	handles  []*engine.GameObject
	byHandle map[*engine.GameObject]*Item
	hovered  *Item
	pending  []pendingDispatch
	delay    float64
}

func NewTracker(flight FlightStarter) *Tracker {
	return &Tracker{
		picker:   picking.NewPicker(),
		flight:   flight,
		byHandle: make(map[*engine.GameObject]*Item),
		delay:    DispatchDelay,
	}
}

// Register adds a desk object to the interactive set, capturing its
// baseline transform. The returned Item is owned by the tracker.
func (t *Tracker) Register(obj *engine.GameObject, kind content.Kind) *Item {
	item := &Item{
		Object:       obj,
		Kind:         kind,
		BasePosition: obj.Transform.Position,
		BaseScale:    obj.Transform.Scale,
	}
	t.items = append(t.items, item)
	t.handles = append(t.handles, obj)
	t.byHandle[obj] = item
	return item
}

// Items returns the registered items in registration order.
func (t *Tracker) Items() []*Item {
	return t.items
}

// Hovered returns the currently hovered item, or nil.
func (t *Tracker) Hovered() *Item {
	return t.hovered
}

// PointerMove re-picks under the new pointer position and shifts hover
// feedback if the hit changed. Safe to call on every move event.
func (t *Tracker) PointerMove(x, y float32, vp picking.Viewport, pose camera.Pose) {
	res := t.picker.Pick(x, y, vp, pose, t.handles)

	var next *Item
	if res.Hit {
		next = t.byHandle[res.Object]
	}
	if next == t.hovered {
		return
	}

	wasHovering := t.hovered != nil
	if t.hovered != nil {
		t.hovered.revert()
	}
	t.hovered = next
	if next != nil {
		next.applyHover()
	}

	t.HoverChanged.Invoke(next)
	if isHovering := next != nil; isHovering != wasHovering {
		t.CursorChanged.Invoke(isHovering)
	}
}

// ClearHover reverts any active hover feedback, as if the pointer left
// every item. Used when something else takes over the pointer.
func (t *Tracker) ClearHover() {
	if t.hovered == nil {
		return
	}
	t.hovered.revert()
	t.hovered = nil
	t.HoverChanged.Invoke(nil)
	t.CursorChanged.Invoke(false)
}

// Click picks under the pointer; a hit starts a camera flight and
// schedules the item's content for dispatch after the fixed delay.
// A miss does nothing.
func (t *Tracker) Click(x, y float32, vp picking.Viewport, pose camera.Pose, now float64) {
	res := t.picker.Pick(x, y, vp, pose, t.handles)
	if !res.Hit {
		return
	}
	item := t.byHandle[res.Object]

	if t.flight != nil {
		t.flight.FlyTo(item.BasePosition, now)
	}

	// Fire-and-forget: a second click before this fires does not cancel
	// it, the later dispatch simply wins visually.
	t.pending = append(t.pending, pendingDispatch{kind: item.Kind, due: now + t.delay})
}

// Update fires any dispatches whose delay has elapsed. Called once per
// frame from the run loop.
func (t *Tracker) Update(now float64) {
	if len(t.pending) == 0 {
		return
	}
	remaining := t.pending[:0]
	for _, p := range t.pending {
		if now >= p.due {
			t.Selected.Invoke(p.kind)
		} else {
			remaining = append(remaining, p)
		}
	}
	t.pending = remaining
}
