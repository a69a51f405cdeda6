// Package interaction turns pointer events into selection, drag-move and
// orbit gestures on a design.
package interaction

import (
	"roomplanner/internal/composer"
	"roomplanner/internal/scene"
	"roomplanner/pkg/geometry"
)

const (
	// PickRadius is the 3D pick distance in pixels from an item's projected
	// footprint center.
	PickRadius = 20.0

	// RotationStep is the orbit angle in radians per pixel of drag.
	RotationStep = 0.01
)

// EventKind is the phase of a pointer event.
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
)

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Event is one pointer event in panel pixels.
type Event struct {
	Kind   EventKind
	Pos    geometry.Point2D
	Button Button
}

// Intent is the outcome of handling an event.
type Intent int

const (
	IntentNone Intent = iota
	IntentSelect
	IntentClearSelection
	IntentMove
	IntentRotate
	IntentRelease
)

func (i Intent) String() string {
	switch i {
	case IntentSelect:
		return "select"
	case IntentClearSelection:
		return "clear-selection"
	case IntentMove:
		return "move"
	case IntentRotate:
		return "rotate"
	case IntentRelease:
		return "release"
	default:
		return "none"
	}
}

// State is the gesture state.
type State int

const (
	Idle State = iota
	DraggingFurniture
	Rotating
)

// Observer receives model changes made by the controller.
type Observer interface {
	SelectionChanged(f *scene.Furniture) // nil when cleared
	FurnitureMoved(f *scene.Furniture)
	ViewRotated(yaw, pitch float64)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) SelectionChanged(*scene.Furniture) {}
func (NopObserver) FurnitureMoved(*scene.Furniture)   {}
func (NopObserver) ViewRotated(float64, float64)      {}

// Controller holds the per-gesture state between pointer events. It is not
// safe for concurrent use.
type Controller struct {
	design   *scene.Design
	view     composer.View
	observer Observer

	state  State
	target *scene.Furniture
	grab   geometry.Point2D // pointer offset from the target's corner, 2D
	last   geometry.Point2D // previous pointer position, orbit
}

// New creates a controller for design shown in view. A nil observer is
// replaced with NopObserver.
func New(design *scene.Design, view composer.View, observer Observer) *Controller {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Controller{design: design, view: view, observer: observer}
}

// Design returns the design being edited.
func (c *Controller) Design() *scene.Design { return c.design }

// SetDesign replaces the design and abandons any gesture in progress.
func (c *Controller) SetDesign(d *scene.Design) {
	c.design = d
	c.reset()
}

// View returns the current view state.
func (c *Controller) View() composer.View { return c.view }

// SetView replaces the view state. A mode change abandons any gesture.
func (c *Controller) SetView(v composer.View) {
	if v.Mode != c.view.Mode {
		c.reset()
	}
	c.view = v
}

// Cancel abandons any gesture in progress.
func (c *Controller) Cancel() { c.reset() }

// State returns the gesture state.
func (c *Controller) State() State { return c.state }

// Target returns the item being dragged, if any.
func (c *Controller) Target() *scene.Furniture { return c.target }

// Frame returns the frame of the current design and view.
func (c *Controller) Frame() composer.Frame {
	if c.design == nil {
		return composer.Frame{}
	}
	return composer.NewFrame(c.design.Room(), c.view)
}

// FloorAt maps a pointer position to floor coordinates.
func (c *Controller) FloorAt(p geometry.Point2D) (x, z float64, ok bool) {
	return c.Frame().ScreenToFloor(p)
}

// Handle processes one pointer event.
func (c *Controller) Handle(ev Event) Intent {
	switch ev.Kind {
	case Press:
		return c.press(ev)
	case Move:
		return c.move(ev)
	case Release:
		return c.release()
	}
	return IntentNone
}

func (c *Controller) press(ev Event) Intent {
	if c.design == nil {
		return IntentNone
	}
	if ev.Button == ButtonSecondary {
		c.reset()
		if c.design.ClearSelection() {
			c.observer.SelectionChanged(nil)
		}
		return IntentClearSelection
	}

	fr := c.Frame()
	if !fr.Valid {
		return IntentNone
	}
	c.last = ev.Pos

	var hit *scene.Furniture
	if fr.Mode == composer.Mode2D {
		hit = pick2D(c.design, fr, ev.Pos)
	} else {
		hit = pick3D(c.design, fr, ev.Pos)
	}

	if hit == nil {
		if fr.Mode == composer.Mode3D {
			c.state = Rotating
		}
		return IntentNone
	}

	c.state = DraggingFurniture
	c.target = hit
	c.grab = geometry.Point2D{X: ev.Pos.X - hit.X()*fr.Scale, Y: ev.Pos.Y - hit.Z()*fr.Scale}
	if c.design.Select(hit) {
		c.observer.SelectionChanged(hit)
	}
	return IntentSelect
}

func (c *Controller) move(ev Event) Intent {
	switch c.state {
	case DraggingFurniture:
		if !c.design.Contains(c.target) {
			c.reset()
			return IntentNone
		}
		fr := c.Frame()
		if !fr.Valid || fr.Mode != composer.Mode2D {
			return IntentNone
		}
		room := c.design.Room()
		f := c.target
		x := (ev.Pos.X - c.grab.X) / fr.Scale
		z := (ev.Pos.Y - c.grab.Y) / fr.Scale
		f.SetPosition(
			geometry.Clamp(x, 0, room.Length()-f.Width()),
			geometry.Clamp(z, 0, room.Width()-f.Depth()),
		)
		c.observer.FurnitureMoved(f)
		return IntentMove

	case Rotating:
		dx, dy := ev.Pos.X-c.last.X, ev.Pos.Y-c.last.Y
		c.last = ev.Pos
		c.view.Yaw += dx * RotationStep
		c.view.Pitch += dy * RotationStep
		c.observer.ViewRotated(c.view.Yaw, c.view.Pitch)
		return IntentRotate
	}
	return IntentNone
}

func (c *Controller) release() Intent {
	if c.state == Idle {
		return IntentNone
	}
	c.reset()
	return IntentRelease
}

func (c *Controller) reset() {
	c.state = Idle
	c.target = nil
}

// pick2D returns the first item in list order whose unrotated footprint
// contains p.
func pick2D(d *scene.Design, fr composer.Frame, p geometry.Point2D) *scene.Furniture {
	wx, wz, ok := fr.ScreenToFloor(p)
	if !ok {
		return nil
	}
	at := geometry.Point2D{X: wx, Y: wz}
	for _, f := range d.Furniture() {
		if f.Bounds().Contains(at) {
			return f
		}
	}
	return nil
}

// pick3D returns the first item in list order whose projected footprint
// center lies within PickRadius of p.
func pick3D(d *scene.Design, fr composer.Frame, p geometry.Point2D) *scene.Furniture {
	for _, f := range d.Furniture() {
		if composer.ItemScreenCenter(fr, f).Distance(p) < PickRadius {
			return f
		}
	}
	return nil
}
