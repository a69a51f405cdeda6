// Package canvas provides the design canvas widget with selection, drag,
// orbit and zoom.
package canvas

import (
	"image"
	"sync"

	"roomplanner/internal/app"
	"roomplanner/internal/composer"
	"roomplanner/internal/export"
	"roomplanner/internal/interaction"
	"roomplanner/internal/render"
	"roomplanner/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// DesignCanvas draws the open design and turns pointer input into
// interaction events.
type DesignCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// Composed primitives; written on the event goroutine, read by draw
	mu    sync.Mutex
	prims []render.Primitive

	// Pointer state
	pressed bool

	// Callbacks
	onHover func(x, z float64, ok bool) // Floor coordinates under the pointer
}

// NewDesignCanvas creates a canvas bound to state and redraws it whenever
// the design or view changes.
func NewDesignCanvas(state *app.State) *DesignCanvas {
	dc := &DesignCanvas{state: state}

	dc.raster = fynecanvas.NewRaster(dc.draw)
	dc.raster.ScaleMode = fynecanvas.ImageScalePixels
	dc.raster.SetMinSize(fyne.NewSize(400, 300))

	redraw := func(interface{}) { dc.Refresh() }
	for _, ev := range []app.EventType{
		app.EventDesignLoaded,
		app.EventFurnitureChanged,
		app.EventFurnitureEdited,
		app.EventFurnitureMoved,
		app.EventSelectionChanged,
		app.EventViewChanged,
	} {
		state.On(ev, redraw)
	}

	dc.ExtendBaseWidget(dc)
	return dc
}

// OnHover sets the callback for pointer floor-coordinate updates.
func (dc *DesignCanvas) OnHover(callback func(x, z float64, ok bool)) {
	dc.onHover = callback
}

// Refresh recomposes the scene and redraws.
func (dc *DesignCanvas) Refresh() {
	dc.compose()
	dc.raster.Refresh()
}

// pixelScale returns device pixels per Fyne unit.
func (dc *DesignCanvas) pixelScale() float64 {
	if a := fyne.CurrentApp(); a != nil {
		if c := a.Driver().CanvasForObject(dc); c != nil && c.Scale() > 0 {
			return float64(c.Scale())
		}
	}
	return 1
}

// toPanel converts a widget-relative position to panel pixels.
func (dc *DesignCanvas) toPanel(pos fyne.Position) geometry.Point2D {
	s := dc.pixelScale()
	return geometry.Point2D{X: float64(pos.X) * s, Y: float64(pos.Y) * s}
}

func (dc *DesignCanvas) compose() {
	size := dc.Size()
	s := dc.pixelScale()
	dc.state.SetPanelSize(float64(size.Width)*s, float64(size.Height)*s)
	prims := composer.Compose(dc.state.Design(), dc.state.View())

	dc.mu.Lock()
	dc.prims = prims
	dc.mu.Unlock()
}

// draw is the raster drawing function.
func (dc *DesignCanvas) draw(w, h int) image.Image {
	dc.mu.Lock()
	prims := dc.prims
	dc.mu.Unlock()

	r := render.NewRaster(w, h, export.Background)
	render.Draw(r, prims)
	return r.Image()
}

func (dc *DesignCanvas) handle(ev interaction.Event) {
	if dc.state.HandlePointer(ev) != interaction.IntentNone {
		dc.Refresh()
	}
}

// MouseDown implements desktop.Mouseable.
func (dc *DesignCanvas) MouseDown(ev *desktop.MouseEvent) {
	button := interaction.ButtonPrimary
	switch ev.Button {
	case desktop.MouseButtonPrimary:
	case desktop.MouseButtonSecondary:
		button = interaction.ButtonSecondary
	default:
		return
	}
	dc.pressed = button == interaction.ButtonPrimary
	dc.handle(interaction.Event{Kind: interaction.Press, Pos: dc.toPanel(ev.Position), Button: button})
}

// MouseUp implements desktop.Mouseable.
func (dc *DesignCanvas) MouseUp(*desktop.MouseEvent) {
	dc.release()
}

// Dragged implements fyne.Draggable.
func (dc *DesignCanvas) Dragged(ev *fyne.DragEvent) {
	if !dc.pressed {
		return
	}
	dc.handle(interaction.Event{Kind: interaction.Move, Pos: dc.toPanel(ev.Position)})
	dc.hover(ev.Position)
}

// DragEnd implements fyne.Draggable.
func (dc *DesignCanvas) DragEnd() {
	dc.release()
}

func (dc *DesignCanvas) release() {
	if !dc.pressed {
		return
	}
	dc.pressed = false
	dc.handle(interaction.Event{Kind: interaction.Release})
}

// Scrolled implements fyne.Scrollable; the wheel zooms.
func (dc *DesignCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.state.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.state.ZoomOut()
	}
}

// MouseIn implements desktop.Hoverable.
func (dc *DesignCanvas) MouseIn(ev *desktop.MouseEvent) { dc.hover(ev.Position) }

// MouseMoved implements desktop.Hoverable.
func (dc *DesignCanvas) MouseMoved(ev *desktop.MouseEvent) { dc.hover(ev.Position) }

// MouseOut implements desktop.Hoverable.
func (dc *DesignCanvas) MouseOut() {
	if dc.onHover != nil {
		dc.onHover(0, 0, false)
	}
}

func (dc *DesignCanvas) hover(pos fyne.Position) {
	if dc.onHover == nil {
		return
	}
	x, z, ok := dc.state.Controller().FloorAt(dc.toPanel(pos))
	dc.onHover(x, z, ok)
}

// CreateRenderer implements fyne.Widget.
func (dc *DesignCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &designCanvasRenderer{canvas: dc}
}

type designCanvasRenderer struct {
	canvas *DesignCanvas
	last   fyne.Size
}

func (r *designCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	if size != r.last {
		r.last = size
		r.canvas.compose()
	}
}

func (r *designCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.raster.MinSize()
}

func (r *designCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *designCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *designCanvasRenderer) Destroy() {}

var (
	_ desktop.Mouseable = (*DesignCanvas)(nil)
	_ desktop.Hoverable = (*DesignCanvas)(nil)
	_ fyne.Draggable    = (*DesignCanvas)(nil)
	_ fyne.Scrollable   = (*DesignCanvas)(nil)
)
