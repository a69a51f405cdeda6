// Package composer turns a design and a view state into an ordered list of
// draw primitives, and maps between screen and room coordinates.
package composer

import (
	"math"

	"roomplanner/internal/projection"
	"roomplanner/internal/scene"
	"roomplanner/pkg/geometry"
)

const (
	MinZoom     = 0.1
	MaxZoom     = 10.0
	ZoomStep    = 1.25
	DefaultZoom = 1.0
)

// Mode selects the plan or isometric view.
type Mode int

const (
	Mode2D Mode = iota
	Mode3D
)

func (m Mode) String() string {
	if m == Mode3D {
		return "3D"
	}
	return "2D"
}

// View is the per-panel view state.
type View struct {
	Mode   Mode
	Zoom   float64
	Yaw    float64 // radians, 3D only
	Pitch  float64 // radians, 3D only
	Width  float64 // panel size in pixels
	Height float64
	Grid   bool // 1 m grid in 2D
}

// NewView returns a 2D view of the given panel size at default zoom.
func NewView(width, height float64) View {
	return View{Mode: Mode2D, Zoom: DefaultZoom, Width: width, Height: height, Grid: true}
}

// ClampZoom limits z to [MinZoom, MaxZoom]. Non-finite input resets to the
// default.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return DefaultZoom
	}
	return geometry.Clamp(z, MinZoom, MaxZoom)
}

// Frame is the resolved mapping between world and screen for one view.
type Frame struct {
	Mode  Mode
	Valid bool

	// Scale is pixels per meter. In 3D it excludes zoom, which is part of
	// Transform.
	Scale float64

	// Iso and Transform are used in 3D only.
	Iso       projection.Iso
	Transform geometry.AffineTransform
	inverse   geometry.AffineTransform
}

// NewFrame computes the frame of room drawn into view. A room or panel that
// yields a zero or non-finite scale produces an invalid frame.
func NewFrame(room *scene.Room, view View) Frame {
	fr := Frame{Mode: view.Mode, Transform: geometry.Identity(), inverse: geometry.Identity()}
	if room == nil || !positive(view.Width) || !positive(view.Height) || !positive(view.Zoom) {
		return fr
	}
	l, w, h := room.Length(), room.Width(), room.Height()

	if view.Mode == Mode2D {
		sx, sz := view.Width/l, view.Height/w
		if !positive(sx) || !positive(sz) {
			return fr
		}
		fr.Scale = math.Min(sx, sz) * view.Zoom
		fr.Valid = positive(fr.Scale)
		return fr
	}

	sx, sy := view.Width/(l+w), view.Height/(h+w)
	if !positive(sx) || !positive(sy) {
		return fr
	}
	fr.Scale = math.Min(sx, sy) * 0.5
	if !positive(fr.Scale) || !finite(view.Yaw) || !finite(view.Pitch) {
		return fr
	}

	// Center the projected room midpoint on the panel.
	center := geometry.Point2D{X: view.Width / 2, Y: view.Height / 2}
	mid := projection.Iso{Scale: fr.Scale}.Point(geometry.Point3D{X: l / 2, Y: h / 2, Z: w / 2})
	fr.Iso = projection.Iso{Scale: fr.Scale, OffsetX: center.X - mid.X, OffsetY: center.Y - mid.Y}

	// Screen-space yaw, then pitch, then zoom, all about the panel center.
	fr.Transform = geometry.ScaleAbout(center, view.Zoom).
		Compose(geometry.RotationAbout(center, view.Pitch)).
		Compose(geometry.RotationAbout(center, view.Yaw))
	inv, ok := fr.Transform.Inverse()
	if !ok {
		return fr
	}
	fr.inverse = inv
	fr.Valid = true
	return fr
}

// WorldToScreen maps a world point to panel pixels. In 2D y is ignored.
func (fr Frame) WorldToScreen(p geometry.Point3D) geometry.Point2D {
	if fr.Mode == Mode2D {
		return geometry.Point2D{X: p.X * fr.Scale, Y: p.Z * fr.Scale}
	}
	return fr.Transform.Apply(fr.Iso.Point(p))
}

// WorldToScreenAll maps several world points.
func (fr Frame) WorldToScreenAll(pts ...geometry.Point3D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(pts))
	for i, p := range pts {
		out[i] = fr.WorldToScreen(p)
	}
	return out
}

// ScreenToFloor maps a panel pixel to floor coordinates (x, z). It reports
// false for an invalid frame.
func (fr Frame) ScreenToFloor(p geometry.Point2D) (x, z float64, ok bool) {
	if !fr.Valid {
		return 0, 0, false
	}
	if fr.Mode == Mode2D {
		return p.X / fr.Scale, p.Y / fr.Scale, true
	}
	return fr.Iso.Unproject(fr.inverse.Apply(p), 0)
}

func positive(v float64) bool {
	return v > 0 && finite(v)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
