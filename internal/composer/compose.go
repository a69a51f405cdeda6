package composer

import (
	"image/color"

	"roomplanner/internal/projection"
	"roomplanner/internal/render"
	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"
	"roomplanner/pkg/geometry"
)

// Tags of the non-furniture primitives. Furniture primitives are tagged
// with the item's ID.
const (
	TagFloor     = "floor"
	TagGrid      = "grid"
	TagWall      = "wall"
	TagSelection = "selection"
)

const (
	itemStroke      = 1.0
	selectionStroke = 3.0
	floorStroke     = 2.0
)

// MaxGridLines bounds the grid along either axis; larger rooms get none.
const MaxGridLines = 500

// Compose returns the primitives for design drawn in view, back to front.
// An invalid frame yields nil.
func Compose(design *scene.Design, view View) []render.Primitive {
	if design == nil {
		return nil
	}
	fr := NewFrame(design.Room(), view)
	if !fr.Valid {
		return nil
	}
	if fr.Mode == Mode3D {
		return compose3D(design, fr)
	}
	return compose2D(design, fr, view.Grid)
}

func compose2D(design *scene.Design, fr Frame, grid bool) []render.Primitive {
	room := design.Room()
	s := fr.Scale
	l, w := room.Length(), room.Width()

	prims := []render.Primitive{
		render.Rect{
			Width: l * s, Height: w * s,
			Fill: room.FloorColor(), Filled: true,
			Stroke: colorutil.Darker(room.WallColor()), StrokeWidth: floorStroke,
			Tag: TagFloor,
		},
	}

	if grid && l <= MaxGridLines && w <= MaxGridLines {
		gc := colorutil.Shade(room.FloorColor(), 0.85)
		for i := 1; float64(i) < l; i++ {
			x := float64(i) * s
			prims = append(prims, render.Line{X1: x, Y1: 0, X2: x, Y2: w * s, Color: gc, Width: 1, Tag: TagGrid})
		}
		for i := 1; float64(i) < w; i++ {
			z := float64(i) * s
			prims = append(prims, render.Line{X1: 0, Y1: z, X2: l * s, Y2: z, Color: gc, Width: 1, Tag: TagGrid})
		}
	}

	for _, f := range design.Furniture() {
		c := f.DisplayColor()
		r := render.Rect{
			X: f.X() * s, Y: f.Z() * s,
			Width: f.Width() * s, Height: f.Depth() * s,
			Fill: c, Filled: true,
			Stroke: colorutil.Contrast(c), StrokeWidth: itemStroke,
			Label: f.Kind().String(),
			Tag:   f.ID().String(),
		}
		if f.Selected() {
			r.Stroke = colorutil.Highlight
			r.StrokeWidth = selectionStroke
		}
		prims = append(prims, r)
	}
	return prims
}

func compose3D(design *scene.Design, fr Frame) []render.Primitive {
	room := design.Room()
	l, w, h := room.Length(), room.Width(), room.Height()
	floor, wall := room.FloorColor(), room.WallColor()

	quad := func(fill color.RGBA, tag string, pts ...geometry.Point3D) render.Polygon {
		return render.Polygon{
			Points: fr.WorldToScreenAll(pts...),
			Fill:   fill, Filled: true,
			Stroke: colorutil.Darker(fill), StrokeWidth: itemStroke,
			Tag: tag,
		}
	}

	prims := []render.Primitive{
		quad(floor, TagFloor,
			geometry.Point3D{}, geometry.Point3D{X: l}, geometry.Point3D{X: l, Z: w}, geometry.Point3D{Z: w}),
		// Only the two walls meeting at the origin corner are drawn so the
		// interior stays visible.
		quad(wall, TagWall,
			geometry.Point3D{}, geometry.Point3D{Z: w}, geometry.Point3D{Y: h, Z: w}, geometry.Point3D{Y: h}),
		quad(wall, TagWall,
			geometry.Point3D{}, geometry.Point3D{X: l}, geometry.Point3D{X: l, Y: h}, geometry.Point3D{Y: h}),
	}

	for _, f := range design.Furniture() {
		tag := f.ID().String()
		var outline []geometry.Point2D
		for _, cb := range projection.FurnitureBoxes(f) {
			for _, face := range projection.Faces(cb.Box, fr.Iso, cb.Color) {
				pts := fr.Transform.ApplyAll(face.Points)
				prims = append(prims, render.Polygon{
					Points: pts,
					Fill:   face.Fill, Filled: true,
					Stroke: face.Stroke, StrokeWidth: itemStroke,
					Tag: tag,
				})
				if f.Selected() {
					outline = append(outline, pts...)
				}
			}
		}
		if hull := geometry.ConvexHull(outline); len(hull) >= 3 {
			prims = append(prims, render.Polygon{
				Points: hull,
				Stroke: colorutil.Highlight, StrokeWidth: selectionStroke,
				Tag: TagSelection,
			})
		}
	}
	return prims
}

// ItemScreenCenter returns the screen position of f's footprint center.
func ItemScreenCenter(fr Frame, f *scene.Furniture) geometry.Point2D {
	return fr.WorldToScreen(f.FootprintCenter())
}
