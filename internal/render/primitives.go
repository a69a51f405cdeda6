// Package render defines the drawing primitives produced by scene
// composition and the targets that rasterize or serialize them.
package render

import (
	"image/color"

	"roomplanner/pkg/geometry"
)

// Primitive is one drawable element. Primitives are drawn in list order,
// later ones over earlier ones.
type Primitive interface {
	Bounds() geometry.Rect
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, Width, Height float64
	Fill                color.RGBA
	Stroke              color.RGBA
	StrokeWidth         float64 // 0 = no outline
	Filled              bool
	Label               string // Optional label drawn centered in the rectangle
	Tag                 string // Identifies what produced the primitive (e.g. "floor", an item ID)
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() geometry.Rect {
	return geometry.NewRect(r.X, r.Y, r.Width, r.Height)
}

// Polygon is a closed screen polygon.
type Polygon struct {
	Points      []geometry.Point2D
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	Filled      bool
	Label       string
	Tag         string
}

// Bounds returns the bounding box of the vertices.
func (p Polygon) Bounds() geometry.Rect {
	return geometry.BoundingBox(p.Points)
}

// Line is a straight screen segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          color.RGBA
	Width          float64
	Tag            string
}

// Bounds returns the box spanned by the endpoints.
func (l Line) Bounds() geometry.Rect {
	return geometry.BoundingBox([]geometry.Point2D{{X: l.X1, Y: l.Y1}, {X: l.X2, Y: l.Y2}})
}

// Target receives primitives in draw order.
type Target interface {
	DrawRect(r Rect)
	DrawPolygon(p Polygon)
	DrawLine(l Line)
}

// Draw submits prims to t in order. Unknown primitive types are skipped.
func Draw(t Target, prims []Primitive) {
	for _, p := range prims {
		switch v := p.(type) {
		case Rect:
			t.DrawRect(v)
		case *Rect:
			t.DrawRect(*v)
		case Polygon:
			t.DrawPolygon(v)
		case *Polygon:
			t.DrawPolygon(*v)
		case Line:
			t.DrawLine(v)
		case *Line:
			t.DrawLine(*v)
		}
	}
}

// Tagged returns the primitives whose tag equals tag.
func Tagged(prims []Primitive, tag string) []Primitive {
	var out []Primitive
	for _, p := range prims {
		if tagOf(p) == tag {
			out = append(out, p)
		}
	}
	return out
}

func tagOf(p Primitive) string {
	switch v := p.(type) {
	case Rect:
		return v.Tag
	case *Rect:
		return v.Tag
	case Polygon:
		return v.Tag
	case *Polygon:
		return v.Tag
	case Line:
		return v.Tag
	case *Line:
		return v.Tag
	}
	return ""
}
