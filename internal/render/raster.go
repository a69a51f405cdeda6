package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"roomplanner/pkg/geometry"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster draws primitives into an RGBA image with anti-aliased fills.
type Raster struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	face font.Face
}

// NewRaster creates a w x h raster cleared to bg. Non-positive sizes yield
// an empty image that ignores all drawing.
func NewRaster(w, h int, bg color.Color) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Raster{
		img:  img,
		z:    vector.NewRasterizer(w, h),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) empty() bool {
	return r.img.Bounds().Empty()
}

// DrawRect fills and outlines a rectangle.
func (r *Raster) DrawRect(rc Rect) {
	x, y, w, h := rc.X, rc.Y, rc.Width, rc.Height
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	pts := []geometry.Point2D{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	if rc.Filled {
		r.fill(pts, rc.Fill)
	}
	if rc.StrokeWidth > 0 {
		r.outline(pts, rc.Stroke, rc.StrokeWidth)
	}
	if rc.Label != "" {
		r.label(rc.Label, x+w/2, y+h/2, rc.Stroke)
	}
}

// DrawPolygon fills and outlines a closed polygon. Polygons with fewer than
// three vertices are skipped.
func (r *Raster) DrawPolygon(p Polygon) {
	if len(p.Points) < 3 {
		return
	}
	if p.Filled {
		r.fill(p.Points, p.Fill)
	}
	if p.StrokeWidth > 0 {
		r.outline(p.Points, p.Stroke, p.StrokeWidth)
	}
	if p.Label != "" {
		c := geometry.Centroid(p.Points)
		r.label(p.Label, c.X, c.Y, p.Stroke)
	}
}

// DrawLine draws a segment of the given width (1 pixel if unset).
func (r *Raster) DrawLine(l Line) {
	w := l.Width
	if w <= 0 {
		w = 1
	}
	r.segment(geometry.Point2D{X: l.X1, Y: l.Y1}, geometry.Point2D{X: l.X2, Y: l.Y2}, l.Color, w)
}

// fill rasterizes a closed path with the non-zero rule.
func (r *Raster) fill(pts []geometry.Point2D, c color.RGBA) {
	if r.empty() || !finite(pts) {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// outline strokes every edge of a closed path.
func (r *Raster) outline(pts []geometry.Point2D, c color.RGBA, width float64) {
	for i := range pts {
		r.segment(pts[i], pts[(i+1)%len(pts)], c, width)
	}
}

// segment draws a line as a filled quad extended by half the width at each
// end so that adjacent edges join without notches.
func (r *Raster) segment(a, b geometry.Point2D, c color.RGBA, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		half := width / 2
		r.fill([]geometry.Point2D{
			{X: a.X - half, Y: a.Y - half}, {X: a.X + half, Y: a.Y - half},
			{X: a.X + half, Y: a.Y + half}, {X: a.X - half, Y: a.Y + half},
		}, c)
		return
	}
	ux, uy := dx/length*width/2, dy/length*width/2
	nx, ny := -uy, ux
	r.fill([]geometry.Point2D{
		{X: a.X - ux + nx, Y: a.Y - uy + ny},
		{X: b.X + ux + nx, Y: b.Y + uy + ny},
		{X: b.X + ux - nx, Y: b.Y + uy - ny},
		{X: a.X - ux - nx, Y: a.Y - uy - ny},
	}, c)
}

// label draws text centered on (cx, cy).
func (r *Raster) label(text string, cx, cy float64, c color.RGBA) {
	if r.empty() {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
	}
	width := d.MeasureString(text)
	metrics := r.face.Metrics()
	x := fixed.Int26_6(cx*64) - width/2
	y := fixed.Int26_6(cy*64) + (metrics.Ascent-metrics.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
}

func finite(pts []geometry.Point2D) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
