package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"roomplanner/pkg/colorutil"
	"roomplanner/pkg/geometry"

	svg "github.com/ajstarks/svgo"
)

// SVG writes primitives as an SVG document. Coordinates are rounded to
// whole pixels.
type SVG struct {
	canvas *svg.SVG
	closed bool
}

// NewSVG starts a w x h document on out with a background rectangle.
func NewSVG(out io.Writer, w, h int, bg color.RGBA) *SVG {
	s := &SVG{canvas: svg.New(out)}
	s.canvas.Start(w, h)
	s.canvas.Rect(0, 0, w, h, "fill:"+colorutil.Hex(bg))
	return s
}

// Close ends the document. Further drawing is ignored.
func (s *SVG) Close() {
	if s.closed {
		return
	}
	s.canvas.End()
	s.closed = true
}

// DrawRect writes a <rect>.
func (s *SVG) DrawRect(r Rect) {
	if s.closed {
		return
	}
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	s.canvas.Rect(round(x), round(y), round(w), round(h), style(r.Filled, r.Fill, r.Stroke, r.StrokeWidth))
	if r.Label != "" {
		s.text(r.Label, x+w/2, y+h/2, r.Stroke)
	}
}

// DrawPolygon writes a <polygon>.
func (s *SVG) DrawPolygon(p Polygon) {
	if s.closed || len(p.Points) < 3 {
		return
	}
	xs := make([]int, len(p.Points))
	ys := make([]int, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = round(pt.X), round(pt.Y)
	}
	s.canvas.Polygon(xs, ys, style(p.Filled, p.Fill, p.Stroke, p.StrokeWidth))
	if p.Label != "" {
		c := geometry.Centroid(p.Points)
		s.text(p.Label, c.X, c.Y, p.Stroke)
	}
}

// DrawLine writes a <line>.
func (s *SVG) DrawLine(l Line) {
	if s.closed {
		return
	}
	w := l.Width
	if w <= 0 {
		w = 1
	}
	s.canvas.Line(round(l.X1), round(l.Y1), round(l.X2), round(l.Y2),
		fmt.Sprintf("stroke:%s;stroke-width:%g", colorutil.Hex(l.Color), w))
}

func (s *SVG) text(t string, x, y float64, c color.RGBA) {
	s.canvas.Text(round(x), round(y), t,
		fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:11px;text-anchor:middle;dominant-baseline:middle", colorutil.Hex(c)))
}

func style(filled bool, fill, stroke color.RGBA, width float64) string {
	fillStyle := "fill:none"
	if filled {
		fillStyle = "fill:" + colorutil.Hex(fill)
	}
	if width <= 0 {
		return fillStyle
	}
	return fmt.Sprintf("%s;stroke:%s;stroke-width:%g", fillStyle, colorutil.Hex(stroke), width)
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
