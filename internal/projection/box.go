package projection

import (
	"image/color"

	"roomplanner/pkg/colorutil"
	"roomplanner/pkg/geometry"
)

// Box is an axis-aligned world box with its origin at the minimum corner.
type Box struct {
	X, Y, Z float64 // origin
	W, D, H float64 // extents along x, z and y
}

// Corners returns the eight projected corners: the four floor-level corners
// (x,z), (x+w,z), (x+w,z+d), (x,z+d) followed by the same four at the top.
func Corners(b Box, iso Iso) [8]geometry.Point2D {
	var out [8]geometry.Point2D
	xs := [4]float64{b.X, b.X + b.W, b.X + b.W, b.X}
	zs := [4]float64{b.Z, b.Z, b.Z + b.D, b.Z + b.D}
	for i := 0; i < 4; i++ {
		out[i] = iso.Point(geometry.Point3D{X: xs[i], Y: b.Y, Z: zs[i]})
		out[i+4] = iso.Point(geometry.Point3D{X: xs[i], Y: b.Y + b.H, Z: zs[i]})
	}
	return out
}

// FaceName identifies one of the three faces turned toward the camera.
type FaceName int

const (
	FaceFront FaceName = iota // the z+d plane
	FaceTop                   // the y+h plane
	FaceRight                 // the x+w plane
)

func (n FaceName) String() string {
	switch n {
	case FaceFront:
		return "front"
	case FaceTop:
		return "top"
	case FaceRight:
		return "right"
	default:
		return "unknown"
	}
}

// Face is one projected quadrilateral of a box.
type Face struct {
	Name   FaceName
	Points []geometry.Point2D
	Fill   color.RGBA
	Stroke color.RGBA
}

// Faces returns the three camera-facing faces in draw order: front (base
// color), top (brighter), right (darker). All share a contrasting stroke.
//
// The fixed order is only correct within one box. Separate boxes are drawn
// in the order they are submitted, with no occlusion sorting between them.
func Faces(b Box, iso Iso, c color.RGBA) [3]Face {
	p := Corners(b, iso)
	stroke := colorutil.Contrast(c)
	return [3]Face{
		{Name: FaceFront, Points: []geometry.Point2D{p[3], p[2], p[6], p[7]}, Fill: c, Stroke: stroke},
		{Name: FaceTop, Points: []geometry.Point2D{p[4], p[5], p[6], p[7]}, Fill: colorutil.Brighter(c), Stroke: stroke},
		{Name: FaceRight, Points: []geometry.Point2D{p[1], p[2], p[6], p[5]}, Fill: colorutil.Darker(c), Stroke: stroke},
	}
}
