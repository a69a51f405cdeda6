// Package projection maps world-space geometry to screen space with a fixed
// 30 degree isometric transform and decomposes furniture into shaded boxes.
//
// The projection is orthographic: there is no perspective divide, and
// depth ordering is left to draw order (painter's algorithm).
package projection

import (
	"math"

	"roomplanner/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Angle is the isometric axis angle.
const Angle = math.Pi / 6

var (
	cos30 = math.Cos(Angle)
	sin30 = math.Sin(Angle)
)

// Project maps a world point (y up, x/z on the floor) to screen coordinates.
//
//	isoX = (x - z) * cos30 * scale
//	isoY = ((x + z) * sin30 - y) * scale
func Project(x, y, z, scale, offsetX, offsetY float64) (screenX, screenY float64) {
	isoX := (x - z) * cos30 * scale
	isoY := ((x+z)*sin30 - y) * scale
	return isoX + offsetX, isoY + offsetY
}

// Iso bundles the scale and offset of one projection.
type Iso struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Point projects a world point.
func (iso Iso) Point(p geometry.Point3D) geometry.Point2D {
	x, y := Project(p.X, p.Y, p.Z, iso.Scale, iso.OffsetX, iso.OffsetY)
	return geometry.Point2D{X: x, Y: y}
}

// Points projects a list of world points.
func (iso Iso) Points(pts ...geometry.Point3D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(pts))
	for i, p := range pts {
		out[i] = iso.Point(p)
	}
	return out
}

// Unproject inverts the projection for a point on the horizontal plane at
// height y by solving the 2x2 linear system of the projection. It reports
// false when the scale is degenerate.
func (iso Iso) Unproject(p geometry.Point2D, y float64) (x, z float64, ok bool) {
	if iso.Scale == 0 || math.IsNaN(iso.Scale) || math.IsInf(iso.Scale, 0) {
		return 0, 0, false
	}

	// [cos30*s  -cos30*s] [x]   [sx - ox      ]
	// [sin30*s   sin30*s] [z] = [sy - oy + y*s]
	A := mat.NewDense(2, 2, []float64{
		cos30 * iso.Scale, -cos30 * iso.Scale,
		sin30 * iso.Scale, sin30 * iso.Scale,
	})
	B := mat.NewVecDense(2, []float64{
		p.X - iso.OffsetX,
		p.Y - iso.OffsetY + y*iso.Scale,
	})

	var sol mat.VecDense
	if err := sol.SolveVec(A, B); err != nil {
		return 0, 0, false
	}
	return sol.AtVec(0), sol.AtVec(1), true
}
