package scene

import (
	"image/color"

	"roomplanner/pkg/colorutil"
)

// Default room colors.
var (
	DefaultFloorColor = colorutil.RGB(222, 203, 164)
	DefaultWallColor  = colorutil.RGB(236, 236, 226)
)

// Room is the rectangular space being furnished. Length runs along X, width
// along Z and height along Y. Dimensions are fixed once created.
type Room struct {
	length     float64
	width      float64
	height     float64
	floorColor color.RGBA
	wallColor  color.RGBA
}

// NewRoom creates a room with default colors.
func NewRoom(length, width, height float64) *Room {
	return &Room{
		length:     length,
		width:      width,
		height:     height,
		floorColor: DefaultFloorColor,
		wallColor:  DefaultWallColor,
	}
}

// Length returns the extent along X.
func (r *Room) Length() float64 { return r.length }

// Width returns the extent along Z.
func (r *Room) Width() float64 { return r.width }

// Height returns the wall height.
func (r *Room) Height() float64 { return r.height }

// FloorColor returns the floor color.
func (r *Room) FloorColor() color.RGBA { return r.floorColor }

// WallColor returns the wall color.
func (r *Room) WallColor() color.RGBA { return r.wallColor }

// SetFloorColor changes the floor color.
func (r *Room) SetFloorColor(c color.RGBA) {
	c.A = 255
	r.floorColor = c
}

// SetWallColor changes the wall color.
func (r *Room) SetWallColor(c color.RGBA) {
	c.A = 255
	r.wallColor = c
}
