package scene

import (
	"image/color"
	"math"

	"roomplanner/pkg/colorutil"
	"roomplanner/pkg/geometry"

	"github.com/google/uuid"
)

// Shade factor bounds.
const (
	MinShade = 0.1
	MaxShade = 1.0
)

// Furniture is one placed item. Position (X, Z) is the footprint's corner
// nearest the room origin; the item always stands on the floor.
//
// Dimension setters accept any value, including non-positive ones; callers
// that take user input validate with ParseLength first.
type Furniture struct {
	id          uuid.UUID
	kind        Kind
	subtype     string
	x, z        float64
	width       float64
	depth       float64
	height      float64
	color       color.RGBA
	orientation Orientation
	partColors  map[string]color.RGBA
	shade       float64
	selected    bool
}

// NewFurniture creates an item of the given kind with catalog defaults.
// An empty subtype selects the kind's default subtype.
func NewFurniture(kind Kind, subtype string) *Furniture {
	return NewFurnitureWithID(uuid.New(), kind, subtype)
}

// NewFurnitureWithID is NewFurniture with a caller-supplied identity, used
// when restoring a saved design.
func NewFurnitureWithID(id uuid.UUID, kind Kind, subtype string) *Furniture {
	if subtype == "" {
		if subs := Subtypes(kind); len(subs) > 0 {
			subtype = subs[0]
		}
	}
	base := colorutil.Gray
	if e, ok := Lookup(kind); ok {
		base = e.Color
	}
	size := DefaultSize(kind, subtype)

	f := &Furniture{
		id:          id,
		kind:        kind,
		subtype:     subtype,
		width:       size.Width,
		depth:       size.Depth,
		height:      size.Height,
		color:       base,
		orientation: North,
		shade:       MaxShade,
	}
	f.reseedParts()
	return f
}

// ID returns the item's stable identity.
func (f *Furniture) ID() uuid.UUID { return f.id }

// Kind returns the furniture type.
func (f *Furniture) Kind() Kind { return f.kind }

// Subtype returns the free-form subtype.
func (f *Furniture) Subtype() string { return f.subtype }

// X returns the position along the room length.
func (f *Furniture) X() float64 { return f.x }

// Z returns the position along the room width.
func (f *Furniture) Z() float64 { return f.z }

// Width returns the extent along X before orientation is applied.
func (f *Furniture) Width() float64 { return f.width }

// Depth returns the extent along Z before orientation is applied.
func (f *Furniture) Depth() float64 { return f.depth }

// Height returns the vertical extent.
func (f *Furniture) Height() float64 { return f.height }

// Color returns the unshaded base color.
func (f *Furniture) Color() color.RGBA { return f.color }

// Orientation returns the facing direction.
func (f *Furniture) Orientation() Orientation { return f.orientation }

// ShadeFactor returns the stored shade factor in [MinShade, MaxShade].
func (f *Furniture) ShadeFactor() float64 { return f.shade }

// Selected reports the selection flag.
func (f *Furniture) Selected() bool { return f.selected }

// SetKind changes the type and re-seeds the part colors.
func (f *Furniture) SetKind(kind Kind) {
	f.kind = kind
	f.reseedParts()
}

// SetSubtype changes the subtype and re-seeds the part colors.
func (f *Furniture) SetSubtype(subtype string) {
	f.subtype = subtype
	f.reseedParts()
}

// SetPosition moves the item on the floor.
func (f *Furniture) SetPosition(x, z float64) {
	f.x = x
	f.z = z
}

// SetX sets the position along the room length.
func (f *Furniture) SetX(x float64) { f.x = x }

// SetZ sets the position along the room width.
func (f *Furniture) SetZ(z float64) { f.z = z }

// SetWidth sets the extent along X.
func (f *Furniture) SetWidth(w float64) { f.width = w }

// SetDepth sets the extent along Z.
func (f *Furniture) SetDepth(d float64) { f.depth = d }

// SetHeight sets the vertical extent.
func (f *Furniture) SetHeight(h float64) { f.height = h }

// SetSize sets all three extents.
func (f *Furniture) SetSize(w, d, h float64) {
	f.width, f.depth, f.height = w, d, h
}

// SetColor changes the base color. Every per-part override is discarded and
// the part map is re-seeded with the kind's defaults.
func (f *Furniture) SetColor(c color.RGBA) {
	c.A = 255
	f.color = c
	f.reseedParts()
}

// SetOrientation changes the facing direction.
func (f *Furniture) SetOrientation(o Orientation) { f.orientation = o }

// SetShadeFactor stores the factor clamped to [MinShade, MaxShade].
func (f *Furniture) SetShadeFactor(shade float64) {
	if math.IsNaN(shade) {
		shade = MaxShade
	}
	f.shade = geometry.Clamp(shade, MinShade, MaxShade)
}

// SetSelected sets the selection flag. Prefer Design.Select, which keeps a
// single selection.
func (f *Furniture) SetSelected(selected bool) { f.selected = selected }

// SetPartColor overrides the color of one named part.
func (f *Furniture) SetPartColor(part string, c color.RGBA) {
	c.A = 255
	f.partColors[part] = c
}

// RawPartColor returns the unshaded color for a part and whether the part
// has an entry in the map.
func (f *Furniture) RawPartColor(part string) (color.RGBA, bool) {
	c, ok := f.partColors[part]
	return c, ok
}

// PartColors returns a copy of the unshaded part-color map.
func (f *Furniture) PartColors() map[string]color.RGBA {
	out := make(map[string]color.RGBA, len(f.partColors))
	for k, v := range f.partColors {
		out[k] = v
	}
	return out
}

// Parts returns the item's named parts in draw order.
func (f *Furniture) Parts() []string {
	return PartNames(f.kind, f.subtype)
}

// DisplayColor returns the base color scaled by the shade factor.
func (f *Furniture) DisplayColor() color.RGBA {
	return colorutil.Shade(f.color, f.shade)
}

// PartColor returns the part's color (base color when the part has no
// entry) scaled by the shade factor.
func (f *Furniture) PartColor(part string) color.RGBA {
	c, ok := f.partColors[part]
	if !ok {
		c = f.color
	}
	return colorutil.Shade(c, f.shade)
}

// EffectiveWidth is the extent along X once orientation is applied.
func (f *Furniture) EffectiveWidth() float64 {
	if f.orientation.Sideways() {
		return f.depth
	}
	return f.width
}

// EffectiveDepth is the extent along Z once orientation is applied.
func (f *Furniture) EffectiveDepth() float64 {
	if f.orientation.Sideways() {
		return f.width
	}
	return f.depth
}

// Bounds returns the unrotated floor rectangle [x, x+width] x [z, z+depth].
func (f *Furniture) Bounds() geometry.Rect {
	return geometry.NewRect(f.x, f.z, f.width, f.depth)
}

// FootprintCenter returns the center of the rotated floor footprint.
func (f *Furniture) FootprintCenter() geometry.Point3D {
	return geometry.Point3D{
		X: f.x + f.EffectiveWidth()/2,
		Z: f.z + f.EffectiveDepth()/2,
	}
}

// Clone returns a deep copy with a fresh identity and no selection.
func (f *Furniture) Clone() *Furniture {
	c := *f
	c.id = uuid.New()
	c.selected = false
	c.partColors = f.PartColors()
	return &c
}

func (f *Furniture) reseedParts() {
	f.partColors = DefaultPartColors(f.kind, f.subtype, f.color)
}
