package scene

import (
	"image/color"

	"roomplanner/pkg/colorutil"
)

// Fixed part colors that do not follow the item's base color.
var (
	LegBrown    = colorutil.RGB(139, 69, 19)
	Charcoal    = colorutil.RGB(64, 64, 64)
	Silver      = colorutil.RGB(192, 192, 192)
	Steel       = colorutil.RGB(169, 169, 169)
	Linen       = colorutil.RGB(245, 245, 240)
	PillowWhite = colorutil.RGB(255, 255, 255)
	Cornsilk    = colorutil.RGB(255, 248, 220)
)

// Footprint is a width x depth x height triple in meters.
type Footprint struct {
	Width, Depth, Height float64
}

// CatalogEntry describes the defaults for one furniture kind.
type CatalogEntry struct {
	Kind      Kind
	Subtypes  []string // first entry is the default
	Size      Footprint
	Color     color.RGBA
	SizeBySub map[string]Footprint
}

var catalog = map[Kind]CatalogEntry{
	KindChair: {
		Kind:     KindChair,
		Subtypes: []string{"Standard", "Armchair", "Office"},
		Size:     Footprint{0.5, 0.5, 0.9},
		Color:    colorutil.RGB(160, 82, 45),
		SizeBySub: map[string]Footprint{
			"Armchair": {0.8, 0.8, 0.9},
		},
	},
	KindTable: {
		Kind:     KindTable,
		Subtypes: []string{"Dining", "Coffee", "Desk"},
		Size:     Footprint{1.2, 0.8, 0.75},
		Color:    colorutil.RGB(222, 184, 135),
		SizeBySub: map[string]Footprint{
			"Coffee": {1.0, 0.6, 0.45},
			"Desk":   {1.4, 0.7, 0.75},
		},
	},
	KindSofa: {
		Kind:     KindSofa,
		Subtypes: []string{"3-Seater", "2-Seater", "Loveseat"},
		Size:     Footprint{2.1, 0.9, 0.85},
		Color:    colorutil.RGB(70, 130, 180),
		SizeBySub: map[string]Footprint{
			"2-Seater": {1.6, 0.9, 0.85},
			"Loveseat": {1.3, 0.85, 0.85},
		},
	},
	KindCabinet: {
		Kind:     KindCabinet,
		Subtypes: []string{"Wardrobe", "Bookshelf", "Dresser"},
		Size:     Footprint{1.0, 0.6, 1.9},
		Color:    colorutil.RGB(139, 115, 85),
		SizeBySub: map[string]Footprint{
			"Bookshelf": {0.9, 0.35, 1.8},
			"Dresser":   {1.2, 0.5, 0.9},
		},
	},
	KindBed: {
		Kind:     KindBed,
		Subtypes: []string{"Double", "Single", "Queen", "King"},
		Size:     Footprint{1.4, 2.0, 0.6},
		Color:    colorutil.RGB(205, 133, 63),
		SizeBySub: map[string]Footprint{
			"Single": {0.9, 2.0, 0.6},
			"Queen":  {1.6, 2.0, 0.6},
			"King":   {1.9, 2.1, 0.6},
		},
	},
	KindLamp: {
		Kind:     KindLamp,
		Subtypes: []string{"Floor", "Table"},
		Size:     Footprint{0.4, 0.4, 1.6},
		Color:    Charcoal,
		SizeBySub: map[string]Footprint{
			"Table": {0.3, 0.3, 0.5},
		},
	},
}

// Lookup returns the catalog entry for a kind.
func Lookup(kind Kind) (CatalogEntry, bool) {
	e, ok := catalog[kind]
	return e, ok
}

// Subtypes returns the known subtypes of a kind, default first.
func Subtypes(kind Kind) []string {
	e, ok := catalog[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(e.Subtypes))
	copy(out, e.Subtypes)
	return out
}

// DefaultSize returns the footprint a new item of kind/subtype starts with.
func DefaultSize(kind Kind, subtype string) Footprint {
	e, ok := catalog[kind]
	if !ok {
		return Footprint{1, 1, 1}
	}
	if fp, ok := e.SizeBySub[subtype]; ok {
		return fp
	}
	return e.Size
}

// PartNames returns the named sub-parts of a kind/subtype, back to front in
// the order they are drawn.
func PartNames(kind Kind, subtype string) []string {
	switch kind {
	case KindChair:
		switch subtype {
		case "Armchair":
			return []string{"legs", "seat", "backrest", "arms"}
		case "Office":
			return []string{"base", "seat", "backrest"}
		}
		return []string{"legs", "seat", "backrest"}
	case KindTable:
		if subtype == "Desk" {
			return []string{"legs", "drawer", "top"}
		}
		return []string{"legs", "top"}
	case KindSofa:
		return []string{"base", "backrest", "cushions", "arms"}
	case KindCabinet:
		switch subtype {
		case "Bookshelf":
			return []string{"frame", "shelves"}
		case "Dresser":
			return []string{"body", "drawers", "handles"}
		}
		return []string{"body", "doors", "handles"}
	case KindBed:
		return []string{"frame", "headboard", "mattress", "pillows"}
	case KindLamp:
		return []string{"base", "pole", "shade"}
	}
	return nil
}

// DefaultPartColors seeds the part-color map for a kind/subtype from the
// base color. Parts with a fixed material color ignore the base.
func DefaultPartColors(kind Kind, subtype string, base color.RGBA) map[string]color.RGBA {
	parts := make(map[string]color.RGBA)
	for _, name := range PartNames(kind, subtype) {
		parts[name] = defaultPartColor(kind, name, base)
	}
	return parts
}

func defaultPartColor(kind Kind, part string, base color.RGBA) color.RGBA {
	switch kind {
	case KindChair:
		switch part {
		case "legs":
			return LegBrown
		case "base":
			return Charcoal
		}
	case KindTable:
		switch part {
		case "legs":
			return LegBrown
		case "drawer":
			return colorutil.Darker(base)
		}
	case KindSofa:
		switch part {
		case "arms":
			return colorutil.Darker(base)
		case "cushions":
			return colorutil.Brighter(base)
		}
	case KindCabinet:
		switch part {
		case "doors", "drawers":
			return colorutil.Brighter(base)
		case "shelves":
			return colorutil.Darker(base)
		case "handles":
			return Silver
		}
	case KindBed:
		switch part {
		case "headboard":
			return colorutil.Darker(base)
		case "mattress":
			return Linen
		case "pillows":
			return PillowWhite
		}
	case KindLamp:
		switch part {
		case "base":
			return Charcoal
		case "pole":
			return Steel
		case "shade":
			return Cornsilk
		}
	}
	return base
}
