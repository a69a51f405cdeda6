package projection

import (
	"image/color"

	"roomplanner/internal/scene"
)

// PartBox is one box of a furniture recipe, expressed as fractions of the
// item's width (X, W), height (Y, H) and depth (Z, D). In the recipe frame
// Z=0 is the back of the item and Z=1 its front.
type PartBox struct {
	Part    string
	X, Y, Z float64
	W, D, H float64
}

type recipeKey struct {
	kind    scene.Kind
	subtype string
}

// legs returns four square legs of the given fractional size at the corners.
func legs(size, height float64) []PartBox {
	far := 1 - size
	return []PartBox{
		{Part: "legs", X: 0, Z: 0, W: size, D: size, H: height},
		{Part: "legs", X: far, Z: 0, W: size, D: size, H: height},
		{Part: "legs", X: 0, Z: far, W: size, D: size, H: height},
		{Part: "legs", X: far, Z: far, W: size, D: size, H: height},
	}
}

func concat(groups ...[]PartBox) []PartBox {
	var out []PartBox
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// recipes lists each kind's boxes back to front. Entries with an empty
// subtype are the fallback for subtypes without their own recipe.
var recipes = map[recipeKey][]PartBox{
	{scene.KindChair, ""}: concat(legs(0.1, 0.6), []PartBox{
		{Part: "seat", Y: 0.6, W: 1, D: 1, H: 0.1},
		{Part: "backrest", X: 0.1, Y: 0.7, W: 0.8, D: 0.1, H: 0.3},
	}),
	{scene.KindChair, "Armchair"}: concat(legs(0.08, 0.35), []PartBox{
		{Part: "backrest", Y: 0.35, W: 1, D: 0.2, H: 0.65},
		{Part: "arms", Y: 0.35, Z: 0.2, W: 0.15, D: 0.8, H: 0.3},
		{Part: "seat", X: 0.15, Y: 0.35, Z: 0.2, W: 0.7, D: 0.8, H: 0.15},
		{Part: "arms", X: 0.85, Y: 0.35, Z: 0.2, W: 0.15, D: 0.8, H: 0.3},
	}),
	{scene.KindChair, "Office"}: {
		{Part: "base", X: 0.1, Z: 0.1, W: 0.8, D: 0.8, H: 0.05},
		{Part: "base", X: 0.45, Y: 0.05, Z: 0.45, W: 0.1, D: 0.1, H: 0.45},
		{Part: "seat", Y: 0.5, W: 1, D: 1, H: 0.1},
		{Part: "backrest", X: 0.1, Y: 0.6, W: 0.8, D: 0.1, H: 0.4},
	},
	{scene.KindTable, ""}: concat(legs(0.08, 0.9), []PartBox{
		{Part: "top", Y: 0.9, W: 1, D: 1, H: 0.1},
	}),
	{scene.KindTable, "Desk"}: concat(legs(0.06, 0.9), []PartBox{
		{Part: "drawer", X: 0.6, Y: 0.7, Z: 0.05, W: 0.34, D: 0.9, H: 0.2},
		{Part: "top", Y: 0.9, W: 1, D: 1, H: 0.1},
	}),
	{scene.KindSofa, ""}: {
		{Part: "base", W: 1, D: 1, H: 0.45},
		{Part: "backrest", Y: 0.45, W: 1, D: 0.25, H: 0.55},
		{Part: "arms", W: 0.12, D: 1, H: 0.7},
		{Part: "cushions", X: 0.12, Y: 0.45, Z: 0.25, W: 0.76, D: 0.75, H: 0.1},
		{Part: "arms", X: 0.88, W: 0.12, D: 1, H: 0.7},
	},
	{scene.KindCabinet, ""}: {
		{Part: "body", W: 1, D: 1, H: 1},
		{Part: "doors", X: 0.03, Y: 0.03, Z: 0.98, W: 0.46, D: 0.02, H: 0.94},
		{Part: "doors", X: 0.51, Y: 0.03, Z: 0.98, W: 0.46, D: 0.02, H: 0.94},
		{Part: "handles", X: 0.43, Y: 0.48, Z: 0.97, W: 0.04, D: 0.03, H: 0.08},
		{Part: "handles", X: 0.53, Y: 0.48, Z: 0.97, W: 0.04, D: 0.03, H: 0.08},
	},
	{scene.KindCabinet, "Bookshelf"}: {
		{Part: "frame", W: 1, D: 0.05, H: 1},
		{Part: "frame", W: 0.05, D: 1, H: 1},
		{Part: "frame", X: 0.05, W: 0.9, D: 1, H: 0.05},
		{Part: "shelves", X: 0.05, Y: 0.3, Z: 0.05, W: 0.9, D: 0.95, H: 0.03},
		{Part: "shelves", X: 0.05, Y: 0.55, Z: 0.05, W: 0.9, D: 0.95, H: 0.03},
		{Part: "shelves", X: 0.05, Y: 0.8, Z: 0.05, W: 0.9, D: 0.95, H: 0.03},
		{Part: "frame", Y: 0.95, W: 1, D: 1, H: 0.05},
		{Part: "frame", X: 0.95, W: 0.05, D: 1, H: 1},
	},
	{scene.KindCabinet, "Dresser"}: {
		{Part: "body", W: 1, D: 1, H: 1},
		{Part: "drawers", X: 0.05, Y: 0.05, Z: 0.97, W: 0.9, D: 0.03, H: 0.27},
		{Part: "drawers", X: 0.05, Y: 0.37, Z: 0.97, W: 0.9, D: 0.03, H: 0.27},
		{Part: "drawers", X: 0.05, Y: 0.69, Z: 0.97, W: 0.9, D: 0.03, H: 0.27},
		{Part: "handles", X: 0.45, Y: 0.17, Z: 0.97, W: 0.1, D: 0.03, H: 0.04},
		{Part: "handles", X: 0.45, Y: 0.49, Z: 0.97, W: 0.1, D: 0.03, H: 0.04},
		{Part: "handles", X: 0.45, Y: 0.81, Z: 0.97, W: 0.1, D: 0.03, H: 0.04},
	},
	{scene.KindBed, ""}: {
		{Part: "headboard", W: 1, D: 0.06, H: 1},
		{Part: "frame", Z: 0.06, W: 1, D: 0.94, H: 0.5},
		{Part: "mattress", X: 0.03, Y: 0.5, Z: 0.08, W: 0.94, D: 0.9, H: 0.35},
		{Part: "pillows", X: 0.1, Y: 0.85, Z: 0.1, W: 0.35, D: 0.15, H: 0.1},
		{Part: "pillows", X: 0.55, Y: 0.85, Z: 0.1, W: 0.35, D: 0.15, H: 0.1},
	},
	{scene.KindLamp, ""}: {
		{Part: "base", X: 0.2, Z: 0.2, W: 0.6, D: 0.6, H: 0.03},
		{Part: "pole", X: 0.46, Y: 0.03, Z: 0.46, W: 0.08, D: 0.08, H: 0.72},
		{Part: "shade", X: 0.1, Y: 0.75, Z: 0.1, W: 0.8, D: 0.8, H: 0.25},
	},
}

// Recipe returns the boxes for a kind/subtype, falling back to the kind's
// default recipe. Unknown kinds yield a single full-footprint box.
func Recipe(kind scene.Kind, subtype string) []PartBox {
	if r, ok := recipes[recipeKey{kind, subtype}]; ok {
		return r
	}
	if r, ok := recipes[recipeKey{kind, ""}]; ok {
		return r
	}
	return []PartBox{{Part: "body", W: 1, D: 1, H: 1}}
}

// ColoredBox is a resolved world box with the shaded color of its part.
type ColoredBox struct {
	Part  string
	Box   Box
	Color color.RGBA
}

// FurnitureBoxes resolves f's recipe into world boxes. The recipe frame is
// turned clockwise (seen from above) one quarter per orientation step from
// North, so every box lands inside the effective footprint at (X, Z).
func FurnitureBoxes(f *scene.Furniture) []ColoredBox {
	w, d, h := f.Width(), f.Depth(), f.Height()
	recipe := Recipe(f.Kind(), f.Subtype())

	out := make([]ColoredBox, 0, len(recipe))
	for _, pb := range recipe {
		lx, lz := pb.X*w, pb.Z*d
		lw, ld := pb.W*w, pb.D*d

		var bx, bz, bw, bd float64
		switch f.Orientation() {
		case scene.East:
			bx, bz, bw, bd = d-lz-ld, lx, ld, lw
		case scene.South:
			bx, bz, bw, bd = w-lx-lw, d-lz-ld, lw, ld
		case scene.West:
			bx, bz, bw, bd = lz, w-lx-lw, ld, lw
		default:
			bx, bz, bw, bd = lx, lz, lw, ld
		}

		out = append(out, ColoredBox{
			Part: pb.Part,
			Box: Box{
				X: f.X() + bx, Y: pb.Y * h, Z: f.Z() + bz,
				W: bw, D: bd, H: pb.H * h,
			},
			Color: f.PartColor(pb.Part),
		})
	}
	return out
}
