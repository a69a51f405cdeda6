package projection

import (
	"math"
	"testing"

	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"
	"roomplanner/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestProject_OriginMapsToOffset(t *testing.T) {
	x, y := Project(0, 0, 0, 37.5, 120, -8)
	assert.Equal(t, 120.0, x)
	assert.Equal(t, -8.0, y)
}

func TestProject_Axes(t *testing.T) {
	x, y := Project(1, 0, 0, 100, 0, 0)
	assert.InDelta(t, 100*math.Sqrt(3)/2, x, eps)
	assert.InDelta(t, 50, y, eps)

	x, y = Project(0, 0, 1, 100, 0, 0)
	assert.InDelta(t, -100*math.Sqrt(3)/2, x, eps)
	assert.InDelta(t, 50, y, eps)

	x, y = Project(0, 1, 0, 100, 0, 0)
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, -100, y, eps)
}

func TestProject_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		x1, y1 := Project(1.3, 0.7, 2.9, 42, 10, 20)
		x2, y2 := Project(1.3, 0.7, 2.9, 42, 10, 20)
		assert.Equal(t, x1, x2)
		assert.Equal(t, y1, y2)
	}
}

func TestIso_UnprojectRoundTrip(t *testing.T) {
	iso := Iso{Scale: 55, OffsetX: 300, OffsetY: 120}
	for _, p := range []geometry.Point3D{{X: 0, Z: 0}, {X: 3.5, Z: 1.25}, {X: -2, Y: 0.5, Z: 7}} {
		x, z, ok := iso.Unproject(iso.Point(p), p.Y)
		require.True(t, ok)
		assert.InDelta(t, p.X, x, 1e-6)
		assert.InDelta(t, p.Z, z, 1e-6)
	}

	_, _, ok := Iso{}.Unproject(geometry.Point2D{}, 0)
	assert.False(t, ok)
}

func TestFaces_OrderAndShading(t *testing.T) {
	base := colorutil.RGB(100, 50, 200)
	b := Box{X: 1, Y: 0, Z: 2, W: 1, D: 0.5, H: 0.8}
	iso := Iso{Scale: 100, OffsetX: 250, OffsetY: 100}

	faces := Faces(b, iso, base)

	assert.Equal(t, FaceFront, faces[0].Name)
	assert.Equal(t, FaceTop, faces[1].Name)
	assert.Equal(t, FaceRight, faces[2].Name)
	assert.Equal(t, base, faces[0].Fill)
	assert.Equal(t, colorutil.Brighter(base), faces[1].Fill)
	assert.Equal(t, colorutil.Darker(base), faces[2].Fill)
	for _, f := range faces {
		assert.Len(t, f.Points, 4)
		assert.Equal(t, colorutil.Contrast(base), f.Stroke)
	}

	// The top face is the floor rectangle lifted by h
	top := iso.Point(geometry.Point3D{X: 1, Y: 0.8, Z: 2})
	assert.InDelta(t, top.X, faces[1].Points[0].X, eps)
	assert.InDelta(t, top.Y, faces[1].Points[0].Y, eps)
}

func TestCorners_TopAboveBottom(t *testing.T) {
	c := Corners(Box{W: 1, D: 1, H: 2}, Iso{Scale: 10})
	for i := 0; i < 4; i++ {
		assert.InDelta(t, c[i].X, c[i+4].X, eps)
		assert.InDelta(t, c[i].Y-20, c[i+4].Y, eps)
	}
}

func TestRecipe_Fallbacks(t *testing.T) {
	assert.Equal(t, Recipe(scene.KindChair, ""), Recipe(scene.KindChair, "Standard"))
	assert.Equal(t, Recipe(scene.KindTable, ""), Recipe(scene.KindTable, "Coffee"))
	assert.Len(t, Recipe(scene.Kind(99), "x"), 1)
}

func TestRecipe_ChairProportions(t *testing.T) {
	var seat, back PartBox
	legCount := 0
	for _, pb := range Recipe(scene.KindChair, "Standard") {
		switch pb.Part {
		case "seat":
			seat = pb
		case "backrest":
			back = pb
		case "legs":
			legCount++
		}
	}
	assert.Equal(t, 4, legCount)
	assert.Equal(t, 1.0, seat.W)
	assert.Equal(t, 1.0, seat.D)
	assert.InDelta(t, 0.6, seat.Y, eps)
	assert.InDelta(t, 0.7, seat.Y+seat.H, eps)
	assert.InDelta(t, 0.8, back.W, eps)
	assert.Equal(t, 0.0, back.Z, "backrest sits at the back of the seat")
}

func TestRecipes_PartsAreKnown(t *testing.T) {
	for _, kind := range scene.Kinds {
		for _, sub := range scene.Subtypes(kind) {
			parts := scene.PartNames(kind, sub)
			for _, pb := range Recipe(kind, sub) {
				assert.Contains(t, parts, pb.Part, "%s/%s", kind, sub)
			}
		}
	}
}

func TestFurnitureBoxes_StayInsideEffectiveFootprint(t *testing.T) {
	for _, kind := range scene.Kinds {
		for _, sub := range scene.Subtypes(kind) {
			for _, o := range scene.Orientations {
				f := scene.NewFurniture(kind, sub)
				f.SetSize(1.3, 0.7, 0.9)
				f.SetPosition(2, 1)
				f.SetOrientation(o)

				minX, minZ := f.X(), f.Z()
				maxX, maxZ := minX+f.EffectiveWidth(), minZ+f.EffectiveDepth()

				boxes := FurnitureBoxes(f)
				require.NotEmpty(t, boxes)
				for _, cb := range boxes {
					b := cb.Box
					msg := []interface{}{"%s/%s %s part %s", kind, sub, o, cb.Part}
					assert.GreaterOrEqual(t, b.X, minX-eps, msg...)
					assert.GreaterOrEqual(t, b.Z, minZ-eps, msg...)
					assert.LessOrEqual(t, b.X+b.W, maxX+eps, msg...)
					assert.LessOrEqual(t, b.Z+b.D, maxZ+eps, msg...)
					assert.GreaterOrEqual(t, b.Y, -eps, msg...)
					assert.LessOrEqual(t, b.Y+b.H, f.Height()+eps, msg...)
				}
			}
		}
	}
}

func TestFurnitureBoxes_OrientationMovesBackrest(t *testing.T) {
	f := scene.NewFurniture(scene.KindChair, "Standard")
	f.SetSize(1, 1, 1)

	backrest := func() Box {
		for _, cb := range FurnitureBoxes(f) {
			if cb.Part == "backrest" {
				return cb.Box
			}
		}
		t.Fatal("no backrest")
		return Box{}
	}

	f.SetOrientation(scene.North)
	assert.InDelta(t, 0, backrest().Z, eps)
	f.SetOrientation(scene.South)
	assert.InDelta(t, 0.9, backrest().Z, eps)
	f.SetOrientation(scene.East)
	assert.InDelta(t, 0.9, backrest().X, eps)
	f.SetOrientation(scene.West)
	assert.InDelta(t, 0, backrest().X, eps)
}

func TestFurnitureBoxes_UsesShadedPartColors(t *testing.T) {
	f := scene.NewFurniture(scene.KindChair, "Standard")
	f.SetShadeFactor(0.5)
	for _, cb := range FurnitureBoxes(f) {
		assert.Equal(t, f.PartColor(cb.Part), cb.Color)
	}
}
