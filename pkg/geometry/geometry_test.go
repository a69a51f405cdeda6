package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineTransform_ComposeAppliesRightFirst(t *testing.T) {
	tr := Translation(10, 0).Compose(Scale(2, 2))
	p := tr.Apply(Point2D{X: 1, Y: 1})
	assert.Equal(t, Point2D{X: 12, Y: 2}, p)
}

func TestAffineTransform_Inverse(t *testing.T) {
	tr := RotationAbout(Point2D{X: 50, Y: 40}, 0.7).Compose(ScaleAbout(Point2D{X: 50, Y: 40}, 1.5))
	inv, ok := tr.Inverse()
	require.True(t, ok)

	p := Point2D{X: 13, Y: -7}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	_, ok = Scale(0, 1).Inverse()
	assert.False(t, ok)
}

func TestRotationAbout_KeepsPivotFixed(t *testing.T) {
	pivot := Point2D{X: 250, Y: 250}
	got := RotationAbout(pivot, math.Pi/3).Apply(pivot)
	assert.InDelta(t, pivot.X, got.X, 1e-9)
	assert.InDelta(t, pivot.Y, got.Y, 1e-9)
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(1, 0, 1, 1)
	assert.True(t, r.Contains(Point2D{X: 1.5, Y: 0.5}))
	assert.True(t, r.Contains(Point2D{X: 2, Y: 1}), "edges are inclusive")
	assert.False(t, r.Contains(Point2D{X: 3.5, Y: 3.5}))
}

func TestConvexHull_DropsInteriorPoints(t *testing.T) {
	pts := []Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 2, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 0},
	}
	hull := ConvexHull(pts)
	assert.Len(t, hull, 4)
	for _, p := range []Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}} {
		assert.Contains(t, hull, p)
	}
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox([]Point2D{{X: 3, Y: -1}, {X: -2, Y: 5}, {X: 0, Y: 0}})
	assert.Equal(t, Rect{X: -2, Y: -1, Width: 5, Height: 6}, box)
	assert.Equal(t, Rect{}, BoundingBox(nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 4))
	assert.Equal(t, 4.0, Clamp(9, 0, 4))
	assert.Equal(t, 0.0, Clamp(2, 0, -1), "inverted range pins to the lower bound")
}
