package composer

import (
	"math"
	"testing"

	"roomplanner/internal/render"
	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"
	"roomplanner/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChairDesign() (*scene.Design, *scene.Furniture) {
	d := scene.NewDesign(scene.NewRoom(5, 5, 3))
	chair := scene.NewFurniture(scene.KindChair, "Standard")
	chair.SetPosition(1, 0)
	chair.SetSize(1, 1, 1)
	d.Add(chair)
	return d, chair
}

func TestNewFrame_2DScale(t *testing.T) {
	fr := NewFrame(scene.NewRoom(5, 5, 3), NewView(500, 500))
	require.True(t, fr.Valid)
	assert.Equal(t, 100.0, fr.Scale)

	fr = NewFrame(scene.NewRoom(10, 4, 3), View{Mode: Mode2D, Zoom: 2, Width: 500, Height: 500})
	assert.Equal(t, 100.0, fr.Scale, "min(50, 125) * 2")
}

func TestNewFrame_3DScaleAndCentering(t *testing.T) {
	room := scene.NewRoom(6, 4, 2)
	view := View{Mode: Mode3D, Zoom: 1.7, Width: 800, Height: 600}
	fr := NewFrame(room, view)
	require.True(t, fr.Valid)
	assert.InDelta(t, math.Min(800.0/10, 600.0/6)*0.5, fr.Scale, 1e-9)

	mid := fr.WorldToScreen(geometry.Point3D{X: 3, Y: 1, Z: 2})
	assert.InDelta(t, 400, mid.X, 1e-9)
	assert.InDelta(t, 300, mid.Y, 1e-9)
}

func TestNewFrame_ViewRotationAboutCenter(t *testing.T) {
	room := scene.NewRoom(4, 4, 2)
	base := NewFrame(room, View{Mode: Mode3D, Zoom: 1, Width: 400, Height: 400})
	rotated := NewFrame(room, View{Mode: Mode3D, Zoom: 1, Yaw: math.Pi / 2, Width: 400, Height: 400})

	p := geometry.Point3D{X: 4, Z: 0}
	a := base.WorldToScreen(p)
	b := rotated.WorldToScreen(p)

	// A quarter turn about (200, 200) maps (dx, dy) to (-dy, dx).
	assert.InDelta(t, 200-(a.Y-200), b.X, 1e-9)
	assert.InDelta(t, 200+(a.X-200), b.Y, 1e-9)
}

func TestNewFrame_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		room *scene.Room
		view View
	}{
		{"zero room 2D", scene.NewRoom(0, 0, 0), NewView(500, 500)},
		{"zero room 3D", scene.NewRoom(0, 0, 0), View{Mode: Mode3D, Zoom: 1, Width: 500, Height: 500}},
		{"zero width 2D", scene.NewRoom(5, 0, 3), NewView(500, 500)},
		{"zero panel", scene.NewRoom(5, 5, 3), NewView(0, 500)},
		{"zero zoom", scene.NewRoom(5, 5, 3), View{Mode: Mode2D, Width: 500, Height: 500}},
		{"nan panel", scene.NewRoom(5, 5, 3), NewView(math.NaN(), 500)},
		{"nan yaw", scene.NewRoom(5, 5, 3), View{Mode: Mode3D, Zoom: 1, Yaw: math.NaN(), Width: 500, Height: 500}},
		{"nil room", nil, NewView(500, 500)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fr := NewFrame(tc.room, tc.view)
			assert.False(t, fr.Valid)
			_, _, ok := fr.ScreenToFloor(geometry.Point2D{X: 10, Y: 10})
			assert.False(t, ok)
			if tc.room != nil {
				assert.Nil(t, Compose(scene.NewDesign(tc.room), tc.view))
			}
		})
	}
}

func TestScreenToFloor_RoundTrip(t *testing.T) {
	room := scene.NewRoom(5, 4, 3)
	views := []View{
		NewView(640, 480),
		{Mode: Mode2D, Zoom: 2.5, Width: 640, Height: 480},
		{Mode: Mode3D, Zoom: 1, Width: 640, Height: 480},
		{Mode: Mode3D, Zoom: 0.6, Yaw: 0.4, Pitch: -1.1, Width: 640, Height: 480},
	}
	for _, v := range views {
		fr := NewFrame(room, v)
		require.True(t, fr.Valid)
		for _, p := range []geometry.Point3D{{X: 0, Z: 0}, {X: 2.5, Z: 1}, {X: 5, Z: 4}} {
			x, z, ok := fr.ScreenToFloor(fr.WorldToScreen(p))
			require.True(t, ok)
			assert.InDelta(t, p.X, x, 1e-6, "%v", v)
			assert.InDelta(t, p.Z, z, 1e-6, "%v", v)
		}
	}
}

func TestCompose2D_Order(t *testing.T) {
	d, chair := newChairDesign()
	table := scene.NewFurniture(scene.KindTable, "")
	table.SetPosition(3, 3)
	d.Add(table)

	prims := Compose(d, NewView(500, 500))
	require.NotEmpty(t, prims)

	floor, ok := prims[0].(render.Rect)
	require.True(t, ok)
	assert.Equal(t, TagFloor, floor.Tag)
	assert.Equal(t, geometry.NewRect(0, 0, 500, 500), floor.Bounds())
	assert.Len(t, render.Tagged(prims, TagGrid), 8)

	n := len(prims)
	first := prims[n-2].(render.Rect)
	last := prims[n-1].(render.Rect)
	assert.Equal(t, chair.ID().String(), first.Tag)
	assert.Equal(t, table.ID().String(), last.Tag)
	assert.Equal(t, geometry.NewRect(100, 0, 100, 100), first.Bounds())
	assert.Equal(t, chair.DisplayColor(), first.Fill)
	assert.Equal(t, "Chair", first.Label)
}

func TestCompose2D_GridSkippedForHugeRooms(t *testing.T) {
	d := scene.NewDesign(scene.NewRoom(MaxGridLines+1, 2, 3))
	assert.Empty(t, render.Tagged(Compose(d, NewView(500, 500)), TagGrid))

	d = scene.NewDesign(scene.NewRoom(1e300, 1e300, 3))
	assert.Empty(t, render.Tagged(Compose(d, NewView(500, 500)), TagGrid))

	d = scene.NewDesign(scene.NewRoom(MaxGridLines, 2, 3))
	assert.Len(t, render.Tagged(Compose(d, NewView(500, 500)), TagGrid), MaxGridLines)
}

func TestCompose2D_IgnoresOrientationAndHighlightsSelection(t *testing.T) {
	d, chair := newChairDesign()
	chair.SetSize(2, 1, 1)
	chair.SetOrientation(scene.East)
	d.Select(chair)

	view := NewView(500, 500)
	view.Grid = false
	prims := Compose(d, view)
	require.Len(t, prims, 2)

	r := prims[1].(render.Rect)
	assert.Equal(t, 200.0, r.Width)
	assert.Equal(t, 100.0, r.Height)
	assert.Equal(t, colorutil.Highlight, r.Stroke)
}

func TestCompose3D_Structure(t *testing.T) {
	d, chair := newChairDesign()
	view := View{Mode: Mode3D, Zoom: 1, Width: 800, Height: 600}

	prims := Compose(d, view)
	require.Len(t, prims, 3+3*6, "floor, two walls, three faces per chair box")
	assert.Equal(t, TagFloor, prims[0].(render.Polygon).Tag)
	assert.Equal(t, TagWall, prims[1].(render.Polygon).Tag)
	assert.Equal(t, TagWall, prims[2].(render.Polygon).Tag)
	assert.Len(t, render.Tagged(prims, chair.ID().String()), 18)
	assert.Empty(t, render.Tagged(prims, TagSelection))

	d.Select(chair)
	prims = Compose(d, view)
	sel := render.Tagged(prims, TagSelection)
	require.Len(t, sel, 1)
	hull := sel[0].(render.Polygon)
	assert.False(t, hull.Filled)

	// The outline encloses every face of the item.
	bounds := hull.Bounds()
	for _, p := range render.Tagged(prims, chair.ID().String()) {
		for _, pt := range p.(render.Polygon).Points {
			assert.True(t, nearEdge(bounds, pt))
		}
	}
}

func TestCompose3D_NoCulling(t *testing.T) {
	d, chair := newChairDesign()
	chair.SetPosition(50, 50)
	prims := Compose(d, View{Mode: Mode3D, Zoom: 1, Width: 200, Height: 200})
	assert.Len(t, render.Tagged(prims, chair.ID().String()), 18)
}

func TestItemScreenCenter(t *testing.T) {
	_, chair := newChairDesign()
	fr := NewFrame(scene.NewRoom(5, 5, 3), NewView(500, 500))
	c := ItemScreenCenter(fr, chair)
	assert.Equal(t, geometry.Point2D{X: 150, Y: 50}, c)
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, MinZoom, ClampZoom(0))
	assert.Equal(t, MaxZoom, ClampZoom(50))
	assert.Equal(t, 2.0, ClampZoom(2))
	assert.Equal(t, DefaultZoom, ClampZoom(math.NaN()))
}

func nearEdge(r geometry.Rect, p geometry.Point2D) bool {
	const tol = 1e-6
	return p.X >= r.X-tol && p.X <= r.X+r.Width+tol && p.Y >= r.Y-tol && p.Y <= r.Y+r.Height+tol
}
