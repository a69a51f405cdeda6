package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDesign() *scene.Design {
	room := scene.NewRoom(6.5, 4.25, 2.7)
	room.SetFloorColor(colorutil.RGB(10, 20, 30))
	room.SetWallColor(colorutil.RGB(200, 210, 220))
	d := scene.NewDesign(room)
	d.Name = "Living room"

	sofa := scene.NewFurniture(scene.KindSofa, "Loveseat")
	sofa.SetPosition(0.5, 1.25)
	sofa.SetSize(1.6, 0.85, 0.8)
	sofa.SetColor(colorutil.RGB(120, 40, 40))
	sofa.SetPartColor("cushions", colorutil.RGB(1, 2, 3))
	sofa.SetOrientation(scene.East)
	sofa.SetShadeFactor(0.35)

	lamp := scene.NewFurniture(scene.KindLamp, "Table")
	lamp.SetPosition(3, 3)

	bed := scene.NewFurniture(scene.KindBed, "King")
	bed.SetOrientation(scene.South)

	d.Add(sofa)
	d.Add(lamp)
	d.Add(bed)
	d.Select(lamp)
	return d
}

func assertSameDesign(t *testing.T, want, got *scene.Design) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)

	wr, gr := want.Room(), got.Room()
	assert.Equal(t, wr.Length(), gr.Length())
	assert.Equal(t, wr.Width(), gr.Width())
	assert.Equal(t, wr.Height(), gr.Height())
	assert.Equal(t, wr.FloorColor(), gr.FloorColor())
	assert.Equal(t, wr.WallColor(), gr.WallColor())

	require.Equal(t, want.Len(), got.Len())
	for i, w := range want.Furniture() {
		g := got.At(i)
		assert.Equal(t, w.ID(), g.ID())
		assert.Equal(t, w.Kind(), g.Kind())
		assert.Equal(t, w.Subtype(), g.Subtype())
		assert.Equal(t, w.X(), g.X())
		assert.Equal(t, w.Z(), g.Z())
		assert.Equal(t, w.Width(), g.Width())
		assert.Equal(t, w.Depth(), g.Depth())
		assert.Equal(t, w.Height(), g.Height())
		assert.Equal(t, w.Color(), g.Color())
		assert.Equal(t, w.Orientation(), g.Orientation())
		assert.Equal(t, w.PartColors(), g.PartColors())
		assert.Equal(t, w.ShadeFactor(), g.ShadeFactor())
		assert.Equal(t, w.Selected(), g.Selected())
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	d := sampleDesign()
	data, err := Marshal(d)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assertSameDesign(t, d, got)
	assert.Same(t, got.At(1), got.Selected())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "living"+Extension)
	d := sampleDesign()
	require.NoError(t, SaveDesign(path, d))

	got, err := LoadDesign(path)
	require.NoError(t, err)
	assertSameDesign(t, d, got)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, p.Version)
	assert.False(t, p.Modified.Before(p.Created))
}

func TestFile_KeepsCreatedAndView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a"+Extension)
	p := New(sampleDesign())
	p.View = &ViewSettings{Mode: "3D", Zoom: 1.5, Yaw: 0.2}
	created := p.Created
	require.NoError(t, p.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, created.Equal(loaded.Created))
	require.NotNil(t, loaded.View)
	assert.Equal(t, *p.View, *loaded.View)
}

func TestUnmarshal_Errors(t *testing.T) {
	valid, err := Marshal(sampleDesign())
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := Unmarshal([]byte("{not json"))
		assert.Error(t, err)
	})

	t.Run("future version", func(t *testing.T) {
		data := strings.Replace(string(valid), `"version": 1`, `"version": 99`, 1)
		_, err := Unmarshal([]byte(data))
		assert.True(t, errors.Is(err, ErrUnsupported))
	})

	t.Run("unknown kind", func(t *testing.T) {
		data := strings.Replace(string(valid), `"kind": "Lamp"`, `"kind": "Piano"`, 1)
		_, err := Unmarshal([]byte(data))
		assert.True(t, errors.Is(err, ErrUnsupported))
	})

	t.Run("bad color", func(t *testing.T) {
		data := strings.Replace(string(valid), `"floor_color": "#0a141e"`, `"floor_color": "blue"`, 1)
		_, err := Unmarshal([]byte(data))
		assert.True(t, errors.Is(err, colorutil.ErrInvalidHex))
	})
}

func TestUnmarshal_MissingShadeIsFull(t *testing.T) {
	data := `{
  "version": 1,
  "name": "Old",
  "room": {"length": 4, "width": 3, "height": 2.5, "floor_color": "#c8b490", "wall_color": "#f0f0e6"},
  "furniture": [
    {"kind": "Chair", "subtype": "", "x": 1, "z": 1, "width": 0.5, "depth": 0.5, "height": 0.9,
     "color": "#8b4513", "orientation": "North"}
  ]
}`
	d, err := Unmarshal([]byte(data))
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	f := d.At(0)
	assert.Equal(t, scene.MaxShade, f.ShadeFactor())
	assert.Equal(t, f.Color(), f.DisplayColor())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadDesign(filepath.Join(t.TempDir(), "nope"+Extension))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
