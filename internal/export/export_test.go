package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomplanner/internal/composer"
	"roomplanner/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func design() *scene.Design {
	d := scene.NewDesign(scene.NewRoom(5, 4, 3))
	f := scene.NewFurniture(scene.KindCabinet, "Bookshelf")
	f.SetPosition(1, 1)
	d.Add(f)
	return d
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, design(), composer.NewView(320, 200)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// Inside the floor, away from grid lines and furniture.
	r, g, b, _ := img.At(235, 175).RGBA()
	floor := scene.DefaultFloorColor
	assert.Equal(t, uint32(floor.R), r>>8)
	assert.Equal(t, uint32(floor.G), g>>8)
	assert.Equal(t, uint32(floor.B), b>>8)
}

func TestSVG_3D(t *testing.T) {
	var buf bytes.Buffer
	view := composer.View{Mode: composer.Mode3D, Zoom: 1, Width: 640, Height: 480}
	require.NoError(t, SVG(&buf, design(), view))
	out := buf.String()
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Greater(t, strings.Count(out, "<polygon"), 3)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	view := composer.NewView(100, 80)

	for _, name := range []string{"plan.png", "plan.SVG"} {
		path := filepath.Join(dir, name)
		require.NoError(t, File(path, design(), view))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	err := File(filepath.Join(dir, "plan.bmp"), design(), view)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestDegenerateViewStillWrites(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, scene.NewDesign(scene.NewRoom(0, 0, 0)), composer.NewView(10, 10)))
	assert.NotZero(t, buf.Len())
}
