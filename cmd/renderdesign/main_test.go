package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomplanner/internal/composer"
	"roomplanner/internal/project"
	"roomplanner/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDesign(t *testing.T, view *project.ViewSettings) string {
	t.Helper()
	d := scene.NewDesign(scene.NewRoom(4, 3, 2.5))
	d.Name = "Study"
	d.Add(scene.NewFurniture(scene.KindTable, "Desk"))
	p := project.New(d)
	p.View = view
	path := filepath.Join(t.TempDir(), "study"+project.Extension)
	require.NoError(t, p.Save(path))
	return path
}

func TestRun_WritesPNGAndSVG(t *testing.T) {
	in := writeDesign(t, nil)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.svg"} {
		out := filepath.Join(dir, name)
		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"-o", out, "-w", "320", "-h", "240", in}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), `"Study" (1 items, 2D)`)

		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRun_Errors(t *testing.T) {
	in := writeDesign(t, nil)
	out := filepath.Join(t.TempDir(), "x.png")
	var stdout, stderr bytes.Buffer

	err := run([]string{in}, &stdout, &stderr)
	assert.True(t, errors.Is(err, errUsage))
	assert.Contains(t, stderr.String(), "Usage: renderdesign")

	err = run([]string{"-o", out, filepath.Join(t.TempDir(), "missing"+project.Extension)}, &stdout, &stderr)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = run([]string{"-o", out, "-mode", "4D", in}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unknown mode")

	stdout.Reset()
	require.NoError(t, run([]string{"-version"}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(stdout.String(), "renderdesign "))
}

func TestOptionsView(t *testing.T) {
	saved := &project.ViewSettings{Mode: "3D", Zoom: 2, Yaw: 0.4}

	o, err := parseFlags([]string{"-o", "x.svg", "in"}, &bytes.Buffer{})
	require.NoError(t, err)
	v, err := o.view(saved)
	require.NoError(t, err)
	assert.Equal(t, composer.Mode3D, v.Mode, "saved view used when no view flag is given")
	assert.Equal(t, 2.0, v.Zoom)
	assert.Equal(t, 0.4, v.Yaw)
	assert.Equal(t, 1200.0, v.Width)

	o, err = parseFlags([]string{"-o", "x.svg", "-mode", "2d", "-zoom", "50", "in"}, &bytes.Buffer{})
	require.NoError(t, err)
	v, err = o.view(saved)
	require.NoError(t, err)
	assert.Equal(t, composer.Mode2D, v.Mode)
	assert.Equal(t, composer.MaxZoom, v.Zoom)
	assert.Equal(t, 0.0, v.Yaw)
}
