// Package export writes a composed view of a design to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roomplanner/internal/composer"
	"roomplanner/internal/render"
	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"
)

// Background is the panel color behind the room.
var Background = colorutil.RGB(245, 245, 245)

// ErrFormat is returned for file extensions other than .png and .svg.
var ErrFormat = errors.New("unsupported export format")

// Image rasterizes design as seen in view.
func Image(design *scene.Design, view composer.View) *image.RGBA {
	r := render.NewRaster(int(view.Width), int(view.Height), Background)
	render.Draw(r, composer.Compose(design, view))
	return r.Image()
}

// PNG writes design as seen in view as a PNG image.
func PNG(w io.Writer, design *scene.Design, view composer.View) error {
	return png.Encode(w, Image(design, view))
}

// SVG writes design as seen in view as an SVG document.
func SVG(w io.Writer, design *scene.Design, view composer.View) error {
	s := render.NewSVG(w, int(view.Width), int(view.Height), Background)
	render.Draw(s, composer.Compose(design, view))
	s.Close()
	return nil
}

// File writes design to path, choosing the format from the extension.
func File(path string, design *scene.Design, view composer.View) error {
	var write func(io.Writer, *scene.Design, composer.View) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = PNG
	case ".svg":
		write = SVG
	default:
		return fmt.Errorf("%s: %w", filepath.Base(path), ErrFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, design, view); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
