// Command renderdesign renders a saved room design to a PNG or SVG file
// without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"roomplanner/internal/composer"
	"roomplanner/internal/export"
	"roomplanner/internal/logger"
	"roomplanner/internal/project"
	"roomplanner/internal/version"

	"go.uber.org/zap"
)

// options holds the parsed command line.
type options struct {
	in, out       string
	mode          string
	width, height int
	zoom          float64
	yaw, pitch    float64
	grid          bool
	savedView     bool
	logLevel      string
	logFormat     string
	showVersion   bool
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("renderdesign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.out, "o", "", "Output file (.png or .svg)")
	fs.StringVar(&o.mode, "mode", "", "View mode: 2D or 3D (default: saved view, else 2D)")
	fs.IntVar(&o.width, "w", 1200, "Output width in pixels")
	fs.IntVar(&o.height, "h", 900, "Output height in pixels")
	fs.Float64Var(&o.zoom, "zoom", 0, "Zoom factor (default: saved view, else 1)")
	fs.Float64Var(&o.yaw, "yaw", 0, "3D orbit yaw in radians")
	fs.Float64Var(&o.pitch, "pitch", 0, "3D orbit pitch in radians")
	fs.BoolVar(&o.grid, "grid", true, "Draw the 1 m grid in 2D")
	fs.StringVar(&o.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "console", "Log format: console or json")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: renderdesign [flags] <design"+project.Extension+"> -o <out.png|out.svg>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.showVersion {
		return o, nil
	}
	if fs.NArg() != 1 || o.out == "" {
		fs.Usage()
		return o, errUsage
	}
	o.in = fs.Arg(0)

	// Fall back to the view stored in the file unless the caller chose one
	o.savedView = true
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode", "zoom", "yaw", "pitch":
			o.savedView = false
		}
	})
	return o, nil
}

// view builds the render view from the options and the file's saved view.
func (o options) view(saved *project.ViewSettings) (composer.View, error) {
	v := composer.NewView(float64(o.width), float64(o.height))
	v.Grid = o.grid

	mode, zoom, yaw, pitch := o.mode, o.zoom, o.yaw, o.pitch
	if o.savedView && saved != nil {
		mode, zoom, yaw, pitch = saved.Mode, saved.Zoom, saved.Yaw, saved.Pitch
	}

	switch strings.ToUpper(strings.TrimSpace(mode)) {
	case "", composer.Mode2D.String():
		v.Mode = composer.Mode2D
	case composer.Mode3D.String():
		v.Mode = composer.Mode3D
	default:
		return v, fmt.Errorf("unknown mode %q", mode)
	}
	if zoom > 0 {
		v.Zoom = composer.ClampZoom(zoom)
	}
	v.Yaw, v.Pitch = yaw, pitch
	return v, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.showVersion {
		fmt.Fprintln(stdout, "renderdesign", version.String())
		return nil
	}

	log := logger.Must(o.logLevel, o.logFormat, "renderdesign")
	defer log.Sync()

	p, err := project.Load(o.in)
	if err != nil {
		return err
	}
	d, err := p.Design()
	if err != nil {
		return fmt.Errorf("%s: %w", o.in, err)
	}
	v, err := o.view(p.View)
	if err != nil {
		return err
	}
	if err := export.File(o.out, d, v); err != nil {
		return err
	}

	log.Info("rendered",
		zap.String("in", o.in),
		zap.String("out", o.out),
		zap.Stringer("mode", v.Mode),
		zap.Int("furniture", d.Len()))
	fmt.Fprintf(stdout, "Rendered %q (%d items, %s) to %s\n", d.Name, d.Len(), v.Mode, o.out)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "renderdesign: %v\n", err)
		os.Exit(1)
	}
}
