// Package colorutil provides shared color utilities for the room planner.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrInvalidHex is returned when a color string is not #rrggbb.
var ErrInvalidHex = errors.New("invalid hex color")

// Common colors used throughout the application.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGray = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Highlight = color.RGBA{R: 30, G: 144, B: 255, A: 255}
)

// darkenFactor matches the usual 0.7 step of AWT-style brighter/darker.
const darkenFactor = 0.7

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Shade scales each channel by factor, truncating toward zero.
// The factor is clamped to [0, 1] so the result stays a valid channel value.
func Shade(c color.RGBA, factor float64) color.RGBA {
	if math.IsNaN(factor) {
		factor = 1
	}
	factor = math.Max(0, math.Min(1, factor))
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Darker returns a darker version of c.
func Darker(c color.RGBA) color.RGBA {
	return Shade(c, darkenFactor)
}

// Brighter returns a brighter version of c. Pure black becomes a dark gray,
// and channels too small to scale are lifted to a minimum first.
func Brighter(c color.RGBA) color.RGBA {
	const floor = 3 // int(1/(1-0.7))
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return color.RGBA{R: floor, G: floor, B: floor, A: c.A}
	}
	lift := func(v uint8) uint8 {
		f := float64(v)
		if f > 0 && f < floor {
			f = floor
		}
		return uint8(math.Min(f/darkenFactor, 255))
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// Luminance returns the perceived brightness of c in [0, 255].
func Luminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Contrast returns black for light colors and white for dark ones.
func Contrast(c color.RGBA) color.RGBA {
	if Luminance(c) >= 128 {
		return Black
	}
	return White
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb (the leading # is optional) into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	return RGB(r, g, b), nil
}

// ToRGBA converts any color to an opaque color.RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		rgba.A = 255
		return rgba
	}
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}
