package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RoomPlannerTheme provides a custom theme for the application.
type RoomPlannerTheme struct{}

var _ fyne.Theme = (*RoomPlannerTheme)(nil)

func (t *RoomPlannerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x8B, G: 0x5A, B: 0x2B, A: 0xFF} // Walnut
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0x60} // Matches the canvas highlight
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *RoomPlannerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *RoomPlannerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *RoomPlannerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameInputBorder:
		return 1
	default:
		return theme.DefaultTheme().Size(name)
	}
}
