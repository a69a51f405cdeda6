package panels

import (
	"fmt"

	"roomplanner/internal/scene"
)

// lengthField identifies one measurement shown in the property sheet.
type lengthField int

const (
	fieldX lengthField = iota
	fieldZ
	fieldWidth
	fieldDepth
	fieldHeight
)

var lengthFields = []lengthField{fieldX, fieldZ, fieldWidth, fieldDepth, fieldHeight}

func (lf lengthField) label() string {
	switch lf {
	case fieldX:
		return "X (m)"
	case fieldZ:
		return "Z (m)"
	case fieldWidth:
		return "Width (m)"
	case fieldDepth:
		return "Depth (m)"
	case fieldHeight:
		return "Height (m)"
	}
	return "?"
}

func (lf lengthField) get(f *scene.Furniture) float64 {
	switch lf {
	case fieldX:
		return f.X()
	case fieldZ:
		return f.Z()
	case fieldWidth:
		return f.Width()
	case fieldDepth:
		return f.Depth()
	case fieldHeight:
		return f.Height()
	}
	return 0
}

func (lf lengthField) set(f *scene.Furniture, v float64) {
	switch lf {
	case fieldX:
		f.SetX(v)
	case fieldZ:
		f.SetZ(v)
	case fieldWidth:
		f.SetWidth(v)
	case fieldDepth:
		f.SetDepth(v)
	case fieldHeight:
		f.SetHeight(v)
	}
}

func formatLength(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// applyLength parses text into one measurement of f. On error f is left
// unchanged. It reports whether the value actually changed.
func applyLength(f *scene.Furniture, field lengthField, text string) (bool, error) {
	v, err := scene.ParseLength(text)
	if err != nil {
		return false, fmt.Errorf("%s: %w", field.label(), err)
	}
	if v == field.get(f) {
		return false, nil
	}
	field.set(f, v)
	return true, nil
}

// furnitureLabel is the list caption for the item at index i.
func furnitureLabel(i int, f *scene.Furniture) string {
	if f.Subtype() == "" {
		return fmt.Sprintf("%d. %s", i+1, f.Kind())
	}
	return fmt.Sprintf("%d. %s (%s)", i+1, f.Kind(), f.Subtype())
}

func orientationNames() []string {
	names := make([]string, len(scene.Orientations))
	for i, o := range scene.Orientations {
		names[i] = o.String()
	}
	return names
}
