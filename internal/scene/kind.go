// Package scene holds the room layout model: the room, its furniture, and the
// design that owns both.
package scene

import (
	"fmt"
	"strings"
)

// Kind identifies a furniture type.
type Kind int

const (
	KindChair Kind = iota
	KindTable
	KindSofa
	KindCabinet
	KindBed
	KindLamp
)

// Kinds lists every furniture kind in menu order.
var Kinds = []Kind{KindChair, KindTable, KindSofa, KindCabinet, KindBed, KindLamp}

func (k Kind) String() string {
	switch k {
	case KindChair:
		return "Chair"
	case KindTable:
		return "Table"
	case KindSofa:
		return "Sofa"
	case KindCabinet:
		return "Cabinet"
	case KindBed:
		return "Bed"
	case KindLamp:
		return "Lamp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a kind name (case-insensitive) back to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown furniture kind %q", name)
}

// Orientation is the compass direction an item faces.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// Orientations lists every orientation clockwise from North.
var Orientations = []Orientation{North, East, South, West}

func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts an orientation name back to an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	for _, o := range Orientations {
		if strings.EqualFold(o.String(), strings.TrimSpace(name)) {
			return o, nil
		}
	}
	return North, fmt.Errorf("unknown orientation %q", name)
}

// Clockwise returns the next orientation turning clockwise.
func (o Orientation) Clockwise() Orientation {
	return Orientation((int(o) + 1) % len(Orientations))
}

// Sideways reports whether the item is turned a quarter turn, which swaps
// its width and depth on the floor.
func (o Orientation) Sideways() bool {
	return o == East || o == West
}
