// Package project provides design file handling and persistence.
package project

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Extension is the design file extension.
const Extension = ".roomplan"

// CurrentVersion is the file format version written by Save.
const CurrentVersion = 1

// ErrUnsupported is returned for files this version cannot represent.
var ErrUnsupported = errors.New("unsupported design file")

// File represents a room planner design file (.roomplan).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	Room      RoomRecord        `json:"room"`
	Furniture []FurnitureRecord `json:"furniture"`

	// Last view used with the design
	View *ViewSettings `json:"view,omitempty"`
}

// RoomRecord is the serialized room.
type RoomRecord struct {
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	FloorColor string  `json:"floor_color"`
	WallColor  string  `json:"wall_color"`
}

// FurnitureRecord is one serialized furniture item.
type FurnitureRecord struct {
	ID          uuid.UUID         `json:"id"`
	Kind        string            `json:"kind"`
	Subtype     string            `json:"subtype"`
	X           float64           `json:"x"`
	Z           float64           `json:"z"`
	Width       float64           `json:"width"`
	Depth       float64           `json:"depth"`
	Height      float64           `json:"height"`
	Color       string            `json:"color"`
	Orientation string            `json:"orientation"`
	PartColors  map[string]string `json:"part_colors,omitempty"`
	Shade       float64           `json:"shade"`
	Selected    bool              `json:"selected,omitempty"`
}

// ViewSettings holds the view state stored alongside a design.
type ViewSettings struct {
	Mode  string  `json:"mode"`
	Zoom  float64 `json:"zoom"`
	Yaw   float64 `json:"yaw,omitempty"`
	Pitch float64 `json:"pitch,omitempty"`
}

// New creates a file record for design d.
func New(d *scene.Design) *File {
	now := time.Now()
	p := &File{
		Version: CurrentVersion,
		Created: now,
	}
	p.Update(d)
	p.Modified = now
	return p
}

// Update replaces the file's content with d, keeping its creation time.
func (p *File) Update(d *scene.Design) {
	p.Name = d.Name
	room := d.Room()
	p.Room = RoomRecord{
		Length:     room.Length(),
		Width:      room.Width(),
		Height:     room.Height(),
		FloorColor: colorutil.Hex(room.FloorColor()),
		WallColor:  colorutil.Hex(room.WallColor()),
	}

	p.Furniture = make([]FurnitureRecord, 0, d.Len())
	for _, f := range d.Furniture() {
		parts := make(map[string]string, len(f.PartColors()))
		for part, c := range f.PartColors() {
			parts[part] = colorutil.Hex(c)
		}
		p.Furniture = append(p.Furniture, FurnitureRecord{
			ID:          f.ID(),
			Kind:        f.Kind().String(),
			Subtype:     f.Subtype(),
			X:           f.X(),
			Z:           f.Z(),
			Width:       f.Width(),
			Depth:       f.Depth(),
			Height:      f.Height(),
			Color:       colorutil.Hex(f.Color()),
			Orientation: f.Orientation().String(),
			PartColors:  parts,
			Shade:       f.ShadeFactor(),
			Selected:    f.Selected(),
		})
	}
}

// Design rebuilds the design described by the file.
func (p *File) Design() (*scene.Design, error) {
	if p.Version < 1 || p.Version > CurrentVersion {
		return nil, fmt.Errorf("version %d: %w", p.Version, ErrUnsupported)
	}

	floor, err := colorutil.ParseHex(p.Room.FloorColor)
	if err != nil {
		return nil, fmt.Errorf("room floor color: %w", err)
	}
	wall, err := colorutil.ParseHex(p.Room.WallColor)
	if err != nil {
		return nil, fmt.Errorf("room wall color: %w", err)
	}
	room := scene.NewRoom(p.Room.Length, p.Room.Width, p.Room.Height)
	room.SetFloorColor(floor)
	room.SetWallColor(wall)

	d := scene.NewDesign(room)
	d.Name = p.Name

	var selected *scene.Furniture
	for i, rec := range p.Furniture {
		f, err := rec.furniture()
		if err != nil {
			return nil, fmt.Errorf("furniture %d: %w", i, err)
		}
		d.Add(f)
		if rec.Selected {
			selected = f
		}
	}
	if selected != nil {
		d.Select(selected)
	}
	return d, nil
}

func (rec FurnitureRecord) furniture() (*scene.Furniture, error) {
	kind, err := scene.ParseKind(rec.Kind)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupported)
	}
	orientation, err := scene.ParseOrientation(rec.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnsupported)
	}
	base, err := colorutil.ParseHex(rec.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	f := scene.NewFurnitureWithID(id, kind, rec.Subtype)
	// SetColor reseeds part colors, so overrides are applied after it
	f.SetColor(base)
	f.SetPosition(rec.X, rec.Z)
	f.SetSize(rec.Width, rec.Depth, rec.Height)
	f.SetOrientation(orientation)
	if rec.Shade == 0 {
		// absent in files written before shading was stored
		f.SetShadeFactor(scene.MaxShade)
	} else {
		f.SetShadeFactor(rec.Shade)
	}

	parts := make([]string, 0, len(rec.PartColors))
	for part := range rec.PartColors {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	for _, part := range parts {
		c, err := colorutil.ParseHex(rec.PartColors[part])
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", part, err)
		}
		f.SetPartColor(part, c)
	}
	return f, nil
}

// Marshal encodes d as an indented design file.
func Marshal(d *scene.Design) ([]byte, error) {
	return New(d).Marshal()
}

// Marshal encodes the file.
func (p *File) Marshal() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Unmarshal decodes a design file.
func Unmarshal(data []byte) (*scene.Design, error) {
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return p.Design()
}

// Parse decodes a file record without building the design.
func Parse(data []byte) (*File, error) {
	var p File
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode design: %w", err)
	}
	return &p, nil
}

// Load loads a design file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save writes the file to path, updating its modification time.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := p.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadDesign reads and rebuilds the design at path.
func LoadDesign(path string) (*scene.Design, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	d, err := p.Design()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// SaveDesign writes d to path as a new file.
func SaveDesign(path string, d *scene.Design) error {
	return New(d).Save(path)
}
