package scene

import "github.com/google/uuid"

// Design owns one room and an ordered list of furniture. List order is both
// the draw order and the display order; nothing re-sorts it.
type Design struct {
	Name  string
	room  *Room
	items []*Furniture
}

// NewDesign creates an empty design for room.
func NewDesign(room *Room) *Design {
	return &Design{room: room}
}

// Room returns the design's room.
func (d *Design) Room() *Room { return d.room }

// Furniture returns the items in list order. The slice is a copy; the items
// are shared.
func (d *Design) Furniture() []*Furniture {
	out := make([]*Furniture, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of items.
func (d *Design) Len() int { return len(d.items) }

// At returns the item at index i.
func (d *Design) At(i int) *Furniture { return d.items[i] }

// Add appends f and returns its index.
func (d *Design) Add(f *Furniture) int {
	d.items = append(d.items, f)
	return len(d.items) - 1
}

// Insert places f at index i, clamped to the list bounds.
func (d *Design) Insert(i int, f *Furniture) int {
	if i < 0 {
		i = 0
	}
	if i >= len(d.items) {
		return d.Add(f)
	}
	d.items = append(d.items, nil)
	copy(d.items[i+1:], d.items[i:])
	d.items[i] = f
	return i
}

// Remove deletes f and returns the index it had.
func (d *Design) Remove(f *Furniture) (int, bool) {
	i := d.IndexOf(f)
	if i < 0 {
		return -1, false
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	return i, true
}

// IndexOf returns the position of f, or -1.
func (d *Design) IndexOf(f *Furniture) int {
	for i, item := range d.items {
		if item == f {
			return i
		}
	}
	return -1
}

// Contains reports whether f belongs to the design.
func (d *Design) Contains(f *Furniture) bool {
	return d.IndexOf(f) >= 0
}

// FindByID returns the item with the given identity, or nil.
func (d *Design) FindByID(id uuid.UUID) *Furniture {
	for _, item := range d.items {
		if item.ID() == id {
			return item
		}
	}
	return nil
}

// Selected returns the first selected item, or nil.
func (d *Design) Selected() *Furniture {
	for _, item := range d.items {
		if item.Selected() {
			return item
		}
	}
	return nil
}

// Select makes f the only selected item; nil clears the selection.
// Reports whether the selection changed.
func (d *Design) Select(f *Furniture) bool {
	prev := d.Selected()
	for _, item := range d.items {
		item.SetSelected(item == f)
	}
	return prev != d.Selected()
}

// ClearSelection deselects every item and reports whether anything changed.
func (d *Design) ClearSelection() bool {
	return d.Select(nil)
}
