package history

import (
	"testing"

	"roomplanner/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDesign(n int) *scene.Design {
	d := scene.NewDesign(scene.NewRoom(5, 5, 3))
	for i := 0; i < n; i++ {
		d.Add(scene.NewFurniture(scene.KindChair, ""))
	}
	return d
}

func add(h *History, d *scene.Design, f *scene.Furniture) {
	h.RecordAdd(d, f, d.Add(f))
}

func TestUndoRedo_AddRoundTrip(t *testing.T) {
	d := newDesign(3)
	before := d.Furniture()
	h := New()

	f := scene.NewFurniture(scene.KindSofa, "")
	add(h, d, f)

	_, ok := h.Undo()
	require.True(t, ok)
	after := d.Furniture()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Same(t, before[i], after[i])
	}

	_, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, append(before, f), d.Furniture())
}

func TestUndo_RemoveRestoresPosition(t *testing.T) {
	d := newDesign(4)
	h := New()
	victim := d.At(1)

	idx, ok := d.Remove(victim)
	require.True(t, ok)
	h.RecordRemove(d, victim, idx)
	assert.False(t, d.Contains(victim))

	h.Undo()
	assert.Same(t, victim, d.At(1))

	h.Redo()
	assert.False(t, d.Contains(victim))
	assert.Equal(t, 3, d.Len())
}

func TestUndo_ClearsSelectionOfRemovedItem(t *testing.T) {
	d := newDesign(0)
	h := New()
	f := scene.NewFurniture(scene.KindBed, "")
	add(h, d, f)
	d.Select(f)

	h.Undo()
	assert.Nil(t, d.Selected())
	assert.False(t, f.Selected())
}

func TestHistoryBound(t *testing.T) {
	d := newDesign(0)
	h := New()
	var items []*scene.Furniture
	for i := 0; i < 150; i++ {
		f := scene.NewFurniture(scene.KindTable, "")
		items = append(items, f)
		add(h, d, f)
	}
	assert.Equal(t, 100, h.UndoLen())

	for h.CanUndo() {
		h.Undo()
	}
	// The oldest 50 adds are no longer undoable.
	assert.Equal(t, items[:50], d.Furniture())
}

func TestNewRecordClearsRedo(t *testing.T) {
	d := newDesign(0)
	h := New()
	add(h, d, scene.NewFurniture(scene.KindChair, ""))
	h.Undo()
	require.True(t, h.CanRedo())

	add(h, d, scene.NewFurniture(scene.KindLamp, ""))
	assert.False(t, h.CanRedo())
	_, ok := h.Redo()
	assert.False(t, ok)
}

func TestAvailabilityAndListeners(t *testing.T) {
	d := newDesign(0)
	h := NewWithLimit(0)
	assert.Equal(t, 1, h.Limit())

	type change struct{ undo, redo bool }
	var got []change
	h.OnChange(func(u, r bool) { got = append(got, change{u, r}) })

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	_, ok := h.Undo()
	assert.False(t, ok)

	add(h, d, scene.NewFurniture(scene.KindChair, ""))
	h.Undo()
	h.Redo()
	h.Clear()

	assert.Equal(t, []change{
		{true, false},
		{false, true},
		{true, false},
		{false, false},
	}, got)
}
