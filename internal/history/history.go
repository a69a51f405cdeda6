// Package history records structural design edits (adding and removing
// furniture) and replays them for undo and redo.
package history

import (
	"sync"

	"roomplanner/internal/scene"
)

// DefaultLimit is the undo depth kept by New.
const DefaultLimit = 100

// Edit is one structural change. Property changes (move, resize, recolor)
// are not recorded.
type Edit struct {
	Design    *scene.Design
	Furniture *scene.Furniture
	Added     bool
	Index     int // list position the item occupied; used to restore removals
}

// History is a bounded undo stack with a redo stack.
type History struct {
	limit int
	undo  []Edit
	redo  []Edit

	mu        sync.RWMutex
	listeners []func(canUndo, canRedo bool)
}

// New returns a history that keeps DefaultLimit edits.
func New() *History {
	return NewWithLimit(DefaultLimit)
}

// NewWithLimit returns a history that keeps at most limit undoable edits.
// A limit below 1 is raised to 1.
func NewWithLimit(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Limit returns the maximum undo depth.
func (h *History) Limit() int { return h.limit }

// OnChange registers fn to be called whenever undo or redo availability may
// have changed.
func (h *History) OnChange(fn func(canUndo, canRedo bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

func (h *History) notify() {
	h.mu.RLock()
	listeners := make([]func(bool, bool), len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.RUnlock()

	canUndo, canRedo := h.CanUndo(), h.CanRedo()
	for _, fn := range listeners {
		fn(canUndo, canRedo)
	}
}

// Record pushes e and clears the redo stack. The oldest edit is dropped
// when the limit is exceeded.
func (h *History) Record(e Edit) {
	h.undo = append(h.undo, e)
	if over := len(h.undo) - h.limit; over > 0 {
		h.undo = append(h.undo[:0:0], h.undo[over:]...)
	}
	h.redo = nil
	h.notify()
}

// RecordAdd records that f was added to d at index.
func (h *History) RecordAdd(d *scene.Design, f *scene.Furniture, index int) {
	h.Record(Edit{Design: d, Furniture: f, Added: true, Index: index})
}

// RecordRemove records that f was removed from d at index.
func (h *History) RecordRemove(d *scene.Design, f *scene.Furniture, index int) {
	h.Record(Edit{Design: d, Furniture: f, Added: false, Index: index})
}

// Undo reverts the most recent edit and returns it.
func (h *History) Undo() (Edit, bool) {
	if len(h.undo) == 0 {
		return Edit{}, false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	apply(e, !e.Added)
	h.redo = append(h.redo, e)
	h.notify()
	return e, true
}

// Redo reapplies the most recently undone edit and returns it.
func (h *History) Redo() (Edit, bool) {
	if len(h.redo) == 0 {
		return Edit{}, false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	apply(e, e.Added)
	h.undo = append(h.undo, e)
	h.notify()
	return e, true
}

// apply puts the edit's item into its design when present is true and
// takes it out otherwise.
func apply(e Edit, present bool) {
	if e.Design == nil || e.Furniture == nil {
		return
	}
	if present {
		if !e.Design.Contains(e.Furniture) {
			e.Design.Insert(e.Index, e.Furniture)
		}
		return
	}
	if e.Furniture.Selected() {
		e.Design.ClearSelection()
	}
	e.Design.Remove(e.Furniture)
}

// CanUndo reports whether an edit can be undone.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an undone edit can be redone.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoLen returns the number of undoable edits.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the number of redoable edits.
func (h *History) RedoLen() int { return len(h.redo) }

// Clear drops all edits.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.notify()
}
