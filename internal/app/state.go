// Package app provides application lifecycle management, editing commands and events.
package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"roomplanner/internal/composer"
	"roomplanner/internal/history"
	"roomplanner/internal/interaction"
	"roomplanner/internal/project"
	"roomplanner/internal/scene"
	"roomplanner/pkg/geometry"

	"go.uber.org/zap"
)

// Default room for a fresh session.
const (
	DefaultRoomLength = 5.0
	DefaultRoomWidth  = 4.0
	DefaultRoomHeight = 2.7
	UntitledName      = "Untitled"
)

// duplicateOffset is how far a duplicate is shifted from its original, in meters.
const duplicateOffset = 0.25

// State holds the open design, its edit history and the view, and
// broadcasts changes to the UI. All methods run on the UI goroutine; only
// the listener registry is locked.
type State struct {
	mu sync.RWMutex

	log *zap.Logger

	// Design
	design   *scene.Design
	file     *project.File // nil until loaded or saved
	path     string
	modified bool

	history *history.History
	ctrl    *interaction.Controller

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventDesignLoaded     EventType = iota // data: *scene.Design
	EventDesignSaved                       // data: path string
	EventFurnitureChanged                  // data: *scene.Design; list membership or order changed
	EventFurnitureEdited                   // data: *scene.Furniture; properties changed
	EventFurnitureMoved                    // data: *scene.Furniture
	EventSelectionChanged                  // data: *scene.Furniture, nil when cleared
	EventViewChanged                       // data: composer.View
	EventModified                          // data: bool
	EventHistoryChanged                    // data: HistoryStatus
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// HistoryStatus reports undo and redo availability.
type HistoryStatus struct {
	CanUndo bool
	CanRedo bool
}

// NewState creates a state holding an empty default room. A historyLimit
// below 1 uses history.DefaultLimit.
func NewState(log *zap.Logger, historyLimit int) *State {
	if log == nil {
		log = zap.NewNop()
	}
	if historyLimit < 1 {
		historyLimit = history.DefaultLimit
	}
	s := &State{
		log:       log,
		history:   history.NewWithLimit(historyLimit),
		listeners: make(map[EventType][]EventListener),
	}
	s.history.OnChange(func(canUndo, canRedo bool) {
		s.Emit(EventHistoryChanged, HistoryStatus{CanUndo: canUndo, CanRedo: canRedo})
	})

	d := scene.NewDesign(scene.NewRoom(DefaultRoomLength, DefaultRoomWidth, DefaultRoomHeight))
	d.Name = UntitledName
	s.design = d
	s.ctrl = interaction.New(d, composer.NewView(0, 0), s)
	return s
}

// On registers an event listener for the given event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the given event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Design returns the open design.
func (s *State) Design() *scene.Design { return s.design }

// History returns the edit history of the open design.
func (s *State) History() *history.History { return s.history }

// Controller returns the pointer controller.
func (s *State) Controller() *interaction.Controller { return s.ctrl }

// Logger returns the state's logger.
func (s *State) Logger() *zap.Logger { return s.log }

// Path returns the file the design was loaded from or saved to, if any.
func (s *State) Path() string { return s.path }

// Modified reports whether the design has unsaved changes.
func (s *State) Modified() bool { return s.modified }

// Title returns the window title for the design.
func (s *State) Title() string {
	name := s.design.Name
	if name == "" {
		name = UntitledName
	}
	if s.modified {
		name += " *"
	}
	return name
}

// SetModified marks the design as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.modified = modified
	s.Emit(EventModified, modified)
}

// NewDesign replaces the open design with an empty one for room.
func (s *State) NewDesign(name string, room *scene.Room) {
	d := scene.NewDesign(room)
	d.Name = strings.TrimSpace(name)
	if d.Name == "" {
		d.Name = UntitledName
	}
	s.replace(d, "", nil)
	s.log.Info("new design",
		zap.String("name", d.Name),
		zap.Float64("length", room.Length()),
		zap.Float64("width", room.Width()),
		zap.Float64("height", room.Height()))
}

// LoadDesign opens the design at path. On failure the open design is left
// unchanged.
func (s *State) LoadDesign(path string) error {
	p, err := project.Load(path)
	if err != nil {
		s.log.Warn("load failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("load design: %w", err)
	}
	d, err := p.Design()
	if err != nil {
		s.log.Warn("load failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("load design %s: %w", filepath.Base(path), err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s.replace(d, path, p)
	if p.View != nil {
		v := s.ctrl.View()
		if p.View.Mode == composer.Mode3D.String() {
			v.Mode = composer.Mode3D
		} else {
			v.Mode = composer.Mode2D
		}
		v.Zoom = composer.ClampZoom(p.View.Zoom)
		v.Yaw, v.Pitch = p.View.Yaw, p.View.Pitch
		s.setView(v)
	}
	s.log.Info("design loaded", zap.String("path", path), zap.Int("furniture", d.Len()))
	return nil
}

// SaveDesign writes the open design to path. On failure the design stays
// marked as modified.
func (s *State) SaveDesign(path string) error {
	if filepath.Ext(path) == "" {
		path += project.Extension
	}
	p := s.file
	if p == nil {
		p = project.New(s.design)
	} else {
		p.Update(s.design)
	}
	v := s.ctrl.View()
	p.View = &project.ViewSettings{Mode: v.Mode.String(), Zoom: v.Zoom, Yaw: v.Yaw, Pitch: v.Pitch}

	if err := p.Save(path); err != nil {
		s.log.Warn("save failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("save design: %w", err)
	}
	s.file = p
	s.path = path
	s.SetModified(false)
	s.log.Info("design saved", zap.String("path", path), zap.Int("furniture", s.design.Len()))
	s.Emit(EventDesignSaved, path)
	return nil
}

func (s *State) replace(d *scene.Design, path string, p *project.File) {
	s.design = d
	s.path = path
	s.file = p
	s.history.Clear()
	s.ctrl.SetDesign(d)
	s.modified = false
	s.Emit(EventDesignLoaded, d)
	s.Emit(EventModified, false)
	s.Emit(EventSelectionChanged, d.Selected())
}

// AddFurniture appends f, selects it and records the addition.
func (s *State) AddFurniture(f *scene.Furniture) {
	idx := s.design.Add(f)
	s.history.RecordAdd(s.design, f, idx)
	s.log.Debug("furniture added",
		zap.String("id", f.ID().String()),
		zap.Stringer("kind", f.Kind()),
		zap.String("subtype", f.Subtype()))
	s.SetModified(true)
	s.Emit(EventFurnitureChanged, s.design)
	s.Select(f)
}

// RemoveFurniture removes f and records the removal. It reports false when
// f is not part of the design.
func (s *State) RemoveFurniture(f *scene.Furniture) bool {
	if f == nil || !s.design.Contains(f) {
		return false
	}
	wasSelected := f.Selected()
	if wasSelected {
		s.design.ClearSelection()
	}
	idx, _ := s.design.Remove(f)
	s.dropStaleGesture()
	s.history.RecordRemove(s.design, f, idx)
	s.log.Debug("furniture removed", zap.String("id", f.ID().String()), zap.Int("index", idx))
	s.SetModified(true)
	s.Emit(EventFurnitureChanged, s.design)
	if wasSelected {
		s.Emit(EventSelectionChanged, (*scene.Furniture)(nil))
	}
	return true
}

// RemoveSelected removes the selected item, if any.
func (s *State) RemoveSelected() bool {
	return s.RemoveFurniture(s.design.Selected())
}

// DuplicateSelected adds a copy of the selected item shifted toward the
// room's far corner, and returns it.
func (s *State) DuplicateSelected() *scene.Furniture {
	orig := s.design.Selected()
	if orig == nil {
		return nil
	}
	room := s.design.Room()
	c := orig.Clone()
	c.SetPosition(
		geometry.Clamp(orig.X()+duplicateOffset, 0, room.Length()-c.Width()),
		geometry.Clamp(orig.Z()+duplicateOffset, 0, room.Width()-c.Depth()),
	)
	s.AddFurniture(c)
	return c
}

// Select makes f the selected item; nil clears the selection.
func (s *State) Select(f *scene.Furniture) {
	var changed bool
	if f == nil {
		changed = s.design.ClearSelection()
	} else {
		changed = s.design.Select(f)
	}
	if changed {
		s.Emit(EventSelectionChanged, f)
	}
}

// FurnitureEdited reports a property change made through the setters.
func (s *State) FurnitureEdited(f *scene.Furniture) {
	s.SetModified(true)
	s.Emit(EventFurnitureEdited, f)
}

// Undo reverts the last add or remove.
func (s *State) Undo() bool {
	e, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.log.Debug("undo", zap.Bool("added", e.Added), zap.String("id", e.Furniture.ID().String()))
	s.afterHistory()
	return true
}

// Redo reapplies the last undone edit.
func (s *State) Redo() bool {
	e, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.log.Debug("redo", zap.Bool("added", e.Added), zap.String("id", e.Furniture.ID().String()))
	s.afterHistory()
	return true
}

func (s *State) afterHistory() {
	s.dropStaleGesture()
	s.SetModified(true)
	s.Emit(EventFurnitureChanged, s.design)
	s.Emit(EventSelectionChanged, s.design.Selected())
}

// dropStaleGesture cancels a drag whose item has left the design.
func (s *State) dropStaleGesture() {
	if t := s.ctrl.Target(); t != nil && !s.design.Contains(t) {
		s.ctrl.Cancel()
	}
}

// View returns the current view state.
func (s *State) View() composer.View { return s.ctrl.View() }

func (s *State) setView(v composer.View) {
	s.ctrl.SetView(v)
	s.Emit(EventViewChanged, v)
}

// SetMode switches between the plan and isometric view.
func (s *State) SetMode(m composer.Mode) {
	v := s.ctrl.View()
	if v.Mode == m {
		return
	}
	v.Mode = m
	s.log.Debug("view mode", zap.Stringer("mode", m))
	s.setView(v)
}

// SetZoom sets the zoom factor, clamped to [composer.MinZoom, composer.MaxZoom].
func (s *State) SetZoom(z float64) {
	v := s.ctrl.View()
	v.Zoom = composer.ClampZoom(z)
	s.setView(v)
}

// ZoomIn increases the zoom by one step.
func (s *State) ZoomIn() { s.SetZoom(s.ctrl.View().Zoom * composer.ZoomStep) }

// ZoomOut decreases the zoom by one step.
func (s *State) ZoomOut() { s.SetZoom(s.ctrl.View().Zoom / composer.ZoomStep) }

// ResetView restores the default zoom and orbit angles.
func (s *State) ResetView() {
	v := s.ctrl.View()
	v.Zoom = composer.DefaultZoom
	v.Yaw, v.Pitch = 0, 0
	s.setView(v)
}

// SetGrid toggles the 2D grid.
func (s *State) SetGrid(on bool) {
	v := s.ctrl.View()
	v.Grid = on
	s.setView(v)
}

// SetPanelSize records the drawing panel size in pixels. No event is sent;
// the panel redraws itself.
func (s *State) SetPanelSize(w, h float64) {
	v := s.ctrl.View()
	v.Width, v.Height = w, h
	s.ctrl.SetView(v)
}

// HandlePointer forwards a pointer event to the controller.
func (s *State) HandlePointer(ev interaction.Event) interaction.Intent {
	intent := s.ctrl.Handle(ev)
	if intent != interaction.IntentNone && intent != interaction.IntentMove && intent != interaction.IntentRotate {
		s.log.Debug("pointer", zap.Stringer("intent", intent),
			zap.Float64("x", ev.Pos.X), zap.Float64("y", ev.Pos.Y))
	}
	return intent
}

// SelectionChanged implements interaction.Observer.
func (s *State) SelectionChanged(f *scene.Furniture) {
	s.Emit(EventSelectionChanged, f)
}

// FurnitureMoved implements interaction.Observer.
func (s *State) FurnitureMoved(f *scene.Furniture) {
	if !s.modified {
		s.SetModified(true)
	}
	s.Emit(EventFurnitureMoved, f)
}

// ViewRotated implements interaction.Observer.
func (s *State) ViewRotated(yaw, pitch float64) {
	s.Emit(EventViewChanged, s.ctrl.View())
}
