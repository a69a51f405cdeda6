// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"roomplanner/internal/app"
	"roomplanner/internal/composer"
	"roomplanner/internal/export"
	"roomplanner/internal/project"
	"roomplanner/internal/scene"
	"roomplanner/internal/version"
	"roomplanner/ui/canvas"
	"roomplanner/ui/dialogs"
	"roomplanner/ui/panels"
	"roomplanner/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const (
	appTitle      = "Room Planner"
	watchInterval = 2 * time.Second

	// Export size used before the canvas has been laid out
	fallbackExportWidth  = 1200
	fallbackExportHeight = 900
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs
	log   *zap.Logger

	canvas     *canvas.DesignCanvas
	sidePanel  *panels.SidePanel
	statusBar  *widget.Label
	coordLabel *widget.Label
	modeRadio  *widget.RadioGroup
	gridCheck  *widget.Check
	zoomLabel  *widget.Label

	watcher *app.FileWatcher

	// Menu items that need state tracking
	undoItem *fyne.MenuItem
	redoItem *fyne.MenuItem
	gridItem *fyne.MenuItem
	mainMenu *fyne.MainMenu
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		log:    state.Logger().Named("window"),
	}

	mw.restoreView()
	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.updateTitle()

	w, h := p.WindowSize(1280, 800)
	mw.Resize(fyne.NewSize(w, h))
	mw.SetCloseIntercept(mw.onClose)

	return mw
}

// restoreView applies the saved view mode, zoom and grid setting.
func (mw *MainWindow) restoreView() {
	if mw.prefs.String(prefs.KeyViewMode) == composer.Mode3D.String() {
		mw.state.SetMode(composer.Mode3D)
	}
	if z := mw.prefs.Float(prefs.KeyZoom); z > 0 {
		mw.state.SetZoom(z)
	}
	mw.state.SetGrid(mw.prefs.Bool(prefs.KeyGrid, true))
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewDesignCanvas(mw.state)
	mw.canvas.OnHover(mw.onHover)

	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")
	mw.coordLabel = widget.NewLabel("")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar,   // top
		nil,       // bottom
		nil,       // left
		nil,       // right
		mw.canvas, // center
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25) // Side panel takes 25% of width

	content := container.NewBorder(
		nil, // top
		container.NewPadded(container.NewBorder(nil, nil, nil, mw.coordLabel, mw.statusBar)), // bottom
		nil,   // left
		nil,   // right
		split, // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with view and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.modeRadio = widget.NewRadioGroup([]string{composer.Mode2D.String(), composer.Mode3D.String()}, func(s string) {
		if s == composer.Mode3D.String() {
			mw.state.SetMode(composer.Mode3D)
		} else if s == composer.Mode2D.String() {
			mw.state.SetMode(composer.Mode2D)
		}
	})
	mw.modeRadio.Horizontal = true
	mw.modeRadio.Required = true
	mw.modeRadio.SetSelected(mw.state.View().Mode.String())

	mw.gridCheck = widget.NewCheck("Grid", mw.state.SetGrid)
	mw.gridCheck.SetChecked(mw.state.View().Grid)

	mw.zoomLabel = widget.NewLabel("")
	mw.updateZoomLabel()

	return container.NewHBox(
		widget.NewLabel("View:"),
		mw.modeRadio,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		widget.NewButton("-", mw.state.ZoomOut),
		widget.NewButton("+", mw.state.ZoomIn),
		widget.NewButton("Reset", mw.state.ResetView),
		mw.zoomLabel,
		widget.NewSeparator(),
		mw.gridCheck,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Room...", mw.onNewDesign),
		fyne.NewMenuItem("Open...", mw.onOpenDesign),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", mw.onSaveDesign),
		fyne.NewMenuItem("Save As...", mw.onSaveDesignAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG...", func() { mw.onExport(".png") }),
		fyne.NewMenuItem("Export SVG...", func() { mw.onExport(".svg") }),
	)

	mw.undoItem = fyne.NewMenuItem("Undo", mw.onUndo)
	mw.undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	mw.redoItem = fyne.NewMenuItem("Redo", mw.onRedo)
	mw.redoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	mw.undoItem.Disabled = true
	mw.redoItem.Disabled = true

	editMenu := fyne.NewMenu("Edit",
		mw.undoItem,
		mw.redoItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Furniture...", mw.onAddFurniture),
		fyne.NewMenuItem("Duplicate", mw.onDuplicate),
		fyne.NewMenuItem("Delete", mw.onDelete),
		fyne.NewMenuItem("Deselect", func() { mw.state.Select(nil) }),
	)

	mw.gridItem = fyne.NewMenuItem("Show Grid", func() { mw.state.SetGrid(!mw.state.View().Grid) })
	mw.gridItem.Checked = mw.state.View().Grid

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Plan (2D)", func() { mw.state.SetMode(composer.Mode2D) }),
		fyne.NewMenuItem("Isometric (3D)", func() { mw.state.SetMode(composer.Mode3D) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Zoom In", mw.state.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.state.ZoomOut),
		fyne.NewMenuItem("Reset View", mw.state.ResetView),
		fyne.NewMenuItemSeparator(),
		mw.gridItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mw.mainMenu)
}

// setupShortcuts registers keyboard shortcuts on the window canvas.
func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()
	mod := fyne.KeyModifierShortcutDefault
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod}, func(fyne.Shortcut) { mw.onUndo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: mod}, func(fyne.Shortcut) { mw.onRedo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: mod}, func(fyne.Shortcut) { mw.onSaveDesign() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { mw.onOpenDesign() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: mod}, func(fyne.Shortcut) { mw.onDuplicate() })

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			mw.onDelete()
		case fyne.KeyEscape:
			mw.state.Select(nil)
		case fyne.KeyPlus, fyne.KeyEqual:
			mw.state.ZoomIn()
		case fyne.KeyMinus:
			mw.state.ZoomOut()
		}
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDesignLoaded, func(data interface{}) {
		mw.updateTitle()
		mw.watch(mw.state.Path())
		if d, ok := data.(*scene.Design); ok {
			mw.updateStatus(fmt.Sprintf("%s: %d items", d.Name, d.Len()))
		}
	})

	mw.state.On(app.EventDesignSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Saved " + path)
			mw.watch(path)
		}
		mw.updateTitle()
	})

	mw.state.On(app.EventModified, func(interface{}) { mw.updateTitle() })

	mw.state.On(app.EventHistoryChanged, func(data interface{}) {
		if hs, ok := data.(app.HistoryStatus); ok {
			mw.undoItem.Disabled = !hs.CanUndo
			mw.redoItem.Disabled = !hs.CanRedo
			mw.mainMenu.Refresh()
		}
	})

	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		if f, ok := data.(*scene.Furniture); ok && f != nil {
			mw.updateStatus(fmt.Sprintf("Selected %s (%s) at %.2f, %.2f", f.Kind(), f.Subtype(), f.X(), f.Z()))
		} else {
			mw.updateStatus("Ready")
		}
	})

	mw.state.On(app.EventFurnitureMoved, func(data interface{}) {
		if f, ok := data.(*scene.Furniture); ok {
			mw.updateStatus(fmt.Sprintf("%s at %.2f, %.2f", f.Kind(), f.X(), f.Z()))
		}
	})

	mw.state.On(app.EventViewChanged, func(data interface{}) {
		v, ok := data.(composer.View)
		if !ok {
			return
		}
		if mw.modeRadio.Selected != v.Mode.String() {
			mw.modeRadio.SetSelected(v.Mode.String())
		}
		if mw.gridCheck.Checked != v.Grid {
			mw.gridCheck.SetChecked(v.Grid)
		}
		if mw.gridItem.Checked != v.Grid {
			mw.gridItem.Checked = v.Grid
			mw.mainMenu.Refresh()
		}
		mw.updateZoomLabel()
	})
}

func (mw *MainWindow) updateTitle() {
	mw.SetTitle(appTitle + " - " + mw.state.Title())
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) updateZoomLabel() {
	mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", mw.state.View().Zoom*100))
}

func (mw *MainWindow) onHover(x, z float64, ok bool) {
	if !ok {
		mw.coordLabel.SetText("")
		return
	}
	mw.coordLabel.SetText(fmt.Sprintf("x %.2f m  z %.2f m", x, z))
}

// watch starts polling path for changes made by other programs.
func (mw *MainWindow) watch(path string) {
	if mw.watcher != nil {
		if mw.watcher.Path() == path {
			mw.watcher.ResetBaseline()
			return
		}
		mw.watcher.Stop()
		mw.watcher = nil
	}
	if path == "" {
		return
	}
	w := app.NewFileWatcher(path, watchInterval)
	if w == nil {
		mw.log.Warn("cannot watch design file", zap.String("path", path))
		return
	}
	w.OnChange(func(p string) {
		mw.log.Info("design file changed on disk", zap.String("path", p))
		msg := filepath.Base(p) + " was changed by another program.\nReload it?"
		if mw.state.Modified() {
			msg += "\nYour unsaved changes will be lost."
		}
		dialog.ShowConfirm("File Changed", msg, func(reload bool) {
			if !reload {
				return
			}
			if err := mw.state.LoadDesign(p); err != nil {
				dialog.ShowError(err, mw.Window)
			}
		}, mw.Window)
	})
	w.Start()
	mw.watcher = w
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
}

// confirmDiscard runs next right away when there are no unsaved changes,
// otherwise after the user agrees to drop them.
func (mw *MainWindow) confirmDiscard(next func()) {
	if !mw.state.Modified() {
		next()
		return
	}
	dialog.ShowConfirm("Unsaved Changes",
		fmt.Sprintf("Discard unsaved changes to %s?", mw.state.Design().Name),
		func(ok bool) {
			if ok {
				next()
			}
		}, mw.Window)
}

// Menu action handlers

func (mw *MainWindow) onNewDesign() {
	mw.confirmDiscard(func() {
		form := dialogs.NewRoomForm("", scene.NewRoom(app.DefaultRoomLength, app.DefaultRoomWidth, app.DefaultRoomHeight))
		dialogs.NewRoomDialog(form, mw.Window, func(name string, room *scene.Room) {
			mw.state.NewDesign(name, room)
		}).Show()
	})
}

func (mw *MainWindow) onOpenDesign() {
	mw.confirmDiscard(func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			reader.Close()
			path := reader.URI().Path()
			mw.saveLastDir(path)
			if err := mw.state.LoadDesign(path); err != nil {
				dialog.ShowError(err, mw.Window)
			}
		}, mw.Window)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{project.Extension}))
		if loc := mw.getLastDir(); loc != nil {
			fd.SetLocation(loc)
		}
		fd.Show()
	})
}

func (mw *MainWindow) onSaveDesign() {
	if mw.state.Path() == "" {
		mw.onSaveDesignAs()
		return
	}
	mw.save(mw.state.Path())
}

func (mw *MainWindow) onSaveDesignAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != project.Extension {
			path += project.Extension
		}
		mw.saveLastDir(path)
		mw.save(path)
	}, mw.Window)
	fd.SetFileName(fileStem(mw.state.Design().Name) + project.Extension)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) save(path string) {
	if mw.watcher != nil {
		mw.watcher.Stop()
	}
	if err := mw.state.SaveDesign(path); err != nil {
		dialog.ShowError(err, mw.Window)
		if mw.watcher != nil {
			mw.watcher.Start()
		}
		return
	}
	if mw.watcher != nil && mw.watcher.Path() == mw.state.Path() {
		mw.watcher.ResetBaseline()
		mw.watcher.Start()
	}
}

func (mw *MainWindow) onExport(ext string) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !strings.EqualFold(filepath.Ext(path), ext) {
			path += ext
		}
		mw.saveLastDir(path)

		view := mw.state.View()
		if view.Width < 1 || view.Height < 1 {
			view.Width, view.Height = fallbackExportWidth, fallbackExportHeight
		}
		if err := export.File(path, mw.state.Design(), view); err != nil {
			mw.log.Warn("export failed", zap.String("path", path), zap.Error(err))
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.log.Info("exported", zap.String("path", path), zap.Stringer("mode", view.Mode))
		mw.updateStatus("Exported " + path)
	}, mw.Window)
	fd.SetFileName(fileStem(mw.state.Design().Name) + ext)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onUndo() {
	if !mw.state.Undo() {
		mw.updateStatus("Nothing to undo")
	}
}

func (mw *MainWindow) onRedo() {
	if !mw.state.Redo() {
		mw.updateStatus("Nothing to redo")
	}
}

func (mw *MainWindow) onAddFurniture() {
	dialogs.NewAddFurnitureDialog(mw.Window, mw.state.AddFurniture).Show()
}

func (mw *MainWindow) onDuplicate() {
	if mw.state.DuplicateSelected() == nil {
		mw.updateStatus("Select an item to duplicate")
	}
}

func (mw *MainWindow) onDelete() {
	if !mw.state.RemoveSelected() {
		mw.updateStatus("Select an item to delete")
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Lay out furniture in a room, in plan or isometric view.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

func (mw *MainWindow) onClose() {
	mw.confirmDiscard(func() {
		mw.SavePreferences()
		if mw.watcher != nil {
			mw.watcher.Stop()
		}
		mw.Close()
	})
}

// SavePreferences stores the window size and view settings.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	v := mw.state.View()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	mw.prefs.SetString(prefs.KeyViewMode, v.Mode.String())
	mw.prefs.SetFloat(prefs.KeyZoom, v.Zoom)
	mw.prefs.SetBool(prefs.KeyGrid, v.Grid)
	if err := mw.prefs.Save(); err != nil {
		mw.log.Warn("saving preferences failed", zap.String("path", mw.prefs.Path()), zap.Error(err))
	}
}

// fileStem turns a design name into a file name without extension.
func fileStem(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "design"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
