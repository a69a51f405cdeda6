package panels

import (
	"fmt"

	"roomplanner/internal/app"
	"roomplanner/internal/scene"
	"roomplanner/ui/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FurniturePanel lists the furniture in draw order and hosts the add,
// duplicate, delete, undo and redo buttons.
type FurniturePanel struct {
	state  *app.State
	window fyne.Window
	box    *fyne.Container

	list    *widget.List
	syncing bool // set while the list follows the model's selection

	duplicateBtn *widget.Button
	deleteBtn    *widget.Button
	undoBtn      *widget.Button
	redoBtn      *widget.Button
	countLabel   *widget.Label
}

// NewFurniturePanel creates the furniture list.
func NewFurniturePanel(state *app.State) *FurniturePanel {
	fp := &FurniturePanel{state: state}
	fp.buildUI()

	state.On(app.EventFurnitureChanged, func(_ interface{}) { fp.refresh() })
	state.On(app.EventDesignLoaded, func(_ interface{}) { fp.refresh() })
	state.On(app.EventFurnitureEdited, func(_ interface{}) { fp.list.Refresh() })
	state.On(app.EventSelectionChanged, func(_ interface{}) { fp.syncSelection() })
	state.On(app.EventHistoryChanged, func(data interface{}) {
		if hs, ok := data.(app.HistoryStatus); ok {
			setEnabled(fp.undoBtn, hs.CanUndo)
			setEnabled(fp.redoBtn, hs.CanRedo)
		}
	})

	fp.refresh()
	return fp
}

// SetWindow sets the parent window for dialogs.
func (fp *FurniturePanel) SetWindow(w fyne.Window) {
	fp.window = w
}

// Container returns the panel for embedding.
func (fp *FurniturePanel) Container() fyne.CanvasObject {
	return fp.box
}

func (fp *FurniturePanel) buildUI() {
	fp.list = widget.NewList(
		func() int { return fp.state.Design().Len() },
		func() fyne.CanvasObject { return widget.NewLabel("Furniture item") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			d := fp.state.Design()
			if id < 0 || id >= d.Len() {
				return
			}
			obj.(*widget.Label).SetText(furnitureLabel(id, d.At(id)))
		},
	)
	fp.list.OnSelected = func(id widget.ListItemID) {
		if fp.syncing {
			return
		}
		d := fp.state.Design()
		if id >= 0 && id < d.Len() {
			fp.state.Select(d.At(id))
		}
	}

	addBtn := widget.NewButton("Add...", fp.onAdd)
	addBtn.Importance = widget.HighImportance
	fp.duplicateBtn = widget.NewButton("Duplicate", func() { fp.state.DuplicateSelected() })
	fp.deleteBtn = widget.NewButton("Delete", func() { fp.state.RemoveSelected() })
	fp.deleteBtn.Importance = widget.DangerImportance
	fp.undoBtn = widget.NewButton("Undo", func() { fp.state.Undo() })
	fp.redoBtn = widget.NewButton("Redo", func() { fp.state.Redo() })
	fp.undoBtn.Disable()
	fp.redoBtn.Disable()
	fp.countLabel = widget.NewLabel("")

	buttons := container.NewVBox(
		container.NewGridWithColumns(3, addBtn, fp.duplicateBtn, fp.deleteBtn),
		container.NewGridWithColumns(2, fp.undoBtn, fp.redoBtn),
		fp.countLabel,
	)
	fp.box = container.NewBorder(nil, buttons, nil, nil, fp.list)
}

func (fp *FurniturePanel) refresh() {
	n := fp.state.Design().Len()
	switch n {
	case 0:
		fp.countLabel.SetText("Empty room")
	case 1:
		fp.countLabel.SetText("1 item")
	default:
		fp.countLabel.SetText(fmt.Sprintf("%d items", n))
	}
	fp.list.Refresh()
	fp.syncSelection()
}

func (fp *FurniturePanel) syncSelection() {
	fp.syncing = true
	defer func() { fp.syncing = false }()

	d := fp.state.Design()
	sel := d.Selected()
	setEnabled(fp.duplicateBtn, sel != nil)
	setEnabled(fp.deleteBtn, sel != nil)
	if sel == nil {
		fp.list.UnselectAll()
		return
	}
	if i := d.IndexOf(sel); i >= 0 {
		fp.list.Select(i)
		fp.list.ScrollTo(i)
	}
}

func (fp *FurniturePanel) onAdd() {
	if fp.window == nil {
		fp.state.AddFurniture(scene.NewFurniture(scene.KindChair, ""))
		return
	}
	dialogs.NewAddFurnitureDialog(fp.window, fp.state.AddFurniture).Show()
}

func setEnabled(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}
