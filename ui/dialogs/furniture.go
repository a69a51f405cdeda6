package dialogs

import (
	"fmt"
	"image/color"
	"sort"

	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// AddFurnitureDialog asks for the kind and subtype of a new item.
type AddFurnitureDialog struct {
	window fyne.Window

	kindSelect    *widget.Select
	subtypeSelect *widget.Select
	sizeLabel     *widget.Label

	onAdd func(*scene.Furniture)
}

// NewAddFurnitureDialog creates the dialog. onAdd receives the new item
// with catalog defaults.
func NewAddFurnitureDialog(window fyne.Window, onAdd func(*scene.Furniture)) *AddFurnitureDialog {
	return &AddFurnitureDialog{window: window, onAdd: onAdd}
}

// Show displays the dialog.
func (d *AddFurnitureDialog) Show() {
	d.sizeLabel = widget.NewLabel("")
	d.subtypeSelect = widget.NewSelect(nil, func(string) { d.updateSize() })

	names := make([]string, len(scene.Kinds))
	for i, k := range scene.Kinds {
		names[i] = k.String()
	}
	d.kindSelect = widget.NewSelect(names, func(name string) {
		kind, err := scene.ParseKind(name)
		if err != nil {
			return
		}
		subs := scene.Subtypes(kind)
		d.subtypeSelect.Options = subs
		if len(subs) > 0 {
			d.subtypeSelect.SetSelected(subs[0])
		} else {
			d.subtypeSelect.ClearSelected()
		}
		d.updateSize()
	})
	d.kindSelect.SetSelected(names[0])

	form := widget.NewForm(
		widget.NewFormItem("Kind", d.kindSelect),
		widget.NewFormItem("Style", d.subtypeSelect),
		widget.NewFormItem("Size", d.sizeLabel),
	)

	dialog.ShowCustomConfirm("Add Furniture", "Add", "Cancel", form, func(add bool) {
		if !add {
			return
		}
		kind, err := scene.ParseKind(d.kindSelect.Selected)
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if d.onAdd != nil {
			d.onAdd(scene.NewFurniture(kind, d.subtypeSelect.Selected))
		}
	}, d.window)
}

func (d *AddFurnitureDialog) updateSize() {
	kind, err := scene.ParseKind(d.kindSelect.Selected)
	if err != nil {
		return
	}
	size := scene.DefaultSize(kind, d.subtypeSelect.Selected)
	d.sizeLabel.SetText(fmt.Sprintf("%.2f × %.2f × %.2f m", size.Width, size.Depth, size.Height))
}

// ApplyPartColors validates every hex value in colors and then sets the
// part colors of f. On error f is left untouched.
func ApplyPartColors(f *scene.Furniture, colors map[string]string) error {
	parts := make([]string, 0, len(colors))
	for part := range colors {
		parts = append(parts, part)
	}
	sort.Strings(parts)

	parsed := make(map[string]color.RGBA, len(colors))
	for _, part := range parts {
		c, err := colorutil.ParseHex(colors[part])
		if err != nil {
			return fmt.Errorf("%s color: %w", part, err)
		}
		parsed[part] = c
	}
	for _, part := range parts {
		f.SetPartColor(part, parsed[part])
	}
	return nil
}

// FurnitureEditDialog edits the per-part colors of one item and offers
// deletion.
type FurnitureEditDialog struct {
	item   *scene.Furniture
	window fyne.Window

	partEntries map[string]*widget.Entry

	// Callbacks
	onSave   func(*scene.Furniture)
	onDelete func(*scene.Furniture)
}

// NewFurnitureEditDialog creates an edit dialog for item.
func NewFurnitureEditDialog(item *scene.Furniture, window fyne.Window,
	onSave func(*scene.Furniture), onDelete func(*scene.Furniture)) *FurnitureEditDialog {
	return &FurnitureEditDialog{
		item:     item,
		window:   window,
		onSave:   onSave,
		onDelete: onDelete,
	}
}

// Show displays the dialog.
func (d *FurnitureEditDialog) Show() {
	title := fmt.Sprintf("Edit %s: %s", d.item.Kind(), d.item.Subtype())
	content := d.createContent()

	var dlg dialog.Dialog

	saveBtn := widget.NewButton("Save", func() {
		if err := ApplyPartColors(d.item, d.collect()); err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if d.onSave != nil {
			d.onSave(d.item)
		}
		dlg.Hide()
	})
	saveBtn.Importance = widget.HighImportance

	cancelBtn := widget.NewButton("Cancel", func() {
		dlg.Hide()
	})

	deleteBtn := widget.NewButton("Delete", func() {
		dialog.ShowConfirm("Delete Furniture",
			fmt.Sprintf("Delete this %s?", d.item.Kind()),
			func(confirmed bool) {
				if confirmed {
					if d.onDelete != nil {
						d.onDelete(d.item)
					}
					dlg.Hide()
				}
			}, d.window)
	})
	deleteBtn.Importance = widget.DangerImportance

	buttons := container.NewHBox(
		deleteBtn,
		container.NewHBox(), // spacer
		cancelBtn,
		saveBtn,
	)

	dlg = dialog.NewCustomWithoutButtons(title, container.NewBorder(nil, buttons, nil, nil, content), d.window)
	dlg.Resize(fyne.NewSize(400, 360))
	dlg.Show()
}

func (d *FurnitureEditDialog) createContent() fyne.CanvasObject {
	d.partEntries = make(map[string]*widget.Entry)
	form := widget.NewForm()
	for _, part := range d.item.Parts() {
		c, ok := d.item.RawPartColor(part)
		if !ok {
			c = d.item.Color()
		}
		entry := widget.NewEntry()
		entry.SetText(colorutil.Hex(c))
		swatch := newSwatch()
		updateSwatch(swatch, entry.Text)
		entry.OnChanged = func(s string) { updateSwatch(swatch, s) }
		d.partEntries[part] = entry
		form.Append(part, container.NewBorder(nil, nil, nil, swatch, entry))
	}
	if len(d.partEntries) == 0 {
		return widget.NewLabel("This item has no separately colored parts.")
	}
	return widget.NewCard("Part Colors", "", form)
}

func (d *FurnitureEditDialog) collect() map[string]string {
	out := make(map[string]string, len(d.partEntries))
	for part, e := range d.partEntries {
		out[part] = e.Text
	}
	return out
}
