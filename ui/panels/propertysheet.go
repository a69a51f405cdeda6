package panels

import (
	"fmt"

	"roomplanner/internal/app"
	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"
	"roomplanner/ui/dialogs"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// PropertySheet displays and edits the selected furniture item.
type PropertySheet struct {
	state  *app.State
	window fyne.Window
	box    *fyne.Container

	item     *scene.Furniture
	updating bool // set while widgets are refreshed from the model

	header       *widget.Label
	roomLabel    *widget.Label
	lengths      map[lengthField]*widget.Entry
	colorEntry   *widget.Entry
	colorSwatch  *fynecanvas.Rectangle
	shadeSlider  *widget.Slider
	orientSelect *widget.Select
	styleSelect  *widget.Select
	partsBtn     *widget.Button
	rotateBtn    *widget.Button

	editors []fyne.Disableable
}

// NewPropertySheet creates a property sheet that follows the selection.
func NewPropertySheet(state *app.State) *PropertySheet {
	ps := &PropertySheet{
		state:   state,
		lengths: make(map[lengthField]*widget.Entry),
	}

	ps.buildUI()
	ps.refresh()

	state.On(app.EventSelectionChanged, func(_ interface{}) { ps.refresh() })
	state.On(app.EventDesignLoaded, func(_ interface{}) { ps.refresh() })
	state.On(app.EventFurnitureChanged, func(_ interface{}) { ps.refresh() })
	state.On(app.EventFurnitureMoved, func(data interface{}) {
		if f, ok := data.(*scene.Furniture); ok && f == ps.item {
			ps.refreshPosition()
		}
	})
	state.On(app.EventFurnitureEdited, func(data interface{}) {
		if f, ok := data.(*scene.Furniture); ok && f == ps.item && !ps.updating {
			ps.refresh()
		}
	})

	return ps
}

// SetWindow sets the parent window for error and edit dialogs.
func (ps *PropertySheet) SetWindow(w fyne.Window) {
	ps.window = w
}

// Container returns the panel for embedding.
func (ps *PropertySheet) Container() fyne.CanvasObject {
	return ps.box
}

func (ps *PropertySheet) buildUI() {
	ps.header = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ps.roomLabel = widget.NewLabel("")

	form := widget.NewForm()
	for _, field := range lengthFields {
		field := field
		e := widget.NewEntry()
		e.OnSubmitted = func(text string) { ps.onLengthSubmitted(field, text) }
		ps.lengths[field] = e
		ps.editors = append(ps.editors, e)
		form.Append(field.label(), e)
	}

	ps.colorEntry = widget.NewEntry()
	ps.colorEntry.SetPlaceHolder("#rrggbb")
	ps.colorEntry.OnSubmitted = ps.onColorSubmitted
	ps.colorSwatch = fynecanvas.NewRectangle(colorutil.Gray)
	ps.colorSwatch.SetMinSize(fyne.NewSize(32, 24))
	ps.editors = append(ps.editors, ps.colorEntry)

	ps.shadeSlider = widget.NewSlider(scene.MinShade, scene.MaxShade)
	ps.shadeSlider.Step = 0.05
	ps.shadeSlider.OnChanged = ps.onShadeChanged

	ps.orientSelect = widget.NewSelect(orientationNames(), ps.onOrientationChanged)
	ps.styleSelect = widget.NewSelect(nil, ps.onStyleChanged)
	ps.editors = append(ps.editors, ps.orientSelect, ps.styleSelect)

	form.Append("Color", container.NewBorder(nil, nil, nil, ps.colorSwatch, ps.colorEntry))
	form.Append("Shade", ps.shadeSlider)
	form.Append("Facing", ps.orientSelect)
	form.Append("Style", ps.styleSelect)

	ps.rotateBtn = widget.NewButton("Rotate 90°", ps.onRotate)
	ps.partsBtn = widget.NewButton("Part Colors...", ps.onEditParts)
	ps.editors = append(ps.editors, ps.rotateBtn, ps.partsBtn)

	ps.box = container.NewVBox(
		ps.header,
		widget.NewCard("Furniture", "", form),
		container.NewGridWithColumns(2, ps.rotateBtn, ps.partsBtn),
		widget.NewSeparator(),
		ps.roomLabel,
	)
}

// refresh copies the selected item's values into the widgets.
func (ps *PropertySheet) refresh() {
	ps.updating = true
	defer func() { ps.updating = false }()

	d := ps.state.Design()
	r := d.Room()
	ps.roomLabel.SetText(fmt.Sprintf("Room: %.2f × %.2f m, %.2f m high", r.Length(), r.Width(), r.Height()))

	ps.item = d.Selected()
	if ps.item == nil {
		ps.header.SetText("No furniture selected")
		for _, e := range ps.lengths {
			e.SetText("")
		}
		ps.colorEntry.SetText("")
		ps.styleSelect.Options = nil
		ps.styleSelect.ClearSelected()
		ps.orientSelect.ClearSelected()
		for _, w := range ps.editors {
			w.Disable()
		}
		return
	}

	f := ps.item
	ps.header.SetText(fmt.Sprintf("%s (%s)", f.Kind(), f.Subtype()))
	for _, field := range lengthFields {
		ps.lengths[field].SetText(formatLength(field.get(f)))
	}
	ps.colorEntry.SetText(colorutil.Hex(f.Color()))
	ps.colorSwatch.FillColor = f.DisplayColor()
	ps.colorSwatch.Refresh()
	ps.shadeSlider.SetValue(f.ShadeFactor())
	ps.orientSelect.SetSelected(f.Orientation().String())
	ps.styleSelect.Options = scene.Subtypes(f.Kind())
	ps.styleSelect.SetSelected(f.Subtype())
	for _, w := range ps.editors {
		w.Enable()
	}
	if len(f.Parts()) == 0 {
		ps.partsBtn.Disable()
	}
}

func (ps *PropertySheet) refreshPosition() {
	ps.updating = true
	defer func() { ps.updating = false }()
	ps.lengths[fieldX].SetText(formatLength(ps.item.X()))
	ps.lengths[fieldZ].SetText(formatLength(ps.item.Z()))
}

// edited reports a model change made by this sheet.
func (ps *PropertySheet) edited() {
	ps.updating = true
	ps.state.FurnitureEdited(ps.item)
	ps.updating = false
}

func (ps *PropertySheet) showError(err error) {
	ps.state.Logger().Debug("property rejected", zap.Error(err))
	if ps.window != nil {
		dialog.ShowError(err, ps.window)
	}
}

func (ps *PropertySheet) onLengthSubmitted(field lengthField, text string) {
	if ps.item == nil || ps.updating {
		return
	}
	changed, err := applyLength(ps.item, field, text)
	ps.lengths[field].SetText(formatLength(field.get(ps.item)))
	if err != nil {
		ps.showError(err)
		return
	}
	if changed {
		ps.edited()
	}
}

func (ps *PropertySheet) onColorSubmitted(text string) {
	if ps.item == nil || ps.updating {
		return
	}
	c, err := colorutil.ParseHex(text)
	if err != nil {
		ps.colorEntry.SetText(colorutil.Hex(ps.item.Color()))
		ps.showError(fmt.Errorf("color: %w", err))
		return
	}
	ps.item.SetColor(c)
	ps.colorSwatch.FillColor = ps.item.DisplayColor()
	ps.colorSwatch.Refresh()
	ps.edited()
}

func (ps *PropertySheet) onShadeChanged(v float64) {
	if ps.item == nil || ps.updating {
		return
	}
	ps.item.SetShadeFactor(v)
	ps.colorSwatch.FillColor = ps.item.DisplayColor()
	ps.colorSwatch.Refresh()
	ps.edited()
}

func (ps *PropertySheet) onOrientationChanged(name string) {
	if ps.item == nil || ps.updating {
		return
	}
	o, err := scene.ParseOrientation(name)
	if err != nil || o == ps.item.Orientation() {
		return
	}
	ps.item.SetOrientation(o)
	ps.edited()
}

func (ps *PropertySheet) onStyleChanged(sub string) {
	if ps.item == nil || ps.updating || sub == "" || sub == ps.item.Subtype() {
		return
	}
	ps.item.SetSubtype(sub)
	ps.header.SetText(fmt.Sprintf("%s (%s)", ps.item.Kind(), sub))
	ps.edited()
}

func (ps *PropertySheet) onRotate() {
	if ps.item == nil {
		return
	}
	ps.item.SetOrientation(ps.item.Orientation().Clockwise())
	ps.edited()
	ps.refresh()
}

func (ps *PropertySheet) onEditParts() {
	if ps.item == nil || ps.window == nil {
		return
	}
	dialogs.NewFurnitureEditDialog(ps.item, ps.window,
		func(f *scene.Furniture) { ps.state.FurnitureEdited(f) },
		func(f *scene.Furniture) { ps.state.RemoveFurniture(f) },
	).Show()
}
