// Package dialogs provides application dialogs.
package dialogs

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ErrRoomSize is returned for a room dimension that is not positive.
var ErrRoomSize = errors.New("room dimensions must be positive")

// RoomForm holds the text of the room dialog's fields.
type RoomForm struct {
	Name       string
	Length     string
	Width      string
	Height     string
	FloorColor string
	WallColor  string
}

// NewRoomForm fills a form from an existing room.
func NewRoomForm(name string, r *scene.Room) RoomForm {
	return RoomForm{
		Name:       name,
		Length:     fmt.Sprintf("%.2f", r.Length()),
		Width:      fmt.Sprintf("%.2f", r.Width()),
		Height:     fmt.Sprintf("%.2f", r.Height()),
		FloorColor: colorutil.Hex(r.FloorColor()),
		WallColor:  colorutil.Hex(r.WallColor()),
	}
}

// Room validates the form and builds the room it describes.
func (f RoomForm) Room() (*scene.Room, error) {
	var dims [3]float64
	for i, field := range []struct{ label, text string }{
		{"length", f.Length},
		{"width", f.Width},
		{"height", f.Height},
	} {
		v, err := scene.ParseLength(field.text)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", field.label, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("room %s %g: %w", field.label, v, ErrRoomSize)
		}
		dims[i] = v
	}

	r := scene.NewRoom(dims[0], dims[1], dims[2])
	if strings.TrimSpace(f.FloorColor) != "" {
		c, err := colorutil.ParseHex(f.FloorColor)
		if err != nil {
			return nil, fmt.Errorf("floor color: %w", err)
		}
		r.SetFloorColor(c)
	}
	if strings.TrimSpace(f.WallColor) != "" {
		c, err := colorutil.ParseHex(f.WallColor)
		if err != nil {
			return nil, fmt.Errorf("wall color: %w", err)
		}
		r.SetWallColor(c)
	}
	return r, nil
}

// RoomDialog asks for the name, size and colors of a new room.
type RoomDialog struct {
	form   RoomForm
	window fyne.Window

	nameEntry   *widget.Entry
	lengthEntry *widget.Entry
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	floorEntry  *widget.Entry
	wallEntry   *widget.Entry

	// Color swatches
	floorSwatch *fynecanvas.Rectangle
	wallSwatch  *fynecanvas.Rectangle

	// Callback
	onCreate func(name string, room *scene.Room)
}

// NewRoomDialog creates a room dialog prefilled from form.
func NewRoomDialog(form RoomForm, window fyne.Window, onCreate func(string, *scene.Room)) *RoomDialog {
	return &RoomDialog{
		form:     form,
		window:   window,
		onCreate: onCreate,
	}
}

// Show displays the dialog. Invalid input is reported and the dialog is
// shown again with the text the user typed.
func (d *RoomDialog) Show() {
	content := d.createContent()

	dlg := dialog.NewCustomConfirm(
		"New Room",
		"Create",
		"Cancel",
		content,
		func(create bool) {
			if !create {
				return
			}
			d.form = d.collect()
			room, err := d.form.Room()
			if err != nil {
				dialog.ShowError(err, d.window)
				return
			}
			if d.onCreate != nil {
				d.onCreate(d.form.Name, room)
			}
		},
		d.window,
	)
	dlg.Resize(fyne.NewSize(420, 420))
	dlg.Show()
}

func (d *RoomDialog) createContent() fyne.CanvasObject {
	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetText(d.form.Name)
	d.nameEntry.SetPlaceHolder("e.g., Living room")

	d.lengthEntry = widget.NewEntry()
	d.lengthEntry.SetText(d.form.Length)
	d.widthEntry = widget.NewEntry()
	d.widthEntry.SetText(d.form.Width)
	d.heightEntry = widget.NewEntry()
	d.heightEntry.SetText(d.form.Height)

	sizeForm := widget.NewForm(
		widget.NewFormItem("Name", d.nameEntry),
		widget.NewFormItem("Length (m)", d.lengthEntry),
		widget.NewFormItem("Width (m)", d.widthEntry),
		widget.NewFormItem("Height (m)", d.heightEntry),
	)

	d.floorEntry = widget.NewEntry()
	d.floorEntry.SetText(d.form.FloorColor)
	d.wallEntry = widget.NewEntry()
	d.wallEntry.SetText(d.form.WallColor)

	d.floorSwatch = newSwatch()
	d.wallSwatch = newSwatch()
	d.floorEntry.OnChanged = func(s string) { updateSwatch(d.floorSwatch, s) }
	d.wallEntry.OnChanged = func(s string) { updateSwatch(d.wallSwatch, s) }
	updateSwatch(d.floorSwatch, d.form.FloorColor)
	updateSwatch(d.wallSwatch, d.form.WallColor)

	colorForm := widget.NewForm(
		widget.NewFormItem("Floor", container.NewBorder(nil, nil, nil, d.floorSwatch, d.floorEntry)),
		widget.NewFormItem("Walls", container.NewBorder(nil, nil, nil, d.wallSwatch, d.wallEntry)),
	)

	return container.NewVBox(
		widget.NewCard("Dimensions", "", sizeForm),
		widget.NewCard("Colors", "", colorForm),
	)
}

func (d *RoomDialog) collect() RoomForm {
	return RoomForm{
		Name:       d.nameEntry.Text,
		Length:     d.lengthEntry.Text,
		Width:      d.widthEntry.Text,
		Height:     d.heightEntry.Text,
		FloorColor: d.floorEntry.Text,
		WallColor:  d.wallEntry.Text,
	}
}

func newSwatch() *fynecanvas.Rectangle {
	r := fynecanvas.NewRectangle(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	r.SetMinSize(fyne.NewSize(40, 24))
	return r
}

// updateSwatch shows the color typed in a hex entry; unparsable text leaves
// the swatch as it was.
func updateSwatch(r *fynecanvas.Rectangle, hex string) {
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return
	}
	r.FillColor = c
	fynecanvas.Refresh(r)
}
