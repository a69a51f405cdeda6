package dialogs

import (
	"errors"
	"testing"

	"roomplanner/internal/scene"
	"roomplanner/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomForm_Room(t *testing.T) {
	r, err := RoomForm{Length: "6", Width: "4.5 m", Height: "2.4", FloorColor: "#102030", WallColor: ""}.Room()
	require.NoError(t, err)
	assert.Equal(t, 6.0, r.Length())
	assert.Equal(t, 4.5, r.Width())
	assert.Equal(t, 2.4, r.Height())
	assert.Equal(t, colorutil.RGB(0x10, 0x20, 0x30), r.FloorColor())
	assert.Equal(t, scene.DefaultWallColor, r.WallColor())
}

func TestRoomForm_RoundTrip(t *testing.T) {
	room := scene.NewRoom(5, 4, 2.7)
	room.SetWallColor(colorutil.RGB(1, 2, 3))
	form := NewRoomForm("Den", room)
	assert.Equal(t, "5.00", form.Length)
	assert.Equal(t, "#010203", form.WallColor)

	got, err := form.Room()
	require.NoError(t, err)
	assert.Equal(t, room.Width(), got.Width())
	assert.Equal(t, room.WallColor(), got.WallColor())
}

func TestRoomForm_Errors(t *testing.T) {
	valid := RoomForm{Length: "5", Width: "4", Height: "3"}

	tests := []struct {
		name   string
		modify func(*RoomForm)
		want   error
	}{
		{"not a number", func(f *RoomForm) { f.Length = "five" }, scene.ErrInvalidNumber},
		{"zero width", func(f *RoomForm) { f.Width = "0" }, ErrRoomSize},
		{"negative height", func(f *RoomForm) { f.Height = "-2" }, ErrRoomSize},
		{"bad floor color", func(f *RoomForm) { f.FloorColor = "beige" }, colorutil.ErrInvalidHex},
		{"bad wall color", func(f *RoomForm) { f.WallColor = "#12345" }, colorutil.ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.modify(&form)
			_, err := form.Room()
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestApplyPartColors(t *testing.T) {
	f := scene.NewFurniture(scene.KindLamp, "")
	before := f.PartColors()

	err := ApplyPartColors(f, map[string]string{"base": "#ffffff", "shade": "nope"})
	assert.True(t, errors.Is(err, colorutil.ErrInvalidHex))
	assert.Equal(t, before, f.PartColors(), "nothing applied on error")

	require.NoError(t, ApplyPartColors(f, map[string]string{"base": "#ffffff", "shade": "00ff00"}))
	assert.Equal(t, colorutil.RGB(255, 255, 255), f.PartColor("base"))
	assert.Equal(t, colorutil.RGB(0, 255, 0), f.PartColor("shade"))
}
