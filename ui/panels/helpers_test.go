package panels

import (
	"errors"
	"testing"

	"roomplanner/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLength(t *testing.T) {
	f := scene.NewFurniture(scene.KindTable, "")
	f.SetPosition(1, 2)

	changed, err := applyLength(f, fieldX, "2.5 m")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2.5, f.X())

	changed, err = applyLength(f, fieldX, "2.5")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = applyLength(f, fieldHeight, "tall")
	assert.True(t, errors.Is(err, scene.ErrInvalidNumber))
	assert.False(t, changed)
	assert.Equal(t, scene.DefaultSize(scene.KindTable, f.Subtype()).Height, f.Height(), "model untouched")
}

func TestLengthFields_GetSet(t *testing.T) {
	f := scene.NewFurniture(scene.KindBed, "")
	for i, field := range lengthFields {
		v := float64(i) + 0.5
		field.set(f, v)
		assert.Equal(t, v, field.get(f), field.label())
	}
	assert.Equal(t, 0.5, f.X())
	assert.Equal(t, 4.5, f.Height())
}

func TestFurnitureLabel(t *testing.T) {
	f := scene.NewFurniture(scene.KindChair, "Office")
	assert.Equal(t, "3. Chair (Office)", furnitureLabel(2, f))
	assert.Equal(t, "1.50", formatLength(1.5))
	assert.Equal(t, []string{"North", "East", "South", "West"}, orientationNames())
}
