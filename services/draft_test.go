package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/12432383-sudo/housecraft-shop/models"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, models.Categories[0], d.Category)
	assert.True(t, d.ShowPrice)
	assert.True(t, d.IsVisible)
	assert.False(t, d.Featured)
	assert.Equal(t, models.SizeTypeOne, d.SizeType)
	assert.Empty(t, d.Images)
	assert.Empty(t, d.Sizes)
}

func TestEditDraftIsolatedFromSource(t *testing.T) {
	p := models.Product{
		ID:       "a",
		Name:     "Candle",
		Category: models.CategoryCandle,
		Images:   []string{"/1.jpg", "/2.jpg"},
		Sizes:    []models.ProductSize{{Name: "S"}},
	}
	d := EditDraft(p)

	d.AddImage("/3.jpg")
	d.Images[0] = "/changed.jpg"
	d.AddSize("M")

	assert.Equal(t, "a", d.EditingID)
	assert.Equal(t, []string{"/1.jpg", "/2.jpg"}, p.Images)
	assert.Len(t, p.Sizes, 1)
}

func TestMoveImage(t *testing.T) {
	d := NewDraft()
	d.Images = []string{"a", "b", "c"}

	d.MoveImage(2, 0)
	assert.Equal(t, []string{"c", "a", "b"}, d.Images)

	d.MoveImage(0, 2)
	assert.Equal(t, []string{"a", "b", "c"}, d.Images)
}

func TestMoveImageSamePositionIsNoOp(t *testing.T) {
	d := NewDraft()
	d.Images = []string{"a", "b", "c"}

	d.MoveImage(1, 1)
	assert.Equal(t, []string{"a", "b", "c"}, d.Images)
}

func TestMoveImageOutOfRangeIsNoOp(t *testing.T) {
	d := NewDraft()
	d.Images = []string{"a", "b"}

	d.MoveImage(0, -1)
	d.MoveImage(0, 2)
	d.MoveImage(-1, 0)
	d.MoveImage(2, 0)
	assert.Equal(t, []string{"a", "b"}, d.Images)
}

func TestRemoveImage(t *testing.T) {
	d := NewDraft()
	d.Images = []string{"a"}

	d.RemoveImage(0)
	assert.Empty(t, d.Images)

	d.RemoveImage(0)
	d.RemoveImage(-1)
	assert.Empty(t, d.Images)
}

func TestAddSizeTrimsAndSkipsBlank(t *testing.T) {
	d := NewDraft()

	d.AddSize("  Small  ")
	d.AddSize("   ")
	d.AddSize("")

	require.Len(t, d.Sizes, 1)
	assert.Equal(t, "Small", d.Sizes[0].Name)
}

func TestRemoveSizeOutOfRangeIsNoOp(t *testing.T) {
	d := NewDraft()
	d.AddSize("Small")

	d.RemoveSize(5)
	require.Len(t, d.Sizes, 1)
	d.RemoveSize(0)
	assert.Empty(t, d.Sizes)
}

func TestValidateRequiresName(t *testing.T) {
	d := NewDraft()
	d.AddImage("/1.jpg")

	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	d.Name = "   "
	assert.Error(t, d.Validate())
}

func TestValidateRequiresImage(t *testing.T) {
	d := NewDraft()
	d.Name = "Candle"

	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")

	d.AddImage("/1.jpg")
	assert.NoError(t, d.Validate())
}

func TestBuildCopiesSlices(t *testing.T) {
	d := NewDraft()
	d.Name = "Candle"
	d.AddImage("/1.jpg")
	d.AddSize("Small")

	p := d.Build()
	d.Images[0] = "/changed.jpg"
	d.Sizes[0].Name = "changed"

	assert.Equal(t, []string{"/1.jpg"}, p.Images)
	assert.Equal(t, "Small", p.Sizes[0].Name)
	assert.Empty(t, p.ID, "identity is assigned at commit")
}

func TestPatchNamesEveryField(t *testing.T) {
	d := NewDraft()
	d.Name = "Candle"
	d.AddImage("/1.jpg")

	patch := d.Patch()
	require.NotNil(t, patch.Name)
	assert.Equal(t, "Candle", *patch.Name)
	require.NotNil(t, patch.Images)
	assert.Equal(t, []string{"/1.jpg"}, *patch.Images)
	require.NotNil(t, patch.Category)
	require.NotNil(t, patch.IsVisible)
	assert.False(t, patch.IsZero())
}
