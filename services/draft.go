package services

import (
	"errors"
	"strings"

	"github.com/12432383-sudo/housecraft-shop/models"
)

// ProductDraft stages the admin's edits to one product, new or existing,
// without touching the committed product until save. Image order is edited
// in place; position 0 is the cover image.
type ProductDraft struct {
	// EditingID is set when the draft edits an existing product.
	EditingID string

	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	Price         *float64
	ShowPrice     bool
	Category      models.Category
	Images        []string
	SizeImage     string
	SizeType      models.SizeType
	Sizes         []models.ProductSize
	CustomNotes   string
	CustomNotesAr string
	IsVisible     bool
	Featured      bool
}

// NewDraft starts a blank draft with the fixed defaults: the first
// enumerated category, price shown, visible, not featured, one size.
func NewDraft() *ProductDraft {
	return &ProductDraft{
		ShowPrice: true,
		Category:  models.Categories[0],
		Images:    []string{},
		SizeType:  models.SizeTypeOne,
		Sizes:     []models.ProductSize{},
		IsVisible: true,
	}
}

// EditDraft starts a draft from an existing product. Images and sizes are
// deep-copied so in-progress edits never leak into the committed product.
func EditDraft(p models.Product) *ProductDraft {
	return &ProductDraft{
		EditingID:     p.ID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Price:         p.Price,
		ShowPrice:     p.ShowPrice,
		Category:      p.Category,
		Images:        append([]string{}, p.Images...),
		SizeImage:     p.SizeImage,
		SizeType:      p.SizeType,
		Sizes:         append([]models.ProductSize{}, p.Sizes...),
		CustomNotes:   p.CustomNotes,
		CustomNotesAr: p.CustomNotesAr,
		IsVisible:     p.IsVisible,
		Featured:      p.Featured,
	}
}

// AddImage appends an uploaded image URL.
func (d *ProductDraft) AddImage(url string) {
	d.Images = append(d.Images, url)
}

// RemoveImage drops the image at index i. Out-of-range is a no-op.
func (d *ProductDraft) RemoveImage(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	d.Images = append(d.Images[:i], d.Images[i+1:]...)
}

// MoveImage moves the image at from to position to, as a remove followed by
// a reinsert. Moving past either end of the list is a no-op.
func (d *ProductDraft) MoveImage(from, to int) {
	if from < 0 || from >= len(d.Images) {
		return
	}
	if to < 0 || to >= len(d.Images) {
		return
	}
	img := d.Images[from]
	rest := append(append([]string{}, d.Images[:from]...), d.Images[from+1:]...)
	d.Images = append(append(append([]string{}, rest[:to]...), img), rest[to:]...)
}

// AddSize appends a trimmed size name; blank input is a no-op.
func (d *ProductDraft) AddSize(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	d.Sizes = append(d.Sizes, models.ProductSize{Name: name})
}

// RemoveSize drops the size at index i. Out-of-range is a no-op.
func (d *ProductDraft) RemoveSize(i int) {
	if i < 0 || i >= len(d.Sizes) {
		return
	}
	d.Sizes = append(d.Sizes[:i], d.Sizes[i+1:]...)
}

// Validate gates the save: a product needs a name and at least one image.
// This is where the never-empty-images invariant is enforced.
func (d *ProductDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("product name is required")
	}
	if len(d.Images) == 0 {
		return errors.New("at least one image is required")
	}
	return nil
}

// Build returns the draft as a product ready for Catalog.Add. Identity and
// timestamps are assigned at commit.
func (d *ProductDraft) Build() models.Product {
	return models.Product{
		Name:          d.Name,
		NameAr:        d.NameAr,
		Description:   d.Description,
		DescriptionAr: d.DescriptionAr,
		Price:         d.Price,
		ShowPrice:     d.ShowPrice,
		Category:      d.Category,
		Images:        append([]string{}, d.Images...),
		SizeImage:     d.SizeImage,
		SizeType:      d.SizeType,
		Sizes:         append([]models.ProductSize{}, d.Sizes...),
		CustomNotes:   d.CustomNotes,
		CustomNotesAr: d.CustomNotesAr,
		IsVisible:     d.IsVisible,
		Featured:      d.Featured,
	}
}

// Patch returns the draft as a full-field patch for Catalog.Update when the
// draft edits an existing product.
func (d *ProductDraft) Patch() models.ProductPatch {
	images := append([]string{}, d.Images...)
	sizes := append([]models.ProductSize{}, d.Sizes...)
	return models.ProductPatch{
		Name:          &d.Name,
		NameAr:        &d.NameAr,
		Description:   &d.Description,
		DescriptionAr: &d.DescriptionAr,
		Price:         d.Price,
		ShowPrice:     &d.ShowPrice,
		Category:      &d.Category,
		Images:        &images,
		SizeImage:     &d.SizeImage,
		SizeType:      &d.SizeType,
		Sizes:         &sizes,
		CustomNotes:   &d.CustomNotes,
		CustomNotesAr: &d.CustomNotesAr,
		IsVisible:     &d.IsVisible,
		Featured:      &d.Featured,
	}
}
