package models

import "time"

// SizeType says whether a product comes in a single size or named variants.
type SizeType string

const (
	SizeTypeOne      SizeType = "one-size"
	SizeTypeMultiple SizeType = "multiple"
)

// PlaceholderImage is substituted when a stored product has no images.
const PlaceholderImage = "/placeholder.svg"

// ProductSize is a named size variant with an optional price adjustment.
type ProductSize struct {
	Name            string   `json:"name" dynamodbav:"name"`
	PriceAdjustment *float64 `json:"priceAdjustment,omitempty" dynamodbav:"price_adjustment,omitempty"`
}

// Product is a single catalog entry. English name and description are
// required; the Arabic fields and price are optional. Images are ordered,
// index 0 is the cover image.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameAr        string        `json:"nameAr,omitempty"`
	Description   string        `json:"description"`
	DescriptionAr string        `json:"descriptionAr,omitempty"`
	Price         *float64      `json:"price,omitempty"`
	ShowPrice     bool          `json:"showPrice"`
	Category      Category      `json:"category"`
	Images        []string      `json:"images"`
	SizeImage     string        `json:"sizeImage,omitempty"`
	SizeType      SizeType      `json:"sizeType"`
	Sizes         []ProductSize `json:"sizes"`
	CustomNotes   string        `json:"customNotes,omitempty"`
	CustomNotesAr string        `json:"customNotesAr,omitempty"`
	IsVisible     bool          `json:"isVisible"`
	Featured      bool          `json:"featured"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Clone returns a deep copy so callers can never mutate repository state
// through a returned product.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string(nil), p.Images...)
	c.Sizes = append([]ProductSize(nil), p.Sizes...)
	if p.Price != nil {
		v := *p.Price
		c.Price = &v
	}
	return c
}

// ProductPatch is a partial update. Nil fields are untouched, both locally
// and in the remote mirror.
type ProductPatch struct {
	Name          *string        `json:"name,omitempty"`
	NameAr        *string        `json:"nameAr,omitempty"`
	Description   *string        `json:"description,omitempty"`
	DescriptionAr *string        `json:"descriptionAr,omitempty"`
	Price         *float64       `json:"price,omitempty"`
	ShowPrice     *bool          `json:"showPrice,omitempty"`
	Category      *Category      `json:"category,omitempty"`
	Images        *[]string      `json:"images,omitempty"`
	SizeImage     *string        `json:"sizeImage,omitempty"`
	SizeType      *SizeType      `json:"sizeType,omitempty"`
	Sizes         *[]ProductSize `json:"sizes,omitempty"`
	CustomNotes   *string        `json:"customNotes,omitempty"`
	CustomNotesAr *string        `json:"customNotesAr,omitempty"`
	IsVisible     *bool          `json:"isVisible,omitempty"`
	Featured      *bool          `json:"featured,omitempty"`
}

// IsZero reports whether the patch names no fields at all.
func (p ProductPatch) IsZero() bool {
	return p.Name == nil && p.NameAr == nil && p.Description == nil &&
		p.DescriptionAr == nil && p.Price == nil && p.ShowPrice == nil &&
		p.Category == nil && p.Images == nil && p.SizeImage == nil &&
		p.SizeType == nil && p.Sizes == nil && p.CustomNotes == nil &&
		p.CustomNotesAr == nil && p.IsVisible == nil && p.Featured == nil
}

// Apply writes the named fields onto the product. UpdatedAt is the caller's
// responsibility.
func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.NameAr != nil {
		dst.NameAr = *p.NameAr
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.DescriptionAr != nil {
		dst.DescriptionAr = *p.DescriptionAr
	}
	if p.Price != nil {
		v := *p.Price
		dst.Price = &v
	}
	if p.ShowPrice != nil {
		dst.ShowPrice = *p.ShowPrice
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Images != nil {
		dst.Images = append([]string(nil), (*p.Images)...)
	}
	if p.SizeImage != nil {
		dst.SizeImage = *p.SizeImage
	}
	if p.SizeType != nil {
		dst.SizeType = *p.SizeType
	}
	if p.Sizes != nil {
		dst.Sizes = append([]ProductSize(nil), (*p.Sizes)...)
	}
	if p.CustomNotes != nil {
		dst.CustomNotes = *p.CustomNotes
	}
	if p.CustomNotesAr != nil {
		dst.CustomNotesAr = *p.CustomNotesAr
	}
	if p.IsVisible != nil {
		dst.IsVisible = *p.IsVisible
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}
