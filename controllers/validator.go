package controllers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/services"
)

// ProductRequest is the admin payload for creating or replacing a product.
type ProductRequest struct {
	Name          string               `json:"name" validate:"required"`
	NameAr        string               `json:"nameAr"`
	Description   string               `json:"description" validate:"required"`
	DescriptionAr string               `json:"descriptionAr"`
	Price         *float64             `json:"price" validate:"omitempty,gt=0"`
	ShowPrice     *bool                `json:"showPrice"`
	Category      models.Category      `json:"category" validate:"required"`
	Images        []string             `json:"images" validate:"required,min=1,dive,required"`
	SizeImage     string               `json:"sizeImage"`
	SizeType      models.SizeType      `json:"sizeType" validate:"omitempty,oneof=one-size multiple"`
	Sizes         []models.ProductSize `json:"sizes"`
	CustomNotes   string               `json:"customNotes"`
	CustomNotesAr string               `json:"customNotesAr"`
	IsVisible     *bool                `json:"isVisible"`
	Featured      *bool                `json:"featured"`
}

// RequestValidator checks admin payloads before they reach the draft.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ValidateProduct runs the struct rules plus the closed-set category check.
func (rv *RequestValidator) ValidateProduct(req *ProductRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return err
	}
	if !models.ValidCategory(req.Category) {
		return fmt.Errorf("unknown category %q", req.Category)
	}
	return nil
}

// ValidatePatch checks only the fields a partial update names.
func (rv *RequestValidator) ValidatePatch(patch *models.ProductPatch) error {
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		return fmt.Errorf("unknown category %q", *patch.Category)
	}
	if patch.SizeType != nil && *patch.SizeType != models.SizeTypeOne && *patch.SizeType != models.SizeTypeMultiple {
		return fmt.Errorf("unknown size type %q", *patch.SizeType)
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}

// toDraft stages the request through the editing surface so defaults and
// the save guards live in exactly one place.
func (req *ProductRequest) toDraft() *services.ProductDraft {
	draft := services.NewDraft()
	draft.Name = req.Name
	draft.NameAr = req.NameAr
	draft.Description = req.Description
	draft.DescriptionAr = req.DescriptionAr
	draft.Price = req.Price
	if req.ShowPrice != nil {
		draft.ShowPrice = *req.ShowPrice
	}
	draft.Category = req.Category
	draft.Images = append([]string{}, req.Images...)
	draft.SizeImage = req.SizeImage
	if req.SizeType != "" {
		draft.SizeType = req.SizeType
	}
	if req.Sizes != nil {
		draft.Sizes = append([]models.ProductSize{}, req.Sizes...)
	}
	draft.CustomNotes = req.CustomNotes
	draft.CustomNotesAr = req.CustomNotesAr
	if req.IsVisible != nil {
		draft.IsVisible = *req.IsVisible
	}
	if req.Featured != nil {
		draft.Featured = *req.Featured
	}
	return draft
}
