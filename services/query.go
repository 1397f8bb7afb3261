package services

import (
	"strings"

	"github.com/12432383-sudo/housecraft-shop/models"
)

// Pure derivations over a catalog snapshot. Nothing here holds state; every
// call recomputes from the slice it is given.

// FilterVisible keeps shopper-facing products.
func FilterVisible(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.IsVisible {
			out = append(out, p)
		}
	}
	return out
}

// FilterFeatured keeps products that are both featured and visible.
func FilterFeatured(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Featured && p.IsVisible {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory keeps visible products in the given category.
func FilterByCategory(products []models.Product, cat models.Category) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == cat && p.IsVisible {
			out = append(out, p)
		}
	}
	return out
}

// FilterSearch keeps products matching the query: case-insensitive substring
// over the English name and description, literal substring over the Arabic
// fields (Arabic script has no case folding, so matching is byte-exact).
// A blank or whitespace-only query filters nothing.
func FilterSearch(products []models.Product, query string) []models.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}
	lower := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Description), lower) ||
			(p.NameAr != "" && strings.Contains(p.NameAr, query)) ||
			(p.DescriptionAr != "" && strings.Contains(p.DescriptionAr, query)) {
			out = append(out, p)
		}
	}
	return out
}
