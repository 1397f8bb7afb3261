package models

// Category is one of the storefront's fixed product categories.
type Category string

const (
	CategoryCandle     Category = "candle"
	CategoryResin      Category = "resin"
	CategoryConcrete   Category = "concrete"
	CategoryEmbroidery Category = "embroidery"
)

// CategoryLabel holds the bilingual display names for a category.
type CategoryLabel struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Categories lists the recognized categories in display order. The first
// entry is the default for a new product draft.
var Categories = []Category{
	CategoryCandle,
	CategoryResin,
	CategoryConcrete,
	CategoryEmbroidery,
}

// CategoryLabels maps each recognized category to its display labels. Rows
// whose category is not a key here are dropped during catalog load.
var CategoryLabels = map[Category]CategoryLabel{
	CategoryCandle:     {En: "Candle", Ar: "شموع"},
	CategoryResin:      {En: "Resin", Ar: "ريزن"},
	CategoryConcrete:   {En: "Concrete", Ar: "خرسانة"},
	CategoryEmbroidery: {En: "Embroidery", Ar: "تطريز"},
}

// ValidCategory reports whether c is in the recognized set.
func ValidCategory(c Category) bool {
	_, ok := CategoryLabels[c]
	return ok
}
