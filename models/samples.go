package models

import "time"

func price(v float64) *float64 { return &v }

// SampleProducts is the bundled catalog used when the remote table is empty
// or unreachable, so the shop never renders blank. All samples are visible.
func SampleProducts() []Product {
	seeded := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return []Product{
		{
			ID:          "sample-1",
			Name:        "Scented Candle",
			NameAr:      "شمعة معطرة",
			Description: "Hand-poured soy candle with a warm vanilla scent.",
			Price:       price(12),
			ShowPrice:   true,
			Category:    CategoryCandle,
			Images:      []string{PlaceholderImage},
			SizeType:    SizeTypeOne,
			Sizes:       []ProductSize{},
			IsVisible:   true,
			Featured:    true,
			CreatedAt:   seeded,
			UpdatedAt:   seeded,
		},
		{
			ID:          "sample-2",
			Name:        "Resin Coaster Set",
			NameAr:      "طقم قواعد أكواب ريزن",
			Description: "Set of four ocean-wave resin coasters.",
			Price:       price(18),
			ShowPrice:   true,
			Category:    CategoryResin,
			Images:      []string{PlaceholderImage},
			SizeType:    SizeTypeOne,
			Sizes:       []ProductSize{},
			IsVisible:   true,
			Featured:    true,
			CreatedAt:   seeded.Add(-24 * time.Hour),
			UpdatedAt:   seeded.Add(-24 * time.Hour),
		},
		{
			ID:          "sample-3",
			Name:        "Concrete Planter",
			NameAr:      "مزهرية خرسانية",
			Description: "Minimal concrete planter for succulents.",
			ShowPrice:   false,
			Category:    CategoryConcrete,
			Images:      []string{PlaceholderImage},
			SizeType:    SizeTypeMultiple,
			Sizes: []ProductSize{
				{Name: "Small"},
				{Name: "Large", PriceAdjustment: price(4)},
			},
			IsVisible: true,
			CreatedAt: seeded.Add(-48 * time.Hour),
			UpdatedAt: seeded.Add(-48 * time.Hour),
		},
		{
			ID:          "sample-4",
			Name:        "Embroidered Hoop",
			NameAr:      "طارة تطريز",
			Description: "Floral hand embroidery on an 8-inch hoop.",
			Price:       price(25),
			ShowPrice:   true,
			Category:    CategoryEmbroidery,
			Images:      []string{PlaceholderImage},
			SizeType:    SizeTypeOne,
			Sizes:       []ProductSize{},
			IsVisible:   true,
			CreatedAt:   seeded.Add(-72 * time.Hour),
			UpdatedAt:   seeded.Add(-72 * time.Hour),
		},
	}
}
