package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/12432383-sudo/housecraft-shop/models"
)

func queryFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Lavender Candle", Description: "Hand poured soy wax", NameAr: "شمعة لافندر", Category: models.CategoryCandle, IsVisible: true, Featured: true},
		{ID: "2", Name: "Resin Tray", Description: "Ocean themed tray", DescriptionAr: "صينية ريزن", Category: models.CategoryResin, IsVisible: true},
		{ID: "3", Name: "Concrete Pot", Description: "Minimal planter", Category: models.CategoryConcrete, IsVisible: false, Featured: true},
		{ID: "4", Name: "Embroidery Hoop", Description: "Floral pattern", Category: models.CategoryEmbroidery, IsVisible: true, Featured: true},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterVisible(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "4"}, ids(FilterVisible(queryFixture())))
}

func TestFilterFeaturedRequiresVisible(t *testing.T) {
	got := ids(FilterFeatured(queryFixture()))
	assert.Equal(t, []string{"1", "4"}, got, "hidden products never surface as featured")
}

func TestFilterByCategory(t *testing.T) {
	fixture := queryFixture()
	assert.Equal(t, []string{"2"}, ids(FilterByCategory(fixture, models.CategoryResin)))
	assert.Empty(t, FilterByCategory(fixture, models.CategoryConcrete), "hidden products are excluded per category too")
}

func TestFilterSearchEnglishCaseInsensitive(t *testing.T) {
	fixture := queryFixture()
	assert.Equal(t, []string{"1"}, ids(FilterSearch(fixture, "LAVENDER")))
	assert.Equal(t, []string{"2"}, ids(FilterSearch(fixture, "ocean")))
}

func TestFilterSearchArabicLiteral(t *testing.T) {
	fixture := queryFixture()
	assert.Equal(t, []string{"1"}, ids(FilterSearch(fixture, "شمعة")))
	assert.Equal(t, []string{"2"}, ids(FilterSearch(fixture, "صينية")))
}

func TestFilterSearchBlankQueryFiltersNothing(t *testing.T) {
	fixture := queryFixture()
	require.Len(t, FilterSearch(fixture, ""), len(fixture))
	assert.Len(t, FilterSearch(fixture, "   "), len(fixture))
}

func TestFilterSearchNoMatch(t *testing.T) {
	assert.Empty(t, FilterSearch(queryFixture(), "zzz"))
}
