package repository

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/12432383-sudo/housecraft-shop/models"
)

func strptr(s string) *string { return &s }

func TestDecodeRowSubstitutesDefaults(t *testing.T) {
	p, err := decodeRow(productRow{
		ProductID:   "p1",
		Name:        "Candle",
		Description: "desc",
		Category:    "candle",
		CreatedAt:   "2024-03-01T10:00:00Z",
		UpdatedAt:   "2024-03-02T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{models.PlaceholderImage}, p.Images, "absent images become the placeholder list")
	assert.Equal(t, models.SizeTypeOne, p.SizeType, "absent size type defaults to one size")
	assert.NotNil(t, p.Sizes)
	assert.Empty(t, p.Sizes)
	assert.Nil(t, p.Price)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), p.CreatedAt)
}

func TestDecodeRowEmptyImageListBecomesPlaceholder(t *testing.T) {
	p, err := decodeRow(productRow{
		ProductID: "p1",
		Name:      "Candle",
		Category:  "candle",
		Images:    []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{models.PlaceholderImage}, p.Images)
}

func TestDecodeRowMissingIDIsError(t *testing.T) {
	_, err := decodeRow(productRow{Name: "orphan"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_id")
}

func TestDecodeRowKeepsStoredValues(t *testing.T) {
	price := 24.5
	p, err := decodeRow(productRow{
		ProductID:     "p2",
		Name:          "Resin Tray",
		NameAr:        strptr("صينية"),
		Description:   "desc",
		DescriptionAr: strptr("وصف"),
		Price:         &price,
		ShowPrice:     true,
		Category:      "resin",
		Images:        []string{"/a.jpg", "/b.jpg"},
		SizeType:      strptr("multiple"),
		Sizes:         sizeList{{Name: "Small"}},
		IsVisible:     true,
		Featured:      true,
		CreatedAt:     "2024-03-01T10:00:00Z",
		UpdatedAt:     "2024-03-01T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "صينية", p.NameAr)
	require.NotNil(t, p.Price)
	assert.Equal(t, 24.5, *p.Price)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, p.Images)
	assert.Equal(t, models.SizeTypeMultiple, p.SizeType)
	require.Len(t, p.Sizes, 1)
	assert.Equal(t, "Small", p.Sizes[0].Name)
}

func TestUnmarshalRowToleratesNonListSizes(t *testing.T) {
	item := map[string]types.AttributeValue{
		"product_id": &types.AttributeValueMemberS{Value: "p1"},
		"name":       &types.AttributeValueMemberS{Value: "Candle"},
		"category":   &types.AttributeValueMemberS{Value: "candle"},
		"sizes":      &types.AttributeValueMemberS{Value: "not a list"},
		"is_visible": &types.AttributeValueMemberBOOL{Value: true},
	}

	var row productRow
	require.NoError(t, attributevalue.UnmarshalMap(item, &row), "a malformed sizes attribute must not fail the row")

	p, err := decodeRow(row)
	require.NoError(t, err)
	assert.NotNil(t, p.Sizes)
	assert.Empty(t, p.Sizes)
	assert.Equal(t, "Candle", p.Name)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	price := 12.0
	in := models.Product{
		ID:          "p3",
		Name:        "Concrete Pot",
		NameAr:      "أصيص",
		Description: "planter",
		Price:       &price,
		ShowPrice:   true,
		Category:    models.CategoryConcrete,
		Images:      []string{"/pot.jpg"},
		SizeType:    models.SizeTypeMultiple,
		Sizes:       []models.ProductSize{{Name: "Large"}},
		IsVisible:   true,
		CreatedAt:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
	}

	out, err := decodeRow(encodeRow(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
