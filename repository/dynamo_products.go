package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/12432383-sudo/housecraft-shop/models"
)

// DynamoProductStore stores products in a table with primary key
// `product_id` (string).
type DynamoProductStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoProductStore(client *dynamodb.Client, table string) *DynamoProductStore {
	return &DynamoProductStore{client: client, table: table}
}

// productRow is the stored shape. Optional columns are pointers so that
// null/absent survives the round trip instead of collapsing to zero values.
type productRow struct {
	ProductID     string               `dynamodbav:"product_id"`
	Name          string               `dynamodbav:"name"`
	NameAr        *string              `dynamodbav:"name_ar,omitempty"`
	Description   string               `dynamodbav:"description"`
	DescriptionAr *string              `dynamodbav:"description_ar,omitempty"`
	Price         *float64             `dynamodbav:"price,omitempty"`
	ShowPrice     bool                 `dynamodbav:"show_price"`
	Category      string               `dynamodbav:"category"`
	Images        []string             `dynamodbav:"images,omitempty"`
	SizeImage     *string              `dynamodbav:"size_image,omitempty"`
	SizeType      *string  `dynamodbav:"size_type,omitempty"`
	Sizes         sizeList `dynamodbav:"sizes,omitempty"`
	CustomNotes   *string              `dynamodbav:"custom_notes,omitempty"`
	CustomNotesAr *string              `dynamodbav:"custom_notes_ar,omitempty"`
	IsVisible     bool                 `dynamodbav:"is_visible"`
	Featured      bool                 `dynamodbav:"featured"`
	CreatedAt     string               `dynamodbav:"created_at"`
	UpdatedAt     string               `dynamodbav:"updated_at"`
}

// sizeList decodes the sizes attribute leniently: a row whose sizes is not
// list-shaped reads as no sizes rather than failing the row, so one
// malformed attribute cannot take down a whole catalog load.
type sizeList []models.ProductSize

func (s *sizeList) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	list, ok := av.(*types.AttributeValueMemberL)
	if !ok {
		*s = nil
		return nil
	}
	out := make([]models.ProductSize, 0, len(list.Value))
	for _, item := range list.Value {
		var size models.ProductSize
		if err := attributevalue.Unmarshal(item, &size); err != nil {
			return err
		}
		out = append(out, size)
	}
	*s = out
	return nil
}

// decodeRow turns a stored row into a Product, substituting the documented
// defaults: a placeholder image list when images is absent or empty,
// one-size when size_type is absent, an empty size list when sizes is
// absent. A row without an id is a decode error, never a partial product.
func decodeRow(r productRow) (models.Product, error) {
	if r.ProductID == "" {
		return models.Product{}, fmt.Errorf("product row missing product_id")
	}
	p := models.Product{
		ID:          r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		ShowPrice:   r.ShowPrice,
		Category:    models.Category(r.Category),
		Images:      r.Images,
		SizeType:    models.SizeTypeOne,
		Sizes:       []models.ProductSize(r.Sizes),
		IsVisible:   r.IsVisible,
		Featured:    r.Featured,
	}
	if r.NameAr != nil {
		p.NameAr = *r.NameAr
	}
	if r.DescriptionAr != nil {
		p.DescriptionAr = *r.DescriptionAr
	}
	if r.Price != nil {
		v := *r.Price
		p.Price = &v
	}
	if r.SizeImage != nil {
		p.SizeImage = *r.SizeImage
	}
	if r.SizeType != nil && *r.SizeType != "" {
		p.SizeType = models.SizeType(*r.SizeType)
	}
	if r.CustomNotes != nil {
		p.CustomNotes = *r.CustomNotes
	}
	if r.CustomNotesAr != nil {
		p.CustomNotesAr = *r.CustomNotesAr
	}
	if len(p.Images) == 0 {
		p.Images = []string{models.PlaceholderImage}
	}
	if p.Sizes == nil {
		p.Sizes = []models.ProductSize{}
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}
	return p, nil
}

func encodeRow(p models.Product) productRow {
	r := productRow{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		ShowPrice:   p.ShowPrice,
		Category:    string(p.Category),
		Images:      p.Images,
		Sizes:       sizeList(p.Sizes),
		IsVisible:   p.IsVisible,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.NameAr != "" {
		r.NameAr = &p.NameAr
	}
	if p.DescriptionAr != "" {
		r.DescriptionAr = &p.DescriptionAr
	}
	if p.Price != nil {
		v := *p.Price
		r.Price = &v
	}
	if p.SizeImage != "" {
		r.SizeImage = &p.SizeImage
	}
	if p.SizeType != "" {
		st := string(p.SizeType)
		r.SizeType = &st
	}
	if p.CustomNotes != "" {
		r.CustomNotes = &p.CustomNotes
	}
	if p.CustomNotesAr != "" {
		r.CustomNotesAr = &p.CustomNotesAr
	}
	return r
}

// List scans the whole table and sorts newest-first. A full scan is fine at
// this catalog's scale.
func (s *DynamoProductStore) List(ctx context.Context) ([]models.Product, error) {
	input := &dynamodb.ScanInput{TableName: &s.table}
	paginator := dynamodb.NewScanPaginator(s.client, input)

	var products []models.Product
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		for _, item := range page.Items {
			var row productRow
			if err := attributevalue.UnmarshalMap(item, &row); err != nil {
				return nil, fmt.Errorf("unmarshal product row: %w", err)
			}
			p, err := decodeRow(row)
			if err != nil {
				return nil, fmt.Errorf("decode product row: %w", err)
			}
			products = append(products, p)
		}
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *DynamoProductStore) Insert(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	row := encodeRow(p)
	item, err := attributevalue.MarshalMap(row)
	if err != nil {
		return models.Product{}, fmt.Errorf("marshal product: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &s.table, Item: item}); err != nil {
		return models.Product{}, fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	// Decode the stored shape so the caller holds exactly what a later load
	// would see, defaults included.
	return decodeRow(row)
}

// Update writes only the provided snake_case columns. Attribute names go
// through placeholders because several column names (name, images) collide
// with DynamoDB reserved words.
func (s *DynamoProductStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	expr := "SET "
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	i := 0
	for col, v := range fields {
		if i > 0 {
			expr += ", "
		}
		nameph := fmt.Sprintf("#f%d", i)
		valph := fmt.Sprintf(":v%d", i)
		expr += nameph + " = " + valph
		names[nameph] = col
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal update value %q: %w", col, err)
		}
		values[valph] = av
		i++
	}

	key, err := attributevalue.MarshalMap(map[string]string{"product_id": id})
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}
	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &s.table,
		Key:                       key,
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("dynamodb UpdateItem failed: %w", err)
	}
	return nil
}

func (s *DynamoProductStore) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"product_id": id})
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &s.table, Key: key}); err != nil {
		return fmt.Errorf("dynamodb DeleteItem failed: %w", err)
	}
	return nil
}
