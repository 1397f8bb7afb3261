package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/12432383-sudo/housecraft-shop/models"
)

// settingsRowID is the fixed key of the one and only settings row.
const settingsRowID = "1"

// DynamoSettingsStore keeps the storefront settings in a single-row table
// keyed by a fixed id.
type DynamoSettingsStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoSettingsStore(client *dynamodb.Client, table string) *DynamoSettingsStore {
	return &DynamoSettingsStore{client: client, table: table}
}

type settingsRow struct {
	ID               string `dynamodbav:"id"`
	WhatsappNumber   string `dynamodbav:"whatsapp_number"`
	InstagramAccount string `dynamodbav:"instagram_account"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

func (s *DynamoSettingsStore) Get(ctx context.Context) (models.Settings, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": settingsRowID})
	if err != nil {
		return models.Settings{}, fmt.Errorf("marshal key: %w", err)
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{TableName: &s.table, Key: key})
	if err != nil {
		return models.Settings{}, fmt.Errorf("dynamodb GetItem failed: %w", err)
	}
	if len(out.Item) == 0 {
		return models.Settings{}, ErrNotFound
	}
	var row settingsRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return models.Settings{}, fmt.Errorf("unmarshal settings row: %w", err)
	}
	return models.Settings{
		WhatsappNumber:   row.WhatsappNumber,
		InstagramAccount: row.InstagramAccount,
	}, nil
}

// Put upserts the whole record under the fixed id.
func (s *DynamoSettingsStore) Put(ctx context.Context, settings models.Settings) error {
	row := settingsRow{
		ID:               settingsRowID,
		WhatsappNumber:   settings.WhatsappNumber,
		InstagramAccount: settings.InstagramAccount,
		UpdatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	item, err := attributevalue.MarshalMap(row)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &s.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}
