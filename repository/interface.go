package repository

import (
	"context"
	"errors"

	"github.com/12432383-sudo/housecraft-shop/models"
)

// ErrNotFound is returned when a point lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ProductStore is the remote mirror of the catalog. The in-session list in
// services.Catalog is authoritative; this store is pushed to but never
// blocks rendering.
type ProductStore interface {
	// List returns every stored product ordered by creation time descending.
	List(ctx context.Context) ([]models.Product, error)
	// Insert persists a new product, assigning its id and timestamps, and
	// returns the product as decoded back from the stored row.
	Insert(ctx context.Context, p models.Product) (models.Product, error)
	// Update writes only the provided snake_case fields to the row.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// SettingsStore holds the single settings row.
type SettingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	// Put upserts the full record. Settings writes are never partial.
	Put(ctx context.Context, s models.Settings) error
}
