package controllers

import (
	"context"

	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/services"
)

// CatalogService is the slice of services.Catalog the controllers need;
// tests substitute fakes.
type CatalogService interface {
	Snapshot() []models.Product
	Get(id string) (models.Product, bool)
	Add(ctx context.Context, draft models.Product) models.Product
	Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, bool)
	Delete(ctx context.Context, id string) bool
}

// SettingsProvider is the settings surface exposed over HTTP.
type SettingsProvider interface {
	Get() models.Settings
	Update(ctx context.Context, patch models.SettingsPatch) models.Settings
}

// ImageService uploads and deletes product imagery.
type ImageService interface {
	UploadMany(ctx context.Context, files []services.UploadFile, folder string, progress services.ProgressFunc) []string
	Delete(ctx context.Context, url string) error
}
