package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/services"
)

// CatalogController serves the public storefront: visible products only,
// derived fresh from the catalog snapshot on every request, with a Redis
// response cache in front.
type CatalogController struct {
	catalog  CatalogService
	settings SettingsProvider
	cache    *CacheManager
}

func NewCatalogController(catalog CatalogService, settings SettingsProvider, cache *CacheManager) *CatalogController {
	return &CatalogController{catalog: catalog, settings: settings, cache: cache}
}

// GetProducts lists visible products, optionally narrowed by ?category=
// and a ?q= text search.
func (cc *CatalogController) GetProducts(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")

	if category != "" && !models.ValidCategory(models.Category(category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	if cached, ok := cc.cache.GetProductList(c.Request.Context(), category, query); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products := services.FilterVisible(cc.catalog.Snapshot())
	if category != "" {
		products = services.FilterByCategory(products, models.Category(category))
	}
	products = services.FilterSearch(products, query)

	response := gin.H{
		"products": products,
		"total":    len(products),
	}
	cc.cache.SetProductListAsync(category, query, response)
	c.JSON(http.StatusOK, response)
}

// GetFeaturedProducts lists products that are featured and visible.
func (cc *CatalogController) GetFeaturedProducts(c *gin.Context) {
	products := services.FilterFeatured(cc.catalog.Snapshot())
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// GetProduct returns one visible product by id.
func (cc *CatalogController) GetProduct(c *gin.Context) {
	id := c.Param("id")

	if cached, ok := cc.cache.GetProduct(c.Request.Context(), id); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, ok := cc.catalog.Get(id)
	if !ok || !product.IsVisible {
		zap.L().Info("Product not found", zap.String("id", id))
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	cc.cache.SetProductAsync(id, product)
	c.JSON(http.StatusOK, product)
}

// GetCategories returns the closed category set with bilingual labels.
func (cc *CatalogController) GetCategories(c *gin.Context) {
	type entry struct {
		Value models.Category      `json:"value"`
		Label models.CategoryLabel `json:"label"`
	}
	out := make([]entry, 0, len(models.Categories))
	for _, cat := range models.Categories {
		out = append(out, entry{Value: cat, Label: models.CategoryLabels[cat]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// GetSettings exposes the storefront contact channels.
func (cc *CatalogController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, cc.settings.Get())
}
