package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/services"
)

// uploadFolder scopes product photo object names in the blob store.
const uploadFolder = "products"

// AdminController handles the authenticated mutations: product CRUD,
// settings, and image uploads. Every mutation invalidates the public
// response cache.
type AdminController struct {
	catalog   CatalogService
	settings  SettingsProvider
	uploader  ImageService
	cache     *CacheManager
	validator *RequestValidator
}

func NewAdminController(catalog CatalogService, settings SettingsProvider, uploader ImageService, cache *CacheManager) *AdminController {
	return &AdminController{
		catalog:   catalog,
		settings:  settings,
		uploader:  uploader,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

// ListProducts returns every product, hidden ones included, for the admin
// table.
func (ac *AdminController) ListProducts(c *gin.Context) {
	products := ac.catalog.Snapshot()
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// CreateProduct stages the payload through a draft and commits it. The
// catalog absorbs remote failures, so a valid payload always succeeds.
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := ac.validator.ValidateProduct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := req.toDraft()
	if err := draft.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := ac.catalog.Add(c.Request.Context(), draft.Build())
	ac.cache.Invalidate(c.Request.Context(), product.ID)
	zap.L().Info("Product created", zap.String("id", product.ID), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial update. Only fields present in the body
// change; the local state moves even when the remote mirror later fails.
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := ac.validator.ValidatePatch(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Images != nil && len(*patch.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one image is required"})
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name is required"})
		return
	}

	product, ok := ac.catalog.Update(c.Request.Context(), id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	ac.cache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes the product locally and mirrors the delete.
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if !ac.catalog.Delete(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	ac.cache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// UpdateSettings merges the patch and returns the full record; the remote
// upsert runs detached.
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	merged := ac.settings.Update(c.Request.Context(), patch)
	c.JSON(http.StatusOK, merged)
}

// UploadImages accepts multipart files under "images" and uploads them
// sequentially; files that fail validation or transport are skipped and the
// successful URLs returned.
func (ac *AdminController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			zap.L().Warn("Failed to open uploaded file", zap.String("name", h.Filename), zap.Error(err))
			continue
		}
		defer f.Close()
		files = append(files, services.UploadFile{
			Name:        h.Filename,
			Size:        h.Size,
			ContentType: h.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	urls := ac.uploader.UploadMany(c.Request.Context(), files, uploadFolder, nil)
	c.JSON(http.StatusOK, gin.H{"urls": urls, "uploaded": len(urls), "requested": len(headers)})
}

// DeleteImage removes the object behind a public image URL.
func (ac *AdminController) DeleteImage(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	if err := ac.uploader.Delete(c.Request.Context(), url); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": url})
}
