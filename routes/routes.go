package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/12432383-sudo/housecraft-shop/controllers"
)

// Register wires the public catalog and the protected admin surface.
func Register(r *gin.Engine, catalog *controllers.CatalogController, admin *controllers.AdminController, requireAdmin gin.HandlerFunc) {
	public := r.Group("/")
	{
		public.GET("/products", catalog.GetProducts)
		public.GET("/products/featured", catalog.GetFeaturedProducts)
		public.GET("/products/:id", catalog.GetProduct)
		public.GET("/categories", catalog.GetCategories)
		public.GET("/settings", catalog.GetSettings)
	}

	adminGroup := r.Group("/admin", requireAdmin)
	{
		adminGroup.GET("/products", admin.ListProducts)
		adminGroup.POST("/products", admin.CreateProduct)
		adminGroup.PATCH("/products/:id", admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", admin.DeleteProduct)
		adminGroup.PUT("/settings", admin.UpdateSettings)
		adminGroup.POST("/uploads", admin.UploadImages)
		adminGroup.DELETE("/uploads", admin.DeleteImage)
	}
}
