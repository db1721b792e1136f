package routes

import (
	"github.com/Sheras-art/fashionArt/controllers"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/gin-gonic/gin"
)

// initProductRoutes registers catalog routes. Search is open to any
// authenticated user; everything else requires admin or owner.
func initProductRoutes(router *gin.Engine) {
	products := router.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("/search-products", controllers.SearchProducts)

		staff := products.Group("")
		staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleOwner))
		{
			staff.GET("/get-products-by-pagination", controllers.GetProductsByPagination)
			staff.GET("/get-single-product/:productId", controllers.GetProductByID)
			staff.GET("/get-products-by-category", controllers.GetProductsByCategory)
			staff.GET("/get-new-arrivals", controllers.GetNewArrivals)
			staff.GET("/get-best-sellers", controllers.GetBestSellers)
			staff.GET("/get-products-by-price-range", controllers.GetProductsByPriceRange)
			staff.GET("/get-lower-stock-products", controllers.GetLowStockProducts)
			staff.GET("/get-product-stats/:id", controllers.GetProductStats)

			staff.POST("/add-product", controllers.AddProduct)
			staff.POST("/update-product/:id", controllers.UpdateProduct)
			staff.DELETE("/delete-product/:productId", controllers.DeleteProduct)
			staff.POST("/toggle-product-visibility/:id", controllers.ToggleProductVisibility)
			staff.GET("/export-catalog", controllers.ExportCatalog)
		}
	}
}
