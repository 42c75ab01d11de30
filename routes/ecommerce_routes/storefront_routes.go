package ecommerce_routes

import (
	store_category "github.com/Didieffe-Ecommerce/didieffe-storefront-backend/controllers/ecommerce/category_controller"
	store_filter "github.com/Didieffe-Ecommerce/didieffe-storefront-backend/controllers/ecommerce/filter_controller"
	store_product "github.com/Didieffe-Ecommerce/didieffe-storefront-backend/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)            // Search with filters + facets
		products.GET("/suggest", store_product.GetSearchSuggestions)     // Autocomplete
		products.GET("/:code", store_product.GetStorefrontProductByCode) // Single product
	}

	// Category routes
	store.GET("/categories", store_category.GetCategories)

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
