package category_controller

import (
	"net/http"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/services/search_service"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List storefront categories
// @Description All declared categories with their translated label and live product count. A product belongs to a category when the category's attribute resolves truthy on it.
// @Tags store
// @Produce json
// @Param lang query string false "Storefront language" default(it)
// @Success 200 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	lang := c.DefaultQuery("lang", models.SourceLanguage)
	snap := config.Catalog.Snapshot()

	categories := search_service.CategoryCounts(snap, lang)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
