package product_controller

import (
	"net/http"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/services/search_service"
	"github.com/gin-gonic/gin"
)

// GetSearchSuggestions godoc
// @Summary Autocomplete product search
// @Description Top matches for a partial query, for the search box dropdown. Only products matching every query token are suggested.
// @Tags store
// @Produce json
// @Param q query string true "Partial search query"
// @Param lang query string false "Storefront language" default(it)
// @Param limit query int false "Maximum suggestions" default(8)
// @Success 200 {object} models.ApiResponse
// @Router /store/products/suggest [get]
func GetSearchSuggestions(c *gin.Context) {
	query := c.Query("q")
	lang := c.DefaultQuery("lang", models.SourceLanguage)
	limit := parseLimit(c, search_service.DefaultSuggestionLimit)

	snap := config.Catalog.Snapshot()
	suggestions := search_service.Suggest(snap, query, lang, limit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", suggestions))
}
