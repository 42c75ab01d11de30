package product_controller

import (
	"net/http"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/services/search_service"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Search storefront products
// @Description Run the catalog search pipeline: free-text query, category, attribute filters, faceting, sorting and pagination. Filter params use the f_<key> form with comma-separated values (e.g. f_colore=Oro,Argento); the price range uses f_prezzo=min-max.
// @Tags store
// @Produce json
// @Param q query string false "Free-text search query"
// @Param category query string false "Category key (boolean attribute)"
// @Param sort query string false "Sort key" Enums(price-asc, price-desc, name-asc, name-desc, code-asc, code-desc)
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page" default(12)
// @Param lang query string false "Storefront language" default(it)
// @Param view query string false "UI view mode, echoed back unchanged"
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	state := models.ParseSearchState(c.Request.URL.Query())
	snap := config.Catalog.Snapshot()

	result := search_service.RunSearchCached(snap, state)
	exact, suggested := result.Page(state.Page, state.PerPage)

	totalPages := (result.Total + state.PerPage - 1) / state.PerPage

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		gin.H{
			"exactResults":     exact,
			"suggestedResults": suggested,
			"facets":           result.Facets,
			"state":            state.QueryValues().Encode(),
		},
		&models.Pagination{
			Page:       state.Page,
			Limit:      state.PerPage,
			Total:      result.Total,
			TotalPages: totalPages,
		},
	))
}
