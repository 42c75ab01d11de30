package filter_controller

import (
	"net/http"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/services/search_service"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get filter sidebar metadata
// @Description Returns every declared filter with live availability and counts for the current category and filter state, plus category product counts and the overall price range. Accepts the same category and f_<key> params as the product search.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	state := models.ParseSearchState(c.Request.URL.Query())
	snap := config.Catalog.Snapshot()

	expanded := search_service.ExpandedCatalog(snap)
	facets := search_service.ComputeFacets(expanded, snap.Filters, state.Category, state.Filters)

	metadata := models.FilterMetadata{
		Categories: search_service.CategoryCounts(snap, state.Lang),
		Facets:     facets,
	}

	// Price bounds of the eligible subset double as the slider limits.
	for i := range facets {
		if facets[i].Key == models.PriceFilterKey && facets[i].Min != nil && facets[i].Max != nil {
			metadata.PriceRange = &models.PriceRange{Min: *facets[i].Min, Max: *facets[i].Max}
			break
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
