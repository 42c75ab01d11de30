package product_controller

import (
	"net/http"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/services/search_service"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByCode godoc
// @Summary Get single product details for storefront
// @Description Get one expanded catalog entry by its article code. Variant codes resolve to the variant entry, with the sibling variants of the same master attached for the variant picker.
// @Tags store
// @Produce json
// @Param code path string true "Article code"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{code} [get]
func GetStorefrontProductByCode(c *gin.Context) {
	code := c.Param("code")
	snap := config.Catalog.Snapshot()

	expanded := search_service.ExpandedCatalog(snap)
	var found *models.ExpandedProduct
	for i := range expanded {
		if expanded[i].Code == code {
			found = &expanded[i]
			break
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// Sibling variants of the same master drive the variant-picker matrix.
	var siblings []models.ExpandedProduct
	if found.MasterCode != "" {
		for i := range expanded {
			if expanded[i].MasterCode == found.MasterCode && expanded[i].Code != found.Code {
				siblings = append(siblings, expanded[i])
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", gin.H{
		"product":  found,
		"siblings": siblings,
	}))
}
