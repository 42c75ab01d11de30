package search_service

import (
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// Expand flattens grouped products into one ExpandedProduct per variant.
// Simple products pass through unchanged. The input order is preserved, so
// the expansion is deterministic for a given catalog.
func Expand(products []models.Product) []models.ExpandedProduct {
	out := make([]models.ExpandedProduct, 0, len(products))
	for i := range products {
		p := &products[i]
		switch p.Kind {
		case models.ProductGrouped:
			total := len(p.Variants)
			for vi := range p.Variants {
				out = append(out, expandVariant(p, &p.Variants[vi], vi+1, total))
			}
		default:
			out = append(out, expandSimple(p))
		}
	}
	return out
}

func expandSimple(p *models.Product) models.ExpandedProduct {
	return models.ExpandedProduct{
		Code:           p.Code,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Image:          p.Image,
		Images:         p.Images,
		Attributes:     p.Attributes,
		VariantGroupID: p.VariantGroupID,
	}
}

// expandVariant copies the master record, then overrides the per-variant
// fields. A variant without attributes silently inherits the master's.
func expandVariant(p *models.Product, v *models.Variant, order, total int) models.ExpandedProduct {
	e := models.ExpandedProduct{
		Code:              v.Code,
		Name:              p.Name,
		Description:       p.Description,
		Price:             v.Price,
		Image:             p.Image,
		Images:            p.Images,
		Attributes:        p.Attributes,
		VariantGroupID:    p.VariantGroupID,
		MasterCode:        p.Code,
		Qualifiers:        v.Qualifiers,
		VariantOrder:      order,
		VariantGroupTotal: total,
	}
	if v.Image != "" {
		e.Image = v.Image
	}
	if len(v.Images) > 0 {
		e.Images = v.Images
	}
	if len(v.Attributes) > 0 {
		e.Attributes = v.Attributes
	}
	return e
}
