package search_service

import (
	"strconv"
	"strings"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// matchesCategory reports whether a product belongs to the category. A
// category is itself an attribute key; membership means the attribute
// resolves truthy. No category selected matches everything.
func matchesCategory(p *models.ExpandedProduct, category string) bool {
	if category == "" {
		return true
	}
	attr, ok := p.Attributes[category]
	return ok && attr.Truthy()
}

// matchesFilters applies the active attribute filters: keys are ANDed, the
// selected values of one key are ORed. A product missing an attribute for an
// active key fails that key. The price key is a numeric inclusive range.
func matchesFilters(p *models.ExpandedProduct, filters map[string][]string) bool {
	for key, selected := range filters {
		if len(selected) == 0 {
			continue
		}

		if key == models.PriceFilterKey {
			lo, hi, ok := parsePriceRange(selected[0])
			if !ok {
				// Malformed range means no constraint, not an error.
				continue
			}
			if p.Price < lo || p.Price > hi {
				return false
			}
			continue
		}

		attr, ok := p.Attributes[key]
		if !ok {
			return false
		}
		canonical := attr.Canonical()
		found := false
		for _, v := range selected {
			if v == canonical {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matches(p *models.ExpandedProduct, category string, filters map[string][]string) bool {
	return matchesCategory(p, category) && matchesFilters(p, filters)
}

// parsePriceRange parses the "min-max" price filter encoding.
func parsePriceRange(s string) (lo, hi float64, ok bool) {
	left, right, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	lo, errLo := strconv.ParseFloat(strings.TrimSpace(left), 64)
	hi, errHi := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if errLo != nil || errHi != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
