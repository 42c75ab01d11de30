package search_service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// sortTier orders one score tier in place by the active sort key. Name and
// code use locale-aware collation; price is numeric; the relevance default
// is score descending. Ties always break on code ascending so the order is
// stable across runs regardless of the input permutation.
func sortTier(tier []models.ScoredProduct, key, lang string) {
	if len(tier) < 2 {
		return
	}
	col := collatorFor(lang)

	less := func(a, b *models.ScoredProduct) bool {
		switch key {
		case models.SortPriceAsc:
			if a.Product.Price != b.Product.Price {
				return a.Product.Price < b.Product.Price
			}
		case models.SortPriceDesc:
			if a.Product.Price != b.Product.Price {
				return a.Product.Price > b.Product.Price
			}
		case models.SortNameAsc:
			if c := col.CompareString(a.Product.Name.Resolve(lang), b.Product.Name.Resolve(lang)); c != 0 {
				return c < 0
			}
		case models.SortNameDesc:
			if c := col.CompareString(a.Product.Name.Resolve(lang), b.Product.Name.Resolve(lang)); c != 0 {
				return c > 0
			}
		case models.SortCodeAsc:
			if c := col.CompareString(a.Product.Code, b.Product.Code); c != 0 {
				return c < 0
			}
		case models.SortCodeDesc:
			if c := col.CompareString(a.Product.Code, b.Product.Code); c != 0 {
				return c > 0
			}
		default:
			if a.Score != b.Score {
				return a.Score > b.Score
			}
		}
		return strings.Compare(a.Product.Code, b.Product.Code) < 0
	}

	sort.SliceStable(tier, func(i, j int) bool { return less(&tier[i], &tier[j]) })
}

// collatorFor builds a collator for the storefront language. Collators are
// not safe for concurrent use, so each sort gets its own.
func collatorFor(lang string) *collate.Collator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Italian
	}
	return collate.New(tag, collate.IgnoreCase)
}

// paginateTiers slices the exact-before-partial concatenation by page. The
// two tiers are returned separately so the UI can keep its divider, and no
// partial entry can ever precede an exact one.
func paginateTiers(exact, suggested []models.ExpandedProduct, page, perPage int) (pagedExact, pagedSuggested []models.ExpandedProduct) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}

	total := len(exact) + len(suggested)
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pagedExact = sliceWindow(exact, start, end, 0)
	pagedSuggested = sliceWindow(suggested, start, end, len(exact))
	return pagedExact, pagedSuggested
}

// sliceWindow intersects [start,end) of the concatenated list with one tier
// that begins at the given offset.
func sliceWindow(tier []models.ExpandedProduct, start, end, offset int) []models.ExpandedProduct {
	lo := start - offset
	hi := end - offset
	if lo < 0 {
		lo = 0
	}
	if hi > len(tier) {
		hi = len(tier)
	}
	if lo >= hi {
		return []models.ExpandedProduct{}
	}
	return tier[lo:hi]
}
