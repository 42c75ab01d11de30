package search_service

import (
	"fmt"
	"sync"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/cache/search_cache"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// SearchResult is the engine output consumed by the UI layer. Exact results
// carry every query token; suggested results carry at least half and are
// rendered after a divider. All slices are freshly allocated per run.
type SearchResult struct {
	ExactResults     []models.ExpandedProduct        `json:"exactResults"`
	SuggestedResults []models.ExpandedProduct        `json:"suggestedResults"`
	Facets           []models.FilterWithAvailability `json:"facets"`
	Total            int                             `json:"total"`
}

// RunSearch executes the whole pipeline over one catalog snapshot:
// expansion → category/filter predicate → scoring and classification →
// per-tier sort → facet computation. Pure: same snapshot and state always
// produce the same result, which is what makes RunSearchCached sound.
func RunSearch(snap *config.CatalogSnapshot, state models.SearchState) *SearchResult {
	expanded := ExpandedCatalog(snap)
	eligible := filterProducts(expanded, state.Category, state.Filters)

	tokens := Tokenize(state.Query)
	var exactTier, partialTier []models.ScoredProduct
	for i := range eligible {
		scored, keep := classify(eligible[i], tokens, state.Lang)
		if !keep {
			continue
		}
		if scored.Tier == models.TierExact {
			exactTier = append(exactTier, scored)
		} else {
			partialTier = append(partialTier, scored)
		}
	}

	sortTier(exactTier, state.Sort, state.Lang)
	sortTier(partialTier, state.Sort, state.Lang)

	// Facets are computed against the category-filtered catalog, never
	// against the query: typing must not make filter groups vanish.
	facets := ComputeFacets(expanded, snap.Filters, state.Category, state.Filters)

	return &SearchResult{
		ExactResults:     tierProducts(exactTier),
		SuggestedResults: tierProducts(partialTier),
		Facets:           facets,
		Total:            len(exactTier) + len(partialTier),
	}
}

// RunSearchCached memoizes RunSearch on (catalog version, search state).
// Pagination is not part of the key: it slices the memoized result, so page
// flips never re-run the pipeline.
func RunSearchCached(snap *config.CatalogSnapshot, state models.SearchState) *SearchResult {
	key := fmt.Sprintf("search|%d|%s", snap.Version, state.MemoKey())
	if hit, ok := search_cache.Get(key); ok {
		if res, ok := hit.(*SearchResult); ok {
			return res
		}
	}
	res := RunSearch(snap, state)
	search_cache.Set(key, res)
	return res
}

// Page slices a search result by page, keeping the exact tier strictly
// before the suggested tier.
func (r *SearchResult) Page(page, perPage int) (exact, suggested []models.ExpandedProduct) {
	return paginateTiers(r.ExactResults, r.SuggestedResults, page, perPage)
}

func tierProducts(tier []models.ScoredProduct) []models.ExpandedProduct {
	out := make([]models.ExpandedProduct, len(tier))
	for i := range tier {
		out[i] = tier[i].Product
	}
	return out
}

// ── Expansion memo ───────────────────────────────────────────────────────────
// Variant expansion only depends on the catalog, so it is memoized per
// snapshot instead of per search state.

var expansionMemo struct {
	sync.Mutex
	snap     *config.CatalogSnapshot
	expanded []models.ExpandedProduct
}

// ExpandedCatalog returns the variant expansion of a snapshot, computing it
// at most once per snapshot. Snapshots are immutable, so pointer identity is
// a sound memo key.
func ExpandedCatalog(snap *config.CatalogSnapshot) []models.ExpandedProduct {
	expansionMemo.Lock()
	defer expansionMemo.Unlock()
	if expansionMemo.snap == snap {
		return expansionMemo.expanded
	}
	expansionMemo.snap = snap
	expansionMemo.expanded = Expand(snap.Products)
	return expansionMemo.expanded
}

// CategoryCounts returns the declared categories with how many expanded
// products carry each category attribute truthy.
func CategoryCounts(snap *config.CatalogSnapshot, lang string) []models.CategoryCount {
	expanded := ExpandedCatalog(snap)
	out := make([]models.CategoryCount, 0, len(snap.Categories))
	for _, def := range snap.Categories {
		count := 0
		for i := range expanded {
			if matchesCategory(&expanded[i], def.Key) {
				count++
			}
		}
		label := def.Label.Resolve(lang)
		if label == "" {
			label = def.Key
		}
		out = append(out, models.CategoryCount{Key: def.Key, Label: label, Count: count})
	}
	return out
}
