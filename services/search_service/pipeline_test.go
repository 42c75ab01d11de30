package search_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/cache/search_cache"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

func testSnapshot() *config.CatalogSnapshot {
	return &config.CatalogSnapshot{
		Version: 1,
		Products: []models.Product{
			{
				Kind:  models.ProductSimple,
				Code:  "A001",
				Name:  models.LocalizedText{"it": "Maniglia Oro"},
				Price: 35,
				Attributes: map[string]models.AttributeValue{
					"maniglie": boolAttr(true),
					"colore":   textAttr("Oro"),
				},
			},
			{
				Kind:  models.ProductSimple,
				Code:  "A002",
				Name:  models.LocalizedText{"it": "Maniglia Argento"},
				Price: 28,
				Attributes: map[string]models.AttributeValue{
					"maniglie": boolAttr(true),
					"colore":   textAttr("Argento"),
				},
			},
			{
				Kind:  models.ProductGrouped,
				Code:  "B100",
				Name:  models.LocalizedText{"it": "Pomolo"},
				Price: 15,
				Attributes: map[string]models.AttributeValue{
					"pomoli": boolAttr(true),
				},
				Variants: []models.Variant{
					{
						Code:  "B100-ORO",
						Price: 15,
						Attributes: map[string]models.AttributeValue{
							"pomoli": boolAttr(true),
							"colore": textAttr("Oro"),
						},
					},
					{
						Code:  "B100-NER",
						Price: 18,
						Attributes: map[string]models.AttributeValue{
							"pomoli": boolAttr(true),
							"colore": textAttr("Nero"),
						},
					},
				},
			},
		},
		Filters: []models.FilterDefinition{
			{Key: "colore", Type: models.FilterCheckbox, Values: []string{"Oro", "Argento", "Nero"}},
			{Key: models.PriceFilterKey, Type: models.FilterRange},
		},
		Categories: []models.CategoryDefinition{
			{Key: "maniglie", Label: models.LocalizedText{"it": "Maniglie", "en": "Handles"}},
			{Key: "pomoli", Label: models.LocalizedText{"it": "Pomoli"}},
		},
	}
}

func resultCodes(result *SearchResult) (exact, suggested []string) {
	return expandedCodes(result.ExactResults), expandedCodes(result.SuggestedResults)
}

func TestRunSearchNoQueryReturnsWholeCatalog(t *testing.T) {
	result := RunSearch(testSnapshot(), models.SearchState{Lang: "it"})

	exact, suggested := resultCodes(result)
	assert.Equal(t, []string{"A001", "A002", "B100-NER", "B100-ORO"}, exact)
	assert.Empty(t, suggested)
	assert.Equal(t, 4, result.Total)
}

func TestRunSearchSplitsTiers(t *testing.T) {
	result := RunSearch(testSnapshot(), models.SearchState{Query: "maniglia oro", Lang: "it"})

	exact, suggested := resultCodes(result)
	assert.Equal(t, []string{"A001"}, exact)
	// A002 matches "maniglia", B100-ORO matches "oro": half each.
	assert.ElementsMatch(t, []string{"A002", "B100-ORO"}, suggested)
	assert.Equal(t, 3, result.Total)

	// The tiers never share a product.
	seen := map[string]bool{}
	for _, code := range exact {
		seen[code] = true
	}
	for _, code := range suggested {
		assert.False(t, seen[code], "code %s appears in both tiers", code)
	}
}

func TestRunSearchAppliesCategoryAndFilters(t *testing.T) {
	state := models.SearchState{
		Category: "maniglie",
		Filters:  map[string][]string{"colore": {"Oro"}},
		Lang:     "it",
	}
	result := RunSearch(testSnapshot(), state)

	exact, suggested := resultCodes(result)
	assert.Equal(t, []string{"A001"}, exact)
	assert.Empty(t, suggested)
}

// Typing a query narrows the product list but never the filter sidebar.
func TestRunSearchFacetsIgnoreQuery(t *testing.T) {
	snap := testSnapshot()
	withQuery := RunSearch(snap, models.SearchState{Query: "maniglia", Lang: "it"})
	withoutQuery := RunSearch(snap, models.SearchState{Lang: "it"})

	assert.Equal(t, withoutQuery.Facets, withQuery.Facets)

	colore := facetByKey(t, withQuery.Facets, "colore")
	assert.Equal(t, 2, colore.ValueCounts["Oro"])
	assert.Equal(t, 1, colore.ValueCounts["Argento"])
	assert.Equal(t, 1, colore.ValueCounts["Nero"])
}

func TestRunSearchSortAppliesPerTier(t *testing.T) {
	result := RunSearch(testSnapshot(), models.SearchState{
		Query: "maniglia oro",
		Sort:  models.SortPriceDesc,
		Lang:  "it",
	})

	exact, suggested := resultCodes(result)
	// A001 stays first despite the gold knob being cheaper: tiers sort
	// independently and exact always precedes suggested.
	assert.Equal(t, []string{"A001"}, exact)
	assert.Equal(t, []string{"A002", "B100-ORO"}, suggested)
}

func TestSearchResultPage(t *testing.T) {
	result := RunSearch(testSnapshot(), models.SearchState{Lang: "it"})

	exact, suggested := result.Page(2, 3)
	assert.Equal(t, []string{"B100-ORO"}, expandedCodes(exact))
	assert.Empty(t, suggested)
}

func TestRunSearchCachedReusesResult(t *testing.T) {
	search_cache.Flush()
	snap := testSnapshot()
	state := models.SearchState{Query: "maniglia", Lang: "it"}

	first := RunSearchCached(snap, state)
	second := RunSearchCached(snap, state)
	assert.Same(t, first, second)

	search_cache.Flush()
	third := RunSearchCached(snap, state)
	assert.NotSame(t, first, third)
	assert.Equal(t, first, third)
}

func TestRunSearchCachedKeyedOnVersionAndState(t *testing.T) {
	search_cache.Flush()
	snap := testSnapshot()

	a := RunSearchCached(snap, models.SearchState{Query: "maniglia", Lang: "it"})
	b := RunSearchCached(snap, models.SearchState{Query: "pomolo", Lang: "it"})
	assert.NotSame(t, a, b)

	bumped := testSnapshot()
	bumped.Version = 2
	c := RunSearchCached(bumped, models.SearchState{Query: "maniglia", Lang: "it"})
	assert.NotSame(t, a, c)
}

func TestExpandedCatalogMemoizesPerSnapshot(t *testing.T) {
	snap := testSnapshot()

	first := ExpandedCatalog(snap)
	second := ExpandedCatalog(snap)
	require.Len(t, first, 4)
	assert.Same(t, &first[0], &second[0], "same snapshot should reuse the expansion")

	other := testSnapshot()
	other.Products = other.Products[:1]
	assert.Len(t, ExpandedCatalog(other), 1)

	// Going back to the first snapshot recomputes correctly.
	assert.Len(t, ExpandedCatalog(snap), 4)
}

func TestSuggest(t *testing.T) {
	snap := testSnapshot()

	got := Suggest(snap, "maniglia", "it", DefaultSuggestionLimit)
	require.Len(t, got, 2)
	assert.Equal(t, "A001", got[0].Code)
	assert.Equal(t, "Maniglia Oro", got[0].Name)
	assert.Equal(t, "A002", got[1].Code)

	// Partial matches stay out of the dropdown.
	for _, s := range Suggest(snap, "maniglia oro", "it", DefaultSuggestionLimit) {
		assert.Equal(t, "A001", s.Code)
	}

	assert.Empty(t, Suggest(snap, "", "it", DefaultSuggestionLimit))
	assert.Len(t, Suggest(snap, "maniglia", "it", 1), 1)
}

func TestCategoryCounts(t *testing.T) {
	snap := testSnapshot()

	got := CategoryCounts(snap, "en")
	require.Len(t, got, 2)
	assert.Equal(t, models.CategoryCount{Key: "maniglie", Label: "Handles", Count: 2}, got[0])
	// No English label falls back to the source language.
	assert.Equal(t, models.CategoryCount{Key: "pomoli", Label: "Pomoli", Count: 2}, got[1])
}
