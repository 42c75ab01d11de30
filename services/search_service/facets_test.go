package search_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

func textAttr(s string) models.AttributeValue {
	return models.AttributeValue{Kind: models.AttributeText, Text: s}
}

func boolAttr(b bool) models.AttributeValue {
	return models.AttributeValue{Kind: models.AttributeBool, Bool: b}
}

func facetCatalog() []models.ExpandedProduct {
	return []models.ExpandedProduct{
		{Code: "A001", Price: 35, Attributes: map[string]models.AttributeValue{
			"maniglie":  boolAttr(true),
			"colore":    textAttr("Oro"),
			"materiale": textAttr("Ottone"),
		}},
		{Code: "A002", Price: 28, Attributes: map[string]models.AttributeValue{
			"maniglie":  boolAttr(true),
			"colore":    textAttr("Argento"),
			"materiale": textAttr("Alluminio"),
		}},
		{Code: "B100", Price: 15, Attributes: map[string]models.AttributeValue{
			"pomoli": boolAttr(true),
			"colore": textAttr("Nero"),
		}},
	}
}

func facetDefs() []models.FilterDefinition {
	return []models.FilterDefinition{
		{Key: "colore", Type: models.FilterCheckbox, Values: []string{"Oro", "Argento", "Nero"}},
		{Key: "materiale", Type: models.FilterCheckbox, Values: []string{"Ottone", "Alluminio"}},
		{Key: models.PriceFilterKey, Type: models.FilterRange},
	}
}

func facetByKey(t *testing.T, facets []models.FilterWithAvailability, key string) models.FilterWithAvailability {
	t.Helper()
	for _, f := range facets {
		if f.Key == key {
			return f
		}
	}
	require.Failf(t, "facet not found", "key %q", key)
	return models.FilterWithAvailability{}
}

// A group's own selection never narrows its own list: with colore=Oro active
// the Argento handle is still offered, its count reflecting that picking it
// today yields zero results under the current selection.
func TestComputeFacetsSelfExclusionKeepsOwnGroupOpen(t *testing.T) {
	catalog := facetCatalog()
	active := map[string][]string{"colore": {"Oro"}}

	facets := ComputeFacets(catalog, facetDefs(), "maniglie", active)
	colore := facetByKey(t, facets, "colore")

	assert.Equal(t, []string{"Oro", "Argento"}, colore.AvailableValues)
	assert.Equal(t, 1, colore.ValueCounts["Oro"])
	assert.Equal(t, 0, colore.ValueCounts["Argento"])
	assert.Equal(t, 0, colore.ValueCounts["Nero"])
}

// The selected value survives even when other groups' filters whittle its
// own count to zero, so the UI renders it disabled instead of dropping the
// visitor's choice.
func TestComputeFacetsSelectedValueAlwaysListed(t *testing.T) {
	catalog := facetCatalog()
	active := map[string][]string{"colore": {"Argento"}, "materiale": {"Ottone"}}

	facets := ComputeFacets(catalog, facetDefs(), "maniglie", active)
	colore := facetByKey(t, facets, "colore")

	// The Ottone filter leaves only the gold handle reachable, yet Argento
	// stays listed because it is selected.
	assert.ElementsMatch(t, []string{"Oro", "Argento"}, colore.AvailableValues)
	assert.Equal(t, 0, colore.ValueCounts["Oro"])
	assert.Equal(t, 0, colore.ValueCounts["Argento"])
}

func TestComputeFacetsOtherKeysSeeFullSelection(t *testing.T) {
	catalog := facetCatalog()
	active := map[string][]string{"colore": {"Oro"}}

	facets := ComputeFacets(catalog, facetDefs(), "maniglie", active)
	materiale := facetByKey(t, facets, "materiale")

	// Only the gold handle survives the colore filter, so only its material
	// remains reachable.
	assert.Equal(t, []string{"Ottone"}, materiale.AvailableValues)
	assert.Equal(t, 1, materiale.ValueCounts["Ottone"])
	assert.Equal(t, 0, materiale.ValueCounts["Alluminio"])
}

func TestComputeFacetsCategoryRestrictsEverything(t *testing.T) {
	facets := ComputeFacets(facetCatalog(), facetDefs(), "pomoli", nil)
	colore := facetByKey(t, facets, "colore")

	assert.Equal(t, []string{"Nero"}, colore.AvailableValues)
	assert.Equal(t, 1, colore.ValueCounts["Nero"])
	assert.Equal(t, 0, colore.ValueCounts["Oro"])
}

func TestComputeFacetsPriceBounds(t *testing.T) {
	facets := ComputeFacets(facetCatalog(), facetDefs(), "", nil)
	prezzo := facetByKey(t, facets, models.PriceFilterKey)

	require.NotNil(t, prezzo.Min)
	require.NotNil(t, prezzo.Max)
	assert.Equal(t, 15.0, *prezzo.Min)
	assert.Equal(t, 35.0, *prezzo.Max)
	assert.Empty(t, prezzo.AvailableValues)
}

func TestComputeFacetsPriceBoundsIgnoreOwnSelection(t *testing.T) {
	active := map[string][]string{models.PriceFilterKey: {"30-40"}}
	facets := ComputeFacets(facetCatalog(), facetDefs(), "", active)
	prezzo := facetByKey(t, facets, models.PriceFilterKey)

	// The slider keeps showing the full span so it can be widened again.
	require.NotNil(t, prezzo.Min)
	assert.Equal(t, 15.0, *prezzo.Min)
	assert.Equal(t, 35.0, *prezzo.Max)
}

func TestComputeFacetsEmptySubset(t *testing.T) {
	facets := ComputeFacets(facetCatalog(), facetDefs(), "inesistente", nil)

	colore := facetByKey(t, facets, "colore")
	assert.Empty(t, colore.AvailableValues)

	prezzo := facetByKey(t, facets, models.PriceFilterKey)
	assert.Nil(t, prezzo.Min)
	assert.Nil(t, prezzo.Max)
}

func TestAvailableValuesOrdering(t *testing.T) {
	def := models.FilterDefinition{
		Key:    "colore",
		Type:   models.FilterCheckbox,
		Values: []string{"Oro", "Argento", "Nero"},
	}
	products := []models.ExpandedProduct{
		{Code: "1", Attributes: map[string]models.AttributeValue{"colore": textAttr("Nero")}},
		{Code: "2", Attributes: map[string]models.AttributeValue{"colore": textAttr("Nero")}},
		{Code: "3", Attributes: map[string]models.AttributeValue{"colore": textAttr("Oro")}},
		{Code: "4", Attributes: map[string]models.AttributeValue{"colore": textAttr("Argento")}},
	}

	// No selection: everything reachable, popularity first, declared order
	// breaking ties.
	got := availableValues(def, products, products, nil)
	assert.Equal(t, []string{"Nero", "Oro", "Argento"}, got)
}

func TestValueCountsSkipsUndeclaredValues(t *testing.T) {
	def := models.FilterDefinition{Key: "colore", Values: []string{"Oro"}}
	products := []models.ExpandedProduct{
		{Code: "1", Attributes: map[string]models.AttributeValue{"colore": textAttr("Oro")}},
		{Code: "2", Attributes: map[string]models.AttributeValue{"colore": textAttr("Fucsia")}},
	}

	counts := valueCounts(def, products)
	assert.Equal(t, map[string]int{"Oro": 1}, counts)
}

func TestWithoutKeyDoesNotMutateInput(t *testing.T) {
	in := map[string][]string{"a": {"1"}, "b": {"2"}}
	out := withoutKey(in, "a")

	assert.Equal(t, map[string][]string{"b": {"2"}}, out)
	assert.Len(t, in, 2)
}
