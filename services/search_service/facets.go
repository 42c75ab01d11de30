package search_service

import (
	"sort"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// ComputeFacets recomputes availability and counts for every declared
// filter. Each filter is evaluated against the catalog restricted by the
// category and by every *other* active filter — never by its own current
// selection — so a visitor can keep multi-selecting inside one group without
// the group collapsing to the already-selected value. Counts, by contrast,
// reflect the fully filtered result set: a value the current selection rules
// out shows up with count zero, rendered disabled rather than hidden.
func ComputeFacets(expanded []models.ExpandedProduct, defs []models.FilterDefinition, category string, active map[string][]string) []models.FilterWithAvailability {
	facets := make([]models.FilterWithAvailability, 0, len(defs))
	current := filterProducts(expanded, category, active)

	for _, def := range defs {
		subset := filterProducts(expanded, category, withoutKey(active, def.Key))

		facet := models.FilterWithAvailability{
			Key:     def.Key,
			Type:    def.Type,
			Values:  def.Values,
			Options: def.Options,
		}

		if def.Type == models.FilterRange || def.Key == models.PriceFilterKey {
			facet.Min, facet.Max = priceBounds(subset)
			facet.AvailableValues = []string{}
			facets = append(facets, facet)
			continue
		}

		facet.AvailableValues = availableValues(def, subset, current, active[def.Key])
		facet.ValueCounts = valueCounts(def, current)
		facets = append(facets, facet)
	}
	return facets
}

func filterProducts(expanded []models.ExpandedProduct, category string, filters map[string][]string) []models.ExpandedProduct {
	out := make([]models.ExpandedProduct, 0, len(expanded))
	for i := range expanded {
		if matches(&expanded[i], category, filters) {
			out = append(out, expanded[i])
		}
	}
	return out
}

// withoutKey copies the active filter map minus one key. The input is never
// mutated: search state is a read-only snapshot.
func withoutKey(filters map[string][]string, key string) map[string][]string {
	out := make(map[string][]string, len(filters))
	for k, v := range filters {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// availableValues returns the declared values still reachable in the
// self-excluded subset, plus everything currently selected. Values are
// popularity-ordered by their count in the current result set; zero-count
// unselected values are kept but never sorted to the top.
func availableValues(def models.FilterDefinition, subset, current []models.ExpandedProduct, selected []string) []string {
	reachable := make(map[string]bool, len(subset))
	for i := range subset {
		if attr, ok := subset[i].Attributes[def.Key]; ok {
			reachable[attr.Canonical()] = true
		}
	}
	selectedSet := make(map[string]bool, len(selected))
	for _, v := range selected {
		selectedSet[v] = true
	}
	counts := valueCounts(def, current)

	type ranked struct {
		value string
		count int
		order int
	}
	var top, rest []ranked
	for i, v := range def.Values {
		if !reachable[v] && !selectedSet[v] {
			continue
		}
		r := ranked{value: v, count: counts[v], order: i}
		if r.count > 0 || selectedSet[v] {
			top = append(top, r)
		} else {
			rest = append(rest, r)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].count != top[j].count {
			return top[i].count > top[j].count
		}
		return top[i].order < top[j].order
	})

	out := make([]string, 0, len(top)+len(rest))
	for _, r := range top {
		out = append(out, r.value)
	}
	for _, r := range rest {
		out = append(out, r.value)
	}
	return out
}

func valueCounts(def models.FilterDefinition, current []models.ExpandedProduct) map[string]int {
	counts := make(map[string]int, len(def.Values))
	for _, v := range def.Values {
		counts[v] = 0
	}
	for i := range current {
		attr, ok := current[i].Attributes[def.Key]
		if !ok {
			continue
		}
		canonical := attr.Canonical()
		if _, declared := counts[canonical]; declared {
			counts[canonical]++
		}
	}
	return counts
}

func priceBounds(subset []models.ExpandedProduct) (min, max *float64) {
	if len(subset) == 0 {
		return nil, nil
	}
	lo, hi := subset[0].Price, subset[0].Price
	for i := 1; i < len(subset); i++ {
		if p := subset[i].Price; p < lo {
			lo = p
		} else if p > hi {
			hi = p
		}
	}
	return &lo, &hi
}
