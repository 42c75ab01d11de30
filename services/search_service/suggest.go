package search_service

import (
	"sort"
	"strings"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/config"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// DefaultSuggestionLimit caps the autocomplete dropdown.
const DefaultSuggestionLimit = 8

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Code  string  `json:"codice"`
	Name  string  `json:"nome"`
	Price float64 `json:"prezzo"`
	Image string  `json:"immagine,omitempty"`
}

// Suggest returns the best exact-tier matches for a partial query, ranked by
// relevance score with code as tie-break. Filters and categories do not
// apply: the autocomplete searches the whole expanded catalog.
func Suggest(snap *config.CatalogSnapshot, query, lang string, limit int) []Suggestion {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []Suggestion{}
	}
	if limit < 1 {
		limit = DefaultSuggestionLimit
	}

	var hits []models.ScoredProduct
	expanded := ExpandedCatalog(snap)
	for i := range expanded {
		scored, keep := classify(expanded[i], tokens, lang)
		if keep && scored.Tier == models.TierExact {
			hits = append(hits, scored)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return strings.Compare(hits[i].Product.Code, hits[j].Product.Code) < 0
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]Suggestion, len(hits))
	for i, h := range hits {
		out[i] = Suggestion{
			Code:  h.Product.Code,
			Name:  h.Product.Name.Resolve(lang),
			Price: h.Product.Price,
			Image: h.Product.Image,
		}
	}
	return out
}
