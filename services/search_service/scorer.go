package search_service

import (
	"sort"
	"strings"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

// Field weights for the two-tier relevance model. Scoring is literal
// substring counting, not fuzzy matching: every query token is tested
// against four normalized fields and the weights accumulate.
const (
	weightCodeExact      = 1000 // token equals the whole code
	weightCodeSubstring  = 100  // per occurrence in the code
	weightCodePrefix     = 50   // code starts with the token
	weightNameSubstring  = 50   // per occurrence in the name
	weightNamePrefix     = 25   // name starts with the token
	weightDescSubstring  = 20   // per occurrence in the description
	weightAttrsSubstring = 10   // per occurrence in the attribute values
)

// matchThreshold is the minimum fraction of query tokens a product must
// match to stay in the results at all.
const matchThreshold = 0.5

// searchDoc holds the four normalized fields a product is scored on.
type searchDoc struct {
	code        string
	name        string
	description string
	attributes  string
}

func buildSearchDoc(p *models.ExpandedProduct, lang string) searchDoc {
	keys := make([]string, 0, len(p.Attributes))
	for k := range p.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var attrs strings.Builder
	for _, k := range keys {
		if display := p.Attributes[k].Display(lang); display != "" {
			if attrs.Len() > 0 {
				attrs.WriteByte(' ')
			}
			attrs.WriteString(display)
		}
	}

	return searchDoc{
		code:        Normalize(p.Code),
		name:        Normalize(p.Name.Resolve(lang)),
		description: Normalize(p.Description.Resolve(lang)),
		attributes:  Normalize(attrs.String()),
	}
}

// scoreDoc scores one document against the query tokens and reports how many
// tokens matched at least one field.
func scoreDoc(doc searchDoc, tokens []string) (score, matched int) {
	for _, token := range tokens {
		found := false

		// Code: an exact field match short-circuits the other code weights.
		if doc.code == token {
			score += weightCodeExact
			found = true
		} else if n := strings.Count(doc.code, token); n > 0 {
			score += n * weightCodeSubstring
			if strings.HasPrefix(doc.code, token) {
				score += weightCodePrefix
			}
			found = true
		}

		if n := strings.Count(doc.name, token); n > 0 {
			score += n * weightNameSubstring
			if strings.HasPrefix(doc.name, token) {
				score += weightNamePrefix
			}
			found = true
		}

		if n := strings.Count(doc.description, token); n > 0 {
			score += n * weightDescSubstring
			found = true
		}

		if n := strings.Count(doc.attributes, token); n > 0 {
			score += n * weightAttrsSubstring
			found = true
		}

		if found {
			matched++
		}
	}
	return score, matched
}

// classify scores a product and assigns its match tier. The second return is
// false when the product matched fewer than half of the query tokens and must
// be excluded. With no query every product is an exact match with score 0.
func classify(p models.ExpandedProduct, tokens []string, lang string) (models.ScoredProduct, bool) {
	if len(tokens) == 0 {
		return models.ScoredProduct{Product: p, MatchFraction: 1, Tier: models.TierExact}, true
	}

	score, matched := scoreDoc(buildSearchDoc(&p, lang), tokens)
	fraction := float64(matched) / float64(len(tokens))

	switch {
	case fraction == 1:
		return models.ScoredProduct{Product: p, Score: score, MatchFraction: fraction, Tier: models.TierExact}, true
	case fraction >= matchThreshold:
		return models.ScoredProduct{Product: p, Score: score, MatchFraction: fraction, Tier: models.TierPartial}, true
	default:
		return models.ScoredProduct{}, false
	}
}
