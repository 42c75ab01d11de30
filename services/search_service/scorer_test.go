package search_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

func TestScoreDocWeights(t *testing.T) {
	tests := []struct {
		name        string
		doc         searchDoc
		tokens      []string
		wantScore   int
		wantMatched int
	}{
		{
			name:        "exact code match short-circuits other code weights",
			doc:         searchDoc{code: "a001"},
			tokens:      []string{"a001"},
			wantScore:   1000,
			wantMatched: 1,
		},
		{
			name:        "code substring plus prefix bonus",
			doc:         searchDoc{code: "a001x"},
			tokens:      []string{"a001"},
			wantScore:   150, // 1×100 + 50 prefix
			wantMatched: 1,
		},
		{
			name:        "code substring without prefix",
			doc:         searchDoc{code: "xa001"},
			tokens:      []string{"a001"},
			wantScore:   100,
			wantMatched: 1,
		},
		{
			name:        "name occurrences count separately",
			doc:         searchDoc{name: "oro antico oro"},
			tokens:      []string{"oro"},
			wantScore:   125, // 2×50 + 25 prefix
			wantMatched: 1,
		},
		{
			name:        "description weight",
			doc:         searchDoc{description: "finitura oro lucido"},
			tokens:      []string{"oro"},
			wantScore:   20,
			wantMatched: 1,
		},
		{
			name:        "attributes weight",
			doc:         searchDoc{attributes: "oro ottone"},
			tokens:      []string{"oro"},
			wantScore:   10,
			wantMatched: 1,
		},
		{
			name:        "weights accumulate across fields",
			doc:         searchDoc{code: "oro1", name: "maniglia oro", description: "oro", attributes: "oro"},
			tokens:      []string{"oro"},
			wantScore:   150 + 50 + 20 + 10,
			wantMatched: 1,
		},
		{
			name:        "unmatched token contributes nothing",
			doc:         searchDoc{name: "maniglia argento"},
			tokens:      []string{"oro", "maniglia"},
			wantScore:   50 + 25,
			wantMatched: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := scoreDoc(tt.doc, tt.tokens)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}

func catalogPair() (oro, argento models.ExpandedProduct) {
	oro = models.ExpandedProduct{
		Code: "A001",
		Name: models.LocalizedText{"it": "Maniglia Oro"},
		Attributes: map[string]models.AttributeValue{
			"colore": {Kind: models.AttributeText, Text: "Oro"},
		},
	}
	argento = models.ExpandedProduct{
		Code: "A002",
		Name: models.LocalizedText{"it": "Maniglia Argento"},
		Attributes: map[string]models.AttributeValue{
			"colore": {Kind: models.AttributeText, Text: "Argento"},
		},
	}
	return oro, argento
}

func TestClassifyTiers(t *testing.T) {
	oro, argento := catalogPair()

	t.Run("all tokens matched is exact", func(t *testing.T) {
		scored, keep := classify(oro, Tokenize("oro"), "it")
		require.True(t, keep)
		assert.Equal(t, models.TierExact, scored.Tier)
		assert.Equal(t, 1.0, scored.MatchFraction)
	})

	t.Run("no token matched is rejected", func(t *testing.T) {
		_, keep := classify(argento, Tokenize("oro"), "it")
		assert.False(t, keep)
	})

	t.Run("two tokens both in name is exact", func(t *testing.T) {
		scored, keep := classify(argento, Tokenize("maniglia arg"), "it")
		require.True(t, keep)
		assert.Equal(t, models.TierExact, scored.Tier)
		assert.Equal(t, 1.0, scored.MatchFraction)
	})

	t.Run("half of tokens matched is partial", func(t *testing.T) {
		scored, keep := classify(argento, Tokenize("maniglia oro"), "it")
		require.True(t, keep)
		assert.Equal(t, models.TierPartial, scored.Tier)
		assert.Equal(t, 0.5, scored.MatchFraction)
	})

	t.Run("below half is rejected", func(t *testing.T) {
		_, keep := classify(argento, Tokenize("oro lucido maniglia"), "it")
		assert.False(t, keep)
	})

	t.Run("no query is exact with zero score", func(t *testing.T) {
		scored, keep := classify(argento, nil, "it")
		require.True(t, keep)
		assert.Equal(t, models.TierExact, scored.Tier)
		assert.Zero(t, scored.Score)
		assert.Equal(t, 1.0, scored.MatchFraction)
	})
}

func TestBuildSearchDocUsesRequestedLanguage(t *testing.T) {
	p := models.ExpandedProduct{
		Code: "A001",
		Name: models.LocalizedText{"it": "Maniglia Oro", "en": "Gold Handle"},
		Attributes: map[string]models.AttributeValue{
			"materiale": {Kind: models.AttributeLocalized,
				Localized: models.LocalizedText{"it": "Ottone", "en": "Brass"}},
		},
	}

	it := buildSearchDoc(&p, "it")
	assert.Equal(t, "maniglia oro", it.name)
	assert.Equal(t, "ottone", it.attributes)

	en := buildSearchDoc(&p, "en")
	assert.Equal(t, "gold handle", en.name)
	assert.Equal(t, "brass", en.attributes)
}
