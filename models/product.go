package models

import "encoding/json"

// ═══════════════════════════════════════════════════════════
// Catalog Models (static JSON, written by the admin backend)
// ═══════════════════════════════════════════════════════════

// ProductKind distinguishes variant-less products from grouped masters so
// downstream code switches on the kind instead of probing the variant slice.
type ProductKind uint8

const (
	ProductSimple ProductKind = iota
	ProductGrouped
)

// Product is one catalog record as written by the admin backend.
type Product struct {
	Kind ProductKind `json:"-"`

	Code           string                    `json:"codice"`
	Name           LocalizedText             `json:"nome"`
	Description    LocalizedText             `json:"descrizione,omitempty"`
	Price          float64                   `json:"prezzo"`
	Image          string                    `json:"immagine,omitempty"`
	Images         []string                  `json:"immagini,omitempty"`
	Attributes     map[string]AttributeValue `json:"attributi,omitempty"`
	Variants       []Variant                 `json:"variants,omitempty"`
	VariantGroupID string                    `json:"variantGroupId,omitempty"`
}

// Variant is an alternate configuration owned by exactly one master product.
// It carries no name of its own; the master's name is inherited.
type Variant struct {
	Code       string                    `json:"codice"`
	Price      float64                   `json:"prezzo"`
	Image      string                    `json:"immagine,omitempty"`
	Images     []string                  `json:"immagini,omitempty"`
	Attributes map[string]AttributeValue `json:"attributi,omitempty"`
	Qualifiers map[string]string         `json:"qualifiers,omitempty"`
}

// UnmarshalJSON fixes the product kind at ingestion time.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Product(a)
	if len(p.Variants) > 0 {
		p.Kind = ProductGrouped
	} else {
		p.Kind = ProductSimple
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Derived Models (ephemeral, recomputed per search state)
// ═══════════════════════════════════════════════════════════

// ExpandedProduct is one independently addressable sellable unit: either a
// variant-less product, or one entry per variant with the variant's own
// code/price/images/attributes and the master's name and description.
type ExpandedProduct struct {
	Code        string                    `json:"codice"`
	Name        LocalizedText             `json:"nome"`
	Description LocalizedText             `json:"descrizione,omitempty"`
	Price       float64                   `json:"prezzo"`
	Image       string                    `json:"immagine,omitempty"`
	Images      []string                  `json:"immagini,omitempty"`
	Attributes  map[string]AttributeValue `json:"attributi,omitempty"`

	VariantGroupID string            `json:"variantGroupId,omitempty"`
	MasterCode     string            `json:"masterCode,omitempty"`
	Qualifiers     map[string]string `json:"qualifiers,omitempty"`

	// 1-based position inside the variant group and the group size,
	// used by the variant picker. Both zero for simple products.
	VariantOrder      int `json:"variantOrder,omitempty"`
	VariantGroupTotal int `json:"variantGroupTotal,omitempty"`
}

// MatchTier classifies how much of the query a product matched.
type MatchTier string

const (
	TierExact   MatchTier = "exact"   // all query tokens matched
	TierPartial MatchTier = "partial" // at least half of the tokens matched
)

// ScoredProduct pairs an expanded product with its relevance classification.
type ScoredProduct struct {
	Product       ExpandedProduct `json:"product"`
	Score         int             `json:"score"`
	MatchFraction float64         `json:"matchFraction"`
	Tier          MatchTier       `json:"tier"`
}
