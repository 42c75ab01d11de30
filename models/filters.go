package models

// FilterType selects how the storefront renders a filter group.
type FilterType string

const (
	FilterCheckbox FilterType = "checkbox"
	FilterTags     FilterType = "tags"
	FilterSelect   FilterType = "select"
	FilterRange    FilterType = "range"
)

// PriceFilterKey is the reserved filter key for the numeric price range.
// Every other key addresses a product attribute.
const PriceFilterKey = "prezzo"

// FilterDefinition is one filter group as declared by the admin backend.
type FilterDefinition struct {
	Key     string         `json:"key"`
	Values  []string       `json:"values"`
	Type    FilterType     `json:"type,omitempty"`
	Options []FilterOption `json:"options,omitempty"`
	Min     *float64       `json:"min,omitempty"`
	Max     *float64       `json:"max,omitempty"`
}

// FilterOption carries per-value display translations.
type FilterOption struct {
	Value string        `json:"value"`
	Label LocalizedText `json:"label,omitempty"`
}

// FilterWithAvailability is a filter definition plus the live availability
// computed for the current category and filter state. Never persisted.
type FilterWithAvailability struct {
	Key     string         `json:"key"`
	Type    FilterType     `json:"type,omitempty"`
	Values  []string       `json:"values"`
	Options []FilterOption `json:"options,omitempty"`

	// AvailableValues are the values still reachable given the category and
	// every other active filter. ValueCounts maps every declared value to the
	// number of products it yields in the current result set; zero-count
	// values stay visible so the UI can render them disabled.
	AvailableValues []string       `json:"availableValues"`
	ValueCounts     map[string]int `json:"valueCounts,omitempty"`

	// Price bounds of the eligible subset, range type only.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// CategoryDefinition is one storefront category. A category is an attribute
// key; a product belongs to it when that attribute resolves truthy.
type CategoryDefinition struct {
	Key   string        `json:"key"`
	Label LocalizedText `json:"label,omitempty"`
}

// CategoryCount is a category with its live product count.
type CategoryCount struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterConfig is the admin-written filter declaration file.
type FilterConfig struct {
	Categories []CategoryDefinition `json:"categorie"`
	Filters    []FilterDefinition   `json:"filtri"`
}

// FilterMetadata is the aggregate payload for the filter sidebar.
type FilterMetadata struct {
	Categories []CategoryCount          `json:"categories"`
	Facets     []FilterWithAvailability `json:"facets"`
	PriceRange *PriceRange              `json:"priceRange,omitempty"`
}

// PriceRange represents the minimum and maximum price of a product set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
