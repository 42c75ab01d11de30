package models

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Search State (round-trips through URL query parameters)
// ═══════════════════════════════════════════════════════════

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortCodeAsc   = "code-asc"
	SortCodeDesc  = "code-desc"

	// SortRelevance is the implicit default: score descending when a query
	// is present, code ascending otherwise. It has no URL representation.
	SortRelevance = ""
)

const (
	DefaultPerPage = 12
	MaxPerPage     = 100

	filterParamPrefix = "f_"
)

// SearchState is the complete input of one search run. It is the only
// persisted representation of what the visitor is looking at.
type SearchState struct {
	Query    string
	Category string
	Filters  map[string][]string
	Sort     string
	Page     int
	PerPage  int
	View     string
	Lang     string
}

// ParseSearchState decodes a query string into a normalized SearchState.
// Unknown sort keys fall back to relevance; page and perPage are clamped.
func ParseSearchState(values url.Values) SearchState {
	s := SearchState{
		Query:    values.Get("q"),
		Category: values.Get("category"),
		Sort:     normalizeSortKey(values.Get("sort")),
		View:     values.Get("view"),
		Lang:     values.Get("lang"),
		Filters:  map[string][]string{},
	}
	if s.Lang == "" {
		s.Lang = SourceLanguage
	}

	s.Page, _ = strconv.Atoi(values.Get("page"))
	if s.Page < 1 {
		s.Page = 1
	}
	s.PerPage, _ = strconv.Atoi(values.Get("perPage"))
	if s.PerPage < 1 || s.PerPage > MaxPerPage {
		s.PerPage = DefaultPerPage
	}

	for param, raw := range values {
		if !strings.HasPrefix(param, filterParamPrefix) || len(param) == len(filterParamPrefix) {
			continue
		}
		key := param[len(filterParamPrefix):]
		var selected []string
		for _, group := range raw {
			for _, v := range strings.Split(group, ",") {
				if v = strings.TrimSpace(v); v != "" {
					selected = append(selected, v)
				}
			}
		}
		if len(selected) > 0 {
			s.Filters[key] = selected
		}
	}
	return s
}

// QueryValues encodes the state back into URL query parameters. Defaults are
// omitted so shared links stay short; ParseSearchState restores them.
func (s SearchState) QueryValues() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set("q", s.Query)
	}
	if s.Category != "" {
		values.Set("category", s.Category)
	}
	if s.Sort != SortRelevance {
		values.Set("sort", s.Sort)
	}
	if s.View != "" {
		values.Set("view", s.View)
	}
	if s.Lang != "" && s.Lang != SourceLanguage {
		values.Set("lang", s.Lang)
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	if s.PerPage > 0 && s.PerPage != DefaultPerPage {
		values.Set("perPage", strconv.Itoa(s.PerPage))
	}
	for key, selected := range s.Filters {
		if len(selected) > 0 {
			values.Set(filterParamPrefix+key, strings.Join(selected, ","))
		}
	}
	return values
}

// MemoKey is the structural cache key of the search pipeline: everything
// that changes the computed result set, excluding pagination and view state.
// Filter keys and values are sorted so equivalent states collide.
func (s SearchState) MemoKey() string {
	var b strings.Builder
	b.WriteString(s.Lang)
	b.WriteByte('|')
	b.WriteString(s.Query)
	b.WriteByte('|')
	b.WriteString(s.Category)
	b.WriteByte('|')
	b.WriteString(s.Sort)

	keys := make([]string, 0, len(s.Filters))
	for k := range s.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		selected := append([]string(nil), s.Filters[k]...)
		sort.Strings(selected)
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(selected, ","))
	}
	return b.String()
}

func normalizeSortKey(key string) string {
	switch key {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortCodeAsc, SortCodeDesc:
		return key
	}
	return SortRelevance
}
