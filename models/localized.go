package models

import (
	"encoding/json"
	"sort"
)

// SourceLanguage is the language the admin backend writes the catalog in.
// Its value doubles as the stable comparison key for attribute matching.
const SourceLanguage = "it"

// LocalizedText maps a language code ("it", "en", ...) to a translated string.
type LocalizedText map[string]string

// Resolve returns the best translation for lang.
// Fallback order: requested language → source language → the first available
// language (lowest language code, so the result is deterministic) → "".
func (t LocalizedText) Resolve(lang string) string {
	if len(t) == 0 {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[SourceLanguage]; ok && v != "" {
		return v
	}
	langs := make([]string, 0, len(t))
	for l := range t {
		if t[l] != "" {
			langs = append(langs, l)
		}
	}
	if len(langs) == 0 {
		return ""
	}
	sort.Strings(langs)
	return t[langs[0]]
}

// Canonical returns the source-language string used as comparison key.
func (t LocalizedText) Canonical() string {
	return t.Resolve(SourceLanguage)
}

// UnmarshalJSON accepts either the usual {"it": "...", "en": "..."} object or
// a bare string, which the admin import occasionally emits for untranslated
// fields. A bare string is stored under the source language.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var asMap map[string]string
	if err := json.Unmarshal(data, &asMap); err == nil {
		*t = asMap
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*t = LocalizedText{SourceLanguage: asString}
	return nil
}
