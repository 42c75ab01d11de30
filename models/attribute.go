package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ═══════════════════════════════════════════════════════════
// Attribute Value (tagged union)
// ═══════════════════════════════════════════════════════════
//
// The admin import writes attribute values in four shapes:
//
//	true / false
//	"Oro"
//	{"it": "Oro", "en": "Gold"}
//	{"label": {"it": "Colore"}, "value": <any of the above>}
//
// All call sites go through Canonical / Display / Truthy instead of
// re-inspecting the raw JSON shape.

type AttributeKind uint8

const (
	AttributeBool AttributeKind = iota
	AttributeText
	AttributeLocalized
	AttributeLabeled
)

type AttributeValue struct {
	Kind      AttributeKind
	Bool      bool
	Text      string
	Localized LocalizedText

	// Labeled shape: optional translated label plus a nested plain value.
	Label LocalizedText
	Value *AttributeValue
}

// Canonical returns the stable source-language comparison key for the value.
// Booleans canonicalize to "true"/"false".
func (a AttributeValue) Canonical() string {
	switch a.Kind {
	case AttributeBool:
		return strconv.FormatBool(a.Bool)
	case AttributeText:
		return a.Text
	case AttributeLocalized:
		return a.Localized.Canonical()
	case AttributeLabeled:
		if a.Value != nil {
			return a.Value.Canonical()
		}
	}
	return ""
}

// Display returns the human-readable string for the requested language.
// Plain booleans have no display text; a labeled boolean displays its label
// (the common shape for category membership flags).
func (a AttributeValue) Display(lang string) string {
	switch a.Kind {
	case AttributeBool:
		return ""
	case AttributeText:
		return a.Text
	case AttributeLocalized:
		return a.Localized.Resolve(lang)
	case AttributeLabeled:
		if a.Value != nil && a.Value.Kind == AttributeBool {
			return a.Label.Resolve(lang)
		}
		if a.Value != nil {
			return a.Value.Display(lang)
		}
	}
	return ""
}

// DisplayLabel returns the translated label when the admin provided one,
// falling back to the supplied attribute key.
func (a AttributeValue) DisplayLabel(lang, key string) string {
	if a.Kind == AttributeLabeled && len(a.Label) > 0 {
		if l := a.Label.Resolve(lang); l != "" {
			return l
		}
	}
	return key
}

// Truthy reports whether the value encodes boolean truth. The admin data
// uses true, "true", 1 and "1" interchangeably; the parser already folds
// true/"true"/1 into AttributeBool, so only the literal "1" remains here.
func (a AttributeValue) Truthy() bool {
	switch a.Kind {
	case AttributeBool:
		return a.Bool
	case AttributeText:
		return a.Text == "1"
	case AttributeLocalized:
		return a.Localized.Canonical() == "1"
	case AttributeLabeled:
		if a.Value != nil {
			return a.Value.Truthy()
		}
	}
	return false
}

func (a *AttributeValue) UnmarshalJSON(data []byte) error {
	parsed, err := parseAttributeValue(data, true)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// parseAttributeValue decodes one of the four attribute shapes. The labeled
// object shape is only accepted at the top level, never nested in itself.
func parseAttributeValue(data []byte, allowLabeled bool) (AttributeValue, error) {
	var raw any
	dec := newNumberDecoder(data)
	if err := dec.Decode(&raw); err != nil {
		return AttributeValue{}, err
	}

	switch v := raw.(type) {
	case bool:
		return AttributeValue{Kind: AttributeBool, Bool: v}, nil
	case string:
		// Fold boolean-as-string once at ingestion.
		switch v {
		case "true":
			return AttributeValue{Kind: AttributeBool, Bool: true}, nil
		case "false":
			return AttributeValue{Kind: AttributeBool, Bool: false}, nil
		}
		return AttributeValue{Kind: AttributeText, Text: v}, nil
	case json.Number:
		return AttributeValue{Kind: AttributeText, Text: v.String()}, nil
	case nil:
		return AttributeValue{Kind: AttributeText, Text: ""}, nil
	case map[string]any:
		if rawValue, ok := v["value"]; ok && allowLabeled {
			return parseLabeledValue(v, rawValue)
		}
		return AttributeValue{Kind: AttributeLocalized, Localized: toLocalizedText(v)}, nil
	}
	return AttributeValue{}, errors.New("models: unsupported attribute value shape")
}

func parseLabeledValue(obj map[string]any, rawValue any) (AttributeValue, error) {
	valueJSON, err := json.Marshal(rawValue)
	if err != nil {
		return AttributeValue{}, err
	}
	inner, err := parseAttributeValue(valueJSON, false)
	if err != nil {
		return AttributeValue{}, err
	}

	out := AttributeValue{Kind: AttributeLabeled, Value: &inner}
	if rawLabel, ok := obj["label"].(map[string]any); ok {
		out.Label = toLocalizedText(rawLabel)
	}
	return out, nil
}

// newNumberDecoder keeps numeric attribute values as json.Number so "1" and
// 1 canonicalize identically instead of going through float formatting.
func newNumberDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func toLocalizedText(obj map[string]any) LocalizedText {
	t := make(LocalizedText, len(obj))
	for lang, v := range obj {
		if s, ok := v.(string); ok {
			t[lang] = s
		}
	}
	return t
}

// MarshalJSON writes the value back in the shape it was read from, so the
// catalog survives a decode/encode round trip by the admin tooling.
func (a AttributeValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AttributeBool:
		return json.Marshal(a.Bool)
	case AttributeText:
		return json.Marshal(a.Text)
	case AttributeLocalized:
		return json.Marshal(a.Localized)
	case AttributeLabeled:
		obj := make(map[string]any, 2)
		if len(a.Label) > 0 {
			obj["label"] = a.Label
		}
		if a.Value != nil {
			obj["value"] = *a.Value
		}
		return json.Marshal(obj)
	}
	return []byte("null"), nil
}
