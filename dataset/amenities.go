package dataset

import (
	"encoding/json"
	"strings"

	"airbnb-insights/models"
)

// normalizeAmenities turns a record's raw amenities field into a flat list
// of strings. The on-disk encoding is ambiguous, so three shapes are
// tolerated, tried in order:
//
//  1. a JSON array — its string elements are used as-is,
//  2. any other present text (JSON scalars, malformed JSON, plain prose) —
//     the original text split on commas, each piece trimmed, empties dropped,
//  3. a missing field — an empty list.
//
// A JSON parse failure never propagates; it just selects the next shape.
func normalizeAmenities(r models.Record) []string {
	raw, ok := r["amenities"]
	if !ok {
		return nil
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if list, isList := parsed.([]interface{}); isList {
			out := make([]string, 0, len(list))
			for _, item := range list {
				if s, isString := item.(string); isString {
					out = append(out, s)
				}
			}
			return out
		}
	}

	return splitAmenityList(raw)
}

// splitAmenityList treats raw as a comma-separated list.
func splitAmenityList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// hasAllAmenities reports whether want is a subset of have, by exact string
// match. An empty want is vacuously satisfied.
func hasAllAmenities(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, a := range have {
		set[a] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
