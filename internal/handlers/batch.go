package handlers

import "encoding/json"

// normalizeBatch resolves the accepted batch request shapes into a flat
// item list. Callers may submit the batch as a bare array, as a single
// adjustment object, as an object wrapping the array in a "credits" field,
// or as a JSON-encoded string holding any of those. Precedence when a body
// could match several shapes:
//
//  1. top-level JSON array
//  2. object carrying cardholder_id (treated as a batch of one)
//  3. object with a "credits" array field
//  4. JSON-encoded string, decoded once and resolved by rules 1-3
//
// Unrecognized bodies normalize to an empty list; non-object array elements
// become empty items so the result list keeps the input's length.
func normalizeBatch(body []byte) []map[string]any {
	return normalize(body, false)
}

func normalize(body []byte, nested bool) []map[string]any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return []map[string]any{}
	}

	switch v := decoded.(type) {
	case []any:
		return toItems(v)
	case map[string]any:
		if _, ok := v["cardholder_id"]; ok {
			return []map[string]any{v}
		}
		if wrapped, ok := v["credits"].([]any); ok {
			return toItems(wrapped)
		}
	case string:
		if !nested {
			return normalize([]byte(v), true)
		}
	}
	return []map[string]any{}
}

func toItems(elements []any) []map[string]any {
	items := make([]map[string]any, 0, len(elements))
	for _, element := range elements {
		if item, ok := element.(map[string]any); ok {
			items = append(items, item)
			continue
		}
		items = append(items, map[string]any{})
	}
	return items
}
