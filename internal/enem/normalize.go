package enem

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeJSON decodes with UseNumber so numeric fields survive round-tripping
// without float conversion.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// Normalize reshapes a raw catalog response into a flat list of records. The
// API envelopes collections under an "items" field on paginated endpoints and
// returns bare arrays elsewhere, so both shapes collapse to the same list.
// Precedence: items envelope, then bare array, then singleton wrap.
func Normalize(data []byte) ([]any, error) {
	var value any
	if err := decodeJSON(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return normalizeValue(value), nil
}

func normalizeValue(value any) []any {
	switch v := value.(type) {
	case map[string]any:
		items, present := v["items"]
		if !present {
			return []any{v}
		}
		switch list := items.(type) {
		case []any:
			return list
		case nil:
			// Envelope with a null collection, an empty catalog page.
			return []any{}
		default:
			// Envelope whose items field is not a collection. Treat the
			// whole object as a single record rather than guessing.
			return []any{v}
		}
	case []any:
		return v
	default:
		return []any{value}
	}
}
