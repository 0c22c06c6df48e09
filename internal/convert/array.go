package convert

import (
	"encoding/json"
	"strings"
)

// SafeArray normalizes any value to an ordered sequence. Scalars become
// single-element sequences, bracketed strings parse as JSON, other strings
// split on commas (deliberately without escaping support), and everything
// else round-trips through JSON with safe-string fallbacks. The function is
// total: malformed input degrades, it never fails.
func SafeArray(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case bool:
		return []any{t}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return []any{t}
	case string:
		return arrayFromString(t)
	}

	data, err := json.Marshal(normalizeNumbers(v))
	if err != nil {
		return []any{SafeString(v)}
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return []any{SafeString(v)}
	}
	elems, ok := decoded.([]any)
	if !ok {
		return []any{SafeString(v)}
	}
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = primitiveOrString(e)
	}
	return out
}

func arrayFromString(s string) []any {
	if s == "" {
		return []any{}
	}
	if trimmed := strings.TrimSpace(s); strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var elems []any
		if err := json.Unmarshal([]byte(trimmed), &elems); err != nil {
			// Not valid JSON after all; the literal string is the sole element.
			return []any{s}
		}
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = primitiveOrString(e)
		}
		return out
	}
	parts := strings.Split(s, ",")
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out
}

// primitiveOrString keeps JSON primitives as-is and replaces nested
// structures by their safe-string form.
func primitiveOrString(v any) any {
	switch v.(type) {
	case nil, string, bool, float64:
		return v
	}
	return SafeString(v)
}
