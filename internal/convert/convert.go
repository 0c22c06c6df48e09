// Package convert holds the total coercion functions behind every column
// kind. Each converter accepts an arbitrary value and never panics: the
// outcome is encoded in a three-way Result sentinel the caller checks.
package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Result classifies the outcome of a coercion.
type Result int

const (
	// OK means the input was interpreted as the target type.
	OK Result = iota
	// Missing means the input was absent or empty. This is not an error.
	Missing
	// Invalid means the input was present but could not be interpreted.
	Invalid
)

// SafeString coerces any value to a display string. Scalars convert
// directly; structured values serialize to compact JSON with integer-like
// values coerced to ordinary numbers; values that cannot serialize fall
// back to a bracketed type name.
func SafeString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	if b, err := json.Marshal(normalizeNumbers(v)); err == nil {
		return string(b)
	}
	return fmt.Sprintf("[%T]", v)
}

// SafeBool interprets a value as a boolean. Booleans pass through; any
// other value is stringified, trimmed, and matched case-insensitively
// against fixed literal sets.
func SafeBool(v any) (bool, Result) {
	switch t := v.(type) {
	case nil:
		return false, Missing
	case bool:
		return t, OK
	}
	s := strings.ToLower(strings.TrimSpace(SafeString(v)))
	switch s {
	case "":
		return false, Missing
	case "true", "t", "yes", "y", "on", "1":
		return true, OK
	case "false", "f", "no", "n", "off", "0":
		return false, OK
	}
	return false, Invalid
}

// SafeNumber interprets a value as a float64. Strings pass through a
// locale-aware unformat step that strips grouping separators and currency
// or percent notation; when that yields nothing the original value falls
// through to generic numeric coercion, which may legitimately produce
// Invalid with a NaN payload. A single-element numeric buffer is unwrapped
// to its scalar; any other sequence is Invalid.
func SafeNumber(v any) (float64, Result) {
	if v == nil {
		return 0, Missing
	}
	if u, ok := unwrapScalarBuffer(v); ok {
		v = u
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return math.NaN(), Invalid
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, Missing
		}
		if f, ok := unformatNumber(s); ok {
			return f, OK
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN(), Invalid
	}
	return f, OK
}

// unwrapScalarBuffer unwraps a one-element numeric slice or array to its
// scalar element.
func unwrapScalarBuffer(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != 1 {
		return nil, false
	}
	elem := rv.Index(0)
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return elem.Interface(), true
	}
	return nil, false
}

// Unit thresholds for interpreting a bare number as a UNIX timestamp.
// Magnitude decides the unit; everything normalizes to seconds.
const (
	nanosThreshold  = 1e18
	microsThreshold = 1e15
	millisThreshold = 1e12
)

// utcLayouts are tried in order when parsing a calendar date-time string.
var utcLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"20060102",
}

// timeOfDayLayouts are tried when the string is a bare clock time. Matches
// anchor on the UNIX epoch day so results stay deterministic.
var timeOfDayLayouts = []string{
	"15:04:05.000",
	"15:04:05",
	"15:04",
}

// SafeDate interprets a value as a UTC instant. Valid time.Time values
// pass through (the zero value counts as invalid). Numeric input is a UNIX
// timestamp whose unit is disambiguated by magnitude. Strings are tried as
// timestamps, then as UTC calendar date-times, then as bare times of day.
func SafeDate(v any) (time.Time, Result) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, Missing
	case time.Time:
		if t.IsZero() {
			return time.Time{}, Invalid
		}
		return t.UTC(), OK
	}

	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return time.Time{}, Missing
	}

	if f, err := cast.ToFloat64E(v); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return fromTimestamp(f), OK
	}

	s := strings.TrimSpace(SafeString(v))
	if s == "" {
		return time.Time{}, Missing
	}
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, OK
		}
	}
	for _, layout := range timeOfDayLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return time.Date(1970, time.January, 1,
				t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), OK
		}
	}
	return time.Time{}, Invalid
}

// fromTimestamp converts a numeric UNIX timestamp to a UTC instant,
// normalizing nanosecond, microsecond, and millisecond scales to seconds.
func fromTimestamp(f float64) time.Time {
	abs := math.Abs(f)
	switch {
	case abs >= nanosThreshold:
		f /= 1e9
	case abs >= microsThreshold:
		f /= 1e6
	case abs >= millisThreshold:
		f /= 1e3
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// normalizeNumbers walks a decoded value and replaces integer-like leaves
// (json.Number, wide ints) with ordinary float64 numbers so serialized
// output matches what the grid renderer expects.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeNumbers(val)
		}
		return out
	}
	return v
}
