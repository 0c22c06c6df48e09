package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// numericPattern validates a cleaned-up string before float parsing.
// Matches integers, decimals, and scientific notation.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// currencySymbols are stripped during unformatting.
var currencySymbols = []string{"$", "€", "£", "¥"}

// unformatNumber parses a human-formatted number string: grouping
// separators, currency symbols, accounting negatives "(123.45)", and a
// trailing percent sign (interpreted as a fraction). Returns false when the
// cleaned string is not numeric.
func unformatNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if !numericPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		f = -f
	}
	if percent {
		f /= 100
	}
	return f, true
}

// FormatNumber renders a float with grouping separators and at most
// maxPrecision decimal places. Non-finite input formats to an empty string.
// Precision 0 rounds to the nearest integer before formatting. When
// keepTrailingZeros is set the decimal count is fixed instead of trimmed.
func FormatNumber(v float64, maxPrecision int, keepTrailingZeros bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if maxPrecision <= 0 {
		return humanize.Comma(int64(math.Round(v)))
	}
	if keepTrailingZeros {
		return humanize.FormatFloat("#,###."+strings.Repeat("#", maxPrecision), v)
	}
	return humanize.CommafWithDigits(v, maxPrecision)
}

// CountDecimals returns the number of significant fractional digits of n.
// Exponential representations count in expanded fixed-point form; trailing
// zeros do not count.
func CountDecimals(n float64) int {
	if n == math.Trunc(n) || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	exp := decimal.NewFromFloat(n).Exponent()
	if exp >= 0 {
		return 0
	}
	return int(-exp)
}

// TruncateDecimals cuts n toward zero to the given number of fractional
// digits without rounding. Decimal arithmetic keeps the result free of
// binary floating-point drift.
func TruncateDecimals(n float64, decimals int) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	return decimal.NewFromFloat(n).Truncate(int32(decimals)).InexactFloat64()
}
