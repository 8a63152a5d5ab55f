// Package numerals coerces amount values from request payloads into plain
// integers. Payloads arrive with amounts as JSON numbers or as strings that
// may use Persian or Arabic-Indic digit scripts and carry stray characters
// (currency marks, separators, whitespace).
package numerals

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// digitFold maps Persian (U+06F0..U+06F9) and Arabic-Indic (U+0660..U+0669)
// digits to their ASCII equivalents.
var digitFold = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// ToNumber coerces a JSON-decoded value into an int64. Native numbers pass
// through unchanged. Strings are folded to ASCII digits, stripped of
// everything that is not a digit or a leading minus sign, and parsed
// base-10. The second return is false when no integer can be extracted.
func ToNumber(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.IsNaN(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		return parseDigits(n)
	}
	return 0, false
}

func parseDigits(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if d, ok := digitFold[r]; ok {
			b.WriteRune(d)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		// a minus sign only counts when it leads the residual
		if r == '-' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
