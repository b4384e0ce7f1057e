package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// nonNumericRegexp strips everything that is not a digit or a decimal point,
// so currency symbols and thousands separators fall away before parsing.
var nonNumericRegexp = regexp.MustCompile(`[^0-9.]`)

// parsePrice coerces currency-formatted text like "$1,200.00" into a float.
// The boolean reports whether the text held a usable number at all.
func parsePrice(raw string) (float64, bool) {
	cleaned := nonNumericRegexp.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseNumber coerces plain numeric text such as a bedroom count or review
// score. Unlike parsePrice nothing is stripped first, so text like "N/A"
// simply fails.
func parseNumber(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
