package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeKey turns an attribute-table cell into a lookup key.
func NormalizeKey(s string) string {
	s = strings.Trim(s, " \n\t")
	return strings.ToLower(s)
}

// ParseAmount parses a comma-grouped number like "1,500" or "45.2".
func ParseAmount(s string) (float64, bool) {
	s = strings.Trim(s, " \n\t")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseUsdAmount parses a secondary-currency label like "~$45.20",
// tolerating the approx prefix, currency symbol and thousands commas.
func ParseUsdAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "~", "")
	return ParseAmount(s)
}

// TrimRarityToken drops the trailing rarity percentage from attribute
// values like "Vintage 3%". Cells without a space are kept whole.
//
// Values that themselves contain spaces ("Deep Space 3%") lose their last
// word too; the site renders exactly one trailing token so this matches
// what the page shows.
func TrimRarityToken(s string) string {
	idx := strings.LastIndex(s, " ")
	if idx < 0 {
		return s
	}
	return s[:idx]
}

// IssuedValues splits an issued cell like "1,234 of 10,000" and keeps the
// values, skipping the unit words between them. Assumes the strict
// "value unit value unit ..." alternation the site renders; anything else
// will shift which tokens are kept.
func IssuedValues(s string) []string {
	tokens := whitespaceRegex.Split(strings.Trim(s, " \n\t"), -1)
	values := []string{}
	for i := 0; i < len(tokens); i += 2 {
		if tokens[i] == "" {
			continue
		}
		values = append(values, tokens[i])
	}
	return values
}
