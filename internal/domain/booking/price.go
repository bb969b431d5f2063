package booking

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	markupPattern = regexp.MustCompile(`<[^>]+>`)
	rangePattern  = regexp.MustCompile(`([\d.,]+)\s*-\s*([\d.,]+)`)
	numberPattern = regexp.MustCompile(`[\d.,]+`)
)

// NormalizePrice turns a storefront price expression into plain VND
// integers: "<strong>Giá:</strong> 1.5 - 2.5 triệu" becomes
// "1500000 - 2500000", "3.500.000 VND/tháng" becomes "3500000", and
// anything without digits degrades to "0". The function is idempotent:
// a value that already is a full currency amount passes through untouched
// because the millions heuristic below no longer fires on it.
func NormalizePrice(raw string) string {
	text := markupPattern.ReplaceAllString(raw, "")

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		return normalizeAmount(m[1]) + " - " + normalizeAmount(m[2])
	}

	token := numberPattern.FindString(text)
	if token == "" {
		return "0"
	}
	return normalizeAmount(token)
}

// normalizeAmount resolves one numeric token to a whole-VND amount.
// Short tokens ("1.5", "15", "2") are prices quoted in millions ("triệu")
// and get scaled; anything with three or more digits and a value of at
// least 100 is taken as a full amount already.
func normalizeAmount(token string) string {
	digits := stripNonDigits(token)
	if digits == "" {
		return "0"
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
	if err != nil {
		// Dotted thousands ("1.500.000") don't parse as a float; the
		// digit run is already the full amount.
		value, _ = strconv.ParseFloat(digits, 64)
	}

	if len(digits) <= 2 || value < 100 {
		return strconv.FormatInt(int64(value*1_000_000), 10)
	}
	return digits
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
