package phonefmt

import "strings"

// Digits returns the decimal digits of s in their original order, with every
// other character removed. Only ASCII digits (0-9) count; Unicode digit runes
// such as Arabic-Indic numerals are dropped along with punctuation and
// whitespace.
//
// Example: "(555) 123-4567" -> "5551234567"
// Example: "+1 555.123.4567" -> "15551234567"
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
