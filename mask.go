package phonefmt

import "strings"

// maskChar replaces redacted digits. A bullet rather than an asterisk so
// masked numbers read as intentionally hidden, not as wildcards.
const maskChar = "•"

// Mask redacts a phone number for logging, keeping only the trailing four
// digits. A complete ten-digit number (after the same leading-1 adjustment
// and truncation as FormatDisplay) keeps its display shape:
//
//	Mask("(555) 123-4567") -> "(•••) •••-4567"
//
// Shorter runs of five or more digits mask everything but the last four;
// four digits or fewer are masked entirely. No digits yields the empty
// string.
func Mask(s string) string {
	d := Digits(s)
	switch {
	case len(d) == maxDigits+1 && d[0] == '1':
		d = d[1:]
	case len(d) > maxDigits:
		d = d[:maxDigits]
	}

	switch {
	case len(d) == 0:
		return ""
	case len(d) == maxDigits:
		return "(" + strings.Repeat(maskChar, 3) + ") " + strings.Repeat(maskChar, 3) + "-" + d[6:]
	case len(d) <= 4:
		return strings.Repeat(maskChar, len(d))
	default:
		return strings.Repeat(maskChar, len(d)-4) + d[len(d)-4:]
	}
}

// Last4 returns the trailing digits of s, at most four. Useful for display
// hints ("number ending in 4567") that must never expose a full number.
func Last4(s string) string {
	d := Digits(s)
	if len(d) <= 4 {
		return d
	}
	return d[len(d)-4:]
}
