package phonefmt

// Output format:
// (AAA) BBB-CCCC
//
//   AAA  = area code    (digits 1-3)
//   BBB  = exchange     (digits 4-6)
//   CCCC = line number  (digits 7-10)
//
// Shorter digit runs format progressively: up to three digits stay bare,
// up to six get the parenthesized area code, up to ten get the full shape.
// The formatter degrades instead of failing.

// maxDigits is the length of a complete number without country code.
const maxDigits = 10

// FormatDisplay formats a phone number for display.
//
// All non-digit characters are stripped first. An eleven-digit run with a
// leading 1 is treated as a country-coded number and the 1 is dropped; any
// other run longer than ten digits is silently truncated to its first ten.
// Empty input (or input with no digits at all) yields the empty string.
//
// Example: "555-123-4567" -> "(555) 123-4567"
// Example: "1 (555) 123-4567" -> "(555) 123-4567"
// Example: "55512" -> "(555) 12"
func FormatDisplay(s string) string {
	d := Digits(s)
	switch {
	case len(d) == maxDigits+1 && d[0] == '1':
		d = d[1:]
	case len(d) > maxDigits:
		d = d[:maxDigits]
	}
	return group(d)
}

// FormatDisplayPtr formats a nullable phone number for display.
// Returns the empty string if s is nil.
func FormatDisplayPtr(s *string) string {
	if s == nil {
		return ""
	}
	return FormatDisplay(*s)
}

// FormatInput reformats the content of a live phone text field.
//
// It is meant to be called on every change, with the field's current raw or
// already-formatted content, and its result written back as the new content.
// Digits beyond the tenth are dropped, and the function is idempotent, so
// feeding its own output back in on the next keystroke never changes it.
//
// Example: "5551" -> "(555) 1"
// Example: "(555) 1" -> "(555) 1"
func FormatInput(s string) string {
	d := Digits(s)
	if len(d) > maxDigits {
		d = d[:maxDigits]
	}
	return group(d)
}

// Complete reports whether s carries a full ten-digit number, counting an
// eleven-digit run with a leading 1 as complete. Callers driving a field
// with FormatInput use this to stop accepting further input.
//
// This is a digit count, not validation; "0000000000" is complete.
func Complete(s string) bool {
	return len(Digits(s)) >= maxDigits
}

// group interleaves a digit run with the fixed punctuation.
// d must hold at most ten digits.
func group(d string) string {
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}
