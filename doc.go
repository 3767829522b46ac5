// Package phonefmt formats North American phone numbers for display and for
// live input masking in user interfaces.
//
// The package normalizes arbitrary free-text input into the canonical
// (AAA) BBB-CCCC representation. Every function is pure and total: malformed,
// oversized, or nonsensical input never fails, it degrades to a best-effort
// partial or truncated formatting, or to the empty string. This is a cosmetic
// formatter, not a validator; it makes no judgment about whether an area code
// or exchange actually exists.
//
// # Display Formatting
//
// FormatDisplay renders a stored number, degrading gracefully for short or
// overlong digit runs:
//
//	phonefmt.FormatDisplay("5551234567")    // "(555) 123-4567"
//	phonefmt.FormatDisplay("1-555-123-4567") // "(555) 123-4567" (leading 1 dropped)
//	phonefmt.FormatDisplay("555")            // "555"
//
// Nullable fields (database NULLs, optional JSON) go through
// FormatDisplayPtr, which maps nil to the empty string.
//
// # Live Input Masking
//
// FormatInput is meant to run on every change of a phone text field, feeding
// its own output back in on the next keystroke. It caps input at ten digits
// and is idempotent, so reformatting already-formatted content is a no-op:
//
//	phonefmt.FormatInput("5551")           // "(555) 1"
//	phonefmt.FormatInput("(555) 1")        // "(555) 1"
//
// Use Complete to decide when to stop accepting further input.
//
// # Raw Digits
//
// Digits strips a formatted number back to its bare digit sequence, e.g.
// before submitting to storage or a backend:
//
//	phonefmt.Digits("(555) 123-4567") // "5551234567"
//
// # Redaction
//
// Mask and Last4 redact numbers for logs and display hints without ever
// exposing more than the trailing four digits.
package phonefmt
