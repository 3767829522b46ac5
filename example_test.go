package phonefmt_test

import (
	"fmt"

	"github.com/ai8future/phonefmt"
)

func Example() {
	// Format a stored number for display
	fmt.Println(phonefmt.FormatDisplay("5551234567"))

	// A leading country code 1 is dropped
	fmt.Println(phonefmt.FormatDisplay("+1 555-123-4567"))

	// Strip a formatted number back to raw digits before storage
	fmt.Println(phonefmt.Digits("(555) 123-4567"))

	// Output:
	// (555) 123-4567
	// (555) 123-4567
	// 5551234567
}

func ExampleFormatInput() {
	// Simulate a user typing into a text field: on every change, format
	// the field's current content and write the result back.
	field := ""
	for _, key := range []string{"5", "5", "5", "1", "2", "3", "4"} {
		field = phonefmt.FormatInput(field + key)
	}
	fmt.Println(field)

	// Reformatting the field's own content is a no-op
	fmt.Println(phonefmt.FormatInput(field))

	// Output:
	// (555) 123-4
	// (555) 123-4
}

func ExampleFormatDisplayPtr() {
	var missing *string
	number := "555-123-4567"

	fmt.Printf("%q\n", phonefmt.FormatDisplayPtr(missing))
	fmt.Printf("%q\n", phonefmt.FormatDisplayPtr(&number))

	// Output:
	// ""
	// "(555) 123-4567"
}

func ExampleMask() {
	fmt.Println(phonefmt.Mask("(555) 123-4567"))

	// Output: (•••) •••-4567
}
