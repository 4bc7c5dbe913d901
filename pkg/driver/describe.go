package driver

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"

	"codeinject/pkg/lexer"
)

// Describe formats a code together with the name of the character it
// inserts, e.g. "U+200A HAIR SPACE".
func Describe(code int) string {
	r := lexer.CharFromCode(code)
	name := runenames.Name(r)
	if name == "" {
		name = "<unnamed>"
	}
	if int(r) != code {
		return fmt.Sprintf("U+%04X (from %d) %s", r, code, name)
	}
	return fmt.Sprintf("U+%04X %s", r, name)
}
