package lexer

import "strings"

// CharFromCode converts a code to the character a host inserts for it.
// Only the low 16 bits are kept, so values above 0xFFFF wrap around and
// lone surrogates come out as utf8.RuneError once encoded.
func CharFromCode(code int) rune {
	return rune(uint16(code))
}

// Text builds the string produced by inserting each code in turn.
func Text(codes []int) string {
	var sb strings.Builder
	for _, c := range codes {
		sb.WriteRune(CharFromCode(c))
	}
	return sb.String()
}
