package lexer

// Notation identifies one of the character-code spellings recognized in a
// script name.
type Notation int

const (
	Unicode Notation = iota // u+XXXX, 1-4 hex digits
	Hex                     // 0xXXXX, 1-4 hex digits
	Decimal                 // 0dNNNNN, 1-5 decimal digits, no leading zero
)

// Notations lists the notations in the order they are tried on every pass.
// The first notation that matches anywhere in the remaining input wins, even
// if another notation matches further to the left.
var Notations = []Notation{Unicode, Hex, Decimal}

func (n Notation) String() string {
	switch n {
	case Unicode:
		return "Unicode"
	case Hex:
		return "Hex"
	case Decimal:
		return "Decimal"
	default:
		return "Notation(?)"
	}
}

// Marker returns the literal (lower case) prefix that introduces a token.
func (n Notation) Marker() string {
	switch n {
	case Unicode:
		return "u+"
	case Hex:
		return "0x"
	case Decimal:
		return "0d"
	default:
		return ""
	}
}

// Base returns the numeric base the digits are written in.
func (n Notation) Base() int {
	if n == Decimal {
		return 10
	}
	return 16
}

// MaxDigits returns the longest digit run that belongs to a single token.
func (n Notation) MaxDigits() int {
	if n == Decimal {
		return 5
	}
	return 4
}

// isFirstDigit reports whether ch may open the digit run of a token.
// Decimal tokens never start with a zero.
func (n Notation) isFirstDigit(ch byte) bool {
	if n == Decimal {
		return '1' <= ch && ch <= '9'
	}
	return isDigitForBase(ch, n.Base())
}

// isDigit reports whether ch may continue the digit run of a token.
func (n Notation) isDigit(ch byte) bool {
	return isDigitForBase(ch, n.Base())
}

// isDigit checks if the character is a decimal digit.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isHexDigit checks if the character is a hexadecimal digit (0-9, a-f, A-F).
func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// isDigitForBase checks if the character is a valid digit for the given base.
func isDigitForBase(ch byte, base int) bool {
	switch base {
	case 16:
		return isHexDigit(ch)
	case 10:
		return isDigit(ch)
	default:
		return false
	}
}

// lower folds an ASCII letter to lower case.
func lower(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
