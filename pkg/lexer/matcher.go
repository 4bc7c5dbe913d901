package lexer

// Span locates a token inside the string handed to a Matcher.
// All offsets are byte offsets.
type Span struct {
	Start      int // first byte of the marker
	DigitStart int // first byte of the digit run
	End        int // byte after the last digit
}

// Digits returns the digit run of the span within s.
func (sp Span) Digits(s string) string {
	return s[sp.DigitStart:sp.End]
}

// Matcher finds the first token of a single notation in s.
// Implementations must return a span with a non-empty digit run.
type Matcher interface {
	Match(n Notation, s string) (Span, bool)
}

// LiteralMatcher searches for the leftmost occurrence of a notation's marker
// that is followed by a valid first digit, then takes the bounded run of
// digits after it. Markers are compared case-insensitively.
type LiteralMatcher struct{}

func (LiteralMatcher) Match(n Notation, s string) (Span, bool) {
	marker := n.Marker()
	if marker == "" {
		return Span{}, false
	}
	for i := 0; i+len(marker) < len(s); i++ {
		if !hasMarkerAt(s, i, marker) {
			continue
		}
		digitStart := i + len(marker)
		if !n.isFirstDigit(s[digitStart]) {
			continue
		}
		end := digitStart + 1
		for end < len(s) && end-digitStart < n.MaxDigits() && n.isDigit(s[end]) {
			end++
		}
		return Span{Start: i, DigitStart: digitStart, End: end}, true
	}
	return Span{}, false
}

func hasMarkerAt(s string, i int, marker string) bool {
	for k := 0; k < len(marker); k++ {
		if lower(s[i+k]) != marker[k] {
			return false
		}
	}
	return true
}
