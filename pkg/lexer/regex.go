package lexer

import (
	"github.com/dlclark/regexp2"
)

// Each pattern splits its input into the consumed prefix (group 1, which
// contains the digits in group 2) and the remainder (group 3). The lazy
// prefix makes the engine settle on the first marker followed by digits.
var notationPatterns = map[Notation]string{
	Unicode: `^(.*?u\+([0-9a-f]{1,4}))(.*)$`,
	Hex:     `^(.*?0x([0-9a-f]{1,4}))(.*)$`,
	Decimal: `^(.*?0d([1-9][0-9]{0,4}))(.*)$`,
}

// RegexpMatcher matches tokens with ECMAScript regular expressions.
//
// It agrees with LiteralMatcher on single-line input. Because the patterns
// are anchored at both ends and '.' does not cross a line feed, a line feed
// before the token or anywhere in the remainder prevents a match.
type RegexpMatcher struct {
	patterns map[Notation]*regexp2.Regexp
}

// NewRegexpMatcher compiles the notation patterns.
func NewRegexpMatcher() *RegexpMatcher {
	m := &RegexpMatcher{patterns: make(map[Notation]*regexp2.Regexp, len(notationPatterns))}
	for n, expr := range notationPatterns {
		m.patterns[n] = regexp2.MustCompile(expr, regexp2.ECMAScript|regexp2.IgnoreCase)
	}
	return m
}

func (m *RegexpMatcher) Match(n Notation, s string) (Span, bool) {
	re, ok := m.patterns[n]
	if !ok {
		return Span{}, false
	}
	// An error is only reported when MatchTimeout elapses, and none is set.
	match, err := re.FindStringMatch(s)
	if err != nil || match == nil {
		return Span{}, false
	}
	digits := match.GroupByNumber(2)
	if digits == nil || digits.Length == 0 {
		return Span{}, false
	}
	digitStart := byteOffset(s, digits.Index)
	return Span{
		Start:      digitStart - len(n.Marker()),
		DigitStart: digitStart,
		End:        digitStart + len(digits.String()),
	}, true
}

// byteOffset converts a rune index, as reported by regexp2, into a byte
// offset in s. Invalid UTF-8 bytes count as one rune each, the same way the
// conversion to []rune treats them.
func byteOffset(s string, runeIndex int) int {
	n := 0
	for i := range s {
		if n == runeIndex {
			return i
		}
		n++
	}
	return len(s)
}
