package lexer

import (
	"slices"
	"strings"
	"testing"
)

var matcherInputs = []string{
	"U+0061 U+0062 Insert Unicode chars.jsx",
	"U+200A Insert a hair space.jsx",
	"Insert the letter a with code 0d65.jsx",
	"0x61 0x61",
	"0x610x61",
	"0d99999",
	"0d123456",
	"u+12345",
	"u+20eF 0X61 0D97",
	"0x0000",
	"0x0 0x41",
	"u+ then u+41",
	"0d0 0d7",
	"00d5",
	"0x61 u+62 0x63",
	"0d65 0x66",
	"é U+00E9 é",
	"nothing at all",
	"",
}

func TestRegexpMatcherAgreesWithLiteral(t *testing.T) {
	re := NewRegexpMatcher()

	for _, input := range matcherInputs {
		t.Run(input, func(t *testing.T) {
			for _, n := range Notations {
				litSpan, litOK := LiteralMatcher{}.Match(n, input)
				reSpan, reOK := re.Match(n, input)
				if litOK != reOK {
					t.Fatalf("%s: literal matched=%v, regexp matched=%v", n, litOK, reOK)
				}
				if litOK && litSpan != reSpan {
					t.Errorf("%s: literal span=%+v, regexp span=%+v", n, litSpan, reSpan)
				}
			}

			lit := Scan(input)
			rx := ScanWith(input, Options{Matcher: re})
			if !slices.Equal(lit.Codes, rx.Codes) || lit.Stop != rx.Stop || lit.Remainder != rx.Remainder {
				t.Errorf("results differ: literal=%+v regexp=%+v", lit, rx)
			}
		})
	}
}

func TestRegexpMatcherLineBreaks(t *testing.T) {
	re := NewRegexpMatcher()

	tests := []struct {
		name    string
		input   string
		literal []int
		regexp  []int
	}{
		{"Line break in remainder", "u+41\nmore", []int{0x41}, nil},
		{"Line break before token", "line\nu+41 tail", []int{0x41}, nil},
		{"Single line", "u+41 tail", []int{0x41}, []int{0x41}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scan(tt.input).Codes; !slices.Equal(got, tt.literal) {
				t.Errorf("literal codes wrong. expected=%v, got=%v", tt.literal, got)
			}
			if got := ScanWith(tt.input, Options{Matcher: re}).Codes; !slices.Equal(got, tt.regexp) {
				t.Errorf("regexp codes wrong. expected=%v, got=%v", tt.regexp, got)
			}
		})
	}
}

func TestByteOffset(t *testing.T) {
	s := "é\xffu+41"
	// é is two bytes, the stray byte is one rune.
	if got := byteOffset(s, 2); got != 3 {
		t.Errorf("byteOffset(2) = %d, expected 3", got)
	}
	if got := byteOffset(s, 100); got != len(s) {
		t.Errorf("byteOffset past the end = %d, expected %d", got, len(s))
	}

	span, ok := NewRegexpMatcher().Match(Unicode, s)
	if !ok || span.Digits(s) != "41" || span.Start != 3 {
		t.Errorf("unexpected span %+v (ok=%v)", span, ok)
	}
}

func FuzzScan(f *testing.F) {
	for _, input := range matcherInputs {
		f.Add(input)
	}
	re := NewRegexpMatcher()

	f.Fuzz(func(t *testing.T, input string) {
		res := Scan(input)

		prev := 0
		for _, tok := range res.Tokens {
			if tok.Start < prev || tok.End <= tok.Start {
				t.Fatalf("tokens out of order: %+v", res.Tokens)
			}
			if tok.Value == 0 {
				t.Fatalf("zero code emitted: %+v", tok)
			}
			prev = tok.End
		}
		if !strings.HasSuffix(input, res.Remainder) {
			t.Fatalf("remainder %q is not a suffix of %q", res.Remainder, input)
		}

		again := Scan(input)
		if !slices.Equal(res.Codes, again.Codes) {
			t.Fatalf("scan is not repeatable: %v then %v", res.Codes, again.Codes)
		}

		if !isSingleLineASCII(input) {
			return
		}
		rx := ScanWith(input, Options{Matcher: re})
		if !slices.Equal(res.Codes, rx.Codes) {
			t.Fatalf("engines disagree on %q: literal=%v regexp=%v", input, res.Codes, rx.Codes)
		}
	})
}

func isSingleLineASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] == '\n' || s[i] == '\r' {
			return false
		}
	}
	return true
}
