package lexer

import (
	"iter"
	"strconv"
)

// Token is a character code found in the input.
type Token struct {
	Notation Notation
	Digits   string // digit run as written, without the marker
	Value    int    // Digits parsed in the notation's base; zero if unparseable
	Start    int    // byte offset of the marker in the original input
	End      int    // byte offset just after the last digit
}

// Literal returns the token text, marker included.
func (t Token) Literal(input string) string {
	return input[t.Start:t.End]
}

// Stop tells why a scan ended.
type Stop int

const (
	// StopNoMatch: no notation matches the remaining input.
	StopNoMatch Stop = iota
	// StopInvalid: a token matched but its value was zero or unparseable.
	StopInvalid
	// StopExhausted: the last token ran to the end of the input.
	StopExhausted
)

func (s Stop) String() string {
	switch s {
	case StopNoMatch:
		return "no match"
	case StopInvalid:
		return "invalid code"
	case StopExhausted:
		return "end of input"
	default:
		return "Stop(?)"
	}
}

// Result is the outcome of scanning one input.
type Result struct {
	Codes     []int   // emitted code points, in discovery order
	Tokens    []Token // the tokens the codes came from
	Stop      Stop
	Remainder string // unscanned input when the scan ended
	Invalid   *Token // token that halted (or was skipped by) the scan, if any
}

// Found reports whether at least one code point was emitted.
func (r Result) Found() bool {
	return len(r.Codes) > 0
}

// Options configures a Scanner. The zero value scans with LiteralMatcher and
// halts on the first invalid token.
type Options struct {
	Matcher Matcher

	// SkipInvalid keeps scanning past a token whose value is zero or
	// unparseable instead of halting there.
	SkipInvalid bool
}

// Scanner extracts character codes from a single input string.
// It holds no state between scans, so its sequences can be ranged over
// any number of times.
type Scanner struct {
	input string
	opts  Options
}

// NewScanner creates a Scanner over input.
func NewScanner(input string, opts Options) *Scanner {
	if opts.Matcher == nil {
		opts.Matcher = LiteralMatcher{}
	}
	return &Scanner{input: input, opts: opts}
}

// Input returns the string being scanned.
func (s *Scanner) Input() string {
	return s.input
}

// Tokens yields every valid token in discovery order. Each range over the
// sequence restarts from the beginning of the input.
func (s *Scanner) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s.run(yield)
	}
}

// Codes yields the code point of every valid token.
func (s *Scanner) Codes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for tok := range s.Tokens() {
			if !yield(tok.Value) {
				return
			}
		}
	}
}

// Result runs the scan to completion.
func (s *Scanner) Result() Result {
	var res Result
	res.Stop, res.Remainder, res.Invalid = s.run(func(tok Token) bool {
		res.Codes = append(res.Codes, tok.Value)
		res.Tokens = append(res.Tokens, tok)
		return true
	})
	return res
}

// run drives the scan loop, handing each valid token to yield. It returns
// the reason the scan ended, the unscanned input, and the last invalid token.
func (s *Scanner) run(yield func(Token) bool) (Stop, string, *Token) {
	rest := s.input
	offset := 0
	var invalid *Token
	for {
		tok, ok := s.next(rest, offset)
		if !ok {
			return StopNoMatch, rest, invalid
		}
		// Every pass drops at least the marker and one digit.
		rest = s.input[tok.End:]
		offset = tok.End

		if tok.Value == 0 {
			t := tok
			invalid = &t
			if !s.opts.SkipInvalid {
				return StopInvalid, rest, invalid
			}
			continue
		}
		if !yield(tok) {
			return StopNoMatch, rest, invalid
		}
		if rest == "" {
			return StopExhausted, rest, invalid
		}
	}
}

// next finds the token for one pass: the first notation, in priority order,
// that matches anywhere in rest. offset is the position of rest in the input.
func (s *Scanner) next(rest string, offset int) (Token, bool) {
	for _, n := range Notations {
		span, ok := s.opts.Matcher.Match(n, rest)
		if !ok || span.DigitStart >= span.End {
			continue
		}
		digits := span.Digits(rest)
		tok := Token{
			Notation: n,
			Digits:   digits,
			Start:    offset + span.Start,
			End:      offset + span.End,
		}
		if v, err := strconv.ParseInt(digits, n.Base(), 64); err == nil {
			tok.Value = int(v)
		}
		return tok, true
	}
	return Token{}, false
}

// Scan extracts the code points embedded in input using LiteralMatcher.
func Scan(input string) Result {
	return NewScanner(input, Options{}).Result()
}

// ScanWith extracts the code points embedded in input.
func ScanWith(input string, opts Options) Result {
	return NewScanner(input, opts).Result()
}

// ScanCodes returns the code points embedded in input, or an empty slice
// when there are none.
func ScanCodes(input string) []int {
	codes := Scan(input).Codes
	if codes == nil {
		return []int{}
	}
	return codes
}
