// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null

	BlockComment // comment: /* ... */
	LineComment  // comment: // ... <LF>
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",

	BlockComment: "block comment",
	LineComment:  "line comment",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an input stream.  Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	r        *bufio.Reader
	comments bool         // allow comments
	buf      bytes.Buffer // current token
	tok      Token
	err      error

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// AllowComments configures the scanner to report (true) or reject (false)
// comment tokens. Comments are a non-standard exension of the JSON spec.  If
// enabled, C++ style block comments (/* ... */) and line comments (// ...)
// are recognized and emitted as tokens.
func (s *Scanner) AllowComments(ok bool) { s.comments = ok }

// Next advances s to the next token of the input and reports whether a token
// is available. It returns false at the end of input or in case of error; use
// Err to distinguish the two.
func (s *Scanner) Next() bool {
	s.buf.Reset()
	s.err = nil
	s.tok = Invalid
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	for {
		ch, err := s.rune()
		if err == io.EOF {
			return false
		} else if err != nil {
			s.fail(err)
			return false
		}

		// Discard whitespace.
		if isSpace(ch) {
			if ch == '\n' {
				s.eline++
				s.ecol = 0
			}
			s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t
			return true
		}

		switch {
		case isNumStart(ch):
			return s.scanNumber(ch) == nil
		case ch == '"':
			return s.scanString(ch) == nil
		case ch == '/' && s.comments:
			return s.scanComment(ch) == nil
		}

		// Handle constants: true, false, null
		var want mem.RO
		switch ch {
		case 't':
			s.tok, want = True, mem.S("true")
		case 'f':
			s.tok, want = False, mem.S("false")
		case 'n':
			s.tok, want = Null, mem.S("null")
		default:
			s.unrune()
			s.failf("unexpected %q", ch)
			return false
		}
		if err := s.scanName(ch); err != nil {
			return false
		} else if got := mem.B(s.buf.Bytes()); !got.Equal(want) {
			s.failf("unknown constant %q", got.StringCopy())
			return false
		}
		return true // OK, token is already set
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next, or nil if Next stopped at the
// end of the input.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token.  The return value is
// only valid until the next call of Next. The caller must copy the contents of
// the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }


// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf("unterminated string")
		} else if err != nil {
			return s.fail(err)
		} else if ch == open && !esc {
			s.buf.WriteRune(ch)
			s.tok = String
			return nil
		}
		if esc {
			// We are awaiting the completion of a \-escape.
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.buf.WriteByte(byte(ch))
			case 'u':
				s.buf.WriteByte(byte(ch))
				if err := s.readHex4(); err != nil {
					return s.failf("invalid Unicode escape: %w", err)
				}
			default:
				return s.failf("invalid %q after escape", ch)
			}
			esc = false
		} else if ch < ' ' {
			return s.failf("unescaped control %q in string", ch)
		} else if ch > unicode.MaxRune {
			return s.failf("invalid Unicode rune %q", ch)
		} else {
			s.buf.WriteRune(ch)
			esc = ch == '\\'
		}
	}
}

func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)

	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
	}

	// Consume the remainder of an integer.
	_, ch, err := s.readWhile(isDigit)
	if err == io.EOF {
		if hasExtraLeadingZeroes(s.buf.Bytes()) {
			return s.failf("extra leading zeroes")
		}
		s.tok = Integer
		return nil
	} else if err != nil {
		return s.fail(err)
	}

	// Check for extra leading zeroes, which are disallowed by the JSON spec.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.buf.Bytes()) {
		return s.failf("extra leading zeroes")
	}

	// If a decimal point follows, consume a fractional part.
	isFloat := false
	if ch == '.' {
		s.buf.WriteRune(ch)
		var nr int
		nr, ch, err = s.readWhile(isDigit)
		if err != nil && err != io.EOF {
			return s.fail(err)
		} else if nr == 0 {
			return s.failf("no digits after decimal point")
		} else if err == io.EOF {
			s.tok = Number
			return nil
		}
		isFloat = true
	}

	// If an exponent follows, consume it.
	if ch != 'E' && ch != 'e' {
		s.unrune()
		if isFloat {
			s.tok = Number
		} else {
			s.tok = Integer
		}
		return nil
	}

	s.buf.WriteRune(ch)
	ch, err = s.require(isExpStart, "sign or digit")
	if err != nil {
		return err
	}
	s.buf.WriteRune(ch)
	nr, _, err := s.readWhile(isDigit)
	if nr == 0 && (ch == '-' || ch == '+') {
		// It's OK to have no digits if the previous rune was not a sign,
		// otherwise we have to have at least one.
		return s.failf("missing exponent digits")
	} else if err == io.EOF {
		s.tok = Number
		return nil
	} else if err != nil {
		return s.fail(err)
	}
	s.unrune()
	s.tok = Number
	return nil
}

func (s *Scanner) scanComment(first rune) error {
	s.buf.WriteRune(first)
	ch, err := s.rune()
	if err == io.EOF {
		return s.failf("incomplete comment")
	} else if err != nil {
		return s.fail(err)
	}
	switch ch {
	case '/': // line comment to LF
		s.buf.WriteRune(ch)
		_, end, err := s.readWhile(isNotLF)
		if err == nil {
			s.buf.WriteRune(end)
			s.eline++
			s.ecol = 0
		} else if err != io.EOF {
			return s.fail(err)
		}
		s.tok = LineComment
		return nil

	case '*': // block comment
		s.buf.WriteRune(ch)
		for {
			_, end, err := s.readWhile(isNotStar)
			if err == io.EOF {
				return s.failf("unterminated block comment")
			} else if err != nil {
				return s.fail(err)
			}
			s.buf.WriteRune(end) // end == '*'

			// Check whether we have "*/", which would end the comment.
			next, err := s.rune()
			if err == io.EOF {
				return s.failf("unterminated block comment")
			} else if err != nil {
				return s.fail(err)
			}
			if next == '/' {
				s.buf.WriteRune(next)
				s.tok = BlockComment
				return nil
			}

			// We saw "*" but not "/", so keep scanning for the end of the block.
			s.unrune()
		}

	default:
		s.unrune()
		return s.failf("invalid %q in comment", ch)
	}
}

func (s *Scanner) scanName(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isNameRune)
	if err == io.EOF {
		return nil
	} else if err != nil {
		return s.fail(err)
	}
	s.unrune()
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	s.ecol += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.ecol -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// require reads a single rune matching f from the input, or returns an error
// mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err == io.EOF {
		return 0, s.failf("want %s, got end of input", label)
	} else if err != nil {
		return 0, s.failf("want %s, got error: %w", label, err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf("got %q, want %s", ch, label)
	}
	return ch, nil
}

// readWhile consumes runes matching f from the input until EOF or until a rune
// not matching f is found. The first non-matching rune (if any) is returned.
// It is the caller's responsibility to unread this rune, if desired.
// The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		if ch == '\n' {
			s.eline++
			s.ecol = 0
		}
		nr++
	}
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for range 4 {
		ch, err := s.rune()
		if err != nil {
			return err
		} else if !isHexDigit(ch) {
			return fmt.Errorf("not a hex digit: %q", ch)
		}
		s.buf.WriteRune(ch)
	}
	return nil
}

// posError is a lexical error annotated with the byte offset at which it was
// detected.
type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

// Offset reports the byte offset of the error in the input.
func (p posError) Offset() int { return p.pos }

func (s *Scanner) fail(err error) error {
	s.err = posError{s.end, err}
	return s.err
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.fail(fmt.Errorf(msg, args...))
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNotStar(ch rune) bool  { return ch != '*' }
func isNotLF(ch rune) bool    { return ch != '\n' }
func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

// isNameRune admits letters of either case, so that a miscased constant like
// "True" is reported as a whole word.
func isNameRune(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes, disallowed by the spec.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
