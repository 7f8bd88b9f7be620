// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrExtraInput is wrapped by the error reported by ParseSingle when the input
// contains further tokens after a complete value.
var ErrExtraInput = errors.New("extra input after value")

// An Anchor represents a location in source text. The methods of an Anchor
// will report the location, token type, and contents of the anchor.
type Anchor interface {
	Token() Token       // Returns the token type of the anchor
	Text() []byte       // Returns a view of the raw (undecoded) text of the anchor
	Location() Location // Returns the full location of the anchor
}

// A Handler handles events from parsing an input stream.  If a method reports
// an error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced.
//
// The Anchor argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain information about the
// location after it returns, it must copy the relevant data.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Begin a new object member, whose key is at loc.  The text of the key is
	// still quoted; the handler is responsible for unescaping key values if the
	// plain string is required (see jsurf.Unquote).
	BeginMember(loc Anchor) error

	// End the current object member giving the location and type of the token
	// that terminated the member (either Comma or RBrace).
	EndMember(loc Anchor) error

	// Report a data value at the given location. The type of the value can be
	// recovered from the token. String tokens are quoted.
	Value(loc Anchor) error

	// EndOfInput reports the end of the input stream.
	EndOfInput(loc Anchor)
}

// Stream is a stream parser that consumes input and delivers events to a
// Handler corresponding with the structure of the input.
type Stream struct {
	s      *Scanner
	tcomma bool // allow trailing commas in objects and arrays
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream { return &Stream{s: NewScanner(r)} }

// AllowComments configures the scanner associated with s to report (true) or
// reject (false) comment tokens.
func (s *Stream) AllowComments(ok bool) { s.s.AllowComments(ok) }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (s *Stream) AllowTrailingCommas(ok bool) { s.tcomma = ok }

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// ParseSingle parses exactly one value from the input stream, which must
// contain nothing else apart from whitespace (and comments, if enabled).
// Empty input is a syntax error, and so is any token after the end of the
// value; the latter error wraps ErrExtraInput.
func (s *Stream) ParseSingle(h Handler) (err error) {
	defer s.recoverParseError(&err)

	if err := s.nextToken(); err == io.EOF {
		s.syntaxError(nil, "unexpected end of input")
	} else if err != nil {
		s.syntaxError(err, "%s", errText(err))
	}
	s.parseElement(h)

	if err := s.nextToken(); err == io.EOF {
		h.EndOfInput(s.s)
		return nil
	} else if err != nil {
		s.syntaxError(err, "%s", errText(err))
	}
	s.syntaxError(ErrExtraInput, "unexpected %v after value", s.s.Token())
	return nil // unreachable
}

// parseElement consumes a single value of any type.
// Precondition: token != Invalid.
func (s *Stream) parseElement(h Handler) {
	switch tok := s.s.Token(); tok {
	case LBrace:
		s.checkError(h.BeginObject(s.s))
		s.parseMembers(h)
		s.require(RBrace)
		s.checkError(h.EndObject(s.s))
	case LSquare:
		s.checkError(h.BeginArray(s.s))
		s.parseElements(h)
		s.require(RSquare)
		s.checkError(h.EndArray(s.s))
	case Integer, Number, String, True, False, Null:
		s.checkError(h.Value(s.s))
	case RBrace, RSquare, Comma, Colon:
		s.syntaxError(nil, "unexpected %v", tok)
	default:
		s.syntaxError(nil, "unknown token %v", tok)
	}
}

// parseMembers consumes zero of more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (s *Stream) parseMembers(h Handler) {
	tok := s.advance(RBrace, String)
	if tok == RBrace {
		return // end of object
	}
	for {
		// Parse a single member: "key": value
		s.checkError(h.BeginMember(s.s))
		s.advance(Colon)
		s.advance()
		s.parseElement(h)

		// Check whether we have more members (",") or are done ("}").
		tok := s.advance(RBrace, Comma)
		s.checkError(h.EndMember(s.s))
		if tok == RBrace {
			return // end of object
		} else if s.tcomma {
			// If trailing commas are allowed and the next token is a close
			// bracket, consider this a valid end of the object. Otherwise, it
			// must be a key for a subsequent element.
			next := s.advance(String, RBrace)
			if next == RBrace {
				return // end of object with trailing comma
			}
		} else {
			s.advance(String) // advance to next key
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (s *Stream) parseElements(h Handler) {
	if tok := s.advance(); tok == RSquare {
		return // end of array
	}
	s.parseElement(h)
	for {
		tok := s.advance(RSquare, Comma)
		if tok == RSquare {
			return // end of array
		}

		// If trailing commas are allowed and the next token is a close bracket,
		// consider this a valid end of the array; otherwise it will fail on the
		// next element
		if next := s.advance(); s.tcomma && next == RSquare {
			return // end of array with trailing comma
		}
		s.parseElement(h)
	}
}

func (s *Stream) nextToken() error {
	for s.s.Next() {
		// Comments are reported by the scanner only when enabled, and carry no
		// value for the parser.
		if tok := s.s.Token(); tok == LineComment || tok == BlockComment {
			continue
		}
		return nil
	}
	return cmp.Or(s.s.Err(), io.EOF)
}

func (s *Stream) advance(tokens ...Token) Token {
	if err := s.nextToken(); err == io.EOF {
		s.syntaxError(io.ErrUnexpectedEOF, "%v", tokLabel(tokens, "end of input"))
	} else if err != nil {
		s.syntaxError(err, "%s", errText(err))
	}
	tok := s.s.Token()
	if len(tokens) != 0 && !tokOneOf(tok, tokens) {
		s.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	return tok
}

func (s *Stream) require(token Token) {
	if tok := s.s.Token(); tok != token {
		s.syntaxError(nil, "expected %v, got %v", token, tok)
	}
}

func (s *Stream) syntaxError(err error, msg string, args ...any) {
	panic(&SyntaxError{
		Location: s.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (s *Stream) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

// errText returns the message of a lexical error without its offset, which is
// redundant with the location of a syntax error.
func errText(err error) string {
	var perr posError
	if errors.As(err, &perr) {
		return perr.err.Error()
	}
	return err.Error()
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprintf("expected value, got %v", got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// tokOneOf reports whether cur is an element of tokens.
func tokOneOf(cur Token, tokens []Token) bool {
	return slices.Contains(tokens, cur)
}

// SyntaxError is the concrete type of errors reported by the stream parser.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
