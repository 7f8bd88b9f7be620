// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf

import "bytes"

// Options control the leniency of Check.
type Options struct {
	Comments       bool // accept line and block comments
	TrailingCommas bool // accept a comma before a closing brace or bracket
}

// Check reports whether src consists of exactly one well-formed JSON value,
// as permitted by opts. It returns nil if so; otherwise the error has
// concrete type [*SyntaxError].
func Check(src []byte, opts Options) error {
	st := NewStream(bytes.NewReader(src))
	st.AllowComments(opts.Comments)
	st.AllowTrailingCommas(opts.TrailingCommas)
	return st.ParseSingle(discard{})
}

// Valid reports whether src is a single, strictly well-formed JSON value.
func Valid(src []byte) bool { return Check(src, Options{}) == nil }

// discard is a Handler that ignores all events.
type discard struct{}

func (discard) BeginObject(Anchor) error { return nil }
func (discard) EndObject(Anchor) error   { return nil }
func (discard) BeginArray(Anchor) error  { return nil }
func (discard) EndArray(Anchor) error    { return nil }
func (discard) BeginMember(Anchor) error { return nil }
func (discard) EndMember(Anchor) error   { return nil }
func (discard) Value(Anchor) error       { return nil }
func (discard) EndOfInput(Anchor)        {}
