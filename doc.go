// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsurf implements a strict JSON scanner and stream parser, the
// foundation for the tree model, diagnostics, and repair tools in the
// subpackages of this module.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// reports whether a token is available:
//
//	s := jsurf.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns false at the end of input or on error. Err reports the error,
// or nil if the input was fully consumed:
//
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// # Streaming
//
// The Stream type implements an event-driven stream parser.  The parser calls
// methods on a Handler value to report the structure of the input. In case of
// error, parsing is terminated and an error of concrete type
// *jsurf.SyntaxError is returned.
//
// Construct a Stream from an io.Reader, and call ParseSingle to parse a
// complete document consisting of exactly one value:
//
//	s := jsurf.NewStream(input)
//	if err := s.ParseSingle(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Leniency
//
// By default the parser accepts only strict JSON. Comments and trailing commas
// can be enabled separately, and the Check function probes a document under a
// given combination of these options:
//
//	err := jsurf.Check(src, jsurf.Options{TrailingCommas: true})
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream. The methods of
// a handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// The Anchor passed to a handler method is only valid for the duration of
// that method call; the handler must copy any data it needs to retain.
package jsurf
