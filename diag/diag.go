// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package diag defines the diagnostics reported for JSON documents, and a
// scanner that finds as many of the defects in a malformed document as can
// be detected statically.
package diag

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/creachadair/jsurf"
	"github.com/creachadair/mds/mapset"
)

// ErrorKind classifies an Error.
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	SyntaxError     ErrorKind = iota // malformed token stream
	InvalidFormat                    // wrong structural shape
	MissingProperty                  // reserved
	InvalidValue                     // bad character content
)

var errorKindStr = [...]string{
	SyntaxError:     "SyntaxError",
	InvalidFormat:   "InvalidFormat",
	MissingProperty: "MissingProperty",
	InvalidValue:    "InvalidValue",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindStr) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKindStr[k]
}

// WarningKind classifies a Warning.
type WarningKind int

// Constants defining the valid WarningKind values.
const (
	PossibleTypo WarningKind = iota
	InconsistentStructure
	UnusualValue
	DuplicateKey
)

var warningKindStr = [...]string{
	PossibleTypo:          "PossibleTypo",
	InconsistentStructure: "InconsistentStructure",
	UnusualValue:          "UnusualValue",
	DuplicateKey:          "DuplicateKey",
}

func (k WarningKind) String() string {
	if k < 0 || int(k) >= len(warningKindStr) {
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
	return warningKindStr[k]
}

// An Error is a defect found in a document. Line and Column are 1-based, or
// 0 if unknown; the column is a byte offset within the line.
type Error struct {
	Message string
	Line    int
	Column  int
	Kind    ErrorKind
}

func (e Error) String() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%d:%d: %v: %s", e.Line, e.Column, e.Kind, e.Message)
}

// A Warning is a suspicious but legal feature of a document.
type Warning struct {
	Message string
	Line    int
	Column  int
	Kind    WarningKind
}

func (w Warning) String() string {
	if w.Line == 0 {
		return fmt.Sprintf("%v: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%d:%d: %v: %s", w.Line, w.Column, w.Kind, w.Message)
}

// A Result is the outcome of validating a document.
type Result struct {
	Valid    bool
	Errors   []Error
	Warnings []Warning
}

// NewResult returns a Result for errs, which is valid if errs is empty.
func NewResult(errs []Error) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Dedup returns the distinct elements of errs, keeping the first of each
// group of identical errors, ordered by line and then by column. Errors at
// the same position retain their relative order.
func Dedup(errs []Error) []Error {
	if len(errs) == 0 {
		return nil
	}
	seen := mapset.New[Error]()
	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		if seen.Has(e) {
			continue
		}
		seen.Add(e)
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b Error) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Column, b.Column))
	})
	return out
}

// Strict validates text as strict JSON and reports at most one error, the
// first defect found by the parser.
func Strict(text string) Result {
	src := []byte(text)
	if err := jsurf.Check(src, jsurf.Options{}); err != nil {
		return NewResult([]Error{FromParseError(err, src)})
	}
	return NewResult(nil)
}

// FromParseError converts an error reported by the parser for src into an
// Error of kind SyntaxError.
func FromParseError(err error, src []byte) Error {
	e := Error{Message: err.Error(), Kind: SyntaxError}
	var serr *jsurf.SyntaxError
	if errors.As(err, &serr) {
		e.Message = serr.Message
	}
	if lc, ok := jsurf.ErrorPosition(err, src); ok {
		e.Line, e.Column = lc.Line, lc.Column+1
	}
	return e
}
