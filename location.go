// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf

import (
	"errors"
	"fmt"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// LineColAt converts a byte offset in src into a line and column.  Offsets
// past the end of src are clamped to the end.
func LineColAt(src []byte, offset int) LineCol {
	offset = min(max(offset, 0), len(src))
	lc := LineCol{Line: 1}
	for _, b := range src[:offset] {
		if b == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}

// ErrorPosition reports the source location of err with respect to src.  A
// *SyntaxError supplies its location directly; otherwise, if err (or an error
// it wraps) reports a byte offset, the offset is mapped onto src.  If neither
// is available, ErrorPosition returns a zero LineCol and false.
func ErrorPosition(err error, src []byte) (LineCol, bool) {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return serr.Location, true
	}
	var oerr interface{ Offset() int }
	if errors.As(err, &oerr) {
		return LineColAt(src, oerr.Offset()), true
	}
	return LineCol{}, false
}
