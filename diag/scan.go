// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package diag

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/creachadair/jsurf"
	"github.com/creachadair/jsurf/internal/lexical"
)

// Patterns for the lexical checks. Each applies to a single physical line.
var (
	controlChar     = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	singleQuoted    = regexp.MustCompile(`'([^']*)'`)
	unquotedName    = regexp.MustCompile(`(\s*)([a-zA-Z_$][a-zA-Z0-9_$]*)\s*:`)
	miscasedLiteral = regexp.MustCompile(`\b(True|False|Null)\b`)
	trailingComma   = regexp.MustCompile(`,(\s*[}\]])`)
)

// probes are the parser settings tried by FindAll, from strictest to most
// lenient. A defect hidden by one setting may be reported by another.
var probes = []jsurf.Options{
	{},
	{TrailingCommas: true},
	{Comments: true, TrailingCommas: true},
}

// FindAll reports the defects in text that prevent it from parsing as strict
// JSON. Unlike the parser, which stops at the first problem, FindAll combines
// several checks to report as many defects as it can. The result has no
// duplicates and is ordered by position. If text is valid, FindAll returns
// nil.
func FindAll(text string) []Error {
	src := []byte(text)
	if jsurf.Check(src, jsurf.Options{}) == nil {
		return nil
	}
	var errs []Error
	errs = append(errs, lexicalErrors(text)...)
	errs = append(errs, probeErrors(src)...)
	errs = append(errs, trailingCommaErrors(text)...)
	return Dedup(errs)
}

// lexicalErrors reports common mistakes found by pattern, line by line.
// Apart from control characters, matches that begin inside a double-quoted
// string are ignored. Property names are also ignored inside single-quoted
// spans, which are reported in their own right.
func lexicalErrors(text string) []Error {
	var errs []Error
	for _, ln := range lexical.Lines(text) {
		add := func(col int, kind ErrorKind, msg string, args ...any) {
			errs = append(errs, Error{
				Message: fmt.Sprintf(msg, args...),
				Line:    ln.Number,
				Column:  col,
				Kind:    kind,
			})
		}
		for _, m := range controlChar.FindAllStringIndex(ln.Text, -1) {
			add(m[0]+1, InvalidValue, "Invalid control character '0x%X' in JSON string", ln.Text[m[0]])
		}
		for _, m := range lexical.Outside(singleQuoted, ln.Text) {
			add(m[0]+1, SyntaxError, "Single quotes should be double quotes")
		}
		for _, m := range lexical.OutsideFunc(unquotedName, ln.Text, lexical.InQuotes) {
			lead := m[3] - m[2] // whitespace before the name
			add(m[0]+lead+1, SyntaxError, "Property name '%s' should be quoted", ln.Text[m[4]:m[5]])
		}
		for _, m := range lexical.Outside(miscasedLiteral, ln.Text) {
			add(m[0]+1, SyntaxError, "'%s' should be lowercase", ln.Text[m[0]:m[1]])
		}
	}
	return errs
}

// probeErrors reports the first error found by the parser under each of the
// probe settings.
func probeErrors(src []byte) []Error {
	var errs []Error
	for _, opts := range probes {
		if err := jsurf.Check(src, opts); err != nil {
			errs = append(errs, FromParseError(err, src))
		}
	}
	return errs
}

// trailingCommaErrors reports commas that directly precede a closing brace or
// bracket, whether on the same line or on a later one.
func trailingCommaErrors(text string) []Error {
	var errs []Error
	lines := lexical.Lines(text)
	for i, ln := range lines {
		for _, m := range lexical.Outside(trailingComma, ln.Text) {
			errs = append(errs, Error{
				Message: "Trailing comma detected",
				Line:    ln.Number,
				Column:  m[0] + 1,
				Kind:    SyntaxError,
			})
		}

		trimmed := strings.TrimRight(ln.Text, " \t\r")
		if !strings.HasSuffix(trimmed, ",") {
			continue
		}
		comma := len(trimmed) - 1
		if lexical.InString(ln.Text, comma) {
			continue
		}
		next := nextNonBlank(lines[i+1:])
		if strings.HasPrefix(next, "}") || strings.HasPrefix(next, "]") {
			errs = append(errs, Error{
				Message: "Trailing comma before closing bracket",
				Line:    ln.Number,
				Column:  comma + 1,
				Kind:    SyntaxError,
			})
		}
	}
	return errs
}

// nextNonBlank returns the first line of lines that is not entirely
// whitespace, with surrounding whitespace removed, or "" if there is none.
func nextNonBlank(lines []lexical.Line) string {
	for _, ln := range lines {
		if s := strings.TrimSpace(ln.Text); s != "" {
			return s
		}
	}
	return ""
}
