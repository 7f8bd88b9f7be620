// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package lexical provides line-oriented pattern matching over text that may
// not be well-formed JSON.
package lexical

import "regexp"

// InString reports whether offset pos of text falls inside a double-quoted
// string, judged by the parity of unescaped quotation marks between the start
// of the line containing pos and pos itself. A string never spans lines in
// JSON, so the state resets at each newline.
func InString(text string, pos int) bool {
	start := pos
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	var n int
	var esc bool
	for i := start; i < pos; i++ {
		switch {
		case esc:
			esc = false
		case text[i] == '\\':
			esc = true
		case text[i] == '"':
			n++
		}
	}
	return n%2 == 1
}

// InQuotes reports whether offset pos of text falls inside a quoted span on
// its line, either a double-quoted string or a single-quoted one. Quotes of
// one kind inside a span of the other kind are ordinary characters.
func InQuotes(text string, pos int) bool {
	start := pos
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	var open byte // the quote character of the current span, or 0
	var esc bool
	for i := start; i < pos; i++ {
		switch c := text[i]; {
		case esc:
			esc = false
		case c == '\\' && open != 0:
			esc = true
		case open == 0 && (c == '"' || c == '\''):
			open = c
		case c == open:
			open = 0
		}
	}
	return open != 0
}

// Outside returns the submatch indices of all matches of re in text that do
// not begin inside a double-quoted string. The format of each element is as
// for regexp.Regexp.FindStringSubmatchIndex.
//
// When a match is rejected, the search resumes one byte after its start, so
// that a quote inside a string does not hide a later match.
func Outside(re *regexp.Regexp, text string) [][]int {
	return OutsideFunc(re, text, InString)
}

// OutsideFunc is as Outside, but uses inside to decide whether a match that
// begins at a given offset of text is to be skipped.
func OutsideFunc(re *regexp.Regexp, text string, inside func(text string, pos int) bool) [][]int {
	var out [][]int
	for pos := 0; pos <= len(text); {
		m := re.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		for i, v := range m {
			if v >= 0 {
				m[i] = v + pos
			}
		}
		if inside(text, m[0]) {
			pos = m[0] + 1
			continue
		}
		out = append(out, m)
		if m[1] > m[0] {
			pos = m[1]
		} else {
			pos = m[1] + 1
		}
	}
	return out
}

// ReplaceOutside replaces the matches of re in text that do not begin inside
// a double-quoted string with the expansion of tmpl, as for
// regexp.Regexp.Expand. It reports the number of replacements made.
func ReplaceOutside(re *regexp.Regexp, text, tmpl string) (string, int) {
	return replace(re, text, tmpl, Outside(re, text))
}

// ReplaceOutsideQuotes is as ReplaceOutside, but also skips matches that
// begin inside a single-quoted span. See InQuotes.
func ReplaceOutsideQuotes(re *regexp.Regexp, text, tmpl string) (string, int) {
	return replace(re, text, tmpl, OutsideFunc(re, text, InQuotes))
}

func replace(re *regexp.Regexp, text, tmpl string, ms [][]int) (string, int) {
	if len(ms) == 0 {
		return text, 0
	}
	buf := make([]byte, 0, len(text))
	var last int
	for _, m := range ms {
		buf = append(buf, text[last:m[0]]...)
		buf = re.ExpandString(buf, tmpl, text, m)
		last = m[1]
	}
	buf = append(buf, text[last:]...)
	return string(buf), len(ms)
}

// Line is a single physical line of text.
type Line struct {
	Number int    // 1-based
	Offset int    // byte offset of the start of the line
	Text   string // without the terminating newline
}

// Lines splits text into physical lines at each newline.  A trailing carriage
// return is retained in the line text. The result always has at least one
// element.
func Lines(text string) []Line {
	var out []Line
	off := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, Line{Number: len(out) + 1, Offset: off, Text: text[off:i]})
			off = i + 1
		}
	}
	return append(out, Line{Number: len(out) + 1, Offset: off, Text: text[off:]})
}
