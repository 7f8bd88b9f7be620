// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The result does not include the enclosing quotation marks.
//
// The escaping policy is relaxed: only the quotation mark, the backslash, and
// control characters are escaped, along with the few runes that are not safe
// to embed literally in JavaScript source (U+2028, U+2029) and the Unicode
// replacement rune, which marks invalid input. Other non-ASCII runes are
// copied through unchanged so that the output remains readable.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putHex := func(r rune) {
		putByte('\\', 'u',
			hexDigit[(r>>12)&15], hexDigit[(r>>8)&15],
			hexDigit[(r>>4)&15], hexDigit[r&15])
	}

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(max(n, 1))

		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				putByte('\\', b)
			} else {
				putHex(r)
			}
		case r == '\\' || r == '"':
			putByte('\\', byte(r))
		case r == utf8.RuneSelf-1: // DEL
			putHex(r)
		case r < utf8.RuneSelf:
			putByte(byte(r))
		case r == utf8.RuneError, r == '\u2028', r == '\u2029':
			putHex(r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}
