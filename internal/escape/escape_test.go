// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jsurf/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`a"b\c`, `a\"b\\c`},
		{"tab\there\n", `tab\there\n`},
		{"\x01\x1f", `\u0001\u001f`},
		{"\x7f", `\u007f`},
		{"café ☃", "café ☃"},
		{"bad\xffbyte", `bad\ufffdbyte`},
		{"\u2028\u2029", `\u2028\u2029`},
	}
	for _, test := range tests {
		if got := string(escape.Quote(mem.S(test.input))); got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`a\"b\\c\/d`, `a"b\c/d`},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`caf\u00e9`, "café"},
		{`\ud83d\ude00!`, "😀!"},
		{`\ud83d`, "�"},
		{`\ud83dx`, "�x"},
		{`\q`, "�"},
		{`\u00zz`, "�"},
	}
	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, input := range []string{`abc\`, `\u12`, `x\u`} {
		if got, err := escape.Unquote(mem.S(input)); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", input, got)
		}
	}
}
