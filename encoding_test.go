// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf_test

import (
	"testing"

	"github.com/creachadair/jsurf"
)

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		input, quoted string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{"a \"b\"\n", `"a \"b\"\n"`},
		{"日本語", `"日本語"`},
		{"\x00", `"\u0000"`},
	}
	for _, test := range tests {
		got := jsurf.Quote(test.input)
		if got != test.quoted {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.quoted)
		}
		dec, err := jsurf.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if string(dec) != test.input {
			t.Errorf("Unquote(%#q): got %q, want %q", got, dec, test.input)
		}
	}

	for _, bad := range []string{``, `"`, `abc`, `"abc`, `"x\"`} {
		if got, err := jsurf.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}
