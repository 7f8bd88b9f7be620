// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsurf"
)

func TestCheck(t *testing.T) {
	strict := jsurf.Options{}
	commas := jsurf.Options{TrailingCommas: true}
	lenient := jsurf.Options{Comments: true, TrailingCommas: true}

	tests := []struct {
		input string
		opts  jsurf.Options
		want  string // "" means valid
	}{
		{`{}`, strict, ""},
		{`{"a": [1, 2.5, "x", true, null]}`, strict, ""},
		{``, strict, "at 1:0: unexpected end of input"},
		{`[1,]`, strict, `at 1:3: unexpected "]"`},
		{`[1,]`, commas, ""},
		{`{"a": 1,}`, commas, ""},
		{"// c\n{}", strict, `at 1:0: unexpected '/'`},
		{"// c\n{}", lenient, ""},
		{"{\"a\": 1, /* x */\n}", lenient, ""},
		{`{'a': 1}`, lenient, `at 1:1: unexpected '\''`},
		{`1 2`, strict, "at 1:2: unexpected integer after value"},
	}
	for _, test := range tests {
		err := jsurf.Check([]byte(test.input), test.opts)
		if test.want == "" {
			if err != nil {
				t.Errorf("Check(%#q, %+v): unexpected error: %v", test.input, test.opts, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("Check(%#q, %+v): got nil, want %q", test.input, test.opts, test.want)
		} else if got := err.Error(); got != test.want {
			t.Errorf("Check(%#q, %+v): got %q, want %q", test.input, test.opts, got, test.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, ok := range []string{`0`, `"s"`, `[[]]`, ` {"a": {"b": null}} `} {
		if !jsurf.Valid([]byte(ok)) {
			t.Errorf("Valid(%#q): got false, want true", ok)
		}
	}
	for _, bad := range []string{``, `{a: 1}`, `[True]`, `{"a": 1,}`, `'x'`} {
		if jsurf.Valid([]byte(bad)) {
			t.Errorf("Valid(%#q): got true, want false", bad)
		}
	}
}

func TestLineColAt(t *testing.T) {
	src := []byte("ab\ncd\n\nef")
	tests := []struct {
		offset int
		want   jsurf.LineCol
	}{
		{-3, jsurf.LineCol{Line: 1, Column: 0}},
		{0, jsurf.LineCol{Line: 1, Column: 0}},
		{2, jsurf.LineCol{Line: 1, Column: 2}},
		{3, jsurf.LineCol{Line: 2, Column: 0}},
		{7, jsurf.LineCol{Line: 4, Column: 0}},
		{9, jsurf.LineCol{Line: 4, Column: 2}},
		{100, jsurf.LineCol{Line: 4, Column: 2}},
	}
	for _, test := range tests {
		if got := jsurf.LineColAt(src, test.offset); got != test.want {
			t.Errorf("LineColAt(%d): got %v, want %v", test.offset, got, test.want)
		}
	}
}

type offsetError int

func (e offsetError) Error() string { return "offset error" }
func (e offsetError) Offset() int   { return int(e) }

func TestErrorPosition(t *testing.T) {
	src := []byte("{\n  \"a\": tru\n}")
	err := jsurf.Check(src, jsurf.Options{})
	if got, ok := jsurf.ErrorPosition(err, src); !ok {
		t.Errorf("ErrorPosition(%v): no position", err)
	} else if want := (jsurf.LineCol{Line: 2, Column: 7}); got != want {
		t.Errorf("ErrorPosition(%v): got %v, want %v", err, got, want)
	}

	wrapped := errors.Join(errors.New("context"), offsetError(4))
	if got, ok := jsurf.ErrorPosition(wrapped, src); !ok {
		t.Errorf("ErrorPosition(%v): no position", wrapped)
	} else if want := (jsurf.LineCol{Line: 2, Column: 2}); got != want {
		t.Errorf("ErrorPosition(%v): got %v, want %v", wrapped, got, want)
	}

	if _, ok := jsurf.ErrorPosition(errors.New("plain"), src); ok {
		t.Error("ErrorPosition(plain): got a position, want none")
	}
}
