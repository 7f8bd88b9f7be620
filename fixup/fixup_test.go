// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package fixup_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/creachadair/jsurf/diag"
	"github.com/creachadair/jsurf/fixup"
	"github.com/google/go-cmp/cmp"
)

const (
	fixCommas = "Removed trailing commas"
	fixQuotes = "Converted single quotes to double quotes"
	fixNames  = "Added quotes around property names"
	fixCasing = "Fixed boolean/null casing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fixes []string
	}{
		{`{"a": 1}`, `{"a": 1}`, nil},
		{`[1, 2,]`, `[1, 2]`, []string{fixCommas}},
		{"{\n  \"a\": 1,\n}", "{\n  \"a\": 1\n}", []string{fixCommas}},
		{`{'a': 'b'}`, `{"a": "b"}`, []string{fixQuotes}},
		{`{a: 1, b_2: 2}`, `{"a": 1, "b_2": 2}`, []string{fixNames}},
		{`[True, False, Null]`, `[true, false, null]`, []string{fixCasing}},
		{`{'k': [True,], v: 'x',}`, `{"k": [true], "v": "x"}`,
			[]string{fixCommas, fixQuotes, fixNames, fixCasing}},
		{`{"note": "True, 'x', a: 1,]", 'k': 1}`, `{"note": "True, 'x', a: 1,]", "k": 1}`,
			[]string{fixQuotes}},
		{`{"a": 'x y: z}`, `{"a": 'x y: z}`, nil},
		{"{\n  a: 1,\n  b: 2\n}", "{\n  \"a\": 1,\n  \"b\": 2\n}", []string{fixNames}},
	}
	for _, test := range tests {
		got, fixes := fixup.Apply(test.input)
		if got != test.want {
			t.Errorf("Apply(%#q): got %#q, want %#q", test.input, got, test.want)
		}
		if diff := cmp.Diff(test.fixes, fixes); diff != "" {
			t.Errorf("Apply(%#q) fixes (-want, +got):\n%s", test.input, diff)
		}
	}
}

func TestAnalyzeAndFix(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		fixed     string
		fixes     []string
		nerr      int
		converged bool
	}{
		{"Valid", `{"a": 1}`, `{"a": 1}`, nil, 0, true},
		{"Empty", ``, ``, nil, 1, false},
		{"SingleQuotes", `{'a': 1,}`, `{"a": 1}`, []string{fixCommas, fixQuotes}, 3, true},
		{"NamesAndCasing", `{a: True}`, `{"a": true}`, []string{fixNames, fixCasing}, 3, true},
		{"Unfixable", `{"a": }`, `{"a": }`, nil, 1, false},
		{"ApostropheInString", `{"note": "it's", "b": 'x'}`, `{"note": "it's", "b": "x"}`,
			[]string{fixQuotes}, 2, true},
		{"Mixed", "{\n  'k': [True,],\n  v: 'x',\n}", "{\n  \"k\": [true],\n  \"v\": \"x\"\n}",
			[]string{fixCommas, fixQuotes, fixNames, fixCasing}, -1, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, apply := range []bool{true, false} {
				res := fixup.AnalyzeAndFix(test.input, apply, nil)
				wantFixed := test.input
				if apply {
					wantFixed = test.fixed
				}
				if res.Original != test.input {
					t.Errorf("Original: got %#q, want %#q", res.Original, test.input)
				}
				if res.Fixed != wantFixed {
					t.Errorf("Fixed (apply=%v): got %#q, want %#q", apply, res.Fixed, wantFixed)
				}
				if diff := cmp.Diff(test.fixes, res.FixesApplied); diff != "" {
					t.Errorf("Fixes (apply=%v) (-want, +got):\n%s", apply, diff)
				}
				if got := res.HasFixableErrors(); got != (len(test.fixes) != 0) {
					t.Errorf("HasFixableErrors: got %v, want %v", got, len(test.fixes) != 0)
				}
				if test.nerr >= 0 && len(res.Errors) != test.nerr {
					t.Errorf("Errors (apply=%v): got %d, want %d\n%v", apply, len(res.Errors), test.nerr, res.Errors)
				} else if test.nerr < 0 && len(res.Errors) == 0 {
					t.Errorf("Errors (apply=%v): got none", apply)
				}
				if res.Converged != test.converged {
					t.Errorf("Converged (apply=%v): got %v, want %v", apply, res.Converged, test.converged)
				}
				if diff := cmp.Diff(diag.Dedup(res.Errors), res.Errors); diff != "" {
					t.Errorf("Errors are not deduplicated and sorted (-want, +got):\n%s", diff)
				}
			}
		})
	}
}

func TestAnalyzeAndFixErrors(t *testing.T) {
	res := fixup.AnalyzeAndFix(`{a: True}`, false, nil)
	var msgs []string
	for _, e := range res.Errors {
		msgs = append(msgs, e.Message)
	}
	want := []string{
		"Property name 'a' should be quoted",
		"unexpected 'a'",
		"'True' should be lowercase",
	}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("Messages (-want, +got):\n%s", diff)
	}
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer
	opts := &fixup.Options{
		MaxIterations: 1,
		Logger:        slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	res := fixup.AnalyzeAndFix(`[True,]`, true, opts)
	if res.Fixed != `[true]` || !res.Converged {
		t.Errorf("AnalyzeAndFix: got %#q (converged %v), want [true]", res.Fixed, res.Converged)
	}
	log := buf.String()
	if got := strings.Count(log, "fixup round"); got != 1 {
		t.Errorf("Log has %d rounds, want 1:\n%s", got, log)
	}
	if !strings.Contains(log, "fixup done") {
		t.Errorf("Log is missing summary:\n%s", log)
	}
}

func TestIterationLimit(t *testing.T) {
	// Each round removes only the last of a run of trailing commas.
	input := "[1" + strings.Repeat(",", 15) + "]"
	for _, limit := range []int{0, 50} {
		var buf bytes.Buffer
		opts := &fixup.Options{
			MaxIterations: limit,
			Logger:        slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		}
		res := fixup.AnalyzeAndFix(input, true, opts)
		if want := "[1,,,,,]"; res.Fixed != want {
			t.Errorf("AnalyzeAndFix(limit=%d): got %#q, want %#q", limit, res.Fixed, want)
		}
		if res.Converged {
			t.Errorf("AnalyzeAndFix(limit=%d): converged, want not converged", limit)
		}
		if got := strings.Count(buf.String(), "fixup round"); got != fixup.DefaultMaxIterations {
			t.Errorf("AnalyzeAndFix(limit=%d): %d rounds, want %d", limit, got, fixup.DefaultMaxIterations)
		}
		if got := len(res.FixesApplied); got != fixup.DefaultMaxIterations {
			t.Errorf("AnalyzeAndFix(limit=%d): %d fixes, want %d", limit, got, fixup.DefaultMaxIterations)
		}
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{`{'a': 1,}`, `{a: True}`, `[Null, 'x',]`}
	for _, input := range inputs {
		first := fixup.AnalyzeAndFix(input, true, nil)
		second := fixup.AnalyzeAndFix(first.Fixed, true, nil)
		if second.Fixed != first.Fixed || len(second.Errors) != 0 || second.HasFixableErrors() {
			t.Errorf("Second pass over %#q: got %#q, %d errors, fixes %v",
				first.Fixed, second.Fixed, len(second.Errors), second.FixesApplied)
		}
	}
}
