// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package fixup

import (
	"regexp"

	"github.com/creachadair/jsurf/internal/lexical"
)

// A Rule is a mechanical rewrite that repairs one kind of common mistake.
type Rule struct {
	// Description is a human-readable summary of the repair.
	Description string

	// Rewrite returns text with the repair applied, and reports whether
	// anything was changed.
	Rewrite func(text string) (string, bool)
}

// Rules are the rewrites applied by Apply, in order.
var Rules = []Rule{
	{"Removed trailing commas", replacer(`,(\s*[}\]])`, "$1")},
	{"Converted single quotes to double quotes", replacer(`'([^'\n]*)'`, `"$1"`)},
	{"Added quotes around property names", rewriter(lexical.ReplaceOutsideQuotes,
		`([ \t]*)([a-zA-Z_$][a-zA-Z0-9_$]*)[ \t]*:`, `$1"$2":`)},
	{"Fixed boolean/null casing", chain(
		replacer(`\bTrue\b`, "true"),
		replacer(`\bFalse\b`, "false"),
		replacer(`\bNull\b`, "null"),
	)},
}

// replacer returns a rewrite that replaces matches of expr outside of string
// literals with the expansion of tmpl.
func replacer(expr, tmpl string) func(string) (string, bool) {
	return rewriter(lexical.ReplaceOutside, expr, tmpl)
}

// rewriter returns a rewrite that replaces matches of expr with the expansion
// of tmpl using the given replacement function.
func rewriter(replace func(*regexp.Regexp, string, string) (string, int), expr, tmpl string) func(string) (string, bool) {
	re := regexp.MustCompile(expr)
	return func(text string) (string, bool) {
		out, n := replace(re, text, tmpl)
		return out, n > 0
	}
}

// chain returns a rewrite that applies each of rws in turn.
func chain(rws ...func(string) (string, bool)) func(string) (string, bool) {
	return func(text string) (string, bool) {
		var changed bool
		for _, rw := range rws {
			var ok bool
			text, ok = rw(text)
			changed = changed || ok
		}
		return text, changed
	}
}

// Apply applies each of the Rules to text in order, and returns the result
// together with the descriptions of the rules that changed it.
func Apply(text string) (string, []string) {
	var fixes []string
	for _, r := range Rules {
		if out, ok := r.Rewrite(text); ok {
			text = out
			fixes = append(fixes, r.Description)
		}
	}
	return text, fixes
}
