// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package fixup repairs common mistakes in JSON documents, such as trailing
// commas, single quotes, unquoted property names, and miscased constants.
//
// Repairs are found by pattern, and one repair can expose a defect that an
// earlier one masked. AnalyzeAndFix therefore alternates between scanning
// for defects and applying repairs until the text is valid, no rule makes
// progress, or an iteration limit is reached.
package fixup

import (
	"log/slog"
	"slices"

	"github.com/creachadair/jsurf"
	"github.com/creachadair/jsurf/diag"
)

// DefaultMaxIterations is the default limit on scan and repair rounds. It is
// also the largest limit allowed.
const DefaultMaxIterations = 10

// Options control the behavior of AnalyzeAndFix. A nil *Options is ready for
// use and provides default values.
type Options struct {
	// MaxIterations limits the number of scan and repair rounds.
	// If zero, negative, or above DefaultMaxIterations, DefaultMaxIterations
	// is used.
	MaxIterations int

	// Logger receives debug logs for each round. If nil, logs are discarded.
	Logger *slog.Logger
}

func (o *Options) maxIterations() int {
	if o == nil || o.MaxIterations <= 0 || o.MaxIterations > DefaultMaxIterations {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// A Result is the outcome of AnalyzeAndFix.
type Result struct {
	Original string // the input text
	Fixed    string // the repaired text, or the input if repairs were not applied

	// Errors are all the defects observed in any round, without duplicates,
	// ordered by position. Positions refer to the text of the round in which
	// the defect was found.
	Errors []diag.Error

	// FixesApplied are the descriptions of the rules applied, in the order
	// applied. A rule is listed once for each round in which it made a change.
	FixesApplied []string

	// Converged reports whether the repaired text is strictly valid JSON.
	Converged bool
}

// HasFixableErrors reports whether any repair was made.
func (r Result) HasFixableErrors() bool { return len(r.FixesApplied) != 0 }

// AnalyzeAndFix scans text for defects and repairs them in rounds. If apply
// is true, the repaired text is reported in the Fixed field of the result;
// otherwise repairs are used only to discover further defects, and Fixed is
// the original text.
//
// AnalyzeAndFix never fails. For valid input it returns no errors and the
// text unchanged.
func AnalyzeAndFix(text string, apply bool, opts *Options) Result {
	log := opts.logger()
	cur := text
	var errs []diag.Error
	var fixes []string
	for i := range opts.maxIterations() {
		found := diag.FindAll(cur)
		if len(found) == 0 {
			break
		}
		errs = append(errs, found...)

		next, applied := Apply(cur)
		log.Debug("fixup round", "iteration", i+1, "errors", len(found), "fixes", applied)
		if next == cur {
			break // no rule made progress
		}
		fixes = append(fixes, applied...)
		cur = next
	}

	res := Result{
		Original:     text,
		Fixed:        text,
		Errors:       diag.Dedup(errs),
		FixesApplied: slices.Clip(fixes),
		Converged:    jsurf.Valid([]byte(cur)),
	}
	if apply {
		res.Fixed = cur
	}
	log.Debug("fixup done", "apply", apply, "errors", len(res.Errors),
		"fixes", len(res.FixesApplied), "converged", res.Converged)
	return res
}
