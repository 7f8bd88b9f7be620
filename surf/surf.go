// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package surf provides the operations of a JSON document editor: parsing
// text into a tree and back, validation with full defect discovery, repair
// and formatting, comparison of documents, and file access.
//
// All operations are synchronous and safe for concurrent use by multiple
// goroutines, provided the Service is not reconfigured concurrently.
package surf

import (
	"bytes"
	"log/slog"

	"github.com/creachadair/jsurf/diag"
	"github.com/creachadair/jsurf/fixup"
	"github.com/creachadair/jsurf/tree"
)

// DefaultCompareLimit is the default maximum number of differences reported
// by Compare.
const DefaultCompareLimit = 100

// A Service carries the settings for document operations. A zero Service is
// ready for use with default settings and discards its logs.
type Service struct {
	logger        *slog.Logger
	formatter     tree.Formatter
	maxIterations int
	compareLimit  int
}

// An Option configures a Service.
type Option func(*Service)

// WithIndent sets the indentation used when rendering trees.
func WithIndent(indent string) Option { return func(s *Service) { s.formatter.Indent = indent } }

// WithMaxIterations sets the limit on repair rounds.
func WithMaxIterations(n int) Option { return func(s *Service) { s.maxIterations = n } }

// WithCompareLimit sets the maximum number of differences reported by Compare.
func WithCompareLimit(n int) Option { return func(s *Service) { s.compareLimit = n } }

// WithLogger sets the logger for the service, as SetLogger.
func WithLogger(logger *slog.Logger) Option { return func(s *Service) { s.SetLogger(logger) } }

// New constructs a Service with the given options.
func New(opts ...Option) *Service {
	s := new(Service)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLogger sets the structured logger used by s. If logger == nil, logs are
// discarded.
func (s *Service) SetLogger(logger *slog.Logger) {
	if logger == nil {
		s.logger = nil
	} else {
		s.logger = logger.With("component", "surf")
	}
}

func (s *Service) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}

func (s *Service) fixOptions() *fixup.Options {
	return &fixup.Options{MaxIterations: s.maxIterations, Logger: s.logger}
}

func (s *Service) limit() int {
	if s.compareLimit <= 0 {
		return DefaultCompareLimit
	}
	return s.compareLimit
}

// ParseToTree parses text as strict JSON. See [tree.ParseToTree].
func (s *Service) ParseToTree(text string) tree.ParseResult {
	res := tree.ParseToTree(text)
	if !res.Success {
		s.log().Debug("parse failed", "line", res.Line, "column", res.Column, "error", res.ErrorMessage)
	}
	return res
}

// SerializeFromTree renders root as indented JSON text. It reports an error
// of concrete type [*tree.SerializeError] if the tree is malformed.
func (s *Service) SerializeFromTree(root *tree.Node) (string, error) {
	var buf bytes.Buffer
	if err := s.formatter.Format(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ValidateJSON validates text as strict JSON, reporting at most the first
// error found.
func (s *Service) ValidateJSON(text string) diag.Result { return diag.Strict(text) }

// ValidateJSONWithAutoFix validates text and reports every defect that can be
// discovered, including those exposed by trial repairs. It does not modify
// text.
func (s *Service) ValidateJSONWithAutoFix(text string) diag.Result {
	res := fixup.AnalyzeAndFix(text, false, s.fixOptions())
	return diag.NewResult(res.Errors)
}

// AnalyzeAndFix scans text for defects and optionally repairs them.
// See [fixup.AnalyzeAndFix].
func (s *Service) AnalyzeAndFix(text string, apply bool) fixup.Result {
	return fixup.AnalyzeAndFix(text, apply, s.fixOptions())
}

// FormatJSON repairs what it can in text and, if the result is valid JSON,
// returns it as indented text. If the repairs do not produce valid JSON, the
// partially repaired text is returned as-is.
func (s *Service) FormatJSON(text string) string {
	res := fixup.AnalyzeAndFix(text, true, s.fixOptions())
	if !res.Converged {
		s.log().Info("format: unresolved errors remain", "errors", len(res.Errors))
		return res.Fixed
	}
	root, err := tree.Parse([]byte(res.Fixed))
	if err != nil {
		s.log().Error("format: repaired text did not parse", "error", err)
		return res.Fixed
	}
	out, err := s.SerializeFromTree(root)
	if err != nil {
		s.log().Error("format: serialization failed", "error", err)
		return res.Fixed
	}
	return out
}

// ValidateStructure reports structural problems with the tree rooted at root.
func (s *Service) ValidateStructure(root *tree.Node) diag.Result {
	if root == nil {
		return diag.NewResult([]diag.Error{{Message: "Root node is null", Kind: diag.InvalidFormat}})
	}
	return diag.NewResult(nil)
}

// CheckConsistency reports inconsistencies among the values of the tree
// rooted at root. No checks are currently defined, so the result is always
// valid.
func (s *Service) CheckConsistency(root *tree.Node) diag.Result { return diag.NewResult(nil) }

// DetectTypos reports member names in the tree rooted at root that appear to
// be misspellings of one another. No checks are currently defined.
func (s *Service) DetectTypos(root *tree.Node) []diag.Warning { return nil }

// FindStructuralInconsistencies reports objects in the tree rooted at root
// whose shape differs from their siblings. No checks are currently defined.
func (s *Service) FindStructuralInconsistencies(root *tree.Node) []diag.Warning { return nil }
