// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package surf

import (
	"fmt"
	"strings"

	"github.com/creachadair/jsurf/diag"
	"github.com/creachadair/jsurf/tree"
)

// A Comparison is the outcome of comparing two documents.
type Comparison struct {
	Identical   bool
	Differences []diag.Error
	Count       int // number of line differences reported, not counting the limit notice
}

// Compare reports the line differences between the canonical renderings of
// two documents. Both must be strictly valid JSON. Lines are compared by
// position, ignoring case; no alignment is attempted, so a line inserted near
// the top reports every following line as modified.
//
// At most the configured limit of differences is reported. If the limit is
// reached, a final entry of kind InvalidValue says so.
func (s *Service) Compare(left, right string) (Comparison, error) {
	lt, err := s.canonical(left)
	if err != nil {
		return Comparison{}, fmt.Errorf("left document: %w", err)
	}
	rt, err := s.canonical(right)
	if err != nil {
		return Comparison{}, fmt.Errorf("right document: %w", err)
	}
	ll, rl := splitLines(lt), splitLines(rt)

	var out Comparison
	limit := s.limit()
	for i := range max(len(ll), len(rl)) {
		var msg string
		switch {
		case i >= len(ll):
			msg = "Right: Added line - " + strings.TrimSpace(rl[i])
		case i >= len(rl):
			msg = "Left: Removed line - " + strings.TrimSpace(ll[i])
		case !strings.EqualFold(ll[i], rl[i]):
			msg = fmt.Sprintf("Modified - Left: '%s' → Right: '%s'",
				strings.TrimSpace(ll[i]), strings.TrimSpace(rl[i]))
		default:
			continue
		}
		out.Differences = append(out.Differences, diag.Error{
			Message: msg, Line: i + 1, Column: 1, Kind: diag.InvalidFormat,
		})
		out.Count++
		if out.Count >= limit {
			out.Differences = append(out.Differences, diag.Error{
				Message: fmt.Sprintf("Too many differences found. Showing first %d differences only.", limit),
				Line:    i + 2, Column: 1, Kind: diag.InvalidValue,
			})
			break
		}
	}
	out.Identical = out.Count == 0
	s.log().Debug("compare", "left_lines", len(ll), "right_lines", len(rl), "differences", out.Count)
	return out, nil
}

// canonical parses text strictly and renders it with the settings of s.
func (s *Service) canonical(text string) (string, error) {
	root, err := tree.Parse([]byte(text))
	if err != nil {
		return "", err
	}
	return s.SerializeFromTree(root)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
