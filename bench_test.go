// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsurf_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jsurf"
)

// benchInput constructs a synthetic document with n records.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `  {"id": %d, "name": "item-%d", "score": %d.25, "ok": %v, "tags": ["a", "b\tc"], "next": null}`,
			i, i, i%97, i%2 == 0)
	}
	sb.WriteString("\n]\n")
	return []byte(sb.String())
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for b.Loop() {
			s := jsurf.NewScanner(bytes.NewReader(input))
			for s.Next() {
				if s.Token() == jsurf.String {
					jsurf.Unquote(string(s.Text()))
				}
			}
			if err := s.Err(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Check", func(b *testing.B) {
		for b.Loop() {
			if err := jsurf.Check(input, jsurf.Options{}); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
