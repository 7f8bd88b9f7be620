// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/creachadair/jsurf"
)

// A Number is the exact text of a JSON number literal. Keeping the literal
// rather than a float64 preserves precision through a parse and serialize
// round trip.
type Number string

// ParseNumber reports whether s is a well-formed JSON number literal, and if
// so returns it as a Number.
func ParseNumber(s string) (Number, error) {
	sc := jsurf.NewScanner(strings.NewReader(s))
	if !sc.Next() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("invalid number %q: %w", s, err)
		}
		return "", fmt.Errorf("invalid number %q: empty input", s)
	}
	if tok := sc.Token(); tok != jsurf.Integer && tok != jsurf.Number {
		return "", fmt.Errorf("invalid number %q: got %v", s, tok)
	} else if sp := sc.Span(); sp.Pos != 0 || sp.End != len(s) {
		return "", fmt.Errorf("invalid number %q: extra input", s)
	}
	return Number(s), nil
}

// MustNumber is as ParseNumber, but panics if s is not a valid literal.
func MustNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the literal text of n.
func (n Number) String() string { return string(n) }

// IsInt reports whether n is written without a fraction or exponent.
func (n Number) IsInt() bool { return !strings.ContainsAny(string(n), ".eE") }

// Int64 returns the value of n as an int64. It reports an error if n is not
// an integer literal or is out of range.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Float64 returns the nearest float64 to the value of n.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Rat returns the exact value of n as a rational number.
func (n Number) Rat() (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(string(n))
	if !ok {
		return nil, fmt.Errorf("invalid number %q", string(n))
	}
	return r, nil
}
