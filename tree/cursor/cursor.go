// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a JSON document tree.
package cursor

import (
	"fmt"
	"strings"

	"github.com/creachadair/jsurf/tree"
)

// At resolves a node path of the form reported by tree.Node.Path, starting
// from root. An empty path denotes root itself.
func At(root *tree.Node, path string) (*tree.Node, error) {
	if path == "" {
		return root, nil
	}
	keys := strings.Split(path, ".")
	elts := make([]any, len(keys))
	for i, k := range keys {
		elts[i] = k
	}
	c := New(root).Down(elts...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Node(), nil
}

// A Cursor is a pointer that navigates into the structure of a tree.
type Cursor struct {
	org *tree.Node
	stk []*tree.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *tree.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *tree.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() *tree.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []*tree.Node {
	return append([]*tree.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are strings (denoting child keys),
// integers (denoting child offsets), functions (see below), or nil. If the
// path cannot be completely consumed, traversal stops and an error is
// recorded. Use Err to recover the error.
//
// A string matches the key of a child of the current node. Since array
// elements are keyed by index labels, "[2]" selects the third element of an
// array. A Property node is traversed through to its value before matching.
//
// An integer selects a child of an object or array by position. Negative
// indices count backward from the end (-1 is last, -2 second last).
//
// A function must have the signature
//
//	func(*tree.Node) (*tree.Node, error)
//
// and its result becomes the next node in the sequence. If the function
// reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Node()
	for _, elt := range path {
		if cur != nil && cur.Kind == tree.KindProperty && len(cur.Children) == 1 {
			cur = c.push(cur.Children[0])
		}

		switch t := elt.(type) {
		case string:
			if cur == nil || !cur.Kind.IsContainer() {
				return c.setErrorf("cannot traverse %v with %q", cur, t)
			}
			next := cur.Find(t)
			if next == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(next)

		case int:
			if cur == nil || !cur.Kind.IsContainer() {
				return c.setErrorf("cannot traverse %v with %v", cur, t)
			}
			i, ok := fixBound(len(cur.Children), t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, len(cur.Children))
			}
			cur = c.push(cur.Children[i])

		case func(*tree.Node) (*tree.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n *tree.Node) *tree.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
