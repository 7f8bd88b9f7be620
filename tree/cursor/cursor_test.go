// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsurf/tree"
	"github.com/creachadair/jsurf/tree/cursor"
)

const testJSON = `{
  "list": [
    {"x": 1},
    {"x": 2}
  ],
  "y": {"hello": "there"},
  "flags": {"p": true, "q": false}
}`

func mustParse(t *testing.T) *tree.Node {
	t.Helper()
	res := tree.ParseToTree(testJSON)
	if !res.Success {
		t.Fatalf("Parse: %s", res.ErrorMessage)
	}
	return res.Root
}

func TestCursor(t *testing.T) {
	root := mustParse(t)
	list := root.Children[0]
	errBad := errors.New("bad")

	tests := []struct {
		name string
		path []any
		want *tree.Node
		fail bool
	}{
		{"Empty", nil, root, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"Key", []any{"y", "hello"}, root.Children[1].Children[0], false},
		{"Label", []any{"list", "[1]", "x"}, list.Children[1].Children[0], false},
		{"Index", []any{"list", 0}, list.Children[0], false},
		{"Negative", []any{"list", -1, "x"}, list.Children[1].Children[0], false},
		{"ObjectIndex", []any{1}, root.Children[1], false},
		{"OutOfBounds", []any{"list", 2}, nil, true},
		{"ScalarKey", []any{"y", "hello", "z"}, nil, true},
		{"Nil", []any{"flags", nil, "q"}, root.Children[2].Children[1], false},
		{"Func", []any{"flags", func(n *tree.Node) (*tree.Node, error) {
			return n.Children[len(n.Children)-1], nil
		}}, root.Children[2].Children[1], false},
		{"FuncError", []any{func(*tree.Node) (*tree.Node, error) { return nil, errBad }}, nil, true},
		{"BadElement", []any{3.5}, nil, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := cursor.New(root).Down(test.path...)
			if err := c.Err(); err != nil {
				if !test.fail {
					t.Fatalf("Down(%v): unexpected error: %v", test.path, err)
				}
				t.Logf("Down(%v): got expected error: %v", test.path, err)
				return
			} else if test.fail {
				t.Fatalf("Down(%v): got %v, want error", test.path, c.Node())
			}
			if got := c.Node(); got != test.want {
				t.Errorf("Down(%v): got %v, want %v", test.path, got, test.want)
			}
		})
	}
}

func TestCursorNavigation(t *testing.T) {
	root := mustParse(t)
	c := cursor.New(root)
	if !c.AtOrigin() || c.Origin() != root {
		t.Fatal("New cursor is not at its origin")
	}
	c.Down("list", 0, "x")
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path: got %d nodes, want 4", got)
	}
	if got := c.Up().Node(); got != root.Children[0].Children[0] {
		t.Errorf("Up: got %v, want list[0]", got)
	}
	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down(nonesuch): got nil error")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, error %v", c.AtOrigin(), c.Err())
	}
}

func TestAt(t *testing.T) {
	root := mustParse(t)
	tree.Walk(root, func(n *tree.Node) bool {
		got, err := cursor.At(root, n.Path())
		if err != nil {
			t.Errorf("At(%q): unexpected error: %v", n.Path(), err)
		} else if got != n {
			t.Errorf("At(%q): got %v, want %v", n.Path(), got, n)
		}
		return true
	})
	if got, err := cursor.At(root, "list.[5]"); err == nil {
		t.Errorf("At(list.[5]): got %v, want error", got)
	}
}
