// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/creachadair/jsurf"
)

// A ParseResult reports the outcome of ParseToTree. If Success is true, Root
// holds the document tree; otherwise ErrorMessage describes the failure and
// Line and Column give its 1-based position, or 0 if unknown.
type ParseResult struct {
	Success      bool
	Root         *Node
	ErrorMessage string
	Line, Column int
}

// ParseToTree parses text as a single strict JSON document and returns its
// tree. It does not report an error; a failure is described by the result.
func ParseToTree(text string) ParseResult {
	src := []byte(text)
	root, err := Parse(src)
	if err == nil {
		return ParseResult{Success: true, Root: root}
	}
	res := ParseResult{ErrorMessage: err.Error()}
	var serr *jsurf.SyntaxError
	if errors.As(err, &serr) {
		res.ErrorMessage = serr.Message
	}
	if lc, ok := jsurf.ErrorPosition(err, src); ok {
		res.Line, res.Column = lc.Line, lc.Column+1
	}
	return res
}

// Parse parses src as a single strict JSON document and returns the root of
// its tree. In case of a syntax error, the error has concrete type
// [*jsurf.SyntaxError].
func Parse(src []byte) (*Node, error) {
	h := new(buildHandler)
	if err := jsurf.NewStream(bytes.NewReader(src)).ParseSingle(h); err != nil {
		return nil, err
	}
	return h.root, nil
}

// A buildHandler implements the jsurf.Handler interface to construct a node
// tree from parser events.
type buildHandler struct {
	root *Node
	stk  []*Node // open containers

	key    string        // key of the pending object member
	keyPos jsurf.LineCol // location of the pending key
}

func (h *buildHandler) top() *Node { return h.stk[len(h.stk)-1] }

// attach adds n to the innermost open container, or makes it the root.
func (h *buildHandler) attach(n *Node, loc jsurf.Anchor) {
	pos := loc.Location().First
	if len(h.stk) == 0 {
		h.root = n
	} else if top := h.top(); top.Kind == KindArray {
		n.Key = IndexKey(len(top.Children))
		top.Add(n)
	} else {
		n.Key = h.key
		pos = h.keyPos
		top.Add(n)
	}
	n.Line, n.Column = pos.Line, pos.Column+1
}

func (h *buildHandler) BeginObject(loc jsurf.Anchor) error {
	n := &Node{Kind: KindObject}
	h.attach(n, loc)
	h.stk = append(h.stk, n)
	return nil
}

func (h *buildHandler) BeginArray(loc jsurf.Anchor) error {
	n := &Node{Kind: KindArray}
	h.attach(n, loc)
	h.stk = append(h.stk, n)
	return nil
}

func (h *buildHandler) EndObject(jsurf.Anchor) error { h.stk = h.stk[:len(h.stk)-1]; return nil }
func (h *buildHandler) EndArray(jsurf.Anchor) error  { h.stk = h.stk[:len(h.stk)-1]; return nil }

func (h *buildHandler) BeginMember(loc jsurf.Anchor) error {
	key, err := jsurf.Unquote(string(loc.Text()))
	if err != nil {
		return fmt.Errorf("at %s: invalid key: %w", loc.Location().First, err)
	}
	h.key, h.keyPos = string(key), loc.Location().First
	return nil
}

func (h *buildHandler) EndMember(jsurf.Anchor) error { return nil }

func (h *buildHandler) Value(loc jsurf.Anchor) error {
	var n *Node
	switch tok := loc.Token(); tok {
	case jsurf.String:
		s, err := jsurf.Unquote(string(loc.Text()))
		if err != nil {
			return fmt.Errorf("at %s: invalid string: %w", loc.Location().First, err)
		}
		n = &Node{Kind: KindString, Value: string(s)}
	case jsurf.Integer, jsurf.Number:
		n = &Node{Kind: KindNumber, Value: Number(loc.Text())}
	case jsurf.True, jsurf.False:
		n = &Node{Kind: KindBoolean, Value: tok == jsurf.True}
	case jsurf.Null:
		n = &Node{Kind: KindNull}
	default:
		return fmt.Errorf("unknown value %v", tok)
	}
	h.attach(n, loc)
	return nil
}

func (h *buildHandler) EndOfInput(jsurf.Anchor) {}
