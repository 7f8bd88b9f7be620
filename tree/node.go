// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package tree defines an editable tree model for JSON documents, with a
// parser that builds trees from JSON text and a formatter that renders them
// back to indented JSON.
//
// Every JSON value is a *Node. An object has one child per member, keyed by
// the member name; an array has one child per element, keyed by a synthetic
// label "[i]" giving its index. Scalar payloads are stored in the Value field
// as a string, a Number, a bool, or nil for null.
package tree

import (
	"fmt"
	"strings"
)

// Kind identifies the type of JSON value represented by a Node.
type Kind int

// Constants defining the valid Kind values.
const (
	KindObject   Kind = iota // object: members in Children
	KindArray                // array: elements in Children
	KindProperty             // a member wrapper whose single child is its value
	KindString               // string: Value is a string
	KindNumber               // number: Value is a Number
	KindBoolean              // Boolean constant: Value is a bool
	KindNull                 // null: Value is nil
)

var kindStr = [...]string{
	KindObject:   "Object",
	KindArray:    "Array",
	KindProperty: "Property",
	KindString:   "String",
	KindNumber:   "Number",
	KindBoolean:  "Boolean",
	KindNull:     "Null",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindStr[k]
}

// IsContainer reports whether nodes of kind k carry children instead of a
// scalar value.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray || k == KindProperty
}

// A Node is a single value in a JSON document tree.
type Node struct {
	Key      string // member name, "[i]" for array elements, "" for the root
	Value    any    // scalar payload; nil for containers and null
	Kind     Kind
	Children []*Node

	// The 1-based line and byte column where the node begins in its source
	// text, or 0 if unknown. For object members this is the position of the
	// member key.
	Line, Column int

	// Expanded records whether a viewer has the node open. It is not part of
	// the JSON value.
	Expanded bool

	parent *Node // not owned; used to compute paths
}

// Parent returns the parent of n, or nil if n is a root or was not attached
// with Add.
func (n *Node) Parent() *Node { return n.parent }

// Path returns the keys of n and its ancestors, excluding the root, joined
// with ".". The path of a root node is "".
//
// Paths identify nodes across reparses of the same document. They are not
// unique if an object has duplicate member names.
func (n *Node) Path() string {
	var keys []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		keys = append(keys, cur.Key)
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return strings.Join(keys, ".")
}

// Add appends children to n and sets their parent to n. It returns n to
// permit chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
	}
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first child of n with the given key, or nil.
func (n *Node) Find(key string) *Node {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindObject, KindArray, KindProperty:
		return fmt.Sprintf("%s %q (%d children)", n.Kind, n.Key, len(n.Children))
	case KindNull:
		return fmt.Sprintf("%s %q", n.Kind, n.Key)
	default:
		return fmt.Sprintf("%s %q = %v", n.Kind, n.Key, n.Value)
	}
}

// Walk visits n and its descendants in depth-first order, calling f for each
// node. If f returns false, the children of that node are skipped.
func Walk(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, f)
	}
}

// NewObject returns an object node with the given key and members.
func NewObject(key string, members ...*Node) *Node {
	return (&Node{Key: key, Kind: KindObject}).Add(members...)
}

// NewArray returns an array node with the given key and elements. The keys of
// the elements are replaced with their index labels.
func NewArray(key string, elems ...*Node) *Node {
	for i, e := range elems {
		e.Key = IndexKey(i)
	}
	return (&Node{Key: key, Kind: KindArray}).Add(elems...)
}

// NewProperty returns a member node wrapping value.
func NewProperty(key string, value *Node) *Node {
	return (&Node{Key: key, Kind: KindProperty}).Add(value)
}

// NewString returns a string node.
func NewString(key, s string) *Node { return &Node{Key: key, Kind: KindString, Value: s} }

// NewNumber returns a number node.
func NewNumber(key string, n Number) *Node { return &Node{Key: key, Kind: KindNumber, Value: n} }

// NewBool returns a Boolean node.
func NewBool(key string, b bool) *Node { return &Node{Key: key, Kind: KindBoolean, Value: b} }

// NewNull returns a null node.
func NewNull(key string) *Node { return &Node{Key: key, Kind: KindNull} }

// IndexKey returns the synthetic key for the array element at index i.
func IndexKey(i int) string { return fmt.Sprintf("[%d]", i) }
