// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

// ExpansionState records which container nodes of a tree are expanded, keyed
// by node path. It carries view state from one parse of a document to the
// next, since a reparse builds fresh nodes.
type ExpansionState map[string]bool

// Capture records the expansion state of every container in root.
func Capture(root *Node) ExpansionState {
	es := make(ExpansionState)
	Walk(root, func(n *Node) bool {
		if n.Kind.IsContainer() {
			es[n.Path()] = n.Expanded
		}
		return true
	})
	return es
}

// Apply sets the Expanded flag of each container in root whose path has a
// recorded state. Containers not recorded in es are left unchanged.
//
// If an object has duplicate member names, the last recorded state for the
// shared path is applied to all of them.
func (es ExpansionState) Apply(root *Node) {
	Walk(root, func(n *Node) bool {
		if !n.Kind.IsContainer() {
			return false
		}
		if v, ok := es[n.Path()]; ok {
			n.Expanded = v
		}
		return true
	})
}

// ExpandAll sets the Expanded flag of every container in root to ok, down to
// the given depth below root. A negative depth means no limit.
func ExpandAll(root *Node, depth int, ok bool) {
	expandTo(root, depth, ok)
}

func expandTo(n *Node, depth int, ok bool) {
	if n == nil || depth == 0 || !n.Kind.IsContainer() {
		return
	}
	n.Expanded = ok
	for _, c := range n.Children {
		expandTo(c, depth-1, ok)
	}
}
