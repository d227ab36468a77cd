// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package gentree implements rooted gene trees
// read from Newick files,
// with node names,
// branch lengths,
// and support values on internal nodes.
package gentree

import (
	"iter"
	"slices"
)

// A Tree is a rooted, ordered phylogenetic tree.
//
// Nodes are addressed by integer IDs
// that remain stable across mutations of the tree.
// The zero value is not usable;
// trees are created by Parse or Read.
type Tree struct {
	root  int
	nodes []*node
}

// A node is a node in a gene tree.
//
// Children and parent are stored as indices
// on the node arena of the tree,
// so the parent link is a back-reference
// and not an ownership edge.
type node struct {
	parent   int
	children []int

	name string

	support    float64
	hasSupport bool

	branch    float64
	hasBranch bool

	removed bool
}

// newTree creates an empty tree.
func newTree() *Tree {
	return &Tree{root: -1}
}

// addNode adds a new node as the last child
// of the indicated parent
// and returns its ID.
// If parent is negative,
// the node will be the root of the tree.
func (t *Tree) addNode(parent int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, &node{parent: parent})
	if parent < 0 {
		t.root = id
		return id
	}
	p := t.nodes[parent]
	p.children = append(p.children, id)
	return id
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	n := 0
	for _, nd := range t.nodes {
		if !nd.removed {
			n++
		}
	}
	return n
}

// Has reports whether the indicated node
// is part of the tree.
func (t *Tree) Has(id int) bool {
	if id < 0 || id >= len(t.nodes) {
		return false
	}
	return !t.nodes[id].removed
}

// Parent returns the ID of the parent
// of the indicated node.
// It returns -1 for the root
// or an unknown node.
func (t *Tree) Parent(id int) int {
	if !t.Has(id) {
		return -1
	}
	return t.nodes[id].parent
}

// Children returns the IDs of the children
// of the indicated node,
// in insertion order.
func (t *Tree) Children(id int) []int {
	if !t.Has(id) {
		return nil
	}
	return slices.Clone(t.nodes[id].children)
}

// Siblings returns the IDs of the other children
// of the parent of the indicated node.
// It returns an empty slice for the root.
func (t *Tree) Siblings(id int) []int {
	p := t.Parent(id)
	if p < 0 {
		return nil
	}
	var sibs []int
	for _, c := range t.nodes[p].children {
		if c != id {
			sibs = append(sibs, c)
		}
	}
	return sibs
}

// IsRoot reports whether the indicated node
// is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return t.Has(id) && id == t.root
}

// IsTerm reports whether the indicated node
// is a terminal (a leaf) of the tree.
func (t *Tree) IsTerm(id int) bool {
	if !t.Has(id) {
		return false
	}
	return len(t.nodes[id].children) == 0
}

// Name returns the name of the indicated node.
// Internal nodes might be unnamed.
func (t *Tree) Name(id int) string {
	if !t.Has(id) {
		return ""
	}
	return t.nodes[id].name
}

// Support returns the support value
// of the indicated node,
// and reports whether the node has one.
func (t *Tree) Support(id int) (float64, bool) {
	if !t.Has(id) {
		return 0, false
	}
	n := t.nodes[id]
	return n.support, n.hasSupport
}

// Branch returns the length of the branch
// between the indicated node and its parent,
// and reports whether the length is defined.
func (t *Tree) Branch(id int) (float64, bool) {
	if !t.Has(id) {
		return 0, false
	}
	n := t.nodes[id]
	return n.branch, n.hasBranch
}

// SetBranch sets the length of the branch
// between the indicated node and its parent.
func (t *Tree) SetBranch(id int, v float64) {
	if !t.Has(id) {
		return
	}
	n := t.nodes[id]
	n.branch = v
	n.hasBranch = true
}

// Leaves returns an iterator over the leaves of the tree,
// in depth-first order,
// following the insertion order of the children.
// The sequence is restartable.
func (t *Tree) Leaves() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.root < 0 {
			return
		}
		stack := []int{t.root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.nodes[id]
			if len(n.children) == 0 {
				if !yield(id) {
					return
				}
				continue
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

// Terms returns the names of the leaves of the tree,
// in depth-first order.
func (t *Tree) Terms() []string {
	var terms []string
	for id := range t.Leaves() {
		terms = append(terms, t.nodes[id].name)
	}
	return terms
}

// FindByName returns the IDs of all the nodes
// with the indicated name.
// Names are not guaranteed to be unique,
// in particular across independently built gene trees,
// so all matches are reported.
func (t *Tree) FindByName(name string) []int {
	if name == "" {
		return nil
	}
	var ids []int
	for id, n := range t.nodes {
		if n.removed {
			continue
		}
		if n.name == name {
			ids = append(ids, id)
		}
	}
	return ids
}

// LeafSet returns the set of leaf names
// reachable from the indicated node.
// The set is computed on each call,
// as the tree can change between calls.
func (t *Tree) LeafSet(id int) map[string]bool {
	if !t.Has(id) {
		return nil
	}
	ls := make(map[string]bool)
	stack := []int{id}
	for len(stack) > 0 {
		nid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[nid]
		if len(n.children) == 0 {
			ls[n.name] = true
			continue
		}
		stack = append(stack, n.children...)
	}
	return ls
}

// Detach removes the link
// between the indicated node and its parent.
// The node and its descendants remain valid
// until re-attached or removed.
func (t *Tree) Detach(id int) {
	p := t.Parent(id)
	if p < 0 {
		return
	}
	pn := t.nodes[p]
	pn.children = slices.DeleteFunc(pn.children, func(c int) bool { return c == id })
	t.nodes[id].parent = -1
}

// Attach adds a detached node
// as the last child of the indicated parent.
func (t *Tree) Attach(parent, id int) {
	if !t.Has(parent) || !t.Has(id) {
		return
	}
	if t.nodes[id].parent >= 0 {
		return
	}
	t.nodes[id].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	if id == t.root {
		t.root = -1
	}
}

// SetRoot makes a detached node
// the new root of the tree,
// discarding its branch length.
func (t *Tree) SetRoot(id int) {
	if !t.Has(id) {
		return
	}
	n := t.nodes[id]
	n.parent = -1
	n.branch = 0
	n.hasBranch = false
	t.root = id
}

// Remove deletes the indicated node
// and all of its descendants from the tree.
// The node is detached from its parent first.
func (t *Tree) Remove(id int) {
	if !t.Has(id) {
		return
	}
	t.Detach(id)
	stack := []int{id}
	for len(stack) > 0 {
		nid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[nid]
		stack = append(stack, n.children...)
		n.children = nil
		n.parent = -1
		n.removed = true
	}
	if id == t.root {
		t.root = -1
	}
}
