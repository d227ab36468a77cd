// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package monophyly implements the monophyly test
// used to detect whether the gene copies of a species
// form a clade on a gene tree.
package monophyly

import (
	"errors"

	"github.com/liqianghou2022/Eudicots/gentree"
)

var (
	// ErrNoTargets is returned when the target set is empty.
	ErrNoTargets = errors.New("monophyly: empty target set")

	// ErrNotInTree is returned when no target name
	// is a leaf of the tree.
	ErrNotInTree = errors.New("monophyly: no target name in tree")
)

// Check reports whether the target names,
// restricted to the leaves present on the tree,
// form a monophyletic group.
//
// A set with less than two leaves on the tree
// is vacuously monophyletic:
// a single gene copy is always a clade.
// The whole-genome triplication statistics
// depend on that policy,
// so it must not be tightened.
func Check(t *gentree.Tree, targets map[string]bool) (bool, error) {
	if len(targets) == 0 {
		return false, ErrNoTargets
	}

	var ids []int
	present := make(map[string]bool)
	for id := range t.Leaves() {
		if targets[t.Name(id)] {
			ids = append(ids, id)
			present[t.Name(id)] = true
		}
	}
	if len(ids) == 0 {
		return false, ErrNotInTree
	}
	if len(present) < 2 {
		return true, nil
	}

	// The target leaves are a clade
	// if and only if their last common ancestor
	// has no leaf outside the target set.
	anc := ids[0]
	for _, id := range ids[1:] {
		anc = common(t, anc, id)
	}
	for name := range t.LeafSet(anc) {
		if !targets[name] {
			return false, nil
		}
	}
	return true, nil
}

// common returns the last common ancestor
// of two nodes.
func common(t *gentree.Tree, a, b int) int {
	da := depth(t, a)
	db := depth(t, b)
	for da > db {
		a = t.Parent(a)
		da--
	}
	for db > da {
		b = t.Parent(b)
		db--
	}
	for a != b {
		a = t.Parent(a)
		b = t.Parent(b)
	}
	return a
}

func depth(t *gentree.Tree, id int) int {
	d := 0
	for p := t.Parent(id); p >= 0; p = t.Parent(p) {
		d++
		id = p
	}
	return d
}
