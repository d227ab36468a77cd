// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prune implements the removal of named nodes
// from a gene tree,
// reconnecting the surviving siblings
// and conserving branch lengths.
package prune

import (
	"errors"
	"fmt"

	"github.com/liqianghou2022/Eudicots/gentree"
)

// ErrPruneRoot is returned when a name to prune
// is the root of the tree.
// Root deletion is unsupported:
// the caller must decide what an empty tree means.
var ErrPruneRoot = errors.New("prune: node is the root of the tree")

// Nodes removes every node matching each of the given names
// from the tree, in place.
// Names are case sensitive
// and names without a match are skipped silently.
//
// Names are processed in the order given:
// removing a node can change the sibling and ancestor
// relationships of nodes removed later,
// so callers that need independent removals
// should prune disjoint subtrees in separate calls.
//
// When a removed node has a single sibling,
// the sibling is reattached to its grandparent
// with a branch length equal to the sum
// of its own branch and the branch of its former parent,
// so the path length from the grandparent
// to any descendant of the sibling is conserved.
// If there is no grandparent
// the sibling becomes the new root
// and its branch length is discarded.
func Nodes(t *gentree.Tree, names []string) error {
	for _, name := range names {
		ids := t.FindByName(name)
		for _, id := range ids {
			// a previous removal can take out
			// other nodes with the same name
			if !t.Has(id) {
				continue
			}
			if err := remove(t, id); err != nil {
				return fmt.Errorf("prune %q: %w", name, err)
			}
		}
	}
	return nil
}

func remove(t *gentree.Tree, id int) error {
	parent := t.Parent(id)
	if parent < 0 {
		return ErrPruneRoot
	}

	sibs := t.Siblings(id)
	if len(sibs) != 1 {
		t.Remove(id)
		return nil
	}

	sib := sibs[0]
	sibBr, _ := t.Branch(sib)
	parBr, _ := t.Branch(parent)
	grand := t.Parent(parent)

	t.Detach(sib)
	if grand < 0 {
		// the parent was the root
		t.SetRoot(sib)
		t.Remove(parent)
		return nil
	}
	t.Attach(grand, sib)
	t.SetBranch(sib, parBr+sibBr)

	// the parent is now a degree one relic
	t.Remove(parent)
	return nil
}
