// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treestat implements statistics and filters
// over gene trees:
// support and branch length extraction,
// leaf count and group coverage filters,
// and the classification of trees
// by shared or independent polyploidy events.
package treestat

import (
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/monophyly"
)

// Supports returns the support values
// of the internal nodes of a tree,
// in the order in which their closing parenthesis
// appears on the Newick form.
//
// The values come from the parsed tree,
// not from scanning the serialized text,
// so ambiguous numeric tokens are not an issue.
func Supports(t *gentree.Tree) []float64 {
	var vals []float64
	internalWalk(t, t.Root(), func(id int) {
		if v, ok := t.Support(id); ok {
			vals = append(vals, v)
		}
	})
	return vals
}

// InternalBranches returns the branch lengths
// of the internal nodes of a tree,
// in the order in which their closing parenthesis
// appears on the Newick form.
func InternalBranches(t *gentree.Tree) []float64 {
	var vals []float64
	internalWalk(t, t.Root(), func(id int) {
		if v, ok := t.Branch(id); ok {
			vals = append(vals, v)
		}
	})
	return vals
}

// internalWalk visits the internal nodes of a tree
// in the order of their closing parenthesis,
// i.e. children before their parent.
func internalWalk(t *gentree.Tree, id int, fn func(id int)) {
	if id < 0 || t.IsTerm(id) {
		return
	}
	for _, c := range t.Children(id) {
		internalWalk(t, c, fn)
	}
	fn(id)
}

// A SupportFilter accepts trees
// in which every internal support value
// and every internal branch length
// reach the given minimums.
type SupportFilter struct {
	MinSupport float64
	MinBranch  float64
}

// Accept reports whether the tree passes the filter.
// A tree without internal support values
// or without internal branch lengths
// is rejected,
// never passed silently.
func (f SupportFilter) Accept(t *gentree.Tree) bool {
	sup := Supports(t)
	br := InternalBranches(t)
	if len(sup) == 0 || len(br) == 0 {
		return false
	}
	for _, v := range sup {
		if v < f.MinSupport {
			return false
		}
	}
	for _, v := range br {
		if v < f.MinBranch {
			return false
		}
	}
	return true
}

// MinLeaves reports whether the tree
// has at least n leaves.
func MinLeaves(t *gentree.Tree, n int) bool {
	c := 0
	for range t.Leaves() {
		c++
		if c >= n {
			return true
		}
	}
	return c >= n
}

// A GroupCoverage filter accepts trees
// with leaves from at least Required distinct groups,
// given a mapping from leaf name to group label.
type GroupCoverage struct {
	Mapping  map[string]string
	Required int
}

// Accept reports whether the tree covers enough groups.
func (f GroupCoverage) Accept(t *gentree.Tree) bool {
	seen := make(map[string]bool)
	for id := range t.Leaves() {
		g, ok := f.Mapping[t.Name(id)]
		if !ok {
			continue
		}
		if !seen[g] {
			seen[g] = true
			if len(seen) >= f.Required {
				return true
			}
		}
	}
	return len(seen) >= f.Required
}

// A Class is the classification of a gene tree
// with respect to a polyploidy event
// shared, or not, by two species.
type Class int

const (
	// Both copy sets are monophyletic:
	// the duplication postdates the speciation.
	Independent Class = iota

	// Neither copy set is monophyletic:
	// the copies are intermingled
	// and the event predates the speciation.
	Shared

	// Exactly one copy set is monophyletic.
	Uncertain

	// At least one copy set is monophyletic
	// (the triplication classes do not distinguish
	// independent from uncertain).
	NonShared
)

func (c Class) String() string {
	switch c {
	case Independent:
		return "independent"
	case Shared:
		return "shared"
	case Uncertain:
		return "uncertain"
	case NonShared:
		return "non-shared"
	}
	return "unknown"
}

// ClassifyWGD classifies a gene tree
// for a whole genome duplication analysis,
// in which each species is expected
// to retain two gene copies.
// Sets a and b are the copy names of each species.
//
// Trees with less than two copies of either species
// are not informative and are skipped:
// the second return value is false.
func ClassifyWGD(t *gentree.Tree, a, b map[string]bool) (Class, bool) {
	if countPresent(t, a) < 2 || countPresent(t, b) < 2 {
		return 0, false
	}
	monoA, _ := monophyly.Check(t, a)
	monoB, _ := monophyly.Check(t, b)
	switch {
	case monoA && monoB:
		return Independent, true
	case !monoA && !monoB:
		return Shared, true
	}
	return Uncertain, true
}

// ClassifyWGT classifies a gene tree
// for a whole genome triplication analysis.
// Sets a and b are the copy names of each species.
//
// Unlike ClassifyWGD,
// every tree is classified:
// a species with at most one copy on the tree
// is taken as vacuously monophyletic.
// The looser acceptance is deliberate
// and must not be unified with the duplication rule.
func ClassifyWGT(t *gentree.Tree, a, b map[string]bool) Class {
	monoA := vacuousCheck(t, a)
	monoB := vacuousCheck(t, b)
	if monoA || monoB {
		return NonShared
	}
	return Shared
}

func vacuousCheck(t *gentree.Tree, targets map[string]bool) bool {
	if countPresent(t, targets) < 2 {
		return true
	}
	mono, _ := monophyly.Check(t, targets)
	return mono
}

func countPresent(t *gentree.Tree, targets map[string]bool) int {
	seen := make(map[string]bool)
	for id := range t.Leaves() {
		if n := t.Name(id); targets[n] {
			seen[n] = true
		}
	}
	return len(seen)
}
