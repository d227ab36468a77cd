// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treestat_test

import (
	"math"
	"testing"

	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/treestat"
)

func set(names ...string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func parse(t testing.TB, nwk string) *gentree.Tree {
	t.Helper()

	tr, err := gentree.Parse(nwk)
	if err != nil {
		t.Fatalf("parse %q: unexpected error: %v", nwk, err)
	}
	return tr
}

func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if math.Abs(v-b[i]) > 1e-10 {
			return false
		}
	}
	return true
}

func TestExtraction(t *testing.T) {
	tr := parse(t, "((A:0.1,B:0.2)0.95:0.05,(C:0.15,D:0.18)0.88:0.03)1.0:0.0;")

	sup := treestat.Supports(tr)
	if want := []float64{0.95, 0.88, 1.0}; !equalValues(sup, want) {
		t.Errorf("supports: got %v, want %v", sup, want)
	}

	br := treestat.InternalBranches(tr)
	if want := []float64{0.05, 0.03, 0.0}; !equalValues(br, want) {
		t.Errorf("internal branches: got %v, want %v", br, want)
	}
}

func TestSupportFilter(t *testing.T) {
	tr := parse(t, "((A:0.1,B:0.2)0.95:0.05,(C:0.15,D:0.18)0.88:0.03)1.0:0.0;")

	strict := treestat.SupportFilter{MinSupport: 0.9, MinBranch: 0.0}
	if strict.Accept(tr) {
		t.Errorf("filter (0.9, 0.0): tree accepted, the 0.88 node should reject it")
	}

	loose := treestat.SupportFilter{MinSupport: 0.8, MinBranch: 0.0}
	if !loose.Accept(tr) {
		t.Errorf("filter (0.8, 0.0): tree rejected")
	}

	branch := treestat.SupportFilter{MinSupport: 0.8, MinBranch: 0.04}
	if branch.Accept(tr) {
		t.Errorf("filter (0.8, 0.04): tree accepted, the 0.03 branch should reject it")
	}

	// a tree without annotations is never passed silently
	bare := parse(t, "((A,B),(C,D));")
	if loose.Accept(bare) {
		t.Errorf("filter: unannotated tree accepted")
	}
}

func TestMinLeaves(t *testing.T) {
	tr := parse(t, "((A,B),(C,D));")
	if !treestat.MinLeaves(tr, 4) {
		t.Errorf("min leaves 4: tree with 4 leaves rejected")
	}
	if treestat.MinLeaves(tr, 5) {
		t.Errorf("min leaves 5: tree with 4 leaves accepted")
	}
}

func TestGroupCoverage(t *testing.T) {
	m := map[string]string{
		"A": "Brassicales",
		"B": "Brassicales",
		"C": "Malvales",
		"D": "Vitales",
	}
	tr := parse(t, "((A,B),(C,X));")

	two := treestat.GroupCoverage{Mapping: m, Required: 2}
	if !two.Accept(tr) {
		t.Errorf("coverage 2: tree with 2 groups rejected")
	}
	three := treestat.GroupCoverage{Mapping: m, Required: 3}
	if three.Accept(tr) {
		t.Errorf("coverage 3: tree with 2 groups accepted")
	}
}

func TestClassifyWGD(t *testing.T) {
	a := set("1", "2")
	b := set("3", "4")

	tests := map[string]struct {
		newick string
		want   treestat.Class
		ok     bool
	}{
		"independent": {
			newick: "((1,2),(3,4));",
			want:   treestat.Independent,
			ok:     true,
		},
		"shared": {
			newick: "((1,3),(2,4));",
			want:   treestat.Shared,
			ok:     true,
		},
		"uncertain": {
			newick: "(((1,2),3),(4,X));",
			want:   treestat.Uncertain,
			ok:     true,
		},
		"missing b copy": {
			newick: "((1,2,3),4);",
			ok:     false,
		},
		"missing both": {
			newick: "((1,X),(Y,Z));",
			ok:     false,
		},
	}

	for name, test := range tests {
		tr := parse(t, test.newick)
		got, ok := treestat.ClassifyWGD(tr, a, b)
		if ok != test.ok {
			t.Errorf("%s: informative: got %v, want %v", name, ok, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %s, want %s", name, got, test.want)
		}
	}
}

// The triplication test classifies every tree:
// a species with at most one copy on the tree
// counts as monophyletic.
// This is looser than the duplication test
// and deliberately so.
func TestClassifyWGT(t *testing.T) {
	a := set("1", "2", "3")
	b := set("4", "5", "6")

	tests := map[string]struct {
		newick string
		want   treestat.Class
	}{
		"both clades": {
			newick: "((1,2,3),(4,5,6));",
			want:   treestat.NonShared,
		},
		"neither clade": {
			newick: "(((1,2),4),((3,5),6));",
			want:   treestat.Shared,
		},
		"a clade only": {
			newick: "(((1,2),3),((4,6),(5,X)));",
			want:   treestat.NonShared,
		},
		"intermingled": {
			newick: "((1,4),((2,5),(3,6)));",
			want:   treestat.Shared,
		},
		"single a copy": {
			newick: "((1,4),(5,6));",
			want:   treestat.NonShared,
		},
		"no a copy": {
			newick: "((4,5),(6,X));",
			want:   treestat.NonShared,
		},
	}

	for name, test := range tests {
		tr := parse(t, test.newick)
		if got := treestat.ClassifyWGT(tr, a, b); got != test.want {
			t.Errorf("%s: got %s, want %s", name, got, test.want)
		}
	}
}
