// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gentree_test

import (
	"reflect"
	"testing"

	"github.com/liqianghou2022/Eudicots/gentree"
)

func TestLeaves(t *testing.T) {
	tr, err := gentree.Parse("((A,B)n1,(C,(D,E)n3)n2)root;")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}

	var names []string
	for id := range tr.Leaves() {
		names = append(names, tr.Name(id))
	}
	want := []string{"A", "B", "C", "D", "E"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("leaves: got %v, want %v", names, want)
	}

	// the sequence is restartable
	var again []string
	for id := range tr.Leaves() {
		again = append(again, tr.Name(id))
	}
	if !reflect.DeepEqual(again, names) {
		t.Errorf("leaves: second pass got %v, want %v", again, names)
	}

	// and can be stopped early
	stop := 0
	for range tr.Leaves() {
		stop++
		break
	}
	if stop != 1 {
		t.Errorf("leaves: early stop visited %d leaves", stop)
	}
}

func TestFindDuplicates(t *testing.T) {
	tr, err := gentree.Parse("((A,B),(A,C));")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}
	ids := tr.FindByName("A")
	if len(ids) != 2 {
		t.Errorf("find %q: got %d nodes, want 2", "A", len(ids))
	}
	if ids := tr.FindByName("missing"); ids != nil {
		t.Errorf("find %q: got %v, want none", "missing", ids)
	}
}

func TestMutators(t *testing.T) {
	tr, err := gentree.Parse("((A:1,B:2)n1:3,C:4)root;")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}
	if got := tr.Len(); got != 5 {
		t.Fatalf("len: got %d, want 5", got)
	}

	b := tr.FindByName("B")[0]
	n1 := tr.Parent(b)
	root := tr.Root()

	tr.Detach(b)
	if p := tr.Parent(b); p != -1 {
		t.Errorf("detached parent: got %d, want -1", p)
	}
	if c := tr.Children(n1); len(c) != 1 {
		t.Errorf("children after detach: got %v, want one node", c)
	}

	tr.Attach(root, b)
	tr.SetBranch(b, 5)
	if p := tr.Parent(b); p != root {
		t.Errorf("attached parent: got %d, want %d", p, root)
	}
	children := tr.Children(root)
	if tr.Name(children[len(children)-1]) != "B" {
		t.Errorf("attach: node is not the last child: %v", children)
	}
	if v, _ := tr.Branch(b); v != 5 {
		t.Errorf("branch: got %v, want 5", v)
	}

	tr.Remove(n1)
	if tr.Has(n1) {
		t.Errorf("removed node %d is still on the tree", n1)
	}
	if got := tr.Terms(); !reflect.DeepEqual(got, []string{"C", "B"}) {
		t.Errorf("terms after removal: got %v", got)
	}
	if got := tr.Len(); got != 3 {
		t.Errorf("len after removal: got %d, want 3", got)
	}
}
