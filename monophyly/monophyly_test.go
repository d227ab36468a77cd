// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package monophyly_test

import (
	"errors"
	"testing"

	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/monophyly"
)

func set(names ...string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func TestCheck(t *testing.T) {
	tests := map[string]struct {
		newick  string
		targets map[string]bool
		want    bool
	}{
		"clade": {
			newick:  "((1,2),(3,4));",
			targets: set("1", "2"),
			want:    true,
		},
		"intermingled": {
			newick:  "((1,3),(2,4));",
			targets: set("1", "2"),
			want:    false,
		},
		"nested clade": {
			newick:  "(((1,2),3),4);",
			targets: set("1", "2", "3"),
			want:    true,
		},
		"paraphyletic": {
			newick:  "(((1,2),3),4);",
			targets: set("1", "3"),
			want:    false,
		},
		"absent names ignored": {
			newick:  "((1,2),(3,4));",
			targets: set("1", "2", "99"),
			want:    true,
		},
		"single leaf": {
			newick:  "((1,3),(2,4));",
			targets: set("1"),
			want:    true,
		},
		"single present": {
			newick:  "((1,3),(2,4));",
			targets: set("1", "77", "88"),
			want:    true,
		},
		"whole tree": {
			newick:  "((1,2),(3,4));",
			targets: set("1", "2", "3", "4"),
			want:    true,
		},
	}

	for name, test := range tests {
		tr, err := gentree.Parse(test.newick)
		if err != nil {
			t.Fatalf("%s: parse: unexpected error: %v", name, err)
		}
		got, err := monophyly.Check(tr, test.targets)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestCheckError(t *testing.T) {
	tr, err := gentree.Parse("((1,2),(3,4));")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}

	if _, err := monophyly.Check(tr, nil); !errors.Is(err, monophyly.ErrNoTargets) {
		t.Errorf("empty set: got error %v, want %v", err, monophyly.ErrNoTargets)
	}
	if _, err := monophyly.Check(tr, set("7", "8")); !errors.Is(err, monophyly.ErrNotInTree) {
		t.Errorf("absent set: got error %v, want %v", err, monophyly.ErrNotInTree)
	}
}

func TestCheckReadOnly(t *testing.T) {
	tr, err := gentree.Parse("((1:0.5,2:0.5):0.5,(3:0.5,4:0.5):0.5);")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}
	if _, err := monophyly.Check(tr, set("1", "3")); err != nil {
		t.Fatalf("check: unexpected error: %v", err)
	}

	if got := tr.Terms(); len(got) != 4 {
		t.Errorf("terms after check: got %v", got)
	}
	if got := tr.Len(); got != 7 {
		t.Errorf("len after check: got %d, want 7", got)
	}
}
