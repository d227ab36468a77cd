// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gentree

import (
	"io"
	"strconv"
	"strings"
)

// Newick writes the tree as a single Newick statement,
// with node names and branch lengths
// but without support values,
// the output style used for pruned trees.
//
// Branch lengths are written as fixed decimals
// with the indicated precision,
// as downstream line-oriented parsers
// choke on exponent notation.
// The output is deterministic:
// the same tree and precision
// always produce the same bytes.
func (t *Tree) Newick(w io.Writer, precision int) error {
	var sb strings.Builder
	if t.root >= 0 {
		t.writeNode(&sb, t.root, precision)
	}
	sb.WriteByte(';')
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *Tree) writeNode(sb *strings.Builder, id, precision int) {
	n := t.nodes[id]
	if len(n.children) > 0 {
		sb.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				sb.WriteByte(',')
			}
			t.writeNode(sb, c, precision)
		}
		sb.WriteByte(')')
	}
	writeName(sb, n.name)
	if n.hasBranch {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(n.branch, 'f', precision, 64))
	}
}

func writeName(sb *strings.Builder, name string) {
	if name == "" {
		return
	}
	if strings.ContainsAny(name, " ()[]':;,\t\n") {
		sb.WriteByte('\'')
		sb.WriteString(name)
		sb.WriteByte('\'')
		return
	}
	sb.WriteString(name)
}
