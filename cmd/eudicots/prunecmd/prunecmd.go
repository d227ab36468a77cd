// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prunecmd implements a command to remove named nodes
// from gene trees.
package prunecmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/prune"
)

var Command = &command.Command{
	Usage: `prune -i|--input <tree-file> -o|--output <tree-file>
	<name>...`,
	Short: "remove named nodes from gene trees",
	Long: `
Command prune reads gene trees in Newick format and removes every node with
one of the given names, case sensitive, from every tree. Names without a
match are ignored.

When the removed node leaves a single sibling, the sibling is reattached to
its grandparent and its branch length is increased by the branch length of
its former parent, so the path lengths of the surviving leaves are conserved.
If there is no grandparent, the sibling becomes the new root of the tree.

Names are processed in the order given on the command line: removing a node
can change the relatives of a node removed later. To prune independent
subtrees use separate runs.

The root of a tree cannot be pruned; the attempt is reported and the tree is
written as it stands at that point.

The flag --input, or -i, is required and sets the input tree file. The flag
--output, or -o, is required and sets the output file. The output trees are
written with node names and branch lengths, without support values, and with
branch lengths as fixed decimals of 10 digits, so no branch falls into
exponent notation.

Malformed trees are skipped and do not stop the run.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

// branchPrecision is the number of decimals
// used for branch lengths on output trees.
const branchPrecision = 10

func run(c *command.Command, args []string) error {
	if input == "" {
		return c.UsageError("expecting input file, flag --input")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
	}
	if len(args) == 0 {
		return c.UsageError("expecting names to prune")
	}

	blob, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	total := 0
	written := 0
	for _, s := range gentree.Split(string(blob)) {
		total++
		t, err := gentree.Parse(s)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", input, total, err)
			continue
		}
		if err := prune.Nodes(t, args); err != nil {
			if !errors.Is(err, prune.ErrPruneRoot) {
				return fmt.Errorf("on file %q: tree %d: %v", input, total, err)
			}
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", input, total, err)
		}
		if err := t.Newick(f, branchPrecision); err != nil {
			return fmt.Errorf("on file %q: %v", output, err)
		}
		if _, err := fmt.Fprintln(f); err != nil {
			return fmt.Errorf("on file %q: %v", output, err)
		}
		written++
	}

	fmt.Fprintf(c.Stdout(), "trees read:    %d\n", total)
	fmt.Fprintf(c.Stdout(), "trees written: %d\n", written)
	return nil
}
