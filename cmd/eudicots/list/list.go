// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// an index of the trees of one or more tree files.
package list

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
)

var Command = &command.Command{
	Usage: "list <tree-file>...",
	Short: "print an index of the trees of a tree file",
	Long: `
Command list reads one or more gene tree files in Newick format and prints
one line per tree with the file name, the ordinal of the tree on the file,
and its number of leaves. Malformed trees are reported and skipped.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		return c.UsageError("expecting tree files")
	}

	for _, fn := range args {
		blob, err := os.ReadFile(fn)
		if err != nil {
			return err
		}
		for i, stmt := range gentree.Split(string(blob)) {
			t, err := gentree.Parse(stmt)
			if err != nil {
				fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", fn, i+1, err)
				continue
			}
			leaves := 0
			for range t.Leaves() {
				leaves++
			}
			fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", fn, i+1, leaves)
		}
	}
	return nil
}
