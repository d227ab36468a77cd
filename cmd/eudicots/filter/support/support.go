// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support implements a command to filter gene trees
// by support values and internal branch lengths.
package support

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/treestat"
)

var Command = &command.Command{
	Usage: `support -i|--input <tree-file> -o|--output <tree-file>
	[-t|--support <value>] [-b|--branch <value>]`,
	Short: "filter gene trees by support values",
	Long: `
Command support reads gene trees in Newick format and keeps only the trees in
which every internal node support value, and every internal branch length, is
at least as large as the given thresholds.

A tree without internal support values, or without internal branch lengths,
is always removed: such trees cannot be told apart from trees that would fail
the thresholds.

The flag --input, or -i, is required and sets the input tree file. The flag
--output, or -o, is required and sets the file for the trees that pass the
filter. Trees are written exactly as they were read.

The flag --support, or -t, sets the minimum support value, with a default of
0.7; support values can be bootstrap proportions, percentages, or posterior
probabilities, the filter does not scale them. The flag --branch, or -b, sets
the minimum internal branch length, with a default of 0.01.

Malformed trees are skipped and do not stop the run. The number of trees read
and the number of trees kept are printed at the end of the run.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var minSupport float64
var minBranch float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().Float64Var(&minSupport, "support", 0.7, "")
	c.Flags().Float64Var(&minSupport, "t", 0.7, "")
	c.Flags().Float64Var(&minBranch, "branch", 0.01, "")
	c.Flags().Float64Var(&minBranch, "b", 0.01, "")
}

func run(c *command.Command, args []string) error {
	if input == "" {
		return c.UsageError("expecting input file, flag --input")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
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

	flt := treestat.SupportFilter{
		MinSupport: minSupport,
		MinBranch:  minBranch,
	}

	total := 0
	passed := 0
	for _, s := range gentree.Split(string(blob)) {
		total++
		t, err := gentree.Parse(s)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", input, total, err)
			continue
		}
		if !flt.Accept(t) {
			continue
		}
		if _, err := fmt.Fprintf(f, "%s\n", s); err != nil {
			return fmt.Errorf("on file %q: %v", output, err)
		}
		passed++
	}

	fmt.Fprintf(c.Stdout(), "trees read:   %d\n", total)
	fmt.Fprintf(c.Stdout(), "trees passed: %d\n", passed)
	return nil
}
