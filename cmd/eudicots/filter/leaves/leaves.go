// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package leaves implements a command to filter gene trees
// by their number of leaves.
package leaves

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/treestat"
)

var Command = &command.Command{
	Usage: `leaves -i|--input <tree-file> -o|--output <tree-file>
	-t|--threshold <number>`,
	Short: "filter gene trees by number of leaves",
	Long: `
Command leaves reads gene trees in Newick format and keeps only the trees
with at least the given number of leaves. Gene trees with few taxa are
usually uninformative for downstream analyses.

The flag --input, or -i, is required and sets the input tree file. The flag
--output, or -o, is required and sets the file for the trees that pass the
filter. Trees are written exactly as they were read.

The flag --threshold, or -t, is required and sets the minimum number of
leaves.

Malformed trees are skipped and do not stop the run. The number of trees read
and the number of trees kept are printed at the end of the run.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var threshold int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().IntVar(&threshold, "threshold", 0, "")
	c.Flags().IntVar(&threshold, "t", 0, "")
}

func run(c *command.Command, args []string) error {
	if input == "" {
		return c.UsageError("expecting input file, flag --input")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
	}
	if threshold < 1 {
		return c.UsageError("expecting leaf threshold, flag --threshold")
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
	passed := 0
	for _, s := range gentree.Split(string(blob)) {
		total++
		t, err := gentree.Parse(s)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", input, total, err)
			continue
		}
		if !treestat.MinLeaves(t, threshold) {
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
