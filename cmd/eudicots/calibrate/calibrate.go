// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package calibrate implements a command to import
// time calibrated gene trees
// into tab-delimited tree files.
package calibrate

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `calibrate [--name <name>] [--age <value>]
	[-o|--output <tree-file>] [<newick-file>...]`,
	Short: "import time calibrated trees",
	Long: `
Command calibrate reads one or more Newick files with time calibrated trees,
i.e. trees with branch lengths in million years, for example the chloroplast
trees dated with an external tool, and writes them into a single tab-delimited
tree file that can be consumed by time tree based tools.

One or more Newick files can be given as arguments. If no file is given the
trees will be read from the standard input.

The flag --name sets the name prefix for the imported trees, "tree" by
default; trees from the second file onwards are suffixed with the file
ordinal. By default, the age of the root is calculated from the largest
branch length between any terminal and the root; use the flag --age, with a
value in million years, to set a different root age.

The flag --output, or -o, sets the output file, "trees.tab" by default.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var rootAge float64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "tree", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().StringVar(&output, "output", "trees.tab", "")
	c.Flags().StringVar(&output, "o", "trees.tab", "")
}

const millionYears = 1_000_000

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	tc := timetree.NewCollection()
	for i, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		tn := treeName
		if i > 0 {
			tn = fmt.Sprintf("%s.%d", treeName, i)
		}
		nc, err := readNewick(c.Stdin(), fn, tn)
		if err != nil {
			return err
		}
		for _, n := range nc.Names() {
			t := nc.Tree(n)
			if err := tc.Add(t); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}

	if err := writeTrees(tc); err != nil {
		return err
	}
	return nil
}

func readNewick(r io.Reader, newickFile, treeName string) (*timetree.Collection, error) {
	if newickFile != "" {
		f, err := os.Open(newickFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		newickFile = "stdin"
	}

	c, err := timetree.Newick(r, treeName, int64(rootAge*millionYears))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", newickFile, err)
	}
	return c, nil
}

func writeTrees(tc *timetree.Collection) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
