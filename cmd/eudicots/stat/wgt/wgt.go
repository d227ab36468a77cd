// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package wgt implements a command to test
// whether two species share a whole genome triplication.
package wgt

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/treestat"
)

var Command = &command.Command{
	Usage: `wgt -a <name>,<name>,<name> -b <name>,<name>,<name>
	[--dir <path>] [-o|--output <summary-file>]`,
	Short: "test for a shared whole genome triplication",
	Long: `
Command wgt reads every .nwk file of a directory and classifies its gene
trees to test whether two species share a whole genome triplication. Each
species is expected to retain three gene copies per tree.

The flags -a and -b are required and give the gene copy names of each
species, separated by commas.

For each tree, the monophyly of the copies of each species is evaluated:

	non-shared	at least one species' copies form a monophyletic
			group, as expected from independent triplications
	shared		neither species' copies form a monophyletic group,
			the copies are intermingled as expected from a
			triplication before the speciation

Unlike the duplication test, every readable tree is classified: a species
with a single copy, or with no copy at all, counts as monophyletic. Malformed
trees are skipped without stopping the run.

The flag --dir sets the directory with the .nwk files, the current directory
by default. The flag --output, or -o, sets the summary file, a tab-delimited
table with one row per input file, ratios given to four decimals; with no
output flag the table is printed on the standard output.

A shared ratio above 0.5 is evidence for a shared triplication.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var aList string
var bList string
var dir string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&aList, "a", "", "")
	c.Flags().StringVar(&bList, "b", "", "")
	c.Flags().StringVar(&dir, "dir", ".", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	a := copySet(aList)
	b := copySet(bList)
	if len(a) == 0 {
		return c.UsageError("expecting copy names, flag -a")
	}
	if len(b) == 0 {
		return c.UsageError("expecting copy names, flag -b")
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.nwk"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .nwk files on %q", dir)
	}

	var sums []*treestat.WGTSummary
	for _, fn := range files {
		s, err := statFile(c, fn, a, b)
		if err != nil {
			return err
		}
		sums = append(sums, s)
	}

	w := c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write(treestat.WGTHeader()); err != nil {
		return fmt.Errorf("while writing summary: %v", err)
	}
	for _, s := range sums {
		if err := tsv.Write(s.Row()); err != nil {
			return fmt.Errorf("while writing summary: %v", err)
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing summary: %v", err)
	}
	return nil
}

func statFile(c *command.Command, name string, a, b map[string]bool) (*treestat.WGTSummary, error) {
	blob, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	s := &treestat.WGTSummary{File: filepath.Base(name)}
	for _, stmt := range gentree.Split(string(blob)) {
		s.Attempted++
		t, err := gentree.Parse(stmt)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", name, s.Attempted, err)
			continue
		}
		s.Add(treestat.ClassifyWGT(t, a, b))
	}
	return s, nil
}

func copySet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, n := range strings.Split(list, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		set[n] = true
	}
	return set
}
