// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package wgd implements a command to test
// whether two species share a whole genome duplication.
package wgd

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
	Usage: `wgd -a <name>,<name> -b <name>,<name>
	[--dir <path>] [-o|--output <summary-file>]`,
	Short: "test for a shared whole genome duplication",
	Long: `
Command wgd reads every .nwk file of a directory and classifies its gene
trees to test whether two species share a whole genome duplication, or
underwent independent duplications. Each species is expected to retain two
gene copies per tree.

The flags -a and -b are required and give the gene copy names of each
species, separated by commas.

For each tree, the monophyly of the copies of each species is evaluated:

	independent	both species' copies form monophyletic groups,
			the expected pattern ((a1,a2),(b1,b2)) of
			duplications after the speciation
	shared		neither species' copies form a monophyletic group,
			the expected pattern ((a1,b1),(a2,b2)) of a
			duplication before the speciation
	uncertain	only one species forms a monophyletic group

Trees with less than two copies of either species are counted but not
classified, and malformed trees are skipped without stopping the run.

The flag --dir sets the directory with the .nwk files, the current directory
by default. The flag --output, or -o, sets the summary file, a tab-delimited
table with one row per input file, ratios given to four decimals; with no
output flag the table is printed on the standard output.

A shared ratio above 0.5 is evidence for a shared duplication; an independent
ratio above 0.5 is evidence for independent duplications.
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
	if len(a) < 2 {
		return c.UsageError("expecting two or more copy names, flag -a")
	}
	if len(b) < 2 {
		return c.UsageError("expecting two or more copy names, flag -b")
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.nwk"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .nwk files on %q", dir)
	}

	var sums []*treestat.WGDSummary
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
	if err := tsv.Write(treestat.WGDHeader()); err != nil {
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

func statFile(c *command.Command, name string, a, b map[string]bool) (*treestat.WGDSummary, error) {
	blob, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	s := &treestat.WGDSummary{File: filepath.Base(name)}
	for _, stmt := range gentree.Split(string(blob)) {
		s.Attempted++
		t, err := gentree.Parse(stmt)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", name, s.Attempted, err)
			continue
		}
		cl, ok := treestat.ClassifyWGD(t, a, b)
		if !ok {
			continue
		}
		s.Add(cl)
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
