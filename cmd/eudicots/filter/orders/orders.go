// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package orders implements a command to filter gene trees
// by the number of taxonomic groups they cover.
package orders

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/groups"
	"github.com/liqianghou2022/Eudicots/treestat"
)

var Command = &command.Command{
	Usage: `orders -i|--input <tree-file> -c|--csv <mapping-file>
	-o|--output <tree-file> [-g|--groups <number>]`,
	Short: "filter gene trees by group coverage",
	Long: `
Command orders reads gene trees in Newick format and keeps only the trees
with leaves from at least the given number of taxonomic groups, for example
plant orders. A group is covered when at least one of its species is a leaf
of the tree.

The flag --input, or -i, is required and sets the input tree file. The flag
--output, or -o, is required and sets the file for the trees that pass the
filter. Trees are written exactly as they were read.

The flag --csv, or -c, is required and sets the species to group assignments,
a two column CSV file without header, the first column with the species name
as it appears on the trees, the second with its group:

	Arabidopsis_thaliana,Brassicales
	Gossypium_hirsutum,Malvales

Species names and groups are case sensitive.

The flag --groups, or -g, sets the minimum number of covered groups, with a
default of 30.

Malformed trees are skipped and do not stop the run. The number of trees read
and the number of trees kept are printed at the end of the run.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var csvFile string
var minGroups int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&csvFile, "csv", "", "")
	c.Flags().StringVar(&csvFile, "c", "", "")
	c.Flags().IntVar(&minGroups, "groups", 30, "")
	c.Flags().IntVar(&minGroups, "g", 30, "")
}

func run(c *command.Command, args []string) error {
	if input == "" {
		return c.UsageError("expecting input file, flag --input")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
	}
	if csvFile == "" {
		return c.UsageError("expecting mapping file, flag --csv")
	}

	m, err := readMapping(csvFile)
	if err != nil {
		return err
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

	flt := treestat.GroupCoverage{
		Mapping:  m,
		Required: minGroups,
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

func readMapping(name string) (groups.Mapping, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := groups.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}
