// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support implements a command to summarize
// the support values of gene tree files.
package support

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/gentree"
	"github.com/liqianghou2022/Eudicots/treestat"
)

var Command = &command.Command{
	Usage: "support [-o|--output <summary-file>] <tree-file>...",
	Short: "summarize support values of gene trees",
	Long: `
Command support reads one or more gene tree files in Newick format and
prints, for each file, a summary of the distribution of the internal node
support values: the number of trees read, the number of support values, and
their minimum, 5% quantile, mean, 95% quantile, and maximum.

One or more tree files must be given as arguments.

The flag --output, or -o, sets the output file, a tab-delimited table with
one row per input file; with no output flag the table is printed on the
standard output.

Malformed trees are skipped and do not stop the run.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		return c.UsageError("expecting tree files")
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
	header := []string{"file", "trees", "supports", "min", "q05", "mean", "q95", "max"}
	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing summary: %v", err)
	}

	for _, fn := range args {
		trees, vals, err := fileSupports(c, fn)
		if err != nil {
			return err
		}
		d := treestat.Describe(vals)
		row := []string{
			filepath.Base(fn),
			fmt.Sprintf("%d", trees),
			fmt.Sprintf("%d", d.N),
			fmt.Sprintf("%.4f", d.Min),
			fmt.Sprintf("%.4f", d.Q05),
			fmt.Sprintf("%.4f", d.Mean),
			fmt.Sprintf("%.4f", d.Q95),
			fmt.Sprintf("%.4f", d.Max),
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("while writing summary: %v", err)
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing summary: %v", err)
	}
	return nil
}

func fileSupports(c *command.Command, name string) (trees int, vals []float64, err error) {
	blob, err := os.ReadFile(name)
	if err != nil {
		return 0, nil, err
	}

	for i, stmt := range gentree.Split(string(blob)) {
		t, err := gentree.Parse(stmt)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "warning: on file %q: tree %d: %v\n", name, i+1, err)
			continue
		}
		trees++
		vals = append(vals, treestat.Supports(t)...)
	}
	return trees, vals, nil
}
