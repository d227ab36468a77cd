// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treestat

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// A WGDSummary accumulates the classification
// of the gene trees of a single input file
// for a whole genome duplication analysis.
type WGDSummary struct {
	File string

	// Attempted is the number of tree statements read,
	// including trees skipped as malformed
	// or as uninformative,
	// so silent skips remain observable.
	Attempted int

	Total       int
	Independent int
	Shared      int
	Uncertain   int
}

// Add records a classified tree.
func (s *WGDSummary) Add(c Class) {
	s.Total++
	switch c {
	case Independent:
		s.Independent++
	case Shared:
		s.Shared++
	case Uncertain:
		s.Uncertain++
	}
}

// WGDHeader returns the header of the summary table
// of a whole genome duplication analysis.
func WGDHeader() []string {
	return []string{"file", "attempted", "total", "independent", "shared", "uncertain", "ind_ratio", "shared_ratio"}
}

// Row returns the summary as a table row,
// with ratios formatted to four decimals.
func (s *WGDSummary) Row() []string {
	return []string{
		s.File,
		fmt.Sprintf("%d", s.Attempted),
		fmt.Sprintf("%d", s.Total),
		fmt.Sprintf("%d", s.Independent),
		fmt.Sprintf("%d", s.Shared),
		fmt.Sprintf("%d", s.Uncertain),
		ratio(s.Independent, s.Total),
		ratio(s.Shared, s.Total),
	}
}

// A WGTSummary accumulates the classification
// of the gene trees of a single input file
// for a whole genome triplication analysis.
type WGTSummary struct {
	File string

	// See WGDSummary.Attempted.
	Attempted int

	Total     int
	NonShared int
	Shared    int
}

// Add records a classified tree.
func (s *WGTSummary) Add(c Class) {
	s.Total++
	if c == Shared {
		s.Shared++
		return
	}
	s.NonShared++
}

// WGTHeader returns the header of the summary table
// of a whole genome triplication analysis.
func WGTHeader() []string {
	return []string{"file", "attempted", "total_trees", "non_shared_count", "non_shared_ratio", "shared_count", "shared_ratio"}
}

// Row returns the summary as a table row,
// with ratios formatted to four decimals.
func (s *WGTSummary) Row() []string {
	return []string{
		s.File,
		fmt.Sprintf("%d", s.Attempted),
		fmt.Sprintf("%d", s.Total),
		fmt.Sprintf("%d", s.NonShared),
		ratio(s.NonShared, s.Total),
		fmt.Sprintf("%d", s.Shared),
		ratio(s.Shared, s.Total),
	}
}

func ratio(n, total int) string {
	if total == 0 {
		return "0.0000"
	}
	return fmt.Sprintf("%.4f", float64(n)/float64(total))
}

// A Summary describes the distribution
// of a sequence of values,
// usually the support values of a set of trees.
type Summary struct {
	N    int
	Min  float64
	Max  float64
	Mean float64
	Q05  float64
	Q95  float64
}

// Describe returns the distribution summary
// of the given values.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	vs := slices.Clone(values)
	slices.Sort(vs)
	return Summary{
		N:    len(vs),
		Min:  vs[0],
		Max:  vs[len(vs)-1],
		Mean: stat.Mean(vs, nil),
		Q05:  stat.Quantile(0.05, stat.Empirical, vs, nil),
		Q95:  stat.Quantile(0.95, stat.Empirical, vs, nil),
	}
}
