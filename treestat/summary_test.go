// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treestat_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/liqianghou2022/Eudicots/treestat"
)

func TestWGDSummary(t *testing.T) {
	s := &treestat.WGDSummary{File: "clade01.nwk", Attempted: 5}
	s.Add(treestat.Independent)
	s.Add(treestat.Independent)
	s.Add(treestat.Shared)
	s.Add(treestat.Uncertain)

	got := s.Row()
	want := []string{"clade01.nwk", "5", "4", "2", "1", "1", "0.5000", "0.2500"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row: got %v, want %v", got, want)
	}
	if len(got) != len(treestat.WGDHeader()) {
		t.Errorf("row: %d fields for a %d field header", len(got), len(treestat.WGDHeader()))
	}
}

func TestWGTSummary(t *testing.T) {
	s := &treestat.WGTSummary{File: "clade02.nwk", Attempted: 3}
	s.Add(treestat.NonShared)
	s.Add(treestat.Shared)
	s.Add(treestat.Shared)

	got := s.Row()
	want := []string{"clade02.nwk", "3", "3", "1", "0.3333", "2", "0.6667"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row: got %v, want %v", got, want)
	}
	if len(got) != len(treestat.WGTHeader()) {
		t.Errorf("row: %d fields for a %d field header", len(got), len(treestat.WGTHeader()))
	}
}

func TestEmptySummary(t *testing.T) {
	s := &treestat.WGDSummary{File: "empty.nwk"}
	got := s.Row()
	want := []string{"empty.nwk", "0", "0", "0", "0", "0", "0.0000", "0.0000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row: got %v, want %v", got, want)
	}
}

func TestDescribe(t *testing.T) {
	vals := []float64{0.95, 0.88, 1.0, 0.7}
	d := treestat.Describe(vals)

	if d.N != 4 {
		t.Errorf("n: got %d, want 4", d.N)
	}
	if math.Abs(d.Min-0.7) > 1e-10 {
		t.Errorf("min: got %.4f, want 0.7", d.Min)
	}
	if math.Abs(d.Max-1.0) > 1e-10 {
		t.Errorf("max: got %.4f, want 1.0", d.Max)
	}
	if math.Abs(d.Mean-0.8825) > 1e-10 {
		t.Errorf("mean: got %.6f, want 0.8825", d.Mean)
	}
	if d.Q05 < d.Min || d.Q05 > d.Mean {
		t.Errorf("q05: got %.4f, out of [%f, %f]", d.Q05, d.Min, d.Mean)
	}
	if d.Q95 > d.Max || d.Q95 < d.Mean {
		t.Errorf("q95: got %.4f, out of [%f, %f]", d.Q95, d.Mean, d.Max)
	}

	// the input is left untouched
	if !reflect.DeepEqual(vals, []float64{0.95, 0.88, 1.0, 0.7}) {
		t.Errorf("describe: input reordered: %v", vals)
	}

	if d := treestat.Describe(nil); d.N != 0 {
		t.Errorf("describe nil: got %d values", d.N)
	}
}
