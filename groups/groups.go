// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package groups implements reading
// of species to group assignments,
// a two column CSV file without header:
//
//	species1,Brassicales
//	species2,Brassicales
//	species3,Malvales
package groups

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
)

// A Mapping assigns a group label
// to each species or sequence identifier.
type Mapping map[string]string

// Read reads a mapping from a CSV file.
// Identifiers and group labels are case sensitive.
// A repeated identifier keeps its first assignment.
func Read(r io.Reader) (Mapping, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.Comment = '#'

	m := make(Mapping)
	for i := 1; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", i, err)
		}
		id := strings.TrimSpace(row[0])
		g := strings.TrimSpace(row[1])
		if id == "" || g == "" {
			return nil, fmt.Errorf("on row %d: empty field", i)
		}
		if _, ok := m[id]; ok {
			continue
		}
		m[id] = g
	}
	return m, nil
}

// Groups returns the distinct group labels
// of the mapping, sorted.
func (m Mapping) Groups() []string {
	seen := make(map[string]bool, len(m))
	var gs []string
	for _, g := range m {
		if seen[g] {
			continue
		}
		seen[g] = true
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}
