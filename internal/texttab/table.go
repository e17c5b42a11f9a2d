// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out aligned plain-text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so callers can chain them to build
// up a row at once.
type Table struct {
	rows   [][]cell
	widths []int
}

type cell struct {
	value string
	right bool
}

// A CellOption modifies a single cell.
type CellOption func(c *cell)

// Right aligns a cell to the right edge of its column.
var Right CellOption = func(c *cell) { c.right = true }

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := len(t.rows) - 1
	col := len(t.rows[r])
	t.rows[r] = append(t.rows[r], c)

	if col == len(t.widths) {
		t.widths = append(t.widths, 0)
	}
	if w := utf8.RuneCountInString(value); w > t.widths[col] {
		t.widths[col] = w
	}
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces and lines carry no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	var line strings.Builder
	for _, r := range t.rows {
		line.Reset()
		pending := 0 // spaces owed before the next non-empty output
		for col, c := range r {
			if col > 0 {
				pending += 2
			}
			pad := t.widths[col] - utf8.RuneCountInString(c.value)
			if c.right {
				pending += pad
				pad = 0
			}
			if c.value != "" {
				fmt.Fprintf(&line, "%*s%s", pending, "", c.value)
				pending = 0
			}
			pending += pad
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
