// Package roster detects tabular structure in heterogeneous roster
// documents, extracts (name, position, title) records from the detected
// blocks and classifies records by role.
package roster

import "strings"

// Row is one line of cell values from a parsed document. Empty strings
// stand for empty cells; rows may be ragged.
type Row []string

// Grid is an ordered sequence of rows with no identity beyond position.
type Grid []Row

// NonEmpty counts the cells in the row holding non-blank text.
func (r Row) NonEmpty() int {
	n := 0
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}

// Blank reports whether every cell in the row is empty or whitespace.
func (r Row) Blank() bool {
	return r.NonEmpty() == 0
}

// Cell returns the trimmed cell at column i, or "" when out of range.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}
