// Package ingest loads roster documents of every supported format into a
// uniform representation: tabular formats become cell grids, text formats
// become plain lines.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/baseballlmb/rostermatch/internal/roster"
)

// Sheet is one named grid from a tabular document. Single-table formats
// produce exactly one sheet.
type Sheet struct {
	Name string
	Grid roster.Grid
}

// Document is the format-independent result of loading a roster file.
// Tabular sources fill Sheets; text sources fill Lines. Exactly one of the
// two is populated.
type Document struct {
	Sheets []Sheet
	Lines  []string
}

// Tabular reports whether the document carries cell grids.
func (d *Document) Tabular() bool {
	return len(d.Sheets) > 0
}

// Sheet returns the named sheet, matching case-insensitively.
func (d *Document) Sheet(name string) (Sheet, bool) {
	for _, s := range d.Sheets {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Sheet{}, false
}

// FirstGrid returns the first non-empty grid, if any.
func (d *Document) FirstGrid() (roster.Grid, bool) {
	for _, s := range d.Sheets {
		if len(s.Grid) > 0 {
			return s.Grid, true
		}
	}
	return nil, false
}

// UnsupportedTypeError reports a file extension no loader handles.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q", e.Ext)
}

// Load reads path and dispatches on its extension.
func Load(path string) (*Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return loadExcel(path)
	case ".csv":
		return loadCSV(path)
	case ".pdf":
		return loadPDF(path)
	case ".html", ".htm":
		return loadHTML(path)
	case ".txt":
		return loadText(path)
	default:
		return nil, &UnsupportedTypeError{Ext: ext}
	}
}
