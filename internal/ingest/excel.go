package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/baseballlmb/rostermatch/internal/roster"
)

func loadExcel(path string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc := &Document{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		grid := make(roster.Grid, len(rows))
		for i, row := range rows {
			grid[i] = roster.Row(row)
		}
		doc.Sheets = append(doc.Sheets, Sheet{Name: name, Grid: grid})
	}
	if len(doc.Sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	return doc, nil
}
