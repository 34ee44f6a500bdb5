package ingest

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/baseballlmb/rostermatch/internal/roster"
)

func loadCSV(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	grid := make(roster.Grid, len(rows))
	for i, row := range rows {
		grid[i] = roster.Row(row)
	}

	return &Document{Sheets: []Sheet{{Name: "csv", Grid: grid}}}, nil
}
