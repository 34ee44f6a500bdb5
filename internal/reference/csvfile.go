package reference

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/baseballlmb/rostermatch/internal/normalize"
)

// CSVProvider reads canonical names from a local file with a "nombre"
// column. A CSV source carries no role split, so the same list serves both
// partitions.
type CSVProvider struct {
	Path string
}

// Names loads and cleans the name column. Row order is preserved so that
// score ties resolve deterministically per file.
func (p *CSVProvider) Names(ctx context.Context) (*Set, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("open reference csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read reference csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reference csv %s is empty", p.Path)
	}

	col := -1
	for j, cell := range rows[0] {
		if normalize.Title(cell) == "nombre" {
			col = j
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("reference csv %s has no 'nombre' column", p.Path)
	}

	var names []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		name := normalize.CleanDisplayName(row[col])
		if name == "" || name == normalize.Placeholder {
			continue
		}
		names = append(names, name)
	}

	return &Set{Batters: names, Pitchers: names}, nil
}

// Source identifies the CSV provider by path.
func (p *CSVProvider) Source() string {
	return "csv:" + p.Path
}
