package roster

import (
	"strings"

	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/normalize"
)

// Outcome is the tagged result of one extraction strategy. Applied marks
// whether the strategy recognized the section's shape at all; an applied
// strategy may still yield zero records.
type Outcome struct {
	Applied bool
	Records []model.RosterRecord
}

// Strategy attempts to pull name/position pairs out of one parsed section.
type Strategy func(t table) Outcome

// strategies are tried in this fixed priority order; the first applied
// strategy wins.
var strategies = []Strategy{
	namePositionColumns,
	firstLastColumns,
	nombreColumn,
	heuristicScan,
}

var nameColumns = map[string]bool{"nombre": true, "name": true, "player": true}
var positionColumns = map[string]bool{"posicion": true, "pos": true, "position": true, "positions": true}

// table is a section parsed into an optional header map plus data rows.
type table struct {
	cols map[string]int
	rows Grid
}

func (t table) col(keys map[string]bool) (int, bool) {
	// Scan in the header's column order so ties resolve deterministically.
	best, found := -1, false
	for name, idx := range t.cols {
		if keys[name] && (!found || idx < best) {
			best, found = idx, true
		}
	}
	return best, found
}

// parseTable interprets the section's first row as a column header when it
// carries any known header keyword; otherwise all rows are data.
func parseTable(sec Section) table {
	if len(sec.Rows) == 0 {
		return table{}
	}
	first := sec.Rows[0]
	header := false
	for _, cell := range first {
		k := normalize.Title(cell)
		if headerKeywords[k] || nameColumns[k] || positionColumns[k] {
			header = true
			break
		}
	}
	if !header {
		return table{rows: sec.Rows}
	}
	cols := make(map[string]int, len(first))
	for j, cell := range first {
		if k := normalize.Title(cell); k != "" {
			if _, dup := cols[k]; !dup {
				cols[k] = j
			}
		}
	}
	return table{cols: cols, rows: sec.Rows[1:]}
}

// pair is an intermediate name/position extraction before titles and IDs
// are assigned.
type pair struct {
	name     string
	position string
}

// namePositionColumns handles explicit name and position columns.
func namePositionColumns(t table) Outcome {
	nameCol, okName := t.col(nameColumns)
	posCol, okPos := t.col(positionColumns)
	if !okName || !okPos {
		return Outcome{}
	}
	return Outcome{Applied: true, Records: collect(t.rows, func(row Row) (pair, bool) {
		name := row.Cell(nameCol)
		if name == "" {
			return pair{}, false
		}
		return pair{name: name, position: row.Cell(posCol)}, true
	})}
}

// firstLastColumns concatenates explicit first/last name columns.
func firstLastColumns(t table) Outcome {
	firstCol, okFirst := t.cols["first name"]
	lastCol, okLast := t.cols["last name"]
	if !okFirst || !okLast {
		return Outcome{}
	}
	posCol, okPos := t.cols["positions"]
	return Outcome{Applied: true, Records: collect(t.rows, func(row Row) (pair, bool) {
		name := strings.TrimSpace(row.Cell(firstCol) + " " + row.Cell(lastCol))
		if name == "" {
			return pair{}, false
		}
		p := pair{name: name}
		if okPos {
			p.position = row.Cell(posCol)
		}
		return p, true
	})}
}

// nombreColumn handles a lone "nombre" column, taking the position from
// any loosely matching position-like column if one exists.
func nombreColumn(t table) Outcome {
	nameCol, ok := t.cols["nombre"]
	if !ok {
		return Outcome{}
	}
	posCol, okPos := t.col(positionColumns)
	return Outcome{Applied: true, Records: collect(t.rows, func(row Row) (pair, bool) {
		name := row.Cell(nameCol)
		if name == "" {
			return pair{}, false
		}
		p := pair{name: name}
		if okPos {
			p.position = row.Cell(posCol)
		}
		return p, true
	})}
}

// heuristicScan is the last-resort strategy: the first cell per row that
// holds at least two whitespace-separated tokens and is not itself a
// section title becomes the name. Always applies.
func heuristicScan(t table) Outcome {
	return Outcome{Applied: true, Records: collect(t.rows, func(row Row) (pair, bool) {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if len(strings.Fields(cell)) < 2 {
				continue
			}
			if IsSectionTitle(cell) {
				continue
			}
			return pair{name: cell}, true
		}
		return pair{}, false
	})}
}

func collect(rows Grid, f func(Row) (pair, bool)) []model.RosterRecord {
	var recs []model.RosterRecord
	for _, row := range rows {
		p, ok := f(row)
		if !ok {
			continue
		}
		recs = append(recs, model.RosterRecord{RawName: p.name, Position: p.position})
	}
	return recs
}

// Extract emits the section's records using the first applicable strategy.
// When the section's title is known it is applied uniformly; otherwise each
// record's title is derived from its position field, defaulting to
// "roster". A section yielding no valid names produces an empty list, not
// an error.
func Extract(sec Section) []model.RosterRecord {
	t := parseTable(sec)
	var recs []model.RosterRecord
	for _, s := range strategies {
		if out := s(t); out.Applied {
			recs = out.Records
			break
		}
	}
	for i := range recs {
		recs[i].ID = i + 1
		if sec.Title != model.TitleUnknown && sec.Title != "" {
			recs[i].Title = sec.Title
		} else if title, ok := PositionToTitle(recs[i].Position); ok {
			recs[i].Title = title
		} else {
			recs[i].Title = model.TitleRoster
		}
	}
	return recs
}

// ExtractAll runs Extract over every section and renumbers IDs so they are
// sequential across the whole document.
func ExtractAll(sections []Section) []model.RosterRecord {
	var all []model.RosterRecord
	for _, sec := range sections {
		all = append(all, Extract(sec)...)
	}
	for i := range all {
		all[i].ID = i + 1
	}
	return all
}

// FlatScan treats an untitled grid as one roster block, used when no
// section structure was detected anywhere in the document.
func FlatScan(g Grid) []model.RosterRecord {
	return Extract(Section{Title: model.TitleRoster, Rows: dropBlank(g)})
}
