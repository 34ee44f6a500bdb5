package roster

import (
	"errors"

	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/normalize"
)

// ErrNoStructure is reported when no section title appears anywhere in a
// grid. Callers fall back to a flat single-block heuristic scan.
var ErrNoStructure = errors.New("no section structure detected")

// LayoutMode classifies how section titles are arranged in a document.
type LayoutMode string

const (
	// LayoutHorizontal: titles share one row as column headers, with each
	// title's column holding a column of names beneath it.
	LayoutHorizontal LayoutMode = "horizontal"

	// LayoutVertical: titles appear on their own line, each introducing a
	// block of rows governed by that title until the next title or header.
	LayoutVertical LayoutMode = "vertical"
)

// TitleCell locates a section title within a row.
type TitleCell struct {
	Col   int
	Title model.SectionTitle
}

// Layout is the detected document structure.
type Layout struct {
	Mode LayoutMode

	// HeaderRow is the row holding the titles in horizontal mode.
	HeaderRow int

	// Titles are the title columns of the horizontal header row.
	Titles []TitleCell

	// TitleRows maps every row index containing at least one title to its
	// titles, used for block splitting in vertical mode.
	TitleRows map[int][]TitleCell
}

var sectionTitles = map[string]model.SectionTitle{
	"catchers":       model.TitleCatchers,
	"pitchers":       model.TitlePitchers,
	"infielders":     model.TitleInfielders,
	"outfielders":    model.TitleOutfielders,
	"cuerpo tecnico": model.TitleStaff,
	"roster":         model.TitleRoster,
}

// headerKeywords mark a row as a column-header row inside a section.
var headerKeywords = map[string]bool{
	"nombre":     true,
	"posicion":   true,
	"pos":        true,
	"first name": true,
	"last name":  true,
}

// titlesInRow finds every cell whose normalized text is a section title.
func titlesInRow(row Row) []TitleCell {
	var out []TitleCell
	for j, cell := range row {
		if cell == "" {
			continue
		}
		if t, ok := sectionTitles[normalize.Title(cell)]; ok {
			out = append(out, TitleCell{Col: j, Title: t})
		}
	}
	return out
}

// IsSectionTitle reports whether the text alone is a section title.
func IsSectionTitle(text string) bool {
	_, ok := sectionTitles[normalize.Title(text)]
	return ok
}

// isHeaderRow reports whether any cell looks like a roster column header.
func isHeaderRow(row Row) bool {
	for _, cell := range row {
		if headerKeywords[normalize.Title(cell)] {
			return true
		}
	}
	return false
}

// rowIsMostlyTitle reports whether a row is a standalone section title:
// at least one title cell and at most one other non-empty cell.
func rowIsMostlyTitle(row Row) bool {
	return len(titlesInRow(row)) >= 1 && row.NonEmpty() <= 2
}

// DetectLayout classifies a raw grid into horizontal or vertical layout.
// The first row holding two or more distinct titles wins as the horizontal
// header row; later rows are ignored for mode detection. A grid with no
// titles at all yields ErrNoStructure.
func DetectLayout(g Grid) (Layout, error) {
	lay := Layout{TitleRows: make(map[int][]TitleCell)}
	horizontalRow := -1

	for i, row := range g {
		found := titlesInRow(row)
		if len(found) == 0 {
			continue
		}
		lay.TitleRows[i] = found
		if horizontalRow == -1 && distinctTitles(found) >= 2 {
			horizontalRow = i
			lay.Titles = found
		}
	}

	if len(lay.TitleRows) == 0 {
		return Layout{}, ErrNoStructure
	}

	if horizontalRow >= 0 {
		lay.Mode = LayoutHorizontal
		lay.HeaderRow = horizontalRow
		return lay, nil
	}

	lay.Mode = LayoutVertical
	return lay, nil
}

func distinctTitles(cells []TitleCell) int {
	seen := make(map[model.SectionTitle]bool, len(cells))
	for _, c := range cells {
		seen[c.Title] = true
	}
	return len(seen)
}

// Section is a contiguous block of rows governed by one title.
type Section struct {
	Title model.SectionTitle
	Rows  Grid
}

// SplitSections slices a grid into titled sections according to the
// detected layout. Horizontal sections carry a single column of candidate
// name cells; vertical sections carry the block's original rows, possibly
// starting with a header row.
func SplitSections(g Grid) ([]Section, error) {
	lay, err := DetectLayout(g)
	if err != nil {
		return nil, err
	}
	if lay.Mode == LayoutHorizontal {
		return splitHorizontal(g, lay), nil
	}
	return splitVertical(g, lay), nil
}

// splitHorizontal walks each title's column downward from the header row,
// collecting candidate cells until a fully blank row or another title.
func splitHorizontal(g Grid, lay Layout) []Section {
	var sections []Section
	for _, tc := range lay.Titles {
		var rows Grid
		for r := lay.HeaderRow + 1; r < len(g); r++ {
			row := g[r]
			if row.Blank() {
				break
			}
			cell := row.Cell(tc.Col)
			if cell == "" {
				continue
			}
			if IsSectionTitle(cell) {
				break
			}
			rows = append(rows, Row{cell})
		}
		sections = append(sections, Section{Title: tc.Title, Rows: rows})
	}
	return sections
}

// splitVertical finds block start rows: standalone title rows open a block
// (skipping the title line itself, keeping a directly following header
// row), and header rows seen after a title also open a block under the
// last title. Each block runs until the next start row.
func splitVertical(g Grid, lay Layout) []Section {
	type start struct {
		row   int
		title model.SectionTitle
	}
	var starts []start
	lastTitle := model.TitleUnknown

	for i, row := range g {
		if rowIsMostlyTitle(row) {
			if titles := lay.TitleRows[i]; len(titles) > 0 {
				lastTitle = titles[0].Title
			}
			first := i
			if i+1 < len(g) && isHeaderRow(g[i+1]) {
				first = i + 1
			}
			starts = append(starts, start{row: first, title: lastTitle})
		} else if isHeaderRow(row) && lastTitle != model.TitleUnknown {
			starts = append(starts, start{row: i, title: lastTitle})
		}
	}

	var sections []Section
	for k, s := range starts {
		end := len(g)
		if k+1 < len(starts) {
			end = starts[k+1].row
		}
		if s.row >= end {
			continue
		}
		rows := dropTitleRows(dropBlank(g[s.row:end]))
		if len(rows) == 0 {
			continue
		}
		sections = append(sections, Section{Title: s.title, Rows: rows})
	}
	return sections
}

// dropTitleRows removes standalone title rows so a section body never
// carries the marker of the block that follows it.
func dropTitleRows(rows Grid) Grid {
	out := make(Grid, 0, len(rows))
	for _, r := range rows {
		if !rowIsMostlyTitle(r) {
			out = append(out, r)
		}
	}
	return out
}

func dropBlank(rows Grid) Grid {
	out := make(Grid, 0, len(rows))
	for _, r := range rows {
		if !r.Blank() {
			out = append(out, r)
		}
	}
	return out
}
