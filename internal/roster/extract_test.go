package roster

import (
	"testing"

	"github.com/baseballlmb/rostermatch/internal/model"
)

func TestExtract_NamePositionColumns(t *testing.T) {
	sec := Section{
		Title: model.TitleUnknown,
		Rows: Grid{
			{"Nombre", "Posición"},
			{"Juan Lopez", "P"},
			{"Ana Diaz", "SS"},
			{"", "C"}, // empty name is skipped
		},
	}

	recs := Extract(sec)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].RawName != "Juan Lopez" || recs[0].Position != "P" {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
	// Unknown block title: derived per record from the position field.
	if recs[0].Title != model.TitlePitchers {
		t.Errorf("expected pitchers title from position P, got %s", recs[0].Title)
	}
	if recs[1].Title != model.TitleInfielders {
		t.Errorf("expected infielders title from position SS, got %s", recs[1].Title)
	}
	if recs[0].ID != 1 || recs[1].ID != 2 {
		t.Errorf("expected sequential 1-based IDs, got %d and %d", recs[0].ID, recs[1].ID)
	}
}

func TestExtract_KnownTitleAppliesUniformly(t *testing.T) {
	sec := Section{
		Title: model.TitlePitchers,
		Rows: Grid{
			{"Nombre", "Pos"},
			{"Juan Lopez", "SS"}, // position contradicts the block title
		},
	}

	recs := Extract(sec)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Title != model.TitlePitchers {
		t.Errorf("known block title must win over position, got %s", recs[0].Title)
	}
}

func TestExtract_FirstLastColumns(t *testing.T) {
	sec := Section{
		Title: model.TitleUnknown,
		Rows: Grid{
			{"First Name", "Last Name", "Positions"},
			{"Juan", "Lopez", "RHP"},
			{"Ana", "Diaz", ""},
		},
	}

	recs := Extract(sec)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].RawName != "Juan Lopez" {
		t.Errorf("expected concatenated name, got %q", recs[0].RawName)
	}
	if recs[0].Title != model.TitlePitchers {
		t.Errorf("expected pitchers from RHP, got %s", recs[0].Title)
	}
	if recs[1].Title != model.TitleRoster {
		t.Errorf("expected roster default for empty position, got %s", recs[1].Title)
	}
}

func TestExtract_NombreColumnOnly(t *testing.T) {
	sec := Section{
		Title: model.TitleCatchers,
		Rows: Grid{
			{"Nombre"},
			{"Juan Lopez"},
		},
	}

	recs := Extract(sec)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Position != "" {
		t.Errorf("expected empty position, got %q", recs[0].Position)
	}
	if recs[0].Title != model.TitleCatchers {
		t.Errorf("expected catchers title, got %s", recs[0].Title)
	}
}

func TestExtract_HeuristicScan(t *testing.T) {
	sec := Section{
		Title: model.TitleOutfielders,
		Rows: Grid{
			{"12", "Juan Lopez Garcia"},
			{"Pitchers", "Ana Diaz"}, // title cell skipped, name cell taken
			{"solo"},                 // single token: no name
		},
	}

	recs := Extract(sec)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].RawName != "Juan Lopez Garcia" {
		t.Errorf("unexpected first name: %q", recs[0].RawName)
	}
	if recs[1].RawName != "Ana Diaz" {
		t.Errorf("unexpected second name: %q", recs[1].RawName)
	}
}

func TestExtract_EmptySectionYieldsNoRecords(t *testing.T) {
	recs := Extract(Section{Title: model.TitlePitchers, Rows: Grid{{"x"}, {"1"}}})
	if len(recs) != 0 {
		t.Errorf("expected no records, got %d", len(recs))
	}
}

func TestExtractAll_SequentialIDs(t *testing.T) {
	sections := []Section{
		{Title: model.TitlePitchers, Rows: Grid{{"Juan Lopez Uno"}}},
		{Title: model.TitleCatchers, Rows: Grid{{"Ana Diaz Dos"}}},
	}

	recs := ExtractAll(sections)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	for i, r := range recs {
		if r.ID != i+1 {
			t.Errorf("record %d has ID %d, want %d", i, r.ID, i+1)
		}
	}
}

func TestFlatScan(t *testing.T) {
	g := Grid{
		{"Juan Lopez", "extra"},
		{""},
		{"Ana Diaz"},
	}

	recs := FlatScan(g)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	for _, r := range recs {
		if r.Title != model.TitleRoster {
			t.Errorf("flat scan records default to roster, got %s", r.Title)
		}
	}
}

func TestEndToEnd_VerticalGrid(t *testing.T) {
	g := Grid{
		{"Pitchers"},
		{"Nombre", "Pos"},
		{"Juan Lopez", "P"},
		{"Infielders"},
		{"Nombre", "Pos"},
		{"Ana Diaz", "SS"},
	}

	sections, err := SplitSections(g)
	if err != nil {
		t.Fatalf("SplitSections: %v", err)
	}
	recs := ExtractAll(sections)
	if len(recs) != 2 {
		t.Fatalf("expected exactly 2 records, got %d: %+v", len(recs), recs)
	}
	if recs[0].Title != model.TitlePitchers || RecordRole(recs[0]) != model.RolePitcher {
		t.Errorf("first record should be a pitcher: %+v", recs[0])
	}
	if recs[1].Title != model.TitleInfielders || RecordRole(recs[1]) != model.RoleBatterInfielder {
		t.Errorf("second record should be a batter/infielder: %+v", recs[1])
	}
}
