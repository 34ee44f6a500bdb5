package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/reference"
)

type fakeProvider struct {
	set *reference.Set
	err error
}

func (p *fakeProvider) Names(ctx context.Context) (*reference.Set, error) { return p.set, p.err }
func (p *fakeProvider) Source() string                                    { return "fake" }

func testPipeline(set *reference.Set) *Pipeline {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return NewPipelineWithProvider(cfg, &fakeProvider{set: set}, nil)
}

func writeRoster(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessFile_VerticalCSV(t *testing.T) {
	path := writeRoster(t, "roster.csv",
		"Pitchers,\nNombre,Pos\nJuan Lopez,P\nInfielders,\nNombre,Pos\nAna Diaz,SS\n")

	p := testPipeline(&reference.Set{
		Batters:  []string{"Ana Diaz"},
		Pitchers: []string{"Juan Lopez"},
	})

	report := p.ProcessFile(context.Background(), path)
	if report.Failed() {
		t.Fatalf("unexpected error: %s", report.Error)
	}
	if report.TotalPlayers != 2 {
		t.Fatalf("TotalPlayers = %d, want 2", report.TotalPlayers)
	}

	pitchers := report.Roles[model.PartitionPitchers]
	if pitchers == nil || len(pitchers.Matched) != 1 || pitchers.Matched[0].Canonical != "Juan Lopez" {
		t.Errorf("unexpected pitcher report: %+v", pitchers)
	}
	batters := report.Roles[model.PartitionBatters]
	if batters == nil || len(batters.Matched) != 1 || batters.Matched[0].Canonical != "Ana Diaz" {
		t.Errorf("unexpected batter report: %+v", batters)
	}

	if report.Positions["P"] != 1 || report.Positions["SS"] != 1 {
		t.Errorf("unexpected positions: %v", report.Positions)
	}
	if report.Totals["matched"] != 2 || report.Totals["unmatched"] != 0 {
		t.Errorf("unexpected totals: %v", report.Totals)
	}
	if report.Quality.Confidence != "high" {
		t.Errorf("Confidence = %q, want high", report.Quality.Confidence)
	}
}

func TestProcessFile_FlatScanFallback(t *testing.T) {
	// No section titles anywhere, so structure detection must fail and the
	// heuristic scan take over.
	path := writeRoster(t, "roster.txt", "Juan Lopez\nAna Diaz\n")

	p := testPipeline(&reference.Set{Batters: []string{"Juan Lopez", "Ana Diaz"}})

	report := p.ProcessFile(context.Background(), path)
	if report.Failed() {
		t.Fatalf("unexpected error: %s", report.Error)
	}
	if report.TotalPlayers != 2 {
		t.Fatalf("TotalPlayers = %d, want 2", report.TotalPlayers)
	}
	if !hasSignal(report.Quality, model.SignalNoStructure) {
		t.Error("expected no_structure signal on flat scan")
	}
}

func TestProcessFile_TextWithSections(t *testing.T) {
	path := writeRoster(t, "roster.txt", "Pitchers\nJuan Lopez\nCuerpo Tecnico\nPedro Ruiz\n")

	p := testPipeline(&reference.Set{
		Batters:  []string{"Pedro Ruiz"},
		Pitchers: []string{"Juan Lopez"},
	})

	report := p.ProcessFile(context.Background(), path)
	if report.Failed() {
		t.Fatalf("unexpected error: %s", report.Error)
	}

	// Staff match against the union of both role lists.
	staff := report.Roles[model.PartitionStaff]
	if staff == nil || len(staff.Matched) != 1 || staff.Matched[0].Canonical != "Pedro Ruiz" {
		t.Errorf("unexpected staff report: %+v", staff)
	}
}

func TestProcessFile_EmptyFile(t *testing.T) {
	path := writeRoster(t, "roster.txt", "")

	p := testPipeline(&reference.Set{Batters: []string{"Juan Lopez"}})
	report := p.ProcessFile(context.Background(), path)
	if !report.Failed() {
		t.Fatal("expected failure report for empty file")
	}
}

func TestProcessFile_MissingFile(t *testing.T) {
	p := testPipeline(&reference.Set{Batters: []string{"Juan Lopez"}})
	report := p.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if !report.Failed() {
		t.Fatal("expected failure report for missing file")
	}
}

func TestProcessFile_DegradedReference(t *testing.T) {
	path := writeRoster(t, "roster.csv", "Nombre,Pos\nJavier Mireles,P\n")

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipelineWithProvider(cfg, &fakeProvider{err: errors.New("down")}, nil)

	report := p.ProcessFile(context.Background(), path)
	if report.Failed() {
		t.Fatalf("unexpected error: %s", report.Error)
	}
	if !report.Quality.Degraded {
		t.Error("expected degraded quality flag")
	}
	if report.Quality.Confidence != "low" {
		t.Errorf("Confidence = %q, want low", report.Quality.Confidence)
	}
	if len(report.Warnings) == 0 {
		t.Error("expected degradation warnings")
	}
}

func TestMatchNames(t *testing.T) {
	p := testPipeline(&reference.Set{Pitchers: []string{"Juan Lopez"}})

	role, _ := p.MatchNames(context.Background(), []string{"Juan López", "Nadie Conocido"}, model.PartitionPitchers)
	if len(role.Matched) != 1 || role.Matched[0].Canonical != "Juan Lopez" {
		t.Errorf("unexpected matched: %+v", role.Matched)
	}
	if len(role.Unmatched) != 1 || role.Unmatched[0] != "Nadie Conocido" {
		t.Errorf("unexpected unmatched: %v", role.Unmatched)
	}
}

func TestRenderReport_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	p := testPipeline(&reference.Set{Batters: []string{"Juan Lopez"}})

	report := &model.FileReport{
		File:         "roster.csv",
		TotalPlayers: 1,
		Totals:       map[string]int{"matched": 1, "unmatched": 0},
		Roles: map[string]*model.RoleReport{
			model.PartitionBatters: {
				Matched: []model.MatchedPair{{Extracted: "Juan Lopez", Canonical: "Juan Lopez", Score: 100}},
			},
		},
		Quality: model.Quality{MatchRate: 1, Confidence: "high"},
	}

	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")
	if err := p.RenderReport(report, jsonPath, mdPath); err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	for _, path := range []string{jsonPath, mdPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}
}

func hasSignal(q model.Quality, typ model.SignalType) bool {
	for _, s := range q.Signals {
		if s.Type == typ {
			return true
		}
	}
	return false
}
