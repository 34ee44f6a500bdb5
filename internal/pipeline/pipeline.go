// Package pipeline orchestrates one roster file end to end: ingest,
// structure detection, record extraction, role partitioning, fuzzy
// reconciliation and quality scoring.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baseballlmb/rostermatch/internal/cache"
	"github.com/baseballlmb/rostermatch/internal/fuzzy"
	"github.com/baseballlmb/rostermatch/internal/ingest"
	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/normalize"
	"github.com/baseballlmb/rostermatch/internal/reference"
	"github.com/baseballlmb/rostermatch/internal/roster"
	"github.com/baseballlmb/rostermatch/internal/score"
)

// Pipeline processes roster files into match reports. Safe for concurrent
// use by the batch workers.
type Pipeline struct {
	cfg      *model.Config
	matcher  *fuzzy.Matcher
	refs     *reference.CachedProvider
	scorer   *score.Scorer
	renderer *Renderer
}

// NewPipeline builds a pipeline from configuration, selecting the reference
// provider by cfg.Reference.Source.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	var provider reference.Provider
	switch cfg.Reference.Source {
	case "csv":
		if cfg.Reference.CSVPath == "" {
			return nil, errors.New("csv reference source requires a csv path")
		}
		provider = &reference.CSVProvider{Path: cfg.Reference.CSVPath}
	case "postgres":
		if cfg.Reference.DatabaseURL == "" {
			return nil, errors.New("postgres reference source requires a database url")
		}
		provider = &reference.PostgresProvider{
			URL:     cfg.Reference.DatabaseURL,
			Seasons: cfg.Reference.Seasons,
		}
	case "embedded", "":
		provider = reference.EmbeddedProvider{}
	default:
		return nil, fmt.Errorf("unknown reference source %q", cfg.Reference.Source)
	}

	var store cache.Store
	if cfg.Cache.Enabled {
		store = cache.NewLayeredStore(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return NewPipelineWithProvider(cfg, provider, store), nil
}

// NewPipelineWithProvider builds a pipeline around an explicit provider and
// cache store.
func NewPipelineWithProvider(cfg *model.Config, provider reference.Provider, store cache.Store) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		matcher:  fuzzy.NewMatcher(),
		refs:     reference.NewCachedProvider(provider, store, cfg.Cache.TTL),
		scorer:   score.NewScorer(),
		renderer: NewRenderer(),
	}
}

// RenderReport writes the report to the requested outputs and prints the
// summary line.
func (p *Pipeline) RenderReport(report *model.FileReport, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		p.logf("wrote JSON: %s", jsonPath)
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		p.logf("wrote Markdown: %s", mdPath)
	}

	p.renderer.RenderSummary(report)
	return nil
}

// ProcessFile runs the full pipeline on one roster document. It always
// returns a report; failures are carried in the report's Error field.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) *model.FileReport {
	report := &model.FileReport{File: path}

	doc, err := ingest.Load(path)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	records, flatScan, warnings := p.extract(doc)
	report.Warnings = append(report.Warnings, warnings...)
	if len(records) == 0 {
		report.Error = "no valid data found in file"
		return report
	}

	report.TotalPlayers = len(records)
	report.Positions = countPositions(records)
	if n := p.cfg.PreviewRows; n > 0 {
		if n > len(records) {
			n = len(records)
		}
		report.Preview = records[:n]
	}

	set, refWarnings, degraded := p.refs.Fetch(ctx)
	report.Warnings = append(report.Warnings, refWarnings...)

	report.Roles = p.matchPartitions(partition(records), set)
	report.Totals = countTotals(records, report.Roles)
	report.Quality = p.scorer.Calculate(score.Inputs{
		Roles:    report.Roles,
		Degraded: degraded,
		FlatScan: flatScan,
	})

	p.logf("processed %s: %d players, match rate %.0f%%",
		path, report.TotalPlayers, report.Quality.MatchRate*100)

	return report
}

// MatchNames reconciles an already-extracted name list against one role
// partition, bypassing ingestion.
func (p *Pipeline) MatchNames(ctx context.Context, names []string, part string) (*model.RoleReport, []string) {
	set, warnings, _ := p.refs.Fetch(ctx)
	ref := fuzzy.NewReference(p.partitionNames(set, part))
	return p.matchOne(names, ref), warnings
}

// ReferenceNames exposes the resolved reference set, with degradation
// warnings, for the names command.
func (p *Pipeline) ReferenceNames(ctx context.Context) (*reference.Set, []string) {
	set, warnings, _ := p.refs.Fetch(ctx)
	return set, warnings
}

// extract pulls roster records out of a loaded document. Tabular documents
// go through section splitting with a flat-scan fallback; text documents
// are treated as a one-column grid.
func (p *Pipeline) extract(doc *ingest.Document) ([]model.RosterRecord, bool, []string) {
	var warnings []string

	grid, warn := pickGrid(doc)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	if len(grid) == 0 {
		return nil, false, warnings
	}

	sections, err := roster.SplitSections(grid)
	if err != nil {
		if !errors.Is(err, roster.ErrNoStructure) {
			warnings = append(warnings, err.Error())
		}
		return roster.FlatScan(grid), true, warnings
	}

	return roster.ExtractAll(sections), false, warnings
}

// sheetKeywords score a sheet as roster-like when at least two appear in
// its leading rows.
var sheetKeywords = []string{"first name", "last name", "date of birth", "positions", "nombre", "posicion"}

// pickGrid selects the grid to extract from. Workbooks prefer a sheet named
// "Roster", then the sheet whose leading rows look most roster-like, then
// the first non-empty sheet. Text documents become a one-column grid.
func pickGrid(doc *ingest.Document) (roster.Grid, string) {
	if !doc.Tabular() {
		grid := make(roster.Grid, 0, len(doc.Lines))
		for _, line := range doc.Lines {
			grid = append(grid, roster.Row{line})
		}
		return grid, ""
	}

	if s, ok := doc.Sheet("Roster"); ok && len(s.Grid) > 0 {
		return s.Grid, ""
	}

	bestScore := 0
	var best roster.Grid
	bestName := ""
	for _, s := range doc.Sheets {
		if n := sheetScore(s.Grid); n > bestScore {
			bestScore = n
			best = s.Grid
			bestName = s.Name
		}
	}
	if bestScore >= 2 {
		warn := ""
		if len(doc.Sheets) > 1 {
			warn = fmt.Sprintf("no Roster sheet, using %q", bestName)
		}
		return best, warn
	}

	grid, _ := doc.FirstGrid()
	return grid, ""
}

func sheetScore(g roster.Grid) int {
	limit := len(g)
	if limit > 10 {
		limit = 10
	}
	found := map[string]bool{}
	for _, row := range g[:limit] {
		for _, cell := range row {
			key := normalize.Normalize(cell)
			for _, kw := range sheetKeywords {
				if key == kw {
					found[kw] = true
				}
			}
		}
	}
	return len(found)
}

// partition groups extracted records by match partition. Unknown roles are
// matched as batters, the larger universe.
func partition(records []model.RosterRecord) map[string][]string {
	parts := map[string][]string{}
	for _, rec := range records {
		switch role := roster.RecordRole(rec); {
		case role == model.RolePitcher:
			parts[model.PartitionPitchers] = append(parts[model.PartitionPitchers], rec.RawName)
		case role == model.RoleStaff:
			parts[model.PartitionStaff] = append(parts[model.PartitionStaff], rec.RawName)
		default:
			parts[model.PartitionBatters] = append(parts[model.PartitionBatters], rec.RawName)
		}
	}
	return parts
}

func (p *Pipeline) matchPartitions(parts map[string][]string, set *reference.Set) map[string]*model.RoleReport {
	roles := make(map[string]*model.RoleReport, len(parts))
	for part, names := range parts {
		ref := fuzzy.NewReference(p.partitionNames(set, part))
		roles[part] = p.matchOne(names, ref)
	}
	return roles
}

// partitionNames selects the reference list for a partition. Staff have no
// list of their own and match against the full union.
func (p *Pipeline) partitionNames(set *reference.Set, part string) []string {
	switch part {
	case model.PartitionPitchers:
		return set.Pitchers
	case model.PartitionStaff:
		return set.Union()
	default:
		return set.Batters
	}
}

func (p *Pipeline) matchOne(names []string, ref *fuzzy.Reference) *model.RoleReport {
	results := p.matcher.Match(names, ref, p.cfg.Threshold)
	matched, unmatched := fuzzy.Split(results)
	return &model.RoleReport{
		Matched:   matched,
		Unmatched: unmatched,
		Results:   results,
	}
}

func countPositions(records []model.RosterRecord) map[string]int {
	counts := map[string]int{}
	for _, rec := range records {
		if rec.Position != "" {
			counts[rec.Position]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

func countTotals(records []model.RosterRecord, roles map[string]*model.RoleReport) map[string]int {
	matched, unmatched := 0, 0
	for _, r := range roles {
		matched += len(r.Matched)
		unmatched += len(r.Unmatched)
	}
	return map[string]int{
		"extracted": len(records),
		"matched":   matched,
		"unmatched": unmatched,
	}
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
