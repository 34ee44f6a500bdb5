package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/baseballlmb/rostermatch/internal/model"
)

// Renderer writes file reports to disk and prints summaries.
type Renderer struct{}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.FileReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.FileReport, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Roster Match Report\n\n")
	fmt.Fprintf(&b, "**File:** %s\n\n", report.File)

	if report.Failed() {
		fmt.Fprintf(&b, "**Error:** %s\n", report.Error)
		return os.WriteFile(path, []byte(b.String()), 0644)
	}

	fmt.Fprintf(&b, "**Players:** %d  \n", report.TotalPlayers)
	fmt.Fprintf(&b, "**Match rate:** %.0f%%  \n", report.Quality.MatchRate*100)
	fmt.Fprintf(&b, "**Confidence:** %s\n\n", report.Quality.Confidence)

	for _, part := range []string{model.PartitionBatters, model.PartitionPitchers, model.PartitionStaff} {
		role, ok := report.Roles[part]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(part[:1])+part[1:])
		if len(role.Matched) > 0 {
			fmt.Fprintf(&b, "| Roster | Trackman | Score |\n|---|---|---|\n")
			for _, m := range role.Matched {
				fmt.Fprintf(&b, "| %s | %s | %.1f |\n", m.Extracted, m.Canonical, m.Score)
			}
			fmt.Fprintln(&b)
		}
		if len(role.Unmatched) > 0 {
			fmt.Fprintf(&b, "Unmatched: %s\n\n", strings.Join(role.Unmatched, ", "))
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		fmt.Fprintln(&b)
	}
	for _, s := range report.Quality.Signals {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", s.Type, s.Severity, s.Description)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a short per-file summary to stdout.
func (r *Renderer) RenderSummary(report *model.FileReport) {
	if report.Failed() {
		fmt.Printf("%s: FAILED (%s)\n", report.File, report.Error)
		return
	}

	fmt.Printf("%s: %d players, %d matched, %d unmatched (%s confidence)\n",
		report.File,
		report.TotalPlayers,
		report.Totals["matched"],
		report.Totals["unmatched"],
		report.Quality.Confidence)

	if report.Quality.Degraded {
		fmt.Println("  ⚠ degraded reference list in use")
	}

	if len(report.Positions) > 0 {
		positions := make([]string, 0, len(report.Positions))
		for p := range report.Positions {
			positions = append(positions, p)
		}
		sort.Strings(positions)
		parts := make([]string, 0, len(positions))
		for _, p := range positions {
			parts = append(parts, fmt.Sprintf("%s=%d", p, report.Positions[p]))
		}
		fmt.Printf("  positions: %s\n", strings.Join(parts, " "))
	}
}
