// Package score turns raw match outcomes into a quality verdict for a file
// report.
package score

import (
	"fmt"

	"github.com/baseballlmb/rostermatch/internal/model"
)

// Scorer calculates match quality and generates diagnostic signals.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Inputs describes one processed file from the scorer's point of view.
type Inputs struct {
	Roles    map[string]*model.RoleReport
	Degraded bool // embedded reference fallback in effect
	FlatScan bool // no section structure detected
}

// Calculate produces the quality block for a file report.
func (s *Scorer) Calculate(in Inputs) model.Quality {
	var signals []model.Signal

	matched, total := 0, 0
	for partition, report := range in.Roles {
		matched += len(report.Matched)
		total += len(report.Matched) + len(report.Unmatched)
		if len(report.Matched) == 0 && len(report.Unmatched) == 0 {
			signals = append(signals, model.Signal{
				Type:        model.SignalEmptySection,
				Severity:    model.SeverityInfo,
				Description: fmt.Sprintf("No names extracted for %s", partition),
			})
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(matched) / float64(total)
	}

	if in.Degraded {
		signals = append(signals, model.Signal{
			Type:        model.SignalDegradedReference,
			Severity:    model.SeverityCritical,
			Description: "Embedded fallback reference list in use; matches are unreliable",
		})
	}
	if in.FlatScan {
		signals = append(signals, model.Signal{
			Type:        model.SignalNoStructure,
			Severity:    model.SeverityWarning,
			Description: "No section structure detected, names collected by flat scan",
		})
	}
	if total > 0 && rate < 0.5 {
		signals = append(signals, model.Signal{
			Type:        model.SignalLowMatchRate,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("Only %d of %d names reconciled", matched, total),
			Data: map[string]interface{}{
				"matched": matched,
				"total":   total,
			},
		})
	}

	return model.Quality{
		MatchRate:  rate,
		Confidence: s.determineConfidence(rate, total, in.Degraded),
		Degraded:   in.Degraded,
		Signals:    signals,
	}
}

func (s *Scorer) determineConfidence(rate float64, total int, degraded bool) string {
	switch {
	case degraded || total == 0:
		return "low"
	case rate >= 0.8:
		return "high"
	case rate >= 0.5:
		return "medium"
	default:
		return "low"
	}
}
