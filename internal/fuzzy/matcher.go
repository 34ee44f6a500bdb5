// Package fuzzy reconciles extracted roster names against a canonical
// reference list with a two-pass similarity search.
package fuzzy

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/normalize"
)

// Algorithm tags recorded on accepted matches, naming the pass that
// produced the winning score.
const (
	AlgorithmNormalized = "levenshtein (normalized)"
	AlgorithmSimplified = "levenshtein (simplified)"
)

// refEntry is one reference name with its comparison keys precomputed.
type refEntry struct {
	original   string
	normalized string
	simplified string
}

// Reference is a pre-normalized reference name list. Building it once per
// run keeps Match at one metric call per (name, entry) pair per pass.
// Iteration order is the load order; score ties resolve to the first entry.
type Reference struct {
	entries []refEntry
}

// NewReference precomputes comparison keys for a canonical name list.
func NewReference(names []string) *Reference {
	entries := make([]refEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, refEntry{
			original:   n,
			normalized: normalize.Normalize(n),
			simplified: normalize.Simplify(n),
		})
	}
	return &Reference{entries: entries}
}

// Len returns the number of reference entries.
func (r *Reference) Len() int {
	return len(r.entries)
}

// Matcher computes best-match pairings of names against a reference list.
type Matcher struct {
	metric *metrics.Levenshtein
}

// NewMatcher creates a matcher using a symmetric edit-distance ratio.
func NewMatcher() *Matcher {
	return &Matcher{metric: metrics.NewLevenshtein()}
}

// ratio scores two strings on the 0-100 scale.
func (m *Matcher) ratio(a, b string) float64 {
	return strutil.Similarity(a, b, m.metric) * 100
}

// Match pairs every input name with its best-scoring reference entry,
// preserving input order. Pass 1 compares normalized forms; if the best
// score stays below the threshold, pass 2 retries with simplified forms
// and keeps whichever pass scored higher. A name is accepted iff the final
// best score is >= threshold. An empty reference list short-circuits to
// no-match results with similarity 0.
func (m *Matcher) Match(names []string, ref *Reference, threshold float64) []model.MatchResult {
	results := make([]model.MatchResult, 0, len(names))

	if ref == nil || len(ref.entries) == 0 {
		for _, name := range names {
			results = append(results, model.MatchResult{RosterName: name})
		}
		return results
	}

	for _, name := range names {
		normalized := normalize.Normalize(name)

		best := 0.0
		bestEntry := ""
		algorithm := ""
		for _, e := range ref.entries {
			if score := m.ratio(normalized, e.normalized); score > best {
				best = score
				bestEntry = e.original
				algorithm = AlgorithmNormalized
			}
		}

		if best < threshold {
			simplified := normalize.Simplify(name)
			for _, e := range ref.entries {
				if score := m.ratio(simplified, e.simplified); score > best {
					best = score
					bestEntry = e.original
					algorithm = AlgorithmSimplified
				}
			}
		}

		res := model.MatchResult{
			RosterName: name,
			Similarity: best,
		}
		if best >= threshold {
			res.Matched = true
			res.TrackmanName = bestEntry
			res.Algorithm = algorithm
		}
		results = append(results, res)
	}

	return results
}

// Split divides match results into matched pairs and unmatched names.
func Split(results []model.MatchResult) ([]model.MatchedPair, []string) {
	var matched []model.MatchedPair
	var unmatched []string
	for _, r := range results {
		if r.Matched {
			matched = append(matched, model.MatchedPair{
				Extracted: r.RosterName,
				Canonical: r.TrackmanName,
				Score:     r.Similarity,
			})
		} else {
			unmatched = append(unmatched, r.RosterName)
		}
	}
	return matched, unmatched
}
