package fuzzy

import (
	"testing"

	"github.com/baseballlmb/rostermatch/internal/model"
)

func TestMatch_ExactNormalizedMatch(t *testing.T) {
	m := NewMatcher()
	ref := NewReference([]string{"Juan Pérez", "Carlos Ruiz"})

	results := m.Match([]string{"Juan Perez"}, ref, 90)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if !r.Matched {
		t.Fatalf("expected a match, got %+v", r)
	}
	if r.Similarity != 100.0 {
		t.Errorf("expected similarity 100.0, got %v", r.Similarity)
	}
	if r.TrackmanName != "Juan Pérez" {
		t.Errorf("expected original reference form, got %q", r.TrackmanName)
	}
	if r.Algorithm != AlgorithmNormalized {
		t.Errorf("expected normalized pass tag, got %q", r.Algorithm)
	}
}

func TestMatch_EmptyReference(t *testing.T) {
	m := NewMatcher()

	results := m.Match([]string{"Juan Perez", "Ana Diaz"}, NewReference(nil), 90)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Matched || r.Similarity != 0.0 || r.TrackmanName != "" {
			t.Errorf("expected empty no-match result, got %+v", r)
		}
	}
}

func TestMatch_ThresholdBoundary(t *testing.T) {
	m := NewMatcher()
	ref := NewReference([]string{"Juan Perez"})

	// Find the score of a near-miss pair, then use it as the threshold:
	// a score exactly at the threshold is accepted.
	probe := m.Match([]string{"Juan Peres"}, ref, 0)
	score := probe[0].Similarity
	if score <= 0 || score >= 100 {
		t.Fatalf("probe score out of expected range: %v", score)
	}

	at := m.Match([]string{"Juan Peres"}, ref, score)
	if !at[0].Matched {
		t.Errorf("score exactly at threshold must be accepted")
	}

	above := m.Match([]string{"Juan Peres"}, ref, score+0.01)
	if above[0].Matched {
		t.Errorf("score below threshold must be rejected")
	}
	if above[0].TrackmanName != "" || above[0].Algorithm != "" {
		t.Errorf("rejected result must not carry a reference name or tag: %+v", above[0])
	}
}

func TestMatch_SimplifiedFallback(t *testing.T) {
	m := NewMatcher()
	// The middle initial breaks the normalized compare; dropping short
	// tokens recovers the match.
	ref := NewReference([]string{"Juan Alberto Perez"})

	results := m.Match([]string{"Juan J. Alberto Perez"}, ref, 95)
	r := results[0]
	if !r.Matched {
		t.Fatalf("expected simplified pass to recover the match, got %+v", r)
	}
	if r.Algorithm != AlgorithmSimplified {
		t.Errorf("expected simplified pass tag, got %q", r.Algorithm)
	}
	if r.Similarity != 100.0 {
		t.Errorf("expected similarity 100.0 after simplification, got %v", r.Similarity)
	}
}

func TestMatch_OrderPreservedAndTieFirstWins(t *testing.T) {
	m := NewMatcher()
	// Both entries normalize identically; the first loaded entry wins.
	ref := NewReference([]string{"José Pérez", "Jose Perez"})

	results := m.Match([]string{"Ana Diaz", "jose perez"}, ref, 90)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].RosterName != "Ana Diaz" || results[1].RosterName != "jose perez" {
		t.Errorf("input order not preserved: %+v", results)
	}
	if results[1].TrackmanName != "José Pérez" {
		t.Errorf("tie must resolve to first reference entry, got %q", results[1].TrackmanName)
	}
}

func TestMatch_EndToEndScenario(t *testing.T) {
	m := NewMatcher()
	ref := NewReference([]string{"Juan Pérez", "Carlos Ruiz"})

	results := m.Match([]string{"Juan Perez", "xyz unmatched"}, ref, 90)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Matched || results[0].Similarity != 100.0 || results[0].TrackmanName != "Juan Pérez" {
		t.Errorf("unexpected matched result: %+v", results[0])
	}
	if results[1].Matched || results[1].TrackmanName != "" {
		t.Errorf("unexpected unmatched result: %+v", results[1])
	}
	if results[1].Similarity >= 90 {
		t.Errorf("expected low similarity for nonsense input, got %v", results[1].Similarity)
	}
}

func TestSplit(t *testing.T) {
	results := []model.MatchResult{
		{RosterName: "a b", TrackmanName: "A B", Matched: true, Similarity: 100},
		{RosterName: "c d", Similarity: 40},
	}

	matched, unmatched := Split(results)
	if len(matched) != 1 || matched[0].Canonical != "A B" || matched[0].Score != 100 {
		t.Errorf("unexpected matched pairs: %+v", matched)
	}
	if len(unmatched) != 1 || unmatched[0] != "c d" {
		t.Errorf("unexpected unmatched names: %+v", unmatched)
	}
}
