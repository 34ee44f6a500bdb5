// Package reference supplies the canonical, role-partitioned name universe
// that roster names are reconciled against.
package reference

import (
	"context"
	"sort"
)

// Set is the role-partitioned canonical name universe. Entries are
// pre-normalized to the canonical display form (title-case, accents
// stripped) and immutable for the duration of one matching run.
type Set struct {
	Batters  []string `json:"batters"`
	Pitchers []string `json:"pitchers"`
}

// Empty reports whether the set holds no names at all.
func (s *Set) Empty() bool {
	return s == nil || (len(s.Batters) == 0 && len(s.Pitchers) == 0)
}

// Union returns the sorted, distinct union of both partitions, used when
// matching staff records.
func (s *Set) Union() []string {
	seen := make(map[string]bool, len(s.Batters)+len(s.Pitchers))
	var out []string
	for _, lists := range [][]string{s.Batters, s.Pitchers} {
		for _, n := range lists {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Provider supplies canonical names partitioned by role. Implementations
// must be idempotent within a run; the pipeline treats the returned set as
// read-only.
type Provider interface {
	// Names fetches the full role-partitioned name set.
	Names(ctx context.Context) (*Set, error)

	// Source identifies the provider for cache keys and diagnostics.
	Source() string
}

// embeddedNames is the minimal last-resort list used only when both the
// configured source and the cache are unavailable. Reaching it marks the
// whole run as degraded.
var embeddedNames = []string{
	"Javier Mireles",
	"Javier Contreras",
}

// EmbeddedProvider serves the built-in placeholder list for both roles.
type EmbeddedProvider struct{}

// Names returns the embedded placeholder set.
func (EmbeddedProvider) Names(ctx context.Context) (*Set, error) {
	names := make([]string, len(embeddedNames))
	copy(names, embeddedNames)
	return &Set{Batters: names, Pitchers: names}, nil
}

// Source identifies the embedded provider.
func (EmbeddedProvider) Source() string {
	return "embedded"
}
