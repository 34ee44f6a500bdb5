package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/baseballlmb/rostermatch/internal/cache"
	"github.com/baseballlmb/rostermatch/internal/model"
)

// CachedProvider wraps a Provider with the layered cache and the embedded
// fallback. Fetch never fails: a dead source degrades to the last cached
// copy, and with nothing cached to the embedded list.
type CachedProvider struct {
	inner Provider
	store cache.Store
	ttl   time.Duration
}

// NewCachedProvider builds the standard degradation chain around inner.
// A nil store disables caching; source failures then fall straight through
// to the embedded list.
func NewCachedProvider(inner Provider, store cache.Store, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		store: store,
		ttl:   ttl,
	}
}

// Source reports the wrapped provider's identity.
func (p *CachedProvider) Source() string {
	return p.inner.Source()
}

// Fetch returns the best available reference set together with warnings
// describing any degradation. The third return reports whether the set came
// from the embedded last-resort list.
func (p *CachedProvider) Fetch(ctx context.Context) (*Set, []string, bool) {
	set, err := p.inner.Names(ctx)
	if err == nil && !set.Empty() {
		p.cache(set)
		return set, nil, false
	}

	var warnings []string
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("reference source %s unavailable: %v", p.inner.Source(), err))
	} else {
		warnings = append(warnings, fmt.Sprintf("reference source %s returned no names", p.inner.Source()))
	}

	if cached, ok := p.cached(); ok {
		warnings = append(warnings, "using cached reference names")
		return cached, warnings, false
	}

	warnings = append(warnings, "no cached reference names, using embedded fallback list")
	fallback, _ := EmbeddedProvider{}.Names(ctx)
	return fallback, warnings, true
}

func (p *CachedProvider) cache(set *Set) {
	if p.store == nil {
		return
	}
	source := p.inner.Source()
	_ = p.store.Set(cache.Key(source, model.PartitionBatters), set.Batters, p.ttl)
	_ = p.store.Set(cache.Key(source, model.PartitionPitchers), set.Pitchers, p.ttl)
}

func (p *CachedProvider) cached() (*Set, bool) {
	if p.store == nil {
		return nil, false
	}
	source := p.inner.Source()
	batters, okB := p.store.Get(cache.Key(source, model.PartitionBatters))
	pitchers, okP := p.store.Get(cache.Key(source, model.PartitionPitchers))
	if !okB && !okP {
		return nil, false
	}
	set := &Set{Batters: batters, Pitchers: pitchers}
	if set.Empty() {
		return nil, false
	}
	return set, true
}
