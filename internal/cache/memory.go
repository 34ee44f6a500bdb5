package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore caches name lists in memory for the lifetime of the process.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a name list from the store.
func (s *MemoryStore) Get(key string) ([]string, bool) {
	if val, found := s.cache.Get(key); found {
		return val.([]string), true
	}
	return nil, false
}

// Set stores a name list with the given TTL.
func (s *MemoryStore) Set(key string, names []string, ttl time.Duration) error {
	s.cache.Set(key, names, ttl)
	return nil
}

// Delete removes a name list from the store.
func (s *MemoryStore) Delete(key string) error {
	s.cache.Delete(key)
	return nil
}

// Clear removes every cached name list.
func (s *MemoryStore) Clear() error {
	s.cache.Flush()
	return nil
}
