package cache

import "time"

// LayeredStore combines the in-process memory store with the persistent
// disk store. Reads check memory first and promote disk hits.
type LayeredStore struct {
	memory Store
	disk   Store
}

// NewLayeredStore creates a new layered store.
func NewLayeredStore(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredStore {
	return &LayeredStore{
		memory: NewMemoryStore(memoryTTL, 10*time.Minute),
		disk:   NewDiskStore(diskDir, diskTTL),
	}
}

// Get retrieves a name list, checking memory before disk.
func (s *LayeredStore) Get(key string) ([]string, bool) {
	if names, found := s.memory.Get(key); found {
		return names, true
	}

	if names, found := s.disk.Get(key); found {
		_ = s.memory.Set(key, names, 0)
		return names, true
	}

	return nil, false
}

// Set stores a name list in both layers.
func (s *LayeredStore) Set(key string, names []string, ttl time.Duration) error {
	if err := s.memory.Set(key, names, ttl); err != nil {
		return err
	}
	return s.disk.Set(key, names, ttl)
}

// Delete removes a name list from both layers.
func (s *LayeredStore) Delete(key string) error {
	_ = s.memory.Delete(key)
	_ = s.disk.Delete(key)
	return nil
}

// Clear removes all name lists from both layers.
func (s *LayeredStore) Clear() error {
	_ = s.memory.Clear()
	return s.disk.Clear()
}
