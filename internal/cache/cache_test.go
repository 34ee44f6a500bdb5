package cache

import (
	"testing"
	"time"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute)
	key := Key("csv:names.csv", "batters")

	if _, found := s.Get(key); found {
		t.Fatal("expected miss on fresh store")
	}

	names := []string{"Juan Perez", "Ana Diaz"}
	if err := s.Set(key, names, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found := s.Get(key)
	if !found || len(got) != 2 || got[0] != "Juan Perez" {
		t.Errorf("unexpected Get result: %v, %v", got, found)
	}
}

func TestDiskStore_RoundTripAndExpiry(t *testing.T) {
	s := NewDiskStore(t.TempDir(), time.Minute)
	key := Key("postgres:db", "pitchers")

	if err := s.Set(key, []string{"Pedro Ruiz"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found := s.Get(key)
	if !found || len(got) != 1 || got[0] != "Pedro Ruiz" {
		t.Errorf("unexpected Get result: %v, %v", got, found)
	}

	// An entry whose TTL already elapsed must miss.
	if err := s.Set(key, []string{"Pedro Ruiz"}, -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := s.Get(key); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredStore_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	key := Key("csv:names.csv", "batters")

	// Seed disk through one layered store, then read through a fresh one
	// whose memory layer is empty.
	first := NewLayeredStore(time.Minute, dir, time.Hour)
	if err := first.Set(key, []string{"Juan Perez"}, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := NewLayeredStore(time.Minute, dir, time.Hour)
	got, found := second.Get(key)
	if !found || len(got) != 1 {
		t.Fatalf("expected disk hit through fresh store, got %v, %v", got, found)
	}

	if _, found := second.memory.Get(key); !found {
		t.Error("expected disk hit to be promoted to memory")
	}
}

func TestKey_DistinctPerRole(t *testing.T) {
	if Key("src", "batters") == Key("src", "pitchers") {
		t.Error("expected distinct keys per role")
	}
	if Key("a", "batters") == Key("b", "batters") {
		t.Error("expected distinct keys per source")
	}
}
