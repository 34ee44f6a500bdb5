// Package cache persists reference name lists between matching runs so a
// run can fall back to the most recently fetched names when the reference
// source is unavailable.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store is a role-keyed cache of canonical name lists.
type Store interface {
	Get(key string) ([]string, bool)
	Set(key string, names []string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds the cache key for one role partition of one reference source.
func Key(source, role string) string {
	hash := sha256.Sum256([]byte(source + "|" + role))
	return "rostermatch:v1:" + hex.EncodeToString(hash[:])
}
