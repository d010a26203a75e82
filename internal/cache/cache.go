// Package cache provides the layered response cache used by the gazetteer
// backfill client: an in-memory layer in front of a disk layer so repeated
// runs do not refetch the Pleiades API.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the store interface shared by all layers.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "origo:v1:" + hex.EncodeToString(hash[:])
}
