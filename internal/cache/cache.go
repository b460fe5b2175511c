package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte cache with per-entry TTL. Backs the crosswalk bulk mapping
// download (7-day freshness window) and other fetched artifacts.
type Cache interface {
	Get(key string) ([]byte, bool)
	// Age reports how long ago a live entry was stored.
	Age(key string) (time.Duration, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a source URL or name
func Key(source string) string {
	hash := sha256.Sum256([]byte(source))
	return "pacwatch:v1:" + hex.EncodeToString(hash[:])
}
