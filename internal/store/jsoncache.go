// Package store persists the pipeline's flat JSON/CSV artifacts: the
// officials store, the keyed result caches, and the flattened export table.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyedCache is an append-only JSON cache keyed by deterministic lowercase
// strings. Once a key is written it is never recomputed; deleting the file
// forces recomputation on the next run.
type KeyedCache[T any] struct {
	path    string
	entries map[string]T
	dirty   bool
}

// NewKeyedCache creates a cache backed by the JSON file at path
func NewKeyedCache[T any](path string) *KeyedCache[T] {
	return &KeyedCache[T]{
		path:    path,
		entries: make(map[string]T),
	}
}

// Key builds the deterministic lowercase cache key from its parts
func Key(parts ...string) string {
	lowered := make([]string, len(parts))
	for i, p := range parts {
		lowered[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(lowered, "|")
}

// Load reads the cache file. A missing file is an empty cache, not an error.
func (c *KeyedCache[T]) Load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cache %s: %w", c.path, err)
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		return fmt.Errorf("decode cache %s: %w", c.path, err)
	}
	return nil
}

// Get retrieves a cached value
func (c *KeyedCache[T]) Get(key string) (T, bool) {
	val, ok := c.entries[key]
	return val, ok
}

// Put appends a value; existing keys are left untouched
func (c *KeyedCache[T]) Put(key string, val T) {
	if _, exists := c.entries[key]; exists {
		return
	}
	c.entries[key] = val
	c.dirty = true
}

// Len returns the number of cached entries
func (c *KeyedCache[T]) Len() int {
	return len(c.entries)
}

// Flush writes the cache to disk when it has new entries
func (c *KeyedCache[T]) Flush() error {
	if !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write cache %s: %w", c.path, err)
	}

	c.dirty = false
	return nil
}

// Clear deletes the cache file and resets in-memory state
func (c *KeyedCache[T]) Clear() error {
	c.entries = make(map[string]T)
	c.dirty = false
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
