package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pacwatch/pacwatch/internal/model"
)

// officialsDoc is the on-disk shape of the officials store
type officialsDoc struct {
	LastUpdated time.Time         `json:"last_updated"`
	Officials   []*model.Official `json:"officials"`
}

// OfficialsStore persists the canonical officials records between runs.
// Read at pipeline start, overwritten at pipeline end.
type OfficialsStore struct {
	path string
}

// NewOfficialsStore creates a store backed by the JSON document at path
func NewOfficialsStore(path string) *OfficialsStore {
	return &OfficialsStore{path: path}
}

// Path returns the store location
func (s *OfficialsStore) Path() string {
	return s.path
}

// Load reads every official. A missing store yields an empty slice.
func (s *OfficialsStore) Load() ([]*model.Official, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read officials store: %w", err)
	}

	var doc officialsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode officials store: %w", err)
	}
	return doc.Officials, nil
}

// Save overwrites the store with the given officials and a fresh timestamp
func (s *OfficialsStore) Save(officials []*model.Official) error {
	doc := officialsDoc{
		LastUpdated: time.Now().UTC(),
		Officials:   officials,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode officials store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write officials store: %w", err)
	}
	return nil
}
