// Package file implements the document store as a single JSON file.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/juniperhq/stay/internal/model"
)

// Store reads and writes the keyed object map as one JSON object file.
type Store struct {
	path string
}

// New returns a file store backed by the document at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file or malformed JSON loads as an
// empty map. Records whose __class__ does not resolve to a known kind
// are dropped.
func (s *Store) Load() (map[string]*model.Entity, error) {
	objects := map[string]*model.Entity{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return objects, nil
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return objects, nil
	}

	for key, raw := range records {
		var e model.Entity
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		objects[key] = &e
	}
	return objects, nil
}

// Save rewrites the whole document. The new content is written to a
// temp file in the same directory and renamed into place, so a reader
// never observes a partial write.
func (s *Store) Save(objects map[string]*model.Entity) error {
	data, err := json.Marshal(objects)
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".stay-*.json")
	if err != nil {
		return fmt.Errorf("write store document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write store document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write store document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write store document: %w", err)
	}
	return nil
}
