package store

import (
	"github.com/juniperhq/stay/internal/model"
)

// Store persists the whole keyed object map as one document. Load and
// Save always move the full map; there are no partial writes.
type Store interface {
	// Load reads the persisted document. A missing or unreadable document
	// loads as an empty map, never an error.
	Load() (map[string]*model.Entity, error)

	// Save rewrites the document from the given map in one pass.
	Save(objects map[string]*model.Entity) error
}
