// Package registry owns the collection of live entities, keyed
// "{Kind}.{id}", and flushes it to the document store on every mutation.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/juniperhq/stay/internal/model"
	"github.com/juniperhq/stay/internal/store"
)

// Registry tracks live entities and resolves them by composite key.
type Registry struct {
	objects map[string]*model.Entity
	store   store.Store
}

// New returns an empty registry flushing to st.
func New(st store.Store) *Registry {
	return &Registry{
		objects: map[string]*model.Entity{},
		store:   st,
	}
}

// Kind resolves a kind name against the known set.
func (r *Registry) Kind(name string) (model.Kind, error) {
	if name == "" {
		return "", ErrMissingClassName
	}
	kind := model.Kind(name)
	if !kind.IsValid() {
		return "", ErrUnknownClass
	}
	return kind, nil
}

// Register adds the entity under its key. Nil entities and entities of
// an unknown kind are silently ignored.
func (r *Registry) Register(e *model.Entity) {
	if e == nil || !e.Kind.IsValid() {
		return
	}
	r.objects[e.Key()] = e
}

// Create makes a new entity of the named kind, registers it, and
// flushes. The fresh entity is returned so the caller can print its id.
func (r *Registry) Create(kindName string) (*model.Entity, error) {
	kind, err := r.Kind(kindName)
	if err != nil {
		return nil, err
	}
	e, err := model.New(kind)
	if err != nil {
		return nil, err
	}
	r.Register(e)
	if err := r.Save(); err != nil {
		return nil, err
	}
	return e, nil
}

// Find resolves an entity by kind name and id. The kind is validated
// before the key is looked up, so an unknown kind reports ErrUnknownClass
// rather than ErrNotFound.
func (r *Registry) Find(kindName, id string) (*model.Entity, error) {
	kind, err := r.Kind(kindName)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingInstanceID
	}
	e, ok := r.objects[model.Key(kind.String(), id)]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Remove finds the entity, deletes its key, and flushes.
func (r *Registry) Remove(kindName, id string) error {
	e, err := r.Find(kindName, id)
	if err != nil {
		return err
	}
	delete(r.objects, e.Key())
	return r.Save()
}

// ListAll returns the display form of every live entity, filtered to one
// kind when kindName is non-empty. An unknown kind yields an empty slice,
// not an error; that asymmetry with Find is deliberate.
func (r *Registry) ListAll(kindName string) []string {
	keys := make([]string, 0, len(r.objects))
	for key, e := range r.objects {
		if kindName != "" && e.Kind.String() != kindName {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.objects[key].String())
	}
	return lines
}

// Count returns the number of live entities of the named kind. Empty or
// unknown kind input reports an error rather than zero, so "no kind
// given" is distinguishable from "zero matches".
func (r *Registry) Count(kindName string) (int, error) {
	kind, err := r.Kind(kindName)
	if err != nil {
		return 0, err
	}
	prefix := kind.String() + "."
	n := 0
	for key := range r.objects {
		if strings.HasPrefix(key, prefix) {
			n++
		}
	}
	return n, nil
}

// UpdateAttribute sets one attribute on the entity resolved by kind name
// and id, then bumps its update timestamp and flushes. An empty name or
// value is a silent no-op. A refused coercion leaves the entity and the
// document untouched and reports the refusal.
func (r *Registry) UpdateAttribute(kindName, id, name string, value model.Value) error {
	e, err := r.Find(kindName, id)
	if err != nil {
		return err
	}
	if name == "" || value.IsZero() || value.IsEmpty() {
		return nil
	}
	if err := e.SetAttribute(name, value); err != nil {
		return err
	}
	e.Touch()
	return r.Save()
}

// UpdateAttributes applies each attribute in order. One failing entry
// does not roll back entries already applied; all failures are joined
// into the returned error.
func (r *Registry) UpdateAttributes(kindName, id string, attrs model.Attributes) error {
	var errs []error
	for _, a := range attrs {
		if err := r.UpdateAttribute(kindName, id, a.Name, a.Value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Save flushes every live entity to the document store in one pass.
func (r *Registry) Save() error {
	return r.store.Save(r.objects)
}

// Load replaces the live map with the persisted document. Records of an
// unknown kind were already dropped by the store; any that slip through
// are ignored here too.
func (r *Registry) Load() error {
	objects, err := r.store.Load()
	if err != nil {
		return err
	}
	r.objects = map[string]*model.Entity{}
	for _, e := range objects {
		r.Register(e)
	}
	return nil
}
