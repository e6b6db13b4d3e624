package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/juniperhq/stay/internal/idgen"
)

// TimeLayout is the timestamp encoding used in the store document:
// ISO-8601 with microsecond precision and no zone suffix.
const TimeLayout = "2006-01-02T15:04:05.000000"

// classKey is the serialized discriminator naming the entity's kind.
const classKey = "__class__"

// Reserved core field names. Updates addressed at these are refused.
var reserved = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	classKey:     true,
}

// Entity is one live object: an immutable id, a kind, two timestamps, and
// the kind-specific extra fields.
type Entity struct {
	ID        string
	Kind      Kind
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    map[string]Value
}

// New creates a fresh entity of the given kind with a random id, both
// timestamps set to now, and the kind's default field schema.
func New(kind Kind) (*Entity, error) {
	id, err := idgen.Generate()
	if err != nil {
		return nil, fmt.Errorf("new %s: %w", kind, err)
	}
	now := time.Now()
	return &Entity{
		ID:        id,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    defaultFields(kind),
	}, nil
}

// Key returns the registry key "{Kind}.{id}".
func (e *Entity) Key() string {
	return Key(e.Kind.String(), e.ID)
}

// Key builds the registry key for a kind name and id. Empty inputs yield
// an empty key, which never matches a live entity.
func Key(kindName, id string) string {
	if kindName == "" || id == "" {
		return ""
	}
	return kindName + "." + id
}

// Touch bumps the update timestamp, keeping it monotonic.
func (e *Entity) Touch() {
	now := time.Now()
	if now.After(e.UpdatedAt) {
		e.UpdatedAt = now
	}
}

// SetAttribute applies the typed coercion rule:
//   - unknown field names create a new field holding the raw value;
//   - names with a leading underscore or naming a core field are refused;
//   - existing fields only accept a value of their own type, or a string
//     that parses into it.
func (e *Entity) SetAttribute(name string, raw Value) error {
	if raw.IsZero() {
		return fmt.Errorf("attribute %q: no value", name)
	}
	if strings.HasPrefix(name, "_") || reserved[name] {
		return &ProtectedAttributeError{Name: name}
	}
	cur, ok := e.Fields[name]
	if !ok {
		if e.Fields == nil {
			e.Fields = map[string]Value{}
		}
		e.Fields[name] = raw
		return nil
	}
	coerced, err := raw.Coerce(cur.Type())
	if err != nil {
		return err
	}
	e.Fields[name] = coerced
	return nil
}

// ProtectedAttributeError reports an update aimed at a core or internal
// field name.
type ProtectedAttributeError struct {
	Name string
}

func (e *ProtectedAttributeError) Error() string {
	return fmt.Sprintf("attribute %q is protected", e.Name)
}

// String renders the entity as "[Kind] (id) {fields}" with fields in
// sorted order, matching the console's display form.
func (e *Entity) String() string {
	names := make([]string, 0, len(e.Fields)+3)
	names = append(names, "id", "created_at", "updated_at")
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] (%s) {", e.Kind, e.ID)
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		switch name {
		case "id":
			fmt.Fprintf(&b, "'id': '%s'", e.ID)
		case "created_at":
			fmt.Fprintf(&b, "'created_at': '%s'", e.CreatedAt.Format(TimeLayout))
		case "updated_at":
			fmt.Fprintf(&b, "'updated_at': '%s'", e.UpdatedAt.Format(TimeLayout))
		default:
			v := e.Fields[name]
			if v.Type() == TypeString {
				fmt.Fprintf(&b, "'%s': '%s'", name, v.Text())
			} else {
				fmt.Fprintf(&b, "'%s': %s", name, v.Text())
			}
		}
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON serializes the entity as the flat store-document object:
// core fields, the __class__ discriminator, and every extra field.
func (e *Entity) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(e.Fields)+4)
	doc["id"] = e.ID
	doc[classKey] = e.Kind.String()
	doc["created_at"] = e.CreatedAt.Format(TimeLayout)
	doc["updated_at"] = e.UpdatedAt.Format(TimeLayout)
	for name, v := range e.Fields {
		doc[name] = v.Interface()
	}
	return json.Marshal(doc)
}

// UnmarshalJSON restores an entity from its store-document object.
// An unknown or missing __class__ discriminator is an error; extra field
// values outside the primitive set are dropped.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	kindName, _ := doc[classKey].(string)
	kind := Kind(kindName)
	if !kind.IsValid() {
		return fmt.Errorf("unknown class %q", kindName)
	}
	id, _ := doc["id"].(string)
	if id == "" {
		return fmt.Errorf("record %s has no id", kindName)
	}

	created, err := parseTimestamp(doc["created_at"])
	if err != nil {
		return fmt.Errorf("record %s.%s: created_at: %w", kindName, id, err)
	}
	updated, err := parseTimestamp(doc["updated_at"])
	if err != nil {
		return fmt.Errorf("record %s.%s: updated_at: %w", kindName, id, err)
	}

	fields := map[string]Value{}
	for name, raw := range doc {
		if reserved[name] {
			continue
		}
		if v, ok := FromAny(raw); ok {
			fields[name] = v
		}
	}

	e.ID = id
	e.Kind = kind
	e.CreatedAt = created
	e.UpdatedAt = updated
	e.Fields = fields
	return nil
}

func parseTimestamp(raw any) (time.Time, error) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("not a timestamp string")
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Attribute is one name/value pair of a multi-field update.
type Attribute struct {
	Name  string
	Value Value
}

// Attributes is an ordered multi-field update, applied first to last.
type Attributes []Attribute
