package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldType tags the runtime type of an extra field's value. Coercion on
// update is a match on this tag, never reflection over the stored value.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBool    FieldType = "bool"
	TypeStrings FieldType = "strings"
)

// Value is a typed primitive field value: a string, a number, a boolean,
// or a flat list of strings.
type Value struct {
	typ  FieldType
	str  string
	num  float64
	b    bool
	list []string
}

// String wraps s as a string-typed value.
func String(s string) Value {
	return Value{typ: TypeString, str: s}
}

// Number wraps n as a number-typed value.
func Number(n float64) Value {
	return Value{typ: TypeNumber, num: n}
}

// Bool wraps b as a boolean-typed value.
func Bool(b bool) Value {
	return Value{typ: TypeBool, b: b}
}

// Strings wraps elems as a string-list value. The slice is copied.
func Strings(elems []string) Value {
	v := Value{typ: TypeStrings}
	if len(elems) > 0 {
		v.list = append([]string(nil), elems...)
	}
	return v
}

// FromAny converts a JSON-decoded value (or a raw shell token) into a
// Value. Returns false for nil and for shapes outside the primitive set.
func FromAny(x any) (Value, bool) {
	switch t := x.(type) {
	case string:
		return String(t), true
	case float64:
		return Number(t), true
	case int:
		return Number(float64(t)), true
	case bool:
		return Bool(t), true
	case []string:
		return Strings(t), true
	case []any:
		elems := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return Value{}, false
			}
			elems = append(elems, s)
		}
		return Strings(elems), true
	case Value:
		return t, true
	}
	return Value{}, false
}

// Type returns the value's type tag. The zero Value has an empty tag and
// is not a valid field value.
func (v Value) Type() FieldType {
	return v.typ
}

// IsZero reports whether v is the unset zero Value.
func (v Value) IsZero() bool {
	return v.typ == ""
}

// IsEmpty reports whether v would be falsy as shell input: unset, the
// empty string, zero, false, or an empty list.
func (v Value) IsEmpty() bool {
	switch v.typ {
	case TypeString:
		return v.str == ""
	case TypeNumber:
		return v.num == 0
	case TypeBool:
		return !v.b
	case TypeStrings:
		return len(v.list) == 0
	}
	return true
}

// Interface returns the value as the plain Go type encoding/json expects.
func (v Value) Interface() any {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeNumber:
		return v.num
	case TypeBool:
		return v.b
	case TypeStrings:
		if v.list == nil {
			return []string{}
		}
		return v.list
	}
	return nil
}

// Text returns the value rendered for display.
func (v Value) Text() string {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeStrings:
		return "[" + strings.Join(v.list, ", ") + "]"
	}
	return ""
}

// Coerce converts v into the target field type. A value already of the
// target type passes through; a string is parsed into the target type;
// anything else is refused with a *CoerceError.
func (v Value) Coerce(want FieldType) (Value, error) {
	if v.typ == want {
		return v, nil
	}
	if v.typ != TypeString {
		return Value{}, &CoerceError{Want: want, Got: v.typ}
	}
	switch want {
	case TypeNumber:
		n, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return Value{}, &CoerceError{Want: want, Got: v.typ, Raw: v.str}
		}
		return Number(n), nil
	case TypeBool:
		b, err := strconv.ParseBool(v.str)
		if err != nil {
			return Value{}, &CoerceError{Want: want, Got: v.typ, Raw: v.str}
		}
		return Bool(b), nil
	}
	return Value{}, &CoerceError{Want: want, Got: v.typ, Raw: v.str}
}

// CoerceError reports a raw value that could not be converted into an
// existing field's type.
type CoerceError struct {
	Want FieldType
	Got  FieldType
	Raw  string
}

func (e *CoerceError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("cannot coerce %q into %s", e.Raw, e.Want)
	}
	return fmt.Sprintf("cannot coerce %s into %s", e.Got, e.Want)
}
