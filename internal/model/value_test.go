package model

import (
	"errors"
	"testing"
)

func TestFromAny(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   any
		want FieldType
		ok   bool
	}{
		{"String", "hello", TypeString, true},
		{"Float", 3.5, TypeNumber, true},
		{"Int", 25, TypeNumber, true},
		{"Bool", true, TypeBool, true},
		{"StringSlice", []string{"a", "b"}, TypeStrings, true},
		{"AnySlice", []any{"a", "b"}, TypeStrings, true},
		{"MixedSlice", []any{"a", 1.0}, "", false},
		{"Nil", nil, "", false},
		{"Map", map[string]any{}, "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := FromAny(tc.in)
			if ok != tc.ok {
				t.Fatalf("FromAny(%v) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && v.Type() != tc.want {
				t.Errorf("FromAny(%v).Type() = %s, want %s", tc.in, v.Type(), tc.want)
			}
		})
	}
}

func TestValue_Coerce(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      Value
		want    FieldType
		wantVal any
		wantErr bool
	}{
		{"SameType", Number(5), TypeNumber, 5.0, false},
		{"StringToNumber", String("22"), TypeNumber, 22.0, false},
		{"StringToFloat", String("4.5"), TypeNumber, 4.5, false},
		{"StringToBool", String("true"), TypeBool, true, false},
		{"StringStaysString", String("x"), TypeString, "x", false},
		{"BadNumber", String("not-a-number"), TypeNumber, nil, true},
		{"BadBool", String("maybe"), TypeBool, nil, true},
		{"NumberToString", Number(1), TypeString, nil, true},
		{"BoolToNumber", Bool(true), TypeNumber, nil, true},
		{"StringToStrings", String("a"), TypeStrings, nil, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Coerce(tc.want)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Coerce(%v, %s) = %v, want error", tc.in, tc.want, got)
				}
				var ce *CoerceError
				if !errors.As(err, &ce) {
					t.Errorf("Coerce error type = %T, want *CoerceError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Coerce(%v, %s) error: %v", tc.in, tc.want, err)
			}
			if got.Type() != tc.want {
				t.Errorf("coerced type = %s, want %s", got.Type(), tc.want)
			}
			if got.Interface() != tc.wantVal {
				t.Errorf("coerced value = %v, want %v", got.Interface(), tc.wantVal)
			}
		})
	}
}

func TestValue_IsEmpty(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   Value
		want bool
	}{
		{"EmptyString", String(""), true},
		{"NonEmptyString", String("0"), false},
		{"ZeroNumber", Number(0), true},
		{"Number", Number(1), false},
		{"False", Bool(false), true},
		{"True", Bool(true), false},
		{"NilList", Strings(nil), true},
		{"List", Strings([]string{"a"}), false},
		{"Zero", Value{}, true},
	} {
		if got := tc.in.IsEmpty(); got != tc.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValue_Text(t *testing.T) {
	for _, tc := range []struct {
		in   Value
		want string
	}{
		{String("hi"), "hi"},
		{Number(22), "22"},
		{Number(4.5), "4.5"},
		{Bool(true), "true"},
		{Strings([]string{"a", "b"}), "[a, b]"},
	} {
		if got := tc.in.Text(); got != tc.want {
			t.Errorf("Text(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStrings_Copies(t *testing.T) {
	src := []string{"a"}
	v := Strings(src)
	src[0] = "mutated"
	got := v.Interface().([]string)
	if got[0] != "a" {
		t.Errorf("Strings shares backing array: %v", got)
	}
}
