package model

import "testing"

func TestKind_IsValid(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		want bool
	}{
		{KindBaseModel, true},
		{KindUser, true},
		{KindState, true},
		{KindCity, true},
		{KindAmenity, true},
		{KindPlace, true},
		{KindReview, true},
		{Kind(""), false},
		{Kind("Bogus"), false},
		{Kind("user"), false}, // kind names are case sensitive
	} {
		if got := tc.kind.IsValid(); got != tc.want {
			t.Errorf("Kind(%q).IsValid() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		want string
	}{
		{KindBaseModel, "BaseModel"},
		{KindUser, "User"},
		{KindReview, "Review"},
	} {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%q).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKinds_Closed(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 7 {
		t.Fatalf("Kinds() returned %d kinds, want 7", len(kinds))
	}
	for _, k := range kinds {
		if !k.IsValid() {
			t.Errorf("Kinds() contains invalid kind %q", k)
		}
	}
}

func TestDefaultFields_Types(t *testing.T) {
	for _, tc := range []struct {
		kind  Kind
		field string
		want  FieldType
	}{
		{KindUser, "email", TypeString},
		{KindState, "name", TypeString},
		{KindCity, "state_id", TypeString},
		{KindPlace, "number_rooms", TypeNumber},
		{KindPlace, "latitude", TypeNumber},
		{KindPlace, "amenity_ids", TypeStrings},
		{KindReview, "text", TypeString},
	} {
		fields := defaultFields(tc.kind)
		v, ok := fields[tc.field]
		if !ok {
			t.Errorf("defaultFields(%s) missing %q", tc.kind, tc.field)
			continue
		}
		if v.Type() != tc.want {
			t.Errorf("defaultFields(%s)[%q].Type() = %s, want %s", tc.kind, tc.field, v.Type(), tc.want)
		}
	}
}

func TestDefaultFields_FreshCopy(t *testing.T) {
	a := defaultFields(KindState)
	a["name"] = String("mutated")
	b := defaultFields(KindState)
	if b["name"].Text() != "" {
		t.Errorf("defaultFields returned shared state: name = %q", b["name"].Text())
	}
}

func TestDefaultFields_BaseModelEmpty(t *testing.T) {
	if n := len(defaultFields(KindBaseModel)); n != 0 {
		t.Errorf("defaultFields(BaseModel) has %d fields, want 0", n)
	}
}
