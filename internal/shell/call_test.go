package shell

import (
	"reflect"
	"testing"

	"github.com/juniperhq/stay/internal/model"
)

func matchCall(t *testing.T, line string) (string, []any) {
	t.Helper()
	m := callPattern.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("callPattern did not match %q", line)
	}
	method, tokens, err := parseCall(m[1], m[2], m[3])
	if err != nil {
		t.Fatalf("parseCall(%q) error: %v", line, err)
	}
	return method, tokens
}

func TestCallPattern(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"User.all()", true},
		{`User.show("abc")`, true},
		{"User.all", false},
		{"all User", false},
		{".show(x)", false},
	} {
		if got := callPattern.MatchString(tc.in); got != tc.want {
			t.Errorf("callPattern.MatchString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseCall_NoArgs(t *testing.T) {
	method, tokens := matchCall(t, "User.count()")
	if method != "count" {
		t.Errorf("method = %q, want count", method)
	}
	if !reflect.DeepEqual(tokens, []any{"User"}) {
		t.Errorf("tokens = %#v, want [User]", tokens)
	}
}

func TestParseCall_StringArgs(t *testing.T) {
	_, tokens := matchCall(t, `Place.update("p1", "name", 'Casa Julia')`)
	want := []any{"Place", "p1", "name", "Casa Julia"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %#v, want %#v", tokens, want)
	}
}

func TestParseCall_NumberAndBoolArgs(t *testing.T) {
	_, tokens := matchCall(t, `Place.update("p1", "max_guest", 4)`)
	if tokens[3] != 4.0 {
		t.Errorf("tokens[3] = %#v, want 4", tokens[3])
	}

	_, tokens = matchCall(t, `Place.update("p1", "wifi", True)`)
	if tokens[3] != true {
		t.Errorf("tokens[3] = %#v, want true", tokens[3])
	}
}

func TestParseCall_DictArg(t *testing.T) {
	_, tokens := matchCall(t, `Place.update("p1", {'name': 'Julia', 'age': 25})`)
	if len(tokens) != 3 {
		t.Fatalf("tokens = %#v, want 3 entries", tokens)
	}
	attrs, ok := tokens[2].(model.Attributes)
	if !ok {
		t.Fatalf("tokens[2] = %T, want model.Attributes", tokens[2])
	}
	want := model.Attributes{
		{Name: "name", Value: model.String("Julia")},
		{Name: "age", Value: model.Number(25)},
	}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("attrs = %#v, want %#v", attrs, want)
	}
}

func TestParseCall_EmptyDict(t *testing.T) {
	_, tokens := matchCall(t, `Place.update("p1", {})`)
	attrs, ok := tokens[2].(model.Attributes)
	if !ok || len(attrs) != 0 {
		t.Errorf("tokens[2] = %#v, want empty attribute list", tokens[2])
	}
}

func TestParseCall_Malformed(t *testing.T) {
	for _, args := range []string{
		`"unterminated`,
		`'a' 'b'`,   // missing comma
		`{'k' 'v'}`, // missing colon
		`{1: 'v'}`,  // non-string key
		`{'k': {'nested': 1}}`,
		`foo`, // bare word
		`()`,  // not a literal
	} {
		if _, _, err := parseCall("User", "update", args); err == nil {
			t.Errorf("parseCall(%q) succeeded, want error", args)
		}
	}
}
