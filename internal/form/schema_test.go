package form

import (
	"errors"
	"testing"
)

func demoSchema() Schema {
	return Schema{
		Title: "Test",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: KindText, Required: true, MaxLen: 10},
			{Key: "lang", Label: "Language", Kind: KindSelect, Options: []string{"go", "rust"}},
			{Key: "owner", Label: "Owner", Kind: KindCombo, Required: true},
			{Key: "public", Label: "Public", Kind: KindSwitch},
			{Key: "tags", Label: "Tags", Kind: KindTags, Required: true},
		},
	}
}

func TestSchema_ValidateOK(t *testing.T) {
	values := Values{
		"title":  "hello",
		"lang":   "go",
		"owner":  "sam",
		"public": true,
		"tags":   []string{"a"},
	}
	if errs := demoSchema().Validate(values); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestSchema_ValidateCollectsPerFieldErrors(t *testing.T) {
	values := Values{
		"title": "   ",
		"lang":  "go",
		"owner": "",
		"tags":  []string{},
	}
	errs := demoSchema().Validate(values)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	// Errors come back in schema order.
	wantKeys := []string{"title", "owner", "tags"}
	for i, want := range wantKeys {
		if errs[i].Key != want {
			t.Errorf("error %d: expected key %q, got %q", i, want, errs[i].Key)
		}
	}
}

func TestSchema_ValidateMaxLen(t *testing.T) {
	values := Values{
		"title": "this title is way too long",
		"owner": "sam",
		"tags":  []string{"a"},
	}
	errs := demoSchema().Validate(values)
	if len(errs) != 1 || errs[0].Key != "title" {
		t.Fatalf("expected a single title error, got %v", errs)
	}
}

func TestField_CustomValidate(t *testing.T) {
	s := Schema{
		Fields: []Field{{
			Key:  "owner",
			Kind: KindCombo,
			Validate: func(value any) error {
				if value == "root" {
					return errors.New("owner may not be root")
				}
				return nil
			},
		}},
	}
	if errs := s.Validate(Values{"owner": "root"}); len(errs) != 1 {
		t.Fatalf("expected custom validator to fire, got %v", errs)
	}
	if errs := s.Validate(Values{"owner": "sam"}); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValues_TypedGetters(t *testing.T) {
	v := Values{
		"s":    "text",
		"b":    true,
		"list": []string{"x", "y"},
	}
	if v.String("s") != "text" {
		t.Errorf("String: got %q", v.String("s"))
	}
	if v.String("missing") != "" {
		t.Errorf("String on missing key: got %q", v.String("missing"))
	}
	if !v.Bool("b") {
		t.Error("Bool: expected true")
	}
	if got := v.Strings("list"); len(got) != 2 {
		t.Errorf("Strings: got %v", got)
	}
	if v.Strings("s") != nil {
		t.Error("Strings on wrong type: expected nil")
	}
}

func TestSchema_FieldByKey(t *testing.T) {
	s := demoSchema()
	if f, ok := s.FieldByKey("lang"); !ok || f.Kind != KindSelect {
		t.Errorf("expected select field, got %+v ok=%v", f, ok)
	}
	if _, ok := s.FieldByKey("nope"); ok {
		t.Error("expected lookup miss")
	}
}
