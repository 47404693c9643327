// Package form defines the declarative schema the demo form is built from:
// ordered field descriptors, a value bag keyed by field, and validation that
// reports per-field errors for the UI to render inline.
package form

import (
	"fmt"
	"strings"
)

// Kind identifies which widget renders a field.
type Kind int

const (
	KindText Kind = iota
	KindSelect
	KindCombo
	KindSwitch
	KindTags
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSelect:
		return "select"
	case KindCombo:
		return "combo"
	case KindSwitch:
		return "switch"
	case KindTags:
		return "tags"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field describes one form field.
type Field struct {
	Key         string
	Label       string
	Kind        Kind
	Options     []string // Select and Combo choices
	Placeholder string
	Default     any

	Required bool
	MaxLen   int // Max rune length for text values; 0 = unlimited

	// Validate, when set, runs after the built-in checks pass.
	Validate func(value any) error
}

// Schema is an ordered set of fields plus form-level metadata.
type Schema struct {
	Title  string
	Fields []Field
}

// FieldByKey returns the field with the given key.
func (s Schema) FieldByKey(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Values holds the current form state keyed by field key. Text, select and
// combo fields store string; switch stores bool; tags stores []string.
type Values map[string]any

// String returns the string value for key, or "".
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Bool returns the bool value for key, or false.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Strings returns the string-slice value for key, or nil.
func (v Values) Strings(key string) []string {
	s, _ := v[key].([]string)
	return s
}

// FieldError is a validation failure attributed to one field.
type FieldError struct {
	Key     string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// Validate checks values against the schema and returns one error per
// failing field, in schema order. An empty result means the form submits.
func (s Schema) Validate(values Values) []FieldError {
	var errs []FieldError
	for _, f := range s.Fields {
		if msg := f.validate(values[f.Key]); msg != "" {
			errs = append(errs, FieldError{Key: f.Key, Message: msg})
		}
	}
	return errs
}

func (f Field) validate(value any) string {
	switch f.Kind {
	case KindSwitch:
		// A switch always has a valid position.

	case KindTags:
		tags, _ := value.([]string)
		if f.Required && len(tags) == 0 {
			return "at least one tag is required"
		}

	default:
		text, _ := value.(string)
		trimmed := strings.TrimSpace(text)
		if f.Required && trimmed == "" {
			return "required"
		}
		if f.MaxLen > 0 && len([]rune(trimmed)) > f.MaxLen {
			return fmt.Sprintf("must be at most %d characters", f.MaxLen)
		}
	}

	if f.Validate != nil {
		if err := f.Validate(value); err != nil {
			return err.Error()
		}
	}
	return ""
}
