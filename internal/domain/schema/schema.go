// Package schema declares the editable collections as ordered field descriptors.
//
// A field's Kind is a closed set; every consumer (decoding submitted forms, rendering
// table cells, resolving select options) switches over all of it.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
)

type Kind int

const (
	KindText Kind = iota
	KindTextArea
	KindEmail
	KindPhone
	KindNumber
	KindDate
	KindSelect
	KindReference
	KindPhotos
)

var kindNames = [...]string{"text", "textarea", "email", "tel", "number", "date", "select", "reference", "photos"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LabelStyle selects how a referenced record is shown in options and table cells.
type LabelStyle int

const (
	LabelName LabelStyle = iota
	LabelRentalParties
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionSource is either a static list (KindSelect) or a collection reference
// (KindReference) optionally narrowed by filters.
type OptionSource struct {
	Static     []Option
	Collection string
	Where      []entities.Filter
	Label      LabelStyle
}

type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Required    bool
	Default     string
	Placeholder string
	Rows        int
	Money       bool
	Options     OptionSource
}

// Derivation copies fields from a referenced record into the submitted one.
type Derivation struct {
	From       string
	Collection string
	Copy       []string
}

type Schema struct {
	Collection string
	// Singular is the suffix of the audit action tag, e.g. CREATE_PAYMENT.
	Singular string
	// Title is the page title, used as the audit section.
	Title  string
	Fields []Field
	Derive []Derivation
	// AttachmentPrefix is the object storage prefix of KindPhotos uploads.
	AttachmentPrefix string
	// CreateOverrides are forced on every newly created record.
	CreateOverrides entities.Document
}

func (s Schema) Action(op string) string {
	return op + "_" + s.Singular
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) PhotoField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Kind == KindPhotos {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) References() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Kind == KindReference {
			out = append(out, f)
		}
	}
	return out
}

var ErrValidation = errors.New("validation failed")

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Reason+")")
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Decode builds a new document from submitted form values. Only presence and
// per-kind format are checked; unknown keys are dropped and defaults fill missing
// values.
func (s Schema) Decode(input map[string]any) (entities.Document, error) {
	return s.decode(input, true)
}

// DecodePatch is Decode for edits of a stored record: a missing field that has a
// default is left out so the stored value survives.
func (s Schema) DecodePatch(input map[string]any) (entities.Document, error) {
	return s.decode(input, false)
}

func (s Schema) decode(input map[string]any, fill bool) (entities.Document, error) {
	out := entities.Document{}
	var errs []FieldError
	for _, f := range s.Fields {
		raw, present := input[f.Name]
		if !present || isBlank(raw) {
			switch {
			case f.Default != "":
				if fill {
					out[f.Name] = f.Default
				}
			case f.Required:
				errs = append(errs, FieldError{Field: f.Name, Reason: "required"})
			}
			continue
		}
		v, err := f.decode(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: f.Name, Reason: err.Error()})
			continue
		}
		if v != nil {
			out[f.Name] = v
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	return out, nil
}

func (f Field) decode(raw any) (any, error) {
	switch f.Kind {
	case KindText, KindPhone:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("not text")
		}
		return strings.TrimSpace(s), nil
	case KindTextArea:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("not text")
		}
		return s, nil
	case KindEmail:
		s, ok := raw.(string)
		if !ok || !strings.Contains(s, "@") {
			return nil, errors.New("not an email")
		}
		return strings.TrimSpace(s), nil
	case KindNumber:
		n, ok := entities.ToFloat(raw)
		if !ok {
			return nil, errors.New("not a number")
		}
		return n, nil
	case KindDate:
		s, ok := raw.(string)
		if !ok || !dates.Valid(s) {
			return nil, errors.New("not a YYYY-MM-DD date")
		}
		return strings.TrimSpace(s), nil
	case KindSelect:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("not text")
		}
		if len(f.Options.Static) > 0 && !hasOption(f.Options.Static, s) {
			return nil, errors.New("not an allowed option")
		}
		return s, nil
	case KindReference:
		s, ok := raw.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, errors.New("not a record id")
		}
		return strings.TrimSpace(s), nil
	case KindPhotos:
		// URLs are appended by the server after upload, never taken from the form.
		return nil, nil
	}
	return nil, fmt.Errorf("unhandled field kind %s", f.Kind)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func staticOptions(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}
