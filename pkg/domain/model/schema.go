package model

import (
	"encoding/json"

	"github.com/formloom/formloom/pkg/domain/types"
)

// FormSchema is the root of one generated form description. A schema carries
// either a flat Fields list or a Sections list; Normalize collapses the flat
// representation into a single section.
type FormSchema struct {
	Title string `json:"title" toml:"title"`

	// Description distinguishes "empty" from "absent"; the validator
	// requires the key to be present even when the value is empty.
	Description *string `json:"description,omitempty" toml:"description"`

	Fields   []Field   `json:"fields,omitempty" toml:"fields,omitempty"`
	Sections []Section `json:"sections,omitempty" toml:"sections,omitempty"`
}

// Section is an ordered group of fields. Its title doubles as the
// human-readable navigation target before platform item IDs exist.
type Section struct {
	Title       string      `json:"title" toml:"title"`
	Description string      `json:"description,omitempty" toml:"description"`
	Fields      []Field     `json:"fields" toml:"fields"`
	Conditions  []Condition `json:"conditions,omitempty" toml:"conditions,omitempty"`
}

// Condition is advisory metadata describing why a section is reachable.
// It is displayed on dashboards and cross-checked by the navigation auditor,
// but the authoritative wiring is computed by the resolver.
type Condition struct {
	FieldLabel    string `json:"controllingFieldLabel" toml:"controllingFieldLabel"`
	ExpectedValue string `json:"expectedOptionValue" toml:"expectedOptionValue"`
}

// Field is a single question
type Field struct {
	Label    string          `json:"label" toml:"label"`
	Type     types.FieldType `json:"type" toml:"type"`
	Required bool            `json:"required,omitempty" toml:"required,omitempty"`
	Scale    int             `json:"scale,omitempty" toml:"scale,omitempty"`
	Options  []Option        `json:"options,omitempty" toml:"options,omitempty"`
}

// HasNavigation reports whether any option of the field declares a goTo
// directive (after normalization).
func (f *Field) HasNavigation() bool {
	for _, o := range f.Options {
		if o.GoTo != "" {
			return true
		}
	}
	return false
}

// Option is one choice of a choice field. Upstream generators emit several
// encodings: a bare string, an object with "label" or "text" as the display
// value, and legacy navigation keys "goToAction" / "goToSectionId".
// Normalize collapses everything into Label and GoTo.
type Option struct {
	Label string `json:"label,omitempty" toml:"label,omitempty"`
	Text  string `json:"text,omitempty" toml:"text,omitempty"` // legacy display key

	// GoTo is NEXT_SECTION, SUBMIT_FORM, or the title of a later section
	GoTo string `json:"goTo,omitempty" toml:"goTo,omitempty"`

	GoToAction    string `json:"goToAction,omitempty" toml:"goToAction,omitempty"`       // legacy
	GoToSectionID string `json:"goToSectionId,omitempty" toml:"goToSectionId,omitempty"` // legacy
}

// UnmarshalJSON accepts both the object form and the bare string shorthand
// where the string is the option's display value.
func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Option{Label: s}
		return nil
	}

	type alias Option
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = Option(a)
	return nil
}

// Display returns the canonical display value of the option
func (o Option) Display() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Text
}

// Clone returns a deep copy of the schema. Normalization and resolution are
// pure transformations; callers always receive a new value.
func (s *FormSchema) Clone() *FormSchema {
	out := &FormSchema{Title: s.Title}
	if s.Description != nil {
		desc := *s.Description
		out.Description = &desc
	}
	if s.Fields != nil {
		out.Fields = cloneFields(s.Fields)
	}
	if s.Sections != nil {
		out.Sections = make([]Section, len(s.Sections))
		for i, sec := range s.Sections {
			out.Sections[i] = Section{
				Title:       sec.Title,
				Description: sec.Description,
				Fields:      cloneFields(sec.Fields),
			}
			if sec.Conditions != nil {
				out.Sections[i].Conditions = make([]Condition, len(sec.Conditions))
				copy(out.Sections[i].Conditions, sec.Conditions)
			}
		}
	}
	return out
}

func cloneFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f
		if f.Options != nil {
			out[i].Options = make([]Option, len(f.Options))
			copy(out[i].Options, f.Options)
		}
	}
	return out
}

// FieldCount returns the total number of fields across all sections plus the
// flat list (before normalization, a schema carries only one of the two).
func (s *FormSchema) FieldCount() int {
	n := len(s.Fields)
	for _, sec := range s.Sections {
		n += len(sec.Fields)
	}
	return n
}
