package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Validate rejects structurally invalid schemas before any external side
// effect. Checks run in a fixed order and short-circuit on the first failure.
// It expects a normalized schema (flat fields already wrapped into sections).
func Validate(s *FormSchema) error {
	if strings.TrimSpace(s.Title) == "" {
		return goerr.Wrap(ErrSchemaValidation, "form title must not be empty")
	}

	if s.Description == nil {
		return goerr.Wrap(ErrSchemaValidation, "form description is required (empty string is allowed, absent is not)")
	}

	if len(s.Sections) == 0 {
		return goerr.Wrap(ErrSchemaValidation, "form must have at least one section")
	}
	seenTitles := make(map[string]bool)
	for si, sec := range s.Sections {
		if strings.TrimSpace(sec.Title) == "" {
			return goerr.Wrap(ErrSchemaValidation, "section title must not be empty",
				goerr.V(SectionIndexKey, si))
		}
		if seenTitles[sec.Title] {
			return goerr.Wrap(ErrSchemaValidation, "section title must be unique within the form",
				goerr.V(SectionTitleKey, sec.Title))
		}
		seenTitles[sec.Title] = true
	}

	for _, sec := range s.Sections {
		if len(sec.Fields) == 0 {
			return goerr.Wrap(ErrSchemaValidation, "section must have at least one field",
				goerr.V(SectionTitleKey, sec.Title))
		}
	}

	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if strings.TrimSpace(f.Label) == "" {
				return goerr.Wrap(ErrSchemaValidation, "field label must not be empty",
					goerr.V(SectionTitleKey, sec.Title))
			}
			if !f.Type.IsValid() {
				return goerr.Wrap(ErrSchemaValidation, "unrecognized field type",
					goerr.V(FieldLabelKey, f.Label),
					goerr.V(FieldTypeKey, f.Type.String()))
			}
		}
	}

	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if !f.Type.IsChoice() {
				continue
			}
			if len(f.Options) < 2 {
				return goerr.Wrap(ErrSchemaValidation, "choice field requires at least 2 options",
					goerr.V(FieldLabelKey, f.Label),
					goerr.V(FieldTypeKey, f.Type.String()))
			}
			seen := make(map[string]bool)
			for _, o := range f.Options {
				value := o.Display()
				if seen[value] {
					return goerr.Wrap(ErrSchemaValidation, "duplicate option value within field",
						goerr.V(FieldLabelKey, f.Label),
						goerr.V(OptionValueKey, value))
				}
				seen[value] = true
			}
		}
	}

	return nil
}
