package model

import "strings"

const defaultSectionTitle = "Main Section"

// Normalize canonicalizes a raw schema into the strict internal
// representation: a flat Fields list becomes a single synthetic section, and
// legacy option encodings collapse into the canonical Label / GoTo pair.
// Normalization is best-effort and never fails; structural correctness is
// checked by Validate. The input is not mutated, and normalizing an already
// normalized schema is a no-op.
func Normalize(s *FormSchema) *FormSchema {
	out := s.Clone()

	if len(out.Sections) == 0 && len(out.Fields) > 0 {
		title := strings.TrimSpace(out.Title)
		if title == "" {
			title = defaultSectionTitle
		}
		out.Sections = []Section{{Title: title, Fields: out.Fields}}
		out.Fields = nil
	}

	for si := range out.Sections {
		fields := out.Sections[si].Fields
		for fi := range fields {
			for oi := range fields[fi].Options {
				normalizeOption(&fields[fi].Options[oi])
			}
		}
	}

	return out
}

func normalizeOption(o *Option) {
	if o.Label == "" && o.Text != "" {
		o.Label = o.Text
	}
	o.Text = ""

	if o.GoTo == "" {
		switch {
		case o.GoToAction != "":
			o.GoTo = o.GoToAction
		case o.GoToSectionID != "":
			// Legacy schemas conflated section IDs with section titles;
			// the value is treated as a title.
			o.GoTo = o.GoToSectionID
		}
	}
	o.GoToAction = ""
	o.GoToSectionID = ""
}
