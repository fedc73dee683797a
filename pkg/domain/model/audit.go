package model

import "github.com/m-mizutani/goerr/v2"

// AuditNavigation cross-checks every section's advisory conditions against
// actual option-level navigation. Each condition names a controlling field;
// at least one option of that field must carry a goTo directive. The
// directive does not have to target the conditioned section: the
// authoritative wiring is computed independently by the resolver, the audit
// only guarantees that dashboard metadata never claims branching the wire
// format does not implement.
func AuditNavigation(s *FormSchema) error {
	for _, sec := range s.Sections {
		for _, cond := range sec.Conditions {
			if hasNavigatingOption(s, cond.FieldLabel) {
				continue
			}
			return goerr.Wrap(ErrNavigationAudit, "no navigating option on controlling field",
				goerr.V(SectionTitleKey, sec.Title),
				goerr.V(FieldLabelKey, cond.FieldLabel),
				goerr.V(ExpectedValueKey, cond.ExpectedValue))
		}
	}
	return nil
}

func hasNavigatingOption(s *FormSchema, fieldLabel string) bool {
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if f.Label != fieldLabel {
				continue
			}
			if f.HasNavigation() {
				return true
			}
		}
	}
	return false
}
