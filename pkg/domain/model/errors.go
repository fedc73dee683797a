package model

import "github.com/m-mizutani/goerr/v2"

// Local, terminal failures raised before any external call
var (
	ErrSchemaValidation = goerr.New("form schema validation failed")
	ErrNavigationAudit  = goerr.New("section condition is not backed by navigation")
)

// Context keys for error values
const (
	SectionTitleKey  = "section_title"
	SectionIndexKey  = "section_index"
	FieldLabelKey    = "field_label"
	FieldTypeKey     = "field_type"
	OptionValueKey   = "option_value"
	ExpectedValueKey = "expected_value"
)
