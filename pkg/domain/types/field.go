package types

// FieldType represents the input type of a form field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTel      FieldType = "tel"
	FieldTypeDate     FieldType = "date"
	FieldTypeTime     FieldType = "time"
	FieldTypeURL      FieldType = "url"
	FieldTypeRating   FieldType = "rating"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeSelect   FieldType = "select"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextarea,
		FieldTypeEmail,
		FieldTypeNumber,
		FieldTypeTel,
		FieldTypeDate,
		FieldTypeTime,
		FieldTypeURL,
		FieldTypeRating,
		FieldTypeCheckbox,
		FieldTypeRadio,
		FieldTypeSelect,
	}
}

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText,
		FieldTypeTextarea,
		FieldTypeEmail,
		FieldTypeNumber,
		FieldTypeTel,
		FieldTypeDate,
		FieldTypeTime,
		FieldTypeURL,
		FieldTypeRating,
		FieldTypeCheckbox,
		FieldTypeRadio,
		FieldTypeSelect:
		return true
	default:
		return false
	}
}

// IsChoice returns true for field types rendered as a set of options
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldTypeCheckbox, FieldTypeRadio, FieldTypeSelect:
		return true
	default:
		return false
	}
}

// AllowsNavigation returns true for field types whose options may carry a
// navigation directive. The forms platform only supports option-level
// navigation on single-choice questions.
func (t FieldType) AllowsNavigation() bool {
	switch t {
	case FieldTypeRadio, FieldTypeSelect:
		return true
	default:
		return false
	}
}

// String returns the string representation of the field type
func (t FieldType) String() string {
	return string(t)
}
