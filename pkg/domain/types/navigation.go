package types

// NavAction is a built-in navigation directive that is not a section reference
type NavAction string

const (
	NavActionNextSection NavAction = "NEXT_SECTION"
	NavActionSubmitForm  NavAction = "SUBMIT_FORM"
)

// IsBuiltinNavAction reports whether the goTo value is a built-in action
// rather than a section title reference.
func IsBuiltinNavAction(goTo string) bool {
	switch NavAction(goTo) {
	case NavActionNextSection, NavActionSubmitForm:
		return true
	default:
		return false
	}
}

// String returns the string representation of the navigation action
func (a NavAction) String() string {
	return string(a)
}
