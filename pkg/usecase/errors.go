package usecase

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrGeneratorUnavailable = goerr.New("schema generator is not configured")
	ErrNoFormID             = goerr.New("platform returned no form ID")
)

// TagNavigationUnresolved marks failures that leave a created form with its
// structure applied but its conditional navigation unresolved. The caller
// decides whether a form with flat fallback navigation is acceptable.
var TagNavigationUnresolved = goerr.NewTag("navigation_unresolved")

// IsNavigationUnresolved reports whether the form survived with structure
// applied but without resolved navigation.
func IsNavigationUnresolved(err error) bool {
	var ge *goerr.Error
	if errors.As(err, &ge) {
		return ge.HasTag(TagNavigationUnresolved)
	}
	return false
}

// Context keys for error values
const (
	FormIDKey = "form_id"
	StateKey  = "state"
)
