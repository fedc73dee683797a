package gforms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// External failures, classified per response status. Raw transport errors
// never leave this package.
var (
	// ErrPermissionDenied: the caller's credential lacks the required scope.
	// Re-authorization must happen out of band.
	ErrPermissionDenied = goerr.New("forms platform denied permission")

	// ErrCredentialExpired: the credential is expired or invalid. The caller
	// must refresh it and resubmit; this service never refreshes credentials.
	ErrCredentialExpired = goerr.New("google credential is expired or invalid")

	// ErrPlatform: any other platform failure (quota, 5xx, rejected schema).
	// The whole compilation may be retried; each attempt creates a fresh
	// container.
	ErrPlatform = goerr.New("forms platform request failed")
)

const (
	PlatformStatusKey  = "platform_status"
	PlatformMessageKey = "platform_message"
)

func classifyError(err error, msg string, values ...goerr.Option) error {
	kind := ErrPlatform

	var gerr *googleapi.Error
	var rerr *oauth2.RetrieveError
	switch {
	case errors.As(err, &gerr):
		switch gerr.Code {
		case http.StatusForbidden:
			kind = ErrPermissionDenied
		case http.StatusUnauthorized:
			kind = ErrCredentialExpired
		}
		values = append(values,
			goerr.V(PlatformStatusKey, gerr.Code),
			goerr.V(PlatformMessageKey, gerr.Message))
	case errors.As(err, &rerr), strings.Contains(err.Error(), "invalid_grant"):
		kind = ErrCredentialExpired
	}

	values = append(values, goerr.V("cause", err.Error()))
	return goerr.Wrap(kind, msg, values...)
}
