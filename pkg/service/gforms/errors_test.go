package gforms

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "403 maps to permission denied",
			err:  &googleapi.Error{Code: http.StatusForbidden, Message: "insufficient scope"},
			want: ErrPermissionDenied,
		},
		{
			name: "401 maps to expired credential",
			err:  &googleapi.Error{Code: http.StatusUnauthorized, Message: "invalid credentials"},
			want: ErrCredentialExpired,
		},
		{
			name: "500 maps to generic platform failure",
			err:  &googleapi.Error{Code: http.StatusInternalServerError, Message: "backend error"},
			want: ErrPlatform,
		},
		{
			name: "oauth retrieve error maps to expired credential",
			err: &oauth2.RetrieveError{
				Response: &http.Response{StatusCode: http.StatusBadRequest},
			},
			want: ErrCredentialExpired,
		},
		{
			name: "invalid_grant in message maps to expired credential",
			err:  errors.New(`oauth2: "invalid_grant" token expired`),
			want: ErrCredentialExpired,
		},
		{
			name: "anything else maps to generic platform failure",
			err:  errors.New("connection reset by peer"),
			want: ErrPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err, "batch update failed")
			gt.Error(t, got)
			gt.Bool(t, errors.Is(got, tt.want)).True()
		})
	}
}

func TestClassifyError_KeepsPlatformDetails(t *testing.T) {
	src := &googleapi.Error{Code: http.StatusForbidden, Message: "PERMISSION_DENIED"}
	got := classifyError(src, "create form failed")

	gt.String(t, got.Error()).Contains("create form failed")
	gt.Bool(t, errors.Is(got, ErrPermissionDenied)).True()
}
