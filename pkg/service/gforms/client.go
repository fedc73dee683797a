package gforms

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"

	"github.com/formloom/formloom/pkg/domain/types"
	"github.com/formloom/formloom/pkg/utils/logging"
)

// Service is the forms platform client. One instance is bound to one
// caller's credential; token refresh is a precondition, not handled here.
type Service interface {
	// CreateForm creates an empty form container with the given title
	CreateForm(ctx context.Context, title string) (*forms.Form, error)

	// ApplyBatch applies structural or navigation operations in one batch.
	// An empty batch is a no-op.
	ApplyBatch(ctx context.Context, formID types.FormID, reqs []*forms.Request) error

	// GetForm fetches the materialized form, including platform-assigned
	// item IDs and the responder URL
	GetForm(ctx context.Context, formID types.FormID) (*forms.Form, error)
}

type client struct {
	svc *forms.Service
}

// New creates a forms platform client authorized by the given token source.
func New(ctx context.Context, ts oauth2.TokenSource) (Service, error) {
	if ts == nil {
		return nil, goerr.New("google credential is required")
	}

	svc, err := forms.NewService(ctx,
		option.WithTokenSource(ts),
		option.WithScopes(forms.FormsBodyScope),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create forms client")
	}

	return &client{svc: svc}, nil
}

func (c *client) CreateForm(ctx context.Context, title string) (*forms.Form, error) {
	form, err := c.svc.Forms.Create(&forms.Form{
		Info: &forms.Info{
			Title:         title,
			DocumentTitle: title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err, "failed to create form container")
	}

	logging.From(ctx).Debug("created form container", "form_id", form.FormId)
	return form, nil
}

func (c *client) ApplyBatch(ctx context.Context, formID types.FormID, reqs []*forms.Request) error {
	if len(reqs) == 0 {
		return nil
	}

	_, err := c.svc.Forms.BatchUpdate(formID.String(), &forms.BatchUpdateFormRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return classifyError(err, "failed to apply batch update",
			goerr.V("form_id", formID),
			goerr.V("request_count", len(reqs)))
	}

	logging.From(ctx).Debug("applied batch update", "form_id", formID, "request_count", len(reqs))
	return nil
}

func (c *client) GetForm(ctx context.Context, formID types.FormID) (*forms.Form, error) {
	form, err := c.svc.Forms.Get(formID.String()).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err, "failed to fetch form", goerr.V("form_id", formID))
	}
	return form, nil
}
