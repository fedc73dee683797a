package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/domain/types"
	"github.com/formloom/formloom/pkg/service/gforms"
	"github.com/formloom/formloom/pkg/utils/logging"
)

// CreateState tracks the orchestration of one form creation. Aborted is
// reachable from any non-terminal state.
type CreateState string

const (
	StateCreated           CreateState = "created"
	StateStructureApplied  CreateState = "structure_applied"
	StateNavigationApplied CreateState = "navigation_applied"
	StateFinalized         CreateState = "finalized"
	StateAborted           CreateState = "aborted"
)

// CreatedForm is the final descriptor of a successfully created form
type CreatedForm struct {
	FormID       types.FormID `json:"formId"`
	ResponderURI string       `json:"responderUri"`
}

// CreateForm runs the full pipeline: normalize, validate and audit locally,
// create the empty container, apply the structural batch, resolve and apply
// conditional navigation, then fetch the final descriptor.
//
// Local failures never reach the network. Each external call blocks the
// pipeline because later stages consume identifiers the platform assigns in
// the prior call; there is no retry of partial batches. A failure after the
// structural batch is tagged with TagNavigationUnresolved and carries the
// form ID, since the container survives with flat fallback navigation.
func (uc *UseCases) CreateForm(ctx context.Context, schema *model.FormSchema, ts oauth2.TokenSource) (*CreatedForm, error) {
	if schema == nil {
		return nil, goerr.Wrap(model.ErrSchemaValidation, "schema is required")
	}

	logger := logging.From(ctx).With("run_id", uuid.NewString())
	ctx = logging.With(ctx, logger)

	normalized := model.Normalize(schema)
	if err := model.Validate(normalized); err != nil {
		return nil, err
	}
	if err := model.AuditNavigation(normalized); err != nil {
		return nil, err
	}

	platform, err := uc.newPlatform(ctx, ts)
	if err != nil {
		return nil, err
	}

	created, err := platform.CreateForm(ctx, normalized.Title)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create form container",
			goerr.V(StateKey, StateAborted))
	}
	if created.FormId == "" {
		return nil, goerr.Wrap(ErrNoFormID, "form creation succeeded without an ID",
			goerr.V(StateKey, StateAborted))
	}
	formID := types.FormID(created.FormId)
	state := StateCreated
	logger = logger.With("form_id", formID)

	compiled := gforms.Compile(normalized)
	if err := platform.ApplyBatch(ctx, formID, compiled.Requests); err != nil {
		return nil, goerr.Wrap(err, "failed to apply structural batch",
			goerr.V(FormIDKey, formID),
			goerr.V(StateKey, state))
	}
	state = StateStructureApplied
	logger.Debug("structural batch applied", "operation_count", len(compiled.Requests))

	materialized, err := platform.GetForm(ctx, formID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch materialized items",
			goerr.T(TagNavigationUnresolved),
			goerr.V(FormIDKey, formID),
			goerr.V(StateKey, state))
	}

	navigation := gforms.Resolve(normalized, materialized.Items)
	if err := platform.ApplyBatch(ctx, formID, navigation); err != nil {
		return nil, goerr.Wrap(err, "structure applied but navigation batch failed",
			goerr.T(TagNavigationUnresolved),
			goerr.V(FormIDKey, formID),
			goerr.V(StateKey, state))
	}
	state = StateNavigationApplied
	logger.Debug("navigation batch applied", "operation_count", len(navigation))

	final, err := platform.GetForm(ctx, formID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch finalized form",
			goerr.V(FormIDKey, formID),
			goerr.V(StateKey, state))
	}
	state = StateFinalized

	logger.Info("form created",
		"state", state,
		"responder_uri", final.ResponderUri,
	)

	return &CreatedForm{
		FormID:       formID,
		ResponderURI: final.ResponderUri,
	}, nil
}
