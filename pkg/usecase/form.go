package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formloom/formloom/pkg/domain/model"
)

// Generate produces a schema from a natural-language prompt
func (uc *UseCases) Generate(ctx context.Context, prompt string) (*model.FormSchema, error) {
	if uc.generator == nil {
		return nil, goerr.Wrap(ErrGeneratorUnavailable, "cannot generate form")
	}
	return uc.generator.Generate(ctx, prompt)
}

// Edit applies a natural-language instruction to an existing schema
func (uc *UseCases) Edit(ctx context.Context, schema *model.FormSchema, instruction string) (*model.FormSchema, error) {
	if uc.generator == nil {
		return nil, goerr.Wrap(ErrGeneratorUnavailable, "cannot edit form")
	}
	return uc.generator.Edit(ctx, schema, instruction)
}

// PreviewResult is the side-effect-free view of a schema: its normalized
// form plus the sections that advertise conditional reachability.
type PreviewResult struct {
	Schema              *model.FormSchema `json:"schema"`
	ConditionalSections []string          `json:"conditionalSections,omitempty"`
}

// Preview normalizes, validates and audits a schema without any external
// call. Dashboards use it to show advisory "conditional section" badges
// before the form is actually created.
func (uc *UseCases) Preview(ctx context.Context, schema *model.FormSchema) (*PreviewResult, error) {
	if schema == nil {
		return nil, goerr.Wrap(model.ErrSchemaValidation, "schema is required")
	}

	normalized := model.Normalize(schema)
	if err := model.Validate(normalized); err != nil {
		return nil, err
	}
	if err := model.AuditNavigation(normalized); err != nil {
		return nil, err
	}

	var conditional []string
	for _, sec := range normalized.Sections {
		if len(sec.Conditions) > 0 {
			conditional = append(conditional, sec.Title)
		}
	}

	return &PreviewResult{
		Schema:              normalized,
		ConditionalSections: conditional,
	}, nil
}
