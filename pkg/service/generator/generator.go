package generator

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/utils/logging"
)

//go:embed prompt/system.md
var systemPrompt string

// Service turns natural language into a form schema. The output is
// best-effort schema-shaped JSON; callers normalize and validate it before
// acting on it.
type Service interface {
	// Generate produces a fresh schema from a user prompt
	Generate(ctx context.Context, prompt string) (*model.FormSchema, error)

	// Edit applies a natural-language instruction to an existing schema and
	// returns the complete updated schema
	Edit(ctx context.Context, schema *model.FormSchema, instruction string) (*model.FormSchema, error)
}

type client struct {
	llm gollem.LLMClient
}

// New creates a schema generator backed by the given LLM client
func New(llm gollem.LLMClient) (Service, error) {
	if llm == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &client{llm: llm}, nil
}

func (c *client) Generate(ctx context.Context, prompt string) (*model.FormSchema, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, goerr.New("prompt is required")
	}

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate form schema")
	}

	schema, err := ParseSchema(text)
	if err != nil {
		return nil, goerr.Wrap(err, "generator returned unparsable schema")
	}

	logging.From(ctx).Debug("generated form schema",
		"title", schema.Title,
		"field_count", schema.FieldCount(),
	)
	return schema, nil
}

func (c *client) Edit(ctx context.Context, schema *model.FormSchema, instruction string) (*model.FormSchema, error) {
	if schema == nil {
		return nil, goerr.New("schema is required")
	}
	if strings.TrimSpace(instruction) == "" {
		return nil, goerr.New("instruction is required")
	}

	encoded, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode schema for edit prompt")
	}

	prompt := fmt.Sprintf("Here is the current form schema:\n```json\n%s\n```\n\n"+
		"The user wants to make the following change: %q\n\n"+
		"Apply this change and return the new, complete JSON schema. "+
		"Do not output any extra text, only the JSON object.",
		encoded, instruction)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to edit form schema")
	}

	updated, err := ParseSchema(text)
	if err != nil {
		return nil, goerr.Wrap(err, "generator returned unparsable schema on edit")
	}
	return updated, nil
}

func (c *client) complete(ctx context.Context, prompt string) (string, error) {
	agent := gollem.New(c.llm, gollem.WithSystemPrompt(systemPrompt))

	resp, err := agent.Execute(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to execute LLM")
	}

	text := strings.Join(resp.Texts, "\n")
	if strings.TrimSpace(text) == "" {
		return "", goerr.New("LLM returned empty response")
	}
	return text, nil
}
