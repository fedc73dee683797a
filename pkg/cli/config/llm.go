package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration for the schema generator's LLM backend
type LLM struct {
	provider       string
	model          string
	claudeAPIKey   string
	geminiProject  string
	geminiLocation string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "LLM provider for schema generation (claude or gemini)",
			Value:       "claude",
			Sources:     cli.EnvVars("FORMLOOM_LLM_PROVIDER"),
			Destination: &l.provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Model name override (provider default when empty)",
			Sources:     cli.EnvVars("FORMLOOM_LLM_MODEL"),
			Destination: &l.model,
		},
		&cli.StringFlag{
			Name:        "claude-api-key",
			Usage:       "Anthropic API key (claude provider)",
			Sources:     cli.EnvVars("FORMLOOM_CLAUDE_API_KEY"),
			Destination: &l.claudeAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini API (gemini provider)",
			Sources:     cli.EnvVars("FORMLOOM_GEMINI_PROJECT"),
			Destination: &l.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini API",
			Value:       "us-central1",
			Sources:     cli.EnvVars("FORMLOOM_GEMINI_LOCATION"),
			Destination: &l.geminiLocation,
		},
	}
}

// Configure creates the LLM client from the configured flags. Returns nil
// when no credentials are configured (generation endpoints are disabled).
func (l *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch l.provider {
	case "claude", "":
		if l.claudeAPIKey == "" {
			return nil, nil
		}
		var opts []claude.Option
		if l.model != "" {
			opts = append(opts, claude.WithModel(l.model))
		}
		client, err := claude.New(ctx, l.claudeAPIKey, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Claude client")
		}
		return client, nil

	case "gemini":
		if l.geminiProject == "" {
			return nil, nil
		}
		var opts []gemini.Option
		if l.model != "" {
			opts = append(opts, gemini.WithModel(l.model))
		}
		client, err := gemini.New(ctx, l.geminiProject, l.geminiLocation, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	default:
		return nil, goerr.New("invalid LLM provider", goerr.V("provider", l.provider))
	}
}

// LogValue implements slog.LogValuer
func (l LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("provider", l.provider),
		slog.String("model", l.model),
		slog.Bool("claude_configured", l.claudeAPIKey != ""),
		slog.String("gemini_project", l.geminiProject),
	)
}
