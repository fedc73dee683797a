package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/formloom/formloom/pkg/cli/config"
	"github.com/formloom/formloom/pkg/service/generator"
	"github.com/formloom/formloom/pkg/usecase"
	"github.com/formloom/formloom/pkg/utils/logging"
	"github.com/formloom/formloom/pkg/utils/safe"
)

func cmdGenerate() *cli.Command {
	var prompt string
	var output string
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "prompt",
			Aliases:     []string{"p"},
			Usage:       "Natural language description of the form",
			Required:    true,
			Destination: &prompt,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when empty)",
			Destination: &output,
		},
	}
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate a form schema from a natural language prompt",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient == nil {
				return goerr.New("LLM credentials are required for generation")
			}

			gen, err := generator.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to create schema generator")
			}
			uc := usecase.New(usecase.WithGenerator(gen))

			schema, err := uc.Generate(ctx, prompt)
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode schema")
			}
			encoded = append(encoded, '\n')

			if output == "" {
				safe.Write(ctx, os.Stdout, encoded)
				return nil
			}
			if err := os.WriteFile(output, encoded, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write schema file", goerr.V("path", output))
			}

			logging.Default().Info("schema written", "path", output, "title", schema.Title)
			return nil
		},
	}
}
