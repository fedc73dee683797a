package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/formloom/formloom/pkg/cli/config"
	"github.com/formloom/formloom/pkg/usecase"
	"github.com/formloom/formloom/pkg/utils/errutil"
)

func cmdCreate() *cli.Command {
	var schemaPath string
	var googleCfg config.Google

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "schema",
			Aliases:     []string{"s"},
			Usage:       "Path to the schema file (.json or .toml)",
			Required:    true,
			Destination: &schemaPath,
		},
	}
	flags = append(flags, googleCfg.Flags()...)

	return &cli.Command{
		Name:    "create",
		Aliases: []string{"c"},
		Usage:   "Create a live Google Form from a schema file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}

			ts, err := googleCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "google credential is required to create a form")
			}

			uc := usecase.New()
			created, err := uc.CreateForm(ctx, schema, ts)
			if err != nil {
				if usecase.IsNavigationUnresolved(err) {
					color.Yellow("form was created but its conditional navigation could not be applied")
				}
				return errutil.Handle(ctx, err, "failed to create form")
			}

			color.Green("✓ form created")
			color.White("  form ID:       %s", created.FormID)
			color.White("  responder URL: %s", created.ResponderURI)
			return nil
		},
	}
}
