package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/formloom/formloom/pkg/usecase"
)

func cmdValidate() *cli.Command {
	var schemaPath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Normalize and validate a form schema file without creating anything",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "schema",
				Aliases:     []string{"s"},
				Usage:       "Path to the schema file (.json or .toml)",
				Required:    true,
				Destination: &schemaPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}

			uc := usecase.New()
			result, err := uc.Preview(ctx, schema)
			if err != nil {
				color.Red("✗ %s", err.Error())
				return err
			}

			color.Green("✓ %s", result.Schema.Title)
			conditional := make(map[string]bool, len(result.ConditionalSections))
			for _, title := range result.ConditionalSections {
				conditional[title] = true
			}

			for _, sec := range result.Schema.Sections {
				badge := ""
				if conditional[sec.Title] {
					badge = color.YellowString(" [conditional]")
				}
				fmt.Printf("  %s%s\n", sec.Title, badge)
				for _, f := range sec.Fields {
					nav := ""
					if f.HasNavigation() {
						nav = color.CyanString(" →")
					}
					fmt.Printf("    - %s (%s)%s\n", f.Label, f.Type, nav)
				}
			}

			return nil
		},
	}
}
