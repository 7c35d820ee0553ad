package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/uagen/pkg/useragent"
)

func (a *app) tablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "Print the active distribution tables. The YAML output is a valid --tables file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tables",
				Aliases: []string{"t"},
				Usage:   "YAML file overriding the distribution tables (env UAGEN_TABLES_FILE)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "yaml",
				Usage:   "yaml or json",
			},
		},
		Action: a.tables,
	}
}

func (a *app) tables(c *cli.Context) error {
	reg, err := a.registry(c)
	if err != nil {
		return err
	}

	switch f := c.String("format"); f {
	case "yaml":
		return useragent.WriteRegistryYAML(a.stdout, reg)
	case "json":
		return useragent.WriteRegistryJSON(a.stdout, reg)
	default:
		return fmt.Errorf("%w: format %q", errInvalidFlag, f)
	}
}
