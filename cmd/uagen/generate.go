package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/uagen/pkg/fixture"
	"github.com/dmitrymomot/uagen/pkg/logger"
)

func (a *app) generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Print User-Agent strings.",
		Flags: append(sourceFlags(),
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "number of strings",
			},
			&cli.StringFlag{
				Name:    "browser",
				Aliases: []string{"b"},
				Usage:   "pin the browser family (chrome, firefox, safari, opera, iexplorer)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "text, json or yaml (env UAGEN_FORMAT)",
			},
		),
		Action: a.generate,
	}
}

func (a *app) generate(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", errInvalidFlag, count)
	}

	name := a.cfg.Format
	if c.IsSet("format") {
		name = c.String("format")
	}
	format, err := fixture.ParseFormat(name)
	if err != nil {
		return err
	}

	gen, err := a.generator(c)
	if err != nil {
		return err
	}

	var opts []fixture.BuilderOption
	if b := c.String("browser"); b != "" {
		opts = append(opts, fixture.WithBrowser(b))
	}

	records, err := fixture.NewBuilder(gen, opts...).Batch(count)
	if err != nil {
		return err
	}

	a.log.DebugContext(c.Context, "generated user agents",
		logger.Count(len(records)),
		logger.OutputFormat(string(format)),
	)
	return fixture.Write(a.stdout, format, records)
}
