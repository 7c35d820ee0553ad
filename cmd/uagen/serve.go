package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/uagen/pkg/api"
	"github.com/dmitrymomot/uagen/pkg/config"
	"github.com/dmitrymomot/uagen/pkg/httpserver"
	"github.com/dmitrymomot/uagen/pkg/logger"
)

func (a *app) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve User-Agent fixtures over HTTP.",
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (env HTTP_ADDR)",
			},
		),
		Action: a.serve,
	}
}

func (a *app) serve(c *cli.Context) error {
	var cfg httpserver.Config
	if err := config.Load(&cfg, a.configOptions("")...); err != nil {
		return err
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}

	reg, err := a.registry(c)
	if err != nil {
		return err
	}

	log := a.log.With(logger.Component("http"))
	h := api.NewHandler(reg, a.source(c), log)
	srv := httpserver.NewFromConfig(cfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			fmt.Fprintf(a.stdout, "serving on http://%s\n", addr)
		}),
	)

	return srv.Run(c.Context, h.Router())
}
