package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/uagen/pkg/api"
	"github.com/dmitrymomot/uagen/pkg/config"
	"github.com/dmitrymomot/uagen/pkg/logger"
	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

var errInvalidFlag = errors.New("invalid flag value")

// app carries state shared by every command. environ replaces the process
// environment when non-nil.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	environ  map[string]string
	envFiles []string

	cfg Config
	log *slog.Logger
}

func newApp(stdout, stderr io.Writer, environ map[string]string) *cli.App {
	a := &app{stdout: stdout, stderr: stderr, environ: environ, log: logger.Nop()}

	return &cli.App{
		Name:      "uagen",
		Usage:     "Generate synthetic browser User-Agent strings.",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (env UAGEN_LOG_LEVEL)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "text or json (env UAGEN_LOG_FORMAT)",
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "read settings from these .env files instead of ./.env (repeatable)",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.generateCommand(),
			a.statsCommand(),
			a.tablesCommand(),
			a.serveCommand(),
			a.versionsCommand(),
		},
	}
}

func (a *app) configOptions(prefix string) []config.Option {
	var opts []config.Option
	if prefix != "" {
		opts = append(opts, config.WithPrefix(prefix))
	}
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	} else if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}
	return opts
}

func (a *app) setup(c *cli.Context) error {
	a.envFiles = c.StringSlice("env-file")
	if err := config.Load(&a.cfg, a.configOptions(envPrefix)...); err != nil {
		return err
	}

	if c.IsSet("log-level") {
		a.cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		a.cfg.LogFormat = c.String("log-format")
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format := logger.Format(a.cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("%w: log format %q", errInvalidFlag, a.cfg.LogFormat)
	}

	a.log = logger.New(
		logger.WithOutput(a.stderr),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithService("uagen"),
		logger.WithContextExtractors(api.RequestIDExtractor()),
	)
	return nil
}

// sourceFlags are accepted by every command that samples.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for reproducible output (env UAGEN_SEED)",
		},
		&cli.StringFlag{
			Name:    "tables",
			Aliases: []string{"t"},
			Usage:   "YAML file overriding the distribution tables (env UAGEN_TABLES_FILE)",
		},
	}
}

func (a *app) registry(c *cli.Context) (*useragent.Registry, error) {
	path := a.cfg.TablesFile
	if c.IsSet("tables") {
		path = c.String("tables")
	}
	if path == "" {
		return useragent.DefaultRegistry(), nil
	}

	reg, err := useragent.LoadRegistryFile(path)
	if err != nil {
		return nil, err
	}
	a.log.DebugContext(c.Context, "distribution tables loaded", slog.String("path", path))
	return reg, nil
}

func (a *app) source(c *cli.Context) random.Source {
	seed := a.cfg.Seed
	if c.IsSet("seed") {
		seed = c.Uint64("seed")
	}
	if seed == 0 {
		return random.NewRandom()
	}
	a.log.DebugContext(c.Context, "seeded source", logger.Seed(seed))
	return random.New(seed)
}

func (a *app) generator(c *cli.Context) (*useragent.Generator, error) {
	reg, err := a.registry(c)
	if err != nil {
		return nil, err
	}
	return useragent.NewGenerator(a.source(c), useragent.WithRegistry(reg)), nil
}
