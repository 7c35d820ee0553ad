package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/uagen/pkg/useragent"
)

func (a *app) versionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "versions",
		Usage:     "Show the version kinds embedded in User-Agent strings, with a sample of each.",
		ArgsUsage: "[kind...]",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed for reproducible samples (env UAGEN_SEED)",
			},
		},
		Action: a.versions,
	}
}

func (a *app) versions(c *cli.Context) error {
	kinds := useragent.VersionKinds()
	if c.Args().Present() {
		kinds = kinds[:0:0]
		for _, name := range c.Args().Slice() {
			kind, err := useragent.ParseVersionKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}

	src := a.source(c)
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPATTERN\tSAMPLE")
	for _, kind := range kinds {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", kind, kind.Pattern(), useragent.FormatVersion(src, kind))
	}
	return tw.Flush()
}
