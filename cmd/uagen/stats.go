package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/uagen/pkg/logger"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

func (a *app) statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Sample the generator and compare observed shares with the tables.",
		Flags: append(sourceFlags(),
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   10000,
				Usage:   "number of samples",
			},
		),
		Action: a.stats,
	}
}

// tally counts labels in first-seen order.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally(labels ...string) *tally {
	t := &tally{counts: make(map[string]int)}
	for _, l := range labels {
		t.add(l, 0)
	}
	return t
}

func (t *tally) add(label string, n int) {
	if _, ok := t.counts[label]; !ok {
		t.order = append(t.order, label)
	}
	t.counts[label] += n
}

func (a *app) stats(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", errInvalidFlag, count)
	}

	gen, err := a.generator(c)
	if err != nil {
		return err
	}

	wantBrowser, wantOS, err := expectedShares(gen.Registry())
	if err != nil {
		return err
	}

	reg := gen.Registry()
	browsers := newTally(reg.BrowserWeights().Labels()...)
	systems := newTally()
	for _, b := range reg.BrowserWeights().Labels() {
		osTable, _ := reg.OSWeights(b)
		for _, label := range osTable.Labels() {
			systems.add(label, 0)
		}
	}

	for range count {
		f := useragent.Detect(gen.Generate())
		browsers.add(f.Browser, 1)
		systems.add(f.OS, 1)
	}

	a.log.DebugContext(c.Context, "sampled generator", logger.Count(count))

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	writeTally(tw, "BROWSER", browsers, wantBrowser, count)
	fmt.Fprintln(tw)
	writeTally(tw, "OS", systems, wantOS, count)
	return tw.Flush()
}

func writeTally(tw *tabwriter.Writer, title string, t *tally, want map[string]float64, total int) {
	fmt.Fprintf(tw, "%s\tCOUNT\tSHARE\tEXPECTED\n", title)
	for _, label := range t.order {
		n := t.counts[label]
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\t%.2f%%\n",
			useragent.DisplayName(label), n,
			100*float64(n)/float64(total), 100*want[label])
	}
}

// expectedShares derives the marginal browser and OS probabilities from
// the registry's tables.
func expectedShares(reg *useragent.Registry) (map[string]float64, map[string]float64, error) {
	browsers := reg.BrowserWeights()
	total := browsers.Total()

	wantBrowser := make(map[string]float64, len(browsers))
	wantOS := make(map[string]float64)
	for _, b := range browsers {
		p := b.Weight / total
		wantBrowser[b.Label] = p

		osTable, err := reg.OSWeights(b.Label)
		if err != nil {
			return nil, nil, err
		}
		osTotal := osTable.Total()
		for _, o := range osTable {
			wantOS[o.Label] += p * o.Weight / osTotal
		}
	}
	return wantBrowser, wantOS, nil
}
