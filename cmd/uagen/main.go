// uagen generates synthetic browser User-Agent strings for test fixtures.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr, nil).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "uagen:", err)
		stop()
		os.Exit(1)
	}
}
