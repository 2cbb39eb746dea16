// Package main starts the portfolio web server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tidepool.dev/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		stop()
		os.Exit(1)
	}
}
