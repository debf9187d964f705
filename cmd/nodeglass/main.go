package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/marden/nodeglass/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	confPath := flag.String("conf", "", "path to bitcoin.conf (optional, defaults to last opened)")
	pollSeconds := flag.Int("poll", 0, "health check interval in seconds (optional, defaults to 2s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfPath: *confPath}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "nodeglass: %v\n", err)
		return 1
	}
	return 0
}
