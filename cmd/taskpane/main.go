package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/taskpane/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/taskpane/config.toml)")
	locale := flag.String("locale", "", "display locale such as de-DE (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Locale: *locale}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "taskpane: %v\n", err)
		return 1
	}
	return 0
}
