package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/capsy-labs/capsy-companion/internal/app"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{})

	opt, err := selectMode(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	application := fx.New(
		fx.Logger(log),
		opt,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
	case <-application.Done():
	}

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}

func selectMode(args []string) (fx.Option, error) {
	if len(args) == 0 {
		return app.Editor(""), nil
	}

	switch args[0] {
	case "edit":
		if len(args) < 2 {
			return nil, fmt.Errorf("usage: capsy-companion edit <post-id>")
		}
		return app.Editor(args[1]), nil
	case "notify":
		return app.Notifier(), nil
	case "search":
		if len(args) < 2 {
			return nil, fmt.Errorf("usage: capsy-companion search <keyword>")
		}
		return app.Search(args[1]), nil
	case "passwd":
		return app.Passwd(), nil
	default:
		return nil, fmt.Errorf("unknown command %q (expected edit, notify, search or passwd)", args[0])
	}
}
