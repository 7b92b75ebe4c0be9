// Package main is the entry point for the journal command.
// Its sole responsibility is wiring dependencies together and running one command.
// No business logic belongs here.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/travel-journal/internal/cli"
	"github.com/pkordes/travel-journal/internal/config"
	"github.com/pkordes/travel-journal/internal/repo"
)

func main() {
	os.Exit(run())
}

func run() int {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		return cli.ExitError
	}

	// --- Logger -----------------------------------------------------------
	// JSON lines go to stderr so command output on stdout stays clean.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ctrl-C cancels the in-flight query; the open transaction rolls back.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	store, err := repo.Open(ctx, repo.Dialect(cfg.Driver), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open journal store", "driver", cfg.Driver, "error", err)
		return cli.ExitError
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		slog.Error("failed to migrate journal store", "driver", cfg.Driver, "error", err)
		return cli.ExitError
	}
	slog.Debug("journal store ready", "driver", cfg.Driver)

	// --- Command ----------------------------------------------------------
	app := cli.New(cli.NewServices(store), os.Stdout, os.Stderr, logger)
	return app.Run(ctx, os.Args[1:])
}
