// Command wordfetch looks up dictionary definitions for a configured list of
// words and prints them to stdout.
//
// Words are processed strictly in order, one request per word, with a fixed
// pause between requests to stay inside the Wordnik API quota. A failed
// lookup is reported on stdout and the remaining words are still processed.
//
// Configuration comes from a YAML file (-config flag, CONFIG_PATH env, or
// ./config.yaml) with environment overrides; see internal/config. Logs go to
// stderr, the definition report to stdout.
//
// Exit codes: 0 = batch completed (individual lookups may still have failed),
// 1 = configuration error or interrupted run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordfetch/internal/app"
	"github.com/heartmarshall/wordfetch/internal/batch"
	"github.com/heartmarshall/wordfetch/internal/config"
	"github.com/heartmarshall/wordfetch/internal/provider/wordnik"
	"github.com/heartmarshall/wordfetch/pkg/ctxutil"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordfetch:", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)

	logger.Info("starting wordfetch",
		slog.String("version", app.BuildVersion()),
		slog.String("run_id", runID.String()),
		slog.Int("words", len(cfg.Fetch.Words)),
		slog.Duration("request_delay", cfg.Fetch.RequestDelay),
	)

	prov := wordnik.NewProvider(cfg.Wordnik, logger)
	pacer := batch.NewIntervalPacer(cfg.Fetch.RequestDelay)
	runner := batch.NewRunner(logger, prov, pacer, os.Stdout)

	if _, err := runner.Run(ctx, cfg.Fetch.Words); err != nil {
		logger.Error("batch aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
