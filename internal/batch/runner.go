package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/wordfetch/internal/provider"
	"github.com/heartmarshall/wordfetch/pkg/ctxutil"
)

// Fetcher retrieves the definition records for a single word.
type Fetcher interface {
	FetchDefinitions(ctx context.Context, word string) ([]provider.Definition, error)
}

// WordResult is the outcome of processing a single word. Exactly one of
// Definitions and Err is meaningful; an empty Definitions slice with a nil
// Err means the word exists but has no definitions.
type WordResult struct {
	Word        string
	Definitions []provider.Definition
	Err         error
}

// Summary aggregates the outcomes of a batch run.
type Summary struct {
	Total  int
	Found  int
	Empty  int
	Failed int
}

// Runner processes a word list strictly in order, one request per word,
// pacing requests through its Pacer and writing the human-readable report
// to out. Per-word failures are reported and counted, never fatal.
type Runner struct {
	log     *slog.Logger
	fetcher Fetcher
	pacer   Pacer
	out     io.Writer
}

func NewRunner(logger *slog.Logger, fetcher Fetcher, pacer Pacer, out io.Writer) *Runner {
	return &Runner{
		log:     logger.With("component", "batch"),
		fetcher: fetcher,
		pacer:   pacer,
		out:     out,
	}
}

// Run fetches definitions for every word in order. The only batch-level
// error is context cancellation (surfaced through the pacer); everything
// else lands in the per-word results and the Summary.
func (r *Runner) Run(ctx context.Context, words []string) (Summary, error) {
	log := r.log
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", runID.String()))
	}

	sum := Summary{Total: len(words)}

	for _, word := range words {
		if err := r.pacer.Wait(ctx); err != nil {
			return sum, fmt.Errorf("batch: wait before %q: %w", word, err)
		}

		res := r.processWord(ctx, word)
		r.report(res)

		switch {
		case res.Err != nil:
			sum.Failed++
			log.Warn("word lookup failed", slog.String("word", word), slog.String("error", res.Err.Error()))
		case len(res.Definitions) == 0:
			sum.Empty++
			log.Info("no definitions", slog.String("word", word))
		default:
			sum.Found++
			log.Info("definitions fetched", slog.String("word", word), slog.Int("count", len(res.Definitions)))
		}
	}

	log.Info("batch finished",
		slog.Int("total", sum.Total),
		slog.Int("found", sum.Found),
		slog.Int("empty", sum.Empty),
		slog.Int("failed", sum.Failed),
	)

	return sum, nil
}

func (r *Runner) processWord(ctx context.Context, word string) WordResult {
	defs, err := r.fetcher.FetchDefinitions(ctx, word)
	return WordResult{Word: word, Definitions: defs, Err: err}
}
