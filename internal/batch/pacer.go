package batch

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces successive requests apart. Wait blocks until the next request
// may be issued or the context is cancelled.
type Pacer interface {
	Wait(ctx context.Context) error
}

// IntervalPacer releases one request per fixed interval. The first call
// passes immediately; each following call is delayed so that consecutive
// requests are at least the interval apart.
type IntervalPacer struct {
	lim *rate.Limiter
}

// NewIntervalPacer creates a pacer with the given minimum interval
// between requests.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	return &IntervalPacer{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.lim.Wait(ctx)
}

// NopPacer applies no delay. It still honors context cancellation so runs
// paced by it stop at the same points as paced runs.
type NopPacer struct{}

func (NopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
