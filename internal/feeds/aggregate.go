package feeds

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"resumatch-engine/internal/domain"
)

const defaultFeedTimeout = 20 * time.Second

// Aggregator fans a match request out to every enabled feed, unions the
// results, and dedupes. Feeds run concurrently, each under its own timeout;
// a failing feed contributes nothing and never cancels its siblings.
type Aggregator struct {
	fetchers []Fetcher
	timeout  time.Duration
	log      *zap.Logger
}

func NewAggregator(log *zap.Logger, timeout time.Duration, fetchers ...Fetcher) *Aggregator {
	if timeout <= 0 {
		timeout = defaultFeedTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{fetchers: fetchers, timeout: timeout, log: log}
}

func (a *Aggregator) Fetch(ctx context.Context, skills []string) []domain.JobPosting {
	var g errgroup.Group
	results := make(chan []domain.JobPosting, len(a.fetchers))

	for _, f := range a.fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			jobs, err := f.Fetch(fctx, skills)
			if err != nil {
				// best-effort: degraded coverage, not an error
				a.log.Warn("feed fetch failed", zap.String("feed", f.Name()), zap.Error(err))
				if len(jobs) == 0 {
					return nil
				}
			}
			a.log.Info("feed fetched", zap.String("feed", f.Name()), zap.Int("postings", len(jobs)))
			results <- jobs
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	var union []domain.JobPosting
	for batch := range results {
		union = append(union, batch...)
	}

	deduped := Dedupe(union)
	a.log.Info("aggregation complete",
		zap.Int("fetched", len(union)),
		zap.Int("deduped", len(deduped)),
	)
	return deduped
}
