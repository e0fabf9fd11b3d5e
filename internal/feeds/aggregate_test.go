package feeds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"resumatch-engine/internal/domain"
)

type stubFeed struct {
	name string
	jobs []domain.JobPosting
	err  error
	wait time.Duration
}

func (s stubFeed) Name() string { return s.name }

func (s stubFeed) Fetch(ctx context.Context, _ []string) ([]domain.JobPosting, error) {
	if s.wait > 0 {
		select {
		case <-time.After(s.wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.jobs, s.err
}

func TestAggregatorIsolatesFeedFailure(t *testing.T) {
	ok := stubFeed{name: "ok", jobs: []domain.JobPosting{
		{Title: "A", Company: "Acme", Location: "Remote", Source: "ok", URL: "https://x/1"},
	}}
	broken := stubFeed{name: "broken", err: errors.New("boom")}

	a := NewAggregator(zap.NewNop(), time.Second, ok, broken)
	got := a.Fetch(context.Background(), []string{"python"})
	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}

func TestAggregatorTimesOutSlowFeedWithoutStallingOthers(t *testing.T) {
	fast := stubFeed{name: "fast", jobs: []domain.JobPosting{
		{Title: "Fast", Company: "Acme", Location: "Remote", Source: "fast", URL: "https://x/1"},
	}}
	slow := stubFeed{name: "slow", wait: 5 * time.Second, jobs: []domain.JobPosting{
		{Title: "Slow", Company: "Acme", Location: "Remote", Source: "slow", URL: "https://x/2"},
	}}

	a := NewAggregator(zap.NewNop(), 50*time.Millisecond, fast, slow)

	start := time.Now()
	got := a.Fetch(context.Background(), []string{"python"})
	assert.Less(t, time.Since(start), time.Second)
	assert.Len(t, got, 1)
	assert.Equal(t, "Fast", got[0].Title)
}

func TestAggregatorDedupesAcrossFeeds(t *testing.T) {
	a1 := stubFeed{name: "a1", jobs: []domain.JobPosting{
		{Title: "Backend", Company: "Acme", Location: "Remote", Source: "Feed", URL: "https://x/1"},
	}}
	a2 := stubFeed{name: "a2", jobs: []domain.JobPosting{
		{Title: "backend", Company: "ACME", Location: "remote", Source: "feed", URL: "https://x/2"},
	}}

	a := NewAggregator(zap.NewNop(), time.Second, a1, a2)
	got := a.Fetch(context.Background(), []string{"python"})
	assert.Len(t, got, 1)
}
