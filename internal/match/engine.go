package match

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/events"
	"resumatch-engine/internal/feeds"
	"resumatch-engine/internal/geo"
	"resumatch-engine/internal/rank"
	"resumatch-engine/internal/vocab"
)

// defaultSkills keeps scoring alive when a caller sends an empty profile.
var defaultSkills = []string{"python"}

// Aggregator is the slice of the feed layer the engine needs.
type Aggregator interface {
	Fetch(ctx context.Context, skills []string) []domain.JobPosting
}

// Engine runs the full match pipeline: aggregate, pad, filter, rank.
// It holds no per-request state; every Match call works on fresh collections.
type Engine struct {
	agg         Aggregator
	hub         *events.Hub
	log         *zap.Logger
	fallbackMin int
}

func NewEngine(agg Aggregator, hub *events.Hub, log *zap.Logger, fallbackMin int) *Engine {
	if fallbackMin <= 0 {
		fallbackMin = feeds.FallbackThreshold
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{agg: agg, hub: hub, log: log, fallbackMin: fallbackMin}
}

// Match never fails on feed trouble; degraded coverage is padded with the
// curated set and every other malformed input degrades to an empty or
// low-scored result.
func (e *Engine) Match(ctx context.Context, p domain.CandidateProfile) domain.MatchResult {
	skills := vocab.CanonicalSkills(p.Skills)
	if len(skills) == 0 {
		skills = defaultSkills
	}
	mode := vocab.NormalizeMode(p.Mode)
	regionKey := vocab.NormalizeRegion(p.Region)

	jobs := e.agg.Fetch(ctx, skills)
	aggregated := len(jobs)

	padded := false
	if len(jobs) < e.fallbackMin {
		jobs = append(jobs, feeds.Curated()...)
		padded = true
	}

	jobs = geo.Filter(jobs, p.Region, p.Countries, mode)
	jobs = geo.ExcludeForeign(jobs, regionKey)

	ranker := rank.Ranker{
		Skills:    skills,
		Roles:     lowerAll(p.Roles),
		RegionKey: regionKey,
		Countries: lowerAll(p.Countries),
		Mode:      mode,
	}
	ranked := ranker.Rank(jobs)

	regionUsed := regionKey
	if regionUsed == "" {
		regionUsed = strings.TrimSpace(p.Region)
	}

	e.log.Info("match complete",
		zap.Strings("skills", skills),
		zap.String("region", regionUsed),
		zap.String("mode", mode),
		zap.Int("aggregated", aggregated),
		zap.Bool("fallback", padded),
		zap.Int("returned", len(ranked)),
	)
	if e.hub != nil {
		e.hub.Publish(events.Make("", "match.completed", events.MatchSummary{
			Skills:     skills,
			Region:     regionUsed,
			Mode:       mode,
			Aggregated: aggregated,
			Returned:   len(ranked),
			Fallback:   padded,
		}))
	}

	return domain.MatchResult{
		Jobs:       ranked,
		SkillsUsed: skills,
		Region:     regionUsed,
		Mode:       mode,
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
