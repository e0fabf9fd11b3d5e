package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/vocab"
)

const (
	userAgent  = "ResuMatch/1.0 (+engine)"
	maxSnippet = 4000
)

// Fetcher is one job feed: it queries its provider with the candidate's
// canonical skills and returns relevance-filtered postings in the common shape.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, skills []string) ([]domain.JobPosting, error)
}

func doGet(ctx context.Context, hc *http.Client, limiter *HostLimiter, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json,text/html,*/*")

	if limiter != nil {
		if err := limiter.WaitURL(ctx, url); err != nil {
			return nil, err
		}
	}

	res, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		res.Body.Close()
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}
	return res, nil
}

// matchesSkills is the relevance check every adapter applies before returning
// a posting: a canonical skill as a substring of the descriptive text, or as
// an exact member of the tag set. Substring matching is deliberately loose to
// tolerate vocabulary drift across providers.
func matchesSkills(skills []string, texts []string, tags []string) bool {
	kept := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			kept = append(kept, t)
		}
	}
	text := strings.ToLower(strings.Join(kept, " "))

	tagset := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tagset[t] = true
		}
	}

	for _, s := range skills {
		k := vocab.CanonicalSkill(s)
		if k == "" {
			continue
		}
		if strings.Contains(text, k) || tagset[k] {
			return true
		}
	}
	return false
}

func truncateSnippet(s string) string {
	if len(s) > maxSnippet {
		return s[:maxSnippet]
	}
	return s
}

// Dedupe keeps one posting per case-insensitive (title, company, location,
// source) key, preserving first-seen order.
func Dedupe(jobs []domain.JobPosting) []domain.JobPosting {
	type key struct{ title, company, location, source string }
	seen := make(map[key]bool, len(jobs))
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		k := key{
			title:    strings.ToLower(j.Title),
			company:  strings.ToLower(j.Company),
			location: strings.ToLower(j.Location),
			source:   strings.ToLower(j.Source),
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, j)
	}
	return out
}
