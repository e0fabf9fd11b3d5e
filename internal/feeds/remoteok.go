package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resumatch-engine/internal/domain"
)

// RemoteOK serves a flat JSON array; the first element is a legal notice,
// not a posting.
type RemoteOK struct {
	BaseURL string
	hc      *http.Client
	limiter *HostLimiter
}

func NewRemoteOK(limiter *HostLimiter) *RemoteOK {
	return &RemoteOK{
		BaseURL: "https://remoteok.com/api",
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (f *RemoteOK) Name() string { return "remoteok" }

type remoteokItem struct {
	Position    string   `json:"position"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	ApplyURL    string   `json:"apply_url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

func (f *RemoteOK) Fetch(ctx context.Context, skills []string) ([]domain.JobPosting, error) {
	res, err := doGet(ctx, f.hc, f.limiter, f.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("remoteok get: %w", err)
	}
	defer res.Body.Close()

	var items []remoteokItem
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("remoteok decode: %w", err)
	}
	if len(items) > 0 {
		items = items[1:]
	}

	var out []domain.JobPosting
	for _, it := range items {
		title := strings.TrimSpace(it.Position)
		if title == "" {
			title = strings.TrimSpace(it.Title)
		}
		company := strings.TrimSpace(it.Company)
		location := strings.TrimSpace(it.Location)
		if location == "" {
			location = "Remote"
		}
		jobURL := strings.TrimSpace(it.URL)
		if jobURL == "" {
			jobURL = strings.TrimSpace(it.ApplyURL)
		}
		desc := strings.TrimSpace(it.Description)

		if title == "" || company == "" || jobURL == "" {
			continue
		}
		if !matchesSkills(skills, []string{title, company, location, desc}, it.Tags) {
			continue
		}

		out = append(out, domain.JobPosting{
			Title:    title,
			Company:  company,
			Location: location,
			URL:      jobURL,
			Source:   "RemoteOK",
			Tags:     it.Tags,
			Snippet:  truncateSnippet(desc),
		})
	}
	return out, nil
}
