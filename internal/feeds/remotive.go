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

// Remotive wraps its postings in a {"jobs": [...]} envelope.
type Remotive struct {
	BaseURL string
	hc      *http.Client
	limiter *HostLimiter
}

func NewRemotive(limiter *HostLimiter) *Remotive {
	return &Remotive{
		BaseURL: "https://remotive.com/api/remote-jobs",
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (f *Remotive) Name() string { return "remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name"`
	Location       string   `json:"candidate_required_location"`
	URL            string   `json:"url"`
	JobType        string   `json:"job_type"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
	JobDescription string   `json:"job_description"`
}

func (f *Remotive) Fetch(ctx context.Context, skills []string) ([]domain.JobPosting, error) {
	res, err := doGet(ctx, f.hc, f.limiter, f.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("remotive get: %w", err)
	}
	defer res.Body.Close()

	var payload remotiveResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("remotive decode: %w", err)
	}

	var out []domain.JobPosting
	for _, it := range payload.Jobs {
		title := strings.TrimSpace(it.Title)
		company := strings.TrimSpace(it.CompanyName)
		location := strings.TrimSpace(it.Location)
		if location == "" {
			location = "Remote"
		}
		jobURL := strings.TrimSpace(it.URL)
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			desc = strings.TrimSpace(it.JobDescription)
		}

		tags := make([]string, 0, len(it.Tags)+2)
		for _, t := range append([]string{it.JobType, it.Category}, it.Tags...) {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}

		if title == "" || company == "" || jobURL == "" {
			continue
		}
		if !matchesSkills(skills, []string{title, company, location, desc}, tags) {
			continue
		}

		out = append(out, domain.JobPosting{
			Title:    title,
			Company:  company,
			Location: location,
			URL:      jobURL,
			Source:   "Remotive",
			Tags:     tags,
			Snippet:  truncateSnippet(desc),
		})
	}
	return out, nil
}
