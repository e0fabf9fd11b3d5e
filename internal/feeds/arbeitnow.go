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

// Arbeitnow paginates through {"data": [...]} pages via a ?page=N query.
type Arbeitnow struct {
	BaseURL string
	Pages   int
	hc      *http.Client
	limiter *HostLimiter
}

func NewArbeitnow(limiter *HostLimiter, pages int) *Arbeitnow {
	if pages <= 0 {
		pages = 2
	}
	return &Arbeitnow{
		BaseURL: "https://api.arbeitnow.com/api/job-board-api",
		Pages:   pages,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (f *Arbeitnow) Name() string { return "arbeitnow" }

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

func (f *Arbeitnow) Fetch(ctx context.Context, skills []string) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	for page := 1; page <= f.Pages; page++ {
		jobs, err := f.fetchPage(ctx, skills, page)
		if err != nil {
			// return what earlier pages produced; the error still surfaces
			return out, err
		}
		out = append(out, jobs...)
	}
	return out, nil
}

func (f *Arbeitnow) fetchPage(ctx context.Context, skills []string, page int) ([]domain.JobPosting, error) {
	url := fmt.Sprintf("%s?page=%d", f.BaseURL, page)
	res, err := doGet(ctx, f.hc, f.limiter, url)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow get page %d: %w", page, err)
	}
	defer res.Body.Close()

	var payload arbeitnowResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("arbeitnow decode page %d: %w", page, err)
	}

	var out []domain.JobPosting
	for _, it := range payload.Data {
		title := strings.TrimSpace(it.Title)
		company := strings.TrimSpace(it.CompanyName)
		if company == "" {
			company = strings.TrimSpace(it.Company)
		}
		location := strings.TrimSpace(it.Location)
		if location == "" {
			location = "Remote"
		}
		jobURL := strings.TrimSpace(it.URL)
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
			Source:   "Arbeitnow",
			Tags:     it.Tags,
			Snippet:  truncateSnippet(desc),
		})
	}
	return out, nil
}
