package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/vocab"
)

// WeWorkRemotely has no public API; its search results are scraped from HTML.
type WeWorkRemotely struct {
	BaseURL string
	hc      *http.Client
	limiter *HostLimiter
}

func NewWeWorkRemotely(limiter *HostLimiter) *WeWorkRemotely {
	return &WeWorkRemotely{
		BaseURL: "https://weworkremotely.com",
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (f *WeWorkRemotely) Name() string { return "weworkremotely" }

func (f *WeWorkRemotely) Fetch(ctx context.Context, skills []string) ([]domain.JobPosting, error) {
	var terms []string
	for _, s := range skills {
		if c := vocab.CanonicalSkill(s); c != "" {
			terms = append(terms, strings.ReplaceAll(c, " ", "+"))
		}
	}
	if len(terms) == 0 {
		return nil, nil
	}
	searchURL := fmt.Sprintf("%s/remote-jobs/search?term=%s",
		f.BaseURL, url.QueryEscape(strings.Join(terms, "+")))

	res, err := doGet(ctx, f.hc, f.limiter, searchURL)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely get: %w", err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely parse html: %w", err)
	}

	var out []domain.JobPosting
	doc.Find("section.jobs ul li").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a[href]").First()
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "/remote-jobs/") {
			// promo and view-all blocks link elsewhere
			return
		}

		title := cleanText(li.Find("span.title").First().Text())
		if title == "" {
			title, _ = a.Attr("title")
			title = cleanText(title)
		}
		company := cleanText(li.Find("span.company").First().Text())
		location := cleanText(li.Find("span.region").First().Text())
		if location == "" {
			location = "Remote"
		}

		var tags []string
		li.Find(".tag").Each(func(_ int, t *goquery.Selection) {
			if tag := cleanText(t.Text()); tag != "" {
				tags = append(tags, tag)
			}
		})

		var teaserParts []string
		li.Find(".tooltip, .featured").Each(func(_ int, t *goquery.Selection) {
			if txt := cleanText(t.Text()); txt != "" {
				teaserParts = append(teaserParts, txt)
			}
		})
		teaser := strings.Join(teaserParts, " ")

		if title == "" || company == "" {
			return
		}
		if !matchesSkills(skills, []string{title, company, location, teaser}, tags) {
			return
		}

		out = append(out, domain.JobPosting{
			Title:    title,
			Company:  company,
			Location: location,
			URL:      f.BaseURL + href,
			Source:   "WeWorkRemotely",
			Tags:     tags,
			Snippet:  truncateSnippet(teaser),
		})
	})
	return out, nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
