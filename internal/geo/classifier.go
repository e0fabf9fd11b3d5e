package geo

import (
	"strings"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/vocab"
)

// foreignMarkers flags locations clearly outside the two focus macro-regions.
// Applied as a second pass so generic fallback entries can't leak into a
// geography-scoped result.
var foreignMarkers = []string{
	" usa", " united states", " us-", "california", "new york",
	"canada", "germany", "sweden", "latam", "latin america",
	"switzerland", " uk", " united kingdom", "australia",
	"netherlands", "france", "spain",
	"asia", "apac", "india", "singapore", "china", "japan", "korea",
	"americas", "north america", "south america",
}

func lc(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsRemote reports whether a posting advertises remote work: "remote" in the
// location, the tag set, or the concatenated descriptive text.
func IsRemote(j domain.JobPosting) bool {
	if strings.Contains(lc(j.Location), "remote") {
		return true
	}
	for _, t := range j.Tags {
		if lc(t) == "remote" {
			return true
		}
	}
	text := strings.Join([]string{lc(j.Title), lc(j.Company), lc(j.Location), lc(j.Snippet)}, " ")
	return strings.Contains(text, "remote")
}

// Targets builds the geography keyword set for a request: the recognized
// macro-region's keywords, plus explicit country names, plus the raw region
// string itself when it didn't map to a known macro-region.
func Targets(region string, countries []string) []string {
	key := vocab.NormalizeRegion(region)
	out := vocab.RegionKeywords(key)
	for _, c := range countries {
		if c := lc(c); c != "" {
			out = append(out, c)
		}
	}
	if region != "" && key == "" {
		out = append(out, lc(region))
	}
	return out
}

func haystack(j domain.JobPosting) string {
	parts := []string{lc(j.Location), lc(j.Title), lc(j.Snippet)}
	for _, t := range j.Tags {
		parts = append(parts, lc(t))
	}
	return strings.Join(parts, " ")
}

// MatchesGeo reports whether any target keyword appears in the posting text.
// An empty target set matches nothing: when the caller asked for a geography
// we could not resolve, strictness beats false positives.
func MatchesGeo(j domain.JobPosting, targets []string) bool {
	if len(targets) == 0 {
		return false
	}
	hay := haystack(j)
	for _, k := range targets {
		if k != "" && strings.Contains(hay, k) {
			return true
		}
	}
	return false
}

// Filter applies geography and work-mode filtering. When the caller supplied
// no geography preference and mode is any, filtering is skipped entirely.
func Filter(jobs []domain.JobPosting, region string, countries []string, mode string) []domain.JobPosting {
	region = strings.TrimSpace(region)
	mode = vocab.NormalizeMode(mode)
	if region == "" && len(countries) == 0 && mode == vocab.ModeAny {
		return jobs
	}

	targets := Targets(region, countries)

	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		remote := IsRemote(j)
		geoOK := MatchesGeo(j, targets)

		switch mode {
		case vocab.ModeRemote:
			if remote && geoOK {
				out = append(out, j)
			}
		case vocab.ModeOnsite:
			if geoOK && !remote {
				out = append(out, j)
			}
		default:
			if geoOK {
				out = append(out, j)
			}
		}
	}
	return out
}

// ExcludeForeign drops postings whose location carries an out-of-region
// marker. Only applied when the request resolved to a focus macro-region.
func ExcludeForeign(jobs []domain.JobPosting, regionKey string) []domain.JobPosting {
	if regionKey != vocab.RegionMENA && regionKey != vocab.RegionSSA {
		return jobs
	}
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		loc := lc(j.Location)
		foreign := false
		for _, tok := range foreignMarkers {
			if strings.Contains(loc, tok) {
				foreign = true
				break
			}
		}
		if !foreign {
			out = append(out, j)
		}
	}
	return out
}
