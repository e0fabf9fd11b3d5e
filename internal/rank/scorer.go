package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/geo"
	"resumatch-engine/internal/vocab"
)

// Score weights. Skill overlap dominates; the bonuses nudge postings that
// literally mention a skill, role, or preferred geography.
const (
	weightJaccard   = 0.56
	bonusTitleSkill = 0.18
	bonusRole       = 0.18
	bonusRegion     = 0.14
	bonusMode       = 0.12
)

const strongCoverage = 60 // percent at which the summary switches phrasing

// MaxResults caps the returned page after the full sort.
const MaxResults = 40

const fairnessNote = "Matching ignores name, gender, photo, and age - only skills, roles, and experience are used."

// Ranker scores postings against one candidate request. All fields are
// expected pre-normalized: canonical skills, lowercase roles and countries,
// a macro-region key (or empty), and a normalized mode.
type Ranker struct {
	Skills    []string
	Roles     []string
	RegionKey string
	Countries []string
	Mode      string
}

// Rank annotates every posting with a score, geo priority, and explanation,
// then sorts geography-first (priority ascending, score descending) and
// truncates to MaxResults.
func (r Ranker) Rank(jobs []domain.JobPosting) []domain.RankedPosting {
	skillSet := toSet(r.Skills)
	regionKeywords := vocab.RegionKeywords(r.RegionKey)

	ranked := make([]domain.RankedPosting, 0, len(jobs))
	for _, j := range jobs {
		ranked = append(ranked, r.scoreOne(j, skillSet, regionKeywords))
	}

	sort.SliceStable(ranked, func(i, k int) bool {
		if ranked[i].GeoPriority != ranked[k].GeoPriority {
			return ranked[i].GeoPriority < ranked[k].GeoPriority
		}
		return ranked[i].Score > ranked[k].Score
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	return ranked
}

func (r Ranker) scoreOne(j domain.JobPosting, skillSet map[string]bool, regionKeywords []string) domain.RankedPosting {
	titleLow := strings.ToLower(j.Title)

	tags := make([]string, 0, len(j.Tags))
	for _, t := range j.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		tags = vocab.TitleTokens(j.Title)
	}
	tagSet := toSet(tags)

	remote := geo.IsRemote(j)

	hay := strings.Join([]string{
		strings.ToLower(j.Location),
		strings.ToLower(j.Snippet),
		titleLow,
		strings.Join(tags, " "),
	}, " ")

	regionHit := containsAny(hay, regionKeywords)
	countryHit := containsAny(hay, r.Countries)

	geoPriority := 2
	if countryHit {
		geoPriority = 0
	} else if regionHit {
		geoPriority = 1
	}

	score := weightJaccard * jaccard(skillSet, tagSet)
	if anyInTitle(titleLow, r.Skills) {
		score += bonusTitleSkill
	}
	if anyInTitle(titleLow, r.Roles) {
		score += bonusRole
	}
	if regionHit {
		score += bonusRegion
	}
	if (r.Mode == vocab.ModeRemote && remote) || (r.Mode == vocab.ModeOnsite && !remote) {
		score += bonusMode
	}
	score = math.Round(math.Min(1.0, score)*100) / 100

	return domain.RankedPosting{
		JobPosting:   j,
		Score:        score,
		Explanation:  buildExplanation(skillSet, tagSet, r, remote, regionHit),
		Remote:       remote,
		RegionMatch:  regionHit,
		CountryMatch: countryHit,
		GeoPriority:  geoPriority,
	}
}

func buildExplanation(skillSet, tagSet map[string]bool, r Ranker, remote, regionHit bool) domain.Explanation {
	var matched, missing []string
	for t := range tagSet {
		if skillSet[t] {
			matched = append(matched, t)
		} else {
			missing = append(missing, t)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	coverage := 0
	if len(tagSet) > 0 {
		coverage = int(math.Round(float64(len(matched)) / float64(len(tagSet)) * 100))
	}

	var summary string
	if coverage >= strongCoverage {
		summary = fmt.Sprintf("Strong match: your %s experience fits %d%% of required skills.",
			strings.Join(capList(matched, 4), ", "), coverage)
	} else {
		summary = fmt.Sprintf("Partial match: about %d%% of listed skills align.", coverage)
	}

	var notes []string
	if len(missing) > 0 {
		notes = append(notes, fmt.Sprintf("Gap: needs %s which you don't mention.",
			strings.Join(capList(missing, 4), ", ")))
	}
	if r.Mode == vocab.ModeRemote && remote {
		notes = append(notes, "Remote-friendly role matches your preference.")
	}
	if r.Mode == vocab.ModeOnsite && !remote {
		notes = append(notes, "On-site role matches your preference.")
	}
	if r.RegionKey != "" && regionHit {
		notes = append(notes, fmt.Sprintf("Location matches %s preference.", r.RegionKey))
	}

	return domain.Explanation{
		Summary:  summary,
		Matched:  capList(matched, 8),
		Gaps:     capList(missing, 8),
		Coverage: coverage,
		Fairness: fairnessNote,
		Notes:    notes,
	}
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if b[k] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func toSet(in []string) map[string]bool {
	m := make(map[string]bool, len(in))
	for _, s := range in {
		if s != "" {
			m[s] = true
		}
	}
	return m
}

func containsAny(hay string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(hay, n) {
			return true
		}
	}
	return false
}

func anyInTitle(titleLow string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(titleLow, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func capList(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}
