package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/vocab"
)

func job(title, location string, tags ...string) domain.JobPosting {
	return domain.JobPosting{
		Title:    title,
		Company:  "Acme",
		Location: location,
		URL:      "https://jobs.example.com/" + title,
		Source:   "Test",
		Tags:     tags,
	}
}

func TestScoreBounds(t *testing.T) {
	r := Ranker{
		Skills:    []string{"python", "react", "docker", "kubernetes"},
		Roles:     []string{"backend"},
		RegionKey: vocab.RegionMENA,
		Countries: []string{"tunisia"},
		Mode:      vocab.ModeRemote,
	}
	jobs := []domain.JobPosting{
		job("Backend Python Engineer", "Remote - Tunisia", "python", "react", "docker", "kubernetes"),
		job("Gardener", "Nowhere"),
		job("Python Developer", "Remote - Middle East", "python"),
	}
	for _, rp := range r.Rank(jobs) {
		assert.GreaterOrEqual(t, rp.Score, 0.0)
		assert.LessOrEqual(t, rp.Score, 1.0)
	}
}

func TestTieBreakGeoPriorityBeforeScore(t *testing.T) {
	r := Ranker{
		Skills:    []string{"python"},
		RegionKey: vocab.RegionMENA,
		Countries: []string{"tunisia"},
		Mode:      vocab.ModeAny,
	}
	jobs := []domain.JobPosting{
		// high raw score, but only a generic region hit
		job("Python Python Python Engineer", "Remote - Middle East", "python"),
		// weaker skill fit, but an exact requested-country hit
		job("Software Engineer", "Tunis, Tunisia", "java"),
	}
	ranked := r.Rank(jobs)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].GeoPriority)
	assert.Equal(t, "Tunis, Tunisia", ranked[0].Location)
	assert.Equal(t, 1, ranked[1].GeoPriority)

	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		ok := prev.GeoPriority < cur.GeoPriority ||
			(prev.GeoPriority == cur.GeoPriority && prev.Score >= cur.Score)
		assert.True(t, ok, "ordering violated at %d", i)
	}
}

func TestRankSortsByScoreWithinPriorityClass(t *testing.T) {
	r := Ranker{Skills: []string{"python", "django"}, Mode: vocab.ModeAny}
	jobs := []domain.JobPosting{
		job("Accountant", "Remote", "excel"),
		job("Python Developer", "Remote", "python", "django"),
		job("Data Analyst", "Remote", "python", "sql"),
	}
	ranked := r.Rank(jobs)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Python Developer", ranked[0].Title)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankCapsResults(t *testing.T) {
	r := Ranker{Skills: []string{"python"}, Mode: vocab.ModeAny}
	var jobs []domain.JobPosting
	for i := 0; i < MaxResults+15; i++ {
		jobs = append(jobs, job(fmt.Sprintf("Python Engineer %d", i), "Remote", "python"))
	}
	assert.Len(t, r.Rank(jobs), MaxResults)
}

func TestTitleTokensUsedWhenTagsMissing(t *testing.T) {
	r := Ranker{Skills: []string{"python"}, Mode: vocab.ModeAny}
	ranked := r.Rank([]domain.JobPosting{job("Senior Python Engineer", "Remote")})
	require.Len(t, ranked, 1)
	assert.Greater(t, ranked[0].Score, 0.0, "tokenized title should still produce skill overlap")
	assert.Contains(t, ranked[0].Explanation.Matched, "python")
}

func TestExplanationCoverageAndPhrasing(t *testing.T) {
	r := Ranker{Skills: []string{"python", "django", "postgresql"}, Mode: vocab.ModeAny}

	strong := r.Rank([]domain.JobPosting{job("Backend", "Remote", "python", "django", "postgresql")})[0]
	assert.Equal(t, 100, strong.Explanation.Coverage)
	assert.Contains(t, strong.Explanation.Summary, "Strong match")
	assert.Empty(t, strong.Explanation.Gaps)

	partial := r.Rank([]domain.JobPosting{job("Backend", "Remote", "python", "rust", "elixir", "haskell")})[0]
	assert.Equal(t, 25, partial.Explanation.Coverage)
	assert.Contains(t, partial.Explanation.Summary, "Partial match")
	assert.Contains(t, partial.Explanation.Gaps, "rust")
	assert.NotEmpty(t, partial.Explanation.Fairness)
}

func TestEmptySkillSetScoresLowButDoesNotPanic(t *testing.T) {
	r := Ranker{Mode: vocab.ModeAny}
	ranked := r.Rank([]domain.JobPosting{job("Python Developer", "Remote", "python")})
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Score)
	assert.Equal(t, 0, ranked[0].Explanation.Coverage)
}
