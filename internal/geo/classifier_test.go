package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumatch-engine/internal/domain"
)

func posting(title, location string, tags ...string) domain.JobPosting {
	return domain.JobPosting{
		Title:    title,
		Company:  "Acme",
		Location: location,
		URL:      "https://jobs.example.com/x",
		Source:   "Test",
		Tags:     tags,
	}
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote(posting("Backend Engineer", "Remote")))
	assert.True(t, IsRemote(posting("Backend Engineer", "Tunis", "remote")))
	assert.True(t, IsRemote(posting("Remote Backend Engineer", "Tunis")))
	assert.False(t, IsRemote(posting("Backend Engineer", "San Francisco, USA")))
}

func TestTargetsUnrecognizedRegionBecomesLiteral(t *testing.T) {
	targets := Targets("Tunisia", nil)
	assert.Equal(t, []string{"tunisia"}, targets)

	targets = Targets("mena", []string{"Kenya"})
	assert.Contains(t, targets, "middle east")
	assert.Contains(t, targets, "kenya")
}

func TestFilterSkipsWhenNoPreference(t *testing.T) {
	jobs := []domain.JobPosting{
		posting("A", "San Francisco, USA"),
		posting("B", "Remote"),
	}
	assert.Equal(t, jobs, Filter(jobs, "", nil, "any"))
}

func TestFilterModeRemote(t *testing.T) {
	jobs := []domain.JobPosting{
		posting("Backend Engineer", "Remote - Tunisia"),
		posting("Backend Engineer", "Tunis, Tunisia"), // onsite
		posting("Backend Engineer", "Remote - Berlin, Germany"),
	}
	got := Filter(jobs, "mena", nil, "remote")
	assert.Len(t, got, 1)
	assert.Equal(t, "Remote - Tunisia", got[0].Location)
	for _, j := range got {
		assert.True(t, IsRemote(j))
	}
}

func TestFilterModeOnsite(t *testing.T) {
	jobs := []domain.JobPosting{
		posting("Backend Engineer", "Remote - Tunisia"),
		posting("Backend Engineer", "Tunis, Tunisia"),
	}
	got := Filter(jobs, "mena", nil, "onsite")
	assert.Len(t, got, 1)
	for _, j := range got {
		assert.False(t, IsRemote(j))
	}
}

func TestFilterStrictOnEmptyTargets(t *testing.T) {
	jobs := []domain.JobPosting{posting("A", "Remote")}
	// countries resolve to nothing usable; explicit preference must reject, not match-all
	got := Filter(jobs, "", []string{"   "}, "any")
	assert.Empty(t, got)
}

func TestExcludeForeign(t *testing.T) {
	jobs := []domain.JobPosting{
		posting("A", "Remote - Tunisia"),
		posting("B", "Remote - USA"),
		posting("C", "Singapore"),
	}
	got := ExcludeForeign(jobs, "mena")
	assert.Len(t, got, 1)
	assert.Equal(t, "Remote - Tunisia", got[0].Location)

	// untouched for non-focus regions
	assert.Equal(t, jobs, ExcludeForeign(jobs, ""))
}
