package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalSkillAliases(t *testing.T) {
	cases := map[string]string{
		"py":       "python",
		"Python3":  "python",
		"PYTHON":   "python",
		"node.js":  "nodejs",
		"Node":     "nodejs",
		"fast-api": "fastapi",
		"Fast API": "fastapi",
		"tf":       "tensorflow",
		"k8s":      "kubernetes",
		"Postgres": "postgresql",
		"react":    "react",
	}
	for in, want := range cases {
		assert.Equal(t, want, CanonicalSkill(in), "input %q", in)
	}
}

func TestCanonicalSkillStripsAccentsAndWhitespace(t *testing.T) {
	assert.Equal(t, "react native", CanonicalSkill("  Réact   Nâtive "))
}

func TestCanonicalSkillIdempotent(t *testing.T) {
	for _, s := range []string{"py", "Node.JS", "scikit learn", "Kafka", "c++"} {
		once := CanonicalSkill(s)
		assert.Equal(t, once, CanonicalSkill(once), "canonical form of %q must be a fixed point", s)
	}
}

func TestCanonicalSkillsDedupes(t *testing.T) {
	got := CanonicalSkills([]string{"py", "Python", "python3", "react", ""})
	assert.Equal(t, []string{"python", "react"}, got)
}

func TestTitleTokens(t *testing.T) {
	got := TitleTokens("Senior Node.js / React Engineer (Remote)")
	assert.Contains(t, got, "nodejs")
	assert.Contains(t, got, "react")
	assert.Contains(t, got, "remote")
	assert.NotContains(t, got, "(")
}

func TestScanTextRespectsAllowlist(t *testing.T) {
	got := ScanText("Shipped a FastAPI service on Kubernetes; enjoys mango smoothies and Computer Vision work.")
	assert.Contains(t, got, "fastapi")
	assert.Contains(t, got, "kubernetes")
	assert.Contains(t, got, "computer vision")
	assert.NotContains(t, got, "mango")
	assert.NotContains(t, got, "smoothies")
}

func TestNormalizeRegion(t *testing.T) {
	cases := map[string]string{
		"MENA":               RegionMENA,
		"Middle East":        RegionMENA,
		"north africa":       RegionMENA,
		"sub-saharan africa": RegionSSA,
		"Sub Saharan":        RegionSSA,
		"Africa":             RegionSSA,
		"Europe":             "",
		"Tunisia":            "",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRegion(in), "input %q", in)
	}
}

func TestRegionKeywords(t *testing.T) {
	mena := RegionKeywords(RegionMENA)
	assert.Contains(t, mena, "tunisia")
	assert.Contains(t, mena, "middle east")
	assert.Nil(t, RegionKeywords("emea"))
}

func TestNormalizeMode(t *testing.T) {
	cases := map[string]string{
		"remote":       ModeRemote,
		"Remote-Only":  ModeRemote,
		"fully remote": ModeRemote,
		"on-site":      ModeOnsite,
		"office":       ModeOnsite,
		"hybrid":       ModeAny,
		"whatever":     ModeAny,
		"":             ModeAny,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeMode(in), "input %q", in)
	}
}
