package vocab

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// skillAliases maps common variant spellings onto canonical lowercase tokens.
// Keys must already be casefolded. Loaded once; never mutated at runtime.
var skillAliases = map[string]string{
	"py":            "python",
	"py3":           "python",
	"python3":       "python",
	"js":            "javascript",
	"node":          "nodejs",
	"node.js":       "nodejs",
	"ts":            "typescript",
	"reactjs":       "react",
	"next":          "next.js",
	"nextjs":        "next.js",
	"vuejs":         "vue",
	"tf":            "tensorflow",
	"tfjs":          "tensorflow",
	"tensorflow.js": "tensorflow",
	"sklearn":       "scikit-learn",
	"scikit learn":  "scikit-learn",
	"postgres":      "postgresql",
	"fast api":      "fastapi",
	"fast-api":      "fastapi",
	"k8s":           "kubernetes",
}

// techAllowlist restricts free-text scans to recognized technology terms so
// arbitrary resume prose doesn't produce junk skills.
var techAllowlist = buildAllowlist(
	"python", "javascript", "nodejs", "typescript", "react", "next.js", "vue",
	"angular", "tensorflow", "pytorch", "scikit-learn", "opencv", "nlp",
	"computer vision", "pandas", "numpy", "sql", "postgresql", "mysql",
	"mongodb", "redis", "rabbitmq", "docker", "kubernetes", "aws", "gcp",
	"azure", "fastapi", "flask", "django", "rest", "graphql", "airflow",
	"spark", "git", "linux", "bash", "ci", "cd", "java", "c++", "c#", "go",
	"rust", "terraform", "kafka",
)

func buildAllowlist(terms ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(terms)+len(skillAliases))
	for _, t := range terms {
		m[t] = struct{}{}
	}
	for _, canon := range skillAliases {
		m[canon] = struct{}{}
	}
	return m
}

var (
	skillJunkRE = regexp.MustCompile(`[^a-z0-9+.#\- ]`)
	tokenRE     = regexp.MustCompile(`[a-z0-9+.#-]+`)
)

var accentStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// CanonicalSkill maps an arbitrary skill string onto its canonical token:
// casefolded, accent-stripped, whitespace-collapsed, alias-resolved.
// Unknown tokens pass through casefolded. Canonical input is a no-op.
func CanonicalSkill(s string) string {
	s = strings.ToLower(strings.TrimSpace(stripAccents(s)))
	s = skillJunkRE.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	if canon, ok := skillAliases[s]; ok {
		return canon
	}
	return s
}

// CanonicalSkills canonicalizes a list, dropping empties and duplicates while
// preserving first-seen order.
func CanonicalSkills(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		c := CanonicalSkill(s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// TitleTokens tokenizes a posting title into canonical tags, used when a
// posting carries no explicit tag set.
func TitleTokens(title string) []string {
	raw := tokenRE.FindAllString(strings.ToLower(title), -1)
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if canon, ok := skillAliases[t]; ok {
			t = canon
		}
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ScanText extracts recognized technology terms from free-form prose.
// Single tokens and adjacent two-word phrases are checked against the
// allowlist after alias resolution, so "scikit learn" and "computer vision"
// come back as single skills.
func ScanText(text string) []string {
	low := strings.ToLower(stripAccents(text))
	words := tokenRE.FindAllString(low, -1)

	seen := map[string]bool{}
	var out []string
	keep := func(tok string) {
		if canon, ok := skillAliases[tok]; ok {
			tok = canon
		}
		if _, ok := techAllowlist[tok]; !ok {
			return
		}
		if seen[tok] {
			return
		}
		seen[tok] = true
		out = append(out, tok)
	}

	for i, w := range words {
		keep(w)
		if i+1 < len(words) {
			keep(w + " " + words[i+1])
		}
	}
	return out
}
