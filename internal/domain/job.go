package domain

// JobPosting is the common shape every feed adapter normalizes into.
// Postings are immutable once fetched and live for a single match request.
type JobPosting struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	URL      string   `json:"url"`
	Source   string   `json:"source"`
	Tags     []string `json:"tags"`
	Snippet  string   `json:"snippet,omitempty"`
}

// CandidateProfile is the caller-supplied side of a match request.
// Skills are expected in canonical form (lowercase, alias-resolved).
type CandidateProfile struct {
	Skills    []string `json:"skills"`
	Region    string   `json:"region,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Mode      string   `json:"mode,omitempty"` // remote | onsite | any
}

// Explanation tells the caller why a posting scored the way it did.
type Explanation struct {
	Summary  string   `json:"summary"`
	Matched  []string `json:"matched_skills"`
	Gaps     []string `json:"gaps"`
	Coverage int      `json:"coverage"` // 0-100
	Fairness string   `json:"fairness"`
	Notes    []string `json:"notes"`
}

// RankedPosting is a JobPosting annotated with scoring output.
type RankedPosting struct {
	JobPosting
	Score        float64     `json:"score"` // 0.0-1.0
	Explanation  Explanation `json:"explanation"`
	Remote       bool        `json:"remote"`
	RegionMatch  bool        `json:"region_match"`
	CountryMatch bool        `json:"country_match"`
	GeoPriority  int         `json:"geo_priority"` // 0=country, 1=region, 2=neither
}

// MatchResult is the engine's reply: the ranked page plus echoes of the
// resolved inputs so the caller can see what was actually used.
type MatchResult struct {
	Jobs       []RankedPosting `json:"jobs"`
	SkillsUsed []string        `json:"skills_used"`
	Region     string          `json:"region_used,omitempty"`
	Mode       string          `json:"mode_used"`
}
