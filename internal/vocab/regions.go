package vocab

import "strings"

// The engine filters for two macro-regions. Everything else normalizes to
// "no region" and falls back to literal substring matching upstream.
const (
	RegionMENA = "mena"
	RegionSSA  = "ssa"
)

var menaCountries = []string{
	"algeria", "bahrain", "djibouti", "egypt", "iran", "iraq", "israel",
	"jordan", "kuwait", "lebanon", "libya", "mauritania", "morocco", "oman",
	"palestine", "qatar", "saudi arabia", "ksa", "syria", "tunisia",
	"united arab emirates", "uae", "yemen", "sudan", "western sahara",
}

var ssaCountries = []string{
	"angola", "benin", "botswana", "burkina faso", "burundi", "cabo verde",
	"cameroon", "central african republic", "chad", "comoros", "congo",
	"republic of the congo", "dr congo", "democratic republic of the congo",
	"cote d'ivoire", "ivory coast", "equatorial guinea", "eritrea", "eswatini",
	"ethiopia", "gabon", "gambia", "ghana", "guinea", "guinea-bissau",
	"kenya", "lesotho", "liberia", "madagascar", "malawi", "mali",
	"mauritius", "mozambique", "namibia", "niger", "nigeria", "rwanda",
	"sao tome", "sao tome and principe", "senegal", "seychelles",
	"sierra leone", "somalia", "south africa", "south sudan", "tanzania",
	"togo", "uganda", "zambia", "zimbabwe",
}

var regionMarkers = map[string][]string{
	RegionMENA: {"mena", "middle east", "north africa"},
	RegionSSA:  {"ssa", "sub-saharan africa", "sub saharan africa"},
}

var regionCountries = map[string][]string{
	RegionMENA: menaCountries,
	RegionSSA:  ssaCountries,
}

// NormalizeRegion maps a free-text region preference onto a macro-region key.
// Unrecognized input returns "" rather than guessing; generic "africa" is
// treated as sub-Saharan for this engine's market focus.
func NormalizeRegion(region string) string {
	r := strings.ToLower(strings.TrimSpace(stripAccents(region)))
	if r == "" {
		return ""
	}
	switch {
	case strings.Contains(r, "mena"), strings.Contains(r, "middle east"), strings.Contains(r, "north africa"):
		return RegionMENA
	case strings.Contains(r, "ssa"), strings.Contains(r, "sub") && strings.Contains(r, "sahar"):
		return RegionSSA
	case strings.Contains(r, "africa"):
		return RegionSSA
	}
	return ""
}

// RegionKeywords returns the marker terms plus member-country names for a
// macro-region key, or nil for an unknown key. The returned slice is a copy.
func RegionKeywords(key string) []string {
	markers, ok := regionMarkers[key]
	if !ok {
		return nil
	}
	countries := regionCountries[key]
	out := make([]string, 0, len(markers)+len(countries))
	out = append(out, markers...)
	out = append(out, countries...)
	return out
}
