package vocab

import "strings"

// Work-mode preferences collapse onto exactly three values.
const (
	ModeRemote = "remote"
	ModeOnsite = "onsite"
	ModeAny    = "any"
)

// NormalizeMode folds variant phrasings onto one of the three modes.
// Unrecognized input, including "hybrid", defaults to any.
func NormalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "remote", "remote_only", "remote-only", "fully remote":
		return ModeRemote
	case "onsite", "on-site", "on site", "office":
		return ModeOnsite
	}
	return ModeAny
}
