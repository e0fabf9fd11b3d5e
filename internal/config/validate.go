package config

import "fmt"

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fixes up obviously-off values and reports the rest.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be between 1 and 65535, got %d", out.App.Port)
	}

	if out.Feeds.TimeoutSeconds <= 0 {
		res.addErr("feeds.timeout_seconds must be > 0")
	} else if out.Feeds.TimeoutSeconds > 120 {
		res.addWarn("feeds.timeout_seconds is very high (%d); one slow provider delays the whole request.", out.Feeds.TimeoutSeconds)
	}

	if out.Feeds.RatePerSec <= 0 {
		res.addErr("feeds.rate_per_sec must be > 0")
	}
	if out.Feeds.Burst <= 0 {
		out.Feeds.Burst = 1
		res.addWarn("feeds.burst was <= 0; using 1.")
	}

	if out.Feeds.Arbeitnow.Enabled && out.Feeds.Arbeitnow.Pages <= 0 {
		out.Feeds.Arbeitnow.Pages = 2
		res.addWarn("feeds.arbeitnow.pages was <= 0; using 2.")
	}

	if !out.Feeds.RemoteOK.Enabled && !out.Feeds.Remotive.Enabled &&
		!out.Feeds.Arbeitnow.Enabled && !out.Feeds.WeWorkRemotely.Enabled {
		res.addWarn("all feeds disabled; every match will be served from the curated fallback set.")
	}

	if out.Match.FallbackMin < 0 {
		res.addErr("match.fallback_min must be >= 0")
	}

	return out, res
}
