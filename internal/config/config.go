package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Feed struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	App struct {
		Port    int  `yaml:"port"`
		JSONLog bool `yaml:"json_log"`
		Debug   bool `yaml:"debug"`
	} `yaml:"app"`

	Feeds struct {
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec"`
		Burst          int     `yaml:"burst"`

		RemoteOK  Feed `yaml:"remoteok"`
		Remotive  Feed `yaml:"remotive"`
		Arbeitnow struct {
			Enabled bool `yaml:"enabled"`
			Pages   int  `yaml:"pages"`
		} `yaml:"arbeitnow"`
		WeWorkRemotely Feed `yaml:"weworkremotely"`
	} `yaml:"feeds"`

	Match struct {
		FallbackMin int `yaml:"fallback_min"`
	} `yaml:"match"`
}

// Default is the config used when no file is supplied: every feed enabled,
// conservative outbound rate, stock fallback threshold.
func Default() Config {
	var cfg Config
	cfg.App.Port = 8090
	cfg.Feeds.TimeoutSeconds = 20
	cfg.Feeds.RatePerSec = 2
	cfg.Feeds.Burst = 4
	cfg.Feeds.RemoteOK.Enabled = true
	cfg.Feeds.Remotive.Enabled = true
	cfg.Feeds.Arbeitnow.Enabled = true
	cfg.Feeds.Arbeitnow.Pages = 2
	cfg.Feeds.WeWorkRemotely.Enabled = true
	cfg.Match.FallbackMin = 30
	return cfg
}

// Load reads a YAML config file over the defaults, so omitted fields keep
// their stock values. An empty path returns Default directly.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
