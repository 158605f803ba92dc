// Package config loads runtime settings for the B.R.A.M. client.
package config

import "time"

// Config holds runtime settings for the B.R.A.M. CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API (the /disasters and
//     auth endpoints hang off it).
//   - PollInterval: how often the report feed is refreshed in the
//     background.
//   - DatabasePath: path of the local SQLite file holding the session
//     profile.
type Config struct {
	APIBaseURL   string
	PollInterval time.Duration
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults. The 2-second poll
// interval keeps the alerts view near-live without hammering the
// backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api"
	c.PollInterval = 2 * time.Second
	c.DatabasePath = "bram.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
