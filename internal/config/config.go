// Package config assembles the planner's runtime settings from defaults,
// environment variables, an optional JSON file, and command-line flags, in
// that order of precedence.
package config

import "time"

// Config holds runtime settings for the planner CLI.
//
// RemoteEndpoint and friends describe the S3-compatible bucket the sync
// engine mirrors to; an empty endpoint leaves the planner local-only.
// AutoSyncSpec is a cron expression; empty disables background sync.
type Config struct {
	DatabasePath string

	RemoteEndpoint  string
	RemoteAccessKey string
	RemoteSecretKey string
	RemoteBucket    string
	RemoteUseSSL    bool

	AutoSyncSpec string
	SyncTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "planner.db"
	c.RemoteBucket = "studyplanner"
	c.SyncTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
