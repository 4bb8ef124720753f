package config

import "time"

// Config holds runtime settings for the talentbase client.
//
// DatabasePath is the SQLite file backing the local store; BackupDir is
// where template backup snapshots are written. RemoteEndpoint and
// AccessToken configure the sync remote; an empty endpoint leaves the
// client fully offline.
type Config struct {
	DatabasePath        string
	BackupDir           string
	RemoteEndpoint      string
	AccessToken         string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "talentbase.db"
	c.BackupDir = "backups"
	c.RemoteEndpoint = ""
	c.AccessToken = ""
	c.OnlineCheckInterval = 30 * time.Second
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
