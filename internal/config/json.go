package config

import (
	"encoding/json"
	"os"
	"time"

	"talentbase/internal/flagx"
	"talentbase/internal/timex"
)

// jsonConfig is the DTO used for JSON unmarshalling. Durations rely on
// timex.Duration so the file can specify them either as strings like "30s"
// or as integer nanoseconds.
type jsonConfig struct {
	DatabasePath        string         `json:"database_path"`
	BackupDir           string         `json:"backup_dir"`
	RemoteEndpoint      string         `json:"remote_endpoint"`
	AccessToken         string         `json:"access_token"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// When no config flag is given, nothing happens. Only fields present in the
// file override; zero values keep the earlier stage's setting.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.BackupDir != "" {
		cfg.BackupDir = jc.BackupDir
	}
	if jc.RemoteEndpoint != "" {
		cfg.RemoteEndpoint = jc.RemoteEndpoint
	}
	if jc.AccessToken != "" {
		cfg.AccessToken = jc.AccessToken
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
