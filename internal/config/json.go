package config

import (
	"encoding/json"
	"os"

	"github.com/aivanenka/studyplanner/internal/flagx"
	"github.com/aivanenka/studyplanner/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given as strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath    *string         `json:"database_path"`
	RemoteEndpoint  *string         `json:"remote_endpoint"`
	RemoteAccessKey *string         `json:"remote_access_key"`
	RemoteSecretKey *string         `json:"remote_secret_key"`
	RemoteBucket    *string         `json:"remote_bucket"`
	RemoteUseSSL    *bool           `json:"remote_use_ssl"`
	AutoSyncSpec    *string         `json:"autosync_spec"`
	SyncTimeout     *timex.Duration `json:"sync_timeout"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// No flag means no JSON is loaded. Read or unmarshal errors panic; the
// process cannot do anything sensible with a broken config file.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RemoteEndpoint != nil {
		cfg.RemoteEndpoint = *jc.RemoteEndpoint
	}
	if jc.RemoteAccessKey != nil {
		cfg.RemoteAccessKey = *jc.RemoteAccessKey
	}
	if jc.RemoteSecretKey != nil {
		cfg.RemoteSecretKey = *jc.RemoteSecretKey
	}
	if jc.RemoteBucket != nil {
		cfg.RemoteBucket = *jc.RemoteBucket
	}
	if jc.RemoteUseSSL != nil {
		cfg.RemoteUseSSL = *jc.RemoteUseSSL
	}
	if jc.AutoSyncSpec != nil {
		cfg.AutoSyncSpec = *jc.AutoSyncSpec
	}
	if jc.SyncTimeout != nil {
		cfg.SyncTimeout = jc.SyncTimeout.Std()
	}
}
