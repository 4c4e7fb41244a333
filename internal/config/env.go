package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with PLANNER_* environment variables. A .env file
// in the working directory is loaded first; a missing file is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("PLANNER_DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("PLANNER_REMOTE_ENDPOINT"); ok {
		cfg.RemoteEndpoint = v
	}
	if v, ok := os.LookupEnv("PLANNER_REMOTE_ACCESS_KEY"); ok {
		cfg.RemoteAccessKey = v
	}
	if v, ok := os.LookupEnv("PLANNER_REMOTE_SECRET_KEY"); ok {
		cfg.RemoteSecretKey = v
	}
	if v, ok := os.LookupEnv("PLANNER_REMOTE_BUCKET"); ok {
		cfg.RemoteBucket = v
	}
	if v, ok := os.LookupEnv("PLANNER_REMOTE_USE_SSL"); ok {
		if ssl, err := strconv.ParseBool(v); err == nil {
			cfg.RemoteUseSSL = ssl
		}
	}
	if v, ok := os.LookupEnv("PLANNER_AUTOSYNC_SPEC"); ok {
		cfg.AutoSyncSpec = v
	}
	if v, ok := os.LookupEnv("PLANNER_SYNC_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SyncTimeout = d
		}
	}
}
