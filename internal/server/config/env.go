package config

import (
	"os"
	"strconv"
)

// parseEnv overlays configuration from SYNCMARKS_* environment variables.
// cmd/server loads an optional .env file (godotenv) before LoadConfig runs,
// so these can come from either the process environment or a local .env.
func parseEnv(config *Config) {
	if v := os.Getenv("SYNCMARKS_ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("SYNCMARKS_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SYNCMARKS_MAX_SYNCS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxSyncs = n
		}
	}
	if v := os.Getenv("SYNCMARKS_DAILY_NEW_SYNCS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.DailyNewSyncsLimit = n
		}
	}
	if v := os.Getenv("SYNCMARKS_ALLOW_NEW_SYNCS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.AllowNewSyncs = b
		}
	}
	if v := os.Getenv("SYNCMARKS_STATUS_OFFLINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.StatusOffline = b
		}
	}
	if v := os.Getenv("SYNCMARKS_STATUS_MESSAGE"); v != "" {
		config.StatusMessage = v
	}
}
