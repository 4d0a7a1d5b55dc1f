package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from TASKMAN_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKMAN_MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("TASKMAN_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("TASKMAN_COLLECTION"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("TASKMAN_CONNECT_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ConnectTimeoutSeconds = n
		}
	}
	if v := os.Getenv("TASKMAN_OP_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.OpTimeoutSeconds = n
		}
	}
	if v := os.Getenv("TASKMAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKMAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKMAN_LOG_TIMESTAMPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogTimestamps = b
		}
	}
}
