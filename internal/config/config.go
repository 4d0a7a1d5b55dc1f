// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"time"
)

// Default values.
const (
	DefaultMongoURI       = "mongodb://localhost:27017"
	DefaultDatabase       = "task_manager"
	DefaultCollection     = "tasks"
	DefaultConnectTimeout = 10
	DefaultOpTimeout      = 5
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for taskman.
type Config struct {
	// Store
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`

	// Timeouts in seconds
	ConnectTimeoutSeconds int `toml:"connect_timeout_seconds"`
	OpTimeoutSeconds      int `toml:"op_timeout_seconds"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// setDefaults fills in default values.
func setDefaults(cfg *Config) {
	cfg.MongoURI = DefaultMongoURI
	cfg.Database = DefaultDatabase
	cfg.Collection = DefaultCollection
	cfg.ConnectTimeoutSeconds = DefaultConnectTimeout
	cfg.OpTimeoutSeconds = DefaultOpTimeout
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// ConnectTimeout returns the connection timeout as a duration.
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// OpTimeout returns the per-operation timeout as a duration.
func (c *Config) OpTimeout() time.Duration {
	return time.Duration(c.OpTimeoutSeconds) * time.Second
}

// validate checks values that would otherwise fail deep inside a command.
func validate(cfg *Config) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("mongo_uri must not be empty")
	}
	if cfg.Database == "" {
		return fmt.Errorf("database must not be empty")
	}
	if cfg.Collection == "" {
		return fmt.Errorf("collection must not be empty")
	}
	if cfg.ConnectTimeoutSeconds <= 0 {
		return fmt.Errorf("connect_timeout_seconds must be positive, got %d", cfg.ConnectTimeoutSeconds)
	}
	if cfg.OpTimeoutSeconds <= 0 {
		return fmt.Errorf("op_timeout_seconds must be positive, got %d", cfg.OpTimeoutSeconds)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format must be text, json, or logfmt, got %q", cfg.LogFormat)
	}
	return nil
}
