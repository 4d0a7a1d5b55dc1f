// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir changes to dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.MongoURI != DefaultMongoURI {
		t.Errorf("MongoURI: got %q, want %q", cfg.MongoURI, DefaultMongoURI)
	}
	if cfg.Database != DefaultDatabase {
		t.Errorf("Database: got %q, want %q", cfg.Database, DefaultDatabase)
	}
	if cfg.Collection != DefaultCollection {
		t.Errorf("Collection: got %q, want %q", cfg.Collection, DefaultCollection)
	}
	if cfg.ConnectTimeout() != 10*time.Second {
		t.Errorf("ConnectTimeout: got %s, want 10s", cfg.ConnectTimeout())
	}
	if cfg.OpTimeout() != 5*time.Second {
		t.Errorf("OpTimeout: got %s, want 5s", cfg.OpTimeout())
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TASKMAN_MONGO_URI", "mongodb://db.example:27017")
	t.Setenv("TASKMAN_DATABASE", "workdb")
	t.Setenv("TASKMAN_COLLECTION", "items")
	t.Setenv("TASKMAN_OP_TIMEOUT", "30")
	t.Setenv("TASKMAN_LOG_LEVEL", "debug")
	t.Setenv("TASKMAN_LOG_TIMESTAMPS", "true")

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg)

	if cfg.MongoURI != "mongodb://db.example:27017" {
		t.Errorf("MongoURI: got %q", cfg.MongoURI)
	}
	if cfg.Database != "workdb" {
		t.Errorf("Database: got %q", cfg.Database)
	}
	if cfg.Collection != "items" {
		t.Errorf("Collection: got %q", cfg.Collection)
	}
	if cfg.OpTimeoutSeconds != 30 {
		t.Errorf("OpTimeoutSeconds: got %d", cfg.OpTimeoutSeconds)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
}

func TestLoadFromEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("TASKMAN_OP_TIMEOUT", "soon")
	t.Setenv("TASKMAN_CONNECT_TIMEOUT", "-3")

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg)

	if cfg.OpTimeoutSeconds != DefaultOpTimeout {
		t.Errorf("OpTimeoutSeconds: got %d, want default", cfg.OpTimeoutSeconds)
	}
	if cfg.ConnectTimeoutSeconds != DefaultConnectTimeout {
		t.Errorf("ConnectTimeoutSeconds: got %d, want default", cfg.ConnectTimeoutSeconds)
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
mongo_uri = "mongodb://project:27017"
collection = "project_tasks"
log_level = "warn"
`
	if err := os.WriteFile(filepath.Join(dir, "taskman.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MongoURI != "mongodb://project:27017" {
		t.Errorf("MongoURI: got %q", cfg.MongoURI)
	}
	if cfg.Collection != "project_tasks" {
		t.Errorf("Collection: got %q", cfg.Collection)
	}
	// Unset fields keep defaults.
	if cfg.Database != DefaultDatabase {
		t.Errorf("Database: got %q, want default", cfg.Database)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
}

func TestLoadFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `database = "filedb"`
	if err := os.WriteFile(filepath.Join(dir, ".taskman.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-db", "flagdb"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database != "flagdb" {
		t.Errorf("Database: got %q, want flag to win", cfg.Database)
	}
}

func TestLoadRejectsBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "taskman.toml"), []byte("mongo_uri = ["), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := Load(fs, nil); err == nil {
		t.Fatal("Load should fail on malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"empty uri", func(c *Config) { c.MongoURI = "" }, true},
		{"empty database", func(c *Config) { c.Database = "" }, true},
		{"empty collection", func(c *Config) { c.Collection = "" }, true},
		{"zero op timeout", func(c *Config) { c.OpTimeoutSeconds = 0 }, true},
		{"negative connect timeout", func(c *Config) { c.ConnectTimeoutSeconds = -1 }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"json log format", func(c *Config) { c.LogFormat = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
