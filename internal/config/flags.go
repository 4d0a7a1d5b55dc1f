package config

import (
	"flag"
)

// parseFlags defines and parses CLI flags onto cfg. Flag values default to
// whatever the earlier sources produced, so unset flags change nothing.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskman", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.MongoURI, "uri", cfg.MongoURI, "MongoDB connection URI")
	fs.StringVar(&cfg.Database, "db", cfg.Database, "Database name")
	fs.StringVar(&cfg.Collection, "collection", cfg.Collection, "Task collection name")
	fs.IntVar(&cfg.ConnectTimeoutSeconds, "connect-timeout", cfg.ConnectTimeoutSeconds, "Connection timeout (seconds)")
	fs.IntVar(&cfg.OpTimeoutSeconds, "op-timeout", cfg.OpTimeoutSeconds, "Per-operation timeout (seconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	return fs.Parse(args)
}
