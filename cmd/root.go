// Package cmd implements the CLI command structure for taskman.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskman/internal/config"
	"taskman/internal/logging"
	"taskman/internal/store"
	"taskman/internal/task"
	"taskman/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskman CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskman", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	// Determine the subcommand. With no arguments the interactive REPL runs.
	subcommand := "repl"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "version", "--version", "-v":
		return versionCommand(os.Stdout)
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	case "doctor":
		return doctorCommand(ctx, cfg, os.Stdout)
	}

	// The demo board runs on sample data and needs no database.
	if subcommand == "tui" && len(remainingArgs) > 0 && remainingArgs[0] == "--demo" {
		return ui.Run(ctx, cfg, demoStore(ctx))
	}

	app, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	switch subcommand {
	case "repl":
		return app.repl(ctx)
	case "add":
		return app.addCommand(ctx, remainingArgs)
	case "list":
		return app.listCommand(ctx, remainingArgs)
	case "mark_complete", "done":
		return app.completeCommand(ctx, remainingArgs)
	case "update":
		return app.updateCommand(ctx, remainingArgs)
	case "delete":
		return app.deleteCommand(ctx, remainingArgs)
	case "tui":
		return ui.Run(ctx, cfg, app.store)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newApp connects to the store and wires up the command handlers.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := logging.New(cfg)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	st, err := store.OpenMongo(connectCtx, cfg.MongoURI, cfg.Database, cfg.Collection)
	if err != nil {
		logger.Error("Failed to connect to the task database. Is MongoDB running?", "uri", cfg.MongoURI)
		return nil, fmt.Errorf("opening task store: %w", err)
	}
	logger.Debug("connected to task store", "database", cfg.Database, "collection", cfg.Collection)

	return &app{
		cfg:    cfg,
		store:  st,
		logger: logger,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// demoStore seeds an in-memory store with sample tasks for tui --demo.
func demoStore(ctx context.Context) *store.Memory {
	mem := store.NewMemory()
	samples := []*task.Task{
		task.New("Review pull request", "storage layer changes", "2026-08-28", task.PriorityHigh),
		task.New("Write release notes", "", "2026-09-01", task.PriorityMedium),
		task.New("Clean up stale branches", "", "", task.PriorityLow),
	}
	samples[1].Status = task.StatusInProgress
	samples[2].Status = task.StatusCompleted
	for _, t := range samples {
		_ = mem.Insert(ctx, t)
	}
	return mem
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "taskman %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `taskman - a task manager backed by a document database

Usage:
  taskman [flags] [command] [args]

Commands:
  repl           Interactive session (default)
  add            Add a new task
  list           List tasks with optional filtering and sorting
                   list [--filter status:value] [--filter priority:value] [--sort field:order]
  mark_complete  Mark a Pending or In Progress task as Completed (alias: done)
  update         Update an existing task
  delete         Delete a task
  tui            Terminal task board (--demo runs on sample data)
  doctor         Check config, store connectivity, and document validity
  version        Show version
  help           Show this help

Examples:
  taskman
  taskman list --filter status:Pending
  taskman list --filter priority:High --sort due_date:asc
  taskman list --sort created_at:desc
  taskman mark_complete 65b2f0a1c9e77d3f4a1b2c3d

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
