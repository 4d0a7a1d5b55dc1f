package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// repl runs the interactive session: read a line, tokenize it, route the
// first token to the matching command handler.
func (a *app) repl(ctx context.Context) error {
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
	fmt.Fprintln(a.out, "TASK MANAGER CLI")
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
	a.logger.Info("Type 'help' for available commands or 'exit' to quit.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := a.prompt(ctx, "\n> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				a.logger.Info("Goodbye!")
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		quit, err := a.dispatch(ctx, line)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			// Command failures are already logged; the session goes on.
			if errors.Is(err, errCommandFailed) {
				continue
			}
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatch tokenizes one input line and routes it. It returns true when the
// session should end.
func (a *app) dispatch(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "help":
		a.showHelp()
	case "add":
		return false, a.addCommand(ctx, args)
	case "list":
		return false, a.listCommand(ctx, args)
	case "mark_complete", "done":
		return false, a.completeCommand(ctx, args)
	case "update":
		return false, a.updateCommand(ctx, args)
	case "delete":
		return false, a.deleteCommand(ctx, args)
	case "exit", "quit":
		a.logger.Info("Goodbye!")
		return true, nil
	default:
		a.logger.Error(fmt.Sprintf("Unknown command: '%s'. Type 'help' for available commands.", line))
	}
	return false, nil
}

func (a *app) showHelp() {
	fmt.Fprint(a.out, `
AVAILABLE COMMANDS:
------------------------------
add           - Add a new task
list          - List all tasks with optional filtering and sorting
                Usage: list [--filter status:value] [--filter priority:value] [--sort field:order]
                Examples:
                  list
                  list --filter status:Pending
                  list --filter priority:High --sort due_date:asc
                  list --sort created_at:desc
mark_complete - Mark a Pending or In Progress task as Completed
update        - Update an existing task
delete        - Delete a task
help          - Show this help message
exit          - Exit the application
`)
}
