package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"taskman/internal/task"
)

// addCommand creates a new task. With a -title flag it runs non-interactively;
// otherwise it prompts for each field the way the interactive session does.
func (a *app) addCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskman add", flag.ContinueOnError)
	title := fs.String("title", "", "Task title")
	description := fs.String("desc", "", "Task description")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	priority := fs.String("priority", "", "Priority (High|Medium|Low)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title != "" {
		return a.addTask(ctx, *title, *description, *due, *priority)
	}

	fmt.Fprintln(a.out, "\nADD NEW TASK")
	fmt.Fprintln(a.out, strings.Repeat("-", 20))

	promptedTitle, err := a.prompt(ctx, "Enter task title: ")
	if err != nil {
		return err
	}
	if promptedTitle == "" {
		a.logger.Warn("Title is required!")
		return nil
	}

	promptedDesc, err := a.prompt(ctx, "Enter description (optional): ")
	if err != nil {
		return err
	}

	promptedDue, err := a.prompt(ctx, "Enter due date (YYYY-MM-DD, optional): ")
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Priority options: %s, %s, %s",
		task.PriorityHigh, task.PriorityMedium, task.PriorityLow))
	promptedPriority, err := a.prompt(ctx, "Enter priority (High/Medium/Low): ")
	if err != nil {
		return err
	}

	return a.addTask(ctx, promptedTitle, promptedDesc, promptedDue, promptedPriority)
}

// addTask validates the inputs, applies the interactive-mode fallbacks, and
// inserts the task.
func (a *app) addTask(ctx context.Context, title, description, due, priority string) error {
	dueDate, err := task.NormalizeDueDate(due)
	if err != nil {
		a.logger.Warn("Invalid date format. Due date not set.")
		dueDate = ""
	}

	p := task.PriorityMedium
	if priority != "" {
		parsed, err := task.ParsePriority(priority)
		if err != nil {
			// Interactive flow demotes bad input rather than failing.
			a.logger.Warn("Invalid priority. Set to 'Low'.")
			parsed = task.PriorityLow
		}
		p = parsed
	}

	t := task.New(title, description, dueDate, p)
	if err := t.Validate(); err != nil {
		a.logger.Error("Failed to create task", "err", err)
		return errCommandFailed
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.store.Insert(opCtx, t); err != nil {
		a.logger.Error("Failed to create task", "err", err)
		return errCommandFailed
	}

	a.logger.Info(fmt.Sprintf("Task created successfully! ID: %s", t.ID.Hex()))
	return nil
}
