package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskman/internal/store"
)

// deleteCommand removes a task after showing it and asking for confirmation.
func (a *app) deleteCommand(ctx context.Context, args []string) error {
	fmt.Fprintln(a.out, "\nDELETE TASK")
	fmt.Fprintln(a.out, strings.Repeat("-", 20))

	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		var err error
		id, err = a.prompt(ctx, "Enter task ID: ")
		if err != nil {
			return err
		}
	}
	if id == "" {
		a.logger.Warn("Task ID is required!")
		return nil
	}

	getCtx, cancel := a.opCtx(ctx)
	existing, err := a.store.Get(getCtx, id)
	cancel()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			a.logger.Warn("Task not found!")
			return nil
		}
		a.logger.Error("Failed to retrieve task", "err", err)
		return errCommandFailed
	}

	fmt.Fprintln(a.out, "\nTask to delete:")
	fmt.Fprintln(a.out, existing.Display())

	confirmed, err := a.confirm(ctx, "Are you sure you want to delete this task? (y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		a.logger.Info("Deletion cancelled.")
		return nil
	}

	delCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.store.Delete(delCtx, id); err != nil {
		a.logger.Warn("Failed to delete task.", "err", err)
		return errCommandFailed
	}

	a.logger.Info("Task deleted successfully!")
	return nil
}
