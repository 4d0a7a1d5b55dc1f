package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskman/internal/store"
	"taskman/internal/task"
)

// updateCommand edits an existing task. Each field is prompted with the
// current value; leaving a field blank keeps it.
func (a *app) updateCommand(ctx context.Context, args []string) error {
	fmt.Fprintln(a.out, "\nUPDATE TASK")
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

	fmt.Fprintln(a.out, "\nCurrent task details:")
	fmt.Fprintln(a.out, existing.Display())
	fmt.Fprintln(a.out, "\nEnter new values (press Enter to keep current value):")

	updates, err := a.promptUpdates(ctx, existing)
	if err != nil {
		return err
	}

	if updates.IsEmpty() {
		a.logger.Info("No changes made.")
		return nil
	}

	updCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.store.Update(updCtx, id, updates); err != nil {
		a.logger.Error("Failed to update task.", "err", err)
		return errCommandFailed
	}

	a.logger.Info("Task updated successfully!")
	return nil
}

// promptUpdates collects the per-field edits for an update.
func (a *app) promptUpdates(ctx context.Context, existing *task.Task) (task.Updates, error) {
	var updates task.Updates

	newTitle, err := a.prompt(ctx, fmt.Sprintf("Title [%s]: ", existing.Title))
	if err != nil {
		return updates, err
	}
	if newTitle != "" {
		updates.Title = &newTitle
	}

	newDesc, err := a.prompt(ctx, fmt.Sprintf("Description [%s]: ", existing.Description))
	if err != nil {
		return updates, err
	}
	if newDesc != "" {
		updates.Description = &newDesc
	}

	currentDue := existing.DueDate
	if currentDue == "" {
		currentDue = "Not set"
	}
	newDue, err := a.prompt(ctx, fmt.Sprintf("Due date [%s]: ", currentDue))
	if err != nil {
		return updates, err
	}
	if newDue != "" {
		normalized, err := task.NormalizeDueDate(newDue)
		if err != nil {
			a.logger.Warn("Invalid date format. Due date not updated.")
		} else {
			updates.DueDate = &normalized
		}
	}

	a.logger.Info(fmt.Sprintf("Priority options: %s, %s, %s",
		task.PriorityHigh, task.PriorityMedium, task.PriorityLow))
	newPriority, err := a.prompt(ctx, fmt.Sprintf("Priority [%s]: ", existing.Priority))
	if err != nil {
		return updates, err
	}
	if newPriority != "" {
		parsed, err := task.ParsePriority(newPriority)
		if err != nil {
			a.logger.Warn("Invalid priority. Not updated.")
		} else {
			updates.Priority = &parsed
		}
	}

	a.logger.Info(fmt.Sprintf("Status options: %s, %s, %s",
		task.StatusPending, task.StatusInProgress, task.StatusCompleted))
	newStatus, err := a.prompt(ctx, fmt.Sprintf("Status [%s]: ", existing.Status))
	if err != nil {
		return updates, err
	}
	if newStatus != "" {
		parsed, err := task.ParseStatus(newStatus)
		if err != nil {
			a.logger.Warn("Invalid status. Not updated.")
		} else {
			updates.Status = &parsed
		}
	}

	return updates, nil
}
