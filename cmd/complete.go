package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskman/internal/query"
	"taskman/internal/store"
	"taskman/internal/task"
)

// completeCommand marks a Pending or In Progress task as Completed. The ID
// comes from the arguments or, interactively, after listing the candidates.
func (a *app) completeCommand(ctx context.Context, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}

	if id == "" {
		fmt.Fprintln(a.out, "\nMark task as complete (provide the task ID)")
		fmt.Fprintln(a.out, strings.Repeat("=", 30))

		candidates, err := a.listIncomplete(ctx)
		if err != nil {
			a.logger.Error("Failed to retrieve tasks", "err", err)
			return errCommandFailed
		}
		if candidates == 0 {
			a.logger.Info("No incomplete tasks available to mark as complete.")
			return nil
		}

		id, err = a.prompt(ctx, "Task ID: ")
		if err != nil {
			return err
		}
		if id == "" {
			a.logger.Warn("Task ID is required!")
			return nil
		}
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	t, err := a.store.Get(opCtx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			a.logger.Warn(fmt.Sprintf("%s - not found.", id))
			return nil
		}
		a.logger.Error("Failed to retrieve task", "err", err)
		return errCommandFailed
	}

	if t.Status == task.StatusCompleted {
		a.logger.Warn(fmt.Sprintf("%s - %s is already completed!", t.ID.Hex(), t.Title))
		return nil
	}

	completed := task.StatusCompleted
	if err := a.store.Update(opCtx, id, task.Updates{Status: &completed}); err != nil {
		a.logger.Error(fmt.Sprintf("Failed to complete task %s", id), "err", err)
		return errCommandFailed
	}

	a.logger.Info(fmt.Sprintf("Successfully completed task %s - %s", t.ID.Hex(), t.Title))
	return nil
}

// listIncomplete prints the IDs of In Progress and Pending tasks and
// returns how many there are.
func (a *app) listIncomplete(ctx context.Context) (int, error) {
	total := 0
	for _, status := range []task.Status{task.StatusInProgress, task.StatusPending} {
		st := status
		q := &query.Query{Status: &st, SortOrder: query.OrderDesc}

		opCtx, cancel := a.opCtx(ctx)
		tasks, err := a.store.Find(opCtx, q)
		cancel()
		if err != nil {
			return 0, err
		}

		if len(tasks) == 0 {
			a.logger.Info(fmt.Sprintf("No %s tasks", status))
			continue
		}
		a.logger.Info(fmt.Sprintf("All %s tasks:", status))
		for _, t := range tasks {
			fmt.Fprintf(a.out, "%s  %s\n", t.ID.Hex(), t.Title)
		}
		total += len(tasks)
	}
	return total, nil
}
