package cmd

import (
	"context"
	"fmt"
	"strings"

	"taskman/internal/query"
	"taskman/internal/task"
)

// listCommand lists tasks, translating --filter and --sort tokens into a
// query over the collection. A bare list prompts for the filtering and
// sorting options instead.
func (a *app) listCommand(ctx context.Context, args []string) error {
	fmt.Fprintln(a.out, "\nLIST TASKS")
	fmt.Fprintln(a.out, strings.Repeat("=", 30))

	var q *query.Query
	if len(args) == 0 {
		var err error
		q, err = a.promptListQuery(ctx)
		if err != nil {
			return err
		}
	} else {
		var warnings []string
		q, warnings = query.Parse(args)
		for _, w := range warnings {
			a.logger.Warn(w)
		}
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	tasks, err := a.store.Find(opCtx, q)
	if err != nil {
		a.logger.Error("Failed to retrieve tasks", "err", err)
		return errCommandFailed
	}

	if len(tasks) == 0 {
		a.logger.Warn("No tasks found matching the criteria.")
		return nil
	}

	if desc := q.Describe(); desc != "" {
		fmt.Fprintln(a.out, desc)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 50))

	for i, t := range tasks {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, t.Display())
	}

	a.logger.Info(fmt.Sprintf("Total tasks displayed: %d", len(tasks)))
	return nil
}

// promptListQuery walks the interactive filter and sort questions a bare
// list asks, building the same query the token form would.
func (a *app) promptListQuery(ctx context.Context) (*query.Query, error) {
	q := &query.Query{SortOrder: query.OrderDesc}

	fmt.Fprintln(a.out, "\nFiltering and Sorting Options:")

	filterStatus, err := a.confirm(ctx, "Filter by status? (y/N): ")
	if err != nil {
		return nil, err
	}
	if filterStatus {
		a.logger.Info(fmt.Sprintf("Available statuses: %s, %s, %s",
			task.StatusPending, task.StatusInProgress, task.StatusCompleted))
		input, err := a.prompt(ctx, "Enter status: ")
		if err != nil {
			return nil, err
		}
		if st, err := task.ParseStatus(input); err != nil {
			a.logger.Warn("Invalid status. No status filter applied.")
		} else {
			q.Status = &st
		}
	}

	filterPriority, err := a.confirm(ctx, "Filter by priority? (y/N): ")
	if err != nil {
		return nil, err
	}
	if filterPriority {
		a.logger.Info(fmt.Sprintf("Available priorities: %s, %s, %s",
			task.PriorityHigh, task.PriorityMedium, task.PriorityLow))
		input, err := a.prompt(ctx, "Enter priority: ")
		if err != nil {
			return nil, err
		}
		if p, err := task.ParsePriority(input); err != nil {
			a.logger.Warn("Invalid priority. No priority filter applied.")
		} else {
			q.Priority = &p
		}
	}

	sortTasks, err := a.confirm(ctx, "Sort tasks? (y/N): ")
	if err != nil {
		return nil, err
	}
	if sortTasks {
		a.logger.Info(fmt.Sprintf("Available sort fields: %s", strings.Join(query.SortFields, ", ")))
		field, err := a.prompt(ctx, "Enter sort field: ")
		if err != nil {
			return nil, err
		}
		field = strings.ToLower(field)
		valid := false
		for _, f := range query.SortFields {
			if field == f {
				valid = true
				break
			}
		}
		if !valid {
			a.logger.Warn("Invalid sort field. Default sorting will be used.")
			return q, nil
		}
		q.SortField = field

		fmt.Fprintln(a.out, "Sort order: (1) Ascending (2) Descending")
		choice, err := a.prompt(ctx, "Enter choice (1/2): ")
		if err != nil {
			return nil, err
		}
		if choice == "1" {
			q.SortOrder = query.OrderAsc
		}
	}

	return q, nil
}
