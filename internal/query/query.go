// Package query translates list-command tokens into a structured query
// over the task collection.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"taskman/internal/task"
)

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SortFields lists the fields list can sort on.
var SortFields = []string{"title", "priority", "status", "created_at", "due_date"}

// Query is a structured filter and ordering over the task collection.
type Query struct {
	Status    *task.Status
	Priority  *task.Priority
	SortField string
	SortOrder Order
}

// Parse walks list-command arguments and builds a Query. Recognized tokens:
//
//	--filter status:<value>
//	--filter priority:<value>
//	--sort <field>[:asc|desc]
//
// Invalid values and unknown tokens are skipped; each produces a warning
// for the caller to report. A later duplicate filter or sort wins.
func Parse(args []string) (*Query, []string) {
	q := &Query{SortOrder: OrderDesc}
	var warnings []string

	for i := 0; i < len(args); {
		switch args[i] {
		case "--filter":
			if i+1 >= len(args) {
				warnings = append(warnings, "--filter requires a key:value argument")
				i++
				continue
			}
			if w := q.applyFilter(args[i+1]); w != "" {
				warnings = append(warnings, w)
			}
			i += 2
		case "--sort":
			if i+1 >= len(args) {
				warnings = append(warnings, "--sort requires a field[:order] argument")
				i++
				continue
			}
			if w := q.applySort(args[i+1]); w != "" {
				warnings = append(warnings, w)
			}
			i += 2
		default:
			warnings = append(warnings, fmt.Sprintf("unknown argument: %s", args[i]))
			i++
		}
	}

	return q, warnings
}

func (q *Query) applyFilter(arg string) string {
	key, value, ok := strings.Cut(arg, ":")
	if !ok {
		return fmt.Sprintf("filter %q is not in key:value form", arg)
	}

	switch strings.ToLower(key) {
	case "status":
		st, err := task.ParseStatus(value)
		if err != nil {
			return err.Error()
		}
		if q.Status != nil && *q.Status != st {
			q.Status = &st
			return fmt.Sprintf("duplicate status filter, using %q", st)
		}
		q.Status = &st
	case "priority":
		p, err := task.ParsePriority(value)
		if err != nil {
			return err.Error()
		}
		if q.Priority != nil && *q.Priority != p {
			q.Priority = &p
			return fmt.Sprintf("duplicate priority filter, using %q", p)
		}
		q.Priority = &p
	default:
		return fmt.Sprintf("unknown filter key %q, must be status or priority", key)
	}
	return ""
}

func (q *Query) applySort(arg string) string {
	field, order, hasOrder := strings.Cut(arg, ":")
	field = strings.ToLower(field)

	if !validSortField(field) {
		return fmt.Sprintf("invalid sort field %q, must be one of: %s",
			field, strings.Join(SortFields, ", "))
	}
	q.SortField = field

	q.SortOrder = OrderDesc
	if hasOrder {
		switch strings.ToLower(order) {
		case "asc":
			q.SortOrder = OrderAsc
		case "desc":
			q.SortOrder = OrderDesc
		default:
			return fmt.Sprintf("invalid sort order %q, using desc", order)
		}
	}
	return ""
}

func validSortField(field string) bool {
	for _, f := range SortFields {
		if field == f {
			return true
		}
	}
	return false
}

// Filter returns the combined server-side filter document. Both predicates,
// when present, go into a single filter rather than being intersected
// client-side.
func (q *Query) Filter() bson.D {
	filter := bson.D{}
	if q.Status != nil {
		filter = append(filter, bson.E{Key: "status", Value: *q.Status})
	}
	if q.Priority != nil {
		filter = append(filter, bson.E{Key: "priority", Value: *q.Priority})
	}
	return filter
}

// SortDoc returns the server-side sort document, or nil when the requested
// ordering cannot be expressed in the store (priority rank, due-date
// null placement) and must be applied client-side via SortTasks.
// With no sort requested, listings default to newest first.
func (q *Query) SortDoc() bson.D {
	switch q.SortField {
	case "":
		return bson.D{{Key: "created_at", Value: -1}}
	case "title", "status", "created_at":
		dir := -1
		if q.SortOrder == OrderAsc {
			dir = 1
		}
		return bson.D{{Key: q.SortField, Value: dir}}
	default:
		return nil
	}
}

// NeedsClientSort reports whether the ordering has to be applied in memory.
func (q *Query) NeedsClientSort() bool {
	return q.SortField == "priority" || q.SortField == "due_date"
}

// SortTasks applies the client-side orderings: priority by rank
// (High > Medium > Low) and due_date with unset dates always sorting
// last. Other fields are left to the store.
func (q *Query) SortTasks(tasks []task.Task) {
	if !q.NeedsClientSort() {
		return
	}
	desc := q.SortOrder == OrderDesc

	switch q.SortField {
	case "priority":
		sort.SliceStable(tasks, func(i, j int) bool {
			if desc {
				return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
			}
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		})
	case "due_date":
		sort.SliceStable(tasks, func(i, j int) bool {
			return lessDueDate(tasks[i].DueDate, tasks[j].DueDate, desc)
		})
	}
}

// lessDueDate compares stored due date strings. Unset dates sort after set
// ones in either direction so tasks without a deadline never crowd the top
// of a listing.
func lessDueDate(a, b string, desc bool) bool {
	da, aok := parseDue(a)
	db, bok := parseDue(b)

	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	if desc {
		return da.After(db)
	}
	return da.Before(db)
}

func parseDue(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(task.DueDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Describe renders the applied filters and sort for display above a
// listing, or "" when the query is empty.
func (q *Query) Describe() string {
	var parts []string
	if q.Status != nil {
		parts = append(parts, fmt.Sprintf("Status: %s", *q.Status))
	}
	if q.Priority != nil {
		parts = append(parts, fmt.Sprintf("Priority: %s", *q.Priority))
	}
	var b strings.Builder
	if len(parts) > 0 {
		fmt.Fprintf(&b, "Filters applied: %s", strings.Join(parts, ", "))
	}
	if q.SortField != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Sorted by: %s (%sending)", q.SortField, q.SortOrder)
	}
	return b.String()
}
