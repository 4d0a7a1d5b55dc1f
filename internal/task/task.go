// Package task defines the task document model and its validation rules.
package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status represents a task status.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the valid statuses in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseStatus normalizes user input into a Status. Matching is
// case-insensitive ("in progress", "IN PROGRESS" both work).
func ParseStatus(s string) (Status, error) {
	normalized := titleCase(s)
	for _, st := range Statuses() {
		if normalized == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q, must be one of: %s", s, joinStatuses())
}

// Priority represents a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists the valid priorities in rank order, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority normalizes user input into a Priority, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	normalized := titleCase(s)
	for _, p := range Priorities() {
		if normalized == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q, must be one of: %s", s, joinPriorities())
}

// Rank returns the numeric rank for sorting: High=3, Medium=2, Low=1.
// Unknown priorities rank 0 so they sort after Low ascending.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

const (
	// MaxTitleLen is the maximum title length in runes after trimming.
	MaxTitleLen = 200
	// MaxDescriptionLen is the maximum description length in runes.
	MaxDescriptionLen = 1000
)

// Task represents a single task document in the store.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	DueDate     string             `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Priority    Priority           `bson:"priority" json:"priority"`
	Status      Status             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// New creates a task with defaults applied: Medium priority if none given,
// Pending status, CreatedAt now in UTC. The title is trimmed.
func New(title, description, dueDate string, priority Priority) *Task {
	if priority == "" {
		priority = PriorityMedium
	}
	return &Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate performs the basic type/enum/length checks on the task.
func (t *Task) Validate() error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("title exceeds %d characters", MaxTitleLen)
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLen)
	}
	if t.DueDate != "" {
		if _, err := time.Parse(DueDateLayout, t.DueDate); err != nil {
			return fmt.Errorf("due date %q is not in %s format", t.DueDate, DueDateLayout)
		}
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// Display renders the task as a multi-line record for terminal output.
func (t *Task) Display() string {
	due := t.DueDate
	if due == "" {
		due = "Not set"
	}
	id := "(unsaved)"
	if !t.ID.IsZero() {
		id = t.ID.Hex()
	}
	return fmt.Sprintf(
		"ID: %s\nTitle: %s\nDescription: %s\nDue Date: %s\nPriority: %s\nStatus: %s\nCreated: %s\n%s",
		id, t.Title, t.Description, due, t.Priority, t.Status,
		t.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		strings.Repeat("-", 50),
	)
}

// Summary renders a one-line form used in compact listings.
func (t *Task) Summary() string {
	id := "(unsaved)"
	if !t.ID.IsZero() {
		id = t.ID.Hex()
	}
	return fmt.Sprintf("[%s] (%s) %s - %s", id, t.Priority, t.Title, t.Status)
}

// DueDateLayout is the stored due date format.
const DueDateLayout = "2006-01-02"

// dueDateLayouts are the accepted input layouts, tried in order.
var dueDateLayouts = []string{
	DueDateLayout,
	"2006/01/02",
	"02-01-2006",
	time.RFC3339,
}

// NormalizeDueDate parses a user-supplied due date and returns it in the
// stored YYYY-MM-DD form. Empty input stays empty.
func NormalizeDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range dueDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(DueDateLayout), nil
		}
	}
	return "", fmt.Errorf("due date %q is not a valid date (expected e.g. %s)", s, DueDateLayout)
}

// Updates is a partial patch of task fields. Nil fields are untouched;
// a non-nil empty Description clears the description.
type Updates struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	Status      *Status
}

// IsEmpty returns true if the patch changes nothing.
func (u Updates) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil &&
		u.Priority == nil && u.Status == nil
}

// Apply writes the patch onto a task in place.
func (u Updates) Apply(t *Task) {
	if u.Title != nil {
		t.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
}

// titleCase upper-cases the first letter of each space-separated word,
// matching how the original records store enum values.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func joinStatuses() string {
	parts := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

func joinPriorities() string {
	parts := make([]string, 0, len(Priorities()))
	for _, p := range Priorities() {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, ", ")
}
