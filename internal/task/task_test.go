// Package task tests the task model and its validation rules.
package task

import (
	"strings"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"exact", "Pending", StatusPending, false},
		{"lowercase", "pending", StatusPending, false},
		{"uppercase", "COMPLETED", StatusCompleted, false},
		{"two words", "in progress", StatusInProgress, false},
		{"mixed case two words", "In PROGRESS", StatusInProgress, false},
		{"padded", "  pending  ", StatusPending, false},
		{"invalid", "cancelled", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q): expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
	}{
		{"exact", "High", PriorityHigh, false},
		{"lowercase", "low", PriorityLow, false},
		{"uppercase", "MEDIUM", PriorityMedium, false},
		{"invalid", "urgent", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePriority(%q): expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() {
		t.Error("High should rank above Medium")
	}
	if PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Error("Medium should rank above Low")
	}
	if Priority("Bogus").Rank() >= PriorityLow.Rank() {
		t.Error("unknown priority should rank below Low")
	}
}

func TestNormalizeDueDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty stays empty", "", "", false},
		{"iso", "2026-03-15", "2026-03-15", false},
		{"slashes", "2026/03/15", "2026-03-15", false},
		{"day first", "15-03-2026", "2026-03-15", false},
		{"rfc3339", "2026-03-15T10:30:00Z", "2026-03-15", false},
		{"padded", "  2026-03-15 ", "2026-03-15", false},
		{"garbage", "not-a-date", "", true},
		{"bad month", "2026-13-01", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDueDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeDueDate(%q): expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDueDate(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDueDate(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	before := time.Now().UTC()
	task := New("  Write report  ", "quarterly numbers", "", "")

	if task.Title != "Write report" {
		t.Errorf("Title: got %q, want trimmed", task.Title)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority: got %q, want Medium default", task.Priority)
	}
	if task.Status != StatusPending {
		t.Errorf("Status: got %q, want Pending default", task.Status)
	}
	if task.CreatedAt.Before(before) {
		t.Error("CreatedAt should be set to now")
	}
	if !task.ID.IsZero() {
		t.Error("ID should be unset before insert")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Task {
		return New("Title", "desc", "2026-01-02", PriorityHigh)
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr string
	}{
		{"valid", func(*Task) {}, ""},
		{"empty title", func(t *Task) { t.Title = "   " }, "title is required"},
		{"long title", func(t *Task) { t.Title = strings.Repeat("x", MaxTitleLen+1) }, "title exceeds"},
		{"long description", func(t *Task) { t.Description = strings.Repeat("x", MaxDescriptionLen+1) }, "description exceeds"},
		{"bad due date", func(t *Task) { t.DueDate = "tomorrow" }, "due date"},
		{"bad priority", func(t *Task) { t.Priority = "Urgent" }, "invalid priority"},
		{"bad status", func(t *Task) { t.Status = "Done" }, "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid()
			tt.mutate(task)
			err := task.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate: expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate: got %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestUpdates(t *testing.T) {
	if !(Updates{}).IsEmpty() {
		t.Error("zero Updates should be empty")
	}

	title := "  New title "
	emptyDesc := ""
	due := "2026-06-01"
	priority := PriorityLow
	status := StatusInProgress

	u := Updates{
		Title:       &title,
		Description: &emptyDesc,
		DueDate:     &due,
		Priority:    &priority,
		Status:      &status,
	}
	if u.IsEmpty() {
		t.Error("populated Updates should not be empty")
	}

	task := New("Old", "old desc", "", PriorityHigh)
	u.Apply(task)

	if task.Title != "New title" {
		t.Errorf("Title: got %q, want trimmed new title", task.Title)
	}
	if task.Description != "" {
		t.Errorf("Description: got %q, want cleared", task.Description)
	}
	if task.DueDate != due {
		t.Errorf("DueDate: got %q, want %q", task.DueDate, due)
	}
	if task.Priority != PriorityLow {
		t.Errorf("Priority: got %q, want Low", task.Priority)
	}
	if task.Status != StatusInProgress {
		t.Errorf("Status: got %q, want In Progress", task.Status)
	}
}

func TestDisplay(t *testing.T) {
	task := New("Title", "", "", PriorityMedium)
	out := task.Display()

	if !strings.Contains(out, "ID: (unsaved)") {
		t.Errorf("Display should mark unsaved tasks, got:\n%s", out)
	}
	if !strings.Contains(out, "Due Date: Not set") {
		t.Errorf("Display should show unset due dates, got:\n%s", out)
	}
	if !strings.Contains(out, "Status: Pending") {
		t.Errorf("Display should include status, got:\n%s", out)
	}
}
