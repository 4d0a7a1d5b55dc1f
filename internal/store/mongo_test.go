package store

import (
	"errors"
	"testing"

	"taskman/internal/task"
)

func TestParseID(t *testing.T) {
	if _, err := parseID("65b2f0a1c9e77d3f4a1b2c3d"); err != nil {
		t.Errorf("valid hex id: %v", err)
	}
	if _, err := parseID("short"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("short id: got %v, want ErrInvalidID", err)
	}
	if _, err := parseID(""); !errors.Is(err, ErrInvalidID) {
		t.Errorf("empty id: got %v, want ErrInvalidID", err)
	}
}

func TestUpdateDoc(t *testing.T) {
	if doc := updateDoc(task.Updates{}); len(doc) != 0 {
		t.Errorf("empty patch: got %v, want empty $set", doc)
	}

	title := "t"
	desc := ""
	due := "2026-01-01"
	priority := task.PriorityHigh
	status := task.StatusInProgress

	doc := updateDoc(task.Updates{
		Title:       &title,
		Description: &desc,
		DueDate:     &due,
		Priority:    &priority,
		Status:      &status,
	})

	if len(doc) != 5 {
		t.Fatalf("full patch: got %d fields: %v", len(doc), doc)
	}
	if doc["title"] != "t" {
		t.Errorf("title: got %v", doc["title"])
	}
	if doc["description"] != "" {
		t.Errorf("empty description should still be set, got %v", doc["description"])
	}
	if doc["status"] != task.StatusInProgress {
		t.Errorf("status: got %v", doc["status"])
	}
}
