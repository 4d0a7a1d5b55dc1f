package task

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateDocumentValid(t *testing.T) {
	task := New("Ship release", "cut the tag", "2026-02-01", PriorityHigh)
	task.ID = primitive.NewObjectID()

	if err := task.ValidateDocument(); err != nil {
		t.Fatalf("ValidateDocument: %v", err)
	}
}

func TestValidateDocumentRejectsBadEnum(t *testing.T) {
	task := New("Ship release", "", "", PriorityHigh)
	task.ID = primitive.NewObjectID()
	task.Status = "Done" // not a valid status

	err := task.ValidateDocument()
	if err == nil {
		t.Fatal("ValidateDocument: expected error for invalid status")
	}
	if !strings.Contains(err.Error(), "status") {
		t.Errorf("error should name the failing field, got: %v", err)
	}
}

func TestValidateDocumentRejectsBadDueDate(t *testing.T) {
	task := New("Ship release", "", "", PriorityHigh)
	task.ID = primitive.NewObjectID()
	task.DueDate = "01/02/2026" // not the stored layout

	if err := task.ValidateDocument(); err == nil {
		t.Fatal("ValidateDocument: expected error for malformed due date")
	}
}

func TestValidateDocumentRejectsEmptyTitle(t *testing.T) {
	task := New("x", "", "", PriorityLow)
	task.ID = primitive.NewObjectID()
	task.Title = ""

	if err := task.ValidateDocument(); err == nil {
		t.Fatal("ValidateDocument: expected error for empty title")
	}
}
