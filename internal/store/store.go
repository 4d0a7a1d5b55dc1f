// Package store persists tasks in a document collection.
package store

import (
	"context"
	"errors"

	"taskman/internal/query"
	"taskman/internal/task"
)

var (
	// ErrNotFound is returned when no task matches the given ID.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidID is returned when an ID is not a valid object ID.
	ErrInvalidID = errors.New("invalid task id")
)

// TaskStore is the document collection the commands operate on. Calls are
// plain insert/find/update/delete with no retries, transactions, or caching.
type TaskStore interface {
	// Insert stores a new task and fills in its generated ID.
	Insert(ctx context.Context, t *task.Task) error
	// Get returns the task with the given hex ID.
	Get(ctx context.Context, id string) (*task.Task, error)
	// Find returns tasks matching the query, ordered per its sort spec.
	Find(ctx context.Context, q *query.Query) ([]task.Task, error)
	// Update applies a partial patch to the task with the given hex ID.
	Update(ctx context.Context, id string, u task.Updates) error
	// Delete removes the task with the given hex ID.
	Delete(ctx context.Context, id string) error
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
