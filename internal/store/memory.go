package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskman/internal/query"
	"taskman/internal/task"
)

// Memory is an in-process TaskStore with the same contract as Mongo.
// It backs tests and the demo TUI.
type Memory struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]task.Task
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tasks: make(map[primitive.ObjectID]task.Task)}
}

// Insert stores a copy of the task and fills in a generated ID.
func (m *Memory) Insert(_ context.Context, t *task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	m.tasks[t.ID] = *t
	return nil
}

// Get returns the task with the given hex ID.
func (m *Memory) Get(_ context.Context, id string) (*task.Task, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// Find returns tasks matching the query in the query's order.
func (m *Memory) Find(_ context.Context, q *query.Query) ([]task.Task, error) {
	m.mu.RLock()
	tasks := make([]task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if q.Status != nil && t.Status != *q.Status {
			continue
		}
		if q.Priority != nil && t.Priority != *q.Priority {
			continue
		}
		tasks = append(tasks, t)
	}
	m.mu.RUnlock()

	sortLikeStore(tasks, q)
	q.SortTasks(tasks)
	return tasks, nil
}

// Update applies a partial patch to the stored task.
func (m *Memory) Update(_ context.Context, id string, u task.Updates) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[oid]
	if !ok {
		return ErrNotFound
	}
	u.Apply(&t)
	m.tasks[oid] = t
	return nil
}

// Delete removes the task with the given hex ID.
func (m *Memory) Delete(_ context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[oid]; !ok {
		return ErrNotFound
	}
	delete(m.tasks, oid)
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *Memory) Close(context.Context) error { return nil }

// Len returns the number of stored tasks.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks)
}

// sortLikeStore mirrors the orderings Mongo applies server-side, so both
// implementations return listings in the same order.
func sortLikeStore(tasks []task.Task, q *query.Query) {
	sortDoc := q.SortDoc()
	if sortDoc == nil {
		return
	}
	field := sortDoc[0].Key
	asc := sortDoc[0].Value == 1

	less := func(a, b *task.Task) bool {
		switch field {
		case "title":
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case "status":
			return a.Status < b.Status
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return false
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if asc {
			return less(&tasks[i], &tasks[j])
		}
		return less(&tasks[j], &tasks[i])
	})
}
