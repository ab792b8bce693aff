package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// GetAll returns a snapshot of all stored tasks in insertion order.
	// Modifying the returned slice does not affect the store.
	GetAll(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Add appends a task to the store. The task must already carry its ID.
	Add(ctx context.Context, task *domain.Task) error

	// Update copies name, priority and status onto the stored task with the
	// same ID. Updating a task that does not exist is a no-op.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID. Deleting a missing task is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a task with the given name exists, comparing
	// trimmed names case-insensitively. When excludeID is non-nil, the task
	// with that ID is ignored.
	Exists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}
