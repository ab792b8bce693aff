package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements the store.TaskStore interface with an in-process slice.
// One instance is expected per process; all access goes through mu.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// GetAll returns a copy of every stored task in insertion order.
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// GetByID returns a copy of the task with the given ID.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}
	task := s.tasks[i]
	return &task, nil
}

// Add appends a copy of task.
func (s *TaskStore) Add(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return store.NewStoreError("task", "add", "task cannot be nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, *task)
	logger.FromContext(ctx).Debug("task added to memory store",
		"task_id", task.ID,
		"task_count", len(s.tasks))
	return nil
}

// Update copies the mutable fields of task onto the stored task with the same ID.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return store.NewStoreError("task", "update", "task cannot be nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(task.ID)
	if i < 0 {
		return nil
	}
	existing := &s.tasks[i]
	existing.Name = task.Name
	existing.Priority = task.Priority
	existing.Status = task.Status
	return nil
}

// Delete removes the task with the given ID, preserving the order of the rest.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Exists reports whether any task other than excludeID has the same
// normalized name.
func (s *TaskStore) Exists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := domain.NormalizedName(name)
	for _, t := range s.tasks {
		if excludeID != nil && t.ID == *excludeID {
			continue
		}
		if domain.NormalizedName(t.Name) == want {
			return true, nil
		}
	}
	return false, nil
}

// indexOf returns the slice index of the task with id, or -1.
// Callers must hold mu.
func (s *TaskStore) indexOf(id uuid.UUID) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
