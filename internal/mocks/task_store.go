package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Methods without a custom function fall through to an in-memory store, so a
// test only overrides the calls it wants to fail or observe.
type MockTaskStore struct {
	// Custom behavior functions
	GetAllFn  func(ctx context.Context) ([]domain.Task, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	AddFn     func(ctx context.Context, task *domain.Task) error
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	ExistsFn  func(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// Backing is used for every method without a custom function.
	Backing *memory.TaskStore

	// Call tracking for verification
	mu    sync.Mutex
	calls map[string]int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a MockTaskStore backed by an empty in-memory store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{Backing: memory.NewTaskStore()}
}

func (m *MockTaskStore) track(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockTaskStore) backing() *memory.TaskStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Backing == nil {
		m.Backing = memory.NewTaskStore()
	}
	return m.Backing
}

// Calls returns how many times method was invoked.
func (m *MockTaskStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// GetAll implements the store.TaskStore interface
func (m *MockTaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	m.track("GetAll")
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return m.backing().GetAll(ctx)
}

// GetByID implements the store.TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	m.track("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.backing().GetByID(ctx, id)
}

// Add implements the store.TaskStore interface
func (m *MockTaskStore) Add(ctx context.Context, task *domain.Task) error {
	m.track("Add")
	if m.AddFn != nil {
		return m.AddFn(ctx, task)
	}
	return m.backing().Add(ctx, task)
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	m.track("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.backing().Update(ctx, task)
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.track("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.backing().Delete(ctx, id)
}

// Exists implements the store.TaskStore interface
func (m *MockTaskStore) Exists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	m.track("Exists")
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, name, excludeID)
	}
	return m.backing().Exists(ctx, name, excludeID)
}
