package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/phrazzld/task-api/internal/validation"
)

// Operation names used in logs and TaskServiceError.
const (
	opAdd     = "add"
	opUpdate  = "update"
	opDelete  = "delete"
	opGetAll  = "get_all"
	opGetByID = "get_by_id"
)

// Result is the outcome of a task mutation.
type Result struct {
	// Success is true when the operation was applied.
	Success bool
	// Error is the user-facing failure message; empty on success.
	Error string
	// Err is the failure itself, for errors.Is/errors.As.
	Err error
	// Task is the stored task after the operation, when there is one.
	Task *domain.Task
}

func succeeded(task *domain.Task) Result {
	return Result{Success: true, Task: task}
}

func failed(err error) Result {
	var svcErr *TaskServiceError
	if errors.As(err, &svcErr) {
		return Result{Error: svcErr.Message, Err: err}
	}
	return Result{Error: err.Error(), Err: err}
}

// TaskService provides task operations with the business rules applied.
type TaskService interface {
	// GetAll returns every task. Failures are logged and yield an empty slice.
	GetAll(ctx context.Context) []domain.Task

	// GetByID returns the task with id, or nil if it is missing or cannot be read.
	GetByID(ctx context.Context, id uuid.UUID) *domain.Task

	// Add validates task, rejects duplicate names, assigns a new ID and stores it.
	// The task's name is trimmed in place.
	Add(ctx context.Context, task *domain.Task) Result

	// Update replaces name, priority and status of the task with id.
	Update(ctx context.Context, id uuid.UUID, task *domain.Task) Result

	// Delete removes the task with id. Only completed tasks can be deleted.
	Delete(ctx context.Context, id uuid.UUID) Result
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo   store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the repository is nil.
func NewTaskService(repo store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if repo == nil {
		return nil, fmt.Errorf("task repository cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		repo:   repo,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// GetAll implements TaskService.GetAll
func (s *taskServiceImpl) GetAll(ctx context.Context) (tasks []domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while listing tasks", "operation", opGetAll, "panic", fmt.Sprint(r))
			tasks = []domain.Task{}
		}
	}()

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to list tasks", "operation", opGetAll, "error", err)
		return []domain.Task{}
	}
	if tasks == nil {
		return []domain.Task{}
	}
	return tasks
}

// GetByID implements TaskService.GetByID
func (s *taskServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while retrieving task",
				"operation", opGetByID,
				"task_id", id,
				"panic", fmt.Sprint(r))
			task = nil
		}
	}()

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", "task_id", id)
		} else {
			log.Error("failed to retrieve task", "operation", opGetByID, "task_id", id, "error", err)
		}
		return nil
	}
	return task
}

// Add implements TaskService.Add
func (s *taskServiceImpl) Add(ctx context.Context, task *domain.Task) (res Result) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer s.recoverFault(log, opAdd, msgUnexpectedAdd, &res)

	if err := validation.ValidateTask(task); err != nil {
		log.Debug("task rejected by validation", "operation", opAdd, "reason", err.Error())
		return failed(err)
	}

	exists, err := s.repo.Exists(ctx, task.Name, nil)
	if err != nil {
		return s.unexpected(log, opAdd, msgUnexpectedAdd, fmt.Errorf("failed to check task name: %w", err))
	}
	if exists {
		log.Debug("duplicate task name", "operation", opAdd, "name", task.Name)
		return failed(ErrTaskNameExists)
	}

	task.ID = uuid.New()
	if err := s.repo.Add(ctx, task); err != nil {
		return s.unexpected(log, opAdd, msgUnexpectedAdd, fmt.Errorf("failed to store task: %w", err))
	}

	log.Info("task added", "task_id", task.ID, "priority", task.Priority, "status", task.Status.String())
	return succeeded(task)
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(ctx context.Context, id uuid.UUID, task *domain.Task) (res Result) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer s.recoverFault(log, opUpdate, msgUnexpectedUpdate, &res)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", "operation", opUpdate, "task_id", id)
			return failed(ErrTaskNotFound)
		}
		return s.unexpected(log, opUpdate, msgUnexpectedUpdate, fmt.Errorf("failed to look up task: %w", err))
	}

	if err := validation.ValidateTask(task); err != nil {
		log.Debug("task rejected by validation", "operation", opUpdate, "task_id", id, "reason", err.Error())
		return failed(err)
	}

	exists, err := s.repo.Exists(ctx, task.Name, &id)
	if err != nil {
		return s.unexpected(log, opUpdate, msgUnexpectedUpdate, fmt.Errorf("failed to check task name: %w", err))
	}
	if exists {
		log.Debug("duplicate task name", "operation", opUpdate, "task_id", id, "name", task.Name)
		return failed(ErrTaskNameExists)
	}

	task.ID = id
	if err := s.repo.Update(ctx, task); err != nil {
		return s.unexpected(log, opUpdate, msgUnexpectedUpdate, fmt.Errorf("failed to store task: %w", err))
	}

	log.Info("task updated", "task_id", id, "priority", task.Priority, "status", task.Status.String())
	return succeeded(task)
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, id uuid.UUID) (res Result) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer s.recoverFault(log, opDelete, msgUnexpectedDelete, &res)

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", "operation", opDelete, "task_id", id)
			return failed(ErrTaskNotFound)
		}
		return s.unexpected(log, opDelete, msgUnexpectedDelete, fmt.Errorf("failed to look up task: %w", err))
	}

	if !task.IsCompleted() {
		log.Debug("refusing to delete unfinished task", "task_id", id, "status", task.Status.String())
		return failed(ErrTaskNotCompleted)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.unexpected(log, opDelete, msgUnexpectedDelete, fmt.Errorf("failed to delete task: %w", err))
	}

	log.Info("task deleted", "task_id", id)
	return succeeded(nil)
}

// unexpected logs err and converts it into a failed Result with the generic message.
func (s *taskServiceImpl) unexpected(log *slog.Logger, op, message string, err error) Result {
	log.Error("unexpected task service failure", "operation", op, "error", err)
	return failed(NewTaskServiceError(op, message, err))
}

// recoverFault turns a panic inside an operation into a failed Result.
// It must be deferred directly by the operation.
func (s *taskServiceImpl) recoverFault(log *slog.Logger, op, message string, res *Result) {
	if r := recover(); r != nil {
		*res = s.unexpected(log, op, message, fmt.Errorf("panic: %v", r))
	}
}
