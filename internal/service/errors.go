package service

import (
	"errors"
	"fmt"
)

// Business-rule errors returned by TaskService. Their messages are shown to
// API clients verbatim.
//
// Error handling principles:
// 1. Validation failures surface as the domain validation errors
// 2. Rule violations surface as the sentinels below
// 3. Any other failure is wrapped in a TaskServiceError carrying a generic message
// 4. The API layer maps results to HTTP status codes
var (
	// ErrTaskNotFound indicates no task exists with the requested ID.
	ErrTaskNotFound = errors.New("Task not found")

	// ErrTaskNameExists indicates another task already uses the name,
	// comparing trimmed names case-insensitively.
	ErrTaskNameExists = errors.New("Task name already exists")

	// ErrTaskNotCompleted indicates a delete of a task whose status is not Completed.
	ErrTaskNotCompleted = errors.New("Only completed tasks can be deleted")
)

// Generic messages for unexpected failures, by operation.
const (
	msgUnexpectedAdd    = "An unexpected error occurred while adding the task."
	msgUnexpectedUpdate = "An unexpected error occurred while updating the task."
	msgUnexpectedDelete = "An unexpected error occurred while deleting the task."
)

// TaskServiceError wraps an unexpected failure inside a task operation.
// Message is safe to show to clients; Err is only logged.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
