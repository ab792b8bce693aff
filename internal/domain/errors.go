package domain

import "errors"

// Task validation errors. Their messages are returned to API clients
// verbatim, so they are kept in the user-facing form.
var (
	// ErrTaskNil is returned when no task was supplied for validation.
	ErrTaskNil = errors.New("Task cannot be null")

	// ErrTaskNameRequired is returned when the task name is empty or only whitespace.
	ErrTaskNameRequired = errors.New("Task name is required")

	// ErrTaskNameInvalid is returned when the task name contains characters
	// outside letters, digits, whitespace, underscores and hyphens.
	ErrTaskNameInvalid = errors.New("Task name cannot contain special characters")

	// ErrInvalidTaskStatus is returned when a status is not one of the known values.
	ErrInvalidTaskStatus = errors.New("Invalid task status")

	// ErrTaskPriorityOutOfRange is returned when the priority is outside [MinPriority, MaxPriority].
	ErrTaskPriorityOutOfRange = errors.New("Priority must be between 1 and 100")
)

// IsValidationError reports whether err is one of the task validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTaskNil) ||
		errors.Is(err, ErrTaskNameRequired) ||
		errors.Is(err, ErrTaskNameInvalid) ||
		errors.Is(err, ErrInvalidTaskStatus) ||
		errors.Is(err, ErrTaskPriorityOutOfRange)
}
