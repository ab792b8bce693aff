package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Priority bounds, inclusive.
const (
	MinPriority     = 1
	MaxPriority     = 100
	DefaultPriority = MinPriority
)

// TaskStatus represents the progress of a task.
// It is encoded as a JSON number; names are accepted when decoding.
type TaskStatus int

// Possible task status values
const (
	TaskStatusNotStarted TaskStatus = iota
	TaskStatusInProgress
	TaskStatusCompleted
)

var taskStatusNames = map[TaskStatus]string{
	TaskStatusNotStarted: "NotStarted",
	TaskStatusInProgress: "InProgress",
	TaskStatusCompleted:  "Completed",
}

// IsValid reports whether s is one of the defined status values.
func (s TaskStatus) IsValid() bool {
	_, ok := taskStatusNames[s]
	return ok
}

// String returns the status name, or a numeric form for unknown values.
func (s TaskStatus) String() string {
	if name, ok := taskStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TaskStatus(%d)", int(s))
}

// UnmarshalJSON accepts either the numeric value or the status name.
// Unknown numbers are kept as-is so that validation can reject them.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = TaskStatus(n)
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("task status must be a number or a name: %w", err)
	}
	parsed, err := ParseTaskStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseTaskStatus converts a status name (case-insensitive) to a TaskStatus.
func ParseTaskStatus(name string) (TaskStatus, error) {
	for status, statusName := range taskStatusNames {
		if strings.EqualFold(statusName, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return 0, ErrInvalidTaskStatus
}

// Task is a to-do item tracked by the API.
type Task struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Priority int        `json:"priority"`
	Status   TaskStatus `json:"status"`
}

// NewTask creates a task with the default priority and NotStarted status.
// The ID is left empty; it is assigned when the task is stored.
func NewTask(name string) *Task {
	return &Task{
		Name:     name,
		Priority: DefaultPriority,
		Status:   TaskStatusNotStarted,
	}
}

// IsCompleted reports whether the task may be deleted.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// NormalizedName is the form used for duplicate-name comparison.
func NormalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
