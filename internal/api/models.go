package api

import (
	"github.com/phrazzld/task-api/internal/domain"
)

// TaskRequest defines the payload for creating and updating a task.
// Any id in the body is ignored; ids are assigned by the server.
type TaskRequest struct {
	Name string `json:"name"`

	// Priority defaults to domain.DefaultPriority when omitted.
	Priority *int `json:"priority,omitempty"`

	// Status accepts the numeric value or the status name.
	Status domain.TaskStatus `json:"status"`
}

// ToTask converts the request into a domain task without an ID.
func (r TaskRequest) ToTask() *domain.Task {
	task := domain.NewTask(r.Name)
	if r.Priority != nil {
		task.Priority = *r.Priority
	}
	task.Status = r.Status
	return task
}
