// Package validation holds the rule-set a task must satisfy before it is
// stored. Rules are declared as struct tags and evaluated with
// go-playground/validator; the first failing rule decides the error.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/domain"
)

var taskNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s_-]+$`)

// taskRules mirrors the validated fields of domain.Task.
// Field order is rule order: the first failing field wins.
type taskRules struct {
	Name     string            `validate:"required,taskname"`
	Status   domain.TaskStatus `validate:"taskstatus"`
	Priority int               `validate:"min=1,max=100"`
}

// Global validator instance for reuse; safe for concurrent use.
var validate = newTaskValidate()

func newTaskValidate() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("taskname", func(fl validator.FieldLevel) bool {
		return taskNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		status, ok := fl.Field().Interface().(domain.TaskStatus)
		return ok && status.IsValid()
	})
	return v
}

// ValidateTask checks task against the task rules and returns the first
// violation as one of the domain validation errors, or nil.
//
// The task name is trimmed in place before any rule is applied.
func ValidateTask(task *domain.Task) error {
	if task == nil {
		return domain.ErrTaskNil
	}

	task.Name = strings.TrimSpace(task.Name)

	err := validate.Struct(taskRules{
		Name:     task.Name,
		Status:   task.Status,
		Priority: task.Priority,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return ruleError(fieldErrs[0])
}

// ruleError maps a failed field rule to its user-facing error.
func ruleError(fe validator.FieldError) error {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return domain.ErrTaskNameRequired
		}
		return domain.ErrTaskNameInvalid
	case "Status":
		return domain.ErrInvalidTaskStatus
	case "Priority":
		return domain.ErrTaskPriorityOutOfRange
	default:
		return fe
	}
}
