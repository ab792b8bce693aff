package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// Request errors detected by the handlers before the service is called.
var (
	// ErrInvalidTaskID is returned when the {id} path segment is not a UUID.
	ErrInvalidTaskID = errors.New("Invalid task ID format")

	// ErrInvalidRequestFormat is returned when the request body is not valid task JSON.
	ErrInvalidRequestFormat = errors.New("Invalid request format")
)

// genericErrorMessage is sent for errors that have no client-safe message.
const genericErrorMessage = "An unexpected error occurred"

// userFacingErrors are errors whose own text is safe to send to clients.
// Order matters: the first match wins.
var userFacingErrors = []error{
	domain.ErrTaskNil,
	domain.ErrTaskNameRequired,
	domain.ErrTaskNameInvalid,
	domain.ErrInvalidTaskStatus,
	domain.ErrTaskPriorityOutOfRange,
	service.ErrTaskNotFound,
	service.ErrTaskNameExists,
	service.ErrTaskNotCompleted,
	ErrInvalidTaskID,
	ErrInvalidRequestFormat,
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// A failed task mutation is always a bad request, including a mutation of
// an unknown task and one that failed unexpectedly inside the service.
func MapErrorToStatusCode(err error) int {
	var svcErr *service.TaskServiceError

	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Unexpected failures inside a mutation, whatever they wrap
	case errors.As(err, &svcErr):
		return http.StatusBadRequest

	// Not found errors from a direct lookup
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case domain.IsValidationError(err),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrTaskNameExists),
		errors.Is(err, service.ErrTaskNotCompleted),
		errors.Is(err, ErrInvalidTaskID),
		errors.Is(err, ErrInvalidRequestFormat),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var svcErr *service.TaskServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}

	for _, known := range userFacingErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	if errors.Is(err, store.ErrNotFound) {
		return service.ErrTaskNotFound.Error()
	}
	return genericErrorMessage
}

// HandleAPIError writes the status code and safe message for err and logs
// the full error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
