package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/api/shared"
)

// taskIDParam is the path parameter holding the task ID.
const taskIDParam = "id"

// getPathUUID extracts a UUID from the URL path parameters.
// A missing or malformed value yields ErrInvalidTaskID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", ErrInvalidTaskID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidTaskID, err)
	}

	return id, nil
}

// decodeTaskRequest reads a TaskRequest from the body.
// Decoding failures yield ErrInvalidRequestFormat.
func decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, error) {
	var req TaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		return TaskRequest{}, fmt.Errorf("%w: %w", ErrInvalidRequestFormat, err)
	}
	return req, nil
}
