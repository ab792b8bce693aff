package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTaskService implements service.TaskService with function fields.
type mockTaskService struct {
	getAllFn  func(ctx context.Context) []domain.Task
	getByIDFn func(ctx context.Context, id uuid.UUID) *domain.Task
	addFn     func(ctx context.Context, task *domain.Task) service.Result
	updateFn  func(ctx context.Context, id uuid.UUID, task *domain.Task) service.Result
	deleteFn  func(ctx context.Context, id uuid.UUID) service.Result
}

func (m *mockTaskService) GetAll(ctx context.Context) []domain.Task {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return []domain.Task{}
}

func (m *mockTaskService) GetByID(ctx context.Context, id uuid.UUID) *domain.Task {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil
}

func (m *mockTaskService) Add(ctx context.Context, task *domain.Task) service.Result {
	if m.addFn != nil {
		return m.addFn(ctx, task)
	}
	return service.Result{Success: true, Task: task}
}

func (m *mockTaskService) Update(ctx context.Context, id uuid.UUID, task *domain.Task) service.Result {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, task)
	}
	return service.Result{Success: true, Task: task}
}

func (m *mockTaskService) Delete(ctx context.Context, id uuid.UUID) service.Result {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return service.Result{Success: true}
}

// newTestRouter mounts a TaskHandler for svc under /api/task.
func newTestRouter(t *testing.T, svc service.TaskService) http.Handler {
	t.Helper()
	log, _ := testutils.NewTestLogger()
	h := NewTaskHandler(svc, log)
	r := chi.NewRouter()
	r.Route("/api/task", h.Routes)
	return r
}

// newServiceRouter mounts a TaskHandler backed by a real service over an
// empty in-memory store.
func newServiceRouter(t *testing.T) http.Handler {
	t.Helper()
	log, _ := testutils.NewTestLogger()
	svc, err := service.NewTaskService(memory.NewTaskStore(), log)
	require.NoError(t, err)
	return newTestRouter(t, svc)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeTask(t *testing.T, w *httptest.ResponseRecorder) domain.Task {
	t.Helper()
	var task domain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestNewTaskHandlerPanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() {
		NewTaskHandler(nil, nil)
	})
}

func TestTaskHandlerCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
		check          func(t *testing.T, task domain.Task)
	}{
		{
			name:           "trims name and assigns id",
			body:           `{"name": "  My Task  ", "priority": 2}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, task domain.Task) {
				assert.NotEqual(t, uuid.Nil, task.ID)
				assert.Equal(t, "My Task", task.Name)
				assert.Equal(t, 2, task.Priority)
				assert.Equal(t, domain.TaskStatusNotStarted, task.Status)
			},
		},
		{
			name:           "priority defaults to one",
			body:           `{"name": "defaults"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, task domain.Task) {
				assert.Equal(t, 1, task.Priority)
			},
		},
		{
			name:           "status by name",
			body:           `{"name": "named status", "status": "InProgress"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, task domain.Task) {
				assert.Equal(t, domain.TaskStatusInProgress, task.Status)
			},
		},
		{
			name:           "client id is ignored",
			body:           `{"id": "00000000-0000-0000-0000-000000000001", "name": "own id"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, task domain.Task) {
				assert.NotEqual(t, "00000000-0000-0000-0000-000000000001", task.ID.String())
			},
		},
		{
			name:           "whitespace name",
			body:           `{"name": "   ", "priority": 5}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Task name is required",
		},
		{
			name:           "special characters",
			body:           `{"name": "bad!name"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Task name cannot contain special characters",
		},
		{
			name:           "unknown status",
			body:           `{"name": "odd status", "status": 7}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid task status",
		},
		{
			name:           "priority too high",
			body:           `{"name": "urgent", "priority": 101}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Priority must be between 1 and 100",
		},
		{
			name:           "malformed json",
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newServiceRouter(t)

			w := doRequest(t, router, http.MethodPost, "/api/task", tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, decodeError(t, w))
				return
			}
			tc.check(t, decodeTask(t, w))
		})
	}
}

func TestTaskHandlerCreateDuplicateName(t *testing.T) {
	router := newServiceRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/task", `{"name": "Groceries"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/task", `{"name": "  groceries "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Task name already exists", decodeError(t, w))
}

func TestTaskHandlerGetAll(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		w := doRequest(t, newServiceRouter(t), http.MethodGet, "/api/task", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns tasks in insertion order", func(t *testing.T) {
		router := newServiceRouter(t)
		for _, body := range []string{`{"name": "first"}`, `{"name": "second"}`} {
			require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/task", body).Code)
		}

		w := doRequest(t, router, http.MethodGet, "/api/task", "")

		require.Equal(t, http.StatusOK, w.Code)
		var tasks []domain.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
		require.Len(t, tasks, 2)
		assert.Equal(t, "first", tasks[0].Name)
		assert.Equal(t, "second", tasks[1].Name)
	})
}

func TestTaskHandlerGetByID(t *testing.T) {
	router := newServiceRouter(t)
	created := decodeTask(t, doRequest(t, router, http.MethodPost, "/api/task", `{"name": "find me", "priority": 9}`))

	t.Run("existing task", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/task/"+created.ID.String(), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, created, decodeTask(t, w))
	})

	t.Run("wire format", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/task/"+created.ID.String(), "")

		assert.JSONEq(t,
			`{"id":"`+created.ID.String()+`","name":"find me","priority":9,"status":0}`,
			w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/task/"+uuid.NewString(), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found", decodeError(t, w))
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/task/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid task ID format", decodeError(t, w))
	})
}

func TestTaskHandlerUpdate(t *testing.T) {
	router := newServiceRouter(t)
	first := decodeTask(t, doRequest(t, router, http.MethodPost, "/api/task", `{"name": "first"}`))
	decodeTask(t, doRequest(t, router, http.MethodPost, "/api/task", `{"name": "second"}`))

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "keeps own name",
			path:           "/api/task/" + first.ID.String(),
			body:           `{"name": "FIRST", "priority": 50, "status": 1}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "name of another task",
			path:           "/api/task/" + first.ID.String(),
			body:           `{"name": "second"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Task name already exists",
		},
		{
			name:           "unknown task",
			path:           "/api/task/" + uuid.NewString(),
			body:           `{"name": "ghost"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Task not found",
		},
		{
			name:           "priority too low",
			path:           "/api/task/" + first.ID.String(),
			body:           `{"name": "first", "priority": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Priority must be between 1 and 100",
		},
		{
			name:           "malformed id",
			path:           "/api/task/123",
			body:           `{"name": "first"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid task ID format",
		},
		{
			name:           "empty body",
			path:           "/api/task/" + first.ID.String(),
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPut, tc.path, tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, decodeError(t, w))
			} else {
				assert.Equal(t, "Task updated successfully", decodeMessage(t, w))
			}
		})
	}

	updated := decodeTask(t, doRequest(t, router, http.MethodGet, "/api/task/"+first.ID.String(), ""))
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "FIRST", updated.Name)
	assert.Equal(t, 50, updated.Priority)
	assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
}

func TestTaskHandlerDelete(t *testing.T) {
	router := newServiceRouter(t)
	task := decodeTask(t, doRequest(t, router, http.MethodPost, "/api/task", `{"name": "chores"}`))
	path := "/api/task/" + task.ID.String()

	w := doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only completed tasks can be deleted", decodeError(t, w))

	w = doRequest(t, router, http.MethodPut, path, `{"name": "chores", "status": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Task deleted successfully", decodeMessage(t, w))

	w = doRequest(t, router, http.MethodGet, "/api/task", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Task not found", decodeError(t, w))
}

func TestTaskHandlerUnexpectedFailures(t *testing.T) {
	const addMsg = "An unexpected error occurred while adding the task."
	svc := &mockTaskService{
		addFn: func(ctx context.Context, task *domain.Task) service.Result {
			err := service.NewTaskServiceError("add", addMsg, errors.New("disk full"))
			return service.Result{Error: addMsg, Err: err}
		},
	}
	router := newTestRouter(t, svc)

	w := doRequest(t, router, http.MethodPost, "/api/task", `{"name": "anything"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, addMsg, decodeError(t, w))
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestTaskHandlerPassesRequestToService(t *testing.T) {
	id := uuid.New()
	var gotID uuid.UUID
	var gotTask *domain.Task
	svc := &mockTaskService{
		updateFn: func(ctx context.Context, taskID uuid.UUID, task *domain.Task) service.Result {
			gotID = taskID
			gotTask = task
			return service.Result{Success: true, Task: task}
		},
	}
	router := newTestRouter(t, svc)

	w := doRequest(t, router, http.MethodPut, "/api/task/"+id.String(), `{"name": "x", "status": "Completed"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, gotID)
	require.NotNil(t, gotTask)
	assert.Equal(t, "x", gotTask.Name)
	assert.Equal(t, domain.DefaultPriority, gotTask.Priority)
	assert.Equal(t, domain.TaskStatusCompleted, gotTask.Status)
}

func TestOpenAPI(t *testing.T) {
	w := httptest.NewRecorder()
	OpenAPI(w, httptest.NewRequest(http.MethodGet, OpenAPIPath, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/task")
	assert.Contains(t, paths, "/api/task/{id}")
}
