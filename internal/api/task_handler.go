package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

// Confirmation messages for mutations without a response entity.
const (
	msgTaskUpdated = "Task updated successfully"
	msgTaskDeleted = "Task deleted successfully"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// Routes mounts the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/", h.GetAll)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// GetAll handles GET /api/task requests
func (h *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	tasks := h.taskService.GetAll(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetByID handles GET /api/task/{id} requests
func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, taskIDParam)
	if err != nil {
		log.Warn("invalid task ID", slog.String("value", chi.URLParam(r, taskIDParam)))
		HandleAPIError(w, r, err)
		return
	}

	task := h.taskService.GetByID(r.Context(), id)
	if task == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, service.ErrTaskNotFound.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /api/task requests
// The created task, with its new ID, is returned.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTaskRequest(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	res := h.taskService.Add(r.Context(), req.ToTask())
	if !res.Success {
		h.respondWithFailure(w, r, res)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res.Task)
}

// Update handles PUT /api/task/{id} requests
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, taskIDParam)
	if err != nil {
		log.Warn("invalid task ID", slog.String("value", chi.URLParam(r, taskIDParam)))
		HandleAPIError(w, r, err)
		return
	}

	req, err := decodeTaskRequest(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	res := h.taskService.Update(r.Context(), id, req.ToTask())
	if !res.Success {
		h.respondWithFailure(w, r, res)
		return
	}

	shared.RespondWithMessage(w, r, msgTaskUpdated)
}

// Delete handles DELETE /api/task/{id} requests
// Only completed tasks can be deleted.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, taskIDParam)
	if err != nil {
		log.Warn("invalid task ID", slog.String("value", chi.URLParam(r, taskIDParam)))
		HandleAPIError(w, r, err)
		return
	}

	res := h.taskService.Delete(r.Context(), id)
	if !res.Success {
		h.respondWithFailure(w, r, res)
		return
	}

	shared.RespondWithMessage(w, r, msgTaskDeleted)
}

// respondWithFailure writes a failed mutation result. The result's own
// message is what the client sees.
func (h *TaskHandler) respondWithFailure(w http.ResponseWriter, r *http.Request, res service.Result) {
	status := http.StatusBadRequest
	if res.Err != nil {
		status = MapErrorToStatusCode(res.Err)
	}
	shared.RespondWithErrorAndLog(w, r, status, res.Error, res.Err)
}
