package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

// FaultMessage is the client-facing message for unhandled faults.
const FaultMessage = "An unexpected error occurred. Please try again later."

// Recoverer converts a panic escaping a handler into a 500 response with a
// FaultResponse body and logs it with the stack trace.
// http.ErrAbortHandler is re-panicked so the server can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("unhandled panic in request",
				"panic", fmt.Sprint(rec),
				"path", r.URL.Path,
				"method", r.Method,
				"trace_id", shared.GetTraceID(r.Context()),
				"stack", string(debug.Stack()))

			shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.FaultResponse{
				Success: false,
				Message: FaultMessage,
			})
		}()

		next.ServeHTTP(w, r)
	})
}
