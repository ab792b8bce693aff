// Package api handles incoming HTTP requests for tasks, request decoding
// and response formatting. It acts as an adapter between HTTP clients and
// service.TaskService, translating service results into status codes and
// JSON bodies.
//
// Error bodies have the shape {"error": "...", "trace_id": "..."}; the
// trace ID is set by middleware.TraceMiddleware.
package api
