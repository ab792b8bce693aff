package api

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPIDocument []byte

// OpenAPIPath is where the API description is served in development.
const OpenAPIPath = "/swagger/openapi.json"

// OpenAPI serves the embedded OpenAPI 3 description of the task routes.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}
