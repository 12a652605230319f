// Package respond writes JSON bodies and the {"error": ...} envelope used by every endpoint.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/site-content-api/internal/logger"
)

// Generic messages for statuses whose cause is not shown to the client.
const (
	MsgInternal         = "Internal server error"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgTooLarge         = "File too large"
)

// ErrorResponse represents an error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Not found
	Error string `json:"error"`
}

// MessageResponse represents a confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Service updated successfully
	Message string `json:"message"`
}

// CreatedResponse represents the body of a successful create
// swagger:model CreatedResponse
type CreatedResponse struct {
	// example: 7
	ID int64 `json:"id"`
	// example: Service created successfully
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("error writing response", "error", err)
	}
}

// Error writes {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

// Message writes {"message": msg} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Message: msg})
}

// Internal logs err and writes the generic 500 body.
func Internal(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "error", err)
	Error(w, http.StatusInternalServerError, MsgInternal)
}

// NotFound is the handler for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed is the handler for known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
