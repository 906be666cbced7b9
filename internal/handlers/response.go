package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/services"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: review_text must be at least 10 characters
	Error string `json:"error"`

	// Offending field for validation errors
	// example: review_text
	Field string `json:"field,omitempty"`
}

// SuccessResponse acknowledges a write without returning the record
// swagger:model SuccessResponse
type SuccessResponse struct {
	// example: true
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors onto status codes: validation and conflicts are 400,
// missing tools 404, anything else 500 with the underlying message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, services.ErrAlreadyReviewed):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrToolNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("failed to decode request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
