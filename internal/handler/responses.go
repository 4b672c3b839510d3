package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// Standard response types for consistent API responses. Every body carries success.

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NotFoundResponse is returned for paths that match no route
type NotFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// RespondNotFound writes the body used for unmatched paths
func RespondNotFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, NotFoundResponse{
		Success: false,
		Message: ErrMsgEndpointNotFound,
		Path:    r.URL.Path,
	})
}

// RespondInternalError writes the generic 500 body
func RespondInternalError(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
}

// RespondTooManyRequests writes the rate limit body
func RespondTooManyRequests(w http.ResponseWriter) {
	respondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
}

// RespondTooLarge writes the body used when a request exceeds the size limit
func RespondTooLarge(w http.ResponseWriter) {
	respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
}

// respondServiceError logs and writes a mapped service error
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Debug(action+" rejected", "error", err, "status", status)
	}

	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user-facing messages.
// Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrInventoryNotFound):
		return http.StatusNotFound, ErrMsgInventoryNotFound
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFound
	case errors.Is(err, domain.ErrWeaponNotFound):
		return http.StatusBadRequest, ErrMsgWeaponNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
