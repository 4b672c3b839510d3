package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/shooter-mock-api/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and writes
// a standardized error response on failure. An empty body decodes as the zero value,
// so endpoints whose fields are all optional accept no body at all.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req UseItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)

		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// playerIDParam returns the {playerId} route parameter
func playerIDParam(r *http.Request) string {
	return chi.URLParam(r, ParamPlayerID)
}
