package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialapi/internal/service"
	"socialapi/pkg/logger"
	"socialapi/pkg/pagination"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pagination.ErrConflictingCursors):
		writeError(w, http.StatusBadRequest, pagination.ErrConflictingCursors.Error(), "bad_request")
	case errors.Is(err, pagination.ErrInvalidID):
		writeError(w, http.StatusBadRequest, pagination.ErrInvalidID.Error(), "bad_request")
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error(), "bad_request")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "not_found")
	default:
		logger.FromContext(r.Context()).Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, service.ErrInternalError.Error(), "internal_error")
	}
}
