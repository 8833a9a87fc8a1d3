package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/learnpath/backend/internal/progress"
	"github.com/learnpath/backend/internal/services"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// errorStatuses maps domain errors to HTTP statuses. The first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{progress.ErrCourseNotFound, http.StatusNotFound},
	{progress.ErrLessonNotFound, http.StatusNotFound},
	{progress.ErrContentNotFound, http.StatusNotFound},
	{progress.ErrOptionNotFound, http.StatusNotFound},
	{progress.ErrContentLocked, http.StatusBadRequest},
	{progress.ErrNotQuiz, http.StatusBadRequest},
	{progress.ErrInvalidAmount, http.StatusBadRequest},
	{services.ErrInvalidInput, http.StatusBadRequest},
	{services.ErrUnauthorized, http.StatusUnauthorized},
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps a service error to its status. Unknown errors are
// logged and answered with 500 and the fallback message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			h.respondError(w, e.status, e.err.Error())
			return
		}
	}
	h.logger.Error(fallback, zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, fallback)
}

// decodeJSON decodes the request body into v, rejecting unknown fields
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
