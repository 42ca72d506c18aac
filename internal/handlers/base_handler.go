package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lunchday/backend/internal/apperrors"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondAppError translates a service error into an HTTP response using the
// apperrors taxonomy. Storage failures are logged with full detail but the
// client only sees a generic message.
func (h *BaseHandler) RespondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrDuplicateUsername):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials), errors.Is(err, apperrors.ErrUnauthenticated):
		h.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrForbidden):
		h.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("request failed", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
