package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so encoding failures can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrNotReforgeable),
		errors.Is(err, domain.ErrSlotOutOfRange),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrUnsupportedLanguage),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMaxLevel),
		errors.Is(err, domain.ErrLevelNotConfigured):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAttemptInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEconomyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondRefusal writes a localized player-facing error. Server errors are
// logged with their details and answered with the generic unavailable text.
func respondRefusal(w http.ResponseWriter, r *http.Request, catalog *i18n.Catalog, lang, opName string, err error) {
	status := statusForError(err)
	log := logger.FromContext(r.Context())
	if status == http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Info(LogMsgAttemptRefused, "operation", opName, "reason", err)
	}
	respondError(w, status, catalog.Refusal(lang, err))
}

// respondAdminError exposes validation details to operators and hides
// everything else behind a generic message
func respondAdminError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error(opName, "error", err)
		respondError(w, status, opName)
		return
	}
	respondError(w, status, err.Error())
}
