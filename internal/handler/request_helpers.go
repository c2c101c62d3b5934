package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/progression"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If this returns an error, the response has already been written and the
// handler should return.
//
//	var req AttemptRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Reforge attempt"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter. If ok is false, the
// response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// queryPlayerID reads and parses the player_id query parameter
func queryPlayerID(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	raw, ok := GetQueryParam(r, w, ParamPlayerID)
	if !ok {
		return uuid.Nil, false
	}
	player, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return uuid.Nil, false
	}
	return player, true
}

// queryInt reads a required integer query parameter
func queryInt(r *http.Request, w http.ResponseWriter, paramName, invalidMsg string) (int, bool) {
	raw, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return n, true
}

// urlInt reads an integer chi path parameter
func urlInt(r *http.Request, w http.ResponseWriter, paramName, invalidMsg string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil {
		respondError(w, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return n, true
}

// resolveLanguage picks the message language: an explicit request value,
// then the first supported Accept-Language entry, then the configured default
func resolveLanguage(r *http.Request, catalog *i18n.Catalog, requested string, table *progression.Table) string {
	if requested != "" && catalog.IsSupported(requested) {
		return requested
	}
	if q := r.URL.Query().Get(ParamLang); q != "" && catalog.IsSupported(q) {
		return q
	}
	for _, part := range strings.Split(r.Header.Get(HeaderAcceptLanguage), ",") {
		code, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if code != "" && catalog.IsSupported(code) {
			return code
		}
	}
	return table.General.Language
}
