package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/ExpTable_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates its tags.
// On failure the response has already been written and the handler should return.
//
// Example usage:
//
//	var req SetQuantityRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set quantity"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseFlag reads a boolean form value. Absent and empty values give def;
// "0", "false" and "off" are false, anything else is true.
func parseFlag(raw string, present, def bool) bool {
	if !present || raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "0", "false", "off":
		return false
	}
	return true
}
