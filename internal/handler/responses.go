package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

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
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing the header so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
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
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Debug(LogMsgServiceError, "operation", op, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidCeilingError = "Unknown difficulty ceiling"
	ErrMsgInvalidWeekdayError = "Weekday must be 0-6 or one of 日月火水木金土"
	ErrMsgInvalidUnitError    = "Unit must be souri, melee, ranged, magic or heavy"
	ErrMsgInvalidQuantityErr  = "Quantity must be between 0 and 999"
	ErrMsgInvalidProfileError = "Invalid profile id"
	ErrMsgCashableNotFoundErr = "No cashable item has that price"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// users can act upon. Anything unrecognised becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCeiling):
		return http.StatusBadRequest, ErrMsgInvalidCeilingError
	case errors.Is(err, domain.ErrInvalidWeekday):
		return http.StatusBadRequest, ErrMsgInvalidWeekdayError
	case errors.Is(err, domain.ErrInvalidUnitType):
		return http.StatusBadRequest, ErrMsgInvalidUnitError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityErr
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusBadRequest, ErrMsgInvalidProfileError
	case errors.Is(err, domain.ErrCashableNotFound):
		return http.StatusNotFound, ErrMsgCashableNotFoundErr
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
