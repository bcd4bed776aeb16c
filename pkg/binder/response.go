package binder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
	Errors     validator.ValidationErrors
}

// ErrorResponse is the JSON body written by WriteError. Success is always
// false.
type ErrorResponse struct {
	Success    bool                       `json:"success"`
	StatusCode int                        `json:"statusCode"`
	Message    string                     `json:"message"`
	Errors     validator.ValidationErrors `json:"errors,omitempty"`
	RequestID  string                     `json:"requestId,omitempty"`
}

// ClassifyError maps binding and validation errors to an HTTP status.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	switch {
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = "Validation failed"
		info.Errors = validator.ExtractValidationErrors(err)
	case errors.Is(err, ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Message = ErrUnsupportedMediaType.Error()
	case errors.Is(err, ErrMissingContentType),
		errors.Is(err, ErrFailedToParseJSON),
		errors.Is(err, ErrFailedToParseForm),
		errors.Is(err, ErrFailedToParseQuery):
		info.StatusCode = http.StatusBadRequest
		info.Message = err.Error()
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelDebug
	}
	return info
}

// WriteError writes err as a JSON ErrorResponse and logs it. Client errors
// are logged at debug level, everything else at error level.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	info := ClassifyError(err)
	requestID := middleware.GetReqID(r.Context())

	if log != nil {
		log.Log(r.Context(), info.LogLevel, "request failed",
			logger.Error(err),
			logger.RequestID(requestID),
			logger.Fields(info.Errors.Fields()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(info.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		StatusCode: info.StatusCode,
		Message:    info.Message,
		Errors:     info.Errors,
		RequestID:  requestID,
	})
}
