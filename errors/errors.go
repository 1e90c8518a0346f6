package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError        ErrorType = "VALIDATION_ERROR"
	NotFoundError          ErrorType = "NOT_FOUND"
	ServerError            ErrorType = "SERVER_ERROR"
	ConflictError          ErrorType = "CONFLICT"
	StorageError           ErrorType = "STORAGE_ERROR"
	RateFetchError         ErrorType = "RATE_FETCH_ERROR"
	GenerationError        ErrorType = "GENERATION_ERROR"
	MalformedResponseError ErrorType = "MALFORMED_RESPONSE"
	InvalidJSONError       ErrorType = "INVALID_JSON"
	NoPlansError           ErrorType = "NO_PLANS"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped raw error to errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// IsType reports whether err is, or wraps, an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}

// Helper functions for common errors
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewConflictError(message string, detail string) *AppError {
	return &AppError{
		Type:       ConflictError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusConflict,
	}
}

// NewStorageError wraps a key-value store failure with a sanitized message.
func NewStorageError(err error) *AppError {
	return &AppError{
		Type:       StorageError,
		Message:    "Storage operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// RateFetchFailed signals the exchange-rate collaborator was unreachable or
// returned a failure status. Callers fall back to USD-only display.
func RateFetchFailed(err error) *AppError {
	return &AppError{
		Type:       RateFetchError,
		Message:    "Failed to fetch exchange rates",
		Detail:     "Please check your connection or API key",
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

// GenerationFailed signals a transport, timeout or quota failure from the
// AI collaborator. No plans are produced.
func GenerationFailed(err error) *AppError {
	return &AppError{
		Type:       GenerationError,
		Message:    "Failed to generate trip plan",
		Detail:     "The AI may be experiencing high demand. Please try again later",
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

// MalformedResponse signals that no JSON object could be located in the AI
// output, or its braces never balanced (truncated generation).
func MalformedResponse(detail string) *AppError {
	return &AppError{
		Type:       MalformedResponseError,
		Message:    "The AI returned an invalid response format",
		Detail:     detail,
		HTTPStatus: http.StatusBadGateway,
	}
}

// InvalidJSON signals that a JSON-shaped substring was located but failed to
// parse. Distinct from MalformedResponse so callers can message truncation
// vs. corruption differently.
func InvalidJSON(err error) *AppError {
	return &AppError{
		Type:       InvalidJSONError,
		Message:    "Failed to parse the trip plan from the AI",
		Detail:     err.Error(),
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

// NoPlans signals that the AI response parsed but contained zero usable plan
// records after normalization.
func NoPlans(detail string) *AppError {
	return &AppError{
		Type:       NoPlansError,
		Message:    "The AI did not generate any trip plans",
		Detail:     detail,
		HTTPStatus: http.StatusBadGateway,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	case RateFetchError, GenerationError, MalformedResponseError, InvalidJSONError, NoPlansError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
