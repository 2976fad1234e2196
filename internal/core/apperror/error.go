// Package apperror provides structured error handling for the API.
// All business errors must use AppError for consistent JSON responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"

	// Input errors (400)
	CodeMalformedInput = "MALFORMED_INPUT"

	// Business rule violations (422)
	CodeValidation  = "VALIDATION_ERROR"
	CodeReferential = "REFERENTIAL_INTEGRITY_VIOLATION"
	CodeDuplicate   = "DUPLICATE_ENTRY"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the service.
// It implements the error interface and carries structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Fields maps field name to validation messages (422 responses)
	Fields map[string][]string `json:"fields,omitempty"`

	// Details contains additional context (entity, id, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithField appends a validation message for a field
func (e *AppError) WithField(field, message string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    "Not found",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewMalformed creates a malformed input error (400)
func NewMalformed(message string) *AppError {
	return &AppError{
		Code:       CodeMalformedInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewValidation creates a validation error (422) with a single field message.
func NewValidation(field, message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    "validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     map[string][]string{field: {message}},
	}
}

// NewFieldErrors creates a validation error (422) from a field->messages map.
func NewFieldErrors(fields map[string][]string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    "validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

// NewReferential creates an error for a reference to a missing related record (422).
func NewReferential(field string) *AppError {
	return &AppError{
		Code:       CodeReferential,
		Message:    "related record does not exist",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     map[string][]string{field: {"referenced record does not exist"}},
	}
}

// NewDuplicate creates a duplicate entry error (422).
func NewDuplicate(field string) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Message:    "duplicate entry",
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     map[string][]string{field: {fmt.Sprintf("record with this %s already exists", field)}},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsValidation checks if error carries field-level validation messages.
func IsValidation(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return len(appErr.Fields) > 0
	}
	return false
}
