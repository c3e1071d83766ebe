// Package errors defines custom error types and error handling utilities for
// the OpsPulse service. Errors carry a machine-readable code and the HTTP
// status the interface layer should map them to.
package errors

import (
	"fmt"
	"net/http"

	"github.com/turtacn/opspulse/pkg/constants"
)

// AppError represents a structured application error
type AppError struct {
	Code        constants.ErrorCode
	HTTPStatus  int
	Message     string
	Description string
	Details     map[string]string
	cause       error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches a cause error, returning a copy so sentinels stay clean
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.cause = cause
	return &clone
}

// WithDetail attaches a contextual key-value detail, returning a copy
func (e *AppError) WithDetail(key, value string) *AppError {
	clone := *e
	clone.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	clone.Details[key] = value
	return &clone
}

// New creates an AppError with the given code, HTTP status and message.
func New(code constants.ErrorCode, httpStatus int, message string) *AppError {
	return &AppError{
		Code:       code,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// Newf creates an AppError with a formatted message.
func Newf(code constants.ErrorCode, httpStatus int, format string, args ...interface{}) *AppError {
	return New(code, httpStatus, fmt.Sprintf(format, args...))
}

// Predefined sentinel errors for common failure modes.
var (
	ErrInvalidRequest = New(constants.ErrCodeInvalidRequest, http.StatusBadRequest, "invalid request")
	ErrNotFound       = New(constants.ErrCodeNotFound, http.StatusNotFound, "resource not found")
	ErrConflict       = New(constants.ErrCodeConflict, http.StatusConflict, "resource already exists")
	ErrInternalServer = New(constants.ErrCodeInternal, http.StatusInternalServerError, "internal server error")
)
