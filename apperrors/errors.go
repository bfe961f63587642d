// Package apperrors provides the coded error taxonomy shared by the chat
// engine and the HTTP boundary.
package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Code represents a standardized internal error code.
type Code string

const (
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeNoResources      Code = "NO_RESOURCES_AVAILABLE"
	CodeRateLimited      Code = "RATE_LIMITED"
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"
	CodeInternal         Code = "INTERNAL"
)

// StandardError is a structured application error.
type StandardError struct {
	Code      Code      `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewInvalidInputError marks an empty or missing question.
func NewInvalidInputError() *StandardError {
	return &StandardError{
		Code:      CodeInvalidInput,
		Message:   "Question is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoResourcesError marks an empty resource store.
func NewNoResourcesError() *StandardError {
	return &StandardError{
		Code:      CodeNoResources,
		Message:   "No resources are configured",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError marks a request arriving inside the throttle window.
func NewRateLimitedError() *StandardError {
	return &StandardError{
		Code:      CodeRateLimited,
		Message:   "Rate limit exceeded",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreUnavailableError wraps a failed or timed-out resource store read.
// This is the only condition callers should retry.
func NewStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      CodeStoreUnavailable,
		Message:   "Resource store is unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the error code, or CodeInternal for untyped errors.
func CodeOf(err error) Code {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}
