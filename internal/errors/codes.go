// Package errors defines typed error codes shared by the memory and
// analytics services and mapped onto HTTP statuses by the API layer.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type for memory operations.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates authentication failure.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeRateLimitExceeded indicates rate limit has been exceeded.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeInvalidRecord indicates a record failed validation before mutation.
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
	// ErrCodeNotFound indicates the requested record does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeServiceUnavailable indicates the service is not available.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeRemoteSyncFailed indicates the upstream backend rejected a sync.
	ErrCodeRemoteSyncFailed ErrorCode = "REMOTE_SYNC_FAILED"
	// ErrCodeLLMUnavailable indicates the LLM service is not available.
	ErrCodeLLMUnavailable ErrorCode = "LLM_UNAVAILABLE"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// InvalidRecordError is returned when a record is rejected at the validation
// boundary. No mutation is applied once this error is produced.
type InvalidRecordError struct {
	Field   string
	Message string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ErrCodeInvalidRecord, e.Field, e.Message)
}

// NewInvalidRecord creates a validation error for the given field.
func NewInvalidRecord(field, format string, args ...any) *InvalidRecordError {
	return &InvalidRecordError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidRecord reports whether err is (or wraps) an InvalidRecordError.
func IsInvalidRecord(err error) bool {
	var ire *InvalidRecordError
	return errors.As(err, &ire)
}

// ServiceError represents a structured error for service operations.
type ServiceError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// New creates a new service error.
func New(code ErrorCode, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// Wrap creates a new service error with an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *ServiceError {
	return &ServiceError{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the error code from err, defaulting to SERVICE_UNAVAILABLE.
func CodeOf(err error) ErrorCode {
	var ire *InvalidRecordError
	if errors.As(err, &ire) {
		return ErrCodeInvalidRecord
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeServiceUnavailable
}
